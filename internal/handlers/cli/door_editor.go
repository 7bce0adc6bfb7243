package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/brownlk99/blue-prince-ml-sub000/internal/house"
	"github.com/brownlk99/blue-prince-ml-sub000/internal/services/housemap"
)

// editDoors walks the user through patching a single door: pick the room by
// position, pick the door by orientation, then overwrite only the fields the
// user actually fills in. Empty answers leave the recorded value alone.
func (h *Handler) editDoors(ctx context.Context) error {
	x, err := h.promptInt("Room X position: ")
	if err != nil {
		return err
	}
	y, err := h.promptInt("Room Y position: ")
	if err != nil {
		return err
	}
	orientation, err := h.promptOrientation("Door orientation (N/S/E/W): ")
	if err != nil {
		return err
	}

	input := &housemap.DoorEditInput{X: x, Y: y, Orientation: orientation}

	leadsTo, err := h.readLine("Leads to (room name, BLOCKED or ?; empty to keep): ")
	if err != nil {
		return err
	}
	if leadsTo != "" {
		// Room names, BLOCKED and ? are all stored uppercase
		normalized := strings.ToUpper(leadsTo)
		input.LeadsTo = &normalized
	}

	locked, set, err := h.promptOptionalTriState("Locked (empty to keep): ")
	if err != nil {
		return err
	}
	if set {
		input.Locked = &locked
	}

	security, set, err := h.promptOptionalTriState("Security (empty to keep): ")
	if err != nil {
		return err
	}
	if set {
		input.IsSecurity = &security
	}

	if input.LeadsTo == nil && input.Locked == nil && input.IsSecurity == nil {
		fmt.Fprintln(h.out, "Nothing to change.")
		return nil
	}

	if err := h.service.EditDoor(ctx, h.runID, input); err != nil {
		return err
	}
	h.printOK("Door updated.")
	return nil
}

// promptOptionalTriState is promptTriState with a skip: empty input returns
// set=false instead of unknown.
func (h *Handler) promptOptionalTriState(prompt string) (house.TriState, bool, error) {
	for {
		raw, err := h.readLine(prompt)
		if err != nil {
			return house.TriUnknown, false, err
		}
		if raw == "" {
			return house.TriUnknown, false, nil
		}
		t, parseErr := house.ParseTriState(raw)
		if parseErr != nil {
			h.printErr("Please enter True, False, N/A or ?.")
			continue
		}
		return t, true, nil
	}
}
