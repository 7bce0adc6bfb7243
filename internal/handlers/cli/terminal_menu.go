package cli

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/brownlk99/blue-prince-ml-sub000/internal/house"
)

// terminalMenu locates a drafted room with a terminal and loops its
// kind-specific command list until the user exits.
func (h *Handler) terminalMenu(ctx context.Context) error {
	x, err := h.promptInt("Terminal room X position: ")
	if err != nil {
		return err
	}
	y, err := h.promptInt("Terminal room Y position: ")
	if err != nil {
		return err
	}

	run, err := h.service.GetRun(ctx, h.runID)
	if err != nil {
		return err
	}
	room := run.State.House.RoomAt(x, y)
	if room == nil || room.Terminal == nil {
		h.printErr("No terminal at that position.")
		return nil
	}

	for {
		commands := room.Terminal.Commands()
		fmt.Fprintln(h.out, headerStyle.Sprintf("\n--- %s TERMINAL ---", room.Terminal.Kind))
		for i, cmd := range commands {
			fmt.Fprintf(h.out, "%2d. %s\n", i+1, cmd)
		}

		choice, err := h.readLine("Enter choice: ")
		if err != nil {
			return err
		}
		idx, convErr := strconv.Atoi(choice)
		if convErr != nil || idx < 1 || idx > len(commands) {
			h.printErr("Invalid choice, try again.")
			continue
		}

		done, err := h.runTerminalCommand(ctx, room, commands[idx-1])
		if err != nil {
			h.printErr("Error: %v", err)
			continue
		}
		if done {
			return nil
		}
	}
}

// runTerminalCommand executes one terminal command. It returns true when the
// user picked Exit.
func (h *Handler) runTerminalCommand(ctx context.Context, room *house.Room, command string) (bool, error) {
	terminal := room.Terminal

	switch command {
	case "Exit":
		return true, nil

	case "Login to Network":
		password, err := h.readLine("Network password: ")
		if err != nil {
			return false, err
		}
		if !terminal.Login(password) {
			h.printErr("ACCESS DENIED")
			return false, nil
		}
		h.printOK("ACCESS GRANTED")
		return false, h.service.UpdateRoom(ctx, h.runID, room)

	case "Special Orders":
		fmt.Fprintln(h.out, "Items available for special order at the commissary:")
		for _, item := range terminal.SpecialOrderItems() {
			fmt.Fprintf(h.out, "  - %s\n", item)
		}
		return false, nil

	case "View Estate Inventory":
		names := make([]string, 0, len(terminal.EstateInventory))
		for name := range terminal.EstateInventory {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(h.out, "  %s: %d\n", name, terminal.EstateInventory[name])
		}
		return false, nil

	case "Alter Security Level":
		raw, err := h.readLine("Security level (LOW/MEDIUM/HIGH): ")
		if err != nil {
			return false, err
		}
		level, parseErr := house.ParseSecurityLevel(raw)
		if parseErr != nil {
			return false, parseErr
		}
		if err := h.service.SetSecurityLevel(ctx, h.runID, level); err != nil {
			return false, err
		}
		h.printOK("Security level set to %s.", level)
		return false, nil

	case "Alter Mode":
		raw, err := h.readLine("Offline mode (LOCKED/UNLOCKED): ")
		if err != nil {
			return false, err
		}
		mode, parseErr := house.ParseOfflineMode(raw)
		if parseErr != nil {
			return false, parseErr
		}
		if err := h.service.SetOfflineMode(ctx, h.runID, mode); err != nil {
			return false, err
		}
		h.printOK("Offline mode set to %s.", mode)
		return false, nil

	case "Run Payroll":
		if terminal.PayrollRan {
			fmt.Fprintln(h.out, "Payroll already ran today.")
			return false, nil
		}
		terminal.PayrollRan = true
		h.printOK("Payroll complete.")
		return false, h.service.UpdateRoom(ctx, h.runID, room)

	case "Spread Gold in Estate":
		if terminal.GoldSpread {
			fmt.Fprintln(h.out, "Gold already spread today.")
			return false, nil
		}
		terminal.GoldSpread = true
		h.printOK("Gold spread across the estate.")
		return false, h.service.UpdateRoom(ctx, h.runID, room)

	case "Experiment Setup":
		cause, err := h.readLine("When this happens: ")
		if err != nil {
			return false, err
		}
		effect, err := h.readLine("Do this: ")
		if err != nil {
			return false, err
		}
		if terminal.ExperimentalHouseFeature == nil {
			terminal.ExperimentalHouseFeature = map[string]string{}
		}
		terminal.ExperimentalHouseFeature[strings.ToUpper(cause)] = strings.ToUpper(effect)
		h.printOK("Experiment configured.")
		return false, h.service.UpdateRoom(ctx, h.runID, room)

	case "Pause Experiment":
		terminal.ExperimentalHouseFeature = map[string]string{}
		h.printOK("Experiment paused.")
		return false, h.service.UpdateRoom(ctx, h.runID, room)

	case "Time Lock Safe":
		terminal.TimeLockEngaged = !terminal.TimeLockEngaged
		if terminal.TimeLockEngaged {
			fmt.Fprintln(h.out, "Time lock engaged.")
		} else {
			fmt.Fprintln(h.out, "Time lock released.")
		}
		return false, h.service.UpdateRoom(ctx, h.runID, room)

	case "Radiation Monitor":
		fmt.Fprintf(h.out, "Radiation level: %s\n", terminal.RadiationLevel)
		return false, nil

	default:
		return false, nil
	}
}
