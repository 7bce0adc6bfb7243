package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// editRoom updates the countable extras on a drafted room: trunks, dig spots
// and, for shops, the items for sale. Empty answers keep the recorded values.
func (h *Handler) editRoom(ctx context.Context) error {
	x, err := h.promptInt("Room X position: ")
	if err != nil {
		return err
	}
	y, err := h.promptInt("Room Y position: ")
	if err != nil {
		return err
	}

	run, err := h.service.GetRun(ctx, h.runID)
	if err != nil {
		return err
	}
	room := run.State.House.RoomAt(x, y)
	if room == nil {
		h.printErr("No room drafted at that position.")
		return nil
	}

	trunks, set, err := h.promptOptionalInt(fmt.Sprintf("Trunks [%d]: ", room.Trunks))
	if err != nil {
		return err
	}
	if set {
		room.Trunks = trunks
	}

	digSpots, set, err := h.promptOptionalInt(fmt.Sprintf("Dig spots [%d]: ", room.DigSpots))
	if err != nil {
		return err
	}
	if set {
		room.DigSpots = digSpots
	}

	if room.Shop != nil {
		if room.Shop.ItemsForSale == nil {
			room.Shop.ItemsForSale = map[string]int{}
		}
		if err := h.editItemsForSale(room.Shop.ItemsForSale); err != nil {
			return err
		}
	}

	if err := h.service.UpdateRoom(ctx, h.runID, room); err != nil {
		return err
	}
	h.printOK("Room updated.")
	return nil
}

// editItemsForSale adds or re-prices shop stock until the user enters a
// blank item name.
func (h *Handler) editItemsForSale(itemsForSale map[string]int) error {
	fmt.Fprintln(h.out, "Shop stock (blank item name to finish):")
	for {
		name, err := h.readLine("Item: ")
		if err != nil {
			return err
		}
		if name == "" {
			return nil
		}
		price, err := h.promptInt("Price: ")
		if err != nil {
			return err
		}
		itemsForSale[strings.ToUpper(name)] = price
	}
}

// promptOptionalInt is promptInt with a skip: empty input returns set=false
func (h *Handler) promptOptionalInt(prompt string) (int, bool, error) {
	for {
		raw, err := h.readLine(prompt)
		if err != nil {
			return 0, false, err
		}
		if raw == "" {
			return 0, false, nil
		}
		n, convErr := strconv.Atoi(raw)
		if convErr != nil {
			h.printErr("Please enter a whole number.")
			continue
		}
		return n, true, nil
	}
}
