// Package game holds the per-run state wrapped around the house map:
// resources, items, notes and the day counter. The map itself stays in
// internal/house; this package adds what a single run accumulates on top.
package game

import (
	"fmt"
	"sort"
	"strings"

	"github.com/brownlk99/blue-prince-ml-sub000/internal/errors"
	"github.com/brownlk99/blue-prince-ml-sub000/internal/house"
)

// Resources are the countable consumables tracked across a run
type Resources struct {
	Footprints int `json:"footprints"`
	Dice       int `json:"dice"`
	Keys       int `json:"keys"`
	Gems       int `json:"gems"`
	Coins      int `json:"coins"`
}

// GridPosition mirrors house.Position but serializes as an {x, y} object,
// the form current_position is stored in
type GridPosition struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// State is the full mutable state of one run: the drafted house plus
// everything the player carries through the day
type State struct {
	Resources       Resources         `json:"resources"`
	Items           map[string]string `json:"items"`
	Notes           []Note            `json:"notes"`
	House           *house.Map        `json:"house"`
	CurrentPosition GridPosition      `json:"current_position"`
	Day             int               `json:"day"`
	SpecialOrder    string            `json:"special_order,omitempty"`

	// CarriedItem is what the coat check held when the previous day ended.
	// It re-enters play the next time a coat check is drafted.
	CarriedItem string `json:"carried_item,omitempty"`
}

// NewState creates a fresh run on the given day with the two permanent rooms
// already placed and the player standing in the entrance hall
func NewState(day int) *State {
	if day < 1 {
		day = 1
	}
	s := &State{
		Items:           map[string]string{},
		Notes:           []Note{},
		House:           house.NewMap(house.DefaultWidth, house.DefaultHeight),
		CurrentPosition: GridPosition{X: 2, Y: 8},
		Day:             day,
	}
	s.seedPermanentRooms()
	return s
}

func (s *State) seedPermanentRooms() {
	entrance := house.NewRoom("ENTRANCE HALL", "T", house.Position{X: 2, Y: 8}, []*house.Door{
		{Orientation: house.West, LeadsTo: house.LeadsToUnknown, Locked: house.TriFalse, IsSecurity: house.TriFalse},
		{Orientation: house.North, LeadsTo: house.LeadsToUnknown, Locked: house.TriFalse, IsSecurity: house.TriFalse},
		{Orientation: house.East, LeadsTo: house.LeadsToUnknown, Locked: house.TriFalse, IsSecurity: house.TriFalse},
	})
	entrance.Types = []string{"PERMANENT", "BLUEPRINT"}
	entrance.Rarity = "N/A"
	entrance.HasBeenEntered = true
	entrance.Description = "Past the steps and beyond the grand doors, admission to Mount Holly is granted by way of a dark and garish lobby, suitably called the Entrance Hall."

	antechamber := house.NewRoom("ANTECHAMBER", "CROSS", house.Position{X: 2, Y: 0}, []*house.Door{
		house.NewDoor(house.West),
		house.NewDoor(house.North),
		house.NewDoor(house.South),
		house.NewDoor(house.East),
	})
	antechamber.Types = []string{"BLUEPRINT", "OBJECTIVE"}
	antechamber.Rarity = "N/A"
	antechamber.Description = "From its root meaning \"The Room Before\", all signs and paths point toward the Antechamber."

	// the fresh grid always has room for the permanent pair
	_ = s.House.PlaceRoom(entrance)
	_ = s.House.PlaceRoom(antechamber)
}

// CurrentRoom returns the room the player is standing in, or nil when the
// position points at an empty cell
func (s *State) CurrentRoom() *house.Room {
	return s.House.RoomAt(s.CurrentPosition.X, s.CurrentPosition.Y)
}

// MoveTo relocates the player. The target cell must hold a drafted room.
func (s *State) MoveTo(x, y int) error {
	if !s.House.InBounds(x, y) {
		return errors.OutOfBoundsf("position (%d, %d) is outside the %dx%d grid", x, y, s.House.Width, s.House.Height)
	}
	room := s.House.RoomAt(x, y)
	if room == nil {
		return errors.NotFoundf("no room drafted at (%d, %d)", x, y)
	}
	s.CurrentPosition = GridPosition{X: x, Y: y}
	room.HasBeenEntered = true
	return nil
}

// AddNote records a captured note, returning false when an identical note
// was already captured
func (s *State) AddNote(n Note) bool {
	hash := n.Hash()
	for _, existing := range s.Notes {
		if existing.Hash() == hash {
			return false
		}
	}
	s.Notes = append(s.Notes, n)
	return true
}

// NextDay ends the current run day: the house is rebuilt down to the
// permanent rooms, resources and items are forfeit, and anything left in
// the coat check carries over for the next day's draft. Notes and any
// pending commissary special order survive.
func (s *State) NextDay() {
	if closet := s.House.RoomByName("COAT CHECK"); closet != nil && closet.CoatCheck != nil {
		if closet.CoatCheck.StoredItem != "" {
			s.CarriedItem = closet.CoatCheck.StoredItem
		}
	}

	s.Day++
	s.Resources = Resources{}
	s.Items = map[string]string{}
	s.SpecialOrder = ""
	s.House = house.NewMap(house.DefaultWidth, house.DefaultHeight)
	s.CurrentPosition = GridPosition{X: 2, Y: 8}
	s.seedPermanentRooms()
}

// ClaimCarriedItem hands the previous day's coat-check item to a freshly
// drafted coat check. No-op when nothing was carried or the room is not a
// coat check.
func (s *State) ClaimCarriedItem(room *house.Room) {
	if s.CarriedItem == "" || room == nil || room.CoatCheck == nil {
		return
	}
	room.CoatCheck.StoredItem = s.CarriedItem
	s.CarriedItem = ""
}

// Summary renders the whole state as plain text for the reasoning
// collaborator: resources, position, items, then every drafted room with its
// doors and archetype extras
func (s *State) Summary() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Resources: footprints=%d, dice=%d, keys=%d, gems=%d, coins=%d\n",
		s.Resources.Footprints, s.Resources.Dice, s.Resources.Keys, s.Resources.Gems, s.Resources.Coins)
	fmt.Fprintf(&b, "Current room position: (%d, %d)\n", s.CurrentPosition.X, s.CurrentPosition.Y)
	if room := s.CurrentRoom(); room != nil {
		fmt.Fprintf(&b, "Current room: %s\n", room.Name)
	} else {
		b.WriteString("Current room: None\n")
	}
	fmt.Fprintf(&b, "Day: %d\n", s.Day)
	fmt.Fprintf(&b, "House dimensions: width=%d, height=%d (upper left corner (most north-west) is (0,0))\n",
		s.House.Width, s.House.Height)

	b.WriteString("Items:\n")
	if len(s.Items) == 0 {
		b.WriteString("  None\n")
	} else {
		names := make([]string, 0, len(s.Items))
		for name := range s.Items {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(&b, "  - %s: %s\n", name, s.Items[name])
		}
	}
	if s.SpecialOrder != "" {
		fmt.Fprintf(&b, "Special order for COMMISSARY: %s\n", s.SpecialOrder)
	}

	b.WriteString("Rooms Currently in House:\n")
	for _, row := range s.House.Grid {
		for _, room := range row {
			if room == nil {
				continue
			}
			s.summarizeRoom(&b, room)
		}
	}
	b.WriteString("If a ROOM has_been_entered, it means the player has been in that room at least once to collect the initial items and information regarding its DOORS.")
	return b.String()
}

func (s *State) summarizeRoom(b *strings.Builder, room *house.Room) {
	fmt.Fprintf(b, "  - %s at %s, type: %v, rarity: %s, has_been_entered: %t\n",
		room.Name, room.Position, room.Types, room.Rarity, room.HasBeenEntered)

	if room.Shop != nil {
		if len(room.Shop.ItemsForSale) == 0 {
			b.WriteString("    Items for sale: Unknown\n")
		} else {
			fmt.Fprintf(b, "    Items for sale in %s:\n", room.Name)
			items := make([]string, 0, len(room.Shop.ItemsForSale))
			for item := range room.Shop.ItemsForSale {
				items = append(items, item)
			}
			sort.Strings(items)
			for _, item := range items {
				fmt.Fprintf(b, "      - %s: %d\n", item, room.Shop.ItemsForSale[item])
			}
		}
	}
	if room.Puzzle != nil {
		fmt.Fprintf(b, "    Puzzle has been solved: %t\n", room.Puzzle.HasBeenSolved)
	}
	if room.Switches != nil {
		fmt.Fprintf(b, "    Utility switches: keycard_entry_system_switch=%t, gymnasium_switch=%t, darkroom_switch=%t, garage_switch=%t\n",
			room.Switches.KeycardEntrySystem, room.Switches.Gymnasium, room.Switches.Darkroom, room.Switches.Garage)
	}
	if room.CoatCheck != nil {
		stored := room.CoatCheck.StoredItem
		if stored == "" {
			stored = "None"
		}
		fmt.Fprintf(b, "    Stored item in Coat Check: %s\n", stored)
	}
	if room.Passage != nil {
		fmt.Fprintf(b, "    Secret passage has been used: %t\n", room.Passage.HasBeenUsed)
	}
	if room.Trunks > 0 {
		fmt.Fprintf(b, "    Trunks in %s: %d\n", room.Name, room.Trunks)
	}
	if room.DigSpots > 0 {
		fmt.Fprintf(b, "    Dig spots in %s: %d\n", room.Name, room.DigSpots)
	}
	if room.Terminal != nil {
		if room.Terminal.Kind == house.TerminalSecurity {
			fmt.Fprintf(b, "    Terminal present in %s (%s), offline mode: %s\n",
				room.Name, room.Terminal.Kind, room.Terminal.OfflineMode)
		} else {
			fmt.Fprintf(b, "    Terminal present in %s (%s)\n", room.Name, room.Terminal.Kind)
		}
	}

	b.WriteString("     Doors:\n")
	for _, door := range room.Doors {
		fmt.Fprintf(b, "      %s (leads_to=%s, locked=%s, is_security=%s)\n",
			door.Orientation, door.LeadsTo, door.Locked, door.IsSecurity)
	}
}
