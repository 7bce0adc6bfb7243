package house

import (
	"encoding/json"
	"fmt"

	"github.com/brownlk99/blue-prince-ml-sub000/internal/errors"
)

// Archetype is the closed set of room variants the house knows about. New
// archetypes are added by extending ArchetypeForName and the capability data
// below, not by scattering name comparisons.
type Archetype string

const (
	ArchetypeGeneric       Archetype = "generic"
	ArchetypeShop          Archetype = "shop"
	ArchetypePuzzle        Archetype = "puzzle"
	ArchetypeUtilityCloset Archetype = "utility_closet"
	ArchetypeCoatCheck     Archetype = "coat_check"
	ArchetypeSecretPassage Archetype = "secret_passage"
	ArchetypeSecurity      Archetype = "security"
	ArchetypeOffice        Archetype = "office"
	ArchetypeLaboratory    Archetype = "laboratory"
	ArchetypeShelter       Archetype = "shelter"
)

// ShopDetails is the stock a shop room sells
type ShopDetails struct {
	ItemsForSale map[string]int
}

// PuzzleDetails tracks the one-per-day puzzle in the parlor
type PuzzleDetails struct {
	HasBeenSolved bool
}

// SwitchPanel holds the four independent breakers in the utility closet.
// Defaults encode the house's real starting state: keycard and gymnasium
// power on, darkroom and garage off.
type SwitchPanel struct {
	KeycardEntrySystem bool
	Gymnasium          bool
	Darkroom           bool
	Garage             bool
}

// DefaultSwitchPanel returns the switch positions a fresh utility closet
// starts with
func DefaultSwitchPanel() *SwitchPanel {
	return &SwitchPanel{
		KeycardEntrySystem: true,
		Gymnasium:          true,
		Darkroom:           false,
		Garage:             false,
	}
}

// CoatCheckDetails holds the single item the coat check stores. The stored
// item is the one piece of state that deliberately survives day resets.
type CoatCheckDetails struct {
	StoredItem string
}

// PassageDetails tracks whether the secret passage has been spent
type PassageDetails struct {
	HasBeenUsed bool
}

// Room is a node of the house graph: a fixed grid position, a shape implying
// the expected door count, and the doors it owns. Archetype-specific data
// hangs off the capability pointers; exactly the pointers matching the
// archetype are non-nil once the room has been specialized.
type Room struct {
	Name           string
	Cost           int
	Types          []string
	Description    string
	AdditionalInfo string
	Shape          string
	Doors          []*Door
	Position       Position
	Rarity         string
	Trunks         int
	DigSpots       int
	HasBeenEntered bool

	Archetype Archetype

	Shop      *ShopDetails
	Puzzle    *PuzzleDetails
	Switches  *SwitchPanel
	CoatCheck *CoatCheckDetails
	Passage   *PassageDetails
	Terminal  *Terminal
}

// NewRoom creates a generic, unspecialized room with its name upper-cased
func NewRoom(name, shape string, position Position, doors []*Door) *Room {
	return &Room{
		Name:      upper(name),
		Shape:     shape,
		Position:  position,
		Doors:     doors,
		Archetype: ArchetypeGeneric,
	}
}

// Rank is the row index counted from the south entrance, derived from the
// grid height. Never stored; recomputed on every use.
func (r *Room) Rank(gridHeight int) int {
	return (gridHeight - 1) - r.Position.Y
}

// ExpectedDoorCount maps the room shape to the number of doors it should
// carry. Unrecognized shapes are unconstrained.
func (r *Room) ExpectedDoorCount() int {
	switch upper(r.Shape) {
	case "DEAD END":
		return 1
	case "STRAIGHT", "L":
		return 2
	case "T":
		return 3
	case "CROSS":
		return 4
	default:
		return 0
	}
}

// DoorByOrientation returns the door facing the given direction. Rooms
// specified with an incomplete door set legitimately miss orientations, so
// callers must handle the not found error.
func (r *Room) DoorByOrientation(o Orientation) (*Door, error) {
	for _, d := range r.Doors {
		if d.Orientation == o {
			return d, nil
		}
	}
	return nil, errors.NotFoundf("door %q not found in room %q", o, r.Name)
}

// HasDoorFacing reports whether the room has any door with the given
// orientation
func (r *Room) HasDoorFacing(o Orientation) bool {
	_, err := r.DoorByOrientation(o)
	return err == nil
}

// HasType reports whether the room carries the given category tag
func (r *Room) HasType(tag string) bool {
	for _, t := range r.Types {
		if t == upper(tag) {
			return true
		}
	}
	return false
}

func (r *Room) String() string {
	return fmt.Sprintf("Room(name=%s, shape=%s, position=%s, doors=%d, archetype=%s)",
		r.Name, r.Shape, r.Position, len(r.Doors), r.Archetype)
}

// roomJSON is the flat serialized form. Archetype extras live at the top
// level of the room mapping under their original field names, so the stored
// layout round-trips exactly; which extras appear is decided by the room
// name on decode.
type roomJSON struct {
	Name           string   `json:"name"`
	Cost           int      `json:"cost"`
	Types          []string `json:"type"`
	Description    string   `json:"description"`
	AdditionalInfo string   `json:"additional_info"`
	Shape          string   `json:"shape"`
	Rank           int      `json:"rank"`
	Doors          []*Door  `json:"doors"`
	Position       Position `json:"position"`
	Trunks         int      `json:"trunks"`
	DigSpots       int      `json:"dig_spots"`
	Rarity         string   `json:"rarity"`
	HasBeenEntered bool     `json:"has_been_entered"`

	ItemsForSale map[string]int `json:"items_for_sale,omitempty"`

	HasBeenSolved *bool `json:"has_been_solved,omitempty"`

	KeycardEntrySystemSwitch *bool `json:"keycard_entry_system_switch,omitempty"`
	GymnasiumSwitch          *bool `json:"gymnasium_switch,omitempty"`
	DarkroomSwitch           *bool `json:"darkroom_switch,omitempty"`
	GarageSwitch             *bool `json:"garage_switch,omitempty"`

	StoredItem *string `json:"stored_item,omitempty"`

	HasBeenUsed *bool `json:"has_been_used,omitempty"`

	Terminal json.RawMessage `json:"terminal,omitempty"`
}

// MarshalJSON emits all base fields plus the archetype's extras
func (r *Room) MarshalJSON() ([]byte, error) {
	out := roomJSON{
		Name:           r.Name,
		Cost:           r.Cost,
		Types:          r.Types,
		Description:    r.Description,
		AdditionalInfo: r.AdditionalInfo,
		Shape:          r.Shape,
		Rank:           r.Rank(DefaultHeight),
		Doors:          r.Doors,
		Position:       r.Position,
		Trunks:         r.Trunks,
		DigSpots:       r.DigSpots,
		Rarity:         r.Rarity,
		HasBeenEntered: r.HasBeenEntered,
	}
	if out.Types == nil {
		out.Types = []string{}
	}
	if out.Doors == nil {
		out.Doors = []*Door{}
	}

	if r.Shop != nil {
		items := r.Shop.ItemsForSale
		if items == nil {
			items = map[string]int{}
		}
		out.ItemsForSale = items
	}
	if r.Puzzle != nil {
		out.HasBeenSolved = &r.Puzzle.HasBeenSolved
	}
	if r.Switches != nil {
		out.KeycardEntrySystemSwitch = &r.Switches.KeycardEntrySystem
		out.GymnasiumSwitch = &r.Switches.Gymnasium
		out.DarkroomSwitch = &r.Switches.Darkroom
		out.GarageSwitch = &r.Switches.Garage
	}
	if r.CoatCheck != nil {
		out.StoredItem = &r.CoatCheck.StoredItem
	}
	if r.Passage != nil {
		out.HasBeenUsed = &r.Passage.HasBeenUsed
	}
	if r.Terminal != nil {
		raw, err := json.Marshal(r.Terminal)
		if err != nil {
			return nil, err
		}
		out.Terminal = raw
	}

	return json.Marshal(out)
}

// UnmarshalJSON decodes a stored room and re-specializes it purely from its
// name, substituting archetype defaults for any extras the stored data omits
func (r *Room) UnmarshalJSON(data []byte) error {
	var in roomJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	*r = Room{
		Name:           upper(in.Name),
		Cost:           in.Cost,
		Types:          in.Types,
		Description:    in.Description,
		AdditionalInfo: in.AdditionalInfo,
		Shape:          in.Shape,
		Doors:          in.Doors,
		Position:       in.Position,
		Trunks:         in.Trunks,
		DigSpots:       in.DigSpots,
		Rarity:         in.Rarity,
		HasBeenEntered: in.HasBeenEntered,
		Archetype:      ArchetypeGeneric,
	}
	if r.Doors == nil {
		r.Doors = []*Door{}
	}

	switch ArchetypeForName(r.Name) {
	case ArchetypeShop:
		r.Archetype = ArchetypeShop
		r.Shop = &ShopDetails{ItemsForSale: in.ItemsForSale}
		if r.Shop.ItemsForSale == nil {
			r.Shop.ItemsForSale = map[string]int{}
		}
	case ArchetypePuzzle:
		r.Archetype = ArchetypePuzzle
		r.Puzzle = &PuzzleDetails{}
		if in.HasBeenSolved != nil {
			r.Puzzle.HasBeenSolved = *in.HasBeenSolved
		}
	case ArchetypeUtilityCloset:
		r.Archetype = ArchetypeUtilityCloset
		r.Switches = DefaultSwitchPanel()
		if in.KeycardEntrySystemSwitch != nil {
			r.Switches.KeycardEntrySystem = *in.KeycardEntrySystemSwitch
		}
		if in.GymnasiumSwitch != nil {
			r.Switches.Gymnasium = *in.GymnasiumSwitch
		}
		if in.DarkroomSwitch != nil {
			r.Switches.Darkroom = *in.DarkroomSwitch
		}
		if in.GarageSwitch != nil {
			r.Switches.Garage = *in.GarageSwitch
		}
	case ArchetypeCoatCheck:
		r.Archetype = ArchetypeCoatCheck
		r.CoatCheck = &CoatCheckDetails{}
		if in.StoredItem != nil {
			r.CoatCheck.StoredItem = *in.StoredItem
		}
	case ArchetypeSecretPassage:
		r.Archetype = ArchetypeSecretPassage
		r.Passage = &PassageDetails{}
		if in.HasBeenUsed != nil {
			r.Passage.HasBeenUsed = *in.HasBeenUsed
		}
	case ArchetypeSecurity, ArchetypeOffice, ArchetypeLaboratory, ArchetypeShelter:
		arch := ArchetypeForName(r.Name)
		r.Archetype = arch
		term := NewTerminal(terminalKindFor(arch))
		if len(in.Terminal) > 0 {
			if err := json.Unmarshal(in.Terminal, term); err != nil {
				return err
			}
		}
		r.Terminal = term
	}

	return nil
}

// terminalKindFor maps a terminal-bearing archetype to its terminal kind
func terminalKindFor(a Archetype) TerminalKind {
	switch a {
	case ArchetypeSecurity:
		return TerminalSecurity
	case ArchetypeOffice:
		return TerminalOffice
	case ArchetypeLaboratory:
		return TerminalLaboratory
	case ArchetypeShelter:
		return TerminalShelter
	default:
		return ""
	}
}
