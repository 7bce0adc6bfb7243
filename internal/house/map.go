package house

import (
	"encoding/json"

	"github.com/brownlk99/blue-prince-ml-sub000/internal/errors"
)

// Default grid dimensions for a Mount Holly run
const (
	DefaultWidth  = 5
	DefaultHeight = 9
)

// Map owns the width x height grid of rooms. A nil cell is undrafted space.
// The map is mutated by exactly one caller at a time (the surrounding
// application is turn-based), so it carries no locking of its own.
type Map struct {
	Width  int
	Height int
	Grid   [][]*Room // indexed [y][x]
}

// NewMap creates an empty house grid. Non-positive dimensions fall back to
// the defaults.
func NewMap(width, height int) *Map {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	grid := make([][]*Room, height)
	for y := range grid {
		grid[y] = make([]*Room, width)
	}
	return &Map{
		Width:  width,
		Height: height,
		Grid:   grid,
	}
}

// InBounds reports whether (x, y) is a valid grid cell
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// PlaceRoom inserts the room at its own position. An existing occupant is
// overwritten; re-placement is how specialization upgrades land in the grid.
func (m *Map) PlaceRoom(room *Room) error {
	if room == nil {
		return errors.InvalidArgument("room cannot be nil")
	}
	if !m.InBounds(room.Position.X, room.Position.Y) {
		return errors.OutOfBoundsf("room position %s is outside the %dx%d grid", room.Position, m.Width, m.Height).
			WithMeta("room", room.Name)
	}
	m.Grid[room.Position.Y][room.Position.X] = room
	return nil
}

// UpdateRoom replaces the room at its position, requiring a current occupant
func (m *Map) UpdateRoom(room *Room) error {
	if room == nil {
		return errors.InvalidArgument("room cannot be nil")
	}
	if !m.InBounds(room.Position.X, room.Position.Y) {
		return errors.OutOfBoundsf("room position %s is outside the %dx%d grid", room.Position, m.Width, m.Height).
			WithMeta("room", room.Name)
	}
	if m.Grid[room.Position.Y][room.Position.X] == nil {
		return errors.NotFoundf("no room exists at %s to update", room.Position)
	}
	m.Grid[room.Position.Y][room.Position.X] = room
	return nil
}

// RoomAt returns the occupant of (x, y), or nil for empty or out-of-bounds
// cells. Lookups are lenient because callers probe neighbor cells that may
// be off-grid.
func (m *Map) RoomAt(x, y int) *Room {
	if !m.InBounds(x, y) {
		return nil
	}
	return m.Grid[y][x]
}

// RoomByName returns the first room with the given name, or nil. Names are
// not unique across the house; prefer RoomsByName when duplicates matter.
func (m *Map) RoomByName(name string) *Room {
	name = upper(name)
	for _, row := range m.Grid {
		for _, room := range row {
			if room != nil && room.Name == name {
				return room
			}
		}
	}
	return nil
}

// RoomsByName returns every room with the given name
func (m *Map) RoomsByName(name string) []*Room {
	name = upper(name)
	var rooms []*Room
	for _, row := range m.Grid {
		for _, room := range row {
			if room != nil && room.Name == name {
				rooms = append(rooms, room)
			}
		}
	}
	return rooms
}

// CountOccupiedRooms returns the number of drafted cells. A fresh run counts
// exactly the two seeded permanent rooms.
func (m *Map) CountOccupiedRooms() int {
	count := 0
	for _, row := range m.Grid {
		for _, room := range row {
			if room != nil {
				count++
			}
		}
	}
	return count
}

// AvailableActions are the per-scan flags the action-decision collaborator
// uses to avoid offering impossible actions
type AvailableActions struct {
	ShopPresent                bool
	UnsolvedPuzzlePresent      bool
	TrunkPresent               bool
	DigSpotPresent             bool
	TerminalPresent            bool
	CoatCheckPresent           bool
	UtilityClosetPresent       bool
	UnusedSecretPassagePresent bool
}

func (a AvailableActions) all() bool {
	return a.ShopPresent && a.UnsolvedPuzzlePresent && a.TrunkPresent &&
		a.DigSpotPresent && a.TerminalPresent && a.CoatCheckPresent &&
		a.UtilityClosetPresent && a.UnusedSecretPassagePresent
}

// ScanForAvailableActions re-derives the action flags from the whole grid.
// Room state changes between calls, so the result is never cached.
func (m *Map) ScanForAvailableActions() AvailableActions {
	var flags AvailableActions
	for _, row := range m.Grid {
		for _, room := range row {
			if room == nil {
				continue
			}
			if room.Shop != nil {
				flags.ShopPresent = true
			}
			if room.Puzzle != nil && !room.Puzzle.HasBeenSolved {
				flags.UnsolvedPuzzlePresent = true
			}
			if room.CoatCheck != nil {
				flags.CoatCheckPresent = true
			}
			if room.Switches != nil {
				flags.UtilityClosetPresent = true
			}
			if room.Passage != nil && !room.Passage.HasBeenUsed {
				flags.UnusedSecretPassagePresent = true
			}
			if room.Trunks > 0 {
				flags.TrunkPresent = true
			}
			if room.DigSpots > 0 {
				flags.DigSpotPresent = true
			}
			if room.Terminal != nil {
				flags.TerminalPresent = true
			}
			if flags.all() {
				return flags
			}
		}
	}
	return flags
}

// ConnectAdjacentDoors reconciles the new room's doors against its
// neighbors. Two passes: the room's own doors first, then a retroactive
// sweep that blocks any neighbor door now proven to face a wall. Placing a
// room can both consume its own uncertainty and resolve a previously
// unrelated "?" on an already-placed neighbor, which is why both passes are
// needed. Total over any grid state; never fails.
func (m *Map) ConnectAdjacentDoors(newRoom *Room) {
	if newRoom == nil {
		return
	}
	x, y := newRoom.Position.X, newRoom.Position.Y

	for _, door := range newRoom.Doors {
		if door.Orientation == OrientationUnknown {
			continue
		}
		dx, dy := door.Orientation.Delta()
		nx, ny := x+dx, y+dy

		// a boundary door is permanently a dead end
		if !m.InBounds(nx, ny) {
			door.Block()
			continue
		}

		neighbor := m.RoomAt(nx, ny)
		if neighbor == nil {
			// genuinely unknown until that cell is drafted
			continue
		}

		matching, err := neighbor.DoorByOrientation(door.Orientation.Opposite())
		if err != nil {
			// neighbor has no opening on the facing side
			door.Block()
			continue
		}

		door.LeadsTo = neighbor.Name
		door.Locked = TriFalse
		// the already-placed side's recorded security status is
		// authoritative, so the flag flows neighbor -> new only
		door.IsSecurity = matching.IsSecurity
		matching.LeadsTo = newRoom.Name
		matching.Locked = TriFalse
	}

	// retroactive pass: the new room has definitively revealed which of its
	// sides have no opening, converting the facing neighbors' doors into
	// confirmed dead ends
	for _, dir := range []Orientation{North, South, East, West} {
		dx, dy := dir.Delta()
		neighbor := m.RoomAt(x+dx, y+dy)
		if neighbor == nil {
			continue
		}
		neighborDoor, err := neighbor.DoorByOrientation(dir.Opposite())
		if err != nil {
			continue
		}
		if !newRoom.HasDoorFacing(dir) {
			neighborDoor.Block()
		}
	}
}

// UpdateSecurityDoors re-derives every security door's lock state from
// scratch. Must be re-run after any door edit, room connection, terminal
// mode change or utility-closet switch toggle; it is deliberately not
// incremental.
func (m *Map) UpdateSecurityDoors() {
	securityRoom := m.RoomByName("SECURITY")
	utilityCloset := m.RoomByName("UTILITY CLOSET")

	// default to locked unless both the terminal policy and the physical
	// keycard cut-off agree
	unlockAll := false
	if securityRoom != nil && securityRoom.Terminal != nil &&
		utilityCloset != nil && utilityCloset.Switches != nil {
		unlockAll = securityRoom.Terminal.OfflineMode == OfflineUnlocked &&
			!utilityCloset.Switches.KeycardEntrySystem
	}

	for _, row := range m.Grid {
		for _, room := range row {
			if room == nil {
				continue
			}
			for _, door := range room.Doors {
				if !door.IsSecurity.IsTrue() {
					continue
				}
				if unlockAll {
					door.Locked = TriFalse
				} else if door.LeadsTo == LeadsToUnknown {
					// without the master unlock, only doors the player has
					// not opened yet are forced shut; resolved doors keep
					// their history
					door.Locked = TriTrue
				}
			}
		}
	}
}

// mapJSON is the persisted {width, height, rooms} layout
type mapJSON struct {
	Width  int       `json:"width"`
	Height int       `json:"height"`
	Rooms  [][]*Room `json:"rooms"`
}

// MarshalJSON encodes the grid in the persisted nested layout
func (m *Map) MarshalJSON() ([]byte, error) {
	return json.Marshal(mapJSON{
		Width:  m.Width,
		Height: m.Height,
		Rooms:  m.Grid,
	})
}

// UnmarshalJSON decodes the persisted layout, re-specializing each room
// from its name
func (m *Map) UnmarshalJSON(data []byte) error {
	var in mapJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	if in.Width <= 0 {
		in.Width = DefaultWidth
	}
	if in.Height <= 0 {
		in.Height = DefaultHeight
	}

	fresh := NewMap(in.Width, in.Height)
	for y, row := range in.Rooms {
		if y >= fresh.Height {
			break
		}
		for x, room := range row {
			if x >= fresh.Width {
				break
			}
			fresh.Grid[y][x] = room
		}
	}
	*m = *fresh
	return nil
}
