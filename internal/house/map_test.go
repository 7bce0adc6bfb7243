package house

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brownlk99/blue-prince-ml-sub000/internal/errors"
)

func testRoom(name, shape string, pos Position, orientations ...Orientation) *Room {
	doors := make([]*Door, 0, len(orientations))
	for _, o := range orientations {
		doors = append(doors, NewDoor(o))
	}
	return NewRoom(name, shape, pos, doors)
}

func TestPlaceRoom_OutOfBounds(t *testing.T) {
	m := NewMap(5, 9)

	err := m.PlaceRoom(testRoom("GREAT HALL", "CROSS", Position{X: 5, Y: 0}))
	require.Error(t, err)
	assert.True(t, errors.IsOutOfBounds(err))

	err = m.PlaceRoom(testRoom("GREAT HALL", "CROSS", Position{X: 0, Y: -1}))
	require.Error(t, err)
	assert.True(t, errors.IsOutOfBounds(err))
}

func TestPlaceRoom_OverwriteAllowed(t *testing.T) {
	m := NewMap(5, 9)

	generic := testRoom("SECURITY", "STRAIGHT", Position{X: 1, Y: 1}, North, South)
	require.NoError(t, m.PlaceRoom(generic))

	specialized := Specialize(testRoom("SECURITY", "STRAIGHT", Position{X: 1, Y: 1}, North, South))
	require.NoError(t, m.PlaceRoom(specialized))

	assert.Same(t, specialized, m.RoomAt(1, 1))
}

func TestUpdateRoom_RequiresOccupant(t *testing.T) {
	m := NewMap(5, 9)

	err := m.UpdateRoom(testRoom("DEN", "DEAD END", Position{X: 0, Y: 0}, South))
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))

	require.NoError(t, m.PlaceRoom(testRoom("DEN", "DEAD END", Position{X: 0, Y: 0}, South)))
	assert.NoError(t, m.UpdateRoom(testRoom("DEN", "DEAD END", Position{X: 0, Y: 0}, South)))
}

func TestRoomAt_LenientLookup(t *testing.T) {
	m := NewMap(5, 9)
	assert.Nil(t, m.RoomAt(-1, 0))
	assert.Nil(t, m.RoomAt(0, 99))
	assert.Nil(t, m.RoomAt(2, 2))
}

func TestRoomsByName_Duplicates(t *testing.T) {
	m := NewMap(5, 9)
	require.NoError(t, m.PlaceRoom(testRoom("HALLWAY", "STRAIGHT", Position{X: 0, Y: 0}, South, East)))
	require.NoError(t, m.PlaceRoom(testRoom("HALLWAY", "STRAIGHT", Position{X: 3, Y: 4}, North, South)))

	assert.NotNil(t, m.RoomByName("hallway"))
	assert.Len(t, m.RoomsByName("HALLWAY"), 2)
	assert.Nil(t, m.RoomByName("BILLIARD ROOM"))
	assert.Equal(t, 2, m.CountOccupiedRooms())
}

func TestConnectAdjacentDoors_BoundaryDoorBlocked(t *testing.T) {
	m := NewMap(5, 9)

	// west-facing door at x=0: the neighbor cell is off-grid
	room := testRoom("VERANDA", "STRAIGHT", Position{X: 0, Y: 4}, West, East)
	require.NoError(t, m.PlaceRoom(room))
	m.ConnectAdjacentDoors(room)

	west, err := room.DoorByOrientation(West)
	require.NoError(t, err)
	assert.Equal(t, LeadsToBlocked, west.LeadsTo)
	assert.Equal(t, TriNA, west.Locked)
	assert.Equal(t, TriNA, west.IsSecurity)

	// the east door faces an empty in-bounds cell: still unknown
	east, err := room.DoorByOrientation(East)
	require.NoError(t, err)
	assert.Equal(t, LeadsToUnknown, east.LeadsTo)
	assert.Equal(t, TriUnknown, east.Locked)
}

func TestConnectAdjacentDoors_EntranceHallScenario(t *testing.T) {
	m := NewMap(5, 9)

	entrance := NewRoom("ENTRANCE HALL", "T", Position{X: 2, Y: 8}, []*Door{
		{Orientation: West, LeadsTo: LeadsToUnknown, Locked: TriFalse, IsSecurity: TriFalse},
		{Orientation: North, LeadsTo: LeadsToUnknown, Locked: TriFalse, IsSecurity: TriFalse},
		{Orientation: East, LeadsTo: LeadsToUnknown, Locked: TriFalse, IsSecurity: TriFalse},
	})
	require.NoError(t, m.PlaceRoom(entrance))

	hallway := testRoom("HALLWAY", "DEAD END", Position{X: 2, Y: 7}, South)
	require.NoError(t, m.PlaceRoom(hallway))
	m.ConnectAdjacentDoors(hallway)

	south, err := hallway.DoorByOrientation(South)
	require.NoError(t, err)
	assert.Equal(t, "ENTRANCE HALL", south.LeadsTo)
	assert.Equal(t, TriFalse, south.Locked)

	north, err := entrance.DoorByOrientation(North)
	require.NoError(t, err)
	assert.Equal(t, "HALLWAY", north.LeadsTo)
	assert.Equal(t, TriFalse, north.Locked)

	// no neighbors drafted west or east yet
	west, err := entrance.DoorByOrientation(West)
	require.NoError(t, err)
	assert.Equal(t, LeadsToUnknown, west.LeadsTo)
	east, err := entrance.DoorByOrientation(East)
	require.NoError(t, err)
	assert.Equal(t, LeadsToUnknown, east.LeadsTo)
}

func TestConnectAdjacentDoors_SecurityFlagFlowsFromNeighborOnly(t *testing.T) {
	m := NewMap(5, 9)

	existing := NewRoom("VAULT", "DEAD END", Position{X: 2, Y: 4}, []*Door{
		{Orientation: South, LeadsTo: LeadsToUnknown, Locked: TriUnknown, IsSecurity: TriTrue},
	})
	require.NoError(t, m.PlaceRoom(existing))

	incoming := NewRoom("CORRIDOR", "STRAIGHT", Position{X: 2, Y: 5}, []*Door{
		{Orientation: North, LeadsTo: LeadsToUnknown, Locked: TriUnknown, IsSecurity: TriFalse},
		{Orientation: South, LeadsTo: LeadsToUnknown, Locked: TriUnknown, IsSecurity: TriFalse},
	})
	require.NoError(t, m.PlaceRoom(incoming))
	m.ConnectAdjacentDoors(incoming)

	north, err := incoming.DoorByOrientation(North)
	require.NoError(t, err)
	assert.Equal(t, "VAULT", north.LeadsTo)
	assert.Equal(t, TriFalse, north.Locked)
	// copied from the already-placed side
	assert.Equal(t, TriTrue, north.IsSecurity)

	existingSouth, err := existing.DoorByOrientation(South)
	require.NoError(t, err)
	assert.Equal(t, "CORRIDOR", existingSouth.LeadsTo)
	assert.Equal(t, TriFalse, existingSouth.Locked)
	// the neighbor's own recorded flag is authoritative and untouched
	assert.Equal(t, TriTrue, existingSouth.IsSecurity)
}

func TestConnectAdjacentDoors_NoMatchingOppositeDoor(t *testing.T) {
	m := NewMap(5, 9)

	// neighbor has a door set but none facing south
	neighbor := testRoom("CLOSET", "DEAD END", Position{X: 1, Y: 3}, North)
	require.NoError(t, m.PlaceRoom(neighbor))

	room := testRoom("GALLERY", "DEAD END", Position{X: 1, Y: 4}, North)
	require.NoError(t, m.PlaceRoom(room))
	m.ConnectAdjacentDoors(room)

	north, err := room.DoorByOrientation(North)
	require.NoError(t, err)
	assert.Equal(t, LeadsToBlocked, north.LeadsTo)
	assert.Equal(t, TriNA, north.Locked)
	assert.Equal(t, TriNA, north.IsSecurity)
}

func TestConnectAdjacentDoors_RetroactiveBlocking(t *testing.T) {
	m := NewMap(5, 9)

	// neighbor's south door is unresolved until the new room proves it
	// faces a wall
	neighbor := testRoom("NURSERY", "DEAD END", Position{X: 2, Y: 2}, South)
	require.NoError(t, m.PlaceRoom(neighbor))

	// new room directly south, with no north door
	room := testRoom("PANTRY", "STRAIGHT", Position{X: 2, Y: 3}, East, West)
	require.NoError(t, m.PlaceRoom(room))
	m.ConnectAdjacentDoors(room)

	south, err := neighbor.DoorByOrientation(South)
	require.NoError(t, err)
	assert.Equal(t, LeadsToBlocked, south.LeadsTo)
	assert.Equal(t, TriNA, south.Locked)
	assert.Equal(t, TriNA, south.IsSecurity)
}

func TestConnectAdjacentDoors_Idempotent(t *testing.T) {
	m := NewMap(5, 9)

	a := testRoom("STUDY", "STRAIGHT", Position{X: 1, Y: 5}, North, East)
	b := testRoom("LIBRARY", "STRAIGHT", Position{X: 2, Y: 5}, West, East)
	require.NoError(t, m.PlaceRoom(a))
	m.ConnectAdjacentDoors(a)
	require.NoError(t, m.PlaceRoom(b))
	m.ConnectAdjacentDoors(b)

	snapshot := func() string {
		data, err := json.Marshal(m)
		require.NoError(t, err)
		return string(data)
	}

	before := snapshot()
	m.ConnectAdjacentDoors(b)
	assert.Equal(t, before, snapshot())
	m.ConnectAdjacentDoors(a)
	assert.Equal(t, before, snapshot())
}

// securityFixture builds a map holding a security room, a utility closet
// and one far-away room with security doors in various resolution states
func securityFixture(t *testing.T) (*Map, *Room, *Room, *Room) {
	t.Helper()
	m := NewMap(5, 9)

	security := Specialize(testRoom("SECURITY", "STRAIGHT", Position{X: 0, Y: 0}, South, East))
	closet := Specialize(testRoom("UTILITY CLOSET", "DEAD END", Position{X: 4, Y: 0}, South))
	wing := NewRoom("WEST WING HALL", "T", Position{X: 2, Y: 4}, []*Door{
		{Orientation: North, LeadsTo: LeadsToUnknown, Locked: TriUnknown, IsSecurity: TriTrue},
		{Orientation: South, LeadsTo: "ENTRANCE HALL", Locked: TriFalse, IsSecurity: TriTrue},
		{Orientation: West, LeadsTo: LeadsToBlocked, Locked: TriNA, IsSecurity: TriTrue},
	})
	require.NoError(t, m.PlaceRoom(security))
	require.NoError(t, m.PlaceRoom(closet))
	require.NoError(t, m.PlaceRoom(wing))
	return m, security, closet, wing
}

func TestUpdateSecurityDoors_Defaults(t *testing.T) {
	// keycard switch on (default) + offline mode LOCKED (default):
	// unresolved security doors lock, resolved ones keep their state
	m, _, _, wing := securityFixture(t)
	m.UpdateSecurityDoors()

	north, _ := wing.DoorByOrientation(North)
	assert.Equal(t, TriTrue, north.Locked)

	south, _ := wing.DoorByOrientation(South)
	assert.Equal(t, TriFalse, south.Locked)

	west, _ := wing.DoorByOrientation(West)
	assert.Equal(t, TriNA, west.Locked)
}

func TestUpdateSecurityDoors_UnlockAll(t *testing.T) {
	m, security, closet, wing := securityFixture(t)

	security.Terminal.OfflineMode = OfflineUnlocked
	closet.Switches.KeycardEntrySystem = false
	m.UpdateSecurityDoors()

	// every security door unlocks, even blocked or unresolved ones
	for _, door := range wing.Doors {
		assert.Equal(t, TriFalse, door.Locked, "door %s", door.Orientation)
	}
}

func TestUpdateSecurityDoors_BothConditionsRequired(t *testing.T) {
	cases := []struct {
		name    string
		offline OfflineMode
		keycard bool
	}{
		{name: "terminal unlocked but keycard powered", offline: OfflineUnlocked, keycard: true},
		{name: "keycard off but terminal locked", offline: OfflineLocked, keycard: false},
		{name: "neither", offline: OfflineLocked, keycard: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, security, closet, wing := securityFixture(t)
			security.Terminal.OfflineMode = tc.offline
			closet.Switches.KeycardEntrySystem = tc.keycard
			m.UpdateSecurityDoors()

			north, _ := wing.DoorByOrientation(North)
			assert.Equal(t, TriTrue, north.Locked)
			south, _ := wing.DoorByOrientation(South)
			assert.Equal(t, TriFalse, south.Locked)
		})
	}
}

func TestUpdateSecurityDoors_MissingRoomsDefaultsToLocked(t *testing.T) {
	m := NewMap(5, 9)
	wing := NewRoom("WEST WING HALL", "DEAD END", Position{X: 2, Y: 4}, []*Door{
		{Orientation: North, LeadsTo: LeadsToUnknown, Locked: TriUnknown, IsSecurity: TriTrue},
	})
	require.NoError(t, m.PlaceRoom(wing))

	m.UpdateSecurityDoors()
	north, _ := wing.DoorByOrientation(North)
	assert.Equal(t, TriTrue, north.Locked)
}

func TestUpdateSecurityDoors_GenericSecurityRoomDoesNotUnlock(t *testing.T) {
	// a room merely named SECURITY without its terminal never satisfies
	// the unlock conditions
	m := NewMap(5, 9)
	require.NoError(t, m.PlaceRoom(testRoom("SECURITY", "STRAIGHT", Position{X: 0, Y: 0}, South)))
	closet := Specialize(testRoom("UTILITY CLOSET", "DEAD END", Position{X: 4, Y: 0}, South))
	closet.Switches.KeycardEntrySystem = false
	require.NoError(t, m.PlaceRoom(closet))

	wing := NewRoom("WEST WING HALL", "DEAD END", Position{X: 2, Y: 4}, []*Door{
		{Orientation: North, LeadsTo: LeadsToUnknown, Locked: TriUnknown, IsSecurity: TriTrue},
	})
	require.NoError(t, m.PlaceRoom(wing))

	m.UpdateSecurityDoors()
	north, _ := wing.DoorByOrientation(North)
	assert.Equal(t, TriTrue, north.Locked)
}

func TestUpdateSecurityDoors_CaseInsensitiveFlag(t *testing.T) {
	m, security, closet, _ := securityFixture(t)
	lower := NewRoom("BOILER ROOM", "DEAD END", Position{X: 0, Y: 8}, []*Door{
		{Orientation: North, LeadsTo: LeadsToUnknown, Locked: TriUnknown, IsSecurity: TriState("true")},
	})
	require.NoError(t, m.PlaceRoom(lower))

	security.Terminal.OfflineMode = OfflineUnlocked
	closet.Switches.KeycardEntrySystem = false
	m.UpdateSecurityDoors()

	north, _ := lower.DoorByOrientation(North)
	assert.Equal(t, TriFalse, north.Locked)
}

func TestScanForAvailableActions(t *testing.T) {
	m := NewMap(5, 9)
	assert.Equal(t, AvailableActions{}, m.ScanForAvailableActions())

	kitchen := Specialize(testRoom("KITCHEN", "DEAD END", Position{X: 0, Y: 0}, South))
	require.NoError(t, m.PlaceRoom(kitchen))

	parlor := Specialize(testRoom("PARLOR", "DEAD END", Position{X: 1, Y: 0}, South))
	require.NoError(t, m.PlaceRoom(parlor))

	den := testRoom("DEN", "DEAD END", Position{X: 2, Y: 0}, South)
	den.Trunks = 1
	den.DigSpots = 2
	require.NoError(t, m.PlaceRoom(den))

	office := Specialize(testRoom("OFFICE", "DEAD END", Position{X: 3, Y: 0}, South))
	require.NoError(t, m.PlaceRoom(office))

	flags := m.ScanForAvailableActions()
	assert.True(t, flags.ShopPresent)
	assert.True(t, flags.UnsolvedPuzzlePresent)
	assert.True(t, flags.TrunkPresent)
	assert.True(t, flags.DigSpotPresent)
	assert.True(t, flags.TerminalPresent)
	assert.False(t, flags.CoatCheckPresent)
	assert.False(t, flags.UtilityClosetPresent)
	assert.False(t, flags.UnusedSecretPassagePresent)

	// a solved puzzle and a used passage stop counting
	parlor.Puzzle.HasBeenSolved = true
	passage := Specialize(testRoom("SECRET PASSAGE", "DEAD END", Position{X: 4, Y: 0}, South))
	passage.Passage.HasBeenUsed = true
	require.NoError(t, m.PlaceRoom(passage))

	flags = m.ScanForAvailableActions()
	assert.False(t, flags.UnsolvedPuzzlePresent)
	assert.False(t, flags.UnusedSecretPassagePresent)
}

func TestMapJSONRoundTrip(t *testing.T) {
	m := NewMap(5, 9)

	entrance := NewRoom("ENTRANCE HALL", "T", Position{X: 2, Y: 8}, []*Door{
		{Orientation: West, LeadsTo: LeadsToUnknown, Locked: TriFalse, IsSecurity: TriFalse},
		{Orientation: North, LeadsTo: LeadsToUnknown, Locked: TriFalse, IsSecurity: TriFalse},
		{Orientation: East, LeadsTo: LeadsToUnknown, Locked: TriFalse, IsSecurity: TriFalse},
	})
	entrance.Types = []string{"PERMANENT", "BLUEPRINT"}
	entrance.HasBeenEntered = true
	require.NoError(t, m.PlaceRoom(entrance))

	security := Specialize(testRoom("SECURITY", "STRAIGHT", Position{X: 0, Y: 3}, North, South))
	security.Terminal.OfflineMode = OfflineUnlocked
	security.Terminal.KnowsPassword = true
	require.NoError(t, m.PlaceRoom(security))

	closet := Specialize(testRoom("UTILITY CLOSET", "DEAD END", Position{X: 4, Y: 2}, West))
	closet.Switches.Darkroom = true
	require.NoError(t, m.PlaceRoom(closet))

	data, err := json.Marshal(m)
	require.NoError(t, err)

	var restored Map
	require.NoError(t, json.Unmarshal(data, &restored))

	assert.Equal(t, 5, restored.Width)
	assert.Equal(t, 9, restored.Height)
	assert.Equal(t, 3, restored.CountOccupiedRooms())

	restoredSecurity := restored.RoomByName("SECURITY")
	require.NotNil(t, restoredSecurity)
	assert.Equal(t, ArchetypeSecurity, restoredSecurity.Archetype)
	require.NotNil(t, restoredSecurity.Terminal)
	assert.Equal(t, TerminalSecurity, restoredSecurity.Terminal.Kind)
	assert.Equal(t, OfflineUnlocked, restoredSecurity.Terminal.OfflineMode)
	assert.True(t, restoredSecurity.Terminal.KnowsPassword)

	restoredCloset := restored.RoomByName("UTILITY CLOSET")
	require.NotNil(t, restoredCloset)
	require.NotNil(t, restoredCloset.Switches)
	assert.True(t, restoredCloset.Switches.KeycardEntrySystem)
	assert.True(t, restoredCloset.Switches.Darkroom)
	assert.False(t, restoredCloset.Switches.Garage)

	restoredEntrance := restored.RoomAt(2, 8)
	require.NotNil(t, restoredEntrance)
	assert.Equal(t, []string{"PERMANENT", "BLUEPRINT"}, restoredEntrance.Types)
	assert.Len(t, restoredEntrance.Doors, 3)

	// round-trip again: the serialized form is stable
	again, err := json.Marshal(&restored)
	require.NoError(t, err)
	assert.JSONEq(t, string(data), string(again))
}

func TestRender_ShowsConnectorSymbols(t *testing.T) {
	m := NewMap(5, 9)

	a := testRoom("STUDY", "STRAIGHT", Position{X: 1, Y: 5}, East, West)
	b := testRoom("LIBRARY", "STRAIGHT", Position{X: 2, Y: 5}, West, East)
	require.NoError(t, m.PlaceRoom(a))
	m.ConnectAdjacentDoors(a)
	require.NoError(t, m.PlaceRoom(b))
	m.ConnectAdjacentDoors(b)

	out := m.Render()
	assert.Contains(t, out, "CURRENT HOUSE MAP")
	assert.Contains(t, out, "LEGEND:")
	// both facing doors resolved and unlocked: "=" connector
	assert.Contains(t, out, "=")
}
