package house

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArchetypeForName(t *testing.T) {
	cases := map[string]Archetype{
		"KITCHEN":        ArchetypeShop,
		"commissary":     ArchetypeShop,
		"LOCKSMITH":      ArchetypeShop,
		"SHOWROOM":       ArchetypeShop,
		"PARLOR":         ArchetypePuzzle,
		"UTILITY CLOSET": ArchetypeUtilityCloset,
		"COAT CHECK":     ArchetypeCoatCheck,
		"SECRET PASSAGE": ArchetypeSecretPassage,
		"SECURITY":       ArchetypeSecurity,
		"office":         ArchetypeOffice,
		"LABORATORY":     ArchetypeLaboratory,
		"SHELTER":        ArchetypeShelter,
		"BILLIARD ROOM":  ArchetypeGeneric,
		"":               ArchetypeGeneric,
	}
	for name, want := range cases {
		assert.Equal(t, want, ArchetypeForName(name), "name %q", name)
	}
}

func TestSpecialize_AttachesDefaults(t *testing.T) {
	closet := Specialize(NewRoom("UTILITY CLOSET", "DEAD END", Position{}, nil))
	assert.Equal(t, ArchetypeUtilityCloset, closet.Archetype)
	require.NotNil(t, closet.Switches)
	assert.True(t, closet.Switches.KeycardEntrySystem)
	assert.True(t, closet.Switches.Gymnasium)
	assert.False(t, closet.Switches.Darkroom)
	assert.False(t, closet.Switches.Garage)

	security := Specialize(NewRoom("SECURITY", "STRAIGHT", Position{}, nil))
	require.NotNil(t, security.Terminal)
	assert.Equal(t, TerminalSecurity, security.Terminal.Kind)
	assert.Equal(t, OfflineLocked, security.Terminal.OfflineMode)

	generic := Specialize(NewRoom("BILLIARD ROOM", "L", Position{}, nil))
	assert.Equal(t, ArchetypeGeneric, generic.Archetype)
	assert.Nil(t, generic.Shop)
	assert.Nil(t, generic.Terminal)
}

func TestSpecialize_PreservesBaseFields(t *testing.T) {
	room := NewRoom("KITCHEN", "STRAIGHT", Position{X: 1, Y: 7}, []*Door{NewDoor(North), NewDoor(South)})
	room.Cost = 2
	room.Rarity = "COMMON"
	room.HasBeenEntered = true

	shop := Specialize(room)
	assert.Same(t, room, shop)
	assert.Equal(t, 2, shop.Cost)
	assert.Equal(t, "COMMON", shop.Rarity)
	assert.True(t, shop.HasBeenEntered)
	assert.Len(t, shop.Doors, 2)
	require.NotNil(t, shop.Shop)
	assert.Empty(t, shop.Shop.ItemsForSale)
}

func TestSpecialize_Idempotent(t *testing.T) {
	parlor := Specialize(NewRoom("PARLOR", "DEAD END", Position{}, nil))
	parlor.Puzzle.HasBeenSolved = true

	again := Specialize(parlor)
	assert.Same(t, parlor, again)
	// existing capability data is never reset
	assert.True(t, again.Puzzle.HasBeenSolved)

	security := Specialize(NewRoom("SECURITY", "STRAIGHT", Position{}, nil))
	security.Terminal.OfflineMode = OfflineUnlocked
	Specialize(security)
	assert.Equal(t, OfflineUnlocked, security.Terminal.OfflineMode)
}
