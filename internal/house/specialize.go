package house

// ArchetypeForName maps a room name to its archetype. This is the single
// dispatch table for the closed variant set; names not listed stay generic.
func ArchetypeForName(name string) Archetype {
	switch upper(name) {
	case "KITCHEN", "COMMISSARY", "LOCKSMITH", "SHOWROOM":
		return ArchetypeShop
	case "PARLOR":
		return ArchetypePuzzle
	case "UTILITY CLOSET":
		return ArchetypeUtilityCloset
	case "COAT CHECK":
		return ArchetypeCoatCheck
	case "SECRET PASSAGE":
		return ArchetypeSecretPassage
	case "SECURITY":
		return ArchetypeSecurity
	case "OFFICE":
		return ArchetypeOffice
	case "LABORATORY":
		return ArchetypeLaboratory
	case "SHELTER":
		return ArchetypeShelter
	default:
		return ArchetypeGeneric
	}
}

// Specialize upgrades a generic room to the archetype its name implies,
// attaching default capability data. All base fields carry over untouched.
// Specializing a room that already carries the correct archetype is a no-op,
// so the drafting collaborator can call this unconditionally.
func Specialize(room *Room) *Room {
	arch := ArchetypeForName(room.Name)
	if room.Archetype == arch {
		return room
	}

	room.Archetype = arch
	switch arch {
	case ArchetypeShop:
		if room.Shop == nil {
			room.Shop = &ShopDetails{ItemsForSale: map[string]int{}}
		}
	case ArchetypePuzzle:
		if room.Puzzle == nil {
			room.Puzzle = &PuzzleDetails{}
		}
	case ArchetypeUtilityCloset:
		if room.Switches == nil {
			room.Switches = DefaultSwitchPanel()
		}
	case ArchetypeCoatCheck:
		if room.CoatCheck == nil {
			room.CoatCheck = &CoatCheckDetails{}
		}
	case ArchetypeSecretPassage:
		if room.Passage == nil {
			room.Passage = &PassageDetails{}
		}
	case ArchetypeSecurity, ArchetypeOffice, ArchetypeLaboratory, ArchetypeShelter:
		// terminal-bearing rooms: the generic draft never carries a
		// terminal, so one is created here
		if room.Terminal == nil {
			room.Terminal = NewTerminal(terminalKindFor(arch))
		}
	}
	return room
}
