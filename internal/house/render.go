package house

import (
	"fmt"
	"strings"

	"github.com/gookit/color"
)

// Connector symbols for door state between adjacent cells
const (
	symbolBlocked  = "X"
	symbolUnknown  = "?"
	symbolSecurity = "S"
	symbolLocked   = "L"
)

var archetypeColors = map[Archetype]color.Style{
	ArchetypeShop:          {color.FgYellow, color.OpBold},
	ArchetypePuzzle:        {color.FgMagenta, color.OpBold},
	ArchetypeUtilityCloset: {color.FgCyan, color.OpBold},
	ArchetypeCoatCheck:     {color.FgBlue, color.OpBold},
	ArchetypeSecretPassage: {color.FgGray, color.OpBold},
	ArchetypeSecurity:      {color.FgRed, color.OpBold},
	ArchetypeOffice:        {color.FgGreen, color.OpBold},
	ArchetypeLaboratory:    {color.FgLightGreen, color.OpBold},
	ArchetypeShelter:       {color.FgLightBlue, color.OpBold},
}

// Render draws the grid with per-door connector symbols for human display.
// The rendering is presentation only; nothing in the consistency algorithm
// reads it back.
func (m *Map) Render() string {
	var b strings.Builder

	b.WriteString(strings.Repeat("=", 60) + "\n")
	b.WriteString("CURRENT HOUSE MAP\n")
	b.WriteString(strings.Repeat("=", 60) + "\n")
	b.WriteString("\nLEGEND:\n")
	b.WriteString("   Rooms: [A] = First letter of room name (color-coded)\n")
	b.WriteString("   Connections:\n")
	b.WriteString("     - | = Open passage     ? = Unknown door\n")
	b.WriteString("     X   = Blocked door     L = Locked door\n")
	b.WriteString("     S   = Security door    = | = Unlocked passage\n")
	b.WriteString(strings.Repeat("-", 60) + "\n")

	for y := 0; y < m.Height; y++ {
		var row strings.Builder
		for x := 0; x < m.Width; x++ {
			room := m.Grid[y][x]
			if room != nil {
				row.WriteString(fmt.Sprintf("[%s  ]", m.roomInitial(room)))
			} else {
				row.WriteString("[   ]")
			}
			if x < m.Width-1 {
				row.WriteString(m.horizontalConnector(room, m.Grid[y][x+1]))
			}
		}
		b.WriteString(row.String() + "\n")

		if y < m.Height-1 {
			var connectors strings.Builder
			for x := 0; x < m.Width; x++ {
				connectors.WriteString(m.verticalConnector(m.Grid[y][x], m.Grid[y+1][x]))
				if x < m.Width-1 {
					connectors.WriteString("  ")
				}
			}
			if strings.TrimSpace(connectors.String()) != "" {
				b.WriteString(connectors.String() + "\n")
			}
		}
	}

	b.WriteString(strings.Repeat("=", 60) + "\n")
	return b.String()
}

// roomInitial returns the room's first letter, colored by archetype
func (m *Map) roomInitial(room *Room) string {
	if room.Name == "" {
		return " "
	}
	initial := string(room.Name[0])
	if style, ok := archetypeColors[room.Archetype]; ok {
		return style.Sprint(initial)
	}
	return initial
}

// horizontalConnector renders the passage between a cell and its eastern
// neighbor
func (m *Map) horizontalConnector(left, right *Room) string {
	if left == nil || right == nil {
		return "  "
	}
	leftDoor, errL := left.DoorByOrientation(East)
	rightDoor, errR := right.DoorByOrientation(West)
	if errL != nil || errR != nil {
		return "  "
	}
	return connectorSymbol(leftDoor, rightDoor, true) + " "
}

// verticalConnector renders the passage between a cell and its southern
// neighbor
func (m *Map) verticalConnector(top, bottom *Room) string {
	if top == nil || bottom == nil {
		return "     "
	}
	topDoor, errT := top.DoorByOrientation(South)
	bottomDoor, errB := bottom.DoorByOrientation(North)
	if errT != nil || errB != nil {
		return "     "
	}
	return "  " + connectorSymbol(topDoor, bottomDoor, false) + "  "
}

// connectorSymbol picks the display symbol from the pair of facing doors,
// in priority order: blocked, unknown, security, locked, unlocked, open
func connectorSymbol(a, b *Door, horizontal bool) string {
	switch {
	case a.LeadsTo == LeadsToBlocked || b.LeadsTo == LeadsToBlocked:
		return symbolBlocked
	case a.LeadsTo == LeadsToUnknown || b.LeadsTo == LeadsToUnknown:
		return symbolUnknown
	case a.IsSecurity.IsTrue() || b.IsSecurity.IsTrue():
		return symbolSecurity
	case a.Locked.IsTrue() || b.Locked.IsTrue():
		return symbolLocked
	case a.Locked.IsFalse() && b.Locked.IsFalse():
		if horizontal {
			return "="
		}
		return "|"
	default:
		if horizontal {
			return "-"
		}
		return "|"
	}
}
