// Package house implements the house map consistency engine: the room/door
// grid, the bidirectional door-connection algorithm, and the derived
// security-door lock propagation.
package house

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/brownlk99/blue-prince-ml-sub000/internal/errors"
)

// Orientation is a cardinal door direction on the grid
type Orientation string

const (
	North Orientation = "N"
	South Orientation = "S"
	East  Orientation = "E"
	West  Orientation = "W"

	// OrientationUnknown marks a freshly specified door whose direction has
	// not been set yet
	OrientationUnknown Orientation = "?"
)

// Opposite returns the facing direction (N<->S, E<->W)
func (o Orientation) Opposite() Orientation {
	switch o {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return OrientationUnknown
	}
}

// Delta returns the grid offset toward the neighbor cell in this direction.
// (0,0) is north-west; y increases southward.
func (o Orientation) Delta() (dx, dy int) {
	switch o {
	case North:
		return 0, -1
	case South:
		return 0, 1
	case East:
		return 1, 0
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

// ParseOrientation normalizes user input into an Orientation
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "N":
		return North, nil
	case "S":
		return South, nil
	case "E":
		return East, nil
	case "W":
		return West, nil
	default:
		return OrientationUnknown, errors.InvalidArgumentf("invalid orientation %q, must be one of N/S/E/W", s)
	}
}

// TriState is the three-valued lock/security state carried on a door. The
// serialized tokens match the recorded house data exactly; comparisons go
// through the helpers so casing never matters.
type TriState string

const (
	TriUnknown TriState = "?"
	TriTrue    TriState = "True"
	TriFalse   TriState = "False"
	TriNA      TriState = "N/A"
)

// IsTrue reports whether the state is affirmatively set, ignoring case
func (t TriState) IsTrue() bool {
	return strings.EqualFold(string(t), "true")
}

// IsFalse reports whether the state is affirmatively unset, ignoring case
func (t TriState) IsFalse() bool {
	return strings.EqualFold(string(t), "false")
}

// TriFromBool converts a bool into the canonical TriState token
func TriFromBool(b bool) TriState {
	if b {
		return TriTrue
	}
	return TriFalse
}

// ParseTriState normalizes user input into a TriState
func ParseTriState(s string) (TriState, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRUE", "T", "YES", "Y", "1":
		return TriTrue, nil
	case "FALSE", "F", "NO", "N", "0":
		return TriFalse, nil
	case "N/A", "NA":
		return TriNA, nil
	case "?", "":
		return TriUnknown, nil
	default:
		return TriUnknown, errors.InvalidArgumentf("invalid value %q, must be True/False/N/A/?", s)
	}
}

// Sentinel values for Door.LeadsTo
const (
	// LeadsToUnknown marks a door whose far side has not been drafted yet
	LeadsToUnknown = "?"

	// LeadsToBlocked marks a confirmed dead end: the door sits on the grid
	// boundary or the neighbor has no matching opening
	LeadsToBlocked = "BLOCKED"
)

// Position is an (x, y) cell on the house grid. It serializes as the
// two-element [x, y] form used by the recorded house data.
type Position struct {
	X int
	Y int
}

// MarshalJSON encodes the position as [x, y]
func (p Position) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{p.X, p.Y})
}

// UnmarshalJSON decodes a [x, y] pair
func (p *Position) UnmarshalJSON(data []byte) error {
	var pair [2]int
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	p.X = pair[0]
	p.Y = pair[1]
	return nil
}

func upper(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Door is one edge-endpoint of the room graph, owned by exactly one room.
// LeadsTo, Locked and IsSecurity hold placeholder markers until the
// connection algorithm has run.
type Door struct {
	Orientation Orientation `json:"orientation"`
	LeadsTo     string      `json:"leads_to"`
	Locked      TriState    `json:"locked"`
	IsSecurity  TriState    `json:"is_security"`
}

// NewDoor creates a door facing the given direction with everything else
// unknown
func NewDoor(orientation Orientation) *Door {
	return &Door{
		Orientation: orientation,
		LeadsTo:     LeadsToUnknown,
		Locked:      TriUnknown,
		IsSecurity:  TriUnknown,
	}
}

// Block marks the door as a confirmed dead end. A blocked door is never
// reconsidered by the connection algorithm.
func (d *Door) Block() {
	d.LeadsTo = LeadsToBlocked
	d.Locked = TriNA
	d.IsSecurity = TriNA
}

func (d *Door) String() string {
	return fmt.Sprintf("%s - leads_to=%s, locked=%s, is_security=%s", d.Orientation, d.LeadsTo, d.Locked, d.IsSecurity)
}
