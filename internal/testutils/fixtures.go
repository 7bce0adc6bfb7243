// Package testutils provides shared fixtures and helpers for package tests.
package testutils

import (
	"github.com/brownlk99/blue-prince-ml-sub000/internal/game"
	"github.com/brownlk99/blue-prince-ml-sub000/internal/house"
)

// CreateTestRoom creates a room with one fresh door per orientation
func CreateTestRoom(name, shape string, x, y int, orientations ...house.Orientation) *house.Room {
	doors := make([]*house.Door, 0, len(orientations))
	for _, o := range orientations {
		doors = append(doors, house.NewDoor(o))
	}
	return house.NewRoom(name, shape, house.Position{X: x, Y: y}, doors)
}

// CreateTestSecurityRoom creates a specialized security room with its
// terminal attached
func CreateTestSecurityRoom(x, y int, orientations ...house.Orientation) *house.Room {
	return house.Specialize(CreateTestRoom("SECURITY", "STRAIGHT", x, y, orientations...))
}

// CreateTestUtilityCloset creates a specialized utility closet with default
// switch positions
func CreateTestUtilityCloset(x, y int, orientations ...house.Orientation) *house.Room {
	return house.Specialize(CreateTestRoom("UTILITY CLOSET", "DEAD END", x, y, orientations...))
}

// CreateTestRun creates a run snapshot wrapping a fresh day-1 state
func CreateTestRun(id string) *game.Run {
	state := game.NewState(1)
	return &game.Run{
		ID:    id,
		Day:   state.Day,
		State: state,
	}
}
