package game

import "time"

// Run is one persisted playthrough day: the state snapshot plus storage
// metadata. The repository owns ID assignment and timestamps.
type Run struct {
	ID        string    `json:"id"`
	Day       int       `json:"day"`
	State     *State    `json:"state"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
