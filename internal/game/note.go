package game

import (
	"crypto/sha256"
	"encoding/hex"
)

// Note is a piece of in-game writing the player has captured, with the room
// it was found in for provenance
type Note struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	FoundInRoom string `json:"found_in_room"`
	Color       string `json:"color"`
}

// Hash returns a stable content digest used to deduplicate recaptured notes
func (n Note) Hash() string {
	sum := sha256.Sum256([]byte(n.Title + n.Content + n.FoundInRoom + n.Color))
	return hex.EncodeToString(sum[:])
}
