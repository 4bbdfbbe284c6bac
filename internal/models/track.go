// Package models contains the sample data the demo command logs.
package models

import (
	"encoding/json"
	"fmt"
)

// Track is a music track. Its String form is a JSON object so the demo can
// show the facade's pretty-printing.
type Track struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Album  string `json:"album"`
	Artist string `json:"artist"`
}

// NewTrack creates a Track.
func NewTrack(id int, title, album, artist string) *Track {
	return &Track{
		ID:     id,
		Title:  title,
		Album:  album,
		Artist: artist,
	}
}

// SampleTrack returns the track logged by `send --sample`.
func SampleTrack() *Track {
	return NewTrack(1, "So What", "Kind of Blue", "Miles Davis")
}

// String renders the track as a compact JSON object.
func (t *Track) String() string {
	data, err := json.Marshal(t)
	if err != nil {
		return fmt.Sprintf("Track{id=%d}", t.ID)
	}
	return string(data)
}
