// Package model defines domain entities for the application.
package model

import (
	"strconv"
	"time"
)

// Note is a piece of text with an importance flag.
// ID and Date are assigned by the store on creation.
type Note struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Important bool      `json:"important"`
	Date      time.Time `json:"date"`
}

// NoteUpdate carries the mutable fields of a note. Nil fields are left unchanged.
type NoteUpdate struct {
	Content   *string
	Important *bool
}

// IsEmpty reports whether the update changes nothing.
func (u NoteUpdate) IsEmpty() bool {
	return u.Content == nil && u.Important == nil
}

// Apply returns a copy of n with the update applied.
func (u NoteUpdate) Apply(n Note) Note {
	if u.Content != nil {
		n.Content = *u.Content
	}
	if u.Important != nil {
		n.Important = *u.Important
	}
	return n
}

// CachedNote is the Redis hash representation of a note.
type CachedNote struct {
	Content   string `redis:"content"`
	Important string `redis:"important"` // "1" or "0"
	Date      string `redis:"date"`      // Unix milliseconds
}

// ToNote converts the cached form back to a Note.
func (c *CachedNote) ToNote(id string) *Note {
	note := &Note{
		ID:        id,
		Content:   c.Content,
		Important: c.Important == "1",
	}

	if ms, err := strconv.ParseInt(c.Date, 10, 64); err == nil {
		note.Date = time.UnixMilli(ms).UTC()
	}

	return note
}

// ToCachedNote converts a Note for storage in a Redis hash.
func (n *Note) ToCachedNote() *CachedNote {
	return &CachedNote{
		Content:   n.Content,
		Important: boolToString(n.Important),
		Date:      strconv.FormatInt(n.Date.UnixMilli(), 10),
	}
}

func boolToString(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
