// Package dto provides Data Transfer Objects for API requests and responses.
package dto

import (
	"time"

	"github.com/notekeeper/notekeeper/internal/model"
)

// DateLayout renders timestamps with fixed millisecond precision in UTC,
// e.g. 2019-05-30T17:30:31.098Z.
const DateLayout = "2006-01-02T15:04:05.000Z07:00"

// CreateNoteRequest represents the request body for creating a note.
type CreateNoteRequest struct {
	Content   string `json:"content"`
	Important bool   `json:"important"`
}

// UpdateNoteRequest represents the request body for updating a note.
// Absent fields are left unchanged.
type UpdateNoteRequest struct {
	Content   *string `json:"content"`
	Important *bool   `json:"important"`
}

// ToNoteUpdate converts the request into a partial model update.
func (r UpdateNoteRequest) ToNoteUpdate() model.NoteUpdate {
	return model.NoteUpdate{Content: r.Content, Important: r.Important}
}

// NoteResponse represents a note in API responses.
type NoteResponse struct {
	ID        string `json:"id"`
	Content   string `json:"content"`
	Important bool   `json:"important"`
	Date      string `json:"date"`
}

// ToNoteResponse converts a Note model to NoteResponse DTO.
func ToNoteResponse(note *model.Note) *NoteResponse {
	return &NoteResponse{
		ID:        note.ID,
		Content:   note.Content,
		Important: note.Important,
		Date:      FormatDate(note.Date),
	}
}

// ToNoteListResponse converts notes to a JSON array, never null.
func ToNoteListResponse(notes []*model.Note) []NoteResponse {
	responses := make([]NoteResponse, len(notes))
	for i, note := range notes {
		responses[i] = *ToNoteResponse(note)
	}
	return responses
}

// FormatDate renders t in DateLayout.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}
