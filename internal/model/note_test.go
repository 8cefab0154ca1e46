package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNote_ToCachedNote(t *testing.T) {
	t.Parallel()

	note := &Note{
		ID:        "01HZY3M7Q2V8K9T4N6B1C5D0EF",
		Content:   "HTML is easy",
		Important: true,
		Date:      time.UnixMilli(1700000000123).UTC(),
	}

	cached := note.ToCachedNote()

	assert.Equal(t, "HTML is easy", cached.Content)
	assert.Equal(t, "1", cached.Important)
	assert.Equal(t, "1700000000123", cached.Date)
}

func TestCachedNote_RoundTrip(t *testing.T) {
	t.Parallel()

	note := &Note{
		ID:      "01HZY3M7Q2V8K9T4N6B1C5D0EF",
		Content: "Browser can execute only Javascript",
		Date:    time.UnixMilli(1700000000999).UTC(),
	}

	got := note.ToCachedNote().ToNote(note.ID)

	assert.Equal(t, note, got)
}

func TestCachedNote_ToNote_BadDate(t *testing.T) {
	t.Parallel()

	cached := &CachedNote{Content: "x", Important: "0", Date: "not-a-number"}
	note := cached.ToNote("id")

	assert.True(t, note.Date.IsZero())
	assert.False(t, note.Important)
}

func TestNoteUpdate_Apply(t *testing.T) {
	t.Parallel()

	base := Note{ID: "a", Content: "old", Important: false}
	content := "new"
	important := true

	tests := []struct {
		name   string
		update NoteUpdate
		want   Note
	}{
		{"empty", NoteUpdate{}, base},
		{"content only", NoteUpdate{Content: &content}, Note{ID: "a", Content: "new"}},
		{"important only", NoteUpdate{Important: &important}, Note{ID: "a", Content: "old", Important: true}},
		{"both", NoteUpdate{Content: &content, Important: &important}, Note{ID: "a", Content: "new", Important: true}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.update.Apply(base))
		})
	}
}

func TestNoteUpdate_IsEmpty(t *testing.T) {
	t.Parallel()

	important := false
	assert.True(t, NoteUpdate{}.IsEmpty())
	assert.False(t, NoteUpdate{Important: &important}.IsEmpty())
}
