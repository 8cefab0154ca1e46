package repository

import (
	"context"
	"sync"

	"github.com/notekeeper/notekeeper/internal/apperr"
	"github.com/notekeeper/notekeeper/internal/model"
)

// MemoryStore keeps notes and users in process memory.
// All access goes through mu; callers only ever receive copies.
type MemoryStore struct {
	mu        sync.RWMutex
	notes     map[string]model.Note
	noteOrder []string
	users     map[string]model.User
	userOrder []string
	usernames map[string]string
}

// NewMemory returns an empty MemoryStore.
func NewMemory() *MemoryStore {
	return &MemoryStore{
		notes:     make(map[string]model.Note),
		users:     make(map[string]model.User),
		usernames: make(map[string]string),
	}
}

// Driver returns DriverMemory.
func (s *MemoryStore) Driver() string { return DriverMemory }

// Ping always succeeds.
func (s *MemoryStore) Ping(ctx context.Context) error { return nil }

// Close is a no-op.
func (s *MemoryStore) Close(ctx context.Context) error { return nil }

// ListNotes returns all notes in insertion order.
func (s *MemoryStore) ListNotes(ctx context.Context) ([]*model.Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	notes := make([]*model.Note, 0, len(s.noteOrder))
	for _, id := range s.noteOrder {
		note := s.notes[id]
		notes = append(notes, &note)
	}
	return notes, nil
}

// GetNote returns the note with the given id.
func (s *MemoryStore) GetNote(ctx context.Context, id string) (*model.Note, error) {
	if err := checkULID(id); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	note, ok := s.notes[id]
	if !ok {
		return nil, apperr.NewNotFound("note", id)
	}
	return &note, nil
}

// CreateNote inserts a note with a fresh id and the current time.
func (s *MemoryStore) CreateNote(ctx context.Context, content string, important bool) (*model.Note, error) {
	note := model.Note{
		ID:        newULID(),
		Content:   content,
		Important: important,
		Date:      timestamp(),
	}

	s.mu.Lock()
	s.notes[note.ID] = note
	s.noteOrder = append(s.noteOrder, note.ID)
	s.mu.Unlock()

	return &note, nil
}

// UpdateNote applies update and returns the stored result.
func (s *MemoryStore) UpdateNote(ctx context.Context, id string, update model.NoteUpdate) (*model.Note, error) {
	if err := checkULID(id); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	note, ok := s.notes[id]
	if !ok {
		return nil, apperr.NewNotFound("note", id)
	}
	note = update.Apply(note)
	s.notes[id] = note
	return &note, nil
}

// DeleteNote removes the note if present.
func (s *MemoryStore) DeleteNote(ctx context.Context, id string) error {
	if err := checkULID(id); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.notes[id]; !ok {
		return nil
	}
	delete(s.notes, id)
	s.noteOrder = removeID(s.noteOrder, id)
	return nil
}

// DeleteAllNotes empties the note table.
func (s *MemoryStore) DeleteAllNotes(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := int64(len(s.notes))
	s.notes = make(map[string]model.Note)
	s.noteOrder = nil
	return n, nil
}

// ListUsers returns all users in insertion order.
func (s *MemoryStore) ListUsers(ctx context.Context) ([]*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]*model.User, 0, len(s.userOrder))
	for _, id := range s.userOrder {
		user := s.users[id]
		user.NoteIDs = append([]string(nil), user.NoteIDs...)
		users = append(users, &user)
	}
	return users, nil
}

// CreateUser inserts user, enforcing username uniqueness.
func (s *MemoryStore) CreateUser(ctx context.Context, user *model.User) error {
	for _, id := range user.NoteIDs {
		if err := checkULID(id); err != nil {
			return err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.usernames[user.Username]; taken {
		return usernameTaken(user.Username)
	}

	user.ID = newULID()
	stored := *user
	stored.NoteIDs = append([]string(nil), user.NoteIDs...)
	s.users[user.ID] = stored
	s.userOrder = append(s.userOrder, user.ID)
	s.usernames[user.Username] = user.ID
	return nil
}

// DeleteAllUsers empties the user table.
func (s *MemoryStore) DeleteAllUsers(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := int64(len(s.users))
	s.users = make(map[string]model.User)
	s.userOrder = nil
	s.usernames = make(map[string]string)
	return n, nil
}

func removeID(ids []string, id string) []string {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
