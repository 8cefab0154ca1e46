package metrics

import "sync/atomic"

// Snapshot captures current in-memory counters.
type Snapshot struct {
	NotesCreated    uint64
	NotesUpdated    uint64
	NotesDeleted    uint64
	NoteCacheHits   uint64
	NoteCacheMisses uint64
	UsersCreated    uint64
}

// InMemoryRecorder keeps counters in process memory.
type InMemoryRecorder struct {
	notesCreated    atomic.Uint64
	notesUpdated    atomic.Uint64
	notesDeleted    atomic.Uint64
	noteCacheHits   atomic.Uint64
	noteCacheMisses atomic.Uint64
	usersCreated    atomic.Uint64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		NotesCreated:    m.notesCreated.Load(),
		NotesUpdated:    m.notesUpdated.Load(),
		NotesDeleted:    m.notesDeleted.Load(),
		NoteCacheHits:   m.noteCacheHits.Load(),
		NoteCacheMisses: m.noteCacheMisses.Load(),
		UsersCreated:    m.usersCreated.Load(),
	}
}

func (m *InMemoryRecorder) IncNoteCreated()   { m.notesCreated.Add(1) }
func (m *InMemoryRecorder) IncNoteUpdated()   { m.notesUpdated.Add(1) }
func (m *InMemoryRecorder) IncNoteDeleted()   { m.notesDeleted.Add(1) }
func (m *InMemoryRecorder) IncNoteCacheHit()  { m.noteCacheHits.Add(1) }
func (m *InMemoryRecorder) IncNoteCacheMiss() { m.noteCacheMisses.Add(1) }
func (m *InMemoryRecorder) IncUserCreated()   { m.usersCreated.Add(1) }
