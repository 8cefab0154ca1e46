package metrics

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInMemoryRecorder_Snapshot(t *testing.T) {
	t.Parallel()

	m := NewInMemory()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.IncNoteCreated()
			m.IncNoteCacheMiss()
		}()
	}
	wg.Wait()

	m.IncNoteUpdated()
	m.IncNoteDeleted()
	m.IncNoteCacheHit()
	m.IncUserCreated()

	assert.Equal(t, Snapshot{
		NotesCreated:    20,
		NotesUpdated:    1,
		NotesDeleted:    1,
		NoteCacheHits:   1,
		NoteCacheMisses: 20,
		UsersCreated:    1,
	}, m.Snapshot())
}

func TestNoop_SatisfiesRecorder(t *testing.T) {
	t.Parallel()

	var r Recorder = NewNoop()
	r.IncNoteCreated()
	r.IncUserCreated()
}
