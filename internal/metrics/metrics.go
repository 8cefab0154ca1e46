// Package metrics provides lightweight hooks for instrumentation.
package metrics

// Recorder captures metric events for the application.
// Implementations can expose these to Prometheus, StatsD, etc.
type Recorder interface {
	// Note lifecycle
	IncNoteCreated()
	IncNoteUpdated()
	IncNoteDeleted()

	// Single-note read cache
	IncNoteCacheHit()
	IncNoteCacheMiss()

	// Accounts
	IncUserCreated()
}

// Snapshotter exposes a snapshot of current metrics.
type Snapshotter interface {
	Snapshot() Snapshot
}
