package metrics

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

func (n *NoopRecorder) IncNoteCreated()   {}
func (n *NoopRecorder) IncNoteUpdated()   {}
func (n *NoopRecorder) IncNoteDeleted()   {}
func (n *NoopRecorder) IncNoteCacheHit()  {}
func (n *NoopRecorder) IncNoteCacheMiss() {}
func (n *NoopRecorder) IncUserCreated()   {}
