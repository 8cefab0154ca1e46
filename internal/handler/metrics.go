package handler

import (
	"fmt"
	"net/http"

	"github.com/notekeeper/notekeeper/internal/metrics"
)

// MetricsHandler exposes in-memory metrics.
type MetricsHandler struct {
	snapshotter metrics.Snapshotter
}

// NewMetricsHandler creates a new MetricsHandler.
func NewMetricsHandler(snapshotter metrics.Snapshotter) *MetricsHandler {
	return &MetricsHandler{snapshotter: snapshotter}
}

// Metrics returns metrics in Prometheus exposition format.
func (h *MetricsHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	if h.snapshotter == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	snap := h.snapshotter.Snapshot()

	w.Header().Set("Content-Type", "text/plain; version=0.0.4")

	writeCounter(w, "notekeeper_notes_created_total", "Notes created.", snap.NotesCreated)
	writeCounter(w, "notekeeper_notes_updated_total", "Notes updated.", snap.NotesUpdated)
	writeCounter(w, "notekeeper_notes_deleted_total", "Note delete requests served.", snap.NotesDeleted)
	writeCounter(w, "notekeeper_note_cache_hits_total", "Single-note reads served from cache.", snap.NoteCacheHits)
	writeCounter(w, "notekeeper_note_cache_misses_total", "Single-note reads that went to the store.", snap.NoteCacheMisses)
	writeCounter(w, "notekeeper_users_created_total", "Users created.", snap.UsersCreated)
}

func writeCounter(w http.ResponseWriter, name, help string, value uint64) {
	_, _ = fmt.Fprintf(w, "# HELP %s %s\n# TYPE %s counter\n%s %d\n", name, help, name, name, value)
}
