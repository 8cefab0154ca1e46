package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/notekeeper/notekeeper/internal/logging"
)

// HealthChecker defines an interface for checking service health.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// HealthHandler manages health check endpoints.
type HealthHandler struct {
	store     HealthChecker
	storeName string
	cache     HealthChecker
	logger    *slog.Logger
}

// NewHealthHandler creates a new HealthHandler.
// storeName labels the store check (the driver name); cache may be nil
// when the note cache is disabled. Failed checks are logged, never returned.
func NewHealthHandler(store HealthChecker, storeName string, cache HealthChecker, logger *slog.Logger) *HealthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &HealthHandler{
		store:     store,
		storeName: storeName,
		cache:     cache,
		logger:    logger,
	}
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// Healthz is a liveness probe endpoint.
// It returns 200 if the server is running, without dependency checks.
//
// GET /healthz
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// Readyz is a readiness probe endpoint.
// It returns 200 only if the store and, when configured, the cache answer a ping.
//
// GET /readyz
func (h *HealthHandler) Readyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]string)
	healthy := true

	check := func(name string, c HealthChecker) {
		if c == nil {
			checks[name] = "not configured"
			return
		}
		if err := c.Ping(ctx); err != nil {
			h.logger.Warn("readiness_check_failed",
				slog.String("check", name),
				slog.String("error", logging.SanitizeError(err)),
			)
			checks[name] = "error"
			healthy = false
			return
		}
		checks[name] = "ok"
	}

	storeName := h.storeName
	if storeName == "" {
		storeName = "store"
	}
	if h.store == nil {
		// A missing store is never ready.
		checks[storeName] = "not configured"
		healthy = false
	} else {
		check(storeName, h.store)
	}
	check("redis", h.cache)

	status := "ok"
	statusCode := http.StatusOK
	if !healthy {
		status = "unhealthy"
		statusCode = http.StatusServiceUnavailable
	}

	writeJSON(w, statusCode, HealthResponse{
		Status: status,
		Checks: checks,
	})
}
