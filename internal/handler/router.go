package handler

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/notekeeper/notekeeper/internal/middleware"
)

// RouterConfig collects the handlers and HTTP policy for NewRouter.
type RouterConfig struct {
	Logger *slog.Logger

	Notes   *NoteHandler
	Users   *UserHandler
	Health  *HealthHandler
	Metrics *MetricsHandler // nil leaves /metrics unmounted

	// StaticDir is served for unmatched GETs when it exists.
	StaticDir string

	CORS               middleware.CORSConfig
	Security           middleware.SecurityConfig
	MaxRequestBodySize int64
}

// NewRouter configures the chi router with all routes and middleware.
func NewRouter(cfg RouterConfig) *chi.Mux {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	h := New(logger)

	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recoverer(logger))
	r.Use(middleware.Security(cfg.Security))
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(chimiddleware.GetHead)

	if static := NewStaticHandler(cfg.StaticDir, h.NotFound); static != nil {
		r.NotFound(static.ServeHTTP)
	} else {
		r.NotFound(h.NotFound)
	}
	// A known path with an unrouted method is still an unknown endpoint.
	r.MethodNotAllowed(h.NotFound)

	if cfg.Health != nil {
		r.Get("/healthz", cfg.Health.Healthz)
		r.Get("/readyz", cfg.Health.Readyz)
	}
	if cfg.Metrics != nil {
		r.Get("/metrics", cfg.Metrics.Metrics)
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.NoStore)
		if cfg.MaxRequestBodySize > 0 {
			r.Use(middleware.MaxBodySize(cfg.MaxRequestBodySize))
		}

		if cfg.Notes != nil {
			r.Route("/notes", cfg.Notes.Routes)
		}
		if cfg.Users != nil {
			r.Route("/users", cfg.Users.Routes)
		}
	})

	return r
}
