// Package main is the entrypoint for the notekeeper API server.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/notekeeper/notekeeper/internal/auth"
	"github.com/notekeeper/notekeeper/internal/cache"
	"github.com/notekeeper/notekeeper/internal/config"
	"github.com/notekeeper/notekeeper/internal/handler"
	"github.com/notekeeper/notekeeper/internal/logging"
	"github.com/notekeeper/notekeeper/internal/metrics"
	"github.com/notekeeper/notekeeper/internal/middleware"
	"github.com/notekeeper/notekeeper/internal/repository"
	"github.com/notekeeper/notekeeper/internal/server"
	"github.com/notekeeper/notekeeper/internal/service"
)

func main() {
	if err := run(context.Background()); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		return err
	}

	logger := logging.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	// Initialize store
	storeURL := storeURL(cfg)
	store, err := repository.Open(ctx, repository.Options{
		Driver:        cfg.StoreDriver,
		MongoURI:      cfg.MongoURI(),
		MongoDatabase: cfg.MongoDBDatabase,
		PostgresURL:   cfg.DatabaseURL,
	})
	if err != nil {
		logger.Error(
			"failed to connect to store",
			slog.String("driver", cfg.StoreDriver),
			slog.String("error", logging.SanitizeError(err, storeURL)),
			slog.String("url", logging.RedactURL(storeURL)),
		)
		return err
	}
	logger.Info("connected to store", slog.String("driver", store.Driver()))

	// Initialize cache (optional)
	var noteCache service.NoteCache
	var cacheCheck handler.HealthChecker
	var cacheClient *cache.Cache
	if cfg.RedisURL != "" {
		cacheClient, err = cache.New(ctx, cfg.RedisURL, cfg.NoteCacheTTL)
		if err != nil {
			logger.Error(
				"failed to connect to Redis",
				slog.String("error", logging.SanitizeError(err, cfg.RedisURL)),
				slog.String("redis_url", logging.RedactURL(cfg.RedisURL)),
			)
			_ = store.Close(ctx)
			return err
		}
		noteCache = cacheClient
		cacheCheck = cacheClient
		logger.Info("connected to Redis", slog.Duration("note_ttl", cfg.NoteCacheTTL))
	} else {
		logger.Info("note cache disabled")
	}

	// Initialize services
	recorder := metrics.NewInMemory()
	noteService := service.NewNoteService(store, noteCache, recorder, logger)
	userService := service.NewUserService(store, auth.NewHasher(auth.DefaultParams), recorder, logger)

	// Setup router
	routerCfg := handler.RouterConfig{
		Logger:    logger,
		Notes:     handler.NewNoteHandler(noteService, logger),
		Users:     handler.NewUserHandler(userService, logger),
		Health:    handler.NewHealthHandler(store, store.Driver(), cacheCheck, logger),
		StaticDir: cfg.StaticDir,
		CORS:      corsConfig(cfg),
		Security: middleware.SecurityConfig{
			IsDevelopment:         !cfg.IsProduction(),
			ContentSecurityPolicy: middleware.DefaultContentSecurityPolicy,
		},
		MaxRequestBodySize: cfg.MaxRequestBodySize,
	}
	if cfg.MetricsEnabled {
		routerCfg.Metrics = handler.NewMetricsHandler(recorder)
	}

	// Create and run server
	srv := server.New(handler.NewRouter(routerCfg), server.Options{
		Addr:            cfg.Addr(),
		ReadTimeout:     cfg.ReadTimeout,
		WriteTimeout:    cfg.WriteTimeout,
		ShutdownTimeout: cfg.ShutdownTimeout,
	}, logger)

	// LIFO: the cache closes before the store.
	srv.OnShutdown("store", store.Close)
	if cacheClient != nil {
		srv.OnShutdown("redis", func(context.Context) error { return cacheClient.Close() })
	}

	logger.Info("starting server",
		"port", cfg.Port,
		"env", cfg.AppEnv,
		"store", store.Driver(),
		"static_dir", cfg.StaticDir,
	)

	return srv.Run(ctx)
}

func storeURL(cfg *config.Config) string {
	switch cfg.StoreDriver {
	case repository.DriverMongo:
		return cfg.MongoURI()
	case repository.DriverPostgres:
		return cfg.DatabaseURL
	default:
		return ""
	}
}

func corsConfig(cfg *config.Config) middleware.CORSConfig {
	c := middleware.DefaultCORSConfig()
	c.AllowedOrigins = cfg.GetCORSAllowedOrigins()
	return c
}
