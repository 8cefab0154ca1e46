package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/notekeeper/notekeeper/internal/auth"
	"github.com/notekeeper/notekeeper/internal/config"
	"github.com/notekeeper/notekeeper/internal/logging"
	"github.com/notekeeper/notekeeper/internal/repository"
	"github.com/notekeeper/notekeeper/internal/service"
)

// app carries state shared by every subcommand.
type app struct {
	openStore func(ctx context.Context) (repository.Store, error)
	hasher    service.PasswordHasher
	verbose   bool

	logger *slog.Logger
	store  repository.Store
}

func newApp() *app {
	return &app{
		openStore: openConfiguredStore,
		hasher:    auth.NewHasher(auth.DefaultParams),
	}
}

// openConfiguredStore connects the store selected by the environment.
func openConfiguredStore(ctx context.Context) (repository.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	store, err := repository.Open(ctx, repository.Options{
		Driver:        cfg.StoreDriver,
		MongoURI:      cfg.MongoURI(),
		MongoDatabase: cfg.MongoDBDatabase,
		PostgresURL:   cfg.DatabaseURL,
	})
	if err != nil {
		return nil, fmt.Errorf("open %s store: %s", cfg.StoreDriver,
			logging.SanitizeError(err, cfg.MongoURI(), cfg.DatabaseURL))
	}
	return store, nil
}

func (a *app) noteService() *service.NoteService {
	return service.NewNoteService(a.store, nil, nil, a.logger)
}

func (a *app) userService() *service.UserService {
	return service.NewUserService(a.store, a.hasher, nil, a.logger)
}

// close releases the store opened by PersistentPreRunE, if any.
func (a *app) close(ctx context.Context) error {
	if a.store == nil {
		return nil
	}
	err := a.store.Close(ctx)
	a.store = nil
	return err
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "notesctl",
		Short: "Seed and inspect the notekeeper store",
		Long: `notesctl talks to the same store the API server uses, selected by
STORE_DRIVER and the matching connection variables (or a local .env file).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := "info"
			if a.verbose {
				level = "debug"
			}
			a.logger = logging.New(cmd.ErrOrStderr(), level, "text")
			slog.SetDefault(a.logger)

			store, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			a.store = store
			a.logger.Debug("store opened", "driver", store.Driver())
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")

	root.AddCommand(newSeedCmd(a), newNotesCmd(a), newUsersCmd(a))
	return root
}
