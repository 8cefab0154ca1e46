package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/notekeeper/notekeeper/internal/service"
)

// seedFile is the YAML fixture layout.
type seedFile struct {
	Notes []seedNote `yaml:"notes"`
	Users []seedUser `yaml:"users"`
}

type seedNote struct {
	Content   string `yaml:"content"`
	Important bool   `yaml:"important"`
}

type seedUser struct {
	Username string `yaml:"username"`
	Name     string `yaml:"name"`
	Password string `yaml:"password"`
}

func loadSeedFile(path string) (*seedFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	var seed seedFile
	if err := dec.Decode(&seed); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &seed, nil
}

func newSeedCmd(a *app) *cobra.Command {
	var (
		file  string
		reset bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load notes and users from a YAML fixture",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, err := loadSeedFile(file)
			if err != nil {
				return err
			}

			ctx := cmd.Context()

			if reset {
				notes, err := a.store.DeleteAllNotes(ctx)
				if err != nil {
					return fmt.Errorf("reset notes: %w", err)
				}
				users, err := a.store.DeleteAllUsers(ctx)
				if err != nil {
					return fmt.Errorf("reset users: %w", err)
				}
				a.logger.Info("store reset", "notes_deleted", notes, "users_deleted", users)
			}

			notes := a.noteService()
			for i, n := range seed.Notes {
				if _, err := notes.CreateNote(ctx, service.CreateNoteInput{Content: n.Content, Important: n.Important}); err != nil {
					return fmt.Errorf("note %d: %w", i, err)
				}
			}

			users := a.userService()
			for _, u := range seed.Users {
				if _, err := users.CreateUser(ctx, service.CreateUserInput{Username: u.Username, Name: u.Name, Password: u.Password}); err != nil {
					return fmt.Errorf("user %q: %w", u.Username, err)
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d notes and %d users.\n", len(seed.Notes), len(seed.Users))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML fixture to load")
	cmd.Flags().BoolVar(&reset, "reset", false, "Delete every note and user first")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
