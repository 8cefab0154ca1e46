// Package repository provides the data access layer.
// Three backends implement Store: MongoDB (the default document store),
// PostgreSQL and an in-memory table used for tests and local runs.
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/notekeeper/notekeeper/internal/model"
)

// Supported store drivers.
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// NoteRepository is the note accessor.
//
// Every method that takes an id rejects a malformed one with an
// apperr.InvalidID error before reaching the store. GetNote and UpdateNote
// report a missing note with apperr.NotFound; DeleteNote never does.
type NoteRepository interface {
	ListNotes(ctx context.Context) ([]*model.Note, error)
	GetNote(ctx context.Context, id string) (*model.Note, error)
	CreateNote(ctx context.Context, content string, important bool) (*model.Note, error)
	UpdateNote(ctx context.Context, id string, update model.NoteUpdate) (*model.Note, error)
	DeleteNote(ctx context.Context, id string) error
	DeleteAllNotes(ctx context.Context) (int64, error)
}

// UserRepository is the user accessor.
// CreateUser assigns user.ID and reports a taken username as apperr.Validation.
type UserRepository interface {
	ListUsers(ctx context.Context) ([]*model.User, error)
	CreateUser(ctx context.Context, user *model.User) error
	DeleteAllUsers(ctx context.Context) (int64, error)
}

// Store is a connected backend.
type Store interface {
	NoteRepository
	UserRepository
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
	Driver() string
}

// Options selects and configures a backend.
type Options struct {
	Driver        string
	MongoURI      string
	MongoDatabase string
	PostgresURL   string
}

// Open connects the backend named by opts.Driver.
func Open(ctx context.Context, opts Options) (Store, error) {
	switch opts.Driver {
	case DriverMongo:
		return NewMongo(ctx, opts.MongoURI, opts.MongoDatabase)
	case DriverPostgres:
		return NewPostgres(ctx, opts.PostgresURL)
	case DriverMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", opts.Driver)
	}
}

// timestamp returns the creation time stamped on new notes.
// Millisecond precision matches what every backend can round-trip.
func timestamp() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
