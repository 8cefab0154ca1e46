package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"github.com/notekeeper/notekeeper/internal/apperr"
	"github.com/notekeeper/notekeeper/internal/model"
)

// pgUniqueViolation is the SQLSTATE for unique_violation.
const pgUniqueViolation = "23505"

const postgresSchema = `
CREATE TABLE IF NOT EXISTS notes (
	id         TEXT PRIMARY KEY,
	content    TEXT NOT NULL,
	important  BOOLEAN NOT NULL DEFAULT FALSE,
	date       TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS users (
	id            TEXT PRIMARY KEY,
	username      TEXT NOT NULL UNIQUE,
	name          TEXT NOT NULL DEFAULT '',
	password_hash TEXT NOT NULL,
	note_ids      TEXT[] NOT NULL DEFAULT '{}'
);
`

// PostgresStore is the PostgreSQL backend.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgres creates a connection pool and ensures the tables exist.
func NewPostgres(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	// Connection pool settings
	config.MaxConns = 10
	config.MinConns = 2

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := pool.Exec(ctx, postgresSchema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Driver returns DriverPostgres.
func (s *PostgresStore) Driver() string { return DriverPostgres }

// Ping checks database connectivity.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Close closes the connection pool.
func (s *PostgresStore) Close(ctx context.Context) error {
	s.pool.Close()
	return nil
}

// Pool returns the underlying connection pool.
// Use sparingly - prefer adding methods to PostgresStore.
func (s *PostgresStore) Pool() *pgxpool.Pool {
	return s.pool
}

// ListNotes returns all notes, oldest first.
func (s *PostgresStore) ListNotes(ctx context.Context) ([]*model.Note, error) {
	query := `
		SELECT id, content, important, date
		FROM notes
		ORDER BY date, id
	`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer rows.Close()

	notes := make([]*model.Note, 0)
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, note)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notes: %w", err)
	}

	return notes, nil
}

// GetNote returns the note with the given id.
func (s *PostgresStore) GetNote(ctx context.Context, id string) (*model.Note, error) {
	if err := checkULID(id); err != nil {
		return nil, err
	}

	query := `
		SELECT id, content, important, date
		FROM notes
		WHERE id = $1
	`

	note, err := scanNote(s.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NewNotFound("note", id)
		}
		return nil, fmt.Errorf("failed to get note: %w", err)
	}

	return note, nil
}

// CreateNote inserts a note with a fresh id and the current time.
func (s *PostgresStore) CreateNote(ctx context.Context, content string, important bool) (*model.Note, error) {
	note := &model.Note{
		ID:        newULID(),
		Content:   content,
		Important: important,
		Date:      timestamp(),
	}

	query := `
		INSERT INTO notes (id, content, important, date)
		VALUES ($1, $2, $3, $4)
	`

	if _, err := s.pool.Exec(ctx, query, note.ID, note.Content, note.Important, note.Date); err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	return note, nil
}

// UpdateNote sets the provided fields and returns the updated row.
func (s *PostgresStore) UpdateNote(ctx context.Context, id string, update model.NoteUpdate) (*model.Note, error) {
	if err := checkULID(id); err != nil {
		return nil, err
	}

	query := `
		UPDATE notes
		SET content = COALESCE($2, content), important = COALESCE($3, important)
		WHERE id = $1
		RETURNING id, content, important, date
	`

	note, err := scanNote(s.pool.QueryRow(ctx, query, id, update.Content, update.Important))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NewNotFound("note", id)
		}
		return nil, fmt.Errorf("failed to update note: %w", err)
	}

	return note, nil
}

// DeleteNote removes the note if present.
func (s *PostgresStore) DeleteNote(ctx context.Context, id string) error {
	if err := checkULID(id); err != nil {
		return err
	}

	if _, err := s.pool.Exec(ctx, `DELETE FROM notes WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	return nil
}

// DeleteAllNotes empties the notes table.
func (s *PostgresStore) DeleteAllNotes(ctx context.Context) (int64, error) {
	result, err := s.pool.Exec(ctx, `DELETE FROM notes`)
	if err != nil {
		return 0, fmt.Errorf("failed to delete notes: %w", err)
	}
	return result.RowsAffected(), nil
}

// ListUsers returns all users.
func (s *PostgresStore) ListUsers(ctx context.Context) ([]*model.User, error) {
	query := `
		SELECT id, username, name, password_hash, note_ids
		FROM users
		ORDER BY id
	`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := make([]*model.User, 0)
	for rows.Next() {
		var user model.User
		err := rows.Scan(
			&user.ID,
			&user.Username,
			&user.Name,
			&user.PasswordHash,
			pq.Array(&user.NoteIDs),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, &user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}

	return users, nil
}

// CreateUser inserts user; the unique constraint rejects duplicate usernames.
func (s *PostgresStore) CreateUser(ctx context.Context, user *model.User) error {
	for _, id := range user.NoteIDs {
		if err := checkULID(id); err != nil {
			return err
		}
	}

	noteIDs := user.NoteIDs
	if noteIDs == nil {
		noteIDs = []string{}
	}

	id := newULID()
	query := `
		INSERT INTO users (id, username, name, password_hash, note_ids)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := s.pool.Exec(ctx, query,
		id,
		user.Username,
		user.Name,
		user.PasswordHash,
		pq.Array(noteIDs),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return usernameTaken(user.Username)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	user.ID = id
	return nil
}

// DeleteAllUsers empties the users table.
func (s *PostgresStore) DeleteAllUsers(ctx context.Context) (int64, error) {
	result, err := s.pool.Exec(ctx, `DELETE FROM users`)
	if err != nil {
		return 0, fmt.Errorf("failed to delete users: %w", err)
	}
	return result.RowsAffected(), nil
}

// scanNote scans a single row into a Note.
func scanNote(row pgx.Row) (*model.Note, error) {
	var note model.Note
	err := row.Scan(
		&note.ID,
		&note.Content,
		&note.Important,
		&note.Date,
	)
	if err != nil {
		return nil, err
	}
	note.Date = note.Date.UTC()
	return &note, nil
}

// isUniqueViolation checks if the error is a PostgreSQL unique constraint violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
