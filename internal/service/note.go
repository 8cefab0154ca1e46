// Package service provides business logic for the application.
package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/notekeeper/notekeeper/internal/apperr"
	"github.com/notekeeper/notekeeper/internal/cache"
	"github.com/notekeeper/notekeeper/internal/metrics"
	"github.com/notekeeper/notekeeper/internal/model"
	"github.com/notekeeper/notekeeper/internal/repository"
)

// Service errors.
var (
	ErrContentMissing = apperr.NewValidation("content missing")
)

// NoteCache is the read-through cache consulted for single-note reads.
type NoteCache interface {
	GetNote(ctx context.Context, id string) (*model.Note, error)
	FillNote(ctx context.Context, note *model.Note) error
	SetNote(ctx context.Context, note *model.Note) error
	DeleteNote(ctx context.Context, id string) error
	MarkDeleted(ctx context.Context, id string) error
	IsNegativelyCached(ctx context.Context, id string) (bool, error)
	SetNegativeCache(ctx context.Context, id string) error
}

// NoteService handles note business logic.
type NoteService struct {
	repo    repository.NoteRepository
	cache   NoteCache
	metrics metrics.Recorder
	logger  *slog.Logger
}

// NewNoteService creates a new NoteService. noteCache may be nil.
func NewNoteService(repo repository.NoteRepository, noteCache NoteCache, recorder metrics.Recorder, logger *slog.Logger) *NoteService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &NoteService{
		repo:    repo,
		cache:   noteCache,
		metrics: recorder,
		logger:  logger,
	}
}

// CreateNoteInput defines input for creating a note.
type CreateNoteInput struct {
	Content   string
	Important bool
}

// ListNotes returns every note.
func (s *NoteService) ListNotes(ctx context.Context) ([]*model.Note, error) {
	return s.repo.ListNotes(ctx)
}

// GetNote returns a note by id, consulting the cache first when one is configured.
func (s *NoteService) GetNote(ctx context.Context, id string) (*model.Note, error) {
	if s.cache == nil {
		return s.repo.GetNote(ctx, id)
	}

	note, err := s.cache.GetNote(ctx, id)
	if err == nil {
		s.metrics.IncNoteCacheHit()
		return note, nil
	}

	if errors.Is(err, cache.ErrCacheMiss) {
		s.metrics.IncNoteCacheMiss()
		neg, err := s.cache.IsNegativelyCached(ctx, id)
		if err != nil {
			s.logger.Warn("note_cache_error", "op", "negative_lookup", "note_id", id, "error", err)
		} else if neg {
			return nil, apperr.NewNotFound("note", id)
		}
	} else {
		s.logger.Warn("note_cache_error", "op", "get", "note_id", id, "error", err)
	}

	note, err = s.repo.GetNote(ctx, id)
	if err != nil {
		if apperr.Is(err, apperr.NotFound) {
			if cerr := s.cache.SetNegativeCache(ctx, id); cerr != nil {
				s.logger.Warn("note_cache_error", "op", "set_negative", "note_id", id, "error", cerr)
			}
		}
		return nil, err
	}

	if err := s.cache.FillNote(ctx, note); err != nil {
		s.logger.Warn("note_cache_error", "op", "fill", "note_id", id, "error", err)
	}

	return note, nil
}

// CreateNote validates input and stores a new note.
func (s *NoteService) CreateNote(ctx context.Context, input CreateNoteInput) (*model.Note, error) {
	if input.Content == "" {
		return nil, ErrContentMissing
	}

	note, err := s.repo.CreateNote(ctx, input.Content, input.Important)
	if err != nil {
		return nil, err
	}

	s.metrics.IncNoteCreated()
	return note, nil
}

// UpdateNote applies update to the note with the given id.
// A missing note is reported as apperr.NotFound.
func (s *NoteService) UpdateNote(ctx context.Context, id string, update model.NoteUpdate) (*model.Note, error) {
	if update.Content != nil && *update.Content == "" {
		return nil, ErrContentMissing
	}

	note, err := s.repo.UpdateNote(ctx, id, update)
	if err != nil {
		return nil, err
	}

	s.metrics.IncNoteUpdated()
	s.storeUpdated(ctx, note)
	return note, nil
}

// DeleteNote removes the note with the given id. Missing notes are not an error.
func (s *NoteService) DeleteNote(ctx context.Context, id string) error {
	if err := s.repo.DeleteNote(ctx, id); err != nil {
		return err
	}

	s.metrics.IncNoteDeleted()
	if s.cache != nil {
		if err := s.cache.MarkDeleted(ctx, id); err != nil {
			s.logger.Warn("note_cache_error", "op", "mark_deleted", "note_id", id, "error", err)
		}
	}
	return nil
}

// storeUpdated writes the new version through to the cache. When that fails
// the entry is dropped so the stale version is not served.
func (s *NoteService) storeUpdated(ctx context.Context, note *model.Note) {
	if s.cache == nil {
		return
	}
	err := s.cache.SetNote(ctx, note)
	if err == nil {
		return
	}
	s.logger.Warn("note_cache_error", "op", "set", "note_id", note.ID, "error", err)
	if err := s.cache.DeleteNote(ctx, note.ID); err != nil {
		s.logger.Warn("note_cache_error", "op", "delete", "note_id", note.ID, "error", err)
	}
}
