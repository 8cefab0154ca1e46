package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/notekeeper/notekeeper/internal/apperr"
	"github.com/notekeeper/notekeeper/internal/metrics"
	"github.com/notekeeper/notekeeper/internal/model"
	"github.com/notekeeper/notekeeper/internal/repository"
)

// User validation errors.
var (
	ErrUsernameMissing = apperr.NewValidation("username missing")
	ErrPasswordMissing = apperr.NewValidation("password missing")
)

// PasswordHasher turns a plaintext password into a storable hash.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

// UserService handles account creation and listing.
type UserService struct {
	repo    repository.UserRepository
	hasher  PasswordHasher
	metrics metrics.Recorder
	logger  *slog.Logger
}

// NewUserService creates a new UserService.
func NewUserService(repo repository.UserRepository, hasher PasswordHasher, recorder metrics.Recorder, logger *slog.Logger) *UserService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &UserService{
		repo:    repo,
		hasher:  hasher,
		metrics: recorder,
		logger:  logger,
	}
}

// CreateUserInput defines input for creating a user.
type CreateUserInput struct {
	Username string
	Name     string
	Password string
}

// CreateUser hashes the password and stores the account.
func (s *UserService) CreateUser(ctx context.Context, input CreateUserInput) (*model.User, error) {
	if input.Username == "" {
		return nil, ErrUsernameMissing
	}
	if input.Password == "" {
		return nil, ErrPasswordMissing
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Username:     input.Username,
		Name:         input.Name,
		PasswordHash: hash,
		NoteIDs:      []string{},
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	s.metrics.IncUserCreated()
	s.logger.Info("user_created", "user_id", user.ID, "username", user.Username)

	return user, nil
}

// ListUsers returns every user.
func (s *UserService) ListUsers(ctx context.Context) ([]*model.User, error) {
	return s.repo.ListUsers(ctx)
}
