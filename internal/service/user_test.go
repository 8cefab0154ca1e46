package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notekeeper/notekeeper/internal/apperr"
	"github.com/notekeeper/notekeeper/internal/auth"
	"github.com/notekeeper/notekeeper/internal/metrics"
	"github.com/notekeeper/notekeeper/internal/repository"
)

var testHashParams = auth.Params{Time: 1, Memory: 1024, Threads: 1, KeyLen: 16, SaltLen: 8}

type failingHasher struct{}

func (failingHasher) Hash(string) (string, error) { return "", errors.New("entropy exhausted") }

func newUserTestService(t *testing.T) (*UserService, *metrics.InMemoryRecorder) {
	t.Helper()
	rec := metrics.NewInMemory()
	return NewUserService(repository.NewMemory(), auth.NewHasher(testHashParams), rec, discardLogger()), rec
}

func TestUserService_CreateUser(t *testing.T) {
	t.Parallel()

	svc, rec := newUserTestService(t)
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, CreateUserInput{Username: "mluukkai", Name: "Matti Luukkainen", Password: "salainen"})
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.NotEqual(t, "salainen", user.PasswordHash)
	assert.Empty(t, user.NoteIDs)

	ok, err := auth.NewHasher(testHashParams).Verify("salainen", user.PasswordHash)
	require.NoError(t, err)
	assert.True(t, ok)

	assert.Equal(t, uint64(1), rec.Snapshot().UsersCreated)
}

func TestUserService_CreateUser_Duplicate(t *testing.T) {
	t.Parallel()

	svc, _ := newUserTestService(t)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, CreateUserInput{Username: "root", Password: "sekret"})
	require.NoError(t, err)

	_, err = svc.CreateUser(ctx, CreateUserInput{Username: "root", Name: "Superuser", Password: "salainen"})
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.Validation))
	assert.Contains(t, apperr.Message(err), "`username` to be unique")

	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestUserService_CreateUser_Validation(t *testing.T) {
	t.Parallel()

	svc, _ := newUserTestService(t)

	tests := []struct {
		name  string
		input CreateUserInput
		want  error
	}{
		{"missing username", CreateUserInput{Password: "x"}, ErrUsernameMissing},
		{"missing password", CreateUserInput{Username: "root"}, ErrPasswordMissing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateUser(context.Background(), tt.input)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestUserService_CreateUser_HashFailureIsInternal(t *testing.T) {
	t.Parallel()

	svc := NewUserService(repository.NewMemory(), failingHasher{}, nil, discardLogger())

	_, err := svc.CreateUser(context.Background(), CreateUserInput{Username: "root", Password: "x"})
	require.Error(t, err)
	assert.Equal(t, apperr.Internal, apperr.KindOf(err))
}
