package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notekeeper/notekeeper/internal/apperr"
	"github.com/notekeeper/notekeeper/internal/model"
)

// storeFixture builds an empty store and a generator of well-formed ids
// that the store has never issued.
type storeFixture func(t *testing.T) (Store, func() string)

// runStoreContract exercises the behaviour every backend must share.
func runStoreContract(t *testing.T, fixture storeFixture) {
	t.Run("create then list", func(t *testing.T) {
		ctx := context.Background()
		store, _ := fixture(t)

		created, err := store.CreateNote(ctx, "HTML is easy", false)
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.False(t, created.Date.IsZero())

		notes, err := store.ListNotes(ctx)
		require.NoError(t, err)
		require.Len(t, notes, 1)
		assert.Equal(t, created, notes[0])
	})

	t.Run("get by id", func(t *testing.T) {
		ctx := context.Background()
		store, _ := fixture(t)

		created, err := store.CreateNote(ctx, "Browser can execute only Javascript", true)
		require.NoError(t, err)

		got, err := store.GetNote(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created, got)
	})

	t.Run("get missing id", func(t *testing.T) {
		store, freshID := fixture(t)

		_, err := store.GetNote(context.Background(), freshID())
		assert.True(t, apperr.Is(err, apperr.NotFound), "got %v", err)
	})

	t.Run("malformed id", func(t *testing.T) {
		ctx := context.Background()
		store, _ := fixture(t)
		bad := "5a3d5da59070081a82a3445"

		_, err := store.GetNote(ctx, bad)
		assert.True(t, apperr.Is(err, apperr.InvalidID), "get: %v", err)

		_, err = store.UpdateNote(ctx, bad, model.NoteUpdate{})
		assert.True(t, apperr.Is(err, apperr.InvalidID), "update: %v", err)

		err = store.DeleteNote(ctx, bad)
		assert.True(t, apperr.Is(err, apperr.InvalidID), "delete: %v", err)
	})

	t.Run("update applies only provided fields", func(t *testing.T) {
		ctx := context.Background()
		store, _ := fixture(t)

		created, err := store.CreateNote(ctx, "GET and POST are the most important methods of HTTP protocol", false)
		require.NoError(t, err)

		important := true
		updated, err := store.UpdateNote(ctx, created.ID, model.NoteUpdate{Important: &important})
		require.NoError(t, err)
		assert.Equal(t, created.Content, updated.Content)
		assert.True(t, updated.Important)
		assert.Equal(t, created.Date, updated.Date)

		content := "rewritten"
		updated, err = store.UpdateNote(ctx, created.ID, model.NoteUpdate{Content: &content})
		require.NoError(t, err)
		assert.Equal(t, "rewritten", updated.Content)
		assert.True(t, updated.Important)
	})

	t.Run("update missing id", func(t *testing.T) {
		store, freshID := fixture(t)

		important := true
		_, err := store.UpdateNote(context.Background(), freshID(), model.NoteUpdate{Important: &important})
		assert.True(t, apperr.Is(err, apperr.NotFound), "got %v", err)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		ctx := context.Background()
		store, _ := fixture(t)

		created, err := store.CreateNote(ctx, "to be removed", false)
		require.NoError(t, err)

		require.NoError(t, store.DeleteNote(ctx, created.ID))
		require.NoError(t, store.DeleteNote(ctx, created.ID))

		_, err = store.GetNote(ctx, created.ID)
		assert.True(t, apperr.Is(err, apperr.NotFound))

		notes, err := store.ListNotes(ctx)
		require.NoError(t, err)
		assert.Empty(t, notes)
	})

	t.Run("delete all notes", func(t *testing.T) {
		ctx := context.Background()
		store, _ := fixture(t)

		for _, content := range []string{"a", "b", "c"} {
			_, err := store.CreateNote(ctx, content, false)
			require.NoError(t, err)
		}

		n, err := store.DeleteAllNotes(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(3), n)
	})

	t.Run("unique username", func(t *testing.T) {
		ctx := context.Background()
		store, _ := fixture(t)

		root := &model.User{Username: "root", PasswordHash: "hash"}
		require.NoError(t, store.CreateUser(ctx, root))
		assert.NotEmpty(t, root.ID)

		dup := &model.User{Username: "root", Name: "Superuser", PasswordHash: "hash"}
		err := store.CreateUser(ctx, dup)
		require.Error(t, err)
		assert.True(t, apperr.Is(err, apperr.Validation))
		assert.Contains(t, apperr.Message(err), "`username` to be unique")

		users, err := store.ListUsers(ctx)
		require.NoError(t, err)
		assert.Len(t, users, 1)
		assert.Equal(t, "root", users[0].Username)
		assert.Equal(t, "hash", users[0].PasswordHash)
	})

	t.Run("user note references", func(t *testing.T) {
		ctx := context.Background()
		store, _ := fixture(t)

		note, err := store.CreateNote(ctx, "owned", false)
		require.NoError(t, err)

		user := &model.User{Username: "mluukkai", Name: "Matti Luukkainen", PasswordHash: "hash", NoteIDs: []string{note.ID}}
		require.NoError(t, store.CreateUser(ctx, user))

		users, err := store.ListUsers(ctx)
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, []string{note.ID}, users[0].NoteIDs)

		err = store.CreateUser(ctx, &model.User{Username: "other", PasswordHash: "hash", NoteIDs: []string{"nope"}})
		assert.True(t, apperr.Is(err, apperr.InvalidID))
	})
}
