package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"plain error", errors.New("boom"), Internal},
		{"invalid id", InvalidIDf("abc", errors.New("bad hex")), InvalidID},
		{"validation", NewValidation("content missing"), Validation},
		{"not found", NewNotFound("note", "x"), NotFound},
		{"wrapped validation", fmt.Errorf("create: %w", NewValidation("content missing")), Validation},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestIs_NilError(t *testing.T) {
	t.Parallel()

	assert.False(t, Is(nil, Internal))
	assert.False(t, Is(nil, NotFound))
}

func TestInvalidIDf_UnwrapsCause(t *testing.T) {
	t.Parallel()

	cause := errors.New("odd length hex string")
	err := InvalidIDf("5a3d5da59070081a82a3445", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, MalformattedID, Message(err))
	assert.Contains(t, err.Error(), "5a3d5da59070081a82a3445")
}

func TestMessage_Unclassified(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Message(errors.New("driver exploded")))
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "invalid_id", InvalidID.String())
	assert.Equal(t, "validation", Validation.String())
	assert.Equal(t, "not_found", NotFound.String())
	assert.Equal(t, "internal", Internal.String())
}
