package cache

import (
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestNoteKeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		id   string
		key  string
		neg  string
	}{
		{"object id", "5a3d5da59070081a82a3445c", "note:5a3d5da59070081a82a3445c", "note:5a3d5da59070081a82a3445c:neg"},
		{"ulid", "01HZY3M7Q2V8K9T4N6B1C5D0EF", "note:01HZY3M7Q2V8K9T4N6B1C5D0EF", "note:01HZY3M7Q2V8K9T4N6B1C5D0EF:neg"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.key, noteKey(tt.id))
			assert.Equal(t, tt.neg, negativeKey(tt.id))
		})
	}
}

func TestNewWithClient_DefaultTTL(t *testing.T) {
	t.Parallel()

	client := redis.NewClient(&redis.Options{Addr: "localhost:0"})
	defer client.Close()

	assert.Equal(t, DefaultNoteTTL, NewWithClient(client, 0).noteTTL)
	assert.Equal(t, 30*time.Second, NewWithClient(client, 30*time.Second).noteTTL)
}
