package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/notekeeper/notekeeper/internal/model"
)

// Cache key prefixes and TTLs.
const (
	noteKeyPrefix     = "note:"
	negCacheKeySuffix = ":neg"

	// DefaultNoteTTL is the TTL for cached note data.
	DefaultNoteTTL = 10 * time.Minute

	// NegativeCacheTTL is the TTL for negative cache entries and delete tombstones.
	NegativeCacheTTL = time.Minute
)

// Common cache errors.
var (
	ErrCacheMiss = errors.New("cache miss")
)

func noteKey(id string) string {
	return noteKeyPrefix + id
}

func negativeKey(id string) string {
	return noteKeyPrefix + id + negCacheKeySuffix
}

// GetNote retrieves a note from cache by id.
// Returns ErrCacheMiss if not found.
func (c *Cache) GetNote(ctx context.Context, id string) (*model.Note, error) {
	var cached model.CachedNote
	cmd := c.client.HGetAll(ctx, noteKey(id))
	if err := cmd.Err(); err != nil {
		return nil, fmt.Errorf("redis hgetall failed: %w", err)
	}

	if len(cmd.Val()) == 0 {
		return nil, ErrCacheMiss
	}

	if err := cmd.Scan(&cached); err != nil {
		return nil, fmt.Errorf("failed to decode cached note: %w", err)
	}

	return cached.ToNote(id), nil
}

// SetNote stores a note in cache and clears any negative entry.
// It overwrites unconditionally; use it for values written by the caller.
func (c *Cache) SetNote(ctx context.Context, note *model.Note) error {
	key := noteKey(note.ID)
	cached := note.ToCachedNote()

	pipe := c.client.TxPipeline()
	pipe.HSet(ctx, key, cached)
	pipe.Expire(ctx, key, c.noteTTL)
	pipe.Del(ctx, negativeKey(note.ID))

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to cache note: %w", err)
	}

	return nil
}

// FillNote caches a note read from the store unless the id already has a
// cached value or a negative entry. A concurrent write to either key aborts
// the fill, so a read never overwrites what a newer write or delete left.
func (c *Cache) FillNote(ctx context.Context, note *model.Note) error {
	key := noteKey(note.ID)
	neg := negativeKey(note.ID)

	err := c.client.Watch(ctx, func(tx *redis.Tx) error {
		n, err := tx.Exists(ctx, key, neg).Result()
		if err != nil {
			return err
		}
		if n > 0 {
			return nil
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, key, note.ToCachedNote())
			pipe.Expire(ctx, key, c.noteTTL)
			return nil
		})
		return err
	}, key, neg)

	if errors.Is(err, redis.TxFailedErr) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to fill note cache: %w", err)
	}
	return nil
}

// MarkDeleted drops a cached note and leaves a negative entry in its place.
func (c *Cache) MarkDeleted(ctx context.Context, id string) error {
	pipe := c.client.TxPipeline()
	pipe.Del(ctx, noteKey(id))
	pipe.SetEx(ctx, negativeKey(id), "", NegativeCacheTTL)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to mark note deleted: %w", err)
	}
	return nil
}

// DeleteNote removes a note and its negative entry from cache.
func (c *Cache) DeleteNote(ctx context.Context, id string) error {
	if err := c.client.Del(ctx, noteKey(id), negativeKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to delete note from cache: %w", err)
	}
	return nil
}

// IsNegativelyCached reports whether id was recently looked up and not found.
func (c *Cache) IsNegativelyCached(ctx context.Context, id string) (bool, error) {
	exists, err := c.client.Exists(ctx, negativeKey(id)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check negative cache: %w", err)
	}

	return exists > 0, nil
}

// SetNegativeCache marks an id as not found.
func (c *Cache) SetNegativeCache(ctx context.Context, id string) error {
	if err := c.client.SetEx(ctx, negativeKey(id), "", NegativeCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set negative cache: %w", err)
	}

	return nil
}
