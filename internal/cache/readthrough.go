package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/books-app/backend/pkg/logger"
	"go.uber.org/zap"
)

// GetOrLoad is the read-through helper shared by every cached read path:
// on a hit the cached JSON is decoded and returned verbatim; on a miss the
// loader runs against the store and the result is cached under key with
// the given TTL before being returned.
//
// Cache failures never fail the read. A broken Get degrades to a miss and
// a broken Set still returns the loaded value; both are logged.
func GetOrLoad[T any](ctx context.Context, c Cache, key string, ttl time.Duration, load func() (T, error)) (T, error) {
	var zero T

	cached, err := c.Get(ctx, key)
	if err == nil {
		var value T
		if err := json.Unmarshal([]byte(cached), &value); err == nil {
			return value, nil
		}
		// Undecodable entry: fall through to the store and overwrite it.
		logger.Log.Warn("Discarding corrupt cache entry",
			zap.String("key", key),
		)
	} else if !errors.Is(err, ErrCacheMiss) {
		logger.Log.Warn("Cache read failed, falling back to store",
			zap.String("key", key),
			zap.Error(err),
		)
	}

	value, err := load()
	if err != nil {
		return zero, err
	}

	data, err := json.Marshal(value)
	if err != nil {
		return zero, err
	}

	if err := c.Set(ctx, key, string(data), ttl); err != nil {
		logger.Log.Warn("Cache write failed",
			zap.String("key", key),
			zap.Error(err),
		)
	}

	return value, nil
}
