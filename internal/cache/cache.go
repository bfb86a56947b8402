package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrCacheMiss is returned by Get when the key is absent or expired.
var ErrCacheMiss = errors.New("cache miss")

// DefaultTTL bounds how long any snapshot may outlive the store's row.
const DefaultTTL = time.Hour

// Cache is an expiring key-value store holding JSON snapshots.
// The relational store stays authoritative; entries here only
// accelerate reads and may be dropped at any time.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error

	Close() error
}

// AllBooksKey holds the serialized full catalog listing.
const AllBooksKey = "all-books"

// BookKey returns the cache key for a single catalog entry.
func BookKey(id uuid.UUID) string {
	return fmt.Sprintf("book:%s", id)
}

// ProfileKey returns the cache key for a user's profile projection.
func ProfileKey(id uuid.UUID) string {
	return fmt.Sprintf("profile:%s", id)
}
