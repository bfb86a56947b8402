package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/books-app/backend/internal/cache"
	"github.com/books-app/backend/internal/testutil"
	"github.com/books-app/backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCache(t *testing.T) (*cache.RedisCache, *testutil.TestRedis) {
	logger.Init(false)

	testRedis := testutil.SetupTestRedis(t)
	t.Cleanup(func() { testRedis.Teardown(t) })

	c, err := cache.NewRedisCache(testRedis.URL)
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })

	return c, testRedis
}

func TestRedisCache_SetGet(t *testing.T) {
	c, _ := setupCache(t)
	ctx := context.Background()

	err := c.Set(ctx, "book:abc", `{"title":"Dune"}`, time.Hour)
	require.NoError(t, err)

	val, err := c.Get(ctx, "book:abc")
	require.NoError(t, err)
	assert.Equal(t, `{"title":"Dune"}`, val)
}

func TestRedisCache_GetMiss(t *testing.T) {
	c, _ := setupCache(t)

	_, err := c.Get(context.Background(), "missing-key")

	assert.ErrorIs(t, err, cache.ErrCacheMiss)
}

func TestRedisCache_Expiry(t *testing.T) {
	c, testRedis := setupCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "key", "value", time.Minute))

	// miniredis lets us advance the clock instead of sleeping
	testRedis.Server.FastForward(2 * time.Minute)

	_, err := c.Get(ctx, "key")
	assert.ErrorIs(t, err, cache.ErrCacheMiss)
}

func TestRedisCache_Delete(t *testing.T) {
	c, _ := setupCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "a", "1", time.Hour))
	require.NoError(t, c.Set(ctx, "b", "2", time.Hour))

	err := c.Delete(ctx, "a", "b")
	require.NoError(t, err)

	_, err = c.Get(ctx, "a")
	assert.ErrorIs(t, err, cache.ErrCacheMiss)
	_, err = c.Get(ctx, "b")
	assert.ErrorIs(t, err, cache.ErrCacheMiss)
}

func TestRedisCache_DeleteMissingKey(t *testing.T) {
	c, _ := setupCache(t)

	// Deleting an absent key is not an error
	err := c.Delete(context.Background(), "never-existed")
	assert.NoError(t, err)
}

func TestGetOrLoad_MissPopulatesCache(t *testing.T) {
	c, _ := setupCache(t)
	ctx := context.Background()

	loads := 0
	loader := func() (string, error) {
		loads++
		return "loaded-value", nil
	}

	// First call misses and loads from the source
	val, err := cache.GetOrLoad(ctx, c, "key", time.Hour, loader)
	require.NoError(t, err)
	assert.Equal(t, "loaded-value", val)
	assert.Equal(t, 1, loads)

	// Second call is served from the cache
	val, err = cache.GetOrLoad(ctx, c, "key", time.Hour, loader)
	require.NoError(t, err)
	assert.Equal(t, "loaded-value", val)
	assert.Equal(t, 1, loads, "Loader must not run on a cache hit")
}

func TestGetOrLoad_LoaderError(t *testing.T) {
	c, _ := setupCache(t)
	ctx := context.Background()

	sentinel := assert.AnError
	_, err := cache.GetOrLoad(ctx, c, "key", time.Hour, func() (string, error) {
		return "", sentinel
	})

	assert.ErrorIs(t, err, sentinel)

	// Failures must not be cached
	_, err = c.Get(ctx, "key")
	assert.ErrorIs(t, err, cache.ErrCacheMiss)
}

func TestGetOrLoad_CorruptEntryFallsBack(t *testing.T) {
	c, _ := setupCache(t)
	ctx := context.Background()

	type book struct {
		Title string `json:"title"`
	}

	require.NoError(t, c.Set(ctx, "key", "{not-json", time.Hour))

	val, err := cache.GetOrLoad(ctx, c, "key", time.Hour, func() (book, error) {
		return book{Title: "Dune"}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "Dune", val.Title)

	// The corrupt entry was overwritten with the loaded snapshot
	raw, err := c.Get(ctx, "key")
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"Dune"}`, raw)
}

func TestGetOrLoad_ExpiredEntryReloads(t *testing.T) {
	c, testRedis := setupCache(t)
	ctx := context.Background()

	loads := 0
	loader := func() (int, error) {
		loads++
		return loads, nil
	}

	val, err := cache.GetOrLoad(ctx, c, "key", time.Minute, loader)
	require.NoError(t, err)
	assert.Equal(t, 1, val)

	testRedis.Server.FastForward(2 * time.Minute)

	val, err = cache.GetOrLoad(ctx, c, "key", time.Minute, loader)
	require.NoError(t, err)
	assert.Equal(t, 2, val, "Expired entry must be reloaded from the source")
}
