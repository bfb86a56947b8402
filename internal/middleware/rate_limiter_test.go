package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestRateLimiter creates a rate limiter backed by miniredis
func setupTestRateLimiter(t *testing.T, maxRequests int, window time.Duration) (*RateLimiter, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	rl := NewRateLimiter(client, RateLimiterConfig{
		MaxRequests: maxRequests,
		Window:      window,
	})

	return rl, mr
}

func limitedRouter(rl *RateLimiter) *gin.Engine {
	router := gin.New()
	router.Use(rl.Middleware())
	router.POST("/users/login", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "success"})
	})
	return router
}

func hit(router *gin.Engine, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/users/login", nil)
	req.RemoteAddr = ip + ":12345"
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimiter_AllowsRequestsUnderLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rl, mr := setupTestRateLimiter(t, 5, 1*time.Minute)
	defer mr.Close()

	router := limitedRouter(rl)

	for i := 0; i < 5; i++ {
		w := hit(router, "192.168.1.1")
		assert.Equal(t, http.StatusOK, w.Code, "Request %d should succeed", i+1)
	}
}

func TestRateLimiter_BlocksRequestsOverLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rl, mr := setupTestRateLimiter(t, 5, 1*time.Minute)
	defer mr.Close()

	router := limitedRouter(rl)

	for i := 0; i < 5; i++ {
		w := hit(router, "192.168.1.1")
		assert.Equal(t, http.StatusOK, w.Code, "Request %d should succeed", i+1)
	}

	w := hit(router, "192.168.1.1")
	assert.Equal(t, http.StatusTooManyRequests, w.Code, "6th request should be rate limited")
	assert.NotEmpty(t, w.Header().Get("Retry-After"), "Should have Retry-After header")
}

func TestRateLimiter_DifferentIPsIndependent(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rl, mr := setupTestRateLimiter(t, 3, 1*time.Minute)
	defer mr.Close()

	router := limitedRouter(rl)

	for i := 0; i < 3; i++ {
		w := hit(router, "192.168.1.1")
		assert.Equal(t, http.StatusOK, w.Code, "IP1 request %d should succeed", i+1)
	}

	// A different IP still has its full quota
	for i := 0; i < 3; i++ {
		w := hit(router, "192.168.1.2")
		assert.Equal(t, http.StatusOK, w.Code, "IP2 request %d should succeed", i+1)
	}

	// But IP1 is now over
	w := hit(router, "192.168.1.1")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestRateLimiter_WindowResets(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rl, mr := setupTestRateLimiter(t, 2, 1*time.Minute)
	defer mr.Close()

	router := limitedRouter(rl)

	hit(router, "192.168.1.1")
	hit(router, "192.168.1.1")
	w := hit(router, "192.168.1.1")
	require.Equal(t, http.StatusTooManyRequests, w.Code)

	// Advance past the window; the counter expires
	mr.FastForward(2 * time.Minute)

	w = hit(router, "192.168.1.1")
	assert.Equal(t, http.StatusOK, w.Code, "Quota should reset after the window")
}

func TestRateLimiter_FailsOpenWhenRedisDown(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rl, mr := setupTestRateLimiter(t, 2, 1*time.Minute)
	router := limitedRouter(rl)

	// Kill the backend; requests must still pass
	mr.Close()

	w := hit(router, "192.168.1.1")
	assert.Equal(t, http.StatusOK, w.Code, "Limiter must fail open when Redis is unavailable")
}

func TestCheckLimit_CountsPerKey(t *testing.T) {
	rl, mr := setupTestRateLimiter(t, 2, 1*time.Minute)
	defer mr.Close()

	ctx := context.Background()

	allowed, _, err := rl.CheckLimit(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, _, err = rl.CheckLimit(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, retryAfter, err := rl.CheckLimit(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Greater(t, retryAfter, time.Duration(0))
}
