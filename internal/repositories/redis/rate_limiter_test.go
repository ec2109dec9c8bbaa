package redis_test

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/smarino-dev/tienda-api/internal/config"
	redisrepo "github.com/smarino-dev/tienda-api/internal/repositories/redis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRateLimiter(t *testing.T, maxAttempts int64) *redisrepo.RateLimiter {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err, "Failed to start miniredis")

	t.Cleanup(mr.Close)

	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})

	t.Cleanup(func() {
		client.Close()
	})

	return redisrepo.NewRateLimiter(client, &config.RateLimit{
		MaxAttempts: maxAttempts,
		WindowSize:  15 * time.Minute,
	})
}

func TestCheckLoginRateLimit(t *testing.T) {
	t.Run("Allows Attempts Below The Limit", func(t *testing.T) {
		limiter := setupRateLimiter(t, 5)
		ctx := t.Context()

		allowed, remaining, _, err := limiter.CheckLoginRateLimit(ctx, "ana@example.com")

		assert.NoError(t, err)
		assert.True(t, allowed)
		assert.Equal(t, 4, remaining)
	})

	t.Run("Blocks Once The Window Is Full", func(t *testing.T) {
		limiter := setupRateLimiter(t, 3)
		ctx := t.Context()

		for range 2 {
			allowed, _, _, err := limiter.CheckLoginRateLimit(ctx, "ana@example.com")
			assert.NoError(t, err)
			assert.True(t, allowed)
		}

		allowed, _, retryAfter, err := limiter.CheckLoginRateLimit(ctx, "ana@example.com")

		assert.NoError(t, err)
		assert.False(t, allowed)
		assert.Positive(t, retryAfter)
	})

	t.Run("Tracks Emails Independently", func(t *testing.T) {
		limiter := setupRateLimiter(t, 2)
		ctx := t.Context()

		limiter.CheckLoginRateLimit(ctx, "ana@example.com")
		allowed, _, _, err := limiter.CheckLoginRateLimit(ctx, "ana@example.com")
		assert.NoError(t, err)
		assert.False(t, allowed)

		allowed, _, _, err = limiter.CheckLoginRateLimit(ctx, "bob@example.com")
		assert.NoError(t, err)
		assert.True(t, allowed)
	})
}
