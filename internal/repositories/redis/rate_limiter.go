package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/smarino-dev/tienda-api/internal/config"
)

// RateLimiter tracks login attempts per email in a Redis sorted set and
// enforces a sliding window.
type RateLimiter struct {
	client *redis.Client
	cfg    *config.RateLimit
}

func NewClient(cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Username: cfg.Redis.Username,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return client, nil
}

func NewRateLimiter(client *redis.Client, cfg *config.RateLimit) *RateLimiter {
	return &RateLimiter{client: client, cfg: cfg}
}

// CheckLoginRateLimit records the current attempt and reports whether it is
// allowed, how many attempts remain, and how long to wait when blocked.
func (r *RateLimiter) CheckLoginRateLimit(ctx context.Context, email string) (bool, int, int, error) {
	key := fmt.Sprintf("login_attempts:%s", email)

	// Nanosecond members keep attempts within the same second distinct.
	now := time.Now().UnixNano()
	windowStart := now - r.cfg.WindowSize.Nanoseconds()

	pipe := r.client.Pipeline()
	pipe.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", windowStart))
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(now), Member: now})
	count := pipe.ZCard(ctx, key)
	pipe.Expire(ctx, key, r.cfg.WindowSize)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, 0, err
	}

	attempts := count.Val()
	remaining := r.cfg.MaxAttempts - attempts

	if attempts >= r.cfg.MaxAttempts {
		oldest, err := r.client.ZRange(ctx, key, 0, 0).Result()
		if err != nil || len(oldest) == 0 {
			return false, 0, 0, err
		}

		oldestTime, err := strconv.ParseInt(oldest[0], 10, 64)
		if err != nil {
			return false, 0, 0, err
		}

		retryAfter := (r.cfg.WindowSize.Nanoseconds() - (now - oldestTime)) / int64(time.Second)
		if retryAfter < 1 {
			retryAfter = 1
		}

		return false, 0, int(retryAfter), nil
	}

	return true, int(remaining), 0, nil
}
