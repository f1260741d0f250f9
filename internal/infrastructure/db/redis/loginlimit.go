package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultMaxAttempts = 10
	defaultWindow      = time.Minute
)

// LoginLimiter throttles login attempts per client, backed by Redis.
// Key format: loginlimit:<client_ip>
type LoginLimiter struct {
	client *redis.Client
	max    int64
	window time.Duration
}

// NewLoginLimiter creates a LoginLimiter wrapping the given Redis client.
// Non-positive max or window fall back to the defaults.
func NewLoginLimiter(client *redis.Client, max int64, window time.Duration) *LoginLimiter {
	if max <= 0 {
		max = defaultMaxAttempts
	}
	if window <= 0 {
		window = defaultWindow
	}
	return &LoginLimiter{client: client, max: max, window: window}
}

// Allow records one attempt for clientIP and reports whether it is still
// within the window's budget. The counter expires after the window so a
// blocked client recovers on its own.
func (l *LoginLimiter) Allow(ctx context.Context, clientIP string) (bool, error) {
	key := fmt.Sprintf("loginlimit:%s", clientIP)

	n, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("login limit: %w", err)
	}
	if n == 1 {
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			return false, fmt.Errorf("login limit expire: %w", err)
		}
	}
	return n <= l.max, nil
}
