package ratelimit

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "ratelimit:lead:"

// RedisLimiter keeps the per-key window in Redis so throttling stays
// consistent when more than one server instance runs. Semantics match
// IntervalLimiter: one admission per key per interval, rejections do not
// extend the window.
type RedisLimiter struct {
	client   *redis.Client
	interval time.Duration
}

// NewRedisLimiter creates a Redis-backed limiter with the given minimum
// interval between admitted requests per key.
func NewRedisLimiter(client *redis.Client, interval time.Duration) *RedisLimiter {
	return &RedisLimiter{client: client, interval: interval}
}

// Allow admits the request iff no key exists yet. SET NX with a PX expiry of
// one interval both checks and records the admission atomically; an existing
// key means the client is still inside its window.
func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	ok, err := l.client.SetNX(ctx, redisKeyPrefix+key, time.Now().UnixMilli(), l.interval).Result()
	if err != nil {
		return false, err
	}
	return ok, nil
}
