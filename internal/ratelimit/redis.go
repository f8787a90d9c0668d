package ratelimit

import (
	"context"

	"github.com/go-redis/redis_rate/v10"
	"github.com/redis/go-redis/v9"
)

// RedisLimiter enforces a sliding window in Redis, so the budget holds
// across every instance sharing the same Redis.
type RedisLimiter struct {
	limiter *redis_rate.Limiter
}

func NewRedisLimiter(rdb *redis.Client) *RedisLimiter {
	return &RedisLimiter{limiter: redis_rate.NewLimiter(rdb)}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string, perMinute int) (*Result, error) {
	res, err := l.limiter.Allow(ctx, key, redis_rate.PerMinute(perMinute))
	if err != nil {
		return nil, err
	}
	return &Result{
		Allowed:    res.Allowed > 0,
		Remaining:  res.Remaining,
		RetryAfter: res.RetryAfter,
		ResetAfter: res.ResetAfter,
	}, nil
}
