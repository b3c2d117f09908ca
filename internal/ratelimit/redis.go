package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "ratelimit:"

// RedisLimiter counts requests per key in fixed windows stored in Redis.
// Every key gets its own window that starts with its first request.
type RedisLimiter struct {
	client redis.UniversalClient
	name   string
	quota  Quota
}

// NewRedisClient parses redisURL (e.g. "redis://localhost:6379/0") and
// returns a client with a small pool. The connection is not verified.
func NewRedisClient(redisURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	opt.PoolSize = 10
	opt.MinIdleConns = 1
	opt.PoolTimeout = 2 * time.Second
	opt.DialTimeout = 2 * time.Second
	opt.ReadTimeout = time.Second
	opt.WriteTimeout = time.Second

	return redis.NewClient(opt), nil
}

// NewRedisLimiter returns a limiter whose keys are namespaced by name so that
// several quotas can share one Redis database.
func NewRedisLimiter(client redis.UniversalClient, name string, quota Quota) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		name:   name,
		quota:  quota,
	}
}

// Allow increments the window counter of key. On a Redis failure the request
// is allowed and the error is returned for logging.
func (l *RedisLimiter) Allow(ctx context.Context, key string) (Result, error) {
	redisKey := redisKeyPrefix + l.name + ":" + key

	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	pipe.ExpireNX(ctx, redisKey, l.quota.Window)
	ttl := pipe.PTTL(ctx, redisKey)

	if _, err := pipe.Exec(ctx); err != nil {
		return Result{
			Allowed:   true,
			Limit:     l.quota.Requests,
			Remaining: l.quota.Requests,
			ResetAt:   time.Now().Add(l.quota.Window),
		}, fmt.Errorf("rate limit check failed: %w", err)
	}

	count := int(incr.Val())
	resetIn := ttl.Val()
	if resetIn < 0 {
		resetIn = l.quota.Window
	}

	return Result{
		Allowed:   count <= l.quota.Requests,
		Limit:     l.quota.Requests,
		Remaining: max(l.quota.Requests-count, 0),
		ResetAt:   time.Now().Add(resetIn),
	}, nil
}
