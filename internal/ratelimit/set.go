package ratelimit

import (
	"time"

	"github.com/MKhiriev/go-shop-keeper/internal/config"
	"github.com/MKhiriev/go-shop-keeper/internal/logger"
	"github.com/redis/go-redis/v9"
)

// Limiter names, used as Redis key namespaces and metric labels.
const (
	NameAPI      = "api"
	NameAuth     = "auth"
	NameProducts = "products"
)

// Set holds the limiters applied by the HTTP layer.
type Set struct {
	API      Limiter
	Auth     Limiter
	Products Limiter

	// Cleanup evicts idle in-memory buckets. It is nil for the Redis backend,
	// where keys expire on their own.
	Cleanup *CleanupWorker

	redis *redis.Client
}

// NewSet builds the limiters described by cfg. A non-empty cfg.RedisURL
// selects the shared Redis backend; otherwise every limiter is in-memory.
// The products quota equals the API quota but is counted per user.
func NewSet(cfg config.RateLimit, cleanupInterval time.Duration, logger *logger.Logger) (*Set, error) {
	apiQuota := Quota{Requests: cfg.APIRequests, Window: cfg.Window}
	authQuota := Quota{Requests: cfg.AuthRequests, Window: cfg.Window}

	if cfg.RedisURL != "" {
		client, err := NewRedisClient(cfg.RedisURL)
		if err != nil {
			return nil, err
		}

		logger.Info().Str("func", "ratelimit.NewSet").Str("redis", client.Options().Addr).Msg("using redis rate limiter")
		return &Set{
			API:      NewRedisLimiter(client, NameAPI, apiQuota),
			Auth:     NewRedisLimiter(client, NameAuth, authQuota),
			Products: NewRedisLimiter(client, NameProducts, apiQuota),
			redis:    client,
		}, nil
	}

	api := NewMemoryLimiter(apiQuota)
	auth := NewMemoryLimiter(authQuota)
	products := NewMemoryLimiter(apiQuota)

	logger.Info().Str("func", "ratelimit.NewSet").Msg("using in-memory rate limiter")
	return &Set{
		API:      api,
		Auth:     auth,
		Products: products,
		Cleanup:  NewCleanupWorker(cleanupInterval, logger, api, auth, products),
	}, nil
}

// Close releases the Redis connection pool, if any.
func (s *Set) Close() error {
	if s.redis == nil {
		return nil
	}
	return s.redis.Close()
}
