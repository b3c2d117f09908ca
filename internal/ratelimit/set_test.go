package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-shop-keeper/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSet_Memory(t *testing.T) {
	cfg := config.RateLimit{APIRequests: 3, AuthRequests: 1, Window: time.Minute}

	set, err := NewSet(cfg, time.Minute, nopLogger())
	require.NoError(t, err)
	defer set.Close()

	require.NotNil(t, set.Cleanup)
	assert.IsType(t, &MemoryLimiter{}, set.API)

	ctx := context.Background()
	res, err := set.Auth.Allow(ctx, "ip:1")
	require.NoError(t, err)
	assert.True(t, res.Allowed)
	assert.Equal(t, 1, res.Limit)

	res, err = set.Auth.Allow(ctx, "ip:1")
	require.NoError(t, err)
	assert.False(t, res.Allowed, "auth quota is separate and stricter")

	res, err = set.API.Allow(ctx, "ip:1")
	require.NoError(t, err)
	assert.True(t, res.Allowed)
	assert.Equal(t, 3, res.Limit)

	res, err = set.Products.Allow(ctx, "user:1")
	require.NoError(t, err)
	assert.Equal(t, 3, res.Limit)
}

func TestNewSet_Redis(t *testing.T) {
	cfg := config.RateLimit{APIRequests: 3, AuthRequests: 1, Window: time.Minute, RedisURL: "redis://127.0.0.1:6390/0"}

	set, err := NewSet(cfg, time.Minute, nopLogger())
	require.NoError(t, err)
	defer set.Close()

	assert.Nil(t, set.Cleanup)
	assert.IsType(t, &RedisLimiter{}, set.API)
	assert.IsType(t, &RedisLimiter{}, set.Products)
}

func TestNewSet_InvalidRedisURL(t *testing.T) {
	cfg := config.RateLimit{APIRequests: 3, AuthRequests: 1, Window: time.Minute, RedisURL: "http://nope"}

	set, err := NewSet(cfg, time.Minute, nopLogger())

	assert.Error(t, err)
	assert.Nil(t, set)
}
