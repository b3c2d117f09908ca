package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// visitor holds the bucket of one key and the last time it was used.
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// MemoryLimiter keeps one token bucket per key. Buckets refill continuously
// at Requests/Window and hold at most Requests tokens.
type MemoryLimiter struct {
	quota Quota
	every rate.Limit

	mu       sync.Mutex
	visitors map[string]*visitor
	now      func() time.Time
}

func NewMemoryLimiter(quota Quota) *MemoryLimiter {
	return &MemoryLimiter{
		quota:    quota,
		every:    rate.Every(quota.Window / time.Duration(max(quota.Requests, 1))),
		visitors: make(map[string]*visitor),
		now:      time.Now,
	}
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) (Result, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	v, ok := l.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.every, l.quota.Requests)}
		l.visitors[key] = v
	}
	v.lastSeen = now

	allowed := v.limiter.AllowN(now, 1)
	tokens := v.limiter.TokensAt(now)

	return Result{
		Allowed:   allowed,
		Limit:     l.quota.Requests,
		Remaining: max(int(tokens), 0),
		ResetAt:   now.Add(l.refillTime(tokens)),
	}, nil
}

// refillTime is how long a bucket holding tokens needs to become full.
func (l *MemoryLimiter) refillTime(tokens float64) time.Duration {
	missing := float64(l.quota.Requests) - tokens
	if missing <= 0 || l.every <= 0 {
		return 0
	}
	return time.Duration(missing / float64(l.every) * float64(time.Second))
}

// Cleanup drops buckets that have not been used for a whole window. Such a
// bucket is full again, so forgetting it changes nothing for its key.
// It returns the number of evicted keys.
func (l *MemoryLimiter) Cleanup() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	evicted := 0
	for key, v := range l.visitors {
		if now.Sub(v.lastSeen) > l.quota.Window {
			delete(l.visitors, key)
			evicted++
		}
	}

	return evicted
}

// Len returns the number of tracked keys.
func (l *MemoryLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.visitors)
}
