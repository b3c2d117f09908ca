package ratelimit

import (
	"context"
	"time"

	"github.com/MKhiriev/go-shop-keeper/internal/logger"
)

// CleanupWorker periodically evicts idle buckets from in-memory limiters.
type CleanupWorker struct {
	limiters []*MemoryLimiter
	interval time.Duration
	logger   *logger.Logger
}

func NewCleanupWorker(interval time.Duration, logger *logger.Logger, limiters ...*MemoryLimiter) *CleanupWorker {
	return &CleanupWorker{
		limiters: limiters,
		interval: interval,
		logger:   logger,
	}
}

// Run blocks until ctx is done.
func (w *CleanupWorker) Run(ctx context.Context) {
	if w.interval <= 0 || len(w.limiters) == 0 {
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			evicted := 0
			for _, l := range w.limiters {
				evicted += l.Cleanup()
			}
			if evicted > 0 {
				w.logger.Debug().Str("func", "*CleanupWorker.Run").Int("evicted", evicted).Msg("rate limiter buckets evicted")
			}
		}
	}
}
