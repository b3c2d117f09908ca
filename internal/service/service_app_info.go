package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-shop-keeper/internal/logger"
	"github.com/MKhiriev/go-shop-keeper/internal/store"
)

type appInfoService struct {
	startedAt time.Time
	pinger    store.Pinger

	logger *logger.Logger
}

// NewAppInfoService records the process start time. pinger may be nil, in
// which case the service always reports ready.
func NewAppInfoService(pinger store.Pinger, logger *logger.Logger) AppInfoService {
	return &appInfoService{
		startedAt: time.Now(),
		pinger:    pinger,
		logger:    logger,
	}
}

func (s *appInfoService) StartedAt() time.Time {
	return s.startedAt
}

func (s *appInfoService) Uptime() time.Duration {
	return time.Since(s.startedAt)
}

// Ready pings the database.
func (s *appInfoService) Ready(ctx context.Context) error {
	if s.pinger == nil {
		return nil
	}

	if err := s.pinger.PingContext(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*appInfoService.Ready").Msg("database ping failed")
		return fmt.Errorf("%w: %w", ErrDatabaseNotReady, err)
	}

	return nil
}
