package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-shop-keeper/internal/logger"
	"github.com/MKhiriev/go-shop-keeper/internal/mock"
)

// ─────────────────────────────────────────────
// Uptime
// ─────────────────────────────────────────────

func TestAppInfoService_Uptime_Grows(t *testing.T) {
	svc := NewAppInfoService(nil, logger.Nop())

	first := svc.Uptime()
	time.Sleep(5 * time.Millisecond)
	second := svc.Uptime()

	assert.Greater(t, second, first)
	assert.False(t, svc.StartedAt().After(time.Now()))
}

// ─────────────────────────────────────────────
// Ready
// ─────────────────────────────────────────────

func TestAppInfoService_Ready(t *testing.T) {
	ctrl := gomock.NewController(t)
	pinger := mock.NewMockPinger(ctrl)
	svc := NewAppInfoService(pinger, logger.Nop())

	pinger.EXPECT().PingContext(gomock.Any()).Return(nil)
	require.NoError(t, svc.Ready(context.Background()))

	pinger.EXPECT().PingContext(gomock.Any()).Return(errors.New("connection refused"))
	err := svc.Ready(context.Background())
	require.ErrorIs(t, err, ErrDatabaseNotReady)
}

func TestAppInfoService_Ready_NoPinger(t *testing.T) {
	svc := NewAppInfoService(nil, logger.Nop())
	require.NoError(t, svc.Ready(context.Background()))
}
