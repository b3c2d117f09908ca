package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-shop-keeper/internal/adapter"
	"github.com/MKhiriev/go-shop-keeper/internal/config"
	"github.com/MKhiriev/go-shop-keeper/internal/logger"
	"github.com/MKhiriev/go-shop-keeper/internal/mock"
	"github.com/MKhiriev/go-shop-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var healthy = models.HealthResponse{Success: true, Message: "Server is running", Uptime: 3}

func TestProbe_Run(t *testing.T) {
	tests := []struct {
		name      string
		ready     bool
		setup     func(m *mock.MockServerAdapter)
		wantErr   string
		wantErrIs error
	}{
		{
			name: "healthy",
			setup: func(m *mock.MockServerAdapter) {
				m.EXPECT().Health(gomock.Any()).Return(healthy, nil)
			},
		},
		{
			name: "server down",
			setup: func(m *mock.MockServerAdapter) {
				m.EXPECT().Health(gomock.Any()).Return(models.HealthResponse{}, errors.New("connection refused"))
			},
			wantErr: "health check failed",
		},
		{
			name:  "healthy and ready",
			ready: true,
			setup: func(m *mock.MockServerAdapter) {
				m.EXPECT().Health(gomock.Any()).Return(healthy, nil)
				m.EXPECT().Ready(gomock.Any()).Return(nil)
			},
		},
		{
			name:  "database unreachable",
			ready: true,
			setup: func(m *mock.MockServerAdapter) {
				m.EXPECT().Health(gomock.Any()).Return(healthy, nil)
				m.EXPECT().Ready(gomock.Any()).Return(adapter.ErrServiceUnavailable)
			},
			wantErr:   "readiness check failed",
			wantErrIs: adapter.ErrServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			server := mock.NewMockServerAdapter(ctrl)
			tt.setup(server)

			probe := NewProbe(server, config.Probe{Timeout: time.Second, Ready: tt.ready}, logger.Nop())
			err := probe.Run()

			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			if tt.wantErrIs != nil {
				assert.ErrorIs(t, err, tt.wantErrIs)
			}
		})
	}
}

func TestProbe_Run_PassesDeadline(t *testing.T) {
	ctrl := gomock.NewController(t)
	server := mock.NewMockServerAdapter(ctrl)
	server.EXPECT().Health(gomock.Any()).DoAndReturn(func(ctx context.Context) (models.HealthResponse, error) {
		deadline, ok := ctx.Deadline()
		assert.True(t, ok)
		assert.WithinDuration(t, time.Now().Add(time.Second), deadline, 500*time.Millisecond)
		return healthy, nil
	})

	err := NewProbe(server, config.Probe{Timeout: time.Second}, logger.Nop()).Run()

	assert.NoError(t, err)
}
