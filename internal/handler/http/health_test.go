package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-shop-keeper/internal/service"
	"github.com/MKhiriev/go-shop-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	h := newTestHandler(&service.Services{AppInfoService: &stubAppInfoService{uptime: 1500 * time.Millisecond}})

	rec := httptest.NewRecorder()
	h.health(rec, injectNopLogger(httptest.NewRequest(http.MethodGet, "/health", nil)))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Server is running", resp.Message)
	assert.InDelta(t, 1.5, resp.Uptime, 1e-9)

	ts, err := time.Parse(time.RFC3339Nano, resp.Timestamp)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), ts, 5*time.Second)
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{3}Z$`, resp.Timestamp)
}

func TestReady(t *testing.T) {
	tests := []struct {
		name        string
		readyErr    error
		wantStatus  int
		wantMessage string
	}{
		{name: "database reachable", wantStatus: http.StatusOK, wantMessage: "Database is reachable"},
		{name: "database down", readyErr: errors.Join(service.ErrDatabaseNotReady, errors.New("dial tcp")), wantStatus: http.StatusServiceUnavailable, wantMessage: "Database is not reachable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := &stubAppInfoService{readyFn: func(context.Context) error { return tt.readyErr }}
			h := newTestHandler(&service.Services{AppInfoService: info})

			rec := httptest.NewRecorder()
			h.ready(rec, injectNopLogger(httptest.NewRequest(http.MethodGet, "/health/ready", nil)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			env := decodeEnvelope(t, rec)
			assert.Equal(t, tt.readyErr == nil, env.Success)
			assert.Equal(t, tt.wantMessage, env.Message)
		})
	}
}
