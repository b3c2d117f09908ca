package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearProbeEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"HEALTHCHECK_ADDRESS", "PORT", "HEALTHCHECK_TIMEOUT", "HEALTHCHECK_READY"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestGetProbeConfig(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		args    []string
		want    Probe
		wantURL string
	}{
		{
			name:    "defaults",
			want:    Probe{Port: 3000, Timeout: 3 * time.Second},
			wantURL: "http://localhost:3000",
		},
		{
			name:    "port from environment",
			env:     map[string]string{"PORT": "8080", "HEALTHCHECK_READY": "true"},
			want:    Probe{Port: 8080, Timeout: 3 * time.Second, Ready: true},
			wantURL: "http://localhost:8080",
		},
		{
			name:    "flags override environment",
			env:     map[string]string{"HEALTHCHECK_ADDRESS": "http://api:3000", "HEALTHCHECK_TIMEOUT": "10s"},
			args:    []string{"-a", "http://127.0.0.1:9000", "-t", "1s", "-ready"},
			want:    Probe{Address: "http://127.0.0.1:9000", Port: 3000, Timeout: time.Second, Ready: true},
			wantURL: "http://127.0.0.1:9000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearProbeEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := GetProbeConfig(tt.args)

			require.NoError(t, err)
			assert.Equal(t, tt.want, *cfg)
			assert.Equal(t, tt.wantURL, cfg.ServerURL())
		})
	}
}

func TestGetProbeConfig_Errors(t *testing.T) {
	t.Run("unknown flag", func(t *testing.T) {
		clearProbeEnv(t)

		_, err := GetProbeConfig([]string{"-nope"})

		assert.Error(t, err)
	})

	t.Run("bad timeout from environment", func(t *testing.T) {
		clearProbeEnv(t)
		t.Setenv("HEALTHCHECK_TIMEOUT", "soon")

		_, err := GetProbeConfig(nil)

		assert.Error(t, err)
	})

	t.Run("non-positive timeout", func(t *testing.T) {
		clearProbeEnv(t)
		t.Setenv("HEALTHCHECK_TIMEOUT", "0s")

		_, err := GetProbeConfig(nil)

		assert.ErrorIs(t, err, ErrInvalidProbeConfigs)
	})
}
