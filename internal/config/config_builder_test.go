package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// validConfig returns a config that passes validate on its own.
func validConfig() *StructuredConfig {
	return &StructuredConfig{
		App:     App{Environment: EnvDevelopment},
		Auth:    Auth{JWTSecret: "secret", JWTExpiresIn: Duration(time.Hour)},
		Storage: Storage{DB: DB{DSN: "sqlite://:memory:"}},
		Server:  Server{Port: 3000, MaxBodyBytes: 1024},
		RateLimit: RateLimit{
			APIRequests:  100,
			AuthRequests: 10,
			Window:       time.Minute,
		},
	}
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that an empty config is rejected because
// the database URL and JWT secret are mandatory.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrMissingDatabaseURL)
	assert.ErrorIs(t, err, ErrMissingJWTSecret)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourcesOverride verifies that non-zero fields of later
// configs win while zero fields leave earlier values intact.
func TestBuild_LaterSourcesOverride(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		validConfig(),
		&StructuredConfig{Auth: Auth{JWTSecret: "override"}},
		&StructuredConfig{Server: Server{Host: "127.0.0.1"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "override", cfg.Auth.JWTSecret)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "sqlite://:memory:", cfg.Storage.DB.DSN)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{
		"DATABASE_URL": "postgres://localhost/shop",
		"JWT_SECRET":   "env-secret",
	})

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
	assert.Equal(t, "postgres://localhost/shop", b.configs[0].Storage.DB.DSN)
	assert.Equal(t, "env-secret", b.configs[0].Auth.JWTSecret)
}

// TestWithEnv_SetsErrorOnBadValue verifies that parse failures are recorded.
func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	setEnvVars(t, map[string]string{"DB_MAX_OPEN_CONNS": "many"})

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_AppendsConfig(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags([]string{"-d", "sqlite://shop.db"}))
	require.Len(t, b.configs, 1)
	assert.Equal(t, "sqlite://shop.db", b.configs[0].Storage.DB.DSN)
}

func TestWithFlags_SetsErrorOnBadFlag(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags([]string{"-a", "nope"})
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_NoOp_WhenNoPathSet verifies that withJSON does nothing when no
// config carries a JSON file path.
func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"auth": map[string]any{"jwt_secret": "json-secret"},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-secret", b.configs[1].Auth.JWTSecret)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})
	b.withJSON()

	assert.Error(t, b.err)
	assert.Len(t, b.configs, 1)
}

// TestWithJSON_UsesLastPath verifies that a path set by flags wins over one
// set through the environment.
func TestWithJSON_UsesLastPath(t *testing.T) {
	first := writeTempJSONConfig(t, map[string]any{"auth": map[string]any{"jwt_issuer": "first"}})
	second := writeTempJSONConfig(t, map[string]any{"auth": map[string]any{"jwt_issuer": "second"}})

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: first},
		&StructuredConfig{JSONFilePath: second},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "second", b.configs[2].Auth.JWTIssuer)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

func TestGetStructuredConfig_FullChain(t *testing.T) {
	jsonPath := writeTempJSONConfig(t, map[string]any{
		"server": map[string]any{"port": 9000},
	})
	setEnvVars(t, map[string]string{
		"DATABASE_URL": "postgres://localhost/shop",
		"JWT_SECRET":   "env-secret",
		"CONFIG":       jsonPath,
	})
	t.Setenv("ENV_FILE", "/does/not/exist.env")

	cfg, err := GetStructuredConfig([]string{"-jwt-secret", "flag-secret"})
	require.NoError(t, err)

	assert.Equal(t, "flag-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, "postgres://localhost/shop", cfg.Storage.DB.DSN)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 7*24*time.Hour, cfg.Auth.JWTExpiresIn.Std())
}

func TestGetStructuredConfig_MissingRequired(t *testing.T) {
	setEnvVars(t, map[string]string{})
	t.Setenv("ENV_FILE", "/does/not/exist.env")

	cfg, err := GetStructuredConfig(nil)
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrMissingDatabaseURL)
	assert.ErrorIs(t, err, ErrMissingJWTSecret)
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{name: "bad port", mutate: func(c *StructuredConfig) { c.Server.Port = 70000 }, wantErr: ErrInvalidServerConfigs},
		{name: "bad body limit", mutate: func(c *StructuredConfig) { c.Server.MaxBodyBytes = 0 }, wantErr: ErrInvalidServerConfigs},
		{name: "bad environment", mutate: func(c *StructuredConfig) { c.App.Environment = "staging" }, wantErr: ErrInvalidAppConfigs},
		{name: "zero token lifetime", mutate: func(c *StructuredConfig) { c.Auth.JWTExpiresIn = 0 }, wantErr: ErrInvalidAuthConfigs},
		{name: "zero window", mutate: func(c *StructuredConfig) { c.RateLimit.Window = 0 }, wantErr: ErrInvalidRateLimitConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
