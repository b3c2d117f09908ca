// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net"
	"strconv"
	"time"
)

// Known values of [App.Environment].
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"
)

// StructuredConfig is the top-level configuration container for the
// go-shop-keeper API server. It aggregates all sub-configurations and is
// populated by merging values from a .env file, environment variables,
// command-line flags, and an optional JSON file.
//
// Variable names are flat (DATABASE_URL, JWT_SECRET, PORT, ...) so that the
// server can be dropped into the usual PaaS environments unchanged.
type StructuredConfig struct {
	// App holds process-wide settings such as the runtime environment and
	// log level.
	App App

	// Auth holds token signing parameters.
	Auth Auth

	// Storage holds configuration for the relational database.
	Storage Storage

	// Server holds network, CORS and request limits for the HTTP server.
	Server Server

	// RateLimit holds the request quotas applied to the /api tree.
	RateLimit RateLimit

	// Workers holds configuration for background housekeeping workers.
	Workers Workers

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Environment is one of "development", "production" or "test".
	// Production hides internal error details from API responses and
	// enables HSTS.
	// Env: APP_ENV
	Environment string `env:"APP_ENV" envDefault:"development"`

	// LogLevel is the minimal zerolog level name (e.g. "debug", "info").
	// Env: LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL" envDefault:"debug"`
}

// IsProduction reports whether the server runs in production mode.
func (a App) IsProduction() bool {
	return a.Environment == EnvProduction
}

// Auth holds JWT issuing parameters.
type Auth struct {
	// JWTSecret is the HMAC key used to sign and verify access tokens.
	// Required.
	// Env: JWT_SECRET
	JWTSecret string `env:"JWT_SECRET"`

	// JWTExpiresIn is the lifetime of an issued token (e.g. "7d", "12h").
	// Env: JWT_EXPIRES_IN
	JWTExpiresIn Duration `env:"JWT_EXPIRES_IN" envDefault:"7d"`

	// JWTIssuer is the "iss" claim embedded in and required of every token.
	// Env: JWT_ISSUER
	JWTIssuer string `env:"JWT_ISSUER" envDefault:"go-shop-keeper"`
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the database connection string. postgres:// and postgresql://
	// URLs select PostgreSQL; sqlite:// or file: select SQLite.
	// Required.
	// Env: DATABASE_URL
	DSN string `env:"DATABASE_URL"`

	// MaxOpenConns bounds the connection pool.
	// Env: DB_MAX_OPEN_CONNS
	MaxOpenConns int `env:"DB_MAX_OPEN_CONNS" envDefault:"5"`

	// ConnMaxIdleTime releases idle pooled connections after this period.
	// Env: DB_CONN_MAX_IDLE_TIME
	ConnMaxIdleTime time.Duration `env:"DB_CONN_MAX_IDLE_TIME" envDefault:"10s"`
}

// Server holds network and request settings for the inbound HTTP layer.
type Server struct {
	// Host is the interface the HTTP server binds to.
	// Env: HOST
	Host string `env:"HOST" envDefault:"0.0.0.0"`

	// Port is the TCP port the HTTP server listens on.
	// Env: PORT
	Port int `env:"PORT" envDefault:"3000"`

	// CORSOrigins lists the origins allowed to call the API. "*" allows any.
	// Env: CORS_ORIGIN (comma separated)
	CORSOrigins []string `env:"CORS_ORIGIN" envDefault:"*" envSeparator:","`

	// RequestTimeout bounds reading a request and writing its response.
	// Env: REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`

	// MaxBodyBytes caps the size of a request body.
	// Env: MAX_BODY_BYTES
	MaxBodyBytes int64 `env:"MAX_BODY_BYTES" envDefault:"10485760"`
}

// HTTPAddress returns the listen address in "host:port" form.
func (s Server) HTTPAddress() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// RateLimit holds the request quotas. Each quota allows Requests requests per
// Window per client key.
type RateLimit struct {
	// APIRequests is the general quota for every /api route.
	// Env: RATE_LIMIT_API_REQUESTS
	APIRequests int `env:"RATE_LIMIT_API_REQUESTS" envDefault:"100"`

	// AuthRequests is the stricter quota for register and login.
	// Env: RATE_LIMIT_AUTH_REQUESTS
	AuthRequests int `env:"RATE_LIMIT_AUTH_REQUESTS" envDefault:"10"`

	// Window is the period over which quotas are counted.
	// Env: RATE_LIMIT_WINDOW
	Window time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"15m"`

	// RedisURL switches the limiter to a shared Redis backend when set
	// (e.g. "redis://localhost:6379/0").
	// Env: RATE_LIMIT_REDIS_URL
	RedisURL string `env:"RATE_LIMIT_REDIS_URL"`

	// TrustProxy takes the client address from True-Client-IP, X-Real-IP or
	// X-Forwarded-For. Enable it only when a reverse proxy sets those headers.
	// Env: RATE_LIMIT_TRUST_PROXY
	TrustProxy bool `env:"RATE_LIMIT_TRUST_PROXY"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// LimiterCleanupInterval is how often idle in-memory rate limiter
	// buckets are evicted.
	// Env: WORKERS_LIMITER_CLEANUP_INTERVAL
	LimiterCleanupInterval time.Duration `env:"WORKERS_LIMITER_CLEANUP_INTERVAL" envDefault:"1m"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. .env file (never overrides variables already set in the environment)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
