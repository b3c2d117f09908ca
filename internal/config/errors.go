// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate]. Several of them
// may be reported at once, joined with [errors.Join].
var (
	// ErrMissingDatabaseURL indicates that DATABASE_URL (or -d) is not set.
	ErrMissingDatabaseURL = errors.New("DATABASE_URL is required")
	// ErrMissingJWTSecret indicates that JWT_SECRET is not set.
	ErrMissingJWTSecret = errors.New("JWT_SECRET is required")
	// ErrInvalidServerConfigs indicates an out-of-range port or body limit.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAppConfigs indicates an unknown APP_ENV value.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidAuthConfigs indicates a non-positive token lifetime.
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
	// ErrInvalidRateLimitConfigs indicates non-positive quotas or window.
	ErrInvalidRateLimitConfigs = errors.New("invalid rate limit configuration")
	// ErrInvalidProbeConfigs indicates a non-positive healthcheck timeout.
	ErrInvalidProbeConfigs = errors.New("invalid healthcheck configuration")
)
