// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Every violated rule is reported; the returned error matches each of the
// corresponding sentinel errors with [errors.Is].
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if cfg.Storage.DB.DSN == "" {
		errs = append(errs, ErrMissingDatabaseURL)
	}

	if cfg.Auth.JWTSecret == "" {
		errs = append(errs, ErrMissingJWTSecret)
	}

	if cfg.Auth.JWTExpiresIn <= 0 {
		errs = append(errs, fmt.Errorf("%w: JWT_EXPIRES_IN must be positive", ErrInvalidAuthConfigs))
	}

	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("%w: port %d out of range", ErrInvalidServerConfigs, cfg.Server.Port))
	}

	if cfg.Server.MaxBodyBytes <= 0 {
		errs = append(errs, fmt.Errorf("%w: MAX_BODY_BYTES must be positive", ErrInvalidServerConfigs))
	}

	switch cfg.App.Environment {
	case EnvDevelopment, EnvProduction, EnvTest:
	default:
		errs = append(errs, fmt.Errorf("%w: unknown APP_ENV %q", ErrInvalidAppConfigs, cfg.App.Environment))
	}

	if cfg.RateLimit.APIRequests <= 0 || cfg.RateLimit.AuthRequests <= 0 || cfg.RateLimit.Window <= 0 {
		errs = append(errs, ErrInvalidRateLimitConfigs)
	}

	return errors.Join(errs...)
}
