// Package ratelimit provides per-key request quotas.
//
// Two backends implement [Limiter]: an in-process token bucket table built on
// golang.org/x/time/rate, and a fixed-window counter kept in Redis so that
// several server instances share one quota.
package ratelimit

import (
	"context"
	"time"
)

// Result describes the outcome of one [Limiter.Allow] call.
type Result struct {
	// Allowed is false once the key has exhausted its quota.
	Allowed bool

	// Limit is the configured number of requests per window.
	Limit int

	// Remaining is the number of requests left in the current window.
	Remaining int

	// ResetAt is when the quota is fully available again.
	ResetAt time.Time
}

// Limiter counts a request against key and reports whether it may proceed.
// A non-nil error means the backend could not be consulted; callers should
// let the request through.
type Limiter interface {
	Allow(ctx context.Context, key string) (Result, error)
}

// Quota is a number of requests per window.
type Quota struct {
	Requests int
	Window   time.Duration
}
