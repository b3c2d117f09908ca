// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used throughout the
// go-shop-keeper server.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Application code should pass *Logger by pointer and obtain request-scoped
// loggers via FromContext or FromRequest.
package logger

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// TraceIDField is the field name carrying the request trace id.
const TraceIDField = "trace_id"

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a JSON *Logger writing to os.Stdout for the given role
// label (e.g. "go-shop-server", "healthcheck"). See [New].
func NewLogger(role string) *Logger {
	return New(role, os.Stdout)
}

// New constructs a JSON *Logger writing to w.
//
// The logger is configured with:
//   - global log level set to Debug until [SetLevel] is called;
//   - a "role" field set to role;
//   - a "time" timestamp field added to every log entry;
//   - a "func" caller field that records the fully-qualified function name
//     instead of the default file:line format.
//
// The logger also becomes the fallback of [FromContext] for contexts that
// carry no request-scoped logger.
func New(role string, w io.Writer) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	l := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()
	zerolog.DefaultContextLogger = &l

	return &Logger{l}
}

// SetLevel sets the global minimal level from its name ("trace", "debug",
// "info", "warn", "error"). An empty name keeps the current level.
func SetLevel(name string) error {
	name = strings.TrimSpace(strings.ToLower(name))
	if name == "" {
		return nil
	}

	level, err := zerolog.ParseLevel(name)
	if err != nil {
		return fmt.Errorf("unknown log level %q: %w", name, err)
	}

	zerolog.SetGlobalLevel(level)
	return nil
}

// Nop returns a *Logger that discards all log output.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver. The child logger can be enriched with additional context fields
// without affecting the parent logger.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// WithTraceID returns a copy of ctx carrying a child of l tagged with
// traceID. Loggers obtained from the returned context via [FromContext]
// include the trace_id field.
func (l *Logger) WithTraceID(ctx context.Context, traceID string) context.Context {
	child := l.With().Str(TraceIDField, traceID).Logger()
	return child.WithContext(ctx)
}

// FromRequest returns the request-scoped logger attached by the HTTP
// middleware chain.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext extracts the zerolog.Logger stored in ctx and returns it as a
// *Logger.
//
// If no logger has been attached to ctx, the logger built by the last [New]
// call is returned, or a disabled logger if there is none. It never returns
// nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
