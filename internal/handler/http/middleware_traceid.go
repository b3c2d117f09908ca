package http

import (
	"net/http"

	"github.com/google/uuid"
)

const (
	traceIDHeader    = "X-Trace-ID"
	maxTraceIDLength = 64
)

// withTraceID attaches a request-scoped child logger carrying trace_id to the
// request context and echoes the id in the response. A well-formed incoming
// X-Trace-ID is reused; otherwise a new UUID is issued.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if !validTraceID(traceID) {
			traceID = uuid.NewString()
		}
		r = r.WithContext(h.logger.WithTraceID(r.Context(), traceID))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}

// validTraceID accepts 1..64 characters of [A-Za-z0-9._-].
func validTraceID(id string) bool {
	if id == "" || len(id) > maxTraceIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		c := id[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '-', c == '_', c == '.':
		default:
			return false
		}
	}
	return true
}
