package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

const unmatchedRoute = "unmatched"

// withMetrics records request count, latency and in-flight requests. Requests
// are labelled with the chi route pattern, never the raw path.
func (h *Handler) withMetrics(next http.Handler) http.Handler {
	if h.metrics == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		h.metrics.HTTPRequestsInFlight.Inc()
		defer h.metrics.HTTPRequestsInFlight.Dec()

		mw := newResponseWriter(w)
		next.ServeHTTP(mw, r)

		h.metrics.ObserveRequest(r.Method, routePattern(r), mw.Status(), time.Since(start))
	})
}

func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return unmatchedRoute
	}
	if pattern := rctx.RoutePattern(); pattern != "" {
		return pattern
	}
	return unmatchedRoute
}
