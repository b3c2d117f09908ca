package http

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/go-shop-keeper/internal/logger"
	"github.com/MKhiriev/go-shop-keeper/internal/ratelimit"
	"github.com/MKhiriev/go-shop-keeper/internal/utils"
)

const (
	headerRateLimitLimit     = "X-RateLimit-Limit"
	headerRateLimitRemaining = "X-RateLimit-Remaining"
	headerRateLimitReset     = "X-RateLimit-Reset"
)

// rateLimitKey derives the quota key of a request.
type rateLimitKey func(r *http.Request) string

func clientIPKey(r *http.Request) string {
	return "ip:" + utils.ClientIP(r)
}

// userKey keys authenticated requests by user id and falls back to the
// client IP.
func userKey(r *http.Request) string {
	if userID, ok := utils.GetUserIDFromContext(r.Context()); ok {
		return "user:" + userID
	}
	return clientIPKey(r)
}

// rateLimit counts each request against limiter under key(r). Rejected
// requests get 429 with a Retry-After header. When the limiter backend fails
// the request is let through.
func (h *Handler) rateLimit(name string, limiter ratelimit.Limiter, key rateLimitKey) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if limiter == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			res, err := limiter.Allow(r.Context(), key(r))
			if err != nil {
				logger.FromRequest(r).Err(err).Str("limiter", name).Msg("rate limiter unavailable, request allowed")
				next.ServeHTTP(w, r)
				return
			}

			header := w.Header()
			header.Set(headerRateLimitLimit, strconv.Itoa(res.Limit))
			header.Set(headerRateLimitRemaining, strconv.Itoa(res.Remaining))
			header.Set(headerRateLimitReset, strconv.FormatInt(res.ResetAt.Unix(), 10))

			if !res.Allowed {
				if h.metrics != nil {
					h.metrics.RateLimited(name)
				}
				header.Set("Retry-After", strconv.Itoa(retryAfter(res.ResetAt, time.Now())))
				h.writeFailure(w, r, http.StatusTooManyRequests, msgTooManyRequests, nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// retryAfter returns whole seconds until resetAt, at least one.
func retryAfter(resetAt, now time.Time) int {
	seconds := int(math.Ceil(resetAt.Sub(now).Seconds()))
	return max(seconds, 1)
}
