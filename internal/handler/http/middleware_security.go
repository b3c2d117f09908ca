package http

import (
	"net/http"
	"strconv"
	"strings"
)

// withSecurityHeaders applies the usual hardening headers for a JSON API.
// HSTS is only sent in production.
func (h *Handler) withSecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := w.Header()
		header.Set("X-Content-Type-Options", "nosniff")
		header.Set("X-Frame-Options", "DENY")
		header.Set("X-XSS-Protection", "0")
		header.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		header.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")
		header.Set("Cross-Origin-Resource-Policy", "same-origin")
		header.Set("Cache-Control", "no-store")
		if h.settings.Production {
			header.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}

		next.ServeHTTP(w, r)
	})
}

var (
	corsAllowedMethods = strings.Join([]string{
		http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete,
	}, ",")
	corsExposedHeaders = strings.Join([]string{
		traceIDHeader, headerRateLimitLimit, headerRateLimitRemaining, headerRateLimitReset,
	}, ", ")
)

const corsMaxAge = 24 * 60 * 60

// withCORS answers cross-origin requests for the configured origins. A "*"
// entry allows any origin without credentials; an explicitly listed origin is
// echoed back with credentials allowed. Every OPTIONS request is treated as a
// preflight and ends here with 204.
func (h *Handler) withCORS(next http.Handler) http.Handler {
	allowAny := false
	allowed := make(map[string]struct{}, len(h.settings.CORSOrigins))
	for _, origin := range h.settings.CORSOrigins {
		origin = strings.TrimSpace(origin)
		if origin == "*" {
			allowAny = true
			continue
		}
		if origin != "" {
			allowed[strings.ToLower(strings.TrimSuffix(origin, "/"))] = struct{}{}
		}
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := w.Header()
		origin := r.Header.Get("Origin")

		if origin != "" {
			header.Add("Vary", "Origin")
			if _, ok := allowed[strings.ToLower(origin)]; ok {
				header.Set("Access-Control-Allow-Origin", origin)
				header.Set("Access-Control-Allow-Credentials", "true")
				header.Set("Access-Control-Expose-Headers", corsExposedHeaders)
			} else if allowAny {
				header.Set("Access-Control-Allow-Origin", "*")
				header.Set("Access-Control-Expose-Headers", corsExposedHeaders)
			}
		}

		if r.Method != http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		header.Set("Access-Control-Allow-Methods", corsAllowedMethods)
		if requested := r.Header.Get("Access-Control-Request-Headers"); requested != "" {
			header.Add("Vary", "Access-Control-Request-Headers")
			header.Set("Access-Control-Allow-Headers", requested)
		}
		header.Set("Access-Control-Max-Age", strconv.Itoa(corsMaxAge))
		w.WriteHeader(http.StatusNoContent)
	})
}

// withMaxBodySize rejects bodies whose declared length exceeds the cap and
// bounds the rest with [http.MaxBytesReader].
func (h *Handler) withMaxBodySize(next http.Handler) http.Handler {
	limit := h.settings.MaxBodyBytes
	if limit <= 0 {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.ContentLength > limit {
			h.writeError(w, r, ErrRequestBodyTooLarge)
			return
		}
		if r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, limit)
		}

		next.ServeHTTP(w, r)
	})
}
