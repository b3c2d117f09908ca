package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-shop-keeper/internal/logger"
	"github.com/MKhiriev/go-shop-keeper/internal/service"
	"github.com/MKhiriev/go-shop-keeper/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It extracts the bearer token from the "Authorization" header, verifies it
// via [service.AuthService.ParseToken] and, on success, stores the decoded
// claims in the request context with [utils.WithClaims].
//
// A missing or malformed header is rejected with 401 "Access token
// required". A token with a bad signature, a wrong issuer or an expired
// lifetime is rejected with 403 "Invalid or expired token".
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			h.writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		ctx := r.Context()
		claims, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			if errors.Is(err, service.ErrTokenIsExpired) {
				log.Debug().Msg("token expired")
			}
			h.writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithClaims(ctx, claims)))
	})
}
