package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/MKhiriev/go-shop-keeper/internal/service"
	"github.com/MKhiriev/go-shop-keeper/internal/utils"
	"github.com/MKhiriev/go-shop-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeAuth(h *Handler, authHeader string, next http.Handler) *httptest.ResponseRecorder {
	req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/api/users/profile", nil))
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	rec := httptest.NewRecorder()
	h.auth(next).ServeHTTP(rec, req)
	return rec
}

func validTokenParser(_ context.Context, tokenString string) (models.Claims, error) {
	switch tokenString {
	case testToken:
		return models.Claims{UserID: testUserID, Email: "alice@example.com", Role: models.RoleUser}, nil
	case "expired.jwt.token":
		return models.Claims{}, service.ErrTokenIsExpired
	default:
		return models.Claims{}, service.ErrTokenIsInvalid
	}
}

// ---- Table test ----

func TestAuth_Middleware_TableTest(t *testing.T) {
	tests := []struct {
		name        string
		authHeader  string
		wantStatus  int
		wantMessage string
		wantNext    bool
	}{
		{
			name:        "missing header",
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Access token required",
		},
		{
			name:        "scheme without token",
			authHeader:  "Bearer",
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Access token required",
		},
		{
			name:        "scheme with empty token",
			authHeader:  "Bearer ",
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Access token required",
		},
		{
			name:        "tampered token",
			authHeader:  "Bearer tampered.jwt.token",
			wantStatus:  http.StatusForbidden,
			wantMessage: "Invalid or expired token",
		},
		{
			name:        "expired token",
			authHeader:  "Bearer expired.jwt.token",
			wantStatus:  http.StatusForbidden,
			wantMessage: "Invalid or expired token",
		},
		{
			name:       "valid token",
			authHeader: "Bearer " + testToken,
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHandlerWithAuth(&stubAuthService{parseTokenFn: validTokenParser})

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			rec := executeAuth(h, tt.authHeader, next)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantNext, nextCalled)
			if !tt.wantNext {
				env := decodeEnvelope(t, rec)
				assert.False(t, env.Success)
				assert.Equal(t, tt.wantMessage, env.Message)
			}
		})
	}
}

func TestAuth_ClaimsInContext(t *testing.T) {
	h := newHandlerWithAuth(&stubAuthService{parseTokenFn: validTokenParser})

	var claims models.Claims
	var ok bool
	next := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		claims, ok = utils.GetClaimsFromContext(r.Context())
	})

	executeAuth(h, "Bearer "+testToken, next)

	require.True(t, ok)
	assert.Equal(t, testUserID, claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, models.RoleUser, claims.Role)
}

func TestAuth_ConcurrentRequests(t *testing.T) {
	h := newHandlerWithAuth(&stubAuthService{parseTokenFn: validTokenParser})
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utils.GetUserIDFromContext(r.Context()); !ok {
			w.WriteHeader(http.StatusInternalServerError)
		}
	})

	var wg sync.WaitGroup
	codes := make([]int, 20)
	for i := range codes {
		wg.Go(func() {
			codes[i] = executeAuth(h, "Bearer "+testToken, next).Code
		})
	}
	wg.Wait()

	for _, code := range codes {
		assert.Equal(t, http.StatusOK, code)
	}
}
