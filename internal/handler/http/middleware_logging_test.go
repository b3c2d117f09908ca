package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// injectLogger puts zerolog.Logger into request context the same way
// withTraceID middleware does (via zerolog/log.Ctx).
func injectLogger(r *http.Request, l zerolog.Logger) *http.Request {
	return r.WithContext(l.WithContext(r.Context()))
}

// ---- Table test ----

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name             string
		method           string
		path             string
		handlerStatus    int
		handlerResponse  string
		checkLogContains []string
	}{
		{
			name:            "GET 200",
			method:          http.MethodGet,
			path:            "/health",
			handlerStatus:   http.StatusOK,
			handlerResponse: "OK",
			checkLogContains: []string{
				`"level":"info"`,
				`"method":"GET"`,
				`"uri":"/health"`,
				`"status":200`,
				`"duration":`,
				`"size":2`,
				`"remote_ip":"192.0.2.1"`,
			},
		},
		{
			name:            "POST 404 logs a warning",
			method:          http.MethodPost,
			path:            "/api/unknown?x=1",
			handlerStatus:   http.StatusNotFound,
			handlerResponse: "missing",
			checkLogContains: []string{
				`"level":"warn"`,
				`"uri":"/api/unknown?x=1"`,
				`"status":404`,
				`"size":7`,
			},
		},
		{
			name:          "500 logs an error",
			method:        http.MethodDelete,
			path:          "/api/products/1",
			handlerStatus: http.StatusInternalServerError,
			checkLogContains: []string{
				`"level":"error"`,
				`"status":500`,
				`"size":0`,
			},
		},
		{
			name:   "handler writing nothing counts as 200",
			method: http.MethodGet,
			path:   "/",
			checkLogContains: []string{
				`"status":200`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := newTestHandler(nil)

			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				if tt.handlerStatus != 0 {
					w.WriteHeader(tt.handlerStatus)
				}
				if tt.handlerResponse != "" {
					_, _ = w.Write([]byte(tt.handlerResponse))
				}
			})

			req := injectLogger(httptest.NewRequest(tt.method, tt.path, nil), zerolog.New(&buf))
			rec := httptest.NewRecorder()

			h.withLogging(next).ServeHTTP(rec, req)

			for _, want := range tt.checkLogContains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}
