// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func newMethodRouter(h *Handler) *chi.Mux {
	router := chi.NewRouter()
	router.Get("/items", okHandler)
	router.Post("/items/{id}", okHandler)
	router.NotFound(h.notFound)
	router.MethodNotAllowed(CheckHTTPMethod(h.notFound))
	return router
}

func TestCheckHTTPMethod_TableTest(t *testing.T) {
	tests := []struct {
		name        string
		method      string
		path        string
		wantStatus  int
		wantMessage string
	}{
		{name: "registered method", method: http.MethodGet, path: "/items", wantStatus: http.StatusOK},
		{name: "registered method with param", method: http.MethodPost, path: "/items/42", wantStatus: http.StatusOK},
		{name: "wrong method on known route", method: http.MethodDelete, path: "/items", wantStatus: http.StatusNotFound, wantMessage: "Route /items not found"},
		{name: "wrong method on param route", method: http.MethodGet, path: "/items/42", wantStatus: http.StatusNotFound, wantMessage: "Route /items/42 not found"},
		{name: "unknown route keeps query", method: http.MethodGet, path: "/nope?x=1", wantStatus: http.StatusNotFound, wantMessage: "Route /nope?x=1 not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(nil)
			router := newMethodRouter(h)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, injectNopLogger(httptest.NewRequest(tt.method, tt.path, nil)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusNotFound {
				env := decodeEnvelope(t, rec)
				assert.False(t, env.Success)
				assert.Equal(t, tt.wantMessage, env.Message)
			}
		})
	}
}
