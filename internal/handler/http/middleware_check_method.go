// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-shop-keeper/internal/logger"
)

// CheckHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// Chi's default behaviour is to respond with HTTP 405 Method Not Allowed
// whenever a request path matches a registered route but the HTTP method
// is not handled. This function overrides that behaviour: the request is
// answered by notFound, so an unsupported method looks exactly like an
// unknown route to the caller.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(h.notFound))
func CheckHTTPMethod(notFound http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("method is not registered for route")

		notFound(w, r)
	}
}

// notFound answers unknown routes with a JSON 404 naming the requested path.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.writeFailure(w, r, http.StatusNotFound, fmt.Sprintf("Route %s not found", r.URL.RequestURI()), nil)
}
