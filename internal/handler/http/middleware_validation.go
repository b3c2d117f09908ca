package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-shop-keeper/internal/validators"
)

// bodyRules converts a decoded JSON object into the validator type whose
// rule set applies to it.
type bodyRules func(body map[string]any) any

var (
	registerRules      bodyRules = func(body map[string]any) any { return validators.RegisterBody(body) }
	loginRules         bodyRules = func(body map[string]any) any { return validators.LoginBody(body) }
	createProductRules bodyRules = func(body map[string]any) any { return validators.CreateProductBody(body) }
	updateProductRules bodyRules = func(body map[string]any) any { return validators.UpdateProductBody(body) }
)

// validateBody reads the request body, checks it against rules and restores
// it for the next handler. Every violated field is reported in one 400
// response.
func (h *Handler) validateBody(rules bodyRules) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, body, err := readJSONObject(r)
			if err != nil {
				h.writeError(w, r, err)
				return
			}

			if err = h.validator.Validate(r.Context(), rules(body)); err != nil {
				h.writeError(w, r, err)
				return
			}

			r.Body = io.NopCloser(bytes.NewReader(raw))
			next.ServeHTTP(w, r)
		})
	}
}

// validateProductQuery checks the listing filters of GET /api/products.
func (h *Handler) validateProductQuery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := h.validator.Validate(r.Context(), validators.ProductQuery(r.URL.Query())); err != nil {
			h.writeError(w, r, err)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// readJSONObject reads the whole body and decodes it as a JSON object with
// numbers kept as json.Number. An empty body decodes to an empty object.
func readJSONObject(r *http.Request) ([]byte, map[string]any, error) {
	if r.Body == nil {
		return []byte("{}"), map[string]any{}, nil
	}

	raw, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return nil, nil, fmt.Errorf("%w: %w", ErrRequestBodyTooLarge, err)
		}
		return nil, nil, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return []byte("{}"), map[string]any{}, nil
	}

	var body map[string]any
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()
	if err = decoder.Decode(&body); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	if body == nil {
		return nil, nil, fmt.Errorf("%w: body is not an object", ErrInvalidJSON)
	}
	if decoder.More() {
		return nil, nil, fmt.Errorf("%w: trailing data after object", ErrInvalidJSON)
	}

	return raw, body, nil
}
