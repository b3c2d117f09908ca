package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/MKhiriev/go-shop-keeper/internal/logger"
	"github.com/MKhiriev/go-shop-keeper/internal/service"
	"github.com/MKhiriev/go-shop-keeper/internal/utils"
	"github.com/MKhiriev/go-shop-keeper/internal/validators"
	"github.com/MKhiriev/go-shop-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		h.writeError(w, r, ErrEmptyAuthorizationHeader)
		return
	}

	var req models.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	product, err := h.services.ProductService.CreateProduct(ctx, userID, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().Str("product_id", product.ID).Str("user_id", userID).Msg("product created")

	h.writeJSON(w, r, models.Response{
		Success: true,
		Message: msgProductCreated,
		Data:    product,
	}, http.StatusCreated)
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	filter, err := productFilterFromQuery(r.URL.Query())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	products, err := h.services.ProductService.ListProducts(r.Context(), filter)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, models.Response{
		Success: true,
		Count:   countOf(len(products)),
		Data:    products,
	}, http.StatusOK)
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.services.ProductService.GetProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, models.Response{Success: true, Data: product}, http.StatusOK)
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		h.writeError(w, r, ErrEmptyAuthorizationHeader)
		return
	}

	req, err := decodeUpdateProduct(r.Body)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	id := chi.URLParam(r, "id")
	product, err := h.services.ProductService.UpdateProduct(ctx, userID, id, req)
	if err != nil {
		if errors.Is(err, service.ErrNotProductOwner) {
			h.writeFailure(w, r, http.StatusForbidden, msgNotOwnerUpdate, err)
			return
		}
		h.writeError(w, r, err)
		return
	}

	log.Info().Str("product_id", id).Str("user_id", userID).Msg("product updated")

	h.writeJSON(w, r, models.Response{
		Success: true,
		Message: msgProductUpdated,
		Data:    product,
	}, http.StatusOK)
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		h.writeError(w, r, ErrEmptyAuthorizationHeader)
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.services.ProductService.DeleteProduct(ctx, userID, id); err != nil {
		if errors.Is(err, service.ErrNotProductOwner) {
			h.writeFailure(w, r, http.StatusForbidden, msgNotOwnerDelete, err)
			return
		}
		h.writeError(w, r, err)
		return
	}

	log.Info().Str("product_id", id).Str("user_id", userID).Msg("product deleted")

	h.writeJSON(w, r, models.Response{Success: true, Message: msgProductDeleted}, http.StatusOK)
}

// decodeUpdateProduct decodes a partial update. An explicit
// "description": null clears the description.
func decodeUpdateProduct(body io.Reader) (models.UpdateProductRequest, error) {
	raw, err := io.ReadAll(body)
	if err != nil {
		return models.UpdateProductRequest{}, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	var req models.UpdateProductRequest
	if err = json.NewDecoder(bytes.NewReader(raw)).Decode(&req); err != nil {
		return models.UpdateProductRequest{}, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	var fields map[string]json.RawMessage
	if err = json.Unmarshal(raw, &fields); err != nil {
		return models.UpdateProductRequest{}, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	if value, ok := fields[validators.FieldDescription]; ok && string(bytes.TrimSpace(value)) == "null" {
		req.ClearDescription = true
	}

	return req, nil
}

// productFilterFromQuery reads the listing filters. Empty parameters are
// treated as absent.
func productFilterFromQuery(query url.Values) (models.ProductFilter, error) {
	filter := models.ProductFilter{UserID: query.Get(validators.FieldUserID)}

	for _, p := range []struct {
		name string
		dst  **float64
	}{
		{validators.FieldMinPrice, &filter.MinPrice},
		{validators.FieldMaxPrice, &filter.MaxPrice},
	} {
		raw := query.Get(p.name)
		if raw == "" {
			continue
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return models.ProductFilter{}, &validators.ValidationErrors{Fields: []models.FieldError{
				{Field: p.name, Message: p.name + " " + validators.MsgNotANumber},
			}}
		}
		*p.dst = &value
	}

	return filter, nil
}
