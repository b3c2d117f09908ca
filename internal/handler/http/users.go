package http

import (
	"net/http"

	"github.com/MKhiriev/go-shop-keeper/internal/utils"
	"github.com/MKhiriev/go-shop-keeper/models"
)

// profile returns the account of the authenticated caller.
func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		h.writeError(w, r, ErrEmptyAuthorizationHeader)
		return
	}

	user, err := h.services.UserService.GetUser(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, models.Response{Success: true, Data: user.Response()}, http.StatusOK)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.ListUsers(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, models.Response{
		Success: true,
		Count:   countOf(len(users)),
		Data:    models.UserResponses(users),
	}, http.StatusOK)
}
