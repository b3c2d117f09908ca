package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-shop-keeper/internal/logger"
	"github.com/MKhiriev/go-shop-keeper/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().Str("user_id", registeredUser.ID).Msg("user registered")

	h.writeJSON(w, r, models.Response{
		Success: true,
		Message: msgUserCreated,
		Data:    registeredUser.Response(),
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		h.writeError(w, r, err)
		return
	}

	log.Debug().Str("user_id", foundUser.ID).Msg("user successfully logged in")

	user := foundUser.Response()
	user.CreatedAt = nil

	h.writeJSON(w, r, models.Response{
		Success: true,
		Message: msgLoginSuccessful,
		Data: models.LoginResponse{
			Token: token.String(),
			User:  user,
		},
	}, http.StatusOK)
}
