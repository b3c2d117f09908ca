package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-shop-keeper/internal/logger"
	"github.com/MKhiriev/go-shop-keeper/internal/service"
	"github.com/MKhiriev/go-shop-keeper/internal/store"
	"github.com/MKhiriev/go-shop-keeper/internal/utils"
	"github.com/MKhiriev/go-shop-keeper/internal/validators"
	"github.com/MKhiriev/go-shop-keeper/models"
)

type errorStatus struct {
	target  error
	status  int
	message string
}

// errorStatusTable is scanned top to bottom and the first match wins, so a
// domain error must precede the constraint error it may wrap.
var errorStatusTable = []errorStatus{
	{validators.ErrValidation, http.StatusBadRequest, msgValidationErrors},
	{ErrInvalidJSON, http.StatusBadRequest, msgInvalidJSON},
	{ErrRequestBodyTooLarge, http.StatusRequestEntityTooLarge, msgBodyTooLarge},

	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized, msgAccessTokenRequired},
	{utils.ErrInvalidAuthorizationHeader, http.StatusUnauthorized, msgAccessTokenRequired},
	{service.ErrTokenIsExpired, http.StatusForbidden, msgInvalidToken},
	{service.ErrTokenIsInvalid, http.StatusForbidden, msgInvalidToken},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, msgInvalidCredentials},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, msgInvalidData},
	{service.ErrDatabaseNotReady, http.StatusServiceUnavailable, msgServiceUnavailable},

	{store.ErrEmailAlreadyExists, http.StatusConflict, msgEmailTaken},
	{store.ErrUserNotFound, http.StatusNotFound, msgUserNotFound},
	{store.ErrProductNotFound, http.StatusNotFound, msgProductNotFound},

	{store.ErrUniqueViolation, http.StatusConflict, msgDuplicateEntry},
	{store.ErrForeignKeyViolation, http.StatusBadRequest, msgForeignKey},
	{store.ErrCheckViolation, http.StatusBadRequest, msgCheckViolation},
}

func statusFromError(err error) int {
	status, _, _ := lookupError(err)
	return status
}

func lookupError(err error) (int, string, bool) {
	for _, e := range errorStatusTable {
		if errors.Is(err, e.target) {
			return e.status, e.message, true
		}
	}
	return http.StatusInternalServerError, msgInternalServerError, false
}

// writeError logs err and writes the matching failure envelope. Unknown
// errors become 500; their text is exposed only outside production.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message, known := lookupError(err)
	if !known && !h.settings.Production {
		message = err.Error()
	}

	resp := models.Response{Success: false, Message: message}

	var validationErrs *validators.ValidationErrors
	if errors.As(err, &validationErrs) {
		resp.Errors = validationErrs.Fields
	}

	h.logFailure(r, status, err)
	h.writeJSON(w, r, resp, status)
}

// writeFailure writes a failure envelope with an explicit status and message.
// err, when not nil, is only logged.
func (h *Handler) writeFailure(w http.ResponseWriter, r *http.Request, status int, message string, err error) {
	h.logFailure(r, status, err)
	h.writeJSON(w, r, models.Response{Success: false, Message: message}, status)
}

func (h *Handler) logFailure(r *http.Request, status int, err error) {
	log := logger.FromRequest(r)

	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}

	event.Err(err).Int("status", status).Str("path", r.URL.Path).Msg("request failed")
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, resp any, status int) {
	if _, err := utils.WriteJSON(w, resp, status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.writeJSON").Msg("failed to write response")
	}
}

func countOf(n int) *int {
	return &n
}
