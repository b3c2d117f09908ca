package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-shop-keeper/models"
)

// timestampLayout renders UTC timestamps with millisecond precision,
// e.g. 2026-01-02T15:04:05.000Z.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// health is the liveness probe. It never touches the database.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	info := h.services.AppInfoService

	h.writeJSON(w, r, models.HealthResponse{
		Success:   true,
		Message:   msgServerRunning,
		Timestamp: time.Now().UTC().Format(timestampLayout),
		Uptime:    info.Uptime().Seconds(),
	}, http.StatusOK)
}

// ready is the readiness probe: 200 when the database answers a ping, 503
// otherwise.
func (h *Handler) ready(w http.ResponseWriter, r *http.Request) {
	if err := h.services.AppInfoService.Ready(r.Context()); err != nil {
		h.writeFailure(w, r, http.StatusServiceUnavailable, msgDatabaseNotReachable, err)
		return
	}

	h.writeJSON(w, r, models.Response{Success: true, Message: msgDatabaseReachable}, http.StatusOK)
}
