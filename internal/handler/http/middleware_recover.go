package http

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/go-shop-keeper/internal/logger"
	"github.com/MKhiriev/go-shop-keeper/models"
)

// withRecover turns a panic in a downstream handler into a 500 envelope.
// Outside production the envelope carries the panic value and the stack.
// http.ErrAbortHandler is re-raised so the server can abort the connection.
func (h *Handler) withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			if rvr == http.ErrAbortHandler {
				panic(rvr)
			}

			stack := debug.Stack()
			logger.FromRequest(r).Error().
				Any("panic", rvr).
				Str("stack", string(stack)).
				Msg("panic recovered")

			resp := models.Response{Success: false, Message: msgInternalServerError}
			if !h.settings.Production {
				resp.Message = fmt.Sprint(rvr)
				resp.Stack = string(stack)
			}
			h.writeJSON(w, r, resp, http.StatusInternalServerError)
		}()

		next.ServeHTTP(w, r)
	})
}
