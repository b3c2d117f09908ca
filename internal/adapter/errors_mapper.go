package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-shop-keeper/models"
	"github.com/go-resty/resty/v2"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:            ErrBadRequest,
	http.StatusUnauthorized:          ErrUnauthorized,
	http.StatusForbidden:             ErrForbidden,
	http.StatusNotFound:              ErrNotFound,
	http.StatusConflict:              ErrConflict,
	http.StatusRequestEntityTooLarge: ErrPayloadTooLarge,
	http.StatusTooManyRequests:       ErrTooManyRequests,
	http.StatusInternalServerError:   ErrInternalServerError,
	http.StatusServiceUnavailable:    ErrServiceUnavailable,
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	message := errorMessage(resp.Body())
	if message == "" {
		message = http.StatusText(resp.StatusCode())
	}

	if target, ok := statusErrors[resp.StatusCode()]; ok {
		return fmt.Errorf("%w: %s", target, message)
	}
	return fmt.Errorf("%w: http %d: %s", ErrUnexpectedResponse, resp.StatusCode(), message)
}

// errorMessage extracts the envelope message and any field errors from body.
// Bodies that are not an envelope are returned trimmed.
func errorMessage(body []byte) string {
	var env models.Response
	if err := json.Unmarshal(body, &env); err != nil || env.Message == "" {
		return strings.TrimSpace(string(body))
	}

	if len(env.Errors) == 0 {
		return env.Message
	}

	fields := make([]string, 0, len(env.Errors))
	for _, fe := range env.Errors {
		fields = append(fields, fe.Field+": "+fe.Message)
	}
	return env.Message + " (" + strings.Join(fields, "; ") + ")"
}
