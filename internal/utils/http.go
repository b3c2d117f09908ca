package utils

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
)

// WriteJSON serializes the given data to JSON and writes it to the HTTP response.
//
// It sets the "Content-Type" header to "application/json" and writes
// the provided HTTP status code before sending the response body.
//
// If marshaling fails, it responds with 500 and a fixed failure envelope
// instead, and returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, models.Response{Success: true}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	w.Header().Set("Content-Type", "application/json")

	jsonData, err := json.Marshal(data)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write(marshalFailureBody)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.WriteHeader(statusCode)
	return w.Write(jsonData)
}

var marshalFailureBody = []byte(`{"success":false,"message":"Internal server error"}`)

// ClientIP returns the host part of r.RemoteAddr. Forwarding headers are
// ignored; behind a trusted proxy RemoteAddr is rewritten beforehand by chi's
// middleware.RealIP.
func ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
