package models

// Response is the uniform JSON envelope wrapping every API response.
type Response struct {
	// Success is true for 2xx responses and false otherwise.
	Success bool `json:"success"`

	// Message is an optional human-readable summary.
	Message string `json:"message,omitempty"`

	// Data carries the payload of successful responses.
	Data any `json:"data,omitempty"`

	// Count is set on list responses and equals len(Data).
	Count *int `json:"count,omitempty"`

	// Errors lists every violated field of a failed validation.
	Errors []FieldError `json:"errors,omitempty"`

	// Stack is the captured stack trace of a recovered panic. Only populated
	// outside production.
	Stack string `json:"stack,omitempty"`
}

// FieldError describes a single field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Success   bool    `json:"success"`
	Message   string  `json:"message"`
	Timestamp string  `json:"timestamp"`
	Uptime    float64 `json:"uptime"`
}
