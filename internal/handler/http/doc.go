// Package http implements the REST transport of the go-shop-keeper API.
//
// It wires chi routes for users and products, decodes and validates request
// bodies, and translates service and store errors into the JSON response
// envelope. Authentication, rate limiting, request tracing, access logging,
// panic recovery and response compression run as middleware in this package
// before a request reaches the service layer.
package http
