// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidJSON is returned when a request body is not a JSON object.
	ErrInvalidJSON = errors.New("invalid JSON")

	// ErrRequestBodyTooLarge is returned when a request body exceeds the
	// configured size cap.
	ErrRequestBodyTooLarge = errors.New("request body too large")
)

// Public messages written into the response envelope.
const (
	msgAccessTokenRequired  = "Access token required"
	msgInvalidToken         = "Invalid or expired token"
	msgInvalidCredentials   = "Invalid credentials"
	msgValidationErrors     = "Validation errors"
	msgInvalidJSON          = "Invalid JSON"
	msgBodyTooLarge         = "Request entity too large"
	msgEmailTaken           = "User with this email already exists"
	msgUserNotFound         = "User not found"
	msgProductNotFound      = "Product not found"
	msgDuplicateEntry       = "Duplicate entry"
	msgForeignKey           = "Foreign key constraint violation"
	msgCheckViolation       = "Validation error"
	msgInvalidData          = "Invalid data provided"
	msgServiceUnavailable   = "Service unavailable"
	msgInternalServerError  = "Internal server error"
	msgTooManyRequests      = "Too many requests, please try again later"
	msgNotOwnerUpdate       = "Not authorized to update this product"
	msgNotOwnerDelete       = "Not authorized to delete this product"
	msgUserCreated          = "User created successfully"
	msgLoginSuccessful      = "Login successful"
	msgProductCreated       = "Product created successfully"
	msgProductUpdated       = "Product updated successfully"
	msgProductDeleted       = "Product deleted successfully"
	msgServerRunning        = "Server is running"
	msgDatabaseReachable    = "Database is reachable"
	msgDatabaseNotReachable = "Database is not reachable"
)
