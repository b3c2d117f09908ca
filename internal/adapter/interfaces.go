// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a typed Go client for the go-shop-keeper REST API.
//
// The primary abstraction is [ServerAdapter]. The package ships an HTTP
// implementation ([NewHTTPServerAdapter]) built on resty. It unwraps the
// {success, message, data} envelope returned by every endpoint.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrConflict] for
// 409, [ErrUnauthorized] for 401). The server message is kept in the error
// text.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-shop-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with a go-shop-keeper server.
// Implementations are responsible for serialisation, bearer token
// management and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. Login calls it automatically.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Health calls GET /health and returns the decoded liveness report.
	Health(ctx context.Context) (models.HealthResponse, error)

	// Ready calls GET /health/ready. It returns nil when the server reports
	// its database as reachable.
	Ready(ctx context.Context) error

	// Register creates a new account and returns the public user record.
	// It does not log the user in.
	Register(ctx context.Context, req models.RegisterRequest) (models.UserResponse, error)

	// Login authenticates the user and stores the returned token via
	// SetToken.
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)

	// Profile returns the user the stored token belongs to.
	Profile(ctx context.Context) (models.UserResponse, error)

	// ListProducts returns the products matching filter.
	ListProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error)

	// CreateProduct creates a product owned by the authenticated user.
	CreateProduct(ctx context.Context, req models.CreateProductRequest) (models.Product, error)

	// GetProduct returns a single product with its owner summary.
	GetProduct(ctx context.Context, id string) (models.Product, error)

	// UpdateProduct applies a partial update. Only the owner may update.
	UpdateProduct(ctx context.Context, id string, req models.UpdateProductRequest) (models.Product, error)

	// DeleteProduct removes a product. Only the owner may delete.
	DeleteProduct(ctx context.Context, id string) error
}
