package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-shop-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService registers accounts, checks credentials and issues and verifies
// access tokens.
type AuthService interface {
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Claims, error)
}

// UserService exposes read access to user accounts.
type UserService interface {
	GetUser(ctx context.Context, id string) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
}

// ProductService implements product CRUD. Mutations take the caller id and
// are refused unless the caller owns the product.
type ProductService interface {
	CreateProduct(ctx context.Context, userID string, req models.CreateProductRequest) (models.Product, error)
	GetProduct(ctx context.Context, id string) (models.Product, error)
	ListProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error)
	UpdateProduct(ctx context.Context, userID, id string, req models.UpdateProductRequest) (models.Product, error)
	DeleteProduct(ctx context.Context, userID, id string) error
}

// AppInfoService reports process uptime and readiness.
type AppInfoService interface {
	StartedAt() time.Time
	Uptime() time.Duration
	Ready(ctx context.Context) error
}

// IDGenerator issues identifiers for new rows.
type IDGenerator interface {
	Generate() string
}
