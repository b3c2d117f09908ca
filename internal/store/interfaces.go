package store

import (
	"context"

	"github.com/MKhiriev/go-shop-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, id string) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
}

// ProductRepository persists products. Read methods populate the owner
// summary of each product.
type ProductRepository interface {
	CreateProduct(ctx context.Context, product models.Product) (models.Product, error)
	FindProductByID(ctx context.Context, id string) (models.Product, error)
	ListProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error)
	UpdateProduct(ctx context.Context, id string, update models.UpdateProductRequest) (models.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

// Pinger reports whether the underlying database is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// ErrorClassificator maps driver-specific errors to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
