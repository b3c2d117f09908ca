package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-shop-keeper/internal/logger"
	"github.com/MKhiriev/go-shop-keeper/internal/store"
	"github.com/MKhiriev/go-shop-keeper/internal/utils"
	"github.com/MKhiriev/go-shop-keeper/models"
)

// productService implements ProductService on top of a ProductRepository.
//
// Ownership is enforced here: update and delete load the product first and
// compare its owner to the caller. The check and the write are not atomic.
type productService struct {
	productRepository store.ProductRepository
	idGenerator       IDGenerator
	now               func() time.Time
	logger            *logger.Logger
}

func NewProductService(productRepository store.ProductRepository, logger *logger.Logger) ProductService {
	return &productService{
		productRepository: productRepository,
		idGenerator:       utils.NewUUIDGenerator(),
		now:               utcNow,
		logger:            logger,
	}
}

// CreateProduct stores a new product owned by userID. Stock defaults to zero.
func (s *productService) CreateProduct(ctx context.Context, userID string, req models.CreateProductRequest) (models.Product, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		log.Error().Str("func", "*productService.CreateProduct").Msg("no owner id given")
		return models.Product{}, ErrInvalidDataProvided
	}

	var stock int64
	if req.Stock != nil {
		stock = *req.Stock
	}

	now := s.now()
	product := models.Product{
		ID:          s.idGenerator.Generate(),
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Price:       req.Price,
		Stock:       stock,
		UserID:      userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.productRepository.CreateProduct(ctx, product)
	if err != nil {
		log.Err(err).Str("func", "*productService.CreateProduct").Msg("product creation failed")
		return models.Product{}, fmt.Errorf("product creation failed: %w", err)
	}

	return created, nil
}

func (s *productService) GetProduct(ctx context.Context, id string) (models.Product, error) {
	if !utils.IsUUID(id) {
		return models.Product{}, store.ErrProductNotFound
	}

	product, err := s.productRepository.FindProductByID(ctx, id)
	if err != nil {
		return models.Product{}, fmt.Errorf("product lookup failed: %w", err)
	}

	return product, nil
}

// ListProducts returns the products matching filter, newest first. A userId
// filter that is not a UUID matches nothing.
func (s *productService) ListProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	if filter.UserID != "" && !utils.IsUUID(filter.UserID) {
		return []models.Product{}, nil
	}

	products, err := s.productRepository.ListProducts(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*productService.ListProducts").Msg("listing products failed")
		return nil, fmt.Errorf("listing products failed: %w", err)
	}

	return products, nil
}

// UpdateProduct applies req to the product when userID owns it.
//
// Returns store.ErrProductNotFound, ErrNotProductOwner or
// ErrInvalidDataProvided for an update without fields.
func (s *productService) UpdateProduct(ctx context.Context, userID, id string, req models.UpdateProductRequest) (models.Product, error) {
	log := logger.FromContext(ctx)

	if req.Empty() {
		return models.Product{}, ErrInvalidDataProvided
	}

	if err := s.checkOwner(ctx, userID, id); err != nil {
		return models.Product{}, err
	}

	updated, err := s.productRepository.UpdateProduct(ctx, id, req)
	if err != nil {
		if !errors.Is(err, store.ErrProductNotFound) {
			log.Err(err).Str("func", "*productService.UpdateProduct").Str("id", id).Msg("product update failed")
		}
		return models.Product{}, fmt.Errorf("product update failed: %w", err)
	}

	return updated, nil
}

// DeleteProduct removes the product when userID owns it.
func (s *productService) DeleteProduct(ctx context.Context, userID, id string) error {
	log := logger.FromContext(ctx)

	if err := s.checkOwner(ctx, userID, id); err != nil {
		return err
	}

	if err := s.productRepository.DeleteProduct(ctx, id); err != nil {
		if !errors.Is(err, store.ErrProductNotFound) {
			log.Err(err).Str("func", "*productService.DeleteProduct").Str("id", id).Msg("product deletion failed")
		}
		return fmt.Errorf("product deletion failed: %w", err)
	}

	return nil
}

func (s *productService) checkOwner(ctx context.Context, userID, id string) error {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return err
	}

	if !product.OwnedBy(userID) {
		logger.FromContext(ctx).Warn().
			Str("func", "*productService.checkOwner").
			Str("product_id", id).
			Str("caller_id", userID).
			Msg("caller does not own product")
		return ErrNotProductOwner
	}

	return nil
}
