package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-shop-keeper/internal/logger"
	"github.com/MKhiriev/go-shop-keeper/models"
)

type productRepository struct {
	logger *logger.Logger
	db     *DB
	now    func() time.Time
}

// NewProductRepository constructs a [ProductRepository] backed by db.
func NewProductRepository(db *DB, logger *logger.Logger) ProductRepository {
	logger.Debug().Msg("creating product repository")
	return &productRepository{
		db:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
	}
}

// CreateProduct inserts product as is. The returned product carries no owner
// summary.
//
// A missing owner maps to [ErrUserNotFound]; a rejected price or stock is
// wrapped with [ErrCheckViolation].
func (r *productRepository) CreateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertProductQuery(r.db.builder, product)
	if err != nil {
		return models.Product{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		err = r.db.classify(err)
		if errors.Is(err, ErrForeignKeyViolation) {
			return models.Product{}, ErrUserNotFound
		}

		log.Err(err).Str("func", "*productRepository.CreateProduct").Msg("error inserting product")
		return models.Product{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	product.User = nil
	return product, nil
}

// FindProductByID returns the product with its owner summary or
// [ErrProductNotFound].
func (r *productRepository) FindProductByID(ctx context.Context, id string) (models.Product, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectProductByIDQuery(r.db.builder, id)
	if err != nil {
		return models.Product{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	product, err := scanProduct(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if isNoRows(err) {
			return models.Product{}, ErrProductNotFound
		}
		log.Err(err).Str("func", "*productRepository.FindProductByID").Msg("error reading product")
		return models.Product{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return product, nil
}

// ListProducts returns the products matching filter, newest first.
func (r *productRepository) ListProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListProductsQuery(r.db.builder, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.ListProducts").Msg("failed to execute query for listing products")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	products := make([]models.Product, 0, 16)
	for rows.Next() {
		product, scanErr := scanProduct(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*productRepository.ListProducts").Msg("failed to scan product row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*productRepository.ListProducts").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return products, nil
}

// UpdateProduct applies the present fields of update and returns the fresh
// row including its owner summary.
func (r *productRepository) UpdateProduct(ctx context.Context, id string, update models.UpdateProductRequest) (models.Product, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateProductQuery(r.db.builder, id, update, r.now())
	if err != nil {
		return models.Product{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		err = r.db.classify(err)
		log.Err(err).Str("func", "*productRepository.UpdateProduct").Msg("error updating product")
		return models.Product{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = expectAffected(res); err != nil {
		return models.Product{}, err
	}

	return r.FindProductByID(ctx, id)
}

// DeleteProduct removes the product or returns [ErrProductNotFound].
func (r *productRepository) DeleteProduct(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteProductQuery(r.db.builder, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.DeleteProduct").Msg("error deleting product")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return expectAffected(res)
}

func expectAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrProductNotFound
	}

	return nil
}

func scanProduct(row rowScanner) (models.Product, error) {
	var (
		product     models.Product
		description sql.NullString
		ownerID     sql.NullString
		ownerName   sql.NullString
		ownerEmail  sql.NullString
	)

	err := row.Scan(
		&product.ID,
		&product.Name,
		&description,
		&product.Price,
		&product.Stock,
		&product.UserID,
		&product.CreatedAt,
		&product.UpdatedAt,
		&ownerID,
		&ownerName,
		&ownerEmail,
	)
	if err != nil {
		return models.Product{}, err
	}

	if description.Valid {
		product.Description = &description.String
	}
	if ownerID.Valid {
		product.User = &models.ProductOwner{
			ID:    ownerID.String,
			Name:  ownerName.String,
			Email: ownerEmail.String,
		}
	}

	return product, nil
}
