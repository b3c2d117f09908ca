package store

import (
	"context"

	"github.com/MKhiriev/go-shop-keeper/internal/config"
	"github.com/MKhiriev/go-shop-keeper/internal/logger"
)

// Storages bundles every repository the service layer depends on together
// with the connection they share.
type Storages struct {
	UserRepository    UserRepository
	ProductRepository ProductRepository

	// DB is exposed for readiness probes and shutdown.
	DB *DB
}

// NewStorages connects to the configured database, applies the schema
// migrations and builds the repositories on top of the connection.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return NewStoragesFromDB(db, log), nil
}

// NewStoragesFromDB builds the repositories on an already opened connection.
func NewStoragesFromDB(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		ProductRepository: NewProductRepository(db, log),
		DB:                db,
	}
}

// Close releases the underlying connection pool.
func (s *Storages) Close() error {
	if s.DB == nil {
		return nil
	}
	return s.DB.Close()
}
