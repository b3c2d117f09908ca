package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-shop-keeper/internal/config"
	"github.com/MKhiriev/go-shop-keeper/internal/logger"
	"github.com/MKhiriev/go-shop-keeper/migrations"
)

// DB wraps the shared *sql.DB pool together with the dialect specific pieces
// repositories need: the squirrel statement builder (placeholder format) and
// the driver error classifier.
type DB struct {
	*sql.DB
	dialect            migrations.Dialect
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens the database named by cfg.DSN. postgres:// and
// postgresql:// URLs use the pgx driver; sqlite:// and file: use go-sqlite3.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch {
	case strings.HasPrefix(cfg.DSN, "postgres://"), strings.HasPrefix(cfg.DSN, "postgresql://"):
		return NewConnectPostgres(ctx, cfg, log)
	case strings.HasPrefix(cfg.DSN, "sqlite://"), strings.HasPrefix(cfg.DSN, "file:"):
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, ErrUnsupportedDSN
	}
}

// Dialect returns the migration dialect matching the connected database.
func (db *DB) Dialect() migrations.Dialect {
	return db.dialect
}

// Migrate applies the embedded schema migrations for the connected dialect.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, db.dialect)
}

// classify converts a driver error into one of the constraint sentinel
// errors, keeping the original error in the chain. Errors that are not
// constraint violations are returned unchanged.
func (db *DB) classify(err error) error {
	if err == nil || db.errorClassificator == nil {
		return err
	}

	switch db.errorClassificator.Classify(err) {
	case UniqueViolation:
		return fmt.Errorf("%w: %w", ErrUniqueViolation, err)
	case ForeignKeyViolation:
		return fmt.Errorf("%w: %w", ErrForeignKeyViolation, err)
	case CheckViolation:
		return fmt.Errorf("%w: %w", ErrCheckViolation, err)
	default:
		return err
	}
}

// isNoRows reports whether err signals an empty single-row result.
func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}
