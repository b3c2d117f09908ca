package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification is the result type returned by [ErrorClassificator.Classify].
// It tells repositories which constraint, if any, a failed statement violated.
type ErrorClassification int

const (
	// Unclassified is the default for errors that are not constraint
	// violations.
	Unclassified ErrorClassification = iota

	// UniqueViolation marks a duplicate key on a unique index.
	UniqueViolation

	// ForeignKeyViolation marks a reference to a missing parent row.
	ForeignKeyViolation

	// CheckViolation marks a rejected CHECK or NOT NULL constraint.
	CheckViolation

	// Transient marks connection loss, deadlocks and similar conditions that
	// may succeed on a later attempt.
	Transient
)

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. It attempts to unwrap err as a
// *pgconn.PgError and delegates to [ClassifyPgError]. If err is nil or is not
// a PostgreSQL driver error, [Unclassified] is returned.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return Unclassified
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	return Unclassified
}

// ClassifyPgError maps a *pgconn.PgError to an [ErrorClassification] based on
// the PostgreSQL error code.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html for the
// full list of PostgreSQL error codes.
//
//   - 23505 unique_violation → [UniqueViolation]
//   - 23503 foreign_key_violation → [ForeignKeyViolation]
//   - 23514 check_violation, 23502 not_null_violation → [CheckViolation]
//   - Class 08, 40 and 57P03 → [Transient]
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch pgErr.Code {
	// Class 23: integrity constraint violations
	case pgerrcode.UniqueViolation:
		return UniqueViolation
	case pgerrcode.ForeignKeyViolation:
		return ForeignKeyViolation
	case pgerrcode.CheckViolation,
		pgerrcode.NotNullViolation:
		return CheckViolation

	// Class 08: connection exceptions
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure,
		// Class 40: transaction rollback
		pgerrcode.TransactionRollback,
		pgerrcode.SerializationFailure,
		pgerrcode.DeadlockDetected,
		// Class 57: operator intervention
		pgerrcode.CannotConnectNow:
		return Transient
	}

	return Unclassified
}
