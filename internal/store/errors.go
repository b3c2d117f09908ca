package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when a user cannot be created because
	// another account already uses the same email.
	ErrEmailAlreadyExists = errors.New("user with this email already exists")

	// ErrUserNotFound is returned when a lookup by id or email matches no user.
	ErrUserNotFound = errors.New("user not found")

	// ErrProductNotFound is returned when a read, update or delete targets a
	// product id that does not exist.
	ErrProductNotFound = errors.New("product not found")

	// ErrPasswordNotHashed guards the users table against plaintext passwords.
	ErrPasswordNotHashed = errors.New("password must be hashed before it is stored")

	// ErrUnsupportedDSN is returned by [NewConnect] for a connection string
	// whose scheme names no supported database.
	ErrUnsupportedDSN = errors.New("unsupported database url")
)

// Constraint errors. The database error classifier maps driver-specific
// failures to these values so that callers stay driver agnostic.
var (
	// ErrUniqueViolation is returned when an INSERT or UPDATE collides with a
	// unique index.
	ErrUniqueViolation = errors.New("duplicate entry")

	// ErrForeignKeyViolation is returned when a row references a missing
	// parent row.
	ErrForeignKeyViolation = errors.New("foreign key constraint violation")

	// ErrCheckViolation is returned when a CHECK or NOT NULL constraint
	// rejects a value.
	ErrCheckViolation = errors.New("check constraint violation")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result set fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
