package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password so that callers cannot probe for registered accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrPasswordHashingFailed = errors.New("password hashing failed")

	ErrTokenCreationFailed = errors.New("token creation failed")
	ErrTokenIsExpired      = errors.New("token expired")
	ErrTokenIsInvalid      = errors.New("invalid token")

	// ErrNotProductOwner is returned when a caller tries to change a product
	// owned by someone else.
	ErrNotProductOwner = errors.New("not the product owner")

	ErrDatabaseNotReady = errors.New("database is not reachable")
)
