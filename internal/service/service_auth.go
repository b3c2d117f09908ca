package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-shop-keeper/internal/config"
	"github.com/MKhiriev/go-shop-keeper/internal/logger"
	"github.com/MKhiriev/go-shop-keeper/internal/store"
	"github.com/MKhiriev/go-shop-keeper/internal/utils"
	"github.com/MKhiriev/go-shop-keeper/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// idGenerator assigns ids to new accounts.
	idGenerator IDGenerator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	now func() time.Time

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		idGenerator:    utils.NewUUIDGenerator(),
		tokenSignKey:   cfg.JWTSecret,
		tokenIssuer:    cfg.JWTIssuer,
		tokenDuration:  cfg.JWTExpiresIn.Std(),
		now:            utcNow,
		logger:         logger,
	}
}

// RegisterUser creates a new user account with the "user" role.
//
// The email is normalised (trimmed, lower-cased) and checked for uniqueness
// before the password is hashed with bcrypt. The unique index on email still
// guards against a concurrent registration slipping in between.
//
// Returns the persisted user or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - store.ErrEmailAlreadyExists if the email is taken.
//   - A wrapped storage or hashing error otherwise.
func (a *authService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	email := normalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		log.Error().Str("func", "*authService.RegisterUser").Str("email", email).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	_, err := a.userRepository.FindUserByEmail(ctx, email)
	switch {
	case err == nil:
		log.Debug().Str("func", "*authService.RegisterUser").Str("email", email).Msg("email already registered")
		return models.User{}, store.ErrEmailAlreadyExists
	case !errors.Is(err, store.ErrUserNotFound):
		log.Err(err).Str("func", "*authService.RegisterUser").Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Err(err).Str("func", "*authService.RegisterUser").Msg("password hashing failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrPasswordHashingFailed, err)
	}

	now := a.now()
	user := models.User{
		ID:           a.idGenerator.Generate(),
		Email:        email,
		PasswordHash: hash,
		Name:         strings.TrimSpace(req.Name),
		Role:         models.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return models.User{}, err
		}
		log.Err(err).Str("func", "*authService.RegisterUser").Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user by email and password.
//
// An unknown email and a wrong password both yield ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	email := normalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return models.User{}, ErrInvalidCredentials
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug().Str("func", "*authService.Login").Str("email", email).Msg("unknown email")
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Str("func", "*authService.Login").Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.CheckPassword(foundUser.PasswordHash, req.Password) {
		log.Debug().
			Str("func", "*authService.Login").
			Str("id", foundUser.ID).
			Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.CreateToken").Msg("error signing token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates a raw JWT string and returns its claims.
//
// An expired token yields ErrTokenIsExpired; every other failure (bad
// signature, wrong issuer, malformed) yields ErrTokenIsInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Claims, error) {
	claims, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*authService.ParseToken").Msg("token rejected")
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Claims{}, ErrTokenIsExpired
		}
		return models.Claims{}, ErrTokenIsInvalid
	}

	return claims, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func utcNow() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
