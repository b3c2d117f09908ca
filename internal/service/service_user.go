package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-shop-keeper/internal/logger"
	"github.com/MKhiriev/go-shop-keeper/internal/store"
	"github.com/MKhiriev/go-shop-keeper/internal/utils"
	"github.com/MKhiriev/go-shop-keeper/models"
)

type userService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// GetUser returns the user with the given id. Ids that are not UUIDs can never
// match and yield store.ErrUserNotFound without a database round trip.
func (s *userService) GetUser(ctx context.Context, id string) (models.User, error) {
	if !utils.IsUUID(id) {
		return models.User{}, store.ErrUserNotFound
	}

	user, err := s.userRepository.FindUserByID(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*userService.GetUser").Str("id", id).Msg("user lookup failed")
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	return user, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepository.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing users failed: %w", err)
	}

	return users, nil
}
