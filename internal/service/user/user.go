package user

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/paysinc/paysinc/internal/models"
	"github.com/paysinc/paysinc/internal/repository"
)

var ErrEmptyUpdate = errors.New("at least one profile field is required")

// UserService exposes the profile operations
type UserService struct {
	userRepo repository.UserRepo
}

func NewService(userRepo repository.UserRepo) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) GetProfile(ctx context.Context, userID uuid.UUID) (models.User, error) {
	return s.userRepo.GetUserByID(ctx, userID)
}

func (s *UserService) UpdateProfile(ctx context.Context, userID uuid.UUID, update models.ProfileUpdate) (models.User, error) {
	if update.Empty() {
		return models.User{}, ErrEmptyUpdate
	}

	return s.userRepo.UpdateProfile(ctx, userID, update)
}
