package friend

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/paysinc/paysinc/internal/models"
	"github.com/paysinc/paysinc/internal/repository"
)

type FriendService struct {
	friendRepo repository.FriendRepo
}

func NewService(friendRepo repository.FriendRepo) *FriendService {
	return &FriendService{friendRepo: friendRepo}
}

func (s *FriendService) Create(ctx context.Context, userID uuid.UUID, arg repository.CreateFriendParams) (models.Friend, error) {
	friend, err := s.friendRepo.Create(ctx, userID, arg)
	if err != nil {
		return friend, fmt.Errorf("can't create friend. Err: %w", err)
	}
	return friend, nil
}

func (s *FriendService) List(ctx context.Context, userID uuid.UUID) ([]models.FriendWithBalance, error) {
	return s.friendRepo.ListWithBalance(ctx, userID)
}

func (s *FriendService) Get(ctx context.Context, userID uuid.UUID, friendID uuid.UUID) (models.Friend, error) {
	return s.friendRepo.Get(ctx, userID, friendID)
}

func (s *FriendService) Update(ctx context.Context, userID uuid.UUID, friendID uuid.UUID, arg repository.CreateFriendParams) (models.Friend, error) {
	return s.friendRepo.Update(ctx, userID, friendID, arg)
}

func (s *FriendService) Delete(ctx context.Context, userID uuid.UUID, friendID uuid.UUID) (models.Friend, error) {
	return s.friendRepo.Delete(ctx, userID, friendID)
}
