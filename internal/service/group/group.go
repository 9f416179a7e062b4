package group

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/paysinc/paysinc/internal/models"
	"github.com/paysinc/paysinc/internal/repository"
)

type GroupService struct {
	groupRepo repository.GroupRepo
}

func NewService(groupRepo repository.GroupRepo) *GroupService {
	return &GroupService{groupRepo: groupRepo}
}

func (s *GroupService) Create(ctx context.Context, userID uuid.UUID, arg repository.CreateGroupParams) (models.Group, error) {
	group, err := s.groupRepo.Create(ctx, userID, arg)
	if err != nil {
		return group, fmt.Errorf("can't create group. Err: %w", err)
	}
	return group, nil
}

func (s *GroupService) List(ctx context.Context, userID uuid.UUID) ([]models.Group, error) {
	return s.groupRepo.List(ctx, userID)
}

func (s *GroupService) Get(ctx context.Context, userID uuid.UUID, groupID uuid.UUID) (models.Group, error) {
	return s.groupRepo.Get(ctx, userID, groupID)
}

func (s *GroupService) Update(ctx context.Context, userID uuid.UUID, groupID uuid.UUID, arg repository.CreateGroupParams) (models.Group, error) {
	return s.groupRepo.Update(ctx, userID, groupID, arg)
}

func (s *GroupService) Delete(ctx context.Context, userID uuid.UUID, groupID uuid.UUID) (models.Group, error) {
	return s.groupRepo.Delete(ctx, userID, groupID)
}
