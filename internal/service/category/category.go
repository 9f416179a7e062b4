package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/paysinc/paysinc/internal/models"
	"github.com/paysinc/paysinc/internal/repository"
)

type CategoryService struct {
	categoryRepo repository.CategoryRepo
}

func NewService(categoryRepo repository.CategoryRepo) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

func (s *CategoryService) Create(ctx context.Context, userID uuid.UUID, arg repository.CreateCategoryParams) (models.Category, error) {
	category, err := s.categoryRepo.Create(ctx, userID, arg)
	if err != nil {
		return category, fmt.Errorf("can't create category. Err: %w", err)
	}
	return category, nil
}

func (s *CategoryService) List(ctx context.Context, userID uuid.UUID) ([]models.Category, error) {
	return s.categoryRepo.List(ctx, userID)
}

func (s *CategoryService) Get(ctx context.Context, userID uuid.UUID, categoryID uuid.UUID) (models.Category, error) {
	return s.categoryRepo.Get(ctx, userID, categoryID)
}

func (s *CategoryService) Update(ctx context.Context, userID uuid.UUID, categoryID uuid.UUID, arg repository.CreateCategoryParams) (models.Category, error) {
	return s.categoryRepo.Update(ctx, userID, categoryID, arg)
}

func (s *CategoryService) Delete(ctx context.Context, userID uuid.UUID, categoryID uuid.UUID) (models.Category, error) {
	return s.categoryRepo.Delete(ctx, userID, categoryID)
}
