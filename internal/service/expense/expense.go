package expense

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/paysinc/paysinc/internal/models"
	"github.com/paysinc/paysinc/internal/repository"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

type ExpenseService struct {
	expenseRepo repository.ExpenseRepo
}

func NewService(expenseRepo repository.ExpenseRepo) *ExpenseService {
	return &ExpenseService{expenseRepo: expenseRepo}
}

func (s *ExpenseService) Create(ctx context.Context, userID uuid.UUID, arg repository.ExpenseParams) (models.Expense, error) {
	expense, err := s.expenseRepo.Create(ctx, userID, arg)
	if err != nil {
		return expense, fmt.Errorf("can't create expense. Err: %w", err)
	}
	return expense, nil
}

// List returns one page of the user's non-deleted expenses, newest first.
// Page numbering starts from 1.
func (s *ExpenseService) List(ctx context.Context, userID uuid.UUID, page int, limit int) ([]models.Expense, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	return s.expenseRepo.List(ctx, userID, limit, (page-1)*limit)
}

func (s *ExpenseService) Get(ctx context.Context, userID uuid.UUID, expenseID uuid.UUID) (models.Expense, error) {
	return s.expenseRepo.Get(ctx, userID, expenseID)
}

func (s *ExpenseService) Update(ctx context.Context, userID uuid.UUID, expenseID uuid.UUID, arg repository.ExpenseParams) (models.Expense, error) {
	return s.expenseRepo.Update(ctx, userID, expenseID, arg)
}

func (s *ExpenseService) Delete(ctx context.Context, userID uuid.UUID, expenseID uuid.UUID) error {
	return s.expenseRepo.SoftDelete(ctx, userID, expenseID)
}

func (s *ExpenseService) StatsByCategory(ctx context.Context, userID uuid.UUID) ([]models.CategoryTotal, error) {
	return s.expenseRepo.TotalsByCategory(ctx, userID)
}

func (s *ExpenseService) StatsByMonth(ctx context.Context, userID uuid.UUID) ([]models.MonthTotal, error) {
	return s.expenseRepo.TotalsByMonth(ctx, userID)
}

func (s *ExpenseService) StatsByFriend(ctx context.Context, userID uuid.UUID) ([]models.FriendTotal, error) {
	return s.expenseRepo.TotalsByFriend(ctx, userID)
}
