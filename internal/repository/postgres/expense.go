package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/paysinc/paysinc/internal/apperrors"
	"github.com/paysinc/paysinc/internal/models"
	"github.com/paysinc/paysinc/internal/repository"
)

type ExpenseRepo struct {
	DB DBTX
}

const createExpense = `-- name: CreateExpense
INSERT INTO expenses (id, user_id, group_id, paid_by_friend_id, description, amount, category, date, note)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id, user_id, group_id, paid_by_friend_id, description, amount, category, date, note, created_at, deleted_at
`

func (r *ExpenseRepo) Create(ctx context.Context, userID uuid.UUID, arg repository.ExpenseParams) (models.Expense, error) {
	rows, _ := r.DB.Query(ctx, createExpense,
		uuid.New(), userID, arg.GroupID, arg.PaidByFriendID,
		arg.Description, arg.Amount, arg.Category, arg.Date, arg.Note,
	)
	expense, err := pgx.CollectOneRow(rows, rowToExpense)
	if err != nil {
		return expense, fmt.Errorf("db error: %w", err)
	}
	return expense, nil
}

const listExpenses = `-- name: ListExpenses
SELECT id, user_id, group_id, paid_by_friend_id, description, amount, category, date, note, created_at, deleted_at
FROM expenses
WHERE user_id = $1 AND deleted_at IS NULL
ORDER BY created_at DESC
LIMIT $2 OFFSET $3
`

func (r *ExpenseRepo) List(ctx context.Context, userID uuid.UUID, limit int, offset int) ([]models.Expense, error) {
	rows, _ := r.DB.Query(ctx, listExpenses, userID, limit, offset)
	expenses, err := pgx.CollectRows(rows, rowToExpense)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return expenses, nil
}

const getExpense = `-- name: GetExpense
SELECT id, user_id, group_id, paid_by_friend_id, description, amount, category, date, note, created_at, deleted_at
FROM expenses
WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL
`

func (r *ExpenseRepo) Get(ctx context.Context, userID uuid.UUID, expenseID uuid.UUID) (models.Expense, error) {
	rows, _ := r.DB.Query(ctx, getExpense, expenseID, userID)
	expense, err := pgx.CollectOneRow(rows, rowToExpense)

	switch {
	case err == nil:
		return expense, nil
	case errors.Is(err, pgx.ErrNoRows):
		return expense, apperrors.ErrExpenseNotFound
	default:
		return expense, fmt.Errorf("db error: %w", err)
	}
}

const updateExpense = `-- name: UpdateExpense
UPDATE expenses
SET group_id = $3, paid_by_friend_id = $4, description = $5, amount = $6, category = $7, date = $8, note = $9
WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL
RETURNING id, user_id, group_id, paid_by_friend_id, description, amount, category, date, note, created_at, deleted_at
`

func (r *ExpenseRepo) Update(ctx context.Context, userID uuid.UUID, expenseID uuid.UUID, arg repository.ExpenseParams) (models.Expense, error) {
	rows, _ := r.DB.Query(ctx, updateExpense,
		expenseID, userID, arg.GroupID, arg.PaidByFriendID,
		arg.Description, arg.Amount, arg.Category, arg.Date, arg.Note,
	)
	expense, err := pgx.CollectOneRow(rows, rowToExpense)

	switch {
	case err == nil:
		return expense, nil
	case errors.Is(err, pgx.ErrNoRows):
		return expense, apperrors.ErrExpenseNotFound
	default:
		return expense, fmt.Errorf("db error: %w", err)
	}
}

const softDeleteExpense = `-- name: SoftDeleteExpense
UPDATE expenses
SET deleted_at = now()
WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL
RETURNING id
`

func (r *ExpenseRepo) SoftDelete(ctx context.Context, userID uuid.UUID, expenseID uuid.UUID) error {
	rows, _ := r.DB.Query(ctx, softDeleteExpense, expenseID, userID)
	_, err := pgx.CollectOneRow(rows, pgx.RowTo[uuid.UUID])

	switch {
	case err == nil:
		return nil
	case errors.Is(err, pgx.ErrNoRows):
		return apperrors.ErrExpenseNotFound
	default:
		return fmt.Errorf("db error: %w", err)
	}
}

const totalsByCategory = `-- name: TotalsByCategory
SELECT category, SUM(amount) AS total
FROM expenses
WHERE user_id = $1 AND deleted_at IS NULL
GROUP BY category
ORDER BY total DESC
`

func (r *ExpenseRepo) TotalsByCategory(ctx context.Context, userID uuid.UUID) ([]models.CategoryTotal, error) {
	rows, _ := r.DB.Query(ctx, totalsByCategory, userID)
	totals, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.CategoryTotal, error) {
		var t models.CategoryTotal
		err := row.Scan(&t.Category, &t.Total)
		return t, err
	})
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return totals, nil
}

const totalsByMonth = `-- name: TotalsByMonth
SELECT TO_CHAR(date, 'YYYY-MM') AS month, SUM(amount) AS total
FROM expenses
WHERE user_id = $1 AND deleted_at IS NULL
GROUP BY month
ORDER BY month ASC
`

func (r *ExpenseRepo) TotalsByMonth(ctx context.Context, userID uuid.UUID) ([]models.MonthTotal, error) {
	rows, _ := r.DB.Query(ctx, totalsByMonth, userID)
	totals, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.MonthTotal, error) {
		var t models.MonthTotal
		err := row.Scan(&t.Month, &t.Total)
		return t, err
	})
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return totals, nil
}

const totalsByFriend = `-- name: TotalsByFriend
SELECT f.id, f.name, COALESCE(SUM(e.amount), 0) AS total
FROM friends f
LEFT JOIN expenses e
    ON e.paid_by_friend_id = f.id
    AND e.user_id = $1
    AND e.deleted_at IS NULL
WHERE f.user_id = $1
GROUP BY f.id, f.name
ORDER BY total DESC
`

func (r *ExpenseRepo) TotalsByFriend(ctx context.Context, userID uuid.UUID) ([]models.FriendTotal, error) {
	rows, _ := r.DB.Query(ctx, totalsByFriend, userID)
	totals, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.FriendTotal, error) {
		var t models.FriendTotal
		err := row.Scan(&t.FriendID, &t.Name, &t.Total)
		return t, err
	})
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return totals, nil
}

func rowToExpense(row pgx.CollectableRow) (models.Expense, error) {
	var e models.Expense
	err := row.Scan(&e.ID, &e.UserID, &e.GroupID, &e.PaidByFriendID, &e.Description, &e.Amount, &e.Category, &e.Date, &e.Note, &e.CreatedAt, &e.DeletedAt)
	return e, err
}
