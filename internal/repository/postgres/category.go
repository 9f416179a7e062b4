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

type CategoryRepo struct {
	DB DBTX
}

const createCategory = `-- name: CreateCategory
INSERT INTO categories (id, user_id, name, description)
VALUES ($1, $2, $3, $4)
RETURNING id, user_id, created_at, name, description
`

func (r *CategoryRepo) Create(ctx context.Context, userID uuid.UUID, arg repository.CreateCategoryParams) (models.Category, error) {
	rows, _ := r.DB.Query(ctx, createCategory, uuid.New(), userID, arg.Name, arg.Description)
	category, err := pgx.CollectOneRow(rows, rowToCategory)
	if err != nil {
		return category, fmt.Errorf("db error: %w", err)
	}
	return category, nil
}

const listCategories = `-- name: ListCategories
SELECT id, user_id, created_at, name, description
FROM categories
WHERE user_id = $1
ORDER BY name ASC
`

func (r *CategoryRepo) List(ctx context.Context, userID uuid.UUID) ([]models.Category, error) {
	rows, _ := r.DB.Query(ctx, listCategories, userID)
	categories, err := pgx.CollectRows(rows, rowToCategory)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return categories, nil
}

const getCategory = `-- name: GetCategory
SELECT id, user_id, created_at, name, description
FROM categories
WHERE id = $1 AND user_id = $2
`

func (r *CategoryRepo) Get(ctx context.Context, userID uuid.UUID, categoryID uuid.UUID) (models.Category, error) {
	rows, _ := r.DB.Query(ctx, getCategory, categoryID, userID)
	category, err := pgx.CollectOneRow(rows, rowToCategory)

	switch {
	case err == nil:
		return category, nil
	case errors.Is(err, pgx.ErrNoRows):
		return category, apperrors.ErrCategoryNotFound
	default:
		return category, fmt.Errorf("db error: %w", err)
	}
}

const updateCategory = `-- name: UpdateCategory
UPDATE categories
SET name = $3, description = $4
WHERE id = $1 AND user_id = $2
RETURNING id, user_id, created_at, name, description
`

func (r *CategoryRepo) Update(ctx context.Context, userID uuid.UUID, categoryID uuid.UUID, arg repository.CreateCategoryParams) (models.Category, error) {
	rows, _ := r.DB.Query(ctx, updateCategory, categoryID, userID, arg.Name, arg.Description)
	category, err := pgx.CollectOneRow(rows, rowToCategory)

	switch {
	case err == nil:
		return category, nil
	case errors.Is(err, pgx.ErrNoRows):
		return category, apperrors.ErrCategoryNotFound
	default:
		return category, fmt.Errorf("db error: %w", err)
	}
}

const deleteCategory = `-- name: DeleteCategory
DELETE FROM categories
WHERE id = $1 AND user_id = $2
RETURNING id, user_id, created_at, name, description
`

func (r *CategoryRepo) Delete(ctx context.Context, userID uuid.UUID, categoryID uuid.UUID) (models.Category, error) {
	rows, _ := r.DB.Query(ctx, deleteCategory, categoryID, userID)
	category, err := pgx.CollectOneRow(rows, rowToCategory)

	switch {
	case err == nil:
		return category, nil
	case errors.Is(err, pgx.ErrNoRows):
		return category, apperrors.ErrCategoryNotFound
	default:
		return category, fmt.Errorf("db error: %w", err)
	}
}

func rowToCategory(row pgx.CollectableRow) (models.Category, error) {
	var c models.Category
	err := row.Scan(&c.ID, &c.UserID, &c.CreatedAt, &c.Name, &c.Description)
	return c, err
}
