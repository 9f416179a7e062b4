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

type GroupRepo struct {
	DB DBTX
}

const createGroup = `-- name: CreateGroup
INSERT INTO groups (id, user_id, name, description)
VALUES ($1, $2, $3, $4)
RETURNING id, user_id, created_at, name, description
`

func (r *GroupRepo) Create(ctx context.Context, userID uuid.UUID, arg repository.CreateGroupParams) (models.Group, error) {
	rows, _ := r.DB.Query(ctx, createGroup, uuid.New(), userID, arg.Name, arg.Description)
	group, err := pgx.CollectOneRow(rows, rowToGroup)
	if err != nil {
		return group, fmt.Errorf("db error: %w", err)
	}
	return group, nil
}

const listGroups = `-- name: ListGroups
SELECT id, user_id, created_at, name, description
FROM groups
WHERE user_id = $1
ORDER BY name ASC
`

func (r *GroupRepo) List(ctx context.Context, userID uuid.UUID) ([]models.Group, error) {
	rows, _ := r.DB.Query(ctx, listGroups, userID)
	groups, err := pgx.CollectRows(rows, rowToGroup)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return groups, nil
}

const getGroup = `-- name: GetGroup
SELECT id, user_id, created_at, name, description
FROM groups
WHERE id = $1 AND user_id = $2
`

func (r *GroupRepo) Get(ctx context.Context, userID uuid.UUID, groupID uuid.UUID) (models.Group, error) {
	rows, _ := r.DB.Query(ctx, getGroup, groupID, userID)
	group, err := pgx.CollectOneRow(rows, rowToGroup)

	switch {
	case err == nil:
		return group, nil
	case errors.Is(err, pgx.ErrNoRows):
		return group, apperrors.ErrGroupNotFound
	default:
		return group, fmt.Errorf("db error: %w", err)
	}
}

const updateGroup = `-- name: UpdateGroup
UPDATE groups
SET name = $3, description = $4
WHERE id = $1 AND user_id = $2
RETURNING id, user_id, created_at, name, description
`

func (r *GroupRepo) Update(ctx context.Context, userID uuid.UUID, groupID uuid.UUID, arg repository.CreateGroupParams) (models.Group, error) {
	rows, _ := r.DB.Query(ctx, updateGroup, groupID, userID, arg.Name, arg.Description)
	group, err := pgx.CollectOneRow(rows, rowToGroup)

	switch {
	case err == nil:
		return group, nil
	case errors.Is(err, pgx.ErrNoRows):
		return group, apperrors.ErrGroupNotFound
	default:
		return group, fmt.Errorf("db error: %w", err)
	}
}

const deleteGroup = `-- name: DeleteGroup
DELETE FROM groups
WHERE id = $1 AND user_id = $2
RETURNING id, user_id, created_at, name, description
`

func (r *GroupRepo) Delete(ctx context.Context, userID uuid.UUID, groupID uuid.UUID) (models.Group, error) {
	rows, _ := r.DB.Query(ctx, deleteGroup, groupID, userID)
	group, err := pgx.CollectOneRow(rows, rowToGroup)

	switch {
	case err == nil:
		return group, nil
	case errors.Is(err, pgx.ErrNoRows):
		return group, apperrors.ErrGroupNotFound
	default:
		return group, fmt.Errorf("db error: %w", err)
	}
}

func rowToGroup(row pgx.CollectableRow) (models.Group, error) {
	var g models.Group
	err := row.Scan(&g.ID, &g.UserID, &g.CreatedAt, &g.Name, &g.Description)
	return g, err
}
