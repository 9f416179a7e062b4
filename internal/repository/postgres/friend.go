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

type FriendRepo struct {
	DB DBTX
}

const createFriend = `-- name: CreateFriend
INSERT INTO friends (id, user_id, name, email, gender)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, user_id, created_at, name, email, gender, is_online
`

func (r *FriendRepo) Create(ctx context.Context, userID uuid.UUID, arg repository.CreateFriendParams) (models.Friend, error) {
	rows, _ := r.DB.Query(ctx, createFriend, uuid.New(), userID, arg.Name, arg.Email, arg.Gender)
	friend, err := pgx.CollectOneRow(rows, rowToFriend)
	if err != nil {
		return friend, fmt.Errorf("db error: %w", err)
	}
	return friend, nil
}

const listFriendsWithBalance = `-- name: ListFriendsWithBalance
SELECT
    f.id, f.user_id, f.created_at, f.name, f.email, f.gender, f.is_online,
    COALESCE(SUM(e.amount), 0) AS balance,
    COUNT(e.id)                AS expenses_count
FROM friends f
LEFT JOIN expenses e
    ON e.paid_by_friend_id = f.id
    AND e.user_id = $1
    AND e.deleted_at IS NULL
WHERE f.user_id = $1
GROUP BY f.id
ORDER BY f.name ASC
`

func (r *FriendRepo) ListWithBalance(ctx context.Context, userID uuid.UUID) ([]models.FriendWithBalance, error) {
	rows, _ := r.DB.Query(ctx, listFriendsWithBalance, userID)
	friends, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.FriendWithBalance, error) {
		var f models.FriendWithBalance
		err := row.Scan(&f.ID, &f.UserID, &f.CreatedAt, &f.Name, &f.Email, &f.Gender, &f.IsOnline, &f.Balance, &f.ExpensesCount)
		return f, err
	})
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return friends, nil
}

const getFriend = `-- name: GetFriend
SELECT id, user_id, created_at, name, email, gender, is_online
FROM friends
WHERE id = $1 AND user_id = $2
`

func (r *FriendRepo) Get(ctx context.Context, userID uuid.UUID, friendID uuid.UUID) (models.Friend, error) {
	rows, _ := r.DB.Query(ctx, getFriend, friendID, userID)
	friend, err := pgx.CollectOneRow(rows, rowToFriend)

	switch {
	case err == nil:
		return friend, nil
	case errors.Is(err, pgx.ErrNoRows):
		return friend, apperrors.ErrFriendNotFound
	default:
		return friend, fmt.Errorf("db error: %w", err)
	}
}

const updateFriend = `-- name: UpdateFriend
UPDATE friends
SET name = $3, email = $4, gender = $5
WHERE id = $1 AND user_id = $2
RETURNING id, user_id, created_at, name, email, gender, is_online
`

func (r *FriendRepo) Update(ctx context.Context, userID uuid.UUID, friendID uuid.UUID, arg repository.CreateFriendParams) (models.Friend, error) {
	rows, _ := r.DB.Query(ctx, updateFriend, friendID, userID, arg.Name, arg.Email, arg.Gender)
	friend, err := pgx.CollectOneRow(rows, rowToFriend)

	switch {
	case err == nil:
		return friend, nil
	case errors.Is(err, pgx.ErrNoRows):
		return friend, apperrors.ErrFriendNotFound
	default:
		return friend, fmt.Errorf("db error: %w", err)
	}
}

const deleteFriend = `-- name: DeleteFriend
DELETE FROM friends
WHERE id = $1 AND user_id = $2
RETURNING id, user_id, created_at, name, email, gender, is_online
`

func (r *FriendRepo) Delete(ctx context.Context, userID uuid.UUID, friendID uuid.UUID) (models.Friend, error) {
	rows, _ := r.DB.Query(ctx, deleteFriend, friendID, userID)
	friend, err := pgx.CollectOneRow(rows, rowToFriend)

	switch {
	case err == nil:
		return friend, nil
	case errors.Is(err, pgx.ErrNoRows):
		return friend, apperrors.ErrFriendNotFound
	default:
		return friend, fmt.Errorf("db error: %w", err)
	}
}

func rowToFriend(row pgx.CollectableRow) (models.Friend, error) {
	var f models.Friend
	err := row.Scan(&f.ID, &f.UserID, &f.CreatedAt, &f.Name, &f.Email, &f.Gender, &f.IsOnline)
	return f, err
}
