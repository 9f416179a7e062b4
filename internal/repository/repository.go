package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/paysinc/paysinc/internal/models"
)

// User repository interface
type UserRepo interface {
	// Create user
	// If user with email exists already has to return error apperrors.ErrEmailTaken
	CreateUser(ctx context.Context, email string, username string, hashedPassword string) (models.User, error)

	// Get user by it's id or email
	// If user not found must return apperrors.ErrUserNotFound
	GetUserByID(ctx context.Context, userID uuid.UUID) (models.User, error)
	GetUserByEmail(ctx context.Context, email string) (models.User, error)

	// Apply partial profile update, nil fields stay unchanged
	UpdateProfile(ctx context.Context, userID uuid.UUID, update models.ProfileUpdate) (models.User, error)
}

// RefreshToken repository interface
// Presence of a token string in the store is the sole authority for
// "is this refresh token still valid"
type RefreshTokenRepo interface {
	// Save token in repository
	Save(ctx context.Context, token models.RefreshToken) (models.RefreshToken, error)

	// Return the token if it exists in the store
	// If absent must return apperrors.ErrRefreshTokenRevoked
	Get(ctx context.Context, tokenString string) (models.RefreshToken, error)

	// Delete token by exact string match
	// Deleting a token that does not exist is not an error
	Delete(ctx context.Context, tokenString string) error

	// Delete tokens that expired before the given instant
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}

type CreateFriendParams struct {
	Name   string
	Email  *string
	Gender *string
}

type FriendRepo interface {
	Create(ctx context.Context, userID uuid.UUID, arg CreateFriendParams) (models.Friend, error)

	// List friends with the sum and count of expenses each friend paid for
	ListWithBalance(ctx context.Context, userID uuid.UUID) ([]models.FriendWithBalance, error)

	// Per-row operations must return apperrors.ErrFriendNotFound when the
	// row is absent or owned by another user
	Get(ctx context.Context, userID uuid.UUID, friendID uuid.UUID) (models.Friend, error)
	Update(ctx context.Context, userID uuid.UUID, friendID uuid.UUID, arg CreateFriendParams) (models.Friend, error)
	Delete(ctx context.Context, userID uuid.UUID, friendID uuid.UUID) (models.Friend, error)
}

type CreateGroupParams struct {
	Name        string
	Description *string
}

type GroupRepo interface {
	Create(ctx context.Context, userID uuid.UUID, arg CreateGroupParams) (models.Group, error)
	List(ctx context.Context, userID uuid.UUID) ([]models.Group, error)
	Get(ctx context.Context, userID uuid.UUID, groupID uuid.UUID) (models.Group, error)
	Update(ctx context.Context, userID uuid.UUID, groupID uuid.UUID, arg CreateGroupParams) (models.Group, error)
	Delete(ctx context.Context, userID uuid.UUID, groupID uuid.UUID) (models.Group, error)
}

type CreateCategoryParams struct {
	Name        string
	Description *string
}

type CategoryRepo interface {
	Create(ctx context.Context, userID uuid.UUID, arg CreateCategoryParams) (models.Category, error)
	List(ctx context.Context, userID uuid.UUID) ([]models.Category, error)
	Get(ctx context.Context, userID uuid.UUID, categoryID uuid.UUID) (models.Category, error)
	Update(ctx context.Context, userID uuid.UUID, categoryID uuid.UUID, arg CreateCategoryParams) (models.Category, error)
	Delete(ctx context.Context, userID uuid.UUID, categoryID uuid.UUID) (models.Category, error)
}

type ExpenseParams struct {
	GroupID        *uuid.UUID
	PaidByFriendID *uuid.UUID
	Description    string
	Amount         decimal.Decimal
	Category       string
	Date           time.Time
	Note           *string
}

type ExpenseRepo interface {
	Create(ctx context.Context, userID uuid.UUID, arg ExpenseParams) (models.Expense, error)

	// List non-deleted expenses, newest first
	List(ctx context.Context, userID uuid.UUID, limit int, offset int) ([]models.Expense, error)

	// Per-row operations must return apperrors.ErrExpenseNotFound when the
	// row is absent, soft-deleted or owned by another user
	Get(ctx context.Context, userID uuid.UUID, expenseID uuid.UUID) (models.Expense, error)
	Update(ctx context.Context, userID uuid.UUID, expenseID uuid.UUID, arg ExpenseParams) (models.Expense, error)
	SoftDelete(ctx context.Context, userID uuid.UUID, expenseID uuid.UUID) error

	// Aggregates exclude soft-deleted rows
	TotalsByCategory(ctx context.Context, userID uuid.UUID) ([]models.CategoryTotal, error)
	TotalsByMonth(ctx context.Context, userID uuid.UUID) ([]models.MonthTotal, error)
	TotalsByFriend(ctx context.Context, userID uuid.UUID) ([]models.FriendTotal, error)
}

// Storage bundles all repositories over one connection or transaction
type Storage interface {
	User() UserRepo
	Refresh() RefreshTokenRepo
	Friend() FriendRepo
	Group() GroupRepo
	Category() CategoryRepo
	Expense() ExpenseRepo

	// Run fn with all repositories bound to a single transaction
	InTx(ctx context.Context, fn func(Storage) error) error
}
