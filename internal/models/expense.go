package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Expense struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	GroupID        *uuid.UUID
	PaidByFriendID *uuid.UUID
	Description    string
	Amount         decimal.Decimal
	Category       string
	Date           time.Time
	Note           *string
	CreatedAt      time.Time
	DeletedAt      *time.Time
}

// CategoryTotal is an aggregate of expenses grouped by category
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// MonthTotal is an aggregate of expenses grouped by month ("2006-01")
type MonthTotal struct {
	Month string
	Total decimal.Decimal
}

// FriendTotal is an aggregate of expenses grouped by the paying friend.
// Friends that never paid are included with a zero total.
type FriendTotal struct {
	FriendID uuid.UUID
	Name     string
	Total    decimal.Decimal
}
