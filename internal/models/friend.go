package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Friend struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	CreatedAt time.Time
	Name      string
	Email     *string
	Gender    *string
	IsOnline  bool
}

// FriendWithBalance is a friend row joined with the sum and count of
// expenses that friend paid for
type FriendWithBalance struct {
	Friend
	Balance       decimal.Decimal
	ExpensesCount int64
}
