package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID             uuid.UUID
	CreatedAt      time.Time
	Email          string
	Username       string
	HashedPassword string

	// Optional profile fields
	Phone     *string
	Birthdate *time.Time
	Gender    *string
	IDNumber  *string
}

// ProfileUpdate carries the partial profile change set.
// Nil fields are left untouched.
type ProfileUpdate struct {
	Email     *string
	Username  *string
	Phone     *string
	Birthdate *time.Time
	Gender    *string
	IDNumber  *string
}

func (u ProfileUpdate) Empty() bool {
	return u.Email == nil && u.Username == nil && u.Phone == nil &&
		u.Birthdate == nil && u.Gender == nil && u.IDNumber == nil
}
