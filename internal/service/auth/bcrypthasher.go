package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// DefaultHasher is used when caller does not provide it's own
var DefaultHasher = BcryptHasher{Cost: 10}

// Bcrypt password hasher
// Compare is constant time, delegated to bcrypt itself
type BcryptHasher struct {
	Cost int
}

func (h BcryptHasher) Hash(password string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	return string(hash), err
}

func (h BcryptHasher) Compare(hashedPassword string, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}
