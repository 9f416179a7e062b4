package apperrors

import (
	"errors"
)

var (
	ErrEmailTaken         = errors.New("email is already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Refresh token string is absent from the store: logged out or revoked
	ErrRefreshTokenRevoked = errors.New("refresh token revoked")

	// Token is present but its signature is invalid or it expired
	ErrTokenInvalid = errors.New("token invalid or expired")

	// No bearer token attached to the request at all
	ErrTokenMissing = errors.New("token not provided")

	ErrExpenseNotFound  = errors.New("expense not found")
	ErrFriendNotFound   = errors.New("friend not found")
	ErrGroupNotFound    = errors.New("group not found")
	ErrCategoryNotFound = errors.New("category not found")
)
