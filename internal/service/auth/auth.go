package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/paysinc/paysinc/internal/apperrors"
	"github.com/paysinc/paysinc/internal/handlers/identity"
	"github.com/paysinc/paysinc/internal/models"
	"github.com/paysinc/paysinc/internal/repository"
	"github.com/paysinc/paysinc/internal/service/auth/tokenmanager"
)

// Interface to create or compare user password hashes
type PasswordHasher interface {
	// Generate hash from password
	Hash(password string) (string, error)

	// Compare known hashedPassword and user provided password
	// Must be protected against timing attacks
	Compare(hashedPassword string, password string) error
}

type Config struct {
	// Hasher to use during registration or login
	// DefaultHasher is used when nil
	Hasher PasswordHasher
}

// AuthService orchestrates the session lifecycle:
// Anonymous -> Authenticated(access, refresh) -> Revoked
type AuthService struct {
	token       *tokenmanager.TokenManager
	hasher      PasswordHasher
	userRepo    repository.UserRepo
	refreshRepo repository.RefreshTokenRepo
}

func NewService(cfg Config, token *tokenmanager.TokenManager, userRepo repository.UserRepo, refreshRepo repository.RefreshTokenRepo) (*AuthService, error) {
	hasher := cfg.Hasher
	if hasher == nil {
		hasher = DefaultHasher
	}

	if token == nil {
		return nil, errors.New("token manager must not be nil")
	}
	if userRepo == nil || refreshRepo == nil {
		return nil, errors.New("repos must not be nil")
	}

	return &AuthService{
		token:       token,
		hasher:      hasher,
		userRepo:    userRepo,
		refreshRepo: refreshRepo,
	}, nil
}

// Register creates the user and opens its first session.
// Exactly one user row and one refresh token row are inserted.
func (s *AuthService) Register(ctx context.Context, email string, password string, username string) (models.User, models.TokenPair, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return models.User{}, models.TokenPair{}, fmt.Errorf("can't use this as password, error=%w", err)
	}

	user, err := s.userRepo.CreateUser(ctx, email, username, hash)
	if err != nil {
		return models.User{}, models.TokenPair{}, err
	}

	pair, err := s.token.GeneratePair(ctx, user)
	if err != nil {
		return models.User{}, models.TokenPair{}, fmt.Errorf("token could not be generated. Err: %w", err)
	}

	return user, pair, nil
}

// Bcrypt hash of a throwaway string, compared against on the unknown-email
// path so both login failures pay the same hashing cost
const loginDummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Login opens a new session. Each login persists a fresh refresh token row,
// concurrent sessions for one user accumulate.
// Unknown email and wrong password are indistinguishable for the caller,
// in both error shape and timing. Store failures surface as is.
func (s *AuthService) Login(ctx context.Context, email string, password string) (models.User, models.TokenPair, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if errors.Is(err, apperrors.ErrUserNotFound) {
		_ = s.hasher.Compare(loginDummyHash, password)
		return models.User{}, models.TokenPair{}, apperrors.ErrInvalidCredentials
	}
	if err != nil {
		return models.User{}, models.TokenPair{}, fmt.Errorf("can't get user by email. Err: %w", err)
	}

	if err := s.hasher.Compare(user.HashedPassword, password); err != nil {
		return models.User{}, models.TokenPair{}, apperrors.ErrInvalidCredentials
	}

	pair, err := s.token.GeneratePair(ctx, user)
	if err != nil {
		return models.User{}, models.TokenPair{}, fmt.Errorf("token could not be generated. Err: %w", err)
	}

	return user, pair, nil
}

// Refresh mints a new access token from a live refresh token.
// The store lookup runs first: a structurally valid token that is absent
// from the store was revoked. Then the signature is verified and the decoded
// user id is cross checked against the stored row's owner.
// The refresh token itself is not rotated.
func (s *AuthService) Refresh(ctx context.Context, refresh string) (models.IssuedToken, error) {
	stored, err := s.refreshRepo.Get(ctx, refresh)
	if err != nil {
		return models.IssuedToken{}, err
	}

	claims, err := s.token.ParseRefresh(refresh)
	if err != nil {
		return models.IssuedToken{}, err
	}

	if claims.UserID != stored.UserID {
		return models.IssuedToken{}, fmt.Errorf("%w: token owner mismatch", apperrors.ErrTokenInvalid)
	}

	access, err := s.token.IssueAccess(claims.UserID, claims.Email)
	if err != nil {
		return models.IssuedToken{}, fmt.Errorf("token could not be generated. Err: %w", err)
	}

	return access, nil
}

// Logout revokes the session by deleting the refresh token row.
// Idempotent: logging out an unknown token succeeds.
func (s *AuthService) Logout(ctx context.Context, refresh string) error {
	return s.refreshRepo.Delete(ctx, refresh)
}

// Authenticate gates a request: extracts the bearer access token and
// verifies it. Stateless, the credential store is not consulted, so claims
// stay valid until the token's natural expiry.
func (s *AuthService) Authenticate(ctx context.Context, r *http.Request) (identity.Identity, error) {
	value, err := bearerToken(r)
	if err != nil {
		return identity.Identity{}, err
	}

	claims, err := s.token.ParseAccess(value)
	if err != nil {
		return identity.Identity{}, err
	}

	return identity.Identity{UserID: claims.UserID, Email: claims.Email}, nil
}

func bearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", apperrors.ErrTokenMissing
	}

	scheme, value, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || value == "" {
		return "", fmt.Errorf("%w: malformed authorization header", apperrors.ErrTokenInvalid)
	}

	return value, nil
}
