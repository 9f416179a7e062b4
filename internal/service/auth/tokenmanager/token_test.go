package tokenmanager

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paysinc/paysinc/internal/models"
	"github.com/paysinc/paysinc/internal/repository/postgres"
	"github.com/paysinc/paysinc/internal/testutil"
)

func mustParseTime(value string) time.Time {
	dt, err := time.Parse("2006-01-02 15:04:05Z07:00", value)
	if err != nil {
		panic(err)
	}
	return dt
}

func Test_TokenManager(t *testing.T) {
	t.Parallel()

	pg := testutil.StartPostgresContainer(t)
	t.Cleanup(pg.Terminate)

	testUser := models.User{
		ID:             uuid.New(),
		CreatedAt:      mustParseTime("2024-01-01 19:00:01Z"),
		Email:          "testuser@example.com",
		Username:       "testuser",
		HashedPassword: "hashed_password",
	}

	withTx := func(dbpool *pgxpool.Pool, t *testing.T, accessTTL time.Duration, refreshTTL time.Duration, fn func(m *TokenManager)) {
		testutil.WithTx(dbpool, t, func(tx pgx.Tx) {
			cfg := Config{
				AccessSecret:  "test-access-secret",
				RefreshSecret: "test-refresh-secret",
				AccessTTL:     accessTTL,
				RefreshTTL:    refreshTTL,
			}
			refreshRepo := &postgres.RefreshTokenRepo{DB: tx}

			// User row is required for the refresh token fk
			_, err := tx.Exec(t.Context(),
				"INSERT INTO users (id, email, username, password_hash) VALUES ($1, $2, $3, $4)",
				testUser.ID, testUser.Email, testUser.Username, testUser.HashedPassword,
			)
			require.NoError(t, err)

			tokenManager, err := New(cfg, refreshRepo)
			require.NoError(t, err, "token manager should be created without errors")

			fn(tokenManager)
		})
	}

	t.Run("new defaults", func(t *testing.T) {
		m, err := New(Config{AccessSecret: "access", RefreshSecret: "refresh"}, nil)
		require.NoError(t, err, "token manager should be created without errors")

		require.Equal(t, "access", m.accessKey, "access secret should be set")
		require.Equal(t, "refresh", m.refreshKey, "refresh secret should be set")
		require.Equal(t, defaultAccessTokenTTL, m.accessTTL, "default access token TTL should be set")
		require.Equal(t, defaultRefreshTokenTTL, m.refreshTTL, "default refresh token TTL")
		require.Equal(t, defaultSigningMethod, m.alg.Alg(), "default signing method should be set")
	})

	t.Run("new fails on missing or shared secrets", func(t *testing.T) {
		_, err := New(Config{AccessSecret: "", RefreshSecret: "refresh"}, nil)
		require.Error(t, err, "empty access secret must be rejected")

		_, err = New(Config{AccessSecret: "access", RefreshSecret: ""}, nil)
		require.Error(t, err, "empty refresh secret must be rejected")

		_, err = New(Config{AccessSecret: "same", RefreshSecret: "same"}, nil)
		require.Error(t, err, "shared secret must be rejected")
	})

	t.Run("GeneratePair", func(t *testing.T) {
		t.Run("return token pair", func(t *testing.T) {
			withTx(pg.Pool, t, 15*time.Minute, 24*time.Hour,
				func(tokenManager *TokenManager) {
					pair, err := tokenManager.GeneratePair(t.Context(), testUser)

					require.NoError(t, err)

					assert.NotEmpty(t, pair.Access.Value, "access token should not be empty")
					assert.WithinDuration(t, time.Now().Add(15*time.Minute), pair.Access.ExpiresAt, time.Second)
					assert.NotEmpty(t, pair.Refresh.Value, "refresh token should not be empty")
					assert.WithinDuration(t, time.Now().Add(24*time.Hour), pair.Refresh.ExpiresAt, time.Second)
				},
			)
		})

		t.Run("access claims", func(t *testing.T) {
			withTx(pg.Pool, t, 15*time.Minute, 24*time.Hour,
				func(tokenManager *TokenManager) {
					pair, err := tokenManager.GeneratePair(t.Context(), testUser)
					require.NoError(t, err)

					// Parse and verify the access token
					token, err := jwt.ParseWithClaims(pair.Access.Value, &TokenClaims{}, func(token *jwt.Token) (any, error) {
						return []byte("test-access-secret"), nil
					})
					require.NoError(t, err)
					require.True(t, token.Valid, "access token should be valid")

					claims, ok := token.Claims.(*TokenClaims)
					require.True(t, ok, "claims should be of type TokenClaims")
					assert.Equal(t, testUser.ID, claims.UserID, "user ID in token should match")
					assert.Equal(t, testUser.Email, claims.Email, "email in token should match")
					assert.NotEmpty(t, claims.ID, "token has to has jti")
					assert.WithinDuration(t, time.Now(), claims.IssuedAt.Time, time.Second, "issued at should be close to now")
					assert.WithinDuration(t, time.Now().Add(15*time.Minute), claims.ExpiresAt.Time, time.Second, "expires at should be 15 minutes from now")

					assert.WithinDuration(t, pair.Access.ExpiresAt, claims.ExpiresAt.Time, 0, "access expires at should match token pair")
				},
			)
		})

		t.Run("tokens signed with distinct secrets", func(t *testing.T) {
			withTx(pg.Pool, t, 15*time.Minute, 24*time.Hour,
				func(tokenManager *TokenManager) {
					pair, err := tokenManager.GeneratePair(t.Context(), testUser)
					require.NoError(t, err)

					// Access secret must not verify the refresh token and vice versa
					_, err = tokenManager.ParseAccess(pair.Refresh.Value)
					require.Error(t, err, "refresh token must not pass access verification")

					_, err = tokenManager.ParseRefresh(pair.Access.Value)
					require.Error(t, err, "access token must not pass refresh verification")
				},
			)
		})

		t.Run("generate different tokens", func(t *testing.T) {
			withTx(pg.Pool, t, 15*time.Minute, 24*time.Hour,
				func(tokenManager *TokenManager) {
					pair1, err := tokenManager.GeneratePair(t.Context(), testUser)
					require.NoError(t, err)

					pair2, err := tokenManager.GeneratePair(t.Context(), testUser)
					require.NoError(t, err)

					assert.NotEqual(t, pair1.Refresh.Value, pair2.Refresh.Value, "refresh tokens should be different")
					assert.NotEqual(t, pair1.Access.Value, pair2.Access.Value, "access tokens should be different")
				},
			)
		})

		t.Run("persists refresh token row", func(t *testing.T) {
			withTx(pg.Pool, t, 15*time.Minute, 24*time.Hour,
				func(tokenManager *TokenManager) {
					pair, err := tokenManager.GeneratePair(t.Context(), testUser)
					require.NoError(t, err)

					stored, err := tokenManager.refreshRepo.Get(t.Context(), pair.Refresh.Value)
					require.NoError(t, err, "refresh token row should be persisted")
					require.Equal(t, testUser.ID, stored.UserID)
				},
			)
		})
	})

	t.Run("ParseAccess", func(t *testing.T) {
		t.Run("valid token", func(t *testing.T) {
			withTx(pg.Pool, t, 15*time.Minute, 24*time.Hour,
				func(tokenManager *TokenManager) {
					pair, err := tokenManager.GeneratePair(t.Context(), testUser)
					require.NoError(t, err, "token pair should be generated without errors")

					claims, err := tokenManager.ParseAccess(pair.Access.Value)
					require.NoError(t, err, "valid token should be parsed without errors")
					require.Equal(t, testUser.ID, claims.UserID)
					require.Equal(t, testUser.Email, claims.Email)
				},
			)
		})

		t.Run("not a token", func(t *testing.T) {
			withTx(pg.Pool, t, 15*time.Minute, 24*time.Hour,
				func(tokenManager *TokenManager) {
					_, err := tokenManager.ParseAccess("invalid token")
					require.Error(t, err, "parsing even not a token should return an error")
				},
			)
		})

		t.Run("expired token", func(t *testing.T) {
			withTx(pg.Pool, t, 1*time.Second, 24*time.Hour,
				func(tokenManager *TokenManager) {
					pair, err := tokenManager.GeneratePair(t.Context(), testUser)
					require.NoError(t, err)

					// Wait for the token to expire
					time.Sleep(time.Second)

					_, err = tokenManager.ParseAccess(pair.Access.Value)
					require.Error(t, err, "token has to become expired")
				},
			)
		})

		t.Run("not signed token", func(t *testing.T) {
			withTx(pg.Pool, t, 15*time.Minute, 24*time.Hour,
				func(tokenManager *TokenManager) {
					// Create valid but unsigned token
					token := jwt.NewWithClaims(
						jwt.SigningMethodNone,
						TokenClaims{
							RegisteredClaims: jwt.RegisteredClaims{
								ID:        uuid.NewString(),
								IssuedAt:  jwt.NewNumericDate(time.Now()),
								ExpiresAt: jwt.NewNumericDate(time.Now().Add(15 * time.Minute)),
							},
							UserID: testUser.ID,
							Email:  testUser.Email,
						},
					)
					access, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
					require.NoError(t, err)

					_, err = tokenManager.ParseAccess(access)
					require.Error(t, err, "Valid token with empty alg must fail")
				},
			)
		})
	})

	t.Run("ParseRefresh", func(t *testing.T) {
		t.Run("valid token", func(t *testing.T) {
			withTx(pg.Pool, t, 15*time.Minute, 24*time.Hour,
				func(tokenManager *TokenManager) {
					pair, err := tokenManager.GeneratePair(t.Context(), testUser)
					require.NoError(t, err)

					claims, err := tokenManager.ParseRefresh(pair.Refresh.Value)
					require.NoError(t, err)
					require.Equal(t, testUser.ID, claims.UserID)
				},
			)
		})

		t.Run("expired token", func(t *testing.T) {
			withTx(pg.Pool, t, 15*time.Minute, 1*time.Second,
				func(tokenManager *TokenManager) {
					pair, err := tokenManager.GeneratePair(t.Context(), testUser)
					require.NoError(t, err)

					time.Sleep(time.Second)

					_, err = tokenManager.ParseRefresh(pair.Refresh.Value)
					require.Error(t, err, "refresh token has to become expired")
				},
			)
		})
	})
}
