package middleware

import (
	"context"
	"fmt"
	"testing"

	"io"
	"net/http"
	"net/http/httptest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/paysinc/paysinc/internal/apperrors"
	"github.com/paysinc/paysinc/internal/handlers/identity"
)

// Allow to use a function as auth service
type authFunc func(ctx context.Context, r *http.Request) (identity.Identity, error)

func (f authFunc) Authenticate(ctx context.Context, r *http.Request) (identity.Identity, error) {
	return f(ctx, r)
}

func TestAuthMiddleware(t *testing.T) {
	// Simple handler that try to get identity from context
	// If ok write it email to response
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Must always be true cause middleware has to set identity to context or write error to response
		id, ok := identity.FromContext(r.Context())
		require.True(t, ok)

		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte(id.Email))
		require.NoError(t, err, "should write email to response")
	})

	t.Run("auth ok", func(t *testing.T) {
		// Gate that always lets through
		middleware := AuthMiddleware(authFunc(func(ctx context.Context, r *http.Request) (identity.Identity, error) {
			return identity.Identity{UserID: uuid.New(), Email: "test@example.com"}, nil
		}))

		srv := httptest.NewServer(middleware(handler))
		defer srv.Close()

		resp, err := http.Get(srv.URL + "/test")
		require.NoError(t, err, "should make request to test server")
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err, "should read response body")
		defer resp.Body.Close() // nolint:errcheck

		require.Equalf(t, http.StatusOK, resp.StatusCode, "should return status OK. Resp: %s", string(body))
		require.Equal(t, "test@example.com", string(body), "should return email in response")
	})

	t.Run("missing token is unauthenticated", func(t *testing.T) {
		middleware := AuthMiddleware(authFunc(func(ctx context.Context, r *http.Request) (identity.Identity, error) {
			return identity.Identity{}, apperrors.ErrTokenMissing
		}))

		srv := httptest.NewServer(middleware(handler))
		defer srv.Close()

		resp, err := http.Get(srv.URL + "/test")
		require.NoError(t, err, "should make request to test server")
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err, "should read response body")
		defer resp.Body.Close() // nolint:errcheck

		require.Equalf(t, http.StatusUnauthorized, resp.StatusCode, "should return status Unauthorized. Resp: %s", string(body))
		require.JSONEq(t,
			`{
				"error": "service_error",
				"message": "Token not provided"
			}`,
			string(body),
		)
	})

	t.Run("invalid token is forbidden", func(t *testing.T) {
		middleware := AuthMiddleware(authFunc(func(ctx context.Context, r *http.Request) (identity.Identity, error) {
			return identity.Identity{}, fmt.Errorf("%w: signature mismatch", apperrors.ErrTokenInvalid)
		}))

		srv := httptest.NewServer(middleware(handler))
		defer srv.Close()

		resp, err := http.Get(srv.URL + "/test")
		require.NoError(t, err, "should make request to test server")
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err, "should read response body")
		defer resp.Body.Close() // nolint:errcheck

		require.Equalf(t, http.StatusForbidden, resp.StatusCode, "should return status Forbidden. Resp: %s", string(body))
		require.JSONEq(t,
			`{
				"error": "service_error",
				"message": "Invalid or expired token"
			}`,
			string(body),
		)
	})
}
