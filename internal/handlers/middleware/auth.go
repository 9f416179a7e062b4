package middleware

import (
	"context"
	"net/http"

	"github.com/paysinc/paysinc/internal/handlers/identity"
	"github.com/paysinc/paysinc/internal/handlers/render"
)

type authService interface {
	Authenticate(ctx context.Context, r *http.Request) (identity.Identity, error)
}

// AuthMiddleware is the gate in front of all protected routes.
// Absent token is unauthenticated (401), a present but invalid or expired
// token is forbidden (403). On success the identity claims are attached to
// the request context for downstream handlers.
func AuthMiddleware(as authService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := as.Authenticate(r.Context(), r)
			if err != nil {
				render.DomainError(w, err)
				return
			}
			ctx := identity.NewContext(r.Context(), id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
