package identity

import (
	"context"

	"github.com/google/uuid"
)

// Identity is the immutable per-request identity derived from a verified
// access token. It lives for one request only and is never persisted.
type Identity struct {
	UserID uuid.UUID
	Email  string
}

type ctxKey string

const identityKey ctxKey = "identity"

// Create a new context carrying the identity
func NewContext(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// Extract the identity from the context
func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}
