package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/paysinc/paysinc/internal/handlers/identity"
	"github.com/paysinc/paysinc/internal/handlers/render"
)

// requestIdentity extracts the gate-attached identity.
// Missing identity on a protected route is a wiring bug, not a user error.
func requestIdentity(w http.ResponseWriter, r *http.Request) (identity.Identity, bool) {
	id, ok := identity.FromContext(r.Context())
	if !ok {
		render.ServiceError(w, "Internal service error", http.StatusInternalServerError)
	}
	return id, ok
}

// pathUUID parses the {id} path segment
func pathUUID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(r.PathValue("id"))
}
