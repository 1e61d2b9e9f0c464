package auth

import (
	"context"

	"github.com/dangerclosesec/traininghub/internal/model"
	"github.com/google/uuid"
)

// Principal is the authenticated caller decoded from a bearer token.
type Principal struct {
	UserID uuid.UUID
	Role   model.Role
}

// Owns reports whether the principal is the owner identified by userID.
func (p Principal) Owns(userID uuid.UUID) bool {
	return p.UserID == userID
}

type principalKey struct{}

// WithPrincipal returns a copy of ctx carrying p.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFrom returns the principal stored by the auth middleware.
func PrincipalFrom(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}
