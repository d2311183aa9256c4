package auth

import (
	"context"

	"comepouco/internal/entity"
)

// Identity is the authenticated caller attached to a request context.
type Identity struct {
	UserID uint
	Role   entity.Role
}

// HasRole reports whether the identity holds one of roles.
func (i Identity) HasRole(roles ...entity.Role) bool {
	for _, r := range roles {
		if i.Role == r {
			return true
		}
	}
	return false
}

type identityKey struct{}

// WithIdentity returns a copy of ctx carrying id.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFrom extracts the identity stored by WithIdentity.
func IdentityFrom(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}
