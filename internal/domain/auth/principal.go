package auth

import (
	"context"

	"github.com/fasthr/hr-backend-go/internal/domain/user"
)

// Principal is the authenticated caller of a request.
type Principal struct {
	UserID  int64
	Role    user.Role
	TokenID string
}

func (p Principal) Can(permission user.Permission) bool {
	return user.HasPermission(p.Role, permission)
}

// IsSelf reports whether id is the caller's own user id.
func (p Principal) IsSelf(id int64) bool {
	return p.UserID == id
}

type principalKey struct{}

func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext returns the caller placed in ctx by the auth middleware.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}
