package auth

import (
	"context"

	"github.com/fasthr/hr-backend-go/internal/domain/user"
)

type AuthService interface {
	Register(ctx context.Context, req RegisterRequest, sessionReq SessionTrackingRequest) (AuthResponse, error)
	Login(ctx context.Context, req LoginRequest, sessionReq SessionTrackingRequest) (AuthResponse, error)
	Logout(ctx context.Context, principal Principal) error
	Me(ctx context.Context, principal Principal) (user.UserResponse, error)
	// Authenticate resolves a verified token's claims into a Principal, rejecting
	// revoked or unknown sessions and inactive users.
	Authenticate(ctx context.Context, userID int64, tokenID string) (Principal, error)
}
