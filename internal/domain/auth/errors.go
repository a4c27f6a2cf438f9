package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountInactive    = errors.New("account is not active")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrSessionRevoked     = errors.New("session has been revoked")
	ErrUnauthenticated    = errors.New("authentication required")
	ErrTooManyAttempts    = errors.New("too many login attempts")
)
