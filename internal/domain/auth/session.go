package auth

import (
	"context"
	"time"
)

// Session is a personal access token row; the signed JWT carries its TokenID as `jti`.
type Session struct {
	ID         int64
	UserID     int64
	TokenID    string
	Name       string
	IPAddress  string
	UserAgent  string
	ExpiresAt  time.Time
	LastUsedAt *time.Time
	RevokedAt  *time.Time
	CreatedAt  time.Time
}

// IsUsable reports whether the session can still authenticate requests at now.
func (s Session) IsUsable(now time.Time) bool {
	return s.RevokedAt == nil && now.Before(s.ExpiresAt)
}

type SessionRepository interface {
	Create(ctx context.Context, session Session) error
	GetByTokenID(ctx context.Context, tokenID string) (Session, error)
	Touch(ctx context.Context, tokenID string) error
	Revoke(ctx context.Context, tokenID string) error
}

// SessionTrackingRequest carries client details recorded with a new session.
type SessionTrackingRequest struct {
	IPAddress string
	UserAgent string
}
