package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/fasthr/hr-backend-go/internal/domain/auth"
	"github.com/fasthr/hr-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type sessionRepositoryImpl struct {
	db *database.DB
}

// NewSessionRepository creates a repository over personal_access_tokens.
func NewSessionRepository(db *database.DB) auth.SessionRepository {
	return &sessionRepositoryImpl{db: db}
}

func (s *sessionRepositoryImpl) Create(ctx context.Context, session auth.Session) error {
	q := GetQuerier(ctx, s.db)
	query := `
		INSERT INTO personal_access_tokens (user_id, token_id, name, ip_address, user_agent, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := q.Exec(ctx, query,
		session.UserID,
		session.TokenID,
		session.Name,
		session.IPAddress,
		session.UserAgent,
		session.ExpiresAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

func (s *sessionRepositoryImpl) GetByTokenID(ctx context.Context, tokenID string) (auth.Session, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT id, user_id, token_id::text, name, COALESCE(ip_address, ''), COALESCE(user_agent, ''),
			expires_at, last_used_at, revoked_at, created_at
		FROM personal_access_tokens
		WHERE token_id = $1
	`

	var session auth.Session
	err := q.QueryRow(ctx, query, tokenID).Scan(
		&session.ID,
		&session.UserID,
		&session.TokenID,
		&session.Name,
		&session.IPAddress,
		&session.UserAgent,
		&session.ExpiresAt,
		&session.LastUsedAt,
		&session.RevokedAt,
		&session.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.Session{}, auth.ErrInvalidToken
		}
		return auth.Session{}, fmt.Errorf("failed to get session: %w", err)
	}
	return session, nil
}

func (s *sessionRepositoryImpl) Touch(ctx context.Context, tokenID string) error {
	q := GetQuerier(ctx, s.db)

	_, err := q.Exec(ctx, `UPDATE personal_access_tokens SET last_used_at = NOW() WHERE token_id = $1`, tokenID)
	if err != nil {
		return fmt.Errorf("failed to touch session: %w", err)
	}
	return nil
}

func (s *sessionRepositoryImpl) Revoke(ctx context.Context, tokenID string) error {
	q := GetQuerier(ctx, s.db)

	query := `
		UPDATE personal_access_tokens
		SET revoked_at = NOW()
		WHERE token_id = $1 AND revoked_at IS NULL
	`
	_, err := q.Exec(ctx, query, tokenID)
	if err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	return nil
}
