package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/fasthr/hr-backend-go/internal/domain/auth"
	"github.com/fasthr/hr-backend-go/internal/domain/user"
	"github.com/fasthr/hr-backend-go/internal/pkg/jwt"
	"github.com/fasthr/hr-backend-go/internal/repository/postgresql"
	userservice "github.com/fasthr/hr-backend-go/internal/service/user"
	"golang.org/x/crypto/bcrypt"
)

const sessionName = "api"

type AuthServiceImpl struct {
	tx          postgresql.Transactor
	userRepo    user.UserRepository
	sessionRepo auth.SessionRepository
	userService userservice.UserService
	jwtService  jwt.Service
	now         func() time.Time
}

func NewAuthService(
	tx postgresql.Transactor,
	userRepo user.UserRepository,
	sessionRepo auth.SessionRepository,
	userService userservice.UserService,
	jwtService jwt.Service,
) auth.AuthService {
	return &AuthServiceImpl{
		tx:          tx,
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		userService: userService,
		jwtService:  jwtService,
		now:         time.Now,
	}
}

// Register implements auth.AuthService.
func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest, sessionReq auth.SessionTrackingRequest) (auth.AuthResponse, error) {
	var response auth.AuthResponse

	err := a.tx.WithinTx(ctx, func(txCtx context.Context) error {
		created, err := a.userService.Create(txCtx, req)
		if err != nil {
			return err
		}

		token, err := a.issueToken(txCtx, created.ID, created.Role, sessionReq)
		if err != nil {
			return err
		}

		// Auth payloads carry the bare user without relations.
		created.Position = nil
		response = auth.AuthResponse{User: created, Token: token}
		return nil
	})
	if err != nil {
		return auth.AuthResponse{}, err
	}

	return response, nil
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest, sessionReq auth.SessionTrackingRequest) (auth.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.AuthResponse{}, err
	}

	userData, err := a.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.AuthResponse{}, auth.ErrInvalidCredentials
		}
		return auth.AuthResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.AuthResponse{}, auth.ErrInvalidCredentials
	}

	// Status is only checked once the password matches.
	if !userData.IsActive() {
		return auth.AuthResponse{}, auth.ErrAccountInactive
	}

	token, err := a.issueToken(ctx, userData.ID, userData.Role, sessionReq)
	if err != nil {
		return auth.AuthResponse{}, err
	}

	userResponse := user.ToResponse(userData)
	userResponse.Position = nil
	return auth.AuthResponse{User: userResponse, Token: token}, nil
}

// Logout implements auth.AuthService. Only the session behind the current token is revoked.
func (a *AuthServiceImpl) Logout(ctx context.Context, principal auth.Principal) error {
	if principal.TokenID == "" {
		return auth.ErrUnauthenticated
	}
	return a.sessionRepo.Revoke(ctx, principal.TokenID)
}

// Me implements auth.AuthService.
func (a *AuthServiceImpl) Me(ctx context.Context, principal auth.Principal) (user.UserResponse, error) {
	u, err := a.userRepo.GetByID(ctx, principal.UserID)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.ToResponse(u), nil
}

// Authenticate implements auth.AuthService.
func (a *AuthServiceImpl) Authenticate(ctx context.Context, userID int64, tokenID string) (auth.Principal, error) {
	session, err := a.sessionRepo.GetByTokenID(ctx, tokenID)
	if err != nil {
		return auth.Principal{}, err
	}
	if session.UserID != userID {
		return auth.Principal{}, auth.ErrInvalidToken
	}
	if !session.IsUsable(a.now()) {
		return auth.Principal{}, auth.ErrSessionRevoked
	}

	u, err := a.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.Principal{}, auth.ErrInvalidToken
		}
		return auth.Principal{}, err
	}
	if !u.IsActive() {
		return auth.Principal{}, auth.ErrAccountInactive
	}

	if err := a.sessionRepo.Touch(ctx, tokenID); err != nil {
		slog.Warn("failed to update session last_used_at", "token_id", tokenID, "error", err)
	}

	return auth.Principal{UserID: u.ID, Role: u.Role, TokenID: tokenID}, nil
}

func (a *AuthServiceImpl) issueToken(ctx context.Context, userID int64, role user.Role, sessionReq auth.SessionTrackingRequest) (string, error) {
	token, tokenID, expiresAt, err := a.jwtService.GenerateAccessToken(userID, string(role))
	if err != nil {
		return "", fmt.Errorf("failed to create access token: %w", err)
	}

	err = a.sessionRepo.Create(ctx, auth.Session{
		UserID:    userID,
		TokenID:   tokenID,
		Name:      sessionName,
		IPAddress: sessionReq.IPAddress,
		UserAgent: sessionReq.UserAgent,
		ExpiresAt: expiresAt,
	})
	if err != nil {
		return "", fmt.Errorf("failed to save session: %w", err)
	}
	return token, nil
}
