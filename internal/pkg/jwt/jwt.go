package jwt

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

const tokenTypeAccess = "access"

// AccessClaims is the verified content of an access token.
type AccessClaims struct {
	UserID    int64
	Role      string
	TokenID   string
	ExpiresAt time.Time
}

type Service interface {
	GenerateAccessToken(userID int64, role string) (token string, tokenID string, expiresAt time.Time, err error)
	ParseClaims(ctx context.Context) (AccessClaims, error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	accessTokenExpiration time.Duration
	tokenAuth             *jwtauth.JWTAuth
	now                   func() time.Time
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime string) (Service, error) {
	expDuration, err := time.ParseDuration(accessTokenExpirationTime)
	if err != nil {
		return nil, fmt.Errorf("invalid access token expiration: %w", err)
	}
	return &JWTService{
		accessTokenExpiration: expDuration,
		tokenAuth:             jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		now:                   time.Now,
	}, nil
}

// GenerateAccessToken signs a token for userID. The returned tokenID is the `jti` claim
// and identifies the session row that must exist for the token to be accepted.
func (j *JWTService) GenerateAccessToken(userID int64, role string) (token string, tokenID string, expiresAt time.Time, err error) {
	tokenID = uuid.NewString()
	expiresAt = j.now().Add(j.accessTokenExpiration)

	claims := map[string]interface{}{
		"user_id": userID,
		"role":    role,
		"jti":     tokenID,
		"type":    tokenTypeAccess,
		"iat":     j.now().Unix(),
		"exp":     expiresAt.Unix(),
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	if err != nil {
		return "", "", time.Time{}, err
	}
	return tokenString, tokenID, expiresAt, nil
}

// ParseClaims reads the token placed in ctx by jwtauth.Verifier.
func (j *JWTService) ParseClaims(ctx context.Context) (AccessClaims, error) {
	token, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return AccessClaims{}, err
	}
	if token == nil {
		return AccessClaims{}, jwt.ErrInvalidJWT()
	}

	tokenType, ok := claims["type"].(string)
	if !ok || tokenType != tokenTypeAccess {
		return AccessClaims{}, jwt.ErrInvalidJWT()
	}

	// Numeric claims come back from JSON as float64.
	rawUserID, ok := claims["user_id"].(float64)
	if !ok || rawUserID <= 0 {
		return AccessClaims{}, jwt.ErrInvalidJWT()
	}

	role, _ := claims["role"].(string)

	tokenID := token.JwtID()
	if tokenID == "" {
		return AccessClaims{}, jwt.ErrInvalidJWT()
	}

	return AccessClaims{
		UserID:    int64(rawUserID),
		Role:      role,
		TokenID:   tokenID,
		ExpiresAt: token.Expiration(),
	}, nil
}
