package jwt

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt"

func verifiedContext(t *testing.T, svc Service, tokenString string) context.Context {
	t.Helper()
	token, err := jwtauth.VerifyToken(svc.JWTAuth(), tokenString)
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func TestNewJWTService_InvalidExpiration(t *testing.T) {
	_, err := NewJWTService(testSecret, "forever")
	assert.Error(t, err)
}

func TestGenerateAccessToken_RoundTrip(t *testing.T) {
	svc, err := NewJWTService(testSecret, "1h")
	require.NoError(t, err)

	tokenString, tokenID, expiresAt, err := svc.GenerateAccessToken(42, "hr_worker")
	require.NoError(t, err)
	assert.NotEmpty(t, tokenString)
	assert.NotEmpty(t, tokenID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := svc.ParseClaims(verifiedContext(t, svc, tokenString))
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "hr_worker", claims.Role)
	assert.Equal(t, tokenID, claims.TokenID)
}

func TestGenerateAccessToken_UniqueTokenIDs(t *testing.T) {
	svc, err := NewJWTService(testSecret, "1h")
	require.NoError(t, err)

	_, first, _, err := svc.GenerateAccessToken(1, "employee")
	require.NoError(t, err)
	_, second, _, err := svc.GenerateAccessToken(1, "employee")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	signer, err := NewJWTService(testSecret, "1h")
	require.NoError(t, err)
	other, err := NewJWTService("another-secret", "1h")
	require.NoError(t, err)

	tokenString, _, _, err := signer.GenerateAccessToken(1, "admin")
	require.NoError(t, err)

	_, err = jwtauth.VerifyToken(other.JWTAuth(), tokenString)
	assert.Error(t, err)
}

func TestParseClaims_RejectsNonAccessToken(t *testing.T) {
	svc, err := NewJWTService(testSecret, "1h")
	require.NoError(t, err)

	_, tokenString, err := svc.JWTAuth().Encode(map[string]interface{}{
		"user_id": 1,
		"type":    "refresh",
		"jti":     "abc",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	require.NoError(t, err)

	_, err = svc.ParseClaims(verifiedContext(t, svc, tokenString))
	assert.Error(t, err)
}

func TestParseClaims_NoTokenInContext(t *testing.T) {
	svc, err := NewJWTService(testSecret, "1h")
	require.NoError(t, err)

	_, err = svc.ParseClaims(context.Background())
	assert.Error(t, err)
}
