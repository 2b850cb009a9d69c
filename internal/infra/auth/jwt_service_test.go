package auth

import (
	"testing"
	"time"

	"guessr/config"
	"guessr/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret

	return cfg
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	userID := uuid.New()
	token, err := jwtService.GenerateAccessToken(userID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "access", claims.Type)
	assert.Equal(t, userID.String(), claims.Subject)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "failed to parse token")
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestConfig("issuer-secret"))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestConfig("another-secret"))
	require.NoError(t, err)

	token, err := issuer.GenerateAccessToken(uuid.New())
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("secret"))
	require.NoError(t, err)

	issued := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	svc.(*jwtService).now = func() time.Time { return issued }
	token, err := svc.GenerateAccessToken(uuid.New())
	require.NoError(t, err)

	svc.(*jwtService).now = func() time.Time { return issued.Add(accessTTL + time.Minute) }
	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_UnknownTokenType(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("secret"))
	require.NoError(t, err)

	claims := &service.Claims{
		UserID: uuid.New(),
		Type:   "refresh",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorContains(t, err, "unexpected token type")
}

func TestJWTService_EmptySecret(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(""))
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt access secret must be provided")
}
