package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims for player access tokens.
type Claims struct {
	UserID uuid.UUID
	Type   string
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
type TokenService interface {
	// GenerateAccessToken creates a signed access token for a player.
	GenerateAccessToken(userID uuid.UUID) (string, error)

	// ValidateToken checks a token string and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)
}
