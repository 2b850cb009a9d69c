// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"guessr/config"
	"guessr/internal/domain/constants"
	"guessr/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Players have no password to log in again, so access tokens are long lived.
const accessTTL = 30 * 24 * time.Hour

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret []byte        // Secret key for signing access tokens.
	accessTTL    time.Duration // Time-to-live for access tokens.
	now          func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	return &jwtService{
		accessSecret: []byte(cfg.SecretKey.Access),
		accessTTL:    accessTTL,
		now:          time.Now,
	}, nil
}

// GenerateAccessToken creates a signed access token for a player.
func (s *jwtService) GenerateAccessToken(userID uuid.UUID) (string, error) {
	now := s.now()
	claims := &service.Claims{
		UserID: userID,
		Type:   constants.TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.accessSecret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign access token")
	}

	return signed, nil
}

// ValidateToken checks the signature, expiry and type of an access token.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.accessSecret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.Type != constants.TokenTypeAccess {
		return nil, errors.Errorf("unexpected token type %q", claims.Type)
	}
	if claims.UserID == uuid.Nil {
		return nil, errors.New("token has no user")
	}

	return claims, nil
}
