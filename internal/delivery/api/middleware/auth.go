package middleware

import (
	"strings"

	"guessr/internal/delivery/api/response"
	"guessr/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const contextKeyUserID = "userID"

// AuthMiddleware validates player access tokens.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate requires a valid Bearer access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		c.Set(contextKeyUserID, claims.UserID)

		return next(c)
	}
}

// OptionalAuthenticate identifies the player when a token is sent, and lets
// anonymous requests through. A malformed or expired token is still rejected.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	authenticated := m.Authenticate(next)

	return func(c echo.Context) error {
		if c.Request().Header.Get(echo.HeaderAuthorization) == "" {
			return next(c)
		}

		return authenticated(c)
	}
}

// GetUserID returns the player set by Authenticate.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(contextKeyUserID).(uuid.UUID)

	return userID, ok && userID != uuid.Nil
}
