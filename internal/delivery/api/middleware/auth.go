package middleware

import (
	"strings"

	"socialdesk/internal/delivery/api/response"
	deliverycontext "socialdesk/internal/delivery/context"
	"socialdesk/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AuthMiddleware validates bearer access tokens.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate rejects requests without a valid access token and records the owner id.
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

		deliverycontext.SetUserID(c, claims.UserID)

		return next(c)
	}
}

// GetUserID returns the owner authenticated by Authenticate.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	return deliverycontext.GetUserID(c)
}
