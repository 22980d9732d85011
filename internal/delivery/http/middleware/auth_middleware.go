package middleware

import (
	"net/http"
	"strings"

	"pasar/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer access token and stores the caller's user
// id on the echo context under "userID". The rejection messages are part of
// the wire contract and kept verbatim.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"msg": "No token, authorization denied"})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"msg": "No token, authorization denied"})
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString, service.TokenPurposeAccess)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"msg": "Token is not valid"})
		}

		c.Set("userID", claims.UserID)

		return next(c)
	}
}
