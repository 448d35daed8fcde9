package middleware

import (
	"net/http"
	"strings"

	"github.com/NailaFatima/stylehub-go/auth"
	"github.com/NailaFatima/stylehub-go/models"
	"github.com/NailaFatima/stylehub-go/utils"
	"github.com/labstack/echo/v4"
)

// Context keys set by AdminAuthMiddleware.
const (
	ContextUsername = "adminUsername"
	ContextRole     = "adminRole"
)

// AdminAuthMiddleware validates the bearer session token and puts the
// admin identity on the context.
func AdminAuthMiddleware(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error": "No authorization header",
				})
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error": "Invalid authorization header format",
				})
			}

			claims, err := utils.ValidateToken(parts[1], secret)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error": "Invalid token",
				})
			}

			c.Set(ContextUsername, claims.Username)
			c.Set(ContextRole, claims.Role)
			return next(c)
		}
	}
}

// RequirePermission gates a route on a permission tag resolved through
// the role table. Unknown roles deny.
func RequirePermission(permission string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(ContextRole).(models.Role)
			if !ok || !auth.RoleHasPermission(role, permission) {
				return c.JSON(http.StatusForbidden, map[string]string{
					"error": "Insufficient permissions",
				})
			}
			return next(c)
		}
	}
}
