package middleware // reusable HTTP middleware functions

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Owen-Kz/bn-portfolio/internal/utils"
)

// UserIDKey is the context key handlers read the authenticated user id from.
const UserIDKey = "user_id"

// JWTAuth returns an Echo middleware that validates a Bearer access token
// and injects the token's subject claim into the request context. The
// provided secret must match the one used when issuing tokens. Protected
// handlers read the id via c.Get(middleware.UserIDKey).
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
			}
			raw := strings.TrimPrefix(auth, "Bearer ")
			uid, err := utils.ParseAccessToken(secret, raw)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
			}
			c.Set(UserIDKey, uid)
			return next(c)
		}
	}
}

// UserID extracts the authenticated user's id set by JWTAuth. It returns
// 0 when the middleware did not run or the value has an unexpected type.
func UserID(c echo.Context) uint64 {
	if v, ok := c.Get(UserIDKey).(uint64); ok {
		return v
	}
	return 0
}
