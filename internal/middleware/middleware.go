// File: internal/middleware/middleware.go
package middleware

import (
	"net/http"

	"find-my-stuff/internal/cache"
	"find-my-stuff/internal/service"

	"github.com/labstack/echo/v4"
)

const ContextUserKey = "user"

func extractClaims(c echo.Context, cch cache.Cache) (*service.SessionClaims, error) {
	cookie, err := c.Cookie(service.SessionCookieName)
	if err != nil || cookie.Value == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing session")
	}
	claims, err := service.VerifySession(c.Request().Context(), cch, cookie.Value)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid session")
	}
	return claims, nil
}

func RequireAuth(cch cache.Cache) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := extractClaims(c, cch)
			if err != nil {
				return err
			}
			c.Set(ContextUserKey, claims)
			return next(c)
		}
	}
}

func RequireAdmin(cch cache.Cache) echo.MiddlewareFunc {
	requireAuth := RequireAuth(cch)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return requireAuth(func(c echo.Context) error {
			claims := c.Get(ContextUserKey).(*service.SessionClaims)
			if !claims.IsAdmin() {
				return echo.NewHTTPError(http.StatusForbidden, "admin privileges required")
			}
			return next(c)
		})
	}
}

// ClaimsFromContext 取出 RequireAuth 放入的 session 身分
func ClaimsFromContext(c echo.Context) (*service.SessionClaims, bool) {
	claims, ok := c.Get(ContextUserKey).(*service.SessionClaims)
	return claims, ok
}
