// File: internal/handler/home.go
package handler

import (
	"net/http"

	"find-my-stuff/internal/cache"
	"find-my-stuff/internal/service"

	"github.com/labstack/echo/v4"
)

var verifySession = service.VerifySession

// HomeHandler 依登入狀態導向儀表板或登入頁
// @Summary     首頁導向
// @Description 已登入導向 /dashboard，未登入導向 /signin
// @Tags        misc
// @Success     302
// @Router      / [get]
func HomeHandler(cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(service.SessionCookieName)
		if err == nil && cookie.Value != "" {
			if _, err := verifySession(c.Request().Context(), cch, cookie.Value); err == nil {
				return c.Redirect(http.StatusFound, "/dashboard")
			}
		}
		return c.Redirect(http.StatusFound, "/signin")
	}
}
