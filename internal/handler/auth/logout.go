// File: internal/handler/auth/logout.go
package auth

import (
	"net/http"
	"time"

	"find-my-stuff/internal/api"
	"find-my-stuff/internal/cache"
	"find-my-stuff/internal/service"

	"github.com/labstack/echo/v4"
)

var destroySession = service.DestroySession

// LogoutHandler 撤銷 session 並清除 cookie，無條件成功
// @Summary     登出
// @Description 自快取移除 session 註冊並使 cookie 過期
// @Tags        auth
// @Produce     json
// @Success     200 {object} api.MessageResponse
// @Router      /logout [get]
func LogoutHandler(cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		if cookie, err := c.Cookie(service.SessionCookieName); err == nil && cookie.Value != "" {
			// 撤銷失敗不影響登出結果
			_ = destroySession(c.Request().Context(), cch, cookie.Value)
		}
		c.SetCookie(&http.Cookie{
			Name:     service.SessionCookieName,
			Value:    "",
			Path:     "/",
			HttpOnly: true,
			MaxAge:   -1,
			Expires:  time.Unix(0, 0),
		})
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "Logged out."})
	}
}
