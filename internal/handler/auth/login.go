// File: internal/handler/auth/login.go
package auth

import (
	"net/http"
	"time"

	"find-my-stuff/internal/api"
	"find-my-stuff/internal/cache"
	"find-my-stuff/internal/database"
	"find-my-stuff/internal/service"

	"github.com/labstack/echo/v4"
)

// sessionTTL 為 session 令牌與快取註冊的存活時間
const sessionTTL = 24 * time.Hour

var (
	comparePassword = service.ComparePassword
	issueSession    = service.IssueSession
)

// LoginHandler 驗證帳密並發放 session cookie
// @Summary     登入
// @Description 以 Username 與 Password 驗證，成功後設定 HttpOnly session cookie
// @Tags        auth
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       username formData string true "使用者名稱"
// @Param       password formData string true "使用者密碼"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Router      /signin [post]
func LoginHandler(db database.DB, cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		// 一律回覆相同訊息，避免洩漏帳號是否存在
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Invalid username or password."})
		}

		user, err := getUserByUsername(c.Request().Context(), db, req.Username)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Invalid username or password."})
		}
		if err := comparePassword(user.PasswordHash, req.Password); err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Invalid username or password."})
		}

		token, err := issueSession(c.Request().Context(), cch, *user, sessionTTL)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to issue session"})
		}

		c.SetCookie(&http.Cookie{
			Name:     service.SessionCookieName,
			Value:    token,
			Path:     "/",
			HttpOnly: true,
			Expires:  time.Now().Add(sessionTTL),
		})
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "Signed in."})
	}
}
