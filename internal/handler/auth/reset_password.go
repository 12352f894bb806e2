// File: internal/handler/auth/reset_password.go
package auth

import (
	"fmt"
	"net/http"

	"find-my-stuff/internal/api"
	"find-my-stuff/internal/database"
	"find-my-stuff/internal/service"
	"find-my-stuff/internal/store"

	"github.com/labstack/echo/v4"
)

const tempPasswordLength = 12

var (
	generateTempPassword = service.GenerateTempPassword
	updateUserPassword   = store.UpdateUserPassword
)

// ResetPasswordHandler 產生臨時密碼並以郵件寄出
// 寄送失敗時還原原密碼雜湊，不留下無法登入的帳號
// @Summary     申請密碼重設
// @Description 產生 12 碼臨時密碼寄至註冊信箱；寄送失敗時回復原密碼
// @Tags        auth
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       email formData string true "註冊 Email"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     502 {object} api.ErrorResponse
// @Router      /reset_password_request [post]
func ResetPasswordHandler(db database.DB, mailer service.Mailer) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.ResetPasswordRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}
		user, err := getUserByEmail(c.Request().Context(), db, req.Email)
		if err != nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "Email not found."})
		}

		tempPassword, err := generateTempPassword(tempPasswordLength)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to generate password"})
		}
		hash, err := hashPassword(tempPassword)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to hash password"})
		}

		previousHash := user.PasswordHash
		if err := updateUserPassword(c.Request().Context(), db, user.ID, hash); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		body := fmt.Sprintf("Hello %s,\n\nYour temporary password is: %s\n\nPlease sign in and change it immediately.", user.Username, tempPassword)
		if err := mailer.Send(user.Email, "Your temporary password", body); err != nil {
			// 寄送失敗：回復原密碼雜湊後回報傳輸錯誤
			if rbErr := updateUserPassword(c.Request().Context(), db, user.ID, previousHash); rbErr != nil {
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: rbErr.Error()})
			}
			return c.JSON(http.StatusBadGateway, api.ErrorResponse{Message: err.Error()})
		}

		return c.JSON(http.StatusOK, api.MessageResponse{Message: "A temporary password has been sent to your email."})
	}
}
