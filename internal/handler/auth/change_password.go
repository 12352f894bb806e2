// File: internal/handler/auth/change_password.go
package auth

import (
	"net/http"
	"strings"

	"find-my-stuff/internal/api"
	"find-my-stuff/internal/database"
	"find-my-stuff/internal/middleware"
	"find-my-stuff/internal/store"

	"github.com/labstack/echo/v4"
)

var getUserByID = store.GetUserByID

// ChangePasswordHandler 驗證舊密碼後更新為新密碼
// @Summary     變更密碼
// @Description 需提供正確的現行密碼與相符的確認密碼，新密碼需符合規則
// @Tags        auth
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       current_password formData string true "現行密碼"
// @Param       new_password     formData string true "新密碼"
// @Param       confirm_password formData string true "確認新密碼"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Router      /change_password [post]
func ChangePasswordHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := middleware.ClaimsFromContext(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "unauthorized"})
		}

		var req api.ChangePasswordRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		user, err := getUserByID(c.Request().Context(), db, claims.UserID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		if err := comparePassword(user.PasswordHash, req.CurrentPassword); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "Current password is incorrect."})
		}
		if req.NewPassword != req.ConfirmPassword {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "Passwords do not match."})
		}
		if violations := validatePassword(req.NewPassword); len(violations) > 0 {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: strings.Join(violations, " ")})
		}

		hash, err := hashPassword(req.NewPassword)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to hash password"})
		}
		if err := updateUserPassword(c.Request().Context(), db, user.ID, hash); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "Password updated."})
	}
}
