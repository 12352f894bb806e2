// File: internal/handler/auth/signup.go
package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"find-my-stuff/internal/api"
	"find-my-stuff/internal/database"
	"find-my-stuff/internal/model"
	"find-my-stuff/internal/service"
	"find-my-stuff/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

var (
	hashPassword       = service.HashPassword
	validatePassword   = service.ValidatePassword
	getUserByEmail     = store.GetUserByEmail
	getUserByUsername  = store.GetUserByUsername
	getAdminUser       = store.GetAdminUser
	createUser         = store.CreateUser
	createNotification = store.CreateNotification
)

// SignupHandler 建立新帳號並通知管理員
// @Summary     註冊使用者
// @Description 檢查 Email 與 Username 未被使用且密碼符合規則後建立帳號
// @Tags        auth
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       username formData string true "使用者名稱"
// @Param       email    formData string true "使用者 Email"
// @Param       password formData string true "使用者密碼"
// @Success     201 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /signup [post]
func SignupHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.SignupRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}
		// Email 以原樣儲存比對，不做大小寫正規化
		// 檢查順序：Email 重複、密碼規則、Username 重複
		if _, err := getUserByEmail(c.Request().Context(), db, req.Email); err == nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "Email already registered!"})
		} else if !errors.Is(err, pgx.ErrNoRows) {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		if violations := validatePassword(req.Password); len(violations) > 0 {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: strings.Join(violations, " ")})
		}

		if _, err := getUserByUsername(c.Request().Context(), db, req.Username); err == nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "Username already exists!"})
		} else if !errors.Is(err, pgx.ErrNoRows) {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		hash, err := hashPassword(req.Password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to hash password"})
		}

		user, err := createUser(c.Request().Context(), db, &model.User{
			Username:     req.Username,
			Email:        req.Email,
			PasswordHash: hash,
			Role:         model.RoleUser,
		})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		// 通知管理員有新使用者；無管理員帳號時略過
		if admin, err := getAdminUser(c.Request().Context(), db); err == nil {
			msg := fmt.Sprintf("New user registered: %s (%s)", user.Username, user.Email)
			if _, err := createNotification(c.Request().Context(), db, admin.ID, msg); err != nil {
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
			}
		}

		return c.JSON(http.StatusCreated, api.MessageResponse{Message: "Signup successful! Please sign in."})
	}
}
