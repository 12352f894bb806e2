// File: internal/handler/items/pending.go
package items

import (
	"net/http"

	"find-my-stuff/internal/api"
	"find-my-stuff/internal/database"
	"find-my-stuff/internal/middleware"

	"github.com/labstack/echo/v4"
)

// PendingApprovalHandler 管理員的待審核清單，預設由舊到新
// @Summary     待審核清單
// @Tags        moderation
// @Produce     json
// @Param       sort_by query string false "name_asc / name_desc / date_asc / date_desc"
// @Success     200 {object} api.ItemListResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /admin/pending_approval [get]
func PendingApprovalHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := middleware.ClaimsFromContext(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "unauthorized"})
		}

		list, err := listPendingItems(c.Request().Context(), db, c.QueryParam("sort_by"))
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		unread, err := countUnreadNotifications(c.Request().Context(), db, claims.UserID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, api.ItemListResponse{
			Items:       api.NewItemResponses(list),
			UnreadCount: unread,
		})
	}
}

// MyPendingHandler 呼叫者自己的待審核物品
// @Summary     我的待審核物品
// @Tags        items
// @Produce     json
// @Success     200 {object} api.ItemListResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /my_pending [get]
func MyPendingHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := middleware.ClaimsFromContext(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "unauthorized"})
		}

		list, err := listPendingItemsByUser(c.Request().Context(), db, claims.UserID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		unread, err := countUnreadNotifications(c.Request().Context(), db, claims.UserID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, api.ItemListResponse{
			Items:       api.NewItemResponses(list),
			UnreadCount: unread,
		})
	}
}
