// File: internal/handler/items/dashboard.go
package items

import (
	"net/http"

	"find-my-stuff/internal/api"
	"find-my-stuff/internal/database"
	"find-my-stuff/internal/middleware"
	"find-my-stuff/internal/store"

	"github.com/labstack/echo/v4"
)

// DashboardHandler 依身分與查詢條件回傳物品列表
// @Summary     物品儀表板
// @Description 非管理員僅見已核准物品；支援狀態、分類、關鍵字、mine 篩選與排序
// @Tags        items
// @Produce     json
// @Param       status      query string false "狀態"
// @Param       category    query string false "分類"
// @Param       search      query string false "關鍵字（名稱、描述、地點）"
// @Param       user_filter query string false "mine 表示只看自己的物品"
// @Param       sort_by     query string false "name_asc / name_desc / date_asc / date_desc"
// @Success     200 {object} api.DashboardResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /dashboard [get]
func DashboardHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := middleware.ClaimsFromContext(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "unauthorized"})
		}

		var req api.ListItemsRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid query parameters"})
		}

		list, err := listItems(c.Request().Context(), db, store.ListItemsParams{
			Status:        req.Status,
			Category:      req.Category,
			Search:        req.Search,
			UserFilter:    req.UserFilter,
			SortBy:        req.SortBy,
			ViewerID:      claims.UserID,
			ViewerIsAdmin: claims.IsAdmin(),
		})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		// 待審旗標看的是全站是否有待審物品，與呼叫者角色無關
		pending, err := countPendingItems(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		unread, err := countUnreadNotifications(c.Request().Context(), db, claims.UserID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		return c.JSON(http.StatusOK, api.DashboardResponse{
			Items:           api.NewItemResponses(list),
			HasPendingItems: pending > 0,
			UnreadCount:     unread,
		})
	}
}
