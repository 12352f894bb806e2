// File: internal/handler/items/view.go
package items

import (
	"net/http"
	"strconv"

	"find-my-stuff/internal/api"
	"find-my-stuff/internal/database"
	"find-my-stuff/internal/middleware"
	"find-my-stuff/internal/service"

	"github.com/labstack/echo/v4"
)

// ViewItemHandler 顯示單一物品，未核准物品僅限擁有者與管理員
// @Summary     檢視物品
// @Tags        items
// @Produce     json
// @Param       id path int true "物品 ID"
// @Success     200 {object} api.ItemDetailResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Router      /view_item/{id} [get]
func ViewItemHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := middleware.ClaimsFromContext(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "unauthorized"})
		}
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid item ID"})
		}

		item, err := getItemWithOwner(c.Request().Context(), db, id)
		if err != nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "item not found"})
		}
		if !service.AuthorizeItem(claims, &item.Item, service.ActionViewItem) {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "unauthorized"})
		}

		unread, err := countUnreadNotifications(c.Request().Context(), db, claims.UserID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		return c.JSON(http.StatusOK, api.ItemDetailResponse{
			Item:        api.NewItemResponse(*item),
			UnreadCount: unread,
		})
	}
}
