// File: internal/handler/items/resolve.go
package items

import (
	"fmt"
	"net/http"
	"strconv"

	"find-my-stuff/internal/api"
	"find-my-stuff/internal/database"
	"find-my-stuff/internal/middleware"
	"find-my-stuff/internal/model"
	"find-my-stuff/internal/service"

	"github.com/labstack/echo/v4"
)

// ResolveItemHandler 擁有者標記物品為已認領並通知管理員
// @Summary     認領物品
// @Tags        items
// @Produce     json
// @Param       id path int true "物品 ID"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Router      /resolve_item/{id} [post]
func ResolveItemHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := middleware.ClaimsFromContext(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "unauthorized"})
		}
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid item ID"})
		}

		item, err := getItemByID(c.Request().Context(), db, id)
		if err != nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "item not found"})
		}
		if !service.AuthorizeItem(claims, item, service.ActionClaimItem) {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "unauthorized"})
		}

		if err := setItemStatus(c.Request().Context(), db, id, model.StatusClaimed); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		if admin, err := getAdminUser(c.Request().Context(), db); err == nil {
			msg := fmt.Sprintf("Item '%s' was claimed.", item.Name)
			if _, err := createNotification(c.Request().Context(), db, admin.ID, msg); err != nil {
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
			}
		}

		return c.JSON(http.StatusOK, api.MessageResponse{Message: "Item marked as claimed."})
	}
}
