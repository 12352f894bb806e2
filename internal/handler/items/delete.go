// File: internal/handler/items/delete.go
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

// DeleteItemHandler 刪除物品，限擁有者或管理員
// @Summary     刪除物品
// @Tags        items
// @Produce     json
// @Param       id path int true "物品 ID"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Router      /delete_item/{id} [post]
func DeleteItemHandler(db database.DB) echo.HandlerFunc {
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
		if !service.AuthorizeItem(claims, item, service.ActionDeleteItem) {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "unauthorized"})
		}

		if err := deleteItem(c.Request().Context(), db, id); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "Item deleted."})
	}
}
