// File: internal/handler/items/moderate.go
package items

import (
	"fmt"
	"net/http"
	"strconv"

	"find-my-stuff/internal/api"
	"find-my-stuff/internal/database"

	"github.com/labstack/echo/v4"
)

// AcceptItemHandler 核准待審核物品並通知擁有者
// @Summary     核准物品
// @Tags        moderation
// @Produce     json
// @Param       id path int true "物品 ID"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Router      /moderate_item/{id}/accept [post]
func AcceptItemHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid item ID"})
		}

		item, err := getItemByID(c.Request().Context(), db, id)
		if err != nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "item not found"})
		}

		if err := setItemApproved(c.Request().Context(), db, id, true); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		msg := fmt.Sprintf("Your item '%s' was approved!", item.Name)
		if _, err := createNotification(c.Request().Context(), db, item.UserID, msg); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "Item approved."})
	}
}

// RejectItemHandler 駁回待審核物品：通知擁有者後刪除資料列
// 駁回原因為必填，缺漏時不可動到資料
// @Summary     駁回物品
// @Tags        moderation
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       id               path     int    true "物品 ID"
// @Param       rejection_reason formData string true "駁回原因"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Router      /moderate_item/{id}/reject [post]
func RejectItemHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid item ID"})
		}

		var req api.RejectItemRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "Rejection reason is required."})
		}

		item, err := getItemByID(c.Request().Context(), db, id)
		if err != nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "item not found"})
		}

		msg := fmt.Sprintf("Item '%s' rejected. Reason: %s", item.Name, req.RejectionReason)
		if _, err := createNotification(c.Request().Context(), db, item.UserID, msg); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		if err := deleteItem(c.Request().Context(), db, id); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "Item rejected."})
	}
}

// DeleteAllPendingHandler 一次駁回所有待審核物品
// @Summary     清空待審核
// @Tags        moderation
// @Produce     json
// @Success     200 {object} api.MessageResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /admin/delete_all_pending [post]
func DeleteAllPendingHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		n, err := deleteAllPending(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, api.MessageResponse{
			Message: fmt.Sprintf("Deleted %d pending items.", n),
		})
	}
}
