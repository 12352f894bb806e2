// File: internal/handler/items/edit.go
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

// EditItemHandler 更新物品內容，限擁有者或管理員
// @Summary     編輯物品
// @Tags        items
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       id                path     int    true  "物品 ID"
// @Param       name              formData string true  "物品名稱"
// @Param       description       formData string false "描述"
// @Param       category          formData string false "分類"
// @Param       status            formData string false "狀態"
// @Param       picture_url       formData string false "圖片連結（留空保留原值）"
// @Param       item_location     formData string false "拾獲地點"
// @Param       uploader_location formData string false "提報者所在地"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Router      /edit_item/{id} [post]
func EditItemHandler(db database.DB) echo.HandlerFunc {
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
		if !service.AuthorizeItem(claims, item, service.ActionEditItem) {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "unauthorized"})
		}

		var req api.UpdateItemRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		item.Name = req.Name
		item.Description = req.Description
		item.Category = req.Category
		item.Status = req.Status
		item.ItemLocation = req.ItemLocation
		item.UploaderLocation = req.UploaderLocation
		// 圖片連結留空時保留原值
		if req.PictureURL != "" {
			item.PictureURL = normalizeDriveLink(req.PictureURL)
		}

		if err := updateItem(c.Request().Context(), db, item); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "Item updated."})
	}
}
