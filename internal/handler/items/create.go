// File: internal/handler/items/create.go
package items

import (
	"fmt"
	"net/http"
	"time"

	"find-my-stuff/internal/api"
	"find-my-stuff/internal/database"
	"find-my-stuff/internal/middleware"
	"find-my-stuff/internal/model"
	"find-my-stuff/internal/service"
	"find-my-stuff/internal/store"

	"github.com/labstack/echo/v4"
)

const dateLostLayout = "2006-01-02"

var (
	normalizeDriveLink       = service.NormalizeDriveLink
	createItem               = store.CreateItem
	getItemByID              = store.GetItemByID
	getItemWithOwner         = store.GetItemWithOwner
	updateItem               = store.UpdateItem
	setItemApproved          = store.SetItemApproved
	setItemStatus            = store.SetItemStatus
	deleteItem               = store.DeleteItem
	deleteAllPending         = store.DeleteAllPending
	countPendingItems        = store.CountPendingItems
	listItems                = store.ListItems
	listPendingItems         = store.ListPendingItems
	listPendingItemsByUser   = store.ListPendingItemsByUser
	getAdminUser             = store.GetAdminUser
	createNotification       = store.CreateNotification
	countUnreadNotifications = store.CountUnreadNotifications
)

// CreateItemHandler 建立待審核物品並通知管理員
// @Summary     新增物品
// @Description 一般使用者提報拾獲物品，建立後進入待審核狀態
// @Tags        items
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       name              formData string true  "物品名稱"
// @Param       description       formData string false "描述"
// @Param       category          formData string false "分類"
// @Param       date_lost         formData string false "遺失日期 (YYYY-MM-DD)"
// @Param       picture_url       formData string false "圖片連結"
// @Param       status            formData string false "狀態"
// @Param       contact_email     formData string false "聯絡 Email"
// @Param       contact_phone     formData string false "聯絡電話"
// @Param       item_location     formData string false "拾獲地點"
// @Param       uploader_location formData string false "提報者所在地"
// @Success     201 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Router      /add_item [post]
func CreateItemHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := middleware.ClaimsFromContext(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "unauthorized"})
		}
		if claims.IsAdmin() {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "Admins cannot post items."})
		}

		var req api.CreateItemRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		var dateLost *time.Time
		if req.DateLost != "" {
			parsed, err := time.Parse(dateLostLayout, req.DateLost)
			if err != nil {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid date_lost, expected YYYY-MM-DD"})
			}
			dateLost = &parsed
		}

		status := req.Status
		if status == "" {
			status = string(model.StatusFound)
		}

		item, err := createItem(c.Request().Context(), db, &model.Item{
			Name:             req.Name,
			Description:      req.Description,
			Category:         req.Category,
			DateLost:         dateLost,
			PictureURL:       normalizeDriveLink(req.PictureURL),
			UserID:           claims.UserID,
			Status:           status,
			ContactEmail:     req.ContactEmail,
			ContactPhone:     req.ContactPhone,
			IsApproved:       false,
			ItemLocation:     req.ItemLocation,
			UploaderLocation: req.UploaderLocation,
		})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		if admin, err := getAdminUser(c.Request().Context(), db); err == nil {
			msg := fmt.Sprintf("New item '%s' needs approval.", item.Name)
			if _, err := createNotification(c.Request().Context(), db, admin.ID, msg); err != nil {
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
			}
		}

		return c.JSON(http.StatusCreated, api.MessageResponse{Message: "Item submitted for approval."})
	}
}
