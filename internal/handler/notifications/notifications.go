// File: internal/handler/notifications/notifications.go
package notifications

import (
	"net/http"
	"strconv"

	"find-my-stuff/internal/api"
	"find-my-stuff/internal/database"
	"find-my-stuff/internal/middleware"
	"find-my-stuff/internal/service"
	"find-my-stuff/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	listNotificationsByUser  = store.ListNotificationsByUser
	getNotificationByID      = store.GetNotificationByID
	markNotificationRead     = store.MarkNotificationRead
	markAllNotificationsRead = store.MarkAllNotificationsRead
	countUnreadNotifications = store.CountUnreadNotifications
)

// ListNotificationsHandler 呼叫者的通知，由新到舊
// @Summary     通知列表
// @Tags        notifications
// @Produce     json
// @Success     200 {object} api.NotificationListResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /notifications [get]
func ListNotificationsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := middleware.ClaimsFromContext(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "unauthorized"})
		}

		list, err := listNotificationsByUser(c.Request().Context(), db, claims.UserID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		unread, err := countUnreadNotifications(c.Request().Context(), db, claims.UserID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, api.NotificationListResponse{
			Notifications: api.NewNotificationResponses(list),
			UnreadCount:   unread,
		})
	}
}

// MarkReadHandler 標記單一通知為已讀，僅限收件者，重複標記無害
// @Summary     標記通知已讀
// @Tags        notifications
// @Produce     json
// @Param       id path int true "通知 ID"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Router      /mark_read/{id} [get]
func MarkReadHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := middleware.ClaimsFromContext(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "unauthorized"})
		}
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid notification ID"})
		}

		n, err := getNotificationByID(c.Request().Context(), db, id)
		if err != nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "notification not found"})
		}
		if !service.AuthorizeNotification(claims, n) {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "unauthorized"})
		}

		if err := markNotificationRead(c.Request().Context(), db, id); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "Notification marked as read."})
	}
}

// MarkAllReadHandler 標記呼叫者全部通知為已讀
// @Summary     全部標記已讀
// @Tags        notifications
// @Produce     json
// @Success     200 {object} api.MessageResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /mark_all_read [post]
func MarkAllReadHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := middleware.ClaimsFromContext(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "unauthorized"})
		}
		if err := markAllNotificationsRead(c.Request().Context(), db, claims.UserID); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "All notifications marked as read."})
	}
}
