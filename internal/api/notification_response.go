// File: internal/api/notification_response.go
package api

import (
	"time"

	"find-my-stuff/internal/model"
)

// swagger:model api.NotificationResponse
type NotificationResponse struct {
	ID        int       `json:"id" example:"4"`
	Message   string    `json:"message" example:"Your item 'Black Wallet' was approved!"`
	IsRead    bool      `json:"is_read" example:"false"`
	CreatedAt time.Time `json:"created_at"`
}

// swagger:model api.NotificationListResponse
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	UnreadCount   int                    `json:"unread_count" example:"2"`
}

func NewNotificationResponses(list []model.Notification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(list))
	for _, n := range list {
		out = append(out, NotificationResponse{
			ID:        n.ID,
			Message:   n.Message,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt,
		})
	}
	return out
}
