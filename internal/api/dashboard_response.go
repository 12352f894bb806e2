package api

// swagger:model api.DashboardResponse
type DashboardResponse struct {
	Items           []ItemResponse `json:"items"`
	HasPendingItems bool           `json:"has_pending_items" example:"true"`
	UnreadCount     int            `json:"unread_count" example:"2"`
}
