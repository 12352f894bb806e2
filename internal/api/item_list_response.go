// File: internal/api/item_list_response.go
package api

// swagger:model api.ItemListResponse
type ItemListResponse struct {
	Items       []ItemResponse `json:"items"`
	UnreadCount int            `json:"unread_count" example:"2"`
}

// swagger:model api.ItemDetailResponse
type ItemDetailResponse struct {
	Item        ItemResponse `json:"item"`
	UnreadCount int          `json:"unread_count" example:"2"`
}
