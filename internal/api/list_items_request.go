// File: internal/api/list_items_request.go
package api

// ListItemsRequest 儀表板列表的查詢參數，全部可省略
// swagger:model api.ListItemsRequest
type ListItemsRequest struct {
	Status     string `query:"status" example:"Found"`
	Category   string `query:"category" example:"Accessories"`
	Search     string `query:"search" example:"wallet"`
	UserFilter string `query:"user_filter" example:"mine"`
	SortBy     string `query:"sort_by" example:"date_desc"`
}
