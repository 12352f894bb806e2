// File: internal/api/item_response.go
package api

import "find-my-stuff/internal/model"

const dateLostLayout = "2006-01-02"

// DateLostUnknown 為日期未填時的顯示值
const DateLostUnknown = "N/A"

// swagger:model api.ItemResponse
type ItemResponse struct {
	ID               int    `json:"id" example:"5"`
	Name             string `json:"name" example:"Black Wallet"`
	Description      string `json:"description" example:"Leather, slightly worn"`
	Category         string `json:"category" example:"Accessories"`
	DateLost         string `json:"date_lost" example:"2026-03-14"`
	PictureURL       string `json:"picture_url" example:"https://lh3.googleusercontent.com/u/0/d/..."`
	UserID           int    `json:"user_id" example:"3"`
	OwnerUsername    string `json:"owner_username" example:"carol"`
	Status           string `json:"status" example:"Found"`
	ContactEmail     string `json:"contact_email" example:"finder@example.com"`
	ContactPhone     string `json:"contact_phone" example:"0912345678"`
	IsApproved       bool   `json:"is_approved" example:"true"`
	ItemLocation     string `json:"item_location" example:"Library 2F"`
	UploaderLocation string `json:"uploader_location" example:"Main campus"`
}

// NewItemResponse 將列表查詢結果轉為回應模型，日期未填以 N/A 呈現
func NewItemResponse(it model.ItemWithOwner) ItemResponse {
	date := DateLostUnknown
	if it.DateLost != nil {
		date = it.DateLost.Format(dateLostLayout)
	}
	return ItemResponse{
		ID:               it.ID,
		Name:             it.Name,
		Description:      it.Description,
		Category:         it.Category,
		DateLost:         date,
		PictureURL:       it.PictureURL,
		UserID:           it.UserID,
		OwnerUsername:    it.OwnerUsername,
		Status:           it.Status,
		ContactEmail:     it.ContactEmail,
		ContactPhone:     it.ContactPhone,
		IsApproved:       it.IsApproved,
		ItemLocation:     it.ItemLocation,
		UploaderLocation: it.UploaderLocation,
	}
}

// NewItemResponses 批次轉換，保留查詢排序
func NewItemResponses(items []model.ItemWithOwner) []ItemResponse {
	list := make([]ItemResponse, 0, len(items))
	for _, it := range items {
		list = append(list, NewItemResponse(it))
	}
	return list
}
