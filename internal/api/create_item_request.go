// File: internal/api/create_item_request.go
package api

// swagger:model api.CreateItemRequest
type CreateItemRequest struct {
	Name             string `form:"name" validate:"required" example:"Black Wallet"`
	Description      string `form:"description" example:"Leather, slightly worn"`
	Category         string `form:"category" example:"Accessories"`
	DateLost         string `form:"date_lost" example:"2026-03-14"`
	PictureURL       string `form:"picture_url" example:"https://drive.google.com/file/d/.../view"`
	Status           string `form:"status" example:"Found"`
	ContactEmail     string `form:"contact_email" example:"finder@example.com"`
	ContactPhone     string `form:"contact_phone" example:"0912345678"`
	ItemLocation     string `form:"item_location" example:"Library 2F"`
	UploaderLocation string `form:"uploader_location" example:"Main campus"`
}
