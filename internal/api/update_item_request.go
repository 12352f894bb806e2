package api

// swagger:model api.UpdateItemRequest
type UpdateItemRequest struct {
	Name             string `form:"name" validate:"required" example:"Black Wallet"`
	Description      string `form:"description" example:"Leather, slightly worn"`
	Category         string `form:"category" example:"Accessories"`
	Status           string `form:"status" example:"Found"`
	PictureURL       string `form:"picture_url" example:"https://drive.google.com/file/d/.../view"`
	ItemLocation     string `form:"item_location" example:"Library 2F"`
	UploaderLocation string `form:"uploader_location" example:"Main campus"`
}
