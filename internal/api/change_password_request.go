package api

// swagger:model api.ChangePasswordRequest
type ChangePasswordRequest struct {
	CurrentPassword string `form:"current_password" validate:"required" example:"OldSecret123"`
	NewPassword     string `form:"new_password" validate:"required" example:"NewSecret456"`
	ConfirmPassword string `form:"confirm_password" validate:"required" example:"NewSecret456"`
}
