package api

// swagger:model api.ResetPasswordRequest
type ResetPasswordRequest struct {
	Email string `form:"email" validate:"required,email" example:"alice@example.com"`
}
