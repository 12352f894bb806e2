// File: internal/api/signup_request.go
package api

// swagger:model api.SignupRequest
type SignupRequest struct {
	Username string `form:"username" validate:"required" example:"alice"`
	Email    string `form:"email" validate:"required,email" example:"alice@example.com"`
	Password string `form:"password" validate:"required" example:"Secret123"`
}
