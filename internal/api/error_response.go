package api

// swagger:model api.ErrorResponse
type ErrorResponse struct {
	Message string `json:"message" example:"unauthorized"`
}
