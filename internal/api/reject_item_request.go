package api

// swagger:model api.RejectItemRequest
type RejectItemRequest struct {
	RejectionReason string `form:"rejection_reason" validate:"required" example:"Duplicate post"`
}
