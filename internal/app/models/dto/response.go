package dto

// ErrorResponse is the shared failure body rendered for every error:
// {"success": false, "message": "..."}
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Message string `json:"message" example:"Authentication required"`
}

// NewErrorResponse creates a standard error response
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{
		Success: false,
		Message: message,
	}
}

// SuccessResponse is the minimal success body for operations with no payload
type SuccessResponse struct {
	Success bool `json:"success" example:"true"`
}

// MessageResponse is a success body carrying only a message
type MessageResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message"`
}
