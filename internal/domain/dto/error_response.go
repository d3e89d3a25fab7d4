package dto

import "time"

// ErrorResponse is the standardized error envelope returned by every
// endpoint. ErrorDetails carries the underlying error text when one exists.
//
// swagger:model ErrorResponse
type ErrorResponse struct {
	Message      string    `json:"message" example:"invalid expires_at format, expected YYYY-MM-DD"`
	ErrorDetails string    `json:"error,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

// Error implements the error interface so an ErrorResponse can travel through
// error-returning call paths (e.g. middleware).
func (e ErrorResponse) Error() string {
	if e.ErrorDetails != "" {
		return e.Message + ": " + e.ErrorDetails
	}
	return e.Message
}

// NewErrorResponse builds an ErrorResponse with the current timestamp.
// A nil err leaves ErrorDetails empty.
func NewErrorResponse(message string, err error) ErrorResponse {
	details := ""
	if err != nil {
		details = err.Error()
	}
	return ErrorResponse{
		Message:      message,
		ErrorDetails: details,
		Timestamp:    time.Now(),
	}
}
