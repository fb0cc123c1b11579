package dto

import "time"

// ErrorResponse is the body returned for a single error.
type ErrorResponse struct {
	Timestamp DealTime `json:"timestamp"`
	Status    int      `json:"status"`
	Error     string   `json:"error"`
	Message   string   `json:"message"`
}

// ValidationErrorResponse is the body returned when one or more request fields are rejected.
type ValidationErrorResponse struct {
	Timestamp DealTime          `json:"timestamp"`
	Status    int               `json:"status"`
	Error     string            `json:"error"`
	Messages  map[string]string `json:"messages"`
}

// NewErrorResponse builds an ErrorResponse stamped with now.
func NewErrorResponse(now time.Time, status int, errorTitle, message string) ErrorResponse {
	return ErrorResponse{Timestamp: *NewDealTime(now), Status: status, Error: errorTitle, Message: message}
}

// NewValidationErrorResponse builds a ValidationErrorResponse stamped with now.
func NewValidationErrorResponse(now time.Time, status int, errorTitle string, messages map[string]string) ValidationErrorResponse {
	return ValidationErrorResponse{Timestamp: *NewDealTime(now), Status: status, Error: errorTitle, Messages: messages}
}
