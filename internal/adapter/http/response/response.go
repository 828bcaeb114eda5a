// Package response builds the JSON bodies returned by the roundtrip API.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorDetail is the body of every error response.
type ErrorDetail struct {
	// Code is a machine-readable error code
	Code string `json:"code" example:"validation_error"`

	// Message is a human-readable error message
	Message string `json:"message" example:"Request validation failed"`

	// Details maps request fields to problems (validation errors only)
	Details map[string]string `json:"details,omitempty"`
}

// Error codes.
const (
	CodeInvalidRequest     = "invalid_request"
	CodeValidationError    = "validation_error"
	CodeServiceUnavailable = "service_unavailable"
	CodeTimeout            = "timeout"
	CodeInternalError      = "internal_error"
)

// Error messages.
const (
	MsgInvalidRequestBody = "Failed to parse request body"
	MsgValidationFailed   = "Request validation failed"
	MsgServiceUnavailable = "The roundtrip catalog is currently unavailable"
	MsgTimeout            = "Request timed out"
	MsgRequestCancelled   = "Request was cancelled"
	MsgInternalError      = "An unexpected error occurred"
)

// OK writes a 200 response.
func OK(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, data)
}

func writeError(c echo.Context, status int, code, message string, details map[string]string) error {
	return c.JSON(status, &ErrorDetail{Code: code, Message: message, Details: details})
}
