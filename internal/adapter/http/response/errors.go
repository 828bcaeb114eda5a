package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// InvalidRequestBody writes a 400 for a body that does not decode.
func InvalidRequestBody(c echo.Context) error {
	return writeError(c, http.StatusBadRequest, CodeInvalidRequest, MsgInvalidRequestBody, nil)
}

// ValidationError writes a 400 listing the offending fields.
func ValidationError(c echo.Context, details map[string]string) error {
	return writeError(c, http.StatusBadRequest, CodeValidationError, MsgValidationFailed, details)
}

// ValidationErrorWithMessage writes a 400 with a free-form message.
func ValidationErrorWithMessage(c echo.Context, message string) error {
	return writeError(c, http.StatusBadRequest, CodeValidationError, message, nil)
}

// ServiceUnavailable writes a 503 when the catalog cannot be read.
func ServiceUnavailable(c echo.Context) error {
	return writeError(c, http.StatusServiceUnavailable, CodeServiceUnavailable, MsgServiceUnavailable, nil)
}

// GatewayTimeout writes a 504 when the catalog did not answer in time.
func GatewayTimeout(c echo.Context) error {
	return writeError(c, http.StatusGatewayTimeout, CodeTimeout, MsgTimeout, nil)
}

// RequestCancelled writes a 504 for a request the client abandoned.
func RequestCancelled(c echo.Context) error {
	return writeError(c, http.StatusGatewayTimeout, CodeTimeout, MsgRequestCancelled, nil)
}

// InternalServerError writes a 500 without leaking details.
func InternalServerError(c echo.Context) error {
	return writeError(c, http.StatusInternalServerError, CodeInternalError, MsgInternalError, nil)
}
