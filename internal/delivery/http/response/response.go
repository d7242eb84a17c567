// Package response renders the uniform payload envelope every endpoint
// answers with: exactly one of the response and error fields is set,
// the other is null.
package response

import (
	"github.com/labstack/echo/v4"
)

// ErrorInfo describes a failed request.
type ErrorInfo struct {
	Message    string `json:"message"`
	Code       string `json:"code"`
	HTTPStatus int    `json:"httpStatus"`
}

// Envelope is the unified API response structure.
type Envelope struct {
	Response any        `json:"response"`
	Error    *ErrorInfo `json:"error"`
}

// Success writes a successful envelope with the given payload. A nil
// payload renders as an explicit null.
func Success(c echo.Context, statusCode int, payload any) error {
	return c.JSON(statusCode, Envelope{
		Response: payload,
	})
}

// Error writes a failed envelope.
func Error(c echo.Context, statusCode int, errorCode, message string) error {
	return c.JSON(statusCode, Envelope{
		Error: &ErrorInfo{
			Message:    message,
			Code:       errorCode,
			HTTPStatus: statusCode,
		},
	})
}
