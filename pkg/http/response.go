package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// ProcessingErrorMessage is the generic message surfaced when request
// processing fails for any reason other than a known application error.
// Internal error detail never leaks past this string.
const ProcessingErrorMessage = "An error occurred while processing your request."

// ErrorBody is the error payload shape: {"error": "..."}.
type ErrorBody struct {
	Error string `json:"error"`
}

// MessageBody is the plain message payload shape: {"message": "..."}.
type MessageBody struct {
	Message string `json:"message"`
}

// ValidationError represents validation error detail.
type ValidationError struct {
	Code    string                 `json:"code,omitempty"`
	Field   string                 `json:"field,omitempty"`
	Message string                 `json:"message,omitempty"`
	Params  map[string]interface{} `json:"params,omitempty"`
}

// SuccessResponse writes the payload as-is with status 200.
func SuccessResponse(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

// ErrorResponse writes {"error": message} with the given status.
func ErrorResponse(c echo.Context, status int, message string) error {
	return c.JSON(status, ErrorBody{Error: message})
}

// InternalServerErrorResponse writes the generic processing error with 500.
func InternalServerErrorResponse(c echo.Context) error {
	return ErrorResponse(c, http.StatusInternalServerError, ProcessingErrorMessage)
}

// AppErrorResponse maps an application error onto its status and message;
// anything else becomes the generic 500 processing error.
func AppErrorResponse(c echo.Context, err error) error {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return ErrorResponse(c, appErr.Status, appErr.Message)
	}
	return InternalServerErrorResponse(c)
}
