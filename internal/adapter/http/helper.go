package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"lendhub-backend/pkg/apperr"
)

// Envelope shapes every response: {success, message?, data?} on the happy
// path, {success:false, error, code, details?} otherwise.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

func respondOK(c echo.Context, status int, message string, data any) error {
	return c.JSON(status, Envelope{Success: true, Message: message, Data: data})
}

// respondErr maps domain errors to their carried HTTP status; anything
// else is a tagged 500.
func respondErr(c echo.Context, err error, fallbackCode string) error {
	e := apperr.Wrap(err, fallbackCode)
	return c.JSON(e.Status, Envelope{
		Success: false,
		Error:   e.Message,
		Code:    e.Code,
		Details: e.Details,
	})
}

func respondValidation(c echo.Context, err error) error {
	return c.JSON(http.StatusUnprocessableEntity, Envelope{
		Success: false,
		Error:   "validation failed",
		Code:    "VALIDATION_FAILED",
		Details: ToFieldErrors(err),
	})
}

func respondBind(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, Envelope{
		Success: false,
		Error:   "invalid body",
		Code:    "INVALID_BODY",
	})
}
