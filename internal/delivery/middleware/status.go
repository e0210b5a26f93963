package middleware

import (
	"net/http"

	domainerrors "attendance/internal/domain/errors"
	"attendance/internal/errors"

	"github.com/labstack/echo/v4"
)

// statusOf maps a handler error to the status the error handler will send.
func statusOf(err error) int {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}
