// ABOUTME: Centralized error handling for Echo
// ABOUTME: Every error becomes a {success:false, message} JSON body
package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the uniform error body for every failed request.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// CustomHTTPErrorHandler creates the centralized HTTP error handler for Echo.
//
// Error handling priority:
// 1. echo.HTTPError - status and message pass through, 5xx messages sanitized
// 2. Unknown errors - generic 500 response to hide internal details
func CustomHTTPErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		// Don't write to already committed responses
		if c.Response().Committed {
			return
		}

		requestID := c.Response().Header().Get(echo.HeaderXRequestID)

		status := http.StatusInternalServerError
		message := "An unexpected error occurred. Please try again later."

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			status = httpErr.Code
			if m, ok := httpErr.Message.(string); ok && status < 500 {
				message = m
			}

			logger.Warn("HTTP error",
				"request_id", requestID,
				"status", status,
				"error", err.Error(),
			)
		} else {
			// Log the actual error for debugging, never expose it.
			logger.Error("unhandled error",
				"request_id", requestID,
				"error", err.Error(),
			)
		}

		if err := c.JSON(status, ErrorResponse{Success: false, Message: message}); err != nil {
			logger.Error("failed to send error response",
				"request_id", requestID,
				"error", err,
			)
		}
	}
}
