package middleware

import (
	"log/slog"
	"net/http"

	"guessr/internal/delivery/api/response"
	deliverycontext "guessr/internal/delivery/context"
	domainerrors "guessr/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	// Attempt to parse as AppError
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			logger.Error("Request failed",
				slog.String("code", appErr.ErrorCode()),
				slog.Any("error", err),
				slog.String("path", c.Request().URL.Path),
			)
		}

		var details any
		if d := appErr.Details(); d != "" {
			details = d
		}
		// response.Error drops details for 5xx, 401 and 403
		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)

		return
	}

	// Check if it is an Echo HTTPError
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil)

		return
	}

	// Default to internal error, log the error but return a generic message
	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.InternalServerError(c, domainerrors.CodeInternalError, domainerrors.ErrInternalError.Message())
}
