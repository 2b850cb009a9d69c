package middleware

import (
	"log/slog"

	deliverycontext "guessr/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestIDMiddleware tags every request with an id and a logger carrying it.
// Client supplied ids are kept only when they pass NormalizeRequestID.
type RequestIDMiddleware struct {
	logger *slog.Logger
}

// NewRequestIDMiddleware creates a new Request ID middleware
func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger: logger,
	}
}

// Process resolves the request id and stores it with a scoped logger in both
// the echo context and the request context.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID, ok := deliverycontext.NormalizeRequestID(c.Request().Header.Get(deliverycontext.HeaderXRequestID))
		if !ok {
			requestID = uuid.New().String()
		}

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		ctx := deliverycontext.WithRequestID(c.Request().Context(), requestID)
		ctx = deliverycontext.WithLogAttrs(ctx, m.logger, slog.String("request_id", requestID))
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
