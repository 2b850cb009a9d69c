// Package context carries the request id and the request-scoped logger from
// the HTTP edge down to the services and repositories.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is the HTTP header name for request ID.
const HeaderXRequestID = "X-Request-Id"

// maxRequestIDLength bounds ids accepted from clients and Pub/Sub attributes.
const maxRequestIDLength = 128

// echoKeyRequestID is the echo.Context store key.
const echoKeyRequestID = "request_id"

type requestIDKey struct{}

type loggerKey struct{}

// NormalizeRequestID returns id when it is safe to echo into headers and
// logs, and ok=false otherwise. Allowed: letters, digits, '-', '_', '.' and ':'.
func NormalizeRequestID(id string) (string, bool) {
	if id == "" || len(id) > maxRequestIDLength {
		return "", false
	}
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-', r == '_', r == '.', r == ':':
		default:
			return "", false
		}
	}

	return id, true
}

// GetRequestID returns the id of the current request. Outside the request id
// middleware it falls back to the request context, then to a fresh id that is
// stored so every envelope of one request agrees.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(echoKeyRequestID).(string); ok && id != "" {
		return id
	}

	id := GetRequestIDFromContext(c.Request().Context())
	if id == "" {
		id = uuid.New().String()
	}
	SetRequestID(c, id)

	return id
}

// SetRequestID sets the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoKeyRequestID, requestID)
}

// GetRequestIDFromContext returns "" when ctx carries no request id.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)

	return id
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback when the
// context has none (background jobs, tests).
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// WithLogAttrs scopes the context logger with extra attributes, e.g. the
// session a handler is working on.
func WithLogAttrs(ctx context.Context, fallback *slog.Logger, attrs ...any) context.Context {
	return WithLogger(ctx, GetLoggerOrDefault(ctx, fallback).With(attrs...))
}
