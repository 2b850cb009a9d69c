package context

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRequestID(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		wantOK bool
	}{
		{name: "uuid", id: uuid.NewString(), wantOK: true},
		{name: "slash", id: "projects/x:abc", wantOK: false},
		{name: "colon and dots", id: "lb:req.42_a-b", wantOK: true},
		{name: "empty", id: "", wantOK: false},
		{name: "newline", id: "abc\ninjected=1", wantOK: false},
		{name: "space", id: "a b", wantOK: false},
		{name: "too long", id: strings.Repeat("a", maxRequestIDLength+1), wantOK: false},
		{name: "longest allowed", id: strings.Repeat("a", maxRequestIDLength), wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizeRequestID(tt.id)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.id, got)
			} else {
				assert.Empty(t, got)
			}
		})
	}
}

func TestGetRequestID_IsStableWithinRequest(t *testing.T) {
	e := echo.New()

	t.Run("from request context", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(WithRequestID(req.Context(), "req-7"))
		c := e.NewContext(req, httptest.NewRecorder())

		assert.Equal(t, "req-7", GetRequestID(c))
	})

	t.Run("generated once", func(t *testing.T) {
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

		first := GetRequestID(c)
		_, err := uuid.Parse(first)
		require.NoError(t, err)
		assert.Equal(t, first, GetRequestID(c))
	})
}

func TestWithLogAttrs(t *testing.T) {
	var buf bytes.Buffer
	fallback := slog.New(slog.NewTextHandler(&buf, nil))

	ctx := WithLogAttrs(context.Background(), fallback, slog.String("request_id", "req-1"))
	ctx = WithLogAttrs(ctx, fallback, slog.String("session_id", "s-1"))
	GetLoggerOrDefault(ctx, fallback).Info("resolved")

	assert.Contains(t, buf.String(), "request_id=req-1")
	assert.Contains(t, buf.String(), "session_id=s-1")
	assert.Empty(t, GetRequestIDFromContext(ctx))
	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
}
