package context

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestContextValues(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetRequestIDFromContext(ctx))
	assert.Empty(t, GetSyncRunID(ctx))
	assert.Empty(t, GetSyncTrigger(ctx))
	assert.Nil(t, GetLogger(ctx))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx = WithRequestID(ctx, "req-1")
	ctx = WithSyncRunID(ctx, "run-1")
	ctx = WithSyncTrigger(ctx, TriggerScheduler)
	ctx = WithLogger(ctx, logger)

	assert.Equal(t, "req-1", GetRequestIDFromContext(ctx))
	assert.Equal(t, "run-1", GetSyncRunID(ctx))
	assert.Equal(t, TriggerScheduler, GetSyncTrigger(ctx))
	assert.Same(t, logger, GetLoggerOrDefault(ctx, nil))
}

func TestGetLoggerOrDefault_Fallback(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
}

func TestGetRequestID_Echo(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	generated := GetRequestID(c)
	assert.Len(t, generated, 36)

	SetRequestID(c, "req-2")
	assert.Equal(t, "req-2", GetRequestID(c))
}
