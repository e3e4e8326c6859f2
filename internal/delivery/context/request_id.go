// Package context carries per-request and per-sync-run values across layers.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is the header echoed back with the request id.
const HeaderXRequestID = "X-Request-Id"

// echoRequestIDKey stores the request id in echo.Context.
const echoRequestIDKey = "request_id"

type ctxKey int

const (
	requestIDKey ctxKey = iota
	loggerKey
	syncRunIDKey
	syncTriggerKey
)

// SyncTrigger names what started a sync cycle.
type SyncTrigger string

const (
	TriggerAPI       SyncTrigger = "api"
	TriggerScheduler SyncTrigger = "scheduler"
	TriggerPush      SyncTrigger = "push"
	TriggerCLI       SyncTrigger = "cli"
)

// GetRequestID returns the request id stored on c, or a fresh uuid.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(echoRequestIDKey).(string); ok && id != "" {
		return id
	}

	return uuid.New().String()
}

// SetRequestID stores the request id on c.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoRequestIDKey, requestID)
}

// WithRequestID returns a copy of ctx carrying requestID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetRequestIDFromContext returns the request id carried by ctx, or "".
func GetRequestIDFromContext(ctx context.Context) string {
	return stringValue(ctx, requestIDKey)
}

// WithSyncRunID tags ctx with a sync run id.
func WithSyncRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, syncRunIDKey, runID)
}

// GetSyncRunID returns the sync run id carried by ctx, or "".
func GetSyncRunID(ctx context.Context) string {
	return stringValue(ctx, syncRunIDKey)
}

// WithSyncTrigger records what started the sync cycle run under ctx.
func WithSyncTrigger(ctx context.Context, trigger SyncTrigger) context.Context {
	return context.WithValue(ctx, syncTriggerKey, trigger)
}

// GetSyncTrigger returns the trigger carried by ctx, or "".
func GetSyncTrigger(ctx context.Context) SyncTrigger {
	trigger, _ := ctx.Value(syncTriggerKey).(SyncTrigger)

	return trigger
}

// WithLogger returns a copy of ctx carrying a request-scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLogger returns the request-scoped logger, or nil.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(loggerKey).(*slog.Logger)

	return logger
}

// GetLoggerOrDefault returns the request-scoped logger, falling back to fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

func stringValue(ctx context.Context, key ctxKey) string {
	v, _ := ctx.Value(key).(string)

	return v
}
