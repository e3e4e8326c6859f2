package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"catalogsync/internal/delivery/api/response"
	deliverycontext "catalogsync/internal/delivery/context"
	domainerrors "catalogsync/internal/domain/errors"
	"catalogsync/internal/errors"

	"github.com/labstack/echo/v4"
)

// statusClientClosedRequest is logged when the caller hangs up before the response.
const statusClientClosedRequest = 499

// httpErrorCodes names the echo router and middleware failures.
//
//nolint:gochecknoglobals
var httpErrorCodes = map[int]string{
	http.StatusNotFound:              "ROUTE_NOT_FOUND",
	http.StatusMethodNotAllowed:      "METHOD_NOT_ALLOWED",
	http.StatusRequestEntityTooLarge: "BODY_TOO_LARGE",
	http.StatusUnsupportedMediaType:  "UNSUPPORTED_MEDIA_TYPE",
}

// ErrorMiddleware renders every handler error as the JSON error envelope
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

	req := c.Request()
	logger := deliverycontext.GetLoggerOrDefault(req.Context(), m.logger)

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			attrs := []any{
				slog.String("code", appErr.ErrorCode()),
				slog.Any("error", err),
			}
			var syncErr *domainerrors.SyncError
			if errors.As(err, &syncErr) {
				attrs = append(attrs, slog.String("step", syncErr.Step.String()))
			}
			logger.Warn("Request failed", attrs...)
		}
		_ = response.HandleAppError(c, err)

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		code, ok := httpErrorCodes[httpErr.Code]
		if !ok {
			code = "HTTP_ERROR"
		}

		_ = response.Error(c, httpErr.Code, code, message, nil)

		return
	}

	if errors.Is(err, context.Canceled) && req.Context().Err() != nil {
		logger.Info("Client closed request", slog.String("path", req.URL.Path))
		c.Response().WriteHeader(statusClientClosedRequest)

		return
	}

	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", req.URL.Path),
		slog.String("method", req.Method),
	)

	// For 500 errors, do not expose internal error details to the client
	_ = response.InternalServerError(c, "INTERNAL_ERROR", "Internal server error, please try again later")
}
