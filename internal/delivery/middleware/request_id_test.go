package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "catalogsync/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRequestID(t *testing.T, header string) (string, string, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	var fromEcho, fromCtx string
	err := mw.Process(func(c echo.Context) error {
		fromEcho = deliverycontext.GetRequestID(c)
		fromCtx = deliverycontext.GetRequestIDFromContext(c.Request().Context())
		require.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

		return nil
	})(c)
	require.NoError(t, err)

	return fromEcho, fromCtx, rec
}

func TestRequestIDMiddleware_ReusesHeader(t *testing.T) {
	fromEcho, fromCtx, rec := runRequestID(t, "abc-123")

	assert.Equal(t, "abc-123", fromEcho)
	assert.Equal(t, "abc-123", fromCtx)
	assert.Equal(t, "abc-123", rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestRequestIDMiddleware_GeneratesWhenMissingOrUnsafe(t *testing.T) {
	for _, header := range []string{
		"",
		strings.Repeat("x", maxRequestIDLength+1),
		"abc\nlevel=ERROR msg=forged",
		"has space",
	} {
		fromEcho, fromCtx, rec := runRequestID(t, header)

		assert.Len(t, fromEcho, 36)
		assert.Equal(t, fromEcho, fromCtx)
		assert.Equal(t, fromEcho, rec.Header().Get(deliverycontext.HeaderXRequestID))
	}
}

func TestIsSafeRequestID(t *testing.T) {
	assert.True(t, isSafeRequestID("run-1.trace_2:span"))
	assert.True(t, isSafeRequestID("3f2c9b5e-9a51-4cf2-8f43-2d1c6c0a9e11"))
	assert.False(t, isSafeRequestID("tab\there"))
	assert.False(t, isSafeRequestID("ünicode"))
}
