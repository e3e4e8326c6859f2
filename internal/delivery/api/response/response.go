package response

import (
	"net/http"

	deliverycontext "catalogsync/internal/delivery/context"
	domainerrors "catalogsync/internal/domain/errors"
	"catalogsync/internal/errors"

	"github.com/labstack/echo/v4"
)

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, domainerrors.SuccessResponse{
		Data: data,
		Meta: meta(c),
	})
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	return write(c, statusCode, &domainerrors.ErrorInfo{
		Code:    errorCode,
		Message: message,
		Details: details,
	})
}

func write(c echo.Context, statusCode int, info *domainerrors.ErrorInfo) error {
	// Details should not be included for 5xx errors or authentication/authorization errors
	if statusCode >= 500 || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		info.Details = nil
	}

	return c.JSON(statusCode, domainerrors.ErrorResponse{
		Error: info,
		Meta:  meta(c),
	})
}

func meta(c echo.Context) *domainerrors.MetaInfo {
	return &domainerrors.MetaInfo{
		RequestID: deliverycontext.GetRequestID(c),
	}
}

// BadRequest returns a 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// BadRequestWithDetails returns a 400 error with details
func BadRequestWithDetails(c echo.Context, errorCode string, message string, details any) error {
	return Error(c, http.StatusBadRequest, errorCode, message, details)
}

// Unauthorized returns a 401 error
func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, nil)
}

// Forbidden returns a 403 error
func Forbidden(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusForbidden, errorCode, message, nil)
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}

// HandleAppError handles application errors, converting domain errors to appropriate HTTP responses.
// Sync failures also report the step that failed.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if !errors.As(err, &appErr) {
		return errors.WithStack(err)
	}

	info := &domainerrors.ErrorInfo{
		Code:    appErr.ErrorCode(),
		Message: appErr.Message(),
	}
	if details := appErr.Details(); details != "" {
		info.Details = details
	}

	var syncErr *domainerrors.SyncError
	if errors.As(err, &syncErr) {
		info.Step = syncErr.Step.String()
	}

	return write(c, appErr.HTTPCode(), info)
}
