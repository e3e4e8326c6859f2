package errors

import (
	"fmt"
	"net/http"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Is matches any BaseError carrying the same business code, so WithDetails copies
// still compare equal to the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Sync-related errors
	ErrSyncInProgress = NewBaseError(
		http.StatusConflict,
		"SYNC_IN_PROGRESS",
		"a catalog sync is already running for this tenant",
		"",
	)

	ErrSyncUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"SYNC_UNAVAILABLE",
		"catalog sync is shutting down",
		"",
	)

	// Snapshot store errors
	ErrSnapshotCorrupted = NewBaseError(
		http.StatusInternalServerError,
		"SNAPSHOT_CORRUPTED",
		"stored catalog snapshot could not be decoded",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)
)

// StoreOp names the snapshot store operation that failed.
type StoreOp string

const (
	StoreOpLoad  StoreOp = "load"
	StoreOpSave  StoreOp = "save"
	StoreOpClear StoreOp = "clear"
)

// StoreError is returned by snapshot store backends when the backing
// database or bucket fails. A failed save leaves the previous snapshot in place.
type StoreError struct {
	Backend   string
	Op        StoreOp
	TenantKey string
	Err       error
}

// NewStoreError labels a backend failure with the operation and tenant it hit.
func NewStoreError(backend string, op StoreOp, tenantKey string, err error) *StoreError {
	return &StoreError{Backend: backend, Op: op, TenantKey: tenantKey, Err: err}
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s snapshot store: %s %s: %v", e.Backend, e.Op, e.TenantKey, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// HTTPCode returns the HTTP status code
func (e *StoreError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *StoreError) ErrorCode() string {
	return "SNAPSHOT_STORE_FAILED"
}

// Message returns the user-friendly error message
func (e *StoreError) Message() string {
	return fmt.Sprintf("could not %s the catalog snapshot", e.Op)
}

// Details returns the backend and tenant of the failure
func (e *StoreError) Details() string {
	return fmt.Sprintf("%s backend, tenant %s", e.Backend, e.TenantKey)
}
