package errors

import (
	"fmt"
	"net/http"

	"catalogsync/internal/domain/entity"
	"catalogsync/internal/errors"
)

// TransportKind classifies a failed call to the remote API.
type TransportKind string

const (
	TransportTimeout      TransportKind = "timeout"
	TransportUnauthorized TransportKind = "unauthorized"
	TransportNotFound     TransportKind = "not_found"
	TransportServerError  TransportKind = "server_error"
	TransportNetwork      TransportKind = "network_error"
	TransportMalformed    TransportKind = "malformed_response"
)

// TransportError is returned by the remote client for every non-successful call.
type TransportError struct {
	Kind       TransportKind
	Endpoint   string
	StatusCode int
	StatusText string
	Err        error
}

// NewTransportError creates a TransportError of the given kind.
func NewTransportError(kind TransportKind, endpoint string, err error) *TransportError {
	return &TransportError{Kind: kind, Endpoint: endpoint, Err: err}
}

func (e *TransportError) Error() string {
	msg := fmt.Sprintf("%s %s", e.Endpoint, e.Kind)
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" (%d %s)", e.StatusCode, e.StatusText)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// describe renders the kind for end users.
func (e *TransportError) describe() string {
	switch e.Kind {
	case TransportTimeout:
		return "the remote API did not respond in time"
	case TransportUnauthorized:
		return "the remote API rejected the session"
	case TransportNotFound:
		return "the remote endpoint was not found"
	case TransportServerError:
		if e.StatusCode != 0 {
			return fmt.Sprintf("the remote API returned an error (%d %s)", e.StatusCode, e.StatusText)
		}
		if e.StatusText != "" {
			return "the remote API returned an error: " + e.StatusText
		}

		return "the remote API returned an error"
	case TransportNetwork:
		return "the remote API could not be reached"
	case TransportMalformed:
		return "the remote API returned a malformed response"
	default:
		return "the remote API call failed"
	}
}

// TransportKindOf returns the kind of the first TransportError in err's chain.
func TransportKindOf(err error) (TransportKind, bool) {
	var te *TransportError
	if !errors.As(err, &te) {
		return "", false
	}

	return te.Kind, true
}

// AuthKind classifies a failed handshake.
type AuthKind string

const (
	AuthRejected    AuthKind = "rejected"
	AuthUnreachable AuthKind = "unreachable"
	AuthFailed      AuthKind = "failed"
)

// AuthPhase is the handshake call that failed.
type AuthPhase string

const (
	AuthPhaseLogin        AuthPhase = "login"
	AuthPhaseSelectTenant AuthPhase = "select_tenant"
)

// AuthError is returned by the session manager.
type AuthError struct {
	Kind  AuthKind
	Phase AuthPhase
	Err   error
}

// NewAuthError classifies a transport failure raised during the handshake.
// Unauthorized maps to Rejected, timeouts and network failures to Unreachable,
// anything else to Failed.
func NewAuthError(phase AuthPhase, err error) *AuthError {
	kind := AuthFailed
	if tk, ok := TransportKindOf(err); ok {
		switch tk {
		case TransportUnauthorized:
			kind = AuthRejected
		case TransportTimeout, TransportNetwork:
			kind = AuthUnreachable
		}
	}

	return &AuthError{Kind: kind, Phase: phase, Err: err}
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("auth %s %s: %v", e.Phase, e.Kind, e.Err)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

func (e *AuthError) describe() string {
	switch e.Kind {
	case AuthRejected:
		return "authorization failed: the remote API rejected the credentials"
	case AuthUnreachable:
		return "authorization failed: the remote API could not be reached"
	default:
		var te *TransportError
		if errors.As(e.Err, &te) {
			return "authorization failed: " + te.describe()
		}

		return "authorization failed"
	}
}

// FetchResource names the catalog resource being fetched.
type FetchResource string

const (
	FetchArticles   FetchResource = "articles"
	FetchCategories FetchResource = "categories"
)

// FetchError is returned by the catalog fetcher and wraps a TransportError.
type FetchError struct {
	Resource FetchResource
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Resource, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

func (e *FetchError) describe() string {
	var te *TransportError
	if errors.As(e.Err, &te) {
		return fmt.Sprintf("could not fetch %s: %s", e.Resource, te.describe())
	}

	return fmt.Sprintf("could not fetch %s", e.Resource)
}

// SyncError wraps the error of the first failing step of a sync cycle.
// It implements AppError so handlers can render it directly.
type SyncError struct {
	Step entity.SyncStep
	Err  error
}

// NewSyncError labels err with the step that produced it.
func NewSyncError(step entity.SyncStep, err error) *SyncError {
	return &SyncError{Step: step, Err: err}
}

func (e *SyncError) Error() string {
	return fmt.Sprintf("sync failed at %s: %v", e.Step, e.Err)
}

func (e *SyncError) Unwrap() error {
	return e.Err
}

// HTTPCode returns 500 for local persistence failures and 502 for remote ones.
func (e *SyncError) HTTPCode() int {
	switch e.Step {
	case entity.SyncStepPersist, entity.SyncStepMap:
		return http.StatusInternalServerError
	case entity.SyncStepCanceled:
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadGateway
	}
}

// ErrorCode returns the business error code
func (e *SyncError) ErrorCode() string {
	return "SYNC_FAILED"
}

// Message returns a human-readable description of the failure.
func (e *SyncError) Message() string {
	var authErr *AuthError
	var fetchErr *FetchError
	var te *TransportError

	switch {
	case e.Step == entity.SyncStepCanceled:
		return "sync was canceled before completion"
	case e.Step == entity.SyncStepPersist:
		return "could not store the catalog snapshot"
	case e.Step == entity.SyncStepMap:
		return "could not map the remote catalog"
	case errors.As(e.Err, &authErr):
		return authErr.describe()
	case errors.As(e.Err, &fetchErr):
		return fetchErr.describe()
	case errors.As(e.Err, &te):
		return te.describe()
	default:
		return "catalog sync failed"
	}
}

// Details returns the underlying error chain.
func (e *SyncError) Details() string {
	if e.Err == nil {
		return ""
	}

	return e.Err.Error()
}
