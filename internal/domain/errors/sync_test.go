package errors

import (
	"context"
	"net/http"
	"testing"

	"catalogsync/internal/domain/entity"
	"catalogsync/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAuthError_Classification(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want AuthKind
	}{
		{name: "unauthorized", err: NewTransportError(TransportUnauthorized, "/authUser/login", nil), want: AuthRejected},
		{name: "timeout", err: NewTransportError(TransportTimeout, "/authUser/login", context.DeadlineExceeded), want: AuthUnreachable},
		{name: "network", err: NewTransportError(TransportNetwork, "/authUser/login", nil), want: AuthUnreachable},
		{name: "server error", err: &TransportError{Kind: TransportServerError, StatusCode: 500, StatusText: "Internal Server Error"}, want: AuthFailed},
		{name: "malformed", err: NewTransportError(TransportMalformed, "/authUser/login", nil), want: AuthFailed},
		{name: "not transport", err: errors.New("boom"), want: AuthFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authErr := NewAuthError(AuthPhaseLogin, errors.Wrap(tt.err, "wrapped"))
			assert.Equal(t, tt.want, authErr.Kind)
			assert.ErrorIs(t, authErr, tt.err)
		})
	}
}

func TestSyncError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  *SyncError
		want string
	}{
		{
			name: "rejected login",
			err:  NewSyncError(entity.SyncStepAuthenticate, NewAuthError(AuthPhaseLogin, NewTransportError(TransportUnauthorized, "/authUser/login", nil))),
			want: "authorization failed: the remote API rejected the credentials",
		},
		{
			name: "unreachable login",
			err:  NewSyncError(entity.SyncStepAuthenticate, NewAuthError(AuthPhaseLogin, NewTransportError(TransportNetwork, "/authUser/login", nil))),
			want: "authorization failed: the remote API could not be reached",
		},
		{
			name: "article timeout",
			err: NewSyncError(entity.SyncStepFetchArticles, &FetchError{
				Resource: FetchArticles,
				Err:      NewTransportError(TransportTimeout, "/catalog/article/get", context.DeadlineExceeded),
			}),
			want: "could not fetch articles: the remote API did not respond in time",
		},
		{
			name: "category server error",
			err: NewSyncError(entity.SyncStepFetchCategories, &FetchError{
				Resource: FetchCategories,
				Err:      &TransportError{Kind: TransportServerError, StatusCode: 503, StatusText: "Service Unavailable"},
			}),
			want: "could not fetch categories: the remote API returned an error (503 Service Unavailable)",
		},
		{
			name: "persist",
			err:  NewSyncError(entity.SyncStepPersist, errors.New("disk full")),
			want: "could not store the catalog snapshot",
		},
		{
			name: "canceled",
			err:  NewSyncError(entity.SyncStepCanceled, context.Canceled),
			want: "sync was canceled before completion",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Message())
			assert.Equal(t, "SYNC_FAILED", tt.err.ErrorCode())
			assert.NotEmpty(t, tt.err.Details())
		})
	}
}

func TestSyncError_HTTPCode(t *testing.T) {
	assert.Equal(t, http.StatusBadGateway, NewSyncError(entity.SyncStepAuthenticate, nil).HTTPCode())
	assert.Equal(t, http.StatusBadGateway, NewSyncError(entity.SyncStepFetchArticles, nil).HTTPCode())
	assert.Equal(t, http.StatusInternalServerError, NewSyncError(entity.SyncStepPersist, nil).HTTPCode())
	assert.Equal(t, http.StatusServiceUnavailable, NewSyncError(entity.SyncStepCanceled, nil).HTTPCode())
}

func TestSyncError_ImplementsAppError(t *testing.T) {
	var err error = errors.Wrap(NewSyncError(entity.SyncStepMap, errors.New("bad")), "sync")

	var appErr AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPCode())

	kind, ok := TransportKindOf(err)
	assert.False(t, ok)
	assert.Empty(t, kind)
}

func TestBaseError_IsMatchesDetailedCopy(t *testing.T) {
	detailed := ErrSyncInProgress.WithDetails("company-1")

	assert.ErrorIs(t, detailed, ErrSyncInProgress)
	assert.NotErrorIs(t, detailed, ErrSyncUnavailable)
}

func TestStoreError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewSyncError(entity.SyncStepPersist, NewStoreError("postgres", StoreOpSave, "company-7", cause))

	var storeErr *StoreError
	require.True(t, errors.As(err, &storeErr))
	assert.Equal(t, StoreOpSave, storeErr.Op)
	assert.ErrorIs(t, err, cause)

	assert.Equal(t, http.StatusInternalServerError, storeErr.HTTPCode())
	assert.Equal(t, "SNAPSHOT_STORE_FAILED", storeErr.ErrorCode())
	assert.Equal(t, "could not save the catalog snapshot", storeErr.Message())
	assert.Equal(t, "postgres backend, tenant company-7", storeErr.Details())
	assert.Equal(t, "could not store the catalog snapshot", err.Message())
}
