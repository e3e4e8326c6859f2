package usecase

import (
	"context"

	"catalogsync/internal/domain/entity"
)

// CatalogSyncUsecase defines the catalog synchronization use cases.
// A zero companyID selects the configured company.
type CatalogSyncUsecase interface {
	// Sync runs one sync cycle for the requested tenant. Concurrent calls for the
	// same tenant and fiscal year share a single cycle; a call for another fiscal
	// year while a cycle runs fails with ErrSyncInProgress. A failed cycle returns
	// its result together with a *errors.SyncError.
	Sync(ctx context.Context, req entity.SyncRequest) (*entity.SyncResult, error)

	// GetSnapshot returns a copy of the stored snapshot with the live status overlaid.
	GetSnapshot(ctx context.Context, companyID int) (*entity.SyncSnapshot, error)

	// GetStatus returns the read-only status surface of a tenant.
	GetStatus(ctx context.Context, companyID int) (*entity.SyncStatusView, error)

	// Clear drops the stored snapshot and resets the tenant to idle.
	Clear(ctx context.Context, companyID int) error

	// Shutdown cancels in-flight syncs and waits for them to return, bounded by ctx.
	// Their results are never written.
	Shutdown(ctx context.Context) error
}
