package repository

import (
	"context"

	"catalogsync/internal/domain/entity"
)

// SnapshotRepository persists one catalog snapshot per tenant key.
//
// Save replaces the stored snapshot atomically: a failed Save leaves the
// previous snapshot readable. Load returns entity.EmptySnapshot when nothing
// has been stored. Clear is idempotent.
type SnapshotRepository interface {
	Load(ctx context.Context, tenantKey string) (*entity.SyncSnapshot, error)
	Save(ctx context.Context, snapshot *entity.SyncSnapshot) error
	Clear(ctx context.Context, tenantKey string) error
}
