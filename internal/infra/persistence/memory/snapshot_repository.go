// Package memory keeps catalog snapshots in process memory.
package memory

import (
	"context"
	"sync"

	"catalogsync/internal/domain/entity"
	"catalogsync/internal/domain/repository"
	"catalogsync/internal/infra/persistence/model"
)

// snapshotRepository stores the encoded form so callers never share memory
// with the store.
type snapshotRepository struct {
	mu        sync.RWMutex
	snapshots map[string][]byte
}

// NewSnapshotRepository creates an empty in-memory store.
func NewSnapshotRepository() repository.SnapshotRepository {
	return &snapshotRepository{
		snapshots: make(map[string][]byte),
	}
}

func (repo *snapshotRepository) Load(ctx context.Context, tenantKey string) (*entity.SyncSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	repo.mu.RLock()
	data, ok := repo.snapshots[tenantKey]
	repo.mu.RUnlock()

	if !ok {
		return entity.EmptySnapshot(tenantKey), nil
	}

	return model.DecodeSnapshot(tenantKey, data)
}

func (repo *snapshotRepository) Save(ctx context.Context, snapshot *entity.SyncSnapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := model.EncodeSnapshot(snapshot)
	if err != nil {
		return err
	}

	repo.mu.Lock()
	repo.snapshots[snapshot.TenantKey] = data
	repo.mu.Unlock()

	return nil
}

func (repo *snapshotRepository) Clear(ctx context.Context, tenantKey string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	repo.mu.Lock()
	delete(repo.snapshots, tenantKey)
	repo.mu.Unlock()

	return nil
}
