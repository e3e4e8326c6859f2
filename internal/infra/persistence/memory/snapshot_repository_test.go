package memory

import (
	"context"
	"testing"
	"time"

	"catalogsync/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRepository_LoadEmpty(t *testing.T) {
	repo := NewSnapshotRepository()

	got, err := repo.Load(context.Background(), "company-1")
	require.NoError(t, err)
	assert.Equal(t, entity.SyncStatusIdle, got.Status)
	assert.Equal(t, "company-1", got.TenantKey)
	assert.Empty(t, got.Articles)
	assert.Zero(t, got.Version)
}

func TestSnapshotRepository_SaveReplacesAndIsolates(t *testing.T) {
	ctx := context.Background()
	repo := NewSnapshotRepository()

	first := &entity.SyncSnapshot{
		TenantKey: "company-1",
		Articles:  []entity.Article{{ID: "1", Name: "Burek"}},
		Version:   1,
		Status:    entity.SyncStatusSynced,
		LastSync:  time.Now().UTC(),
	}
	require.NoError(t, repo.Save(ctx, first))

	// Mutating the caller's copy must not leak into the store.
	first.Articles[0].Name = "mutated"

	got, err := repo.Load(ctx, "company-1")
	require.NoError(t, err)
	assert.Equal(t, "Burek", got.Articles[0].Name)

	second := &entity.SyncSnapshot{TenantKey: "company-1", Version: 2, Status: entity.SyncStatusSynced}
	require.NoError(t, repo.Save(ctx, second))

	got, err = repo.Load(ctx, "company-1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.Version)
	assert.Empty(t, got.Articles)

	other, err := repo.Load(ctx, "company-2")
	require.NoError(t, err)
	assert.Zero(t, other.Version)
}

func TestSnapshotRepository_ClearIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := NewSnapshotRepository()

	require.NoError(t, repo.Save(ctx, &entity.SyncSnapshot{TenantKey: "company-1", Version: 1}))
	require.NoError(t, repo.Clear(ctx, "company-1"))
	require.NoError(t, repo.Clear(ctx, "company-1"))

	got, err := repo.Load(ctx, "company-1")
	require.NoError(t, err)
	assert.Zero(t, got.Version)
}

func TestSnapshotRepository_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	repo := NewSnapshotRepository()
	assert.ErrorIs(t, repo.Save(ctx, &entity.SyncSnapshot{TenantKey: "company-1"}), context.Canceled)
}
