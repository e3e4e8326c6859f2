package postgres

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"catalogsync/internal/domain/entity"
	domainerrors "catalogsync/internal/domain/errors"
	"catalogsync/internal/infra/persistence/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.SnapshotModel{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

func sampleSnapshot(version int64) *entity.SyncSnapshot {
	return &entity.SyncSnapshot{
		TenantKey: "company-1",
		Tenant:    &entity.Tenant{ID: 1, Name: "Apetit"},
		Articles: []entity.Article{
			{ID: "10", Name: "Burek", Price: decimal.RequireFromString("4.5"), Images: []string{}},
		},
		Categories: []entity.Category{{ID: "1", Name: "Hrana", Slug: "hrana"}},
		LastSync:   time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC),
		Version:    version,
		Status:     entity.SyncStatusSynced,
	}
}

func TestSnapshotRepository_LoadMissing(t *testing.T) {
	repo := NewSnapshotRepository(newTestDB(t))

	got, err := repo.Load(context.Background(), "company-1")
	require.NoError(t, err)
	assert.Equal(t, entity.SyncStatusIdle, got.Status)
	assert.Zero(t, got.Version)
}

func TestSnapshotRepository_SaveUpserts(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewSnapshotRepository(db)

	require.NoError(t, repo.Save(ctx, sampleSnapshot(1)))

	second := sampleSnapshot(2)
	second.Articles = append(second.Articles, entity.Article{ID: "11", Name: "Sok"})
	require.NoError(t, repo.Save(ctx, second))

	var count int64
	require.NoError(t, db.Model(&model.SnapshotModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	var row model.SnapshotModel
	require.NoError(t, db.First(&row, "tenant_key = ?", "company-1").Error)
	assert.Equal(t, int64(2), row.Version)
	assert.Equal(t, 2, row.ArticleCount)

	got, err := repo.Load(ctx, "company-1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.Version)
	require.Len(t, got.Articles, 2)
	assert.True(t, got.Articles[0].Price.Equal(decimal.RequireFromString("4.5")))
	assert.Equal(t, "Apetit", got.Tenant.Name)
}

func TestSnapshotRepository_Clear(t *testing.T) {
	ctx := context.Background()
	repo := NewSnapshotRepository(newTestDB(t))

	require.NoError(t, repo.Save(ctx, sampleSnapshot(1)))
	require.NoError(t, repo.Clear(ctx, "company-1"))
	require.NoError(t, repo.Clear(ctx, "company-1"))

	got, err := repo.Load(ctx, "company-1")
	require.NoError(t, err)
	assert.Zero(t, got.Version)
}

func TestSnapshotRepository_CorruptPayload(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewSnapshotRepository(db)

	require.NoError(t, db.Create(&model.SnapshotModel{
		TenantKey: "company-1",
		Version:   1,
		Status:    "synced",
		Payload:   "{broken",
	}).Error)

	_, err := repo.Load(ctx, "company-1")
	assert.ErrorIs(t, err, domainerrors.ErrSnapshotCorrupted)
}
