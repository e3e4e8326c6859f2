package model

import (
	"testing"
	"time"

	"catalogsync/internal/domain/entity"
	domainerrors "catalogsync/internal/domain/errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotModel_RoundTripKeepsDecimalsAndPointers(t *testing.T) {
	sale := decimal.RequireFromString("3.20")
	parent := "1"
	override := false
	snapshot := &entity.SyncSnapshot{
		TenantKey: "company-1",
		Tenant:    &entity.Tenant{ID: 1, Name: "Apetit"},
		Articles: []entity.Article{{
			ID: "10", Price: decimal.RequireFromString("4.50"), SalePrice: &sale,
			InStockOverride: &override, Images: []string{"/a.jpg"},
		}},
		Categories: []entity.Category{{ID: "2", ParentID: &parent}},
		LastSync:   time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Version:    4,
		Status:     entity.SyncStatusSynced,
	}

	row, err := ToSnapshotModel(snapshot)
	require.NoError(t, err)
	assert.Equal(t, "company-1", row.TenantKey)
	assert.Equal(t, int64(4), row.Version)
	assert.Equal(t, "synced", row.Status)
	assert.Equal(t, 1, row.ArticleCount)
	assert.Equal(t, 1, row.CategoryCount)

	got, err := FromSnapshotModel(row)
	require.NoError(t, err)
	assert.True(t, got.Articles[0].Price.Equal(snapshot.Articles[0].Price))
	require.NotNil(t, got.Articles[0].SalePrice)
	assert.True(t, got.Articles[0].SalePrice.Equal(sale))
	require.NotNil(t, got.Articles[0].InStockOverride)
	assert.False(t, *got.Articles[0].InStockOverride)
	assert.Equal(t, "1", *got.Categories[0].ParentID)
	assert.True(t, got.LastSync.Equal(snapshot.LastSync))
	assert.Equal(t, "Apetit", got.Tenant.Name)
}

func TestDecodeSnapshot_CorruptPayload(t *testing.T) {
	_, err := DecodeSnapshot("company-1", []byte(`{"articles": [`))
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrSnapshotCorrupted)
}

func TestDecodeSnapshot_FillsMissingCollections(t *testing.T) {
	got, err := DecodeSnapshot("company-1", []byte(`{"version": 1}`))
	require.NoError(t, err)
	assert.Equal(t, "company-1", got.TenantKey)
	assert.NotNil(t, got.Articles)
	assert.NotNil(t, got.Categories)
}

func TestEncodeSnapshot_RequiresKey(t *testing.T) {
	_, err := EncodeSnapshot(&entity.SyncSnapshot{})
	assert.Error(t, err)

	_, err = EncodeSnapshot(nil)
	assert.Error(t, err)
}
