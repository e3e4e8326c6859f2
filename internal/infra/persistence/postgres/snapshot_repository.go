package postgres

import (
	"context"
	"time"

	"catalogsync/internal/domain/entity"
	domainerrors "catalogsync/internal/domain/errors"
	"catalogsync/internal/domain/repository"
	"catalogsync/internal/errors"
	"catalogsync/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const backendName = "postgres"

// snapshotRepository implements repository.SnapshotRepository on one row per tenant.
type snapshotRepository struct {
	db *gorm.DB
}

// NewSnapshotRepository is the constructor for snapshotRepository.
func NewSnapshotRepository(db *gorm.DB) repository.SnapshotRepository {
	return &snapshotRepository{
		db: db,
	}
}

// Load returns the stored snapshot or an idle empty one.
func (repo *snapshotRepository) Load(ctx context.Context, tenantKey string) (*entity.SyncSnapshot, error) {
	var row model.SnapshotModel

	if err := repo.db.WithContext(ctx).
		Where("tenant_key = ?", tenantKey).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entity.EmptySnapshot(tenantKey), nil
		}

		return nil, domainerrors.NewStoreError(backendName, domainerrors.StoreOpLoad, tenantKey, err)
	}

	return model.FromSnapshotModel(&row)
}

// Save upserts the row inside a transaction, so readers see either the old
// snapshot or the new one.
func (repo *snapshotRepository) Save(ctx context.Context, snapshot *entity.SyncSnapshot) error {
	row, err := model.ToSnapshotModel(snapshot)
	if err != nil {
		return err
	}
	row.UpdatedAt = time.Now().UTC()

	err = repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "tenant_key"}},
			UpdateAll: true,
		}).Create(row).Error
	})
	if err != nil {
		if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) {
			return domainerrors.NewStoreError(backendName, domainerrors.StoreOpSave, snapshot.TenantKey,
				errors.Wrap(domainerrors.ErrValidationFailed.WithDetails(err.Error()), "snapshot row rejected"))
		}

		return domainerrors.NewStoreError(backendName, domainerrors.StoreOpSave, snapshot.TenantKey, err)
	}

	return nil
}

// Clear deletes the row; a missing row is not an error.
func (repo *snapshotRepository) Clear(ctx context.Context, tenantKey string) error {
	if err := repo.db.WithContext(ctx).
		Where("tenant_key = ?", tenantKey).
		Delete(&model.SnapshotModel{}).Error; err != nil {
		return domainerrors.NewStoreError(backendName, domainerrors.StoreOpClear, tenantKey, err)
	}

	return nil
}
