package model

import (
	"time"
)

// SnapshotModel is the GORM-specific struct for the 'catalog_snapshots' table.
// One row holds the whole serialised snapshot of a tenant.
type SnapshotModel struct {
	TenantKey     string    `gorm:"column:tenant_key;type:varchar(64);primaryKey"`
	Version       int64     `gorm:"column:version;not null"`
	Status        string    `gorm:"column:status;type:varchar(16);not null"`
	ArticleCount  int       `gorm:"column:article_count;not null;default:0"`
	CategoryCount int       `gorm:"column:category_count;not null;default:0"`
	LastSync      time.Time `gorm:"column:last_sync"`
	Payload       string    `gorm:"column:payload;type:jsonb;not null"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

// TableName explicitly sets the table name for GORM.
func (SnapshotModel) TableName() string {
	return "catalog_snapshots"
}
