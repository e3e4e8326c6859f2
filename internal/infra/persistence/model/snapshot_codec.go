package model

import (
	"encoding/json"

	"catalogsync/internal/domain/entity"
	domainerrors "catalogsync/internal/domain/errors"
	"catalogsync/internal/errors"
)

// EncodeSnapshot serialises a snapshot into its stored JSON form.
func EncodeSnapshot(snapshot *entity.SyncSnapshot) ([]byte, error) {
	if snapshot == nil {
		return nil, errors.New("nil snapshot")
	}
	if snapshot.TenantKey == "" {
		return nil, errors.New("snapshot has no tenant key")
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		return nil, errors.Wrap(err, "encode snapshot")
	}

	return data, nil
}

// DecodeSnapshot parses stored JSON. Corrupt data is reported, never treated as empty.
func DecodeSnapshot(tenantKey string, data []byte) (*entity.SyncSnapshot, error) {
	var snapshot entity.SyncSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, errors.Wrap(domainerrors.ErrSnapshotCorrupted.WithDetails(err.Error()), tenantKey)
	}

	if snapshot.TenantKey == "" {
		snapshot.TenantKey = tenantKey
	}
	if snapshot.Articles == nil {
		snapshot.Articles = []entity.Article{}
	}
	if snapshot.Categories == nil {
		snapshot.Categories = []entity.Category{}
	}

	return &snapshot, nil
}

// ToSnapshotModel builds the table row for a snapshot.
func ToSnapshotModel(snapshot *entity.SyncSnapshot) (*SnapshotModel, error) {
	payload, err := EncodeSnapshot(snapshot)
	if err != nil {
		return nil, err
	}

	return &SnapshotModel{
		TenantKey:     snapshot.TenantKey,
		Version:       snapshot.Version,
		Status:        snapshot.Status.String(),
		ArticleCount:  len(snapshot.Articles),
		CategoryCount: len(snapshot.Categories),
		LastSync:      snapshot.LastSync,
		Payload:       string(payload),
	}, nil
}

// FromSnapshotModel decodes a table row.
func FromSnapshotModel(m *SnapshotModel) (*entity.SyncSnapshot, error) {
	return DecodeSnapshot(m.TenantKey, []byte(m.Payload))
}
