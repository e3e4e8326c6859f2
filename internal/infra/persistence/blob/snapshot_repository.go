// Package blob stores catalog snapshots as JSON objects in a gocloud.dev bucket.
package blob

import (
	"context"
	"log/slog"
	"strings"

	"catalogsync/internal/domain/entity"
	domainerrors "catalogsync/internal/domain/errors"
	"catalogsync/internal/domain/repository"
	"catalogsync/internal/errors"
	"catalogsync/internal/infra/persistence/model"
	"catalogsync/internal/util"

	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	// Bucket drivers selectable through the bucket URL scheme.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
)

const (
	backendName     = "blob"
	contentTypeJSON = "application/json"
)

// SnapshotRepository keeps one object per tenant key under a key prefix.
type SnapshotRepository struct {
	bucket *blob.Bucket
	prefix string
	logger *slog.Logger
}

var _ repository.SnapshotRepository = (*SnapshotRepository)(nil)

// Open opens the bucket at bucketURL (file://, s3://, gs://, mem://).
func Open(ctx context.Context, bucketURL, prefix string, logger *slog.Logger) (*SnapshotRepository, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open snapshot bucket %s", bucketURL)
	}

	return NewSnapshotRepository(bucket, prefix, logger), nil
}

// NewSnapshotRepository wraps an already opened bucket.
func NewSnapshotRepository(bucket *blob.Bucket, prefix string, logger *slog.Logger) *SnapshotRepository {
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}

	return &SnapshotRepository{
		bucket: bucket,
		prefix: prefix,
		logger: logger,
	}
}

func (repo *SnapshotRepository) objectKey(tenantKey string) string {
	return repo.prefix + tenantKey + ".json"
}

func (repo *SnapshotRepository) Load(ctx context.Context, tenantKey string) (*entity.SyncSnapshot, error) {
	data, err := repo.bucket.ReadAll(ctx, repo.objectKey(tenantKey))
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return entity.EmptySnapshot(tenantKey), nil
		}

		return nil, domainerrors.NewStoreError(backendName, domainerrors.StoreOpLoad, tenantKey, err)
	}

	return model.DecodeSnapshot(tenantKey, data)
}

// Save writes the whole object. The write is committed on close, so an
// aborted write leaves the previous object in place.
func (repo *SnapshotRepository) Save(ctx context.Context, snapshot *entity.SyncSnapshot) error {
	data, err := model.EncodeSnapshot(snapshot)
	if err != nil {
		return err
	}

	key := repo.objectKey(snapshot.TenantKey)
	if err := repo.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{ContentType: contentTypeJSON}); err != nil {
		return domainerrors.NewStoreError(backendName, domainerrors.StoreOpSave, snapshot.TenantKey, err)
	}

	repo.logger.DebugContext(ctx, "snapshot object written",
		slog.String("key", key),
		slog.String("size", util.FormatBytes(int64(len(data)))),
		slog.String("sha256", util.Checksum(data)),
		slog.Int64("version", snapshot.Version),
	)

	return nil
}

func (repo *SnapshotRepository) Clear(ctx context.Context, tenantKey string) error {
	if err := repo.bucket.Delete(ctx, repo.objectKey(tenantKey)); err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return domainerrors.NewStoreError(backendName, domainerrors.StoreOpClear, tenantKey, err)
	}

	return nil
}

// Close releases the bucket.
func (repo *SnapshotRepository) Close() error {
	return repo.bucket.Close()
}
