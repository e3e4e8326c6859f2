// Package persistence selects the snapshot store backend from configuration.
package persistence

import (
	"context"
	"log/slog"

	"catalogsync/config"
	"catalogsync/internal/domain/constants"
	"catalogsync/internal/domain/repository"
	"catalogsync/internal/errors"
	"catalogsync/internal/infra/persistence/blob"
	"catalogsync/internal/infra/persistence/memory"
	"catalogsync/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

// Params holds dependencies for the snapshot store, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewSnapshotRepository builds the store named by snapshot.driver.
func NewSnapshotRepository(params Params) (repository.SnapshotRepository, error) {
	cfg := params.Config.Snapshot
	logger := params.Logger

	driver := constants.SnapshotDriverMemory
	if cfg != nil && cfg.Driver != "" {
		driver = cfg.Driver
	}

	switch driver {
	case constants.SnapshotDriverMemory:
		logger.Info("Using in-memory snapshot store")

		return memory.NewSnapshotRepository(), nil

	case constants.SnapshotDriverBlob:
		if cfg.BucketURL == "" {
			return nil, errors.New("bucket URL is required for blob snapshot driver")
		}
		logger.Info("Using blob snapshot store",
			slog.String("bucket_url", cfg.BucketURL),
			slog.String("key_prefix", cfg.KeyPrefix),
		)

		repo, err := blob.Open(params.Ctx, cfg.BucketURL, cfg.KeyPrefix, logger)
		if err != nil {
			return nil, err
		}
		params.Lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				logger.Info("Closing snapshot bucket")

				return repo.Close()
			},
		})

		return repo, nil

	case constants.SnapshotDriverPostgres:
		logger.Info("Using PostgreSQL snapshot store")

		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    logger,
		})
		if err != nil {
			return nil, err
		}

		return postgres.NewSnapshotRepository(db), nil

	default:
		return nil, errors.Errorf("unknown snapshot driver: %s", driver)
	}
}

// Module provides the snapshot store FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewSnapshotRepository),
)
