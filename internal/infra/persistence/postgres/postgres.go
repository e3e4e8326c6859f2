// Package postgres stores catalog snapshots in PostgreSQL through GORM.
package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"catalogsync/config"
	"catalogsync/internal/domain/lifecycle"
	"catalogsync/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the PostgreSQL connection. Start pings the server and applies the
// snapshot migrations; stop closes the pool.
func New(params Params) (*gorm.DB, error) {
	if params.Config.Postgres == nil {
		return nil, errors.New("postgres section is not configured")
	}

	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Snapshot writes open their own transaction.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config.Env.Debug),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}
			if err := runMigrations(ctx, sqlDB, params.Logger); err != nil {
				return err
			}

			go newPoolMonitor(params.Logger, sqlDB.Stats).run(monitorCtx, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// poolMonitor reports connection waits of the snapshot pool between samples.
type poolMonitor struct {
	logger        *slog.Logger
	stats         func() sql.DBStats
	warnThreshold time.Duration
	prev          sql.DBStats
}

func newPoolMonitor(logger *slog.Logger, stats func() sql.DBStats) *poolMonitor {
	return &poolMonitor{
		logger:        logger,
		stats:         stats,
		warnThreshold: dbPoolWarnDurationThreshold,
		prev:          stats(),
	}
}

func (m *poolMonitor) run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.sample(ctx)
		}
	}
}

// sample logs when callers waited for a connection since the previous sample.
// It returns the level used, or false when nothing waited.
func (m *poolMonitor) sample(ctx context.Context) (slog.Level, bool) {
	cur := m.stats()
	waits := cur.WaitCount - m.prev.WaitCount
	waited := cur.WaitDuration - m.prev.WaitDuration
	m.prev = cur

	if waits <= 0 {
		return 0, false
	}

	level := slog.LevelDebug
	saturated := cur.MaxOpenConnections > 0 && cur.InUse >= cur.MaxOpenConnections
	if waited >= m.warnThreshold || saturated {
		level = slog.LevelWarn
	}
	m.logger.LogAttrs(ctx, level, "snapshot db pool wait",
		slog.Int64("waits", waits),
		slog.Duration("avgWait", waited/time.Duration(waits)),
		slog.Int("inUse", cur.InUse),
		slog.Int("idle", cur.Idle),
		slog.Int("maxOpen", cur.MaxOpenConnections),
	)

	return level, true
}
