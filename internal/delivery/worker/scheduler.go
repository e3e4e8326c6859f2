package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"catalogsync/config"
	"catalogsync/internal/delivery"
	deliverycontext "catalogsync/internal/delivery/context"
	"catalogsync/internal/domain/entity"
	"catalogsync/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// scheduler runs catalog syncs for the configured tenant on a fixed interval.
type scheduler struct {
	interval time.Duration
	onStart  bool
	syncUC   usecase.CatalogSyncUsecase
	logger   *slog.Logger

	stopOnce sync.Once
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// SchedulerParams holds dependencies for the sync scheduler
type SchedulerParams struct {
	fx.In

	Lc            fx.Lifecycle
	Cfg           *config.Config
	Logger        *slog.Logger
	CatalogSyncUC usecase.CatalogSyncUsecase
}

// NewScheduler creates the periodic sync delivery
func NewScheduler(params SchedulerParams) delivery.Delivery {
	s := newScheduler(params.Cfg.Sync, params.CatalogSyncUC, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s
}

func newScheduler(cfg *config.SyncConfig, syncUC usecase.CatalogSyncUsecase, logger *slog.Logger) *scheduler {
	s := &scheduler{
		syncUC: syncUC,
		logger: logger,
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}
	if cfg != nil {
		s.interval = cfg.Interval
		s.onStart = cfg.OnStart
	}

	return s
}

// Serve blocks until the scheduler is stopped or ctx is done.
func (s *scheduler) Serve(ctx context.Context) error {
	defer close(s.doneCh)

	if s.interval <= 0 && !s.onStart {
		s.logger.Info("Sync scheduler disabled")

		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-s.stopCh:
			cancel()
		case <-ctx.Done():
		}
	}()

	if s.onStart {
		s.runOnce(ctx, "startup")
	}
	if s.interval <= 0 {
		return nil
	}

	s.logger.Info("Starting sync scheduler", slog.Duration("interval", s.interval))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			s.runOnce(ctx, "interval")
		}
	}
}

func (s *scheduler) runOnce(ctx context.Context, reason string) {
	requestID := uuid.New().String()
	logger := s.logger.With(
		slog.String("request_id", requestID),
		slog.String("reason", reason),
	)
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, logger)
	ctx = deliverycontext.WithSyncTrigger(ctx, deliverycontext.TriggerScheduler)

	result, err := s.syncUC.Sync(ctx, entity.SyncRequest{})
	if err != nil {
		logger.Warn("[Scheduler] Scheduled sync failed", slog.Any("error", err))

		return
	}

	logger.Info("[Scheduler] Scheduled sync finished",
		slog.String("tenant_key", result.TenantKey),
		slog.Int64("version", result.Version),
		slog.Bool("coalesced", result.Coalesced),
	)
}

// stop ends the ticker loop and waits for an in-flight run to return.
func (s *scheduler) stop(ctx context.Context) error {
	s.stopOnce.Do(func() { close(s.stopCh) })

	s.logger.Info("Stopping sync scheduler")

	select {
	case <-s.doneCh:
	case <-ctx.Done():
	}

	return nil
}
