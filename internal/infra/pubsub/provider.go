package pubsub

import (
	"context"
	"log/slog"
	"slices"

	"catalogsync/config"
	"catalogsync/internal/domain/constants"
	"catalogsync/internal/domain/entity"
	"catalogsync/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopPublisher drops events when no provider is configured
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishSyncEvent(ctx context.Context, event *entity.SyncEvent) error {
	p.logger.DebugContext(ctx, "[NoopPubSub] Sync event dropped",
		slog.String("tenant_key", event.TenantKey),
		slog.String("status", event.Status.String()),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// statusFilter forwards only the sync statuses listed in pubsub.events
type statusFilter struct {
	next     service.SyncEventPublisher
	statuses []entity.SyncStatus
}

func (f *statusFilter) PublishSyncEvent(ctx context.Context, event *entity.SyncEvent) error {
	if !slices.Contains(f.statuses, event.Status) {
		return nil
	}

	return f.next.PublishSyncEvent(ctx, event)
}

func (f *statusFilter) Close() error {
	return f.next.Close()
}

// PublisherParams holds dependencies for SyncEventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewSyncEventPublisher selects the sync event sink named by pubsub.provider
func NewSyncEventPublisher(params PublisherParams) (service.SyncEventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	if cfg == nil || cfg.Provider == constants.PubSubProviderNone {
		logger.Info("PubSub not configured, sync events are dropped")

		return &noopPublisher{logger: logger}, nil
	}

	statuses, err := parseStatuses(cfg.Events)
	if err != nil {
		return nil, err
	}

	publisher, err := newProviderPublisher(params.Ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing SyncEventPublisher", slog.String("provider", cfg.Provider))

			return publisher.Close()
		},
	})

	if len(statuses) > 0 {
		return &statusFilter{next: publisher, statuses: statuses}, nil
	}

	return publisher, nil
}

func newProviderPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.SyncEventPublisher, error) {
	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Publishing sync events to local push endpoint",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}

		return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, cfg.CredentialsPath, logger)

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}
}

func parseStatuses(names []string) ([]entity.SyncStatus, error) {
	statuses := make([]entity.SyncStatus, 0, len(names))
	for _, name := range names {
		status := entity.SyncStatus(name)
		switch status {
		case entity.SyncStatusSyncing, entity.SyncStatusSynced, entity.SyncStatusError:
			statuses = append(statuses, status)
		default:
			return nil, errors.Errorf("pubsub.events: unknown sync status %q", name)
		}
	}

	return statuses, nil
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewSyncEventPublisher),
)
