package service

import (
	"context"

	"catalogsync/internal/domain/entity"
)

// SyncEventPublisher publishes sync status transitions to a message queue
type SyncEventPublisher interface {
	// PublishSyncEvent publishes one status transition
	PublishSyncEvent(ctx context.Context, event *entity.SyncEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
