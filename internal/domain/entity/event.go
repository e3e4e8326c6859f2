package entity

import "time"

// SyncEvent is published on every sync status transition.
type SyncEvent struct {
	RunID      string     `json:"run_id"`
	TenantKey  string     `json:"tenant_key"`
	Status     SyncStatus `json:"status"`
	Step       SyncStep   `json:"step,omitempty"`
	Error      string     `json:"error,omitempty"`
	Version    int64      `json:"version"`
	Articles   int        `json:"articles"`
	Categories int        `json:"categories"`
	Trigger    string     `json:"trigger,omitempty"`
	OccurredAt time.Time  `json:"occurred_at"`
}
