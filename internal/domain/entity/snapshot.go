package entity

import "time"

// SyncStatus is the lifecycle state of a tenant's catalog sync.
type SyncStatus string

const (
	SyncStatusIdle    SyncStatus = "idle"
	SyncStatusSyncing SyncStatus = "syncing"
	SyncStatusSynced  SyncStatus = "synced"
	SyncStatusError   SyncStatus = "error"
)

// String returns the string representation of the SyncStatus.
func (s SyncStatus) String() string {
	return string(s)
}

// SyncStep labels the stage of a sync cycle that produced an error.
type SyncStep string

const (
	SyncStepAuthenticate    SyncStep = "authenticate"
	SyncStepSelectTenant    SyncStep = "select_tenant"
	SyncStepFetchArticles   SyncStep = "fetch_articles"
	SyncStepFetchCategories SyncStep = "fetch_categories"
	SyncStepMap             SyncStep = "map"
	SyncStepPersist         SyncStep = "persist"
	SyncStepCanceled        SyncStep = "canceled"
)

// String returns the string representation of the SyncStep.
func (s SyncStep) String() string {
	return string(s)
}

// SyncSnapshot is the persisted, versioned result of the last successful sync
// for one tenant. Readers always get a copy.
type SyncSnapshot struct {
	TenantKey  string     `json:"tenantKey"`
	Tenant     *Tenant    `json:"tenant,omitempty"`
	Articles   []Article  `json:"articles"`
	Categories []Category `json:"categories"`
	LastSync   time.Time  `json:"lastSync,omitzero"`
	Version    int64      `json:"version"`
	Status     SyncStatus `json:"status"`
	Step       SyncStep   `json:"step,omitempty"`
	Error      string     `json:"error,omitempty"`
}

// EmptySnapshot is the snapshot of a tenant that was never synced.
func EmptySnapshot(tenantKey string) *SyncSnapshot {
	return &SyncSnapshot{
		TenantKey:  tenantKey,
		Articles:   []Article{},
		Categories: []Category{},
		Status:     SyncStatusIdle,
	}
}

// IsSynced reports whether the snapshot holds data from a completed sync.
func (s *SyncSnapshot) IsSynced() bool {
	return s.Version > 0 && !s.LastSync.IsZero()
}

// Age returns the time elapsed since the last successful sync, or zero if never synced.
func (s *SyncSnapshot) Age(now time.Time) time.Duration {
	if s.LastSync.IsZero() {
		return 0
	}

	return now.Sub(s.LastSync)
}

// Clone returns a deep copy of the snapshot.
func (s *SyncSnapshot) Clone() *SyncSnapshot {
	if s == nil {
		return nil
	}

	out := *s
	if s.Tenant != nil {
		tenant := *s.Tenant
		out.Tenant = &tenant
	}

	out.Articles = make([]Article, len(s.Articles))
	for i, article := range s.Articles {
		out.Articles[i] = article.Clone()
	}

	out.Categories = make([]Category, len(s.Categories))
	for i, category := range s.Categories {
		out.Categories[i] = category.Clone()
	}

	return &out
}

// SyncRequest selects the tenant and fiscal context of a sync cycle.
// Zero values fall back to the configured company and the current year.
type SyncRequest struct {
	CompanyID  int `json:"companyId"`
	FiscalYear int `json:"fiscalYear"`
}

// SyncResult describes one completed sync cycle.
type SyncResult struct {
	RunID      string     `json:"runId"`
	TenantKey  string     `json:"tenantKey"`
	Status     SyncStatus `json:"status"`
	Step       SyncStep   `json:"step,omitempty"`
	Error      string     `json:"error,omitempty"`
	Articles   int        `json:"articles"`
	Categories int        `json:"categories"`
	Version    int64      `json:"version"`
	Truncated  bool       `json:"truncated"`
	Coalesced  bool       `json:"coalesced"`
	StartedAt  time.Time  `json:"startedAt"`
	FinishedAt time.Time  `json:"finishedAt"`
}

// SyncState is the in-memory status of a tenant, overlaid on the stored snapshot.
type SyncState struct {
	Status    SyncStatus
	Step      SyncStep
	Error     string
	RunID     string
	StartedAt time.Time
}

// SyncStatusView is the read-only status surface used for UI fallback.
type SyncStatusView struct {
	TenantKey  string     `json:"tenantKey"`
	Status     SyncStatus `json:"status"`
	Step       SyncStep   `json:"step,omitempty"`
	Error      string     `json:"error,omitempty"`
	LastSync   time.Time  `json:"lastSync,omitzero"`
	Age        string     `json:"age,omitempty"`
	Version    int64      `json:"version"`
	Articles   int        `json:"articles"`
	Categories int        `json:"categories"`
}
