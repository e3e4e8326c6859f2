package impl

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"catalogsync/config"
	"catalogsync/internal/domain/entity"
	domainerrors "catalogsync/internal/domain/errors"
	"catalogsync/internal/errors"
	mockRepo "catalogsync/internal/mocks/repository"
	mockSvc "catalogsync/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testCompanyID = 7

var testNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

type syncMocks struct {
	sessions  *mockSvc.MockSessionManager
	fetcher   *mockSvc.MockCatalogFetcher
	mapper    *mockSvc.MockCatalogMapper
	store     *mockRepo.MockSnapshotRepository
	publisher *mockSvc.MockSyncEventPublisher

	mu     sync.Mutex
	events []entity.SyncStatus
}

func (m *syncMocks) statuses() []entity.SyncStatus {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]entity.SyncStatus(nil), m.events...)
}

func newTestConfig() *config.Config {
	return &config.Config{
		Remote: &config.RemoteConfig{
			BaseURL:      "http://remote.invalid",
			Username:     "demo",
			Password:     "secret",
			CompanyID:    testCompanyID,
			FiscalYear:   2026,
			ArticleLimit: 100,
		},
		Sync: &config.SyncConfig{},
	}
}

func newTestSyncService(t *testing.T, cfg *config.Config) (*catalogSyncService, *syncMocks) {
	t.Helper()

	m := &syncMocks{
		sessions:  mockSvc.NewMockSessionManager(t),
		fetcher:   mockSvc.NewMockCatalogFetcher(t),
		mapper:    mockSvc.NewMockCatalogMapper(t),
		store:     mockRepo.NewMockSnapshotRepository(t),
		publisher: mockSvc.NewMockSyncEventPublisher(t),
	}
	m.publisher.EXPECT().
		PublishSyncEvent(mock.Anything, mock.Anything).
		Run(func(_ context.Context, event *entity.SyncEvent) {
			m.mu.Lock()
			m.events = append(m.events, event.Status)
			m.mu.Unlock()
		}).
		Return(nil).
		Maybe()

	svc := newCatalogSyncService(CatalogSyncParams{
		Config:    cfg,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		Sessions:  m.sessions,
		Fetcher:   m.fetcher,
		Mapper:    m.mapper,
		Store:     m.store,
		Publisher: m.publisher,
	})
	svc.now = func() time.Time { return testNow }
	t.Cleanup(func() { _ = svc.Shutdown(context.Background()) })

	return svc, m
}

func expectHandshake(m *syncMocks) {
	m.sessions.EXPECT().
		Authenticate(mock.Anything, entity.Credentials{Username: "demo", Password: "secret"}).
		Return(entity.SessionToken("login-token"), nil).
		Once()
	m.sessions.EXPECT().
		SelectTenant(mock.Anything, entity.SessionToken("login-token"), testCompanyID, 2026).
		Return(entity.SessionToken("tenant-token"), &entity.Tenant{ID: testCompanyID, Name: "Demo d.o.o."}, nil).
		Once()
}

func expectCatalog(m *syncMocks) {
	raw := []entity.RemoteArticle{{ArticleID: 1}, {ArticleID: 2}}
	groups := []entity.RemoteCategoryGroup{{ArticleGroupID: 10}, {ArticleGroupID: 11}}

	m.fetcher.EXPECT().FetchArticles(mock.Anything, entity.SessionToken("tenant-token"), 100).Return(raw, nil).Once()
	m.fetcher.EXPECT().FetchCategoryGroups(mock.Anything, entity.SessionToken("tenant-token")).Return(groups, nil).Once()
	m.mapper.EXPECT().MapCatalog(raw, groups).Return(
		[]entity.Article{{ID: "1"}, {ID: "2"}},
		[]entity.Category{{ID: "10"}, {ID: "11"}},
	).Once()
}

func TestCatalogSyncService_Sync_Success(t *testing.T) {
	svc, m := newTestSyncService(t, newTestConfig())
	ctx := context.Background()
	key := entity.TenantKey(testCompanyID)

	expectHandshake(m)
	expectCatalog(m)
	m.store.EXPECT().Load(mock.Anything, key).Return(entity.EmptySnapshot(key), nil).Once()

	var saved *entity.SyncSnapshot
	m.store.EXPECT().Save(mock.Anything, mock.AnythingOfType("*entity.SyncSnapshot")).
		Run(func(_ context.Context, snapshot *entity.SyncSnapshot) {
			saved = snapshot.Clone()
		}).
		Return(nil).
		Once()

	result, err := svc.Sync(ctx, entity.SyncRequest{})

	require.NoError(t, err)
	assert.Equal(t, entity.SyncStatusSynced, result.Status)
	assert.Equal(t, key, result.TenantKey)
	assert.Equal(t, 2, result.Articles)
	assert.Equal(t, 2, result.Categories)
	assert.Equal(t, int64(1), result.Version)
	assert.False(t, result.Truncated)
	assert.False(t, result.Coalesced)
	assert.NotEmpty(t, result.RunID)

	require.NotNil(t, saved)
	assert.Equal(t, int64(1), saved.Version)
	assert.Equal(t, testNow, saved.LastSync)
	assert.Equal(t, "Demo d.o.o.", saved.Tenant.Name)
	assert.Equal(t, entity.SyncStatusSynced, saved.Status)

	assert.Equal(t, []entity.SyncStatus{entity.SyncStatusSyncing, entity.SyncStatusSynced}, m.statuses())
}

func TestCatalogSyncService_Sync_ParallelFetch(t *testing.T) {
	cfg := newTestConfig()
	cfg.Sync.ParallelFetch = true
	svc, m := newTestSyncService(t, cfg)
	key := entity.TenantKey(testCompanyID)

	expectHandshake(m)
	expectCatalog(m)
	m.store.EXPECT().Load(mock.Anything, key).Return(entity.EmptySnapshot(key), nil).Once()
	m.store.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Once()

	result, err := svc.Sync(context.Background(), entity.SyncRequest{})

	require.NoError(t, err)
	assert.Equal(t, entity.SyncStatusSynced, result.Status)
}

func TestCatalogSyncService_Sync_LastSyncNeverDecreases(t *testing.T) {
	svc, m := newTestSyncService(t, newTestConfig())
	key := entity.TenantKey(testCompanyID)

	previous := entity.EmptySnapshot(key)
	previous.Version = 4
	previous.LastSync = testNow.Add(time.Hour)

	expectHandshake(m)
	expectCatalog(m)
	m.store.EXPECT().Load(mock.Anything, key).Return(previous, nil).Once()
	m.store.EXPECT().Save(mock.Anything, mock.MatchedBy(func(s *entity.SyncSnapshot) bool {
		return s.Version == 5 && s.LastSync.Equal(previous.LastSync)
	})).Return(nil).Once()

	result, err := svc.Sync(context.Background(), entity.SyncRequest{})

	require.NoError(t, err)
	assert.Equal(t, int64(5), result.Version)
}

func TestCatalogSyncService_Sync_CorruptedPreviousIsReplaced(t *testing.T) {
	svc, m := newTestSyncService(t, newTestConfig())
	key := entity.TenantKey(testCompanyID)

	expectHandshake(m)
	expectCatalog(m)
	m.store.EXPECT().Load(mock.Anything, key).
		Return(nil, domainerrors.ErrSnapshotCorrupted.WithDetails("unexpected EOF")).Once()
	m.store.EXPECT().Save(mock.Anything, mock.MatchedBy(func(s *entity.SyncSnapshot) bool {
		return s.Version == 1
	})).Return(nil).Once()

	_, err := svc.Sync(context.Background(), entity.SyncRequest{})

	require.NoError(t, err)
}

func TestCatalogSyncService_Sync_FailuresLeaveStoreUntouched(t *testing.T) {
	loginRejected := domainerrors.NewAuthError(domainerrors.AuthPhaseLogin,
		domainerrors.NewTransportError(domainerrors.TransportUnauthorized, "/authUser/login", nil))
	selectUnreachable := domainerrors.NewAuthError(domainerrors.AuthPhaseSelectTenant,
		domainerrors.NewTransportError(domainerrors.TransportNetwork, "/authUser/selectCompany", nil))
	articleTimeout := &domainerrors.FetchError{
		Resource: domainerrors.FetchArticles,
		Err:      domainerrors.NewTransportError(domainerrors.TransportTimeout, "/catalog/article/get", context.DeadlineExceeded),
	}
	groupsFailed := &domainerrors.FetchError{
		Resource: domainerrors.FetchCategories,
		Err:      &domainerrors.TransportError{Kind: domainerrors.TransportServerError, StatusCode: 500, StatusText: "Internal Server Error"},
	}

	tests := []struct {
		name    string
		setup   func(m *syncMocks)
		step    entity.SyncStep
		message string
	}{
		{
			name: "login rejected",
			setup: func(m *syncMocks) {
				m.sessions.EXPECT().Authenticate(mock.Anything, mock.Anything).Return("", loginRejected).Once()
			},
			step:    entity.SyncStepAuthenticate,
			message: "authorization failed: the remote API rejected the credentials",
		},
		{
			name: "select tenant unreachable",
			setup: func(m *syncMocks) {
				m.sessions.EXPECT().Authenticate(mock.Anything, mock.Anything).Return("login-token", nil).Once()
				m.sessions.EXPECT().SelectTenant(mock.Anything, entity.SessionToken("login-token"), testCompanyID, 2026).
					Return("", nil, selectUnreachable).Once()
			},
			step:    entity.SyncStepSelectTenant,
			message: "authorization failed: the remote API could not be reached",
		},
		{
			name: "article fetch timeout",
			setup: func(m *syncMocks) {
				expectHandshake(m)
				m.fetcher.EXPECT().FetchArticles(mock.Anything, mock.Anything, 100).Return(nil, articleTimeout).Once()
			},
			step:    entity.SyncStepFetchArticles,
			message: "could not fetch articles: the remote API did not respond in time",
		},
		{
			name: "category fetch server error",
			setup: func(m *syncMocks) {
				expectHandshake(m)
				m.fetcher.EXPECT().FetchArticles(mock.Anything, mock.Anything, 100).Return([]entity.RemoteArticle{}, nil).Once()
				m.fetcher.EXPECT().FetchCategoryGroups(mock.Anything, mock.Anything).Return(nil, groupsFailed).Once()
			},
			step:    entity.SyncStepFetchCategories,
			message: "could not fetch categories: the remote API returned an error (500 Internal Server Error)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestSyncService(t, newTestConfig())
			tt.setup(m)

			result, err := svc.Sync(context.Background(), entity.SyncRequest{})

			require.Error(t, err)
			var syncErr *domainerrors.SyncError
			require.True(t, errors.As(err, &syncErr))
			assert.Equal(t, tt.step, syncErr.Step)
			assert.Equal(t, http.StatusBadGateway, syncErr.HTTPCode())

			require.NotNil(t, result)
			assert.Equal(t, entity.SyncStatusError, result.Status)
			assert.Equal(t, tt.step, result.Step)
			assert.Equal(t, tt.message, result.Error)

			// Load and Save were never expected, so the mock store fails the
			// test if the orchestrator touched it.
			assert.Equal(t, []entity.SyncStatus{entity.SyncStatusSyncing, entity.SyncStatusError}, m.statuses())
		})
	}
}

func TestCatalogSyncService_Sync_PersistFailure(t *testing.T) {
	svc, m := newTestSyncService(t, newTestConfig())
	key := entity.TenantKey(testCompanyID)

	expectHandshake(m)
	expectCatalog(m)
	m.store.EXPECT().Load(mock.Anything, key).Return(entity.EmptySnapshot(key), nil).Once()
	m.store.EXPECT().Save(mock.Anything, mock.Anything).Return(errors.New("disk full")).Once()

	result, err := svc.Sync(context.Background(), entity.SyncRequest{})

	var syncErr *domainerrors.SyncError
	require.True(t, errors.As(err, &syncErr))
	assert.Equal(t, entity.SyncStepPersist, syncErr.Step)
	assert.Equal(t, http.StatusInternalServerError, syncErr.HTTPCode())
	assert.Equal(t, "could not store the catalog snapshot", result.Error)
}

func TestCatalogSyncService_Sync_ReportsTruncatedPage(t *testing.T) {
	cfg := newTestConfig()
	cfg.Remote.ArticleLimit = 2
	svc, m := newTestSyncService(t, cfg)
	key := entity.TenantKey(testCompanyID)

	raw := []entity.RemoteArticle{{ArticleID: 1}, {ArticleID: 2}}
	expectHandshake(m)
	m.fetcher.EXPECT().FetchArticles(mock.Anything, mock.Anything, 2).Return(raw, nil).Once()
	m.fetcher.EXPECT().FetchCategoryGroups(mock.Anything, mock.Anything).Return([]entity.RemoteCategoryGroup{}, nil).Once()
	m.mapper.EXPECT().MapCatalog(raw, []entity.RemoteCategoryGroup{}).
		Return([]entity.Article{{ID: "1"}, {ID: "2"}}, []entity.Category{}).Once()
	m.store.EXPECT().Load(mock.Anything, key).Return(entity.EmptySnapshot(key), nil).Once()
	m.store.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Once()

	result, err := svc.Sync(context.Background(), entity.SyncRequest{})

	require.NoError(t, err)
	assert.True(t, result.Truncated)
}

func TestCatalogSyncService_Sync_CoalescesConcurrentCalls(t *testing.T) {
	svc, m := newTestSyncService(t, newTestConfig())
	key := entity.TenantKey(testCompanyID)

	started := make(chan struct{})
	release := make(chan struct{})
	m.sessions.EXPECT().Authenticate(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, entity.Credentials) (entity.SessionToken, error) {
			close(started)
			<-release

			return "login-token", nil
		}).
		Once()
	m.sessions.EXPECT().SelectTenant(mock.Anything, mock.Anything, testCompanyID, 2026).
		Return("tenant-token", &entity.Tenant{ID: testCompanyID}, nil).Once()
	expectCatalog(m)
	m.store.EXPECT().Load(mock.Anything, key).Return(entity.EmptySnapshot(key), nil).Once()
	m.store.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Once()

	results := make([]*entity.SyncResult, 2)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		results[0], _ = svc.Sync(context.Background(), entity.SyncRequest{})
	}()

	<-started
	wg.Add(1)
	go func() {
		defer wg.Done()
		results[1], _ = svc.Sync(context.Background(), entity.SyncRequest{CompanyID: testCompanyID})
	}()

	// Give the joiner time to attach to the running cycle.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	require.NotNil(t, results[0])
	require.NotNil(t, results[1])
	assert.Equal(t, results[0].RunID, results[1].RunID)
	assert.False(t, results[0].Coalesced)
	assert.True(t, results[1].Coalesced)
}

func TestCatalogSyncService_Sync_OtherFiscalYearRejectedWhileRunning(t *testing.T) {
	svc, m := newTestSyncService(t, newTestConfig())
	key := entity.TenantKey(testCompanyID)

	started := make(chan struct{})
	release := make(chan struct{})
	m.sessions.EXPECT().Authenticate(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, entity.Credentials) (entity.SessionToken, error) {
			close(started)
			<-release

			return "login-token", nil
		}).
		Once()
	m.sessions.EXPECT().SelectTenant(mock.Anything, mock.Anything, testCompanyID, 2026).
		Return("tenant-token", &entity.Tenant{ID: testCompanyID}, nil).Once()
	expectCatalog(m)
	m.store.EXPECT().Load(mock.Anything, key).Return(entity.EmptySnapshot(key), nil).Once()
	m.store.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Once()

	done := make(chan error, 1)
	go func() {
		_, err := svc.Sync(context.Background(), entity.SyncRequest{FiscalYear: 2026})
		done <- err
	}()
	<-started

	result, err := svc.Sync(context.Background(), entity.SyncRequest{FiscalYear: 2025})
	assert.Nil(t, result)
	require.ErrorIs(t, err, domainerrors.ErrSyncInProgress)
	assert.Contains(t, err.(domainerrors.AppError).Details(), "fiscal year 2026")

	close(release)
	require.NoError(t, <-done)

	// The tenant is free again once the cycle ended.
	m.sessions.EXPECT().Authenticate(mock.Anything, mock.Anything).Return("login-token", nil).Once()
	m.sessions.EXPECT().SelectTenant(mock.Anything, mock.Anything, testCompanyID, 2025).
		Return("", nil, domainerrors.NewAuthError(domainerrors.AuthPhaseSelectTenant,
			domainerrors.NewTransportError(domainerrors.TransportNotFound, "/authUser/selectCompany", nil))).
		Once()

	_, err = svc.Sync(context.Background(), entity.SyncRequest{FiscalYear: 2025})
	var syncErr *domainerrors.SyncError
	require.True(t, errors.As(err, &syncErr))
	assert.Equal(t, entity.SyncStepSelectTenant, syncErr.Step)
}

func TestCatalogSyncService_Shutdown_WaitsForRunningCycle(t *testing.T) {
	svc, m := newTestSyncService(t, newTestConfig())
	key := entity.TenantKey(testCompanyID)

	expectHandshake(m)
	expectCatalog(m)
	m.store.EXPECT().Load(mock.Anything, key).Return(entity.EmptySnapshot(key), nil).Once()

	saving := make(chan struct{})
	finishSave := make(chan struct{})
	var saveReturned atomic.Bool
	m.store.EXPECT().Save(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, *entity.SyncSnapshot) error {
			close(saving)
			<-finishSave
			saveReturned.Store(true)

			return nil
		}).
		Once()

	go func() { _, _ = svc.Sync(context.Background(), entity.SyncRequest{}) }()
	<-saving

	shutdownDone := make(chan error, 1)
	go func() { shutdownDone <- svc.Shutdown(context.Background()) }()

	select {
	case <-shutdownDone:
		t.Fatal("Shutdown returned while a cycle was still saving")
	case <-time.After(50 * time.Millisecond):
	}

	close(finishSave)
	require.NoError(t, <-shutdownDone)
	assert.True(t, saveReturned.Load())
}

func TestCatalogSyncService_Shutdown_BoundedByContext(t *testing.T) {
	svc, m := newTestSyncService(t, newTestConfig())

	blocked := make(chan struct{})
	unblock := make(chan struct{})
	t.Cleanup(func() { close(unblock) })
	m.sessions.EXPECT().Authenticate(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, entity.Credentials) (entity.SessionToken, error) {
			close(blocked)
			<-unblock

			return "", domainerrors.NewAuthError(domainerrors.AuthPhaseLogin,
				domainerrors.NewTransportError(domainerrors.TransportNetwork, "/authUser/login", nil))
		}).
		Once()

	go func() { _, _ = svc.Sync(context.Background(), entity.SyncRequest{}) }()
	<-blocked

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	assert.ErrorIs(t, svc.Shutdown(ctx), context.DeadlineExceeded)
}

func TestCatalogSyncService_Clear_RejectedWhileSyncing(t *testing.T) {
	svc, m := newTestSyncService(t, newTestConfig())
	ctx := context.Background()

	started := make(chan struct{})
	m.sessions.EXPECT().Authenticate(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ entity.Credentials) (entity.SessionToken, error) {
			close(started)
			<-ctx.Done()

			return "", domainerrors.NewAuthError(domainerrors.AuthPhaseLogin,
				domainerrors.NewTransportError(domainerrors.TransportNetwork, "/authUser/login", ctx.Err()))
		}).
		Once()

	done := make(chan error, 1)
	go func() {
		_, err := svc.Sync(ctx, entity.SyncRequest{})
		done <- err
	}()
	<-started

	err := svc.Clear(ctx, 0)
	assert.ErrorIs(t, err, domainerrors.ErrSyncInProgress)

	require.NoError(t, svc.Shutdown(ctx))

	err = <-done
	var syncErr *domainerrors.SyncError
	require.True(t, errors.As(err, &syncErr))
	assert.Equal(t, entity.SyncStepCanceled, syncErr.Step)
	assert.Equal(t, "sync was canceled before completion", syncErr.Message())

	_, err = svc.Sync(ctx, entity.SyncRequest{})
	assert.ErrorIs(t, err, domainerrors.ErrSyncUnavailable)
}

func TestCatalogSyncService_Sync_CallerCancelDoesNotAbortCycle(t *testing.T) {
	svc, m := newTestSyncService(t, newTestConfig())
	key := entity.TenantKey(testCompanyID)

	release := make(chan struct{})
	m.sessions.EXPECT().Authenticate(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ entity.Credentials) (entity.SessionToken, error) {
			<-release
			assert.NoError(t, ctx.Err())

			return "login-token", nil
		}).
		Once()
	m.sessions.EXPECT().SelectTenant(mock.Anything, mock.Anything, testCompanyID, 2026).
		Return("tenant-token", nil, nil).Once()
	expectCatalog(m)
	m.store.EXPECT().Load(mock.Anything, key).Return(entity.EmptySnapshot(key), nil).Once()

	saved := make(chan struct{})
	m.store.EXPECT().Save(mock.Anything, mock.Anything).
		Run(func(context.Context, *entity.SyncSnapshot) { close(saved) }).
		Return(nil).
		Once()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Sync(ctx, entity.SyncRequest{})
	assert.ErrorIs(t, err, context.Canceled)

	close(release)
	select {
	case <-saved:
	case <-time.After(2 * time.Second):
		t.Fatal("detached sync cycle did not complete")
	}
}

func TestCatalogSyncService_Sync_PublishFailureIsIgnored(t *testing.T) {
	cfg := newTestConfig()
	sessions := mockSvc.NewMockSessionManager(t)
	publisher := mockSvc.NewMockSyncEventPublisher(t)
	svc := newCatalogSyncService(CatalogSyncParams{
		Config:    cfg,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		Sessions:  sessions,
		Fetcher:   mockSvc.NewMockCatalogFetcher(t),
		Mapper:    mockSvc.NewMockCatalogMapper(t),
		Store:     mockRepo.NewMockSnapshotRepository(t),
		Publisher: publisher,
	})
	t.Cleanup(func() { _ = svc.Shutdown(context.Background()) })

	publisher.EXPECT().PublishSyncEvent(mock.Anything, mock.Anything).Return(errors.New("broker down")).Times(2)
	sessions.EXPECT().Authenticate(mock.Anything, mock.Anything).
		Return("", domainerrors.NewAuthError(domainerrors.AuthPhaseLogin,
			domainerrors.NewTransportError(domainerrors.TransportUnauthorized, "/authUser/login", nil))).
		Once()

	result, err := svc.Sync(context.Background(), entity.SyncRequest{})

	var syncErr *domainerrors.SyncError
	require.True(t, errors.As(err, &syncErr))
	assert.Equal(t, entity.SyncStepAuthenticate, result.Step)
}

func TestCatalogSyncService_RequiresCompany(t *testing.T) {
	cfg := newTestConfig()
	cfg.Remote.CompanyID = 0
	svc, _ := newTestSyncService(t, cfg)
	ctx := context.Background()

	_, err := svc.Sync(ctx, entity.SyncRequest{})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = svc.GetSnapshot(ctx, -1)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	assert.ErrorIs(t, svc.Clear(ctx, 0), domainerrors.ErrValidationFailed)
}

func TestCatalogSyncService_GetSnapshot_OverlaysStatus(t *testing.T) {
	svc, m := newTestSyncService(t, newTestConfig())
	ctx := context.Background()
	key := entity.TenantKey(testCompanyID)

	m.store.EXPECT().Load(mock.Anything, key).Return(entity.EmptySnapshot(key), nil).Once()

	snapshot, err := svc.GetSnapshot(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, entity.SyncStatusIdle, snapshot.Status)
	assert.Empty(t, snapshot.Error)

	m.sessions.EXPECT().Authenticate(mock.Anything, mock.Anything).
		Return("", domainerrors.NewAuthError(domainerrors.AuthPhaseLogin,
			domainerrors.NewTransportError(domainerrors.TransportUnauthorized, "/authUser/login", nil))).
		Once()
	_, err = svc.Sync(ctx, entity.SyncRequest{})
	require.Error(t, err)

	stored := entity.EmptySnapshot(key)
	stored.Version = 3
	stored.LastSync = testNow.Add(-90 * time.Minute)
	stored.Status = entity.SyncStatusSynced
	stored.Articles = []entity.Article{{ID: "1"}}
	m.store.EXPECT().Load(mock.Anything, key).Return(stored, nil).Twice()

	snapshot, err = svc.GetSnapshot(ctx, testCompanyID)
	require.NoError(t, err)
	assert.Equal(t, entity.SyncStatusError, snapshot.Status)
	assert.Equal(t, entity.SyncStepAuthenticate, snapshot.Step)
	assert.Equal(t, "authorization failed: the remote API rejected the credentials", snapshot.Error)
	assert.Equal(t, int64(3), snapshot.Version)
	assert.Len(t, snapshot.Articles, 1)

	view, err := svc.GetStatus(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, entity.SyncStatusError, view.Status)
	assert.Equal(t, "1h30m", view.Age)
	assert.Equal(t, 1, view.Articles)
	assert.Equal(t, key, view.TenantKey)
}

func TestCatalogSyncService_Clear(t *testing.T) {
	svc, m := newTestSyncService(t, newTestConfig())
	ctx := context.Background()
	key := entity.TenantKey(testCompanyID)

	m.store.EXPECT().Clear(mock.Anything, key).Return(nil).Once()
	require.NoError(t, svc.Clear(ctx, 0))

	m.store.EXPECT().Clear(mock.Anything, key).Return(errors.New("bucket gone")).Once()
	assert.Error(t, svc.Clear(ctx, testCompanyID))
}
