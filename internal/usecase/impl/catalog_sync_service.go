package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"catalogsync/config"
	deliverycontext "catalogsync/internal/delivery/context"
	"catalogsync/internal/domain/constants"
	"catalogsync/internal/domain/entity"
	domainerrors "catalogsync/internal/domain/errors"
	"catalogsync/internal/domain/lifecycle"
	"catalogsync/internal/domain/repository"
	"catalogsync/internal/domain/service"
	"catalogsync/internal/errors"
	"catalogsync/internal/usecase"
	"catalogsync/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// CatalogSyncParams holds dependencies for the catalog sync service, injected by Fx
type CatalogSyncParams struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	Sessions  service.SessionManager
	Fetcher   service.CatalogFetcher
	Mapper    service.CatalogMapper
	Store     repository.SnapshotRepository
	Publisher service.SyncEventPublisher
}

type catalogSyncService struct {
	remote    *config.RemoteConfig
	parallel  bool
	sessions  service.SessionManager
	fetcher   service.CatalogFetcher
	mapper    service.CatalogMapper
	store     repository.SnapshotRepository
	publisher service.SyncEventPublisher
	logger    *slog.Logger
	now       func() time.Time

	baseCtx context.Context
	cancel  context.CancelFunc
	group   singleflight.Group

	mu     sync.RWMutex
	states map[string]entity.SyncState
	active map[string]*activeSync
	runs   sync.WaitGroup
}

// activeSync pins the fiscal year of a tenant while callers wait on or a cycle
// runs for it.
type activeSync struct {
	fiscalYear int
	refs       int
}

// NewCatalogSyncService creates the sync orchestrator.
func NewCatalogSyncService(params CatalogSyncParams) usecase.CatalogSyncUsecase {
	return newCatalogSyncService(params)
}

func newCatalogSyncService(params CatalogSyncParams) *catalogSyncService {
	baseCtx, cancel := context.WithCancel(context.Background())

	remote := params.Config.Remote
	if remote == nil {
		remote = &config.RemoteConfig{}
	}

	parallel := false
	if params.Config.Sync != nil {
		parallel = params.Config.Sync.ParallelFetch
	}

	return &catalogSyncService{
		remote:    remote,
		parallel:  parallel,
		sessions:  params.Sessions,
		fetcher:   params.Fetcher,
		mapper:    params.Mapper,
		store:     params.Store,
		publisher: params.Publisher,
		logger:    params.Logger,
		now:       time.Now,
		baseCtx:   baseCtx,
		cancel:    cancel,
		states:    make(map[string]entity.SyncState),
		active:    make(map[string]*activeSync),
	}
}

// Sync runs one sync cycle, or joins the cycle already running for the tenant
// and fiscal year. A different fiscal year is refused until that cycle ends.
// The cycle itself is bound to the service lifetime: a caller that stops
// waiting does not abort it, Shutdown does.
func (s *catalogSyncService) Sync(ctx context.Context, req entity.SyncRequest) (*entity.SyncResult, error) {
	companyID, err := s.resolveCompany(req.CompanyID)
	if err != nil {
		return nil, err
	}
	fiscalYear := req.FiscalYear
	if fiscalYear <= 0 {
		fiscalYear = s.remote.ResolveFiscalYear(s.now())
	}

	key := entity.TenantKey(companyID)
	if err := s.acquire(key, fiscalYear); err != nil {
		return nil, err
	}
	defer s.release(key)

	leader := false
	ch := s.group.DoChan(fmt.Sprintf("%s/%d", key, fiscalYear), func() (any, error) {
		leader = true
		if !s.trackRun() {
			return nil, domainerrors.ErrSyncUnavailable
		}
		defer s.runs.Done()

		s.pin(key, fiscalYear)
		defer s.release(key)

		return s.run(ctx, key, companyID, fiscalYear)
	})

	select {
	case res := <-ch:
		result, _ := res.Val.(*entity.SyncResult)
		if result != nil {
			shared := *result
			shared.Coalesced = !leader
			result = &shared
		}

		return result, res.Err
	case <-ctx.Done():
		return nil, errors.Wrap(ctx.Err(), "waiting for catalog sync")
	}
}

// run executes the sequence authenticate, select tenant, fetch, map, persist.
// The store is written only by the final step.
func (s *catalogSyncService) run(callerCtx context.Context, key string, companyID, fiscalYear int) (*entity.SyncResult, error) {
	runCtx, cancel := context.WithCancel(context.WithoutCancel(callerCtx))
	defer cancel()
	stop := context.AfterFunc(s.baseCtx, cancel)
	defer stop()

	runID := uuid.NewString()
	ctx := deliverycontext.WithSyncRunID(runCtx, runID)
	logger := deliverycontext.GetLoggerOrDefault(callerCtx, s.logger).With(
		slog.String("run_id", runID),
		slog.String("tenant_key", key),
		slog.String("trigger", string(deliverycontext.GetSyncTrigger(callerCtx))),
	)

	result := &entity.SyncResult{
		RunID:     runID,
		TenantKey: key,
		Status:    entity.SyncStatusSyncing,
		StartedAt: s.now(),
	}
	s.setState(key, entity.SyncState{
		Status:    entity.SyncStatusSyncing,
		RunID:     runID,
		StartedAt: result.StartedAt,
	})
	s.publish(ctx, logger, result)
	logger.InfoContext(ctx, "catalog sync started",
		slog.Int("company_id", companyID),
		slog.Int("fiscal_year", fiscalYear),
	)

	fail := func(step entity.SyncStep, cause error) (*entity.SyncResult, error) {
		if ctx.Err() != nil && step != entity.SyncStepPersist {
			step = entity.SyncStepCanceled
		}
		syncErr := domainerrors.NewSyncError(step, cause)

		result.Status = entity.SyncStatusError
		result.Step = step
		result.Error = syncErr.Message()
		result.FinishedAt = s.now()
		s.setState(key, entity.SyncState{
			Status:    entity.SyncStatusError,
			Step:      step,
			Error:     result.Error,
			RunID:     runID,
			StartedAt: result.StartedAt,
		})
		s.publish(ctx, logger, result)
		logger.ErrorContext(ctx, "catalog sync failed",
			slog.String("step", step.String()),
			slog.String("message", result.Error),
			slog.Any("error", cause),
		)

		return result, syncErr
	}

	token, err := s.sessions.Authenticate(ctx, entity.Credentials{
		Username: s.remote.Username,
		Password: s.remote.Password,
	})
	if err != nil {
		return fail(entity.SyncStepAuthenticate, err)
	}

	scoped, tenant, err := s.sessions.SelectTenant(ctx, token, companyID, fiscalYear)
	if err != nil {
		return fail(entity.SyncStepSelectTenant, err)
	}

	limit := s.remote.ArticleLimit
	if limit <= 0 {
		limit = constants.DefaultArticleLimit
	}

	rawArticles, groups, err := s.fetch(ctx, scoped, limit)
	if err != nil {
		return fail(fetchStep(err), err)
	}
	result.Truncated = len(rawArticles) >= limit

	articles, categories := s.mapper.MapCatalog(rawArticles, groups)

	if err := ctx.Err(); err != nil {
		return fail(entity.SyncStepCanceled, err)
	}

	previous, err := s.store.Load(ctx, key)
	switch {
	case errors.Is(err, domainerrors.ErrSnapshotCorrupted):
		logger.WarnContext(ctx, "stored snapshot is unreadable, replacing it", slog.Any("error", err))
		previous = entity.EmptySnapshot(key)
	case err != nil:
		return fail(entity.SyncStepPersist, err)
	}

	lastSync := s.now()
	if previous.LastSync.After(lastSync) {
		lastSync = previous.LastSync
	}

	if tenant == nil {
		tenant = &entity.Tenant{ID: companyID}
	}
	snapshot := &entity.SyncSnapshot{
		TenantKey:  key,
		Tenant:     tenant,
		Articles:   articles,
		Categories: categories,
		LastSync:   lastSync,
		Version:    previous.Version + 1,
		Status:     entity.SyncStatusSynced,
	}
	if err := ctx.Err(); err != nil {
		return fail(entity.SyncStepCanceled, err)
	}
	if err := s.store.Save(ctx, snapshot); err != nil {
		return fail(entity.SyncStepPersist, err)
	}

	result.Status = entity.SyncStatusSynced
	result.Articles = len(articles)
	result.Categories = len(categories)
	result.Version = snapshot.Version
	result.FinishedAt = s.now()
	s.setState(key, entity.SyncState{
		Status:    entity.SyncStatusSynced,
		RunID:     runID,
		StartedAt: result.StartedAt,
	})
	s.publish(ctx, logger, result)

	if result.Truncated {
		logger.WarnContext(ctx, "article page reached the request limit, catalog may be truncated",
			slog.Int("limit", limit),
		)
	}
	logger.InfoContext(ctx, "catalog sync finished",
		slog.Int("articles", result.Articles),
		slog.Int("categories", result.Categories),
		slog.Int64("version", result.Version),
		slog.Duration("elapsed", result.FinishedAt.Sub(result.StartedAt)),
	)

	return result, nil
}

// fetch pulls articles and category groups. In parallel mode the first failure
// cancels the other request.
func (s *catalogSyncService) fetch(ctx context.Context, token entity.SessionToken, limit int) ([]entity.RemoteArticle, []entity.RemoteCategoryGroup, error) {
	var (
		articles []entity.RemoteArticle
		groups   []entity.RemoteCategoryGroup
	)

	if !s.parallel {
		var err error
		if articles, err = s.fetcher.FetchArticles(ctx, token, limit); err != nil {
			return nil, nil, err
		}
		if groups, err = s.fetcher.FetchCategoryGroups(ctx, token); err != nil {
			return nil, nil, err
		}

		return articles, groups, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		articles, err = s.fetcher.FetchArticles(gctx, token, limit)

		return err
	})
	g.Go(func() error {
		var err error
		groups, err = s.fetcher.FetchCategoryGroups(gctx, token)

		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return articles, groups, nil
}

func fetchStep(err error) entity.SyncStep {
	var fetchErr *domainerrors.FetchError
	if errors.As(err, &fetchErr) && fetchErr.Resource == domainerrors.FetchCategories {
		return entity.SyncStepFetchCategories
	}

	return entity.SyncStepFetchArticles
}

// GetSnapshot returns the stored snapshot with the in-memory status overlaid.
func (s *catalogSyncService) GetSnapshot(ctx context.Context, companyID int) (*entity.SyncSnapshot, error) {
	companyID, err := s.resolveCompany(companyID)
	if err != nil {
		return nil, err
	}
	key := entity.TenantKey(companyID)

	snapshot, err := s.store.Load(ctx, key)
	if err != nil {
		return nil, errors.Wrapf(err, "load snapshot %s", key)
	}
	snapshot = snapshot.Clone()

	state, ok := s.getState(key)
	switch {
	case ok:
		snapshot.Status = state.Status
		snapshot.Step = state.Step
		snapshot.Error = state.Error
	case snapshot.IsSynced():
		snapshot.Status = entity.SyncStatusSynced
	default:
		snapshot.Status = entity.SyncStatusIdle
	}

	return snapshot, nil
}

// GetStatus summarises the snapshot of a tenant.
func (s *catalogSyncService) GetStatus(ctx context.Context, companyID int) (*entity.SyncStatusView, error) {
	snapshot, err := s.GetSnapshot(ctx, companyID)
	if err != nil {
		return nil, err
	}

	view := &entity.SyncStatusView{
		TenantKey:  snapshot.TenantKey,
		Status:     snapshot.Status,
		Step:       snapshot.Step,
		Error:      snapshot.Error,
		LastSync:   snapshot.LastSync,
		Version:    snapshot.Version,
		Articles:   len(snapshot.Articles),
		Categories: len(snapshot.Categories),
	}
	if snapshot.IsSynced() {
		view.Age = util.FormatDuration(snapshot.Age(s.now()))
	}

	return view, nil
}

// Clear drops the stored snapshot. It refuses while a sync for the tenant runs
// so the running cycle cannot resurrect the cleared data.
func (s *catalogSyncService) Clear(ctx context.Context, companyID int) error {
	companyID, err := s.resolveCompany(companyID)
	if err != nil {
		return err
	}
	key := entity.TenantKey(companyID)

	s.mu.Lock()
	defer s.mu.Unlock()

	if state, ok := s.states[key]; ok && state.Status == entity.SyncStatusSyncing {
		return domainerrors.ErrSyncInProgress.WithDetails(key)
	}
	if err := s.store.Clear(ctx, key); err != nil {
		return errors.Wrapf(err, "clear snapshot %s", key)
	}
	delete(s.states, key)

	s.logger.InfoContext(ctx, "catalog snapshot cleared", slog.String("tenant_key", key))

	return nil
}

// Shutdown cancels every in-flight sync and waits until their cycles return,
// so nothing touches the store or the publisher after it. Later Sync calls
// fail with ErrSyncUnavailable.
func (s *catalogSyncService) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	s.cancel()
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		s.runs.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "waiting for in-flight catalog syncs")
	}
}

// acquire registers a caller for key. It fails when the service is shut down
// or a cycle for another fiscal year holds the tenant.
func (s *catalogSyncService) acquire(key string, fiscalYear int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.baseCtx.Err() != nil {
		return domainerrors.ErrSyncUnavailable
	}
	if a, ok := s.active[key]; ok {
		if a.fiscalYear != fiscalYear {
			return domainerrors.ErrSyncInProgress.WithDetails(
				fmt.Sprintf("%s is syncing fiscal year %d", key, a.fiscalYear))
		}
		a.refs++

		return nil
	}
	s.active[key] = &activeSync{fiscalYear: fiscalYear, refs: 1}

	return nil
}

// pin holds key for the running cycle, independent of its waiting callers.
func (s *catalogSyncService) pin(key string, fiscalYear int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if a, ok := s.active[key]; ok {
		a.refs++

		return
	}
	s.active[key] = &activeSync{fiscalYear: fiscalYear, refs: 1}
}

func (s *catalogSyncService) release(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.active[key]
	if !ok {
		return
	}
	if a.refs--; a.refs <= 0 {
		delete(s.active, key)
	}
}

// trackRun counts a starting cycle for Shutdown. It reports false once shut down.
func (s *catalogSyncService) trackRun() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.baseCtx.Err() != nil {
		return false
	}
	s.runs.Add(1)

	return true
}

func (s *catalogSyncService) resolveCompany(companyID int) (int, error) {
	if companyID > 0 {
		return companyID, nil
	}
	if companyID == 0 && s.remote.CompanyID > 0 {
		return s.remote.CompanyID, nil
	}

	return 0, domainerrors.ErrValidationFailed.WithDetails("companyId must be a positive integer")
}

// setState records a status transition under the lock Clear holds.
func (s *catalogSyncService) setState(key string, state entity.SyncState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.states[key] = state
}

func (s *catalogSyncService) getState(key string) (entity.SyncState, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.states[key]

	return state, ok
}

func (s *catalogSyncService) publish(ctx context.Context, logger *slog.Logger, result *entity.SyncResult) {
	if s.publisher == nil {
		return
	}

	event := &entity.SyncEvent{
		RunID:      result.RunID,
		TenantKey:  result.TenantKey,
		Status:     result.Status,
		Step:       result.Step,
		Error:      result.Error,
		Version:    result.Version,
		Articles:   result.Articles,
		Categories: result.Categories,
		Trigger:    string(deliverycontext.GetSyncTrigger(ctx)),
		OccurredAt: s.now(),
	}
	// Transitions are still announced while the run is being canceled.
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lifecycle.DefaultTimeout)
	defer cancel()

	if err := s.publisher.PublishSyncEvent(pubCtx, event); err != nil {
		logger.WarnContext(ctx, "failed to publish sync event",
			slog.String("status", result.Status.String()),
			slog.Any("error", err),
		)
	}
}
