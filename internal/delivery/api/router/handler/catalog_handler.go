package handler

import (
	"log/slog"
	"net/http"
	"time"

	"catalogsync/internal/delivery/api/middleware"
	"catalogsync/internal/delivery/api/response"
	"catalogsync/internal/delivery/api/validator"
	deliverycontext "catalogsync/internal/delivery/context"
	"catalogsync/internal/domain/entity"
	domainerrors "catalogsync/internal/domain/errors"
	"catalogsync/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogSyncUC usecase.CatalogSyncUsecase
	Logger        *slog.Logger
}

// CatalogHandler serves the synchronized catalog and its sync controls.
type CatalogHandler struct {
	catalogSyncUC usecase.CatalogSyncUsecase
	logger        *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogSyncUC: params.CatalogSyncUC,
		logger:        params.Logger,
	}
}

// TenantQuery selects the tenant of a read or clear request.
type TenantQuery struct {
	CompanyID int `query:"companyId" json:"companyId" validate:"gte=0"`
}

// SyncRequest represents the request body for triggering a sync
type SyncRequest struct {
	CompanyID  int `json:"companyId" validate:"gte=0"`
	FiscalYear int `json:"fiscalYear" validate:"omitempty,gte=2000,lte=2100"`
}

// CatalogView is the read-only surface consumed by the storefront.
type CatalogView struct {
	Articles   []entity.Article  `json:"articles"`
	Categories []entity.Category `json:"categories"`
	Status     entity.SyncStatus `json:"status"`
	LastSync   time.Time         `json:"lastSync,omitzero"`
	Error      string            `json:"error,omitempty"`
}

func bindTenant(c echo.Context) (int, error) {
	var query TenantQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &query); err != nil {
		return 0, domainerrors.ErrValidationFailed.WithDetails("companyId must be an integer")
	}
	if err := c.Validate(&query); err != nil {
		return 0, domainerrors.ErrValidationFailed.WithDetails("companyId must not be negative")
	}

	return query.CompanyID, nil
}

// GetCatalog returns articles, categories and sync status in one read.
func (h *CatalogHandler) GetCatalog(c echo.Context) error {
	companyID, err := bindTenant(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	snapshot, err := h.catalogSyncUC.GetSnapshot(c.Request().Context(), companyID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, CatalogView{
		Articles:   snapshot.Articles,
		Categories: snapshot.Categories,
		Status:     snapshot.Status,
		LastSync:   snapshot.LastSync,
		Error:      snapshot.Error,
	})
}

// GetSnapshot returns the full stored snapshot with the live status overlaid.
func (h *CatalogHandler) GetSnapshot(c echo.Context) error {
	companyID, err := bindTenant(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	snapshot, err := h.catalogSyncUC.GetSnapshot(c.Request().Context(), companyID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, snapshot)
}

// GetArticles returns the synchronized articles.
func (h *CatalogHandler) GetArticles(c echo.Context) error {
	companyID, err := bindTenant(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	snapshot, err := h.catalogSyncUC.GetSnapshot(c.Request().Context(), companyID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, snapshot.Articles)
}

// GetCategories returns the synchronized category tree as a flat list.
func (h *CatalogHandler) GetCategories(c echo.Context) error {
	companyID, err := bindTenant(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	snapshot, err := h.catalogSyncUC.GetSnapshot(c.Request().Context(), companyID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, snapshot.Categories)
}

// GetStatus returns the sync status of a tenant.
func (h *CatalogHandler) GetStatus(c echo.Context) error {
	companyID, err := bindTenant(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	status, err := h.catalogSyncUC.GetStatus(c.Request().Context(), companyID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, status)
}

// TriggerSync runs a sync cycle and waits for its outcome.
func (h *CatalogHandler) TriggerSync(c echo.Context) error {
	var req SyncRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid sync request")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Invalid sync request", validator.FieldErrors(err))
	}

	ctx := deliverycontext.WithSyncTrigger(c.Request().Context(), deliverycontext.TriggerAPI)
	subject, _ := middleware.GetSubject(c)
	deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("catalog sync requested",
		slog.String("subject", subject),
		slog.Int("company_id", req.CompanyID),
	)

	result, err := h.catalogSyncUC.Sync(ctx, entity.SyncRequest{
		CompanyID:  req.CompanyID,
		FiscalYear: req.FiscalYear,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// ClearSnapshot drops the stored snapshot of a tenant.
func (h *CatalogHandler) ClearSnapshot(c echo.Context) error {
	companyID, err := bindTenant(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.catalogSyncUC.Clear(c.Request().Context(), companyID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
