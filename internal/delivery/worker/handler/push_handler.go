package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"catalogsync/config"
	deliverycontext "catalogsync/internal/delivery/context"
	"catalogsync/internal/domain/constants"
	"catalogsync/internal/domain/entity"
	domainerrors "catalogsync/internal/domain/errors"
	"catalogsync/internal/errors"
	"catalogsync/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// syncEventStatusAttribute is set on published sync status events.
const syncEventStatusAttribute = "status"

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// SyncTrigger is the message payload requesting a catalog sync.
// An empty payload syncs the configured tenant.
type SyncTrigger struct {
	CompanyID  int    `json:"companyId"`
	FiscalYear int    `json:"fiscalYear"`
	RequestID  string `json:"request_id,omitempty"`
}

// idTokenValidator checks a Google-signed OIDC token for the given audience.
type idTokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler turns Pub/Sub push deliveries into catalog sync cycles
type PushHandler struct {
	verifyPushAuth bool
	validateToken  idTokenValidator
	logger         *slog.Logger
	syncUC         usecase.CatalogSyncUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config        *config.Config
	Logger        *slog.Logger
	CatalogSyncUC usecase.CatalogSyncUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Only Google push deliveries outside development carry an OIDC token
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		validateToken:  idtoken.Validate,
		logger:         params.Logger,
		syncUC:         params.CatalogSyncUC,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Sync status events share the message format; acking them avoids a sync loop
	if _, isEvent := pushMsg.Message.Attributes[syncEventStatusAttribute]; isEvent {
		h.logger.Debug("[Worker] Ignoring sync status event",
			slog.String("message_id", pushMsg.Message.MessageID),
		)

		return c.NoContent(http.StatusOK)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var trigger SyncTrigger
	if len(strings.TrimSpace(string(data))) > 0 {
		if err := json.Unmarshal(data, &trigger); err != nil {
			h.logger.Error("[Worker] Failed to parse sync trigger", slog.Any("error", err))

			return c.NoContent(http.StatusBadRequest)
		}
	}

	// Priority: message attributes > payload field > existing context
	requestID := h.extractRequestID(ctx, &pushMsg, &trigger)
	reqLogger := h.logger.With(
		slog.String("request_id", requestID),
		slog.String("message_id", pushMsg.Message.MessageID),
	)
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)
	ctx = deliverycontext.WithSyncTrigger(ctx, deliverycontext.TriggerPush)

	reqLogger.Info("[Worker] Processing sync trigger",
		slog.Int("company_id", trigger.CompanyID),
		slog.Int("fiscal_year", trigger.FiscalYear),
	)

	result, err := h.syncUC.Sync(ctx, entity.SyncRequest{
		CompanyID:  trigger.CompanyID,
		FiscalYear: trigger.FiscalYear,
	})
	if err != nil {
		retryable := isRetryable(err)
		reqLogger.Error("[Worker] Sync trigger failed",
			slog.Any("error", err),
			slog.Bool("retryable", retryable),
		)
		// 503 asks Pub/Sub to redeliver; 200 acks a message that would fail again
		if retryable {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Sync trigger processed",
		slog.String("tenant_key", result.TenantKey),
		slog.Int64("version", result.Version),
		slog.Int("articles", result.Articles),
		slog.Bool("coalesced", result.Coalesced),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, payload, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, trigger *SyncTrigger) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if trigger.RequestID != "" {
		return trigger.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// isRetryable reports whether a redelivery of the same trigger could succeed.
func isRetryable(err error) bool {
	if errors.Is(err, domainerrors.ErrSyncUnavailable) || errors.Is(err, domainerrors.ErrSyncInProgress) {
		return true
	}

	var syncErr *domainerrors.SyncError
	if !errors.As(err, &syncErr) {
		return false
	}

	switch syncErr.Step {
	case entity.SyncStepCanceled, entity.SyncStepPersist:
		return true
	case entity.SyncStepMap:
		return false
	}

	kind, ok := domainerrors.TransportKindOf(err)
	if !ok {
		return false
	}

	switch kind {
	case domainerrors.TransportTimeout, domainerrors.TransportNetwork, domainerrors.TransportServerError:
		return true
	default:
		return false
	}
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := h.validateToken(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
