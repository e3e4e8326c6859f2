package remote

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"catalogsync/internal/domain/constants"
	"catalogsync/internal/domain/entity"
	domainerrors "catalogsync/internal/domain/errors"
	"catalogsync/internal/domain/service"
	"catalogsync/internal/errors"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type selectCompanyRequest struct {
	CompanyID  int `json:"companyId"`
	FiscalYear int `json:"fiscalYear"`
}

type selectCompanyResponse struct {
	Token   string         `json:"token"`
	Company *entity.Tenant `json:"company"`
}

// sessionManager performs login followed by company selection.
type sessionManager struct {
	client *Client
	logger *slog.Logger
	now    func() time.Time
}

// NewSessionManager creates the session manager on top of client.
func NewSessionManager(client *Client, logger *slog.Logger) service.SessionManager {
	return &sessionManager{
		client: client,
		logger: logger,
		now:    time.Now,
	}
}

func (m *sessionManager) Authenticate(ctx context.Context, credentials entity.Credentials) (entity.SessionToken, error) {
	if credentials.IsZero() {
		return "", &domainerrors.AuthError{
			Kind:  domainerrors.AuthRejected,
			Phase: domainerrors.AuthPhaseLogin,
			Err:   errors.New("username and password are required"),
		}
	}

	payload, err := m.client.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   constants.PathLogin,
		Body:   loginRequest{Username: credentials.Username, Password: credentials.Password},
	})
	if err != nil {
		return "", domainerrors.NewAuthError(domainerrors.AuthPhaseLogin, err)
	}

	var resp loginResponse
	if err := decodePayload(constants.PathLogin, payload, &resp); err != nil {
		return "", domainerrors.NewAuthError(domainerrors.AuthPhaseLogin, err)
	}
	if resp.Token == "" {
		return "", domainerrors.NewAuthError(domainerrors.AuthPhaseLogin,
			domainerrors.NewTransportError(domainerrors.TransportMalformed, constants.PathLogin, errors.New("login response carries no token")))
	}

	m.logger.DebugContext(ctx, "remote login succeeded", slog.Any("credentials", credentials))

	return entity.SessionToken(resp.Token), nil
}

func (m *sessionManager) SelectTenant(ctx context.Context, token entity.SessionToken, companyID, fiscalYear int) (entity.SessionToken, *entity.Tenant, error) {
	if token.IsZero() {
		return "", nil, &domainerrors.AuthError{
			Kind:  domainerrors.AuthRejected,
			Phase: domainerrors.AuthPhaseSelectTenant,
			Err:   errors.New("no session token"),
		}
	}
	if fiscalYear <= 0 {
		fiscalYear = m.now().Year()
	}

	payload, err := m.client.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   constants.PathSelectCompany,
		Body:   selectCompanyRequest{CompanyID: companyID, FiscalYear: fiscalYear},
		Token:  token,
	})
	if err != nil {
		return "", nil, domainerrors.NewAuthError(domainerrors.AuthPhaseSelectTenant, err)
	}

	var resp selectCompanyResponse
	if err := decodePayload(constants.PathSelectCompany, payload, &resp); err != nil {
		return "", nil, domainerrors.NewAuthError(domainerrors.AuthPhaseSelectTenant, err)
	}
	if resp.Token == "" {
		return "", nil, domainerrors.NewAuthError(domainerrors.AuthPhaseSelectTenant,
			domainerrors.NewTransportError(domainerrors.TransportMalformed, constants.PathSelectCompany, errors.New("company selection carries no token")))
	}

	tenant := resp.Company
	if tenant == nil {
		tenant = &entity.Tenant{ID: companyID}
	}
	if tenant.ID == 0 {
		tenant.ID = companyID
	}

	m.logger.DebugContext(ctx, "remote tenant selected",
		slog.Int("company_id", tenant.ID),
		slog.Int("fiscal_year", fiscalYear),
	)

	return entity.SessionToken(resp.Token), tenant, nil
}

func decodePayload(endpoint string, payload json.RawMessage, out any) error {
	if err := json.Unmarshal(payload, out); err != nil {
		return domainerrors.NewTransportError(domainerrors.TransportMalformed, endpoint, err)
	}

	return nil
}
