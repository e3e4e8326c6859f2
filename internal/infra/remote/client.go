// Package remote talks to the tenant-oriented business-management API the
// catalog is synchronized from.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"catalogsync/config"
	"catalogsync/internal/domain/entity"
	domainerrors "catalogsync/internal/domain/errors"
	"catalogsync/internal/errors"

	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

const (
	defaultTimeout = 30 * time.Second

	// maxResponseBytes bounds how much of a response body is read.
	maxResponseBytes = 32 << 20

	envelopeStatusSuccess = "success"
)

// Request is one call to the remote API.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   any
	Token  entity.SessionToken
}

// ClientParams holds dependencies for Client, injected by Fx
type ClientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// Client is a thin JSON transport over net/http. It classifies every failure
// into a *errors.TransportError and never retries.
type Client struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// ClientOption customises a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithRateLimit throttles outbound calls to rps requests per second.
func WithRateLimit(rps float64, burst int) ClientOption {
	return func(c *Client) {
		if rps <= 0 {
			return
		}
		if burst <= 0 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// NewClient creates the remote API client from configuration.
func NewClient(params ClientParams) *Client {
	cfg := params.Config.Remote

	return New(cfg.BaseURL, cfg.Timeout, params.Logger, WithRateLimit(cfg.RateLimit, cfg.RateBurst))
}

// New creates a client for baseURL. A non-positive timeout falls back to 30s.
func New(baseURL string, timeout time.Duration, logger *slog.Logger, opts ...ClientOption) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		timeout:    timeout,
		httpClient: &http.Client{},
		logger:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Do performs the request and returns the unwrapped JSON payload.
func (c *Client) Do(ctx context.Context, req Request) (json.RawMessage, error) {
	endpoint := req.Path

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, classifyContextError(ctx, endpoint, err)
		}
	}

	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	httpReq, err := c.newHTTPRequest(reqCtx, req)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, classifyDoError(ctx, reqCtx, endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, classifyDoError(ctx, reqCtx, endpoint, err)
	}

	c.logger.DebugContext(ctx, "remote call finished",
		slog.String("method", httpReq.Method),
		slog.String("endpoint", endpoint),
		slog.Int("status", resp.StatusCode),
		slog.Duration("elapsed", time.Since(start)),
	)

	return decodeResponse(endpoint, resp.StatusCode, body)
}

func (c *Client) newHTTPRequest(ctx context.Context, req Request) (*http.Request, error) {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	target := c.baseURL + req.Path
	if len(req.Query) > 0 {
		target += "?" + req.Query.Encode()
	}

	var body io.Reader
	if req.Body != nil {
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return nil, errors.Wrapf(err, "encode %s request body", req.Path)
		}
		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, errors.Wrapf(err, "build %s request", req.Path)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if !req.Token.IsZero() {
		httpReq.Header.Set("Authorization", "Bearer "+string(req.Token))
	}

	return httpReq, nil
}

// envelope is the {status, data, message} wrapper the remote API puts around payloads.
type envelope struct {
	Status  *string         `json:"status"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func decodeResponse(endpoint string, statusCode int, body []byte) (json.RawMessage, error) {
	switch {
	case statusCode == http.StatusUnauthorized:
		return nil, &domainerrors.TransportError{
			Kind:       domainerrors.TransportUnauthorized,
			Endpoint:   endpoint,
			StatusCode: statusCode,
			StatusText: http.StatusText(statusCode),
		}
	case statusCode == http.StatusNotFound:
		return nil, &domainerrors.TransportError{
			Kind:       domainerrors.TransportNotFound,
			Endpoint:   endpoint,
			StatusCode: statusCode,
			StatusText: http.StatusText(statusCode),
		}
	case statusCode < 200 || statusCode >= 300:
		te := &domainerrors.TransportError{
			Kind:       domainerrors.TransportServerError,
			Endpoint:   endpoint,
			StatusCode: statusCode,
			StatusText: http.StatusText(statusCode),
		}
		if msg := envelopeMessage(body); msg != "" {
			te.Err = errors.New(msg)
		}

		return nil, te
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, domainerrors.NewTransportError(domainerrors.TransportMalformed, endpoint, errors.New("empty response body"))
	}
	if !json.Valid(trimmed) {
		return nil, domainerrors.NewTransportError(domainerrors.TransportMalformed, endpoint, errors.New("response body is not valid JSON"))
	}

	if trimmed[0] != '{' {
		return json.RawMessage(trimmed), nil
	}

	var env envelope
	if err := json.Unmarshal(trimmed, &env); err != nil || env.Status == nil {
		// Plain object payload without an envelope.
		return json.RawMessage(trimmed), nil //nolint:nilerr
	}

	if *env.Status != envelopeStatusSuccess {
		return nil, &domainerrors.TransportError{
			Kind:       domainerrors.TransportServerError,
			Endpoint:   endpoint,
			StatusCode: statusCode,
			StatusText: env.Message,
			Err:        errors.Errorf("remote status %q", *env.Status),
		}
	}
	if len(env.Data) == 0 {
		return nil, domainerrors.NewTransportError(domainerrors.TransportMalformed, endpoint, errors.New("success envelope without data"))
	}

	return env.Data, nil
}

func envelopeMessage(body []byte) string {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return ""
	}

	return env.Message
}

// classifyDoError maps a failed round trip. Parent cancellation is reported as
// a network failure that wraps the context error.
func classifyDoError(parent, reqCtx context.Context, endpoint string, err error) error {
	if parent.Err() != nil {
		return classifyContextError(parent, endpoint, err)
	}
	if errors.Is(reqCtx.Err(), context.DeadlineExceeded) {
		return domainerrors.NewTransportError(domainerrors.TransportTimeout, endpoint, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return domainerrors.NewTransportError(domainerrors.TransportTimeout, endpoint, err)
	}

	return domainerrors.NewTransportError(domainerrors.TransportNetwork, endpoint, err)
}

func classifyContextError(ctx context.Context, endpoint string, err error) error {
	ctxErr := ctx.Err()
	switch {
	case errors.Is(ctxErr, context.DeadlineExceeded):
		return domainerrors.NewTransportError(domainerrors.TransportTimeout, endpoint, ctxErr)
	case ctxErr != nil:
		return domainerrors.NewTransportError(domainerrors.TransportNetwork, endpoint, ctxErr)
	default:
		// The limiter refuses waits that would outlast the deadline.
		return domainerrors.NewTransportError(domainerrors.TransportTimeout, endpoint, err)
	}
}
