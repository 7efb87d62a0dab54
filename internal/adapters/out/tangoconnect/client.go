// Package tangoconnect talks to the Tango Connect invoicing API: OAuth2 client
// credentials, the pending-delivery invoice listing, delivery status updates and
// webhook registration.
package tangoconnect

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/facebookgo/clock"

	"entregas/internal/adapters/out/metrics"
	"entregas/internal/core/ports"
)

const (
	tokenPath           = "/oauth/token"
	pendingInvoicesPath = "/api/facturas/pendientes-entrega"
	webhookPath         = "/api/webhooks/configurar"

	defaultTimeout  = 30 * time.Second
	maxResponseSize = 10 << 20
)

// Config holds the connection settings. Zero-valued optional fields get defaults.
type Config struct {
	BaseURL      string
	ClientID     string
	ClientSecret string

	HTTPClient *http.Client
	Clock      clock.Clock
	Logger     *slog.Logger
	Metrics    *metrics.Metrics
}

// Client implements ports.InvoicingSystem. It is safe for concurrent use.
type Client struct {
	baseURL      string
	clientID     string
	clientSecret string
	httpClient   *http.Client
	tokens       *tokenSource
	logger       *slog.Logger
	metrics      *metrics.Metrics
}

var _ ports.InvoicingSystem = (*Client)(nil)

func NewClient(cfg Config) *Client {
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: defaultTimeout}
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.New()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	c := &Client{
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		httpClient:   cfg.HTTPClient,
		logger:       cfg.Logger.With("component", "tangoconnect"),
		metrics:      cfg.Metrics,
	}
	c.tokens = newTokenSource(cfg.Clock, c.requestToken)

	return c
}

// Authenticate returns a valid access token, requesting one only when the cached
// token is missing or about to expire.
func (c *Client) Authenticate(ctx context.Context) (string, error) {
	return c.tokens.Token(ctx)
}

// PullPendingInvoices fetches the whole pending listing and maps every record.
// A single bad record fails the call; partial results are never returned.
func (c *Client) PullPendingInvoices(ctx context.Context) ([]ports.OrderCandidate, error) {
	var invoices []Invoice
	if err := c.call(ctx, "pull", http.MethodGet, pendingInvoicesPath, nil, &invoices); err != nil {
		return nil, err
	}

	candidates := make([]ports.OrderCandidate, 0, len(invoices))
	for i, inv := range invoices {
		candidate, err := ToCandidate(inv)
		if err != nil {
			return nil, &SyncError{Op: "pull", Cause: fmt.Errorf("record %d: %w", i, err)}
		}
		candidates = append(candidates, candidate)
	}

	c.logger.DebugContext(ctx, "pulled pending invoices", "count", len(candidates))
	return candidates, nil
}

func (c *Client) PushDeliveryConfirmation(ctx context.Context, confirmation ports.DeliveryConfirmation) error {
	path := "/api/facturas/" + url.PathEscape(confirmation.InvoiceNumber.String()) + "/actualizar-estado"
	body := statusUpdateRequest{
		Estado:       deliveredState,
		DniReceptor:  confirmation.ReceiverDocument,
		FechaEntrega: confirmation.DeliveredAt.UTC().Format("2006-01-02T15:04:05.000Z07:00"),
	}

	return c.call(ctx, "push", http.MethodPost, path, body, nil)
}

func (c *Client) RegisterWebhook(ctx context.Context, callbackURL string) error {
	if _, err := url.ParseRequestURI(callbackURL); err != nil {
		return &SyncError{Op: "register webhook", Cause: err}
	}

	body := webhookRequest{
		Event:       newInvoiceEvent,
		CallbackURL: callbackURL,
		Active:      true,
	}
	return c.call(ctx, "register webhook", http.MethodPost, webhookPath, body, nil)
}

// call performs an authenticated request. A 401 drops the token and the request is
// retried once with a fresh one.
func (c *Client) call(ctx context.Context, op, method, path string, body, out any) error {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return err
	}

	status, err := c.send(ctx, op, method, path, token, body, out)
	if status != http.StatusUnauthorized {
		return err
	}

	c.logger.InfoContext(ctx, "access token rejected, re-authenticating", "op", op)
	c.tokens.Invalidate(token)

	token, err = c.tokens.Token(ctx)
	if err != nil {
		return err
	}

	status, err = c.send(ctx, op, method, path, token, body, out)
	if status == http.StatusUnauthorized {
		return &AuthenticationError{StatusCode: status}
	}
	return err
}

func (c *Client) send(ctx context.Context, op, method, path, token string, body, out any) (int, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return 0, &SyncError{Op: op, Cause: err}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, &SyncError{Op: op, Cause: err}
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, &SyncError{Op: op, Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseSize))
		return resp.StatusCode, &SyncError{Op: op, StatusCode: resp.StatusCode}
	}

	if out != nil {
		if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(out); err != nil {
			return resp.StatusCode, &SyncError{Op: op, Cause: fmt.Errorf("decode response: %w", err)}
		}
	}

	return resp.StatusCode, nil
}

// requestToken runs the client credentials grant.
func (c *Client) requestToken(ctx context.Context) (resp tokenResponse, err error) {
	defer func() { c.metrics.TokenRefreshed(err) }()

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.clientID)
	form.Set("client_secret", c.clientSecret)
	form.Set("scope", "read write")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+tokenPath, strings.NewReader(form.Encode()))
	if err != nil {
		return tokenResponse{}, &AuthenticationError{Cause: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return tokenResponse{}, &AuthenticationError{Cause: err}
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(httpResp.Body, maxResponseSize))
		return tokenResponse{}, &AuthenticationError{StatusCode: httpResp.StatusCode}
	}

	if err := json.NewDecoder(io.LimitReader(httpResp.Body, maxResponseSize)).Decode(&resp); err != nil {
		return tokenResponse{}, &AuthenticationError{Cause: fmt.Errorf("decode token: %w", err)}
	}
	if resp.AccessToken == "" {
		return tokenResponse{}, &AuthenticationError{Cause: errors.New("empty access token")}
	}

	c.logger.DebugContext(ctx, "access token issued", "expires_in", resp.ExpiresIn)
	return resp, nil
}
