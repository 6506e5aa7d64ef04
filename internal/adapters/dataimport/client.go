// Package dataimport is a client for the indexing service's import handler.
package dataimport

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.trai.ch/sourcerer/internal/core/domain"
	"go.trai.ch/sourcerer/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.IndexService = (*Client)(nil)

// maxResponseSize bounds the status document read from the service.
const maxResponseSize = 1 << 20

// Client implements ports.IndexService over HTTP. Requests are not retried.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// NewClient creates a client for the handler at settings.URL.
func NewClient(settings domain.IndexSettings) (*Client, error) {
	if settings.URL == "" {
		return nil, domain.ErrIndexNotConfigured
	}
	return newClientWithHTTP(settings.URL, &http.Client{
		Timeout: settings.Timeout,
	}), nil
}

// newClientWithHTTP creates a Client with a custom http client (used for testing).
func newClientWithHTTP(endpoint string, client *http.Client) *Client {
	return &Client{
		endpoint:   endpoint,
		httpClient: client,
	}
}

// FullImport starts an import run for the selected projects.
func (c *Client) FullImport(ctx context.Context, req domain.ImportRequest) (*domain.ImportStatus, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return c.do(ctx, domain.CommandFullImport, req.Params())
}

// Status reports the state of the current import run.
func (c *Client) Status(ctx context.Context) (*domain.ImportStatus, error) {
	return c.do(ctx, domain.CommandStatus, nil)
}

// Abort stops the current import run.
func (c *Client) Abort(ctx context.Context) (*domain.ImportStatus, error) {
	return c.do(ctx, domain.CommandAbort, nil)
}

func (c *Client) do(ctx context.Context, command domain.ImportCommand, params map[string]string) (*domain.ImportStatus, error) {
	form := url.Values{}
	form.Set("command", string(command))
	form.Set("wt", "json")
	for k, v := range params {
		form.Set(k, v)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, zerr.With(domain.Because(domain.ErrIndexRequestFailed, err), "command", string(command))
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, zerr.With(domain.Because(domain.ErrIndexUnreachable, err), "url", c.endpoint)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		apiErr := domain.WithMeta(domain.ErrIndexRequestFailed, "status_code", resp.StatusCode)
		return nil, zerr.With(apiErr, "command", string(command))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, zerr.With(domain.Because(domain.ErrIndexUnreachable, err), "url", c.endpoint)
	}

	var status domain.ImportStatus
	if err := json.Unmarshal(body, &status); err != nil {
		return nil, zerr.With(domain.Because(domain.ErrIndexDecodeFailed, err), "command", string(command))
	}
	return &status, nil
}
