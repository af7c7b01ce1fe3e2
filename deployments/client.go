package deployments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/aicore-community/go-aicore/tokenmanager"
)

const listPath = "/v2/lm/deployments"

// Client is a read-only client for the AI Core deployment listing endpoint.
// It obtains auth headers from a TokenManager per request and applies the
// standard caller-side recovery for stale credentials: when the API answers
// 401 despite a locally valid token, it forces one refresh and retries once.
type Client struct {
	baseURL       string
	resourceGroup string
	tm            *tokenmanager.TokenManager
	httpClient    *http.Client
}

// Option is a functional option for configuring Client.
type Option func(*Client)

// WithHTTPClient replaces the default 30s-timeout HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithResourceGroup overrides the token manager's default resource group
// for listing requests.
func WithResourceGroup(resourceGroup string) Option {
	return func(c *Client) {
		c.resourceGroup = resourceGroup
	}
}

// NewClient creates a deployment listing client for the given AI Core API
// base URL.
func NewClient(baseURL string, tm *tokenmanager.TokenManager, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("deployments: base URL is required")
	}
	if tm == nil {
		return nil, errors.New("deployments: token manager is required")
	}

	c := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		tm:         tm,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// List returns all deployments visible in the configured resource group.
func (c *Client) List(ctx context.Context) ([]Deployment, error) {
	deployments, unauthorized, err := c.list(ctx)
	if err != nil && unauthorized {
		// The token was valid locally but rejected remotely; rotate the
		// credential once and retry. Further failures surface as-is.
		if refreshErr := c.tm.ForceRefresh(ctx); refreshErr != nil {
			return nil, refreshErr
		}
		deployments, _, err = c.list(ctx)
	}
	return deployments, err
}

func (c *Client) list(ctx context.Context) ([]Deployment, bool, error) {
	headers, err := c.tm.AuthHeaders(ctx, c.resourceGroup)
	if err != nil {
		return nil, false, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+listPath, nil)
	if err != nil {
		return nil, false, fmt.Errorf("deployments: build list request: %w", err)
	}
	req.Header = headers

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, false, fmt.Errorf("deployments: list request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, true, fmt.Errorf("deployments: list rejected with status %d", resp.StatusCode)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, false, fmt.Errorf("deployments: list failed with status %d", resp.StatusCode)
	}

	var payload listResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, false, fmt.Errorf("deployments: decode list response: %w", err)
	}

	return payload.Resources, false, nil
}
