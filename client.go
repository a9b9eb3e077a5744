// Package pulseway provides a client for the Pulseway RMM REST API.
//
// The client owns a single http.Client bound to the configured server URL
// and token credentials. Operations are grouped into services mirroring the
// API's resource areas (organizations, systems, notifications, metrics).
package pulseway

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/ry-ops/pulseway-rmm-a2a-mcp-server/models"
	"github.com/ry-ops/pulseway-rmm-a2a-mcp-server/services"
)

const apiPrefix = "/api/v1"

// ClientOption is a function that configures a PulsewayClient
type ClientOption func(*PulsewayClient)

// PulsewayClient is the main client for interacting with the Pulseway API.
// After creation, the client is immutable and safe for concurrent use.
type PulsewayClient struct {
	baseURL     string
	tokenID     string
	tokenSecret string
	httpClient  *http.Client
	logger      *slog.Logger

	// Service groups
	Organizations *services.OrganizationService
	Systems       *services.SystemService
	Notifications *services.NotificationService
	Metrics       *services.MetricService
}

// NewClient creates a new PulsewayClient from the given configuration.
// An incomplete configuration is an error; callers treat it as fatal.
func NewClient(cfg models.Config, opts ...ClientOption) (*PulsewayClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("pulseway config: %w", err)
	}

	client := &PulsewayClient{
		baseURL:     cfg.ServerURL,
		tokenID:     cfg.TokenID,
		tokenSecret: cfg.TokenSecret,
		logger:      slog.Default(),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}

	// Apply options
	for _, opt := range opts {
		opt(client)
	}

	// Initialize services
	client.Organizations = services.NewOrganizationService(client)
	client.Systems = services.NewSystemService(client)
	client.Notifications = services.NewNotificationService(client)
	client.Metrics = services.NewMetricService(client)

	return client, nil
}

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *PulsewayClient) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets the HTTP client timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *PulsewayClient) {
		c.httpClient.Timeout = timeout
	}
}

// WithLogger sets the logger used for request diagnostics
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *PulsewayClient) {
		c.logger = logger
	}
}

// GetBaseURL returns the configured base URL
func (c *PulsewayClient) GetBaseURL() string {
	return c.baseURL
}

// NewRequest creates an HTTP request against the API with auth and JSON
// negotiation headers and a fresh X-Request-Id.
func (c *PulsewayClient) NewRequest(ctx context.Context, method, path string, query url.Values) (*http.Request, error) {
	u := c.baseURL + apiPrefix + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s:%s", c.tokenID, c.tokenSecret))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	return req, nil
}

// Get issues a GET against the API and returns the raw response body.
// Every failure comes back as *APIError: transport failures with status 0,
// HTTP failures with the real status and the raw body under the "response"
// details key. There is exactly one attempt per call.
func (c *PulsewayClient) Get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	req, err := c.NewRequest(ctx, http.MethodGet, path, query)
	if err != nil {
		return nil, &APIError{StatusCode: 0, Message: err.Error()}
	}
	requestID := req.Header.Get("X-Request-Id")
	c.logger.Debug("pulseway request", "method", req.Method, "url", req.URL.String(), "request_id", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("pulseway request failed", "url", req.URL.String(), "request_id", requestID, "error", err)
		return nil, &APIError{
			StatusCode: 0,
			Message:    fmt.Sprintf("request failed: %v", err),
			RequestID:  requestID,
		}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &APIError{
			StatusCode: 0,
			Message:    fmt.Sprintf("reading response body: %v", err),
			RequestID:  requestID,
		}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.logger.Error("pulseway request rejected", "url", req.URL.String(), "status", resp.StatusCode, "request_id", requestID)
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("GET %s returned %s", path, resp.Status),
			Details:    map[string]any{"response": string(body)},
			RequestID:  requestID,
		}
	}

	return body, nil
}

// HealthCheck reports whether the API is reachable and accepting requests.
// It never returns an error; failures are logged and reported as false.
func (c *PulsewayClient) HealthCheck(ctx context.Context) bool {
	if _, err := c.Get(ctx, "/health", nil); err != nil {
		c.logger.Warn("health check failed", "error", err)
		return false
	}
	return true
}
