package pulseway

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ry-ops/pulseway-rmm-a2a-mcp-server/models"
)

func testConfig(serverURL string) models.Config {
	return models.Config{
		ServerURL:   serverURL,
		TokenID:     "test-token-id",
		TokenSecret: "test-token-secret",
	}
}

func TestNewClient(t *testing.T) {
	client, err := NewClient(testConfig("https://pulseway.example.com"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if client.GetBaseURL() != "https://pulseway.example.com" {
		t.Errorf("expected baseURL https://pulseway.example.com, got %s", client.GetBaseURL())
	}

	if client.httpClient.Timeout != 30*time.Second {
		t.Errorf("expected timeout 30s, got %v", client.httpClient.Timeout)
	}

	if client.Organizations == nil || client.Systems == nil || client.Notifications == nil || client.Metrics == nil {
		t.Error("expected all service groups to be initialized")
	}
}

func TestNewClient_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  models.Config
	}{
		{"missing server url", models.Config{TokenID: "id", TokenSecret: "secret"}},
		{"missing token id", models.Config{ServerURL: "https://x", TokenSecret: "secret"}},
		{"missing token secret", models.Config{ServerURL: "https://x", TokenID: "id"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewClient(tt.cfg); err == nil {
				t.Error("expected an error for incomplete config")
			}
		})
	}
}

func TestClientOptions(t *testing.T) {
	customTimeout := 5 * time.Second
	customHTTP := &http.Client{Timeout: time.Second}

	client, err := NewClient(testConfig("https://x"), WithHTTPClient(customHTTP), WithTimeout(customTimeout))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if client.httpClient != customHTTP {
		t.Error("expected custom HTTP client to be used")
	}
	if client.httpClient.Timeout != customTimeout {
		t.Errorf("expected timeout %v, got %v", customTimeout, client.httpClient.Timeout)
	}
}

func TestNewRequest(t *testing.T) {
	client, err := NewClient(testConfig("https://pulseway.example.com"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	req, err := client.NewRequest(context.Background(), "GET", "/systems", nil)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if req.URL.String() != "https://pulseway.example.com/api/v1/systems" {
		t.Errorf("unexpected URL %s", req.URL.String())
	}

	if got := req.Header.Get("Authorization"); got != "Bearer test-token-id:test-token-secret" {
		t.Errorf("unexpected Authorization header %q", got)
	}

	if got := req.Header.Get("Content-Type"); got != "application/json" {
		t.Errorf("expected Content-Type application/json, got %s", got)
	}

	if got := req.Header.Get("Accept"); got != "application/json" {
		t.Errorf("expected Accept application/json, got %s", got)
	}

	if req.Header.Get("X-Request-Id") == "" {
		t.Error("expected X-Request-Id header to be set")
	}
}

func TestGet_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": "invalid token"}`))
	}))
	defer server.Close()

	client, _ := NewClient(testConfig(server.URL))
	_, err := client.Get(context.Background(), "/organizations", nil)
	if err == nil {
		t.Fatal("expected an error for 401 response")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", apiErr.StatusCode)
	}
	if got, _ := apiErr.Details["response"].(string); got != `{"error": "invalid token"}` {
		t.Errorf("expected raw body preserved in details, got %q", got)
	}
	if apiErr.RequestID == "" {
		t.Error("expected request id on APIError")
	}
}

func TestGet_TransportError(t *testing.T) {
	// Point at a server that is already closed.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client, _ := NewClient(testConfig(server.URL))
	_, err := client.Get(context.Background(), "/organizations", nil)
	if err == nil {
		t.Fatal("expected an error for unreachable host")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.StatusCode != 0 {
		t.Errorf("expected status 0 for transport failure, got %d", apiErr.StatusCode)
	}
	if !apiErr.IsTransport() {
		t.Error("expected IsTransport to be true")
	}
	if !strings.Contains(apiErr.Message, "request failed") {
		t.Errorf("expected transport failure message, got %q", apiErr.Message)
	}
}

func TestHealthCheck(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		expected bool
	}{
		{"healthy", http.StatusOK, true},
		{"unavailable", http.StatusServiceUnavailable, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/api/v1/health" {
					t.Errorf("unexpected path %s", r.URL.Path)
				}
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			client, _ := NewClient(testConfig(server.URL))
			if got := client.HealthCheck(context.Background()); got != tt.expected {
				t.Errorf("expected HealthCheck to return %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestHealthCheck_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client, _ := NewClient(testConfig(server.URL))
	if client.HealthCheck(context.Background()) {
		t.Error("expected HealthCheck to return false for unreachable host")
	}
}

func TestAPIErrorMessage(t *testing.T) {
	err := &APIError{StatusCode: 404, Message: "not found"}
	if got := err.Error(); got != "pulseway api error (status 404): not found" {
		t.Errorf("unexpected error string %q", got)
	}

	err = &APIError{StatusCode: 0, Message: "request failed", RequestID: "abc"}
	if got := err.Error(); got != "pulseway api error (status 0, request_id: abc): request failed" {
		t.Errorf("unexpected error string %q", got)
	}
}
