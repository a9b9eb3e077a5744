package mcpserver

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func TestListResources(t *testing.T) {
	s := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {})
	session := connect(t, s)

	result, err := session.ListResources(context.Background(), nil)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(result.Resources) != 2 {
		t.Fatalf("expected 2 resources, got %d", len(result.Resources))
	}

	uris := map[string]bool{}
	for _, res := range result.Resources {
		uris[res.URI] = true
	}
	if !uris[docsResourceURI] || !uris[systemsResourceURI] {
		t.Errorf("expected docs and systems resources, got %v", uris)
	}
}

func TestReadDocsResource(t *testing.T) {
	s := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("expected no API call for static docs")
	})
	session := connect(t, s)

	result, err := session.ReadResource(context.Background(), &mcp.ReadResourceParams{URI: docsResourceURI})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(result.Contents) != 1 {
		t.Fatalf("expected one content entry, got %d", len(result.Contents))
	}
	if !strings.Contains(result.Contents[0].Text, "Pulseway RMM API Documentation") {
		t.Errorf("unexpected docs content %q", result.Contents[0].Text)
	}
	if result.Contents[0].MIMEType != "text/plain" {
		t.Errorf("expected text/plain, got %s", result.Contents[0].MIMEType)
	}
}

func TestReadSystemsResource(t *testing.T) {
	s := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"id": "sys1", "name": "web", "status": "online", "organization_id": "org1"},
			{"id": "sys2", "name": "db", "status": "offline", "organization_id": "org1"}
		]`))
	})
	session := connect(t, s)

	result, err := session.ReadResource(context.Background(), &mcp.ReadResourceParams{URI: systemsResourceURI})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	text := result.Contents[0].Text
	if !strings.Contains(text, "- web (sys1): online") {
		t.Errorf("expected web line, got %q", text)
	}
	if !strings.Contains(text, "- db (sys2): offline") {
		t.Errorf("expected db line, got %q", text)
	}
}

func TestReadSystemsResource_APIFailure(t *testing.T) {
	s := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	session := connect(t, s)

	if _, err := session.ReadResource(context.Background(), &mcp.ReadResourceParams{URI: systemsResourceURI}); err == nil {
		t.Error("expected an error for a failing backing API")
	}
}

func TestReadResource_UnknownURI(t *testing.T) {
	s := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {})
	session := connect(t, s)

	if _, err := session.ReadResource(context.Background(), &mcp.ReadResourceParams{URI: "pulseway://nope"}); err == nil {
		t.Error("expected an error for an unknown resource uri")
	}
}
