package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ry-ops/pulseway-rmm-a2a-mcp-server/services"
)

const (
	docsResourceURI    = "pulseway://docs/api"
	systemsResourceURI = "pulseway://systems"
)

const apiDocumentation = `# Pulseway RMM API Documentation

The Pulseway API provides programmatic access to your RMM platform.

## Authentication
- Uses token-based authentication
- Requires Token ID and Token Secret
- Tokens are configured in Administration -> Configuration -> API Access

## Available Endpoints
- GET /api/v1/organizations - List all organizations
- GET /api/v1/systems - List all systems
- GET /api/v1/systems/{id} - Get system details
- GET /api/v1/systems/{id}/notifications - Get system notifications
- GET /api/v1/systems/{id}/metrics/{type} - Get system metrics

## Rate Limits
- 1500 requests per hour per endpoint

For full documentation, visit: https://api.pulseway.com/
`

func (s *Server) registerResources() {
	s.mcp.AddResource(&mcp.Resource{
		URI:         docsResourceURI,
		Name:        "Pulseway API Documentation",
		MIMEType:    "text/plain",
		Description: "Documentation for the Pulseway RMM API",
	}, s.readDocs)

	s.mcp.AddResource(&mcp.Resource{
		URI:         systemsResourceURI,
		Name:        "Managed Systems",
		MIMEType:    "text/plain",
		Description: "List of all managed systems",
	}, s.readSystems)
}

func (s *Server) readDocs(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	return textResource(docsResourceURI, apiDocumentation), nil
}

// readSystems renders the live system list, one line per system. Unlike
// tools, resource reads report failures through the protocol's resource
// error response, so errors are returned rather than rendered.
func (s *Server) readSystems(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	systems, err := s.client.Systems.List(ctx, services.ListSystemsOptions{})
	if err != nil {
		s.logger.Error("systems resource read failed", "error", err)
		return nil, fmt.Errorf("listing systems: %w", err)
	}

	var b strings.Builder
	for _, sys := range systems {
		fmt.Fprintf(&b, "- %s (%s): %s\n", sys.Name, sys.ID, sys.Status)
	}
	return textResource(systemsResourceURI, b.String()), nil
}

func textResource(uri, text string) *mcp.ReadResourceResult {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{URI: uri, MIMEType: "text/plain", Text: text},
		},
	}
}
