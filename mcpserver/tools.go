package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ry-ops/pulseway-rmm-a2a-mcp-server/models"
	"github.com/ry-ops/pulseway-rmm-a2a-mcp-server/services"
)

// toolFunc is the shape of a tool implementation: loosely-typed arguments in,
// a JSON-serializable payload out. Wrapping happens in handleTool.
type toolFunc func(ctx context.Context, args map[string]any) (any, error)

func (s *Server) registerTools() {
	s.mcp.AddTool(&mcp.Tool{
		Name:        "list_systems",
		Description: "List all systems managed by Pulseway",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"organization_id": {
					Type:        "string",
					Description: "Optional organization ID to filter by",
				},
				"online_only": {
					Type:        "boolean",
					Description: "If true, only return online systems",
					Default:     json.RawMessage(`false`),
				},
			},
		},
	}, s.handleTool("list_systems", s.listSystems))

	s.mcp.AddTool(&mcp.Tool{
		Name:        "get_system_details",
		Description: "Get detailed information about a specific system",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"system_id": {
					Type:        "string",
					Description: "The ID of the system",
				},
			},
			Required: []string{"system_id"},
		},
	}, s.handleTool("get_system_details", s.getSystemDetails))

	s.mcp.AddTool(&mcp.Tool{
		Name:        "get_system_notifications",
		Description: "Get notifications for a specific system",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"system_id": {
					Type:        "string",
					Description: "The ID of the system",
				},
				"status": {
					Type:        "string",
					Enum:        []any{"active", "acknowledged", "resolved"},
					Description: "Filter by notification status",
				},
			},
			Required: []string{"system_id"},
		},
	}, s.handleTool("get_system_notifications", s.getSystemNotifications))

	s.mcp.AddTool(&mcp.Tool{
		Name:        "list_organizations",
		Description: "List all organizations in the Pulseway account",
		InputSchema: &jsonschema.Schema{
			Type:       "object",
			Properties: map[string]*jsonschema.Schema{},
		},
	}, s.handleTool("list_organizations", s.listOrganizations))

	s.mcp.AddTool(&mcp.Tool{
		Name:        "get_system_metrics",
		Description: "Get performance metrics for a system",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"system_id": {
					Type:        "string",
					Description: "The ID of the system",
				},
				"metric_type": {
					Type:        "string",
					Enum:        []any{"cpu", "memory", "disk", "network"},
					Description: "Type of metric to retrieve",
					Default:     json.RawMessage(`"cpu"`),
				},
			},
			Required: []string{"system_id"},
		},
	}, s.handleTool("get_system_metrics", s.getSystemMetrics))
}

// handleTool adapts a toolFunc to the protocol. It is the terminal error
// boundary: argument failures, API failures, serialization failures, and
// recovered panics all come back as a single "Error:" text block with the
// error flag set, never as a handler error or a crash of the serving loop.
func (s *Server) handleTool(name string, fn toolFunc) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (result *mcp.CallToolResult, err error) {
		defer func() {
			if r := recover(); r != nil {
				s.logger.Error("tool panicked", "tool", name, "panic", r)
				result = errorResult(fmt.Errorf("%v", r))
				err = nil
			}
		}()

		args, argErr := toolArgs(req)
		if argErr != nil {
			return errorResult(argErr), nil
		}

		payload, toolErr := fn(ctx, args)
		if toolErr != nil {
			s.logger.Error("tool call failed", "tool", name, "error", toolErr)
			return errorResult(toolErr), nil
		}

		text, marshalErr := json.MarshalIndent(payload, "", "  ")
		if marshalErr != nil {
			return errorResult(fmt.Errorf("serializing result: %w", marshalErr)), nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: string(text)}},
		}, nil
	}
}

func (s *Server) listSystems(ctx context.Context, args map[string]any) (any, error) {
	systems, err := s.client.Systems.List(ctx, services.ListSystemsOptions{
		OrganizationID: optionalStringArg(args, "organization_id"),
		OnlineOnly:     boolArg(args, "online_only", false),
	})
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"systems": systems,
		"count":   len(systems),
	}, nil
}

func (s *Server) getSystemDetails(ctx context.Context, args map[string]any) (any, error) {
	systemID, err := stringArg(args, "system_id")
	if err != nil {
		return nil, err
	}
	return s.client.Systems.GetDetails(ctx, systemID)
}

func (s *Server) getSystemNotifications(ctx context.Context, args map[string]any) (any, error) {
	systemID, err := stringArg(args, "system_id")
	if err != nil {
		return nil, err
	}

	var status *models.NotificationStatus
	if raw := optionalStringArg(args, "status"); raw != "" {
		parsed, err := models.ParseNotificationStatus(raw)
		if err != nil {
			return nil, err
		}
		status = &parsed
	}

	notifications, err := s.client.Notifications.ListForSystem(ctx, systemID, status)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"notifications": notifications,
		"count":         len(notifications),
	}, nil
}

func (s *Server) listOrganizations(ctx context.Context, args map[string]any) (any, error) {
	organizations, err := s.client.Organizations.List(ctx)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"organizations": organizations,
		"count":         len(organizations),
	}, nil
}

func (s *Server) getSystemMetrics(ctx context.Context, args map[string]any) (any, error) {
	systemID, err := stringArg(args, "system_id")
	if err != nil {
		return nil, err
	}

	metricType := models.MetricTypeCPU
	if raw := optionalStringArg(args, "metric_type"); raw != "" {
		metricType, err = models.ParseMetricType(raw)
		if err != nil {
			return nil, err
		}
	}

	return s.client.Metrics.GetSystemMetrics(ctx, systemID, metricType)
}

// toolArgs extracts the raw argument map from a request.
func toolArgs(req *mcp.CallToolRequest) (map[string]any, error) {
	if req == nil || req.Params == nil {
		return map[string]any{}, nil
	}
	return unmarshalArgs([]byte(req.Params.Arguments))
}

func unmarshalArgs(raw []byte) (map[string]any, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return map[string]any{}, nil
	}
	var args map[string]any
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}
	if args == nil {
		args = map[string]any{}
	}
	return args, nil
}

func stringArg(args map[string]any, key string) (string, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return "", fmt.Errorf("missing required argument %q", key)
	}
	str, ok := v.(string)
	if !ok || str == "" {
		return "", fmt.Errorf("argument %q must be a non-empty string", key)
	}
	return str, nil
}

func optionalStringArg(args map[string]any, key string) string {
	if str, ok := args[key].(string); ok {
		return str
	}
	return ""
}

func boolArg(args map[string]any, key string, def bool) bool {
	if b, ok := args[key].(bool); ok {
		return b
	}
	return def
}

func errorResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: "Error: " + err.Error()}},
		IsError: true,
	}
}
