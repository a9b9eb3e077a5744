package mcpserver

import (
	"context"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	pulseway "github.com/ry-ops/pulseway-rmm-a2a-mcp-server"
)

const (
	serverName = "pulseway-mcp-server"

	// Version is the server version reported to MCP hosts.
	Version = "0.2.0"
)

// Option configures a Server
type Option func(*Server)

// Server adapts a PulsewayClient to the MCP tool and resource surface.
// The client is injected at construction and reused across invocations;
// the server holds no other state, so concurrent tool calls are safe.
type Server struct {
	client *pulseway.PulsewayClient
	logger *slog.Logger
	mcp    *mcp.Server
}

// New creates a Server around an already-constructed client and registers
// the tools and resources.
func New(client *pulseway.PulsewayClient, opts ...Option) *Server {
	s := &Server{
		client: client,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.mcp = mcp.NewServer(&mcp.Implementation{
		Name:    serverName,
		Version: Version,
	}, nil)
	s.registerTools()
	s.registerResources()

	return s
}

// WithLogger sets the logger used for invocation diagnostics
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// MCP returns the underlying protocol server, exposed for transports and
// in-process connections.
func (s *Server) MCP() *mcp.Server {
	return s.mcp
}

// Run serves MCP over stdio until ctx is canceled or the host disconnects.
// Stdout belongs to the transport; all logging must go elsewhere.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info("starting pulseway MCP server", "version", Version)
	return s.mcp.Run(ctx, &mcp.StdioTransport{})
}
