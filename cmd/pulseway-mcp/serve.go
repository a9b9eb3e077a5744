package main

import (
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ry-ops/pulseway-rmm-a2a-mcp-server/mcpserver"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve MCP over stdio",
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	client, err := loadClient(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server := mcpserver.New(client, mcpserver.WithLogger(slog.Default()))
	return server.Run(ctx)
}
