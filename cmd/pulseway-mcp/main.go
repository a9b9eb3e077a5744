// Command pulseway-mcp serves the Pulseway RMM API over MCP stdio.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	pulseway "github.com/ry-ops/pulseway-rmm-a2a-mcp-server"
	"github.com/ry-ops/pulseway-rmm-a2a-mcp-server/mcpserver"
	"github.com/ry-ops/pulseway-rmm-a2a-mcp-server/models"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "pulseway-mcp",
		Short:         "MCP server exposing the Pulseway RMM API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			// Missing .env is fine; the environment may be set directly.
			_ = godotenv.Load()
			configureLogging(cmd)
		},
	}

	cmd.PersistentFlags().String("config", "", "Path to a YAML config file (environment variables take precedence)")
	cmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error")

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newHealthcheckCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// configureLogging routes slog to stderr. Stdout is reserved for the MCP
// stdio transport; writing anything else there corrupts the protocol stream.
func configureLogging(cmd *cobra.Command) {
	levelName, _ := cmd.Flags().GetString("log-level")
	var level slog.Level
	if err := level.UnmarshalText([]byte(levelName)); err != nil {
		level = slog.LevelInfo
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

// loadClient builds a configured PulsewayClient or fails with a message
// naming the missing configuration.
func loadClient(cmd *cobra.Command) (*pulseway.PulsewayClient, error) {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := models.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	return pulseway.NewClient(cfg, pulseway.WithLogger(slog.Default()))
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the server version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), mcpserver.Version)
		},
	}
}
