package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

func newHealthcheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "healthcheck",
		Short: "Check connectivity to the Pulseway API",
		RunE:  runHealthcheck,
	}
}

func runHealthcheck(cmd *cobra.Command, _ []string) error {
	client, err := loadClient(cmd)
	if err != nil {
		return err
	}

	if !client.HealthCheck(cmd.Context()) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s is not reachable\n", failStyle.Render("FAIL"), client.GetBaseURL())
		return fmt.Errorf("pulseway API health check failed")
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s is healthy\n", okStyle.Render("OK"), client.GetBaseURL())
	return nil
}
