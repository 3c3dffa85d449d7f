package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/DenizArda13/football-alert-cli/internal/mockapi"
	"github.com/DenizArda13/football-alert-cli/statsource"
)

// mockServerCmd runs the standalone mock statistics API.
var mockServerCmd = &cobra.Command{
	Use:   "mock-server",
	Short: "Run the local mock statistics API",
	Long: `Run a local HTTP server that mimics the statistics API for the mock
fixture catalog. Values progress on every poll, so a watch pointed at it
will see conditions cross their targets within a few intervals.

Endpoints:
  GET /fixtures                           the fixture catalog
  GET /fixtures/statistics?fixture=ID     current statistics for a fixture
  GET /metrics                            Prometheus metrics

The server runs until interrupted (Ctrl+C) or receives SIGTERM.

Example:
  football-alert mock-server --port 5000
  football-alert watch --base-url http://127.0.0.1:5000 --fixture-id 1001 \
    --stat Corners --team home --target 3`,
	RunE: runMockServer,
}

func init() {
	rootCmd.AddCommand(mockServerCmd)

	mockServerCmd.Flags().Int("port", 5000, "port to listen on (0 for an ephemeral port)")
}

func runMockServer(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	port, _ := cmd.Flags().GetInt("port")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := mockapi.NewServer(statsource.NewGenerator(), port, logger)
	if err := srv.Start(ctx); err != nil {
		return fmt.Errorf("failed to start mock server: %w", err)
	}

	fmt.Printf("Mock statistics API listening on %s\n", srv.URL())

	<-ctx.Done()
	srv.Wait()
	logger.Info("shutdown complete")
	return nil
}
