// Package main is the entry point for the football-alert CLI.
//
// The monitoring engine can be used as a library or driven from this
// standalone binary.
//
// Usage:
//
//	football-alert watch --fixture-id 1001 --stat Corners --team home --target 3
//	football-alert watch -c config.yaml      # Monitor fixtures from a config file
//	football-alert validate -c config.yaml   # Validate configuration
//	football-alert fixtures                   # List the mock fixture catalog
//	football-alert mock-server                # Run the local mock stats API
//	football-alert setup                      # Interactive config wizard
//	football-alert version                    # Show version info
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information - set at build time via ldflags.
// Example: go build -ldflags "-X main.version=1.0.0"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCmd is the base command when called without subcommands.
// It just displays help - actual functionality is in subcommands.
var rootCmd = &cobra.Command{
	Use:   "football-alert",
	Short: "Live football statistic alerts from your terminal",
	Long: `football-alert polls live match statistics and fires an alert the
moment every threshold you set for a fixture is reached.

Conditions for the same fixture are combined with AND: the alert fires
once, when the last remaining condition crosses its target.

Quick start:
  1. List available mock fixtures: football-alert fixtures
  2. Watch one: football-alert watch --mock \
       --fixture-id 1001 --stat Corners --team home --target 3
  3. Or write a config with the wizard: football-alert setup`,
	// No Run/RunE means this just shows help when called without subcommands
}

// Execute runs the root command.
// This is the main entry point called from main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error, just exit with code 1
		os.Exit(1)
	}
}

func main() {
	Execute()
}

// versionCmd prints version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print the version, commit hash, and build date of this football-alert binary.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("football-alert %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built:  %s\n", date)
	},
}

func init() {
	// Register subcommands with root
	rootCmd.AddCommand(versionCmd)
}
