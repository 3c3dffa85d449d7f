package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DenizArda13/football-alert-cli/config"
)

// validateCmd validates a config file without starting a watch.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a config file",
	Long: `Validate a football-alert configuration file without monitoring anything.

This command parses the YAML, expands environment variables, and validates
all fields. It's useful for CI/CD pipelines or pre-deployment checks.

Exit codes:
  0 - Config is valid
  1 - Config is invalid (error details printed to stderr)

Example:
  football-alert validate -c config.yaml
  football-alert validate --config /etc/football-alert/config.yaml`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringP("config", "c", "", "path to config file (required)")
	_ = validateCmd.MarkFlagRequired("config")
}

func runValidate(cmd *cobra.Command, args []string) error {
	configFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	conditions := 0
	for _, w := range cfg.Watches {
		conditions += len(w.Conditions)
	}

	fmt.Printf("Config is valid!\n")
	fmt.Printf("  Source:        %s\n", cfg.Source.Mode)
	fmt.Printf("  Poll interval: %s\n", cfg.PollInterval.Duration())
	fmt.Printf("  Fixtures:      %d with %d condition(s) total\n", len(cfg.Watches), conditions)

	return nil
}
