// Package config provides YAML configuration parsing for the football
// alert CLI, as an alternative to assembling watches from repeated flags.
//
// Example configuration:
//
//	poll_interval: 60s
//	halt_when_satisfied: true
//
//	source:
//	  mode: http
//	  base_url: http://127.0.0.1:5000
//	  api_key: ${FOOTBALL_API_KEY:-}
//
//	watches:
//	  - fixture_id: 1001
//	    home_team: Manchester City
//	    away_team: Liverpool
//	    league: Premier League
//	    conditions:
//	      - stat: Corners
//	        team: home
//	        target: 3
//	      - stat: Total Shots
//	        team: away
//	        target: 5
package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"
)

// Source modes.
const (
	ModeMock = "mock"
	ModeHTTP = "http"
)

// minPollInterval guards against hammering the statistics source.
const minPollInterval = 1 * time.Second

const defaultPollInterval = Duration(60 * time.Second)

// Config is the root configuration structure.
//
// It maps directly to the YAML file; use [Load] or [Parse] to create one.
type Config struct {
	// PollInterval is the time between statistic polls per fixture.
	// Accepts duration strings like "60s", "1m", "500ms". Defaults to 60s.
	PollInterval Duration `yaml:"poll_interval"`

	// HaltWhenSatisfied ends the run once every watched set has fired,
	// instead of polling until interrupted.
	HaltWhenSatisfied bool `yaml:"halt_when_satisfied"`

	// Source selects the statistics backend.
	Source SourceConfig `yaml:"source"`

	// Watches lists the fixtures to monitor with their conditions.
	Watches []WatchConfig `yaml:"watches"`
}

// SourceConfig selects and configures the statistics backend.
type SourceConfig struct {
	// Mode is "mock" (in-process generator) or "http" (API client).
	// Defaults to mock.
	Mode string `yaml:"mode"`

	// BaseURL is the API base URL for http mode. Supports environment
	// variable substitution: ${VAR} or ${VAR:-default}.
	BaseURL string `yaml:"base_url"`

	// APIKey is sent as the x-rapidapi-key header in http mode.
	// Supports environment variable substitution.
	APIKey string `yaml:"api_key"`
}

// WatchConfig defines one fixture and its conditions.
type WatchConfig struct {
	// FixtureID is the stable match identifier.
	FixtureID int `yaml:"fixture_id"`

	// HomeTeam / AwayTeam / League are display labels. When omitted and
	// the fixture is in the mock catalog, the catalog names are used.
	HomeTeam string `yaml:"home_team"`
	AwayTeam string `yaml:"away_team"`
	League   string `yaml:"league"`

	// Conditions are the AND-combined thresholds, in file order.
	Conditions []ConditionConfig `yaml:"conditions"`
}

// ConditionConfig is one threshold within a watch.
type ConditionConfig struct {
	// Stat is the statistic name, e.g. "Corners".
	Stat string `yaml:"stat"`

	// Team is the side the threshold applies to: "home" or "away".
	Team string `yaml:"team"`

	// Target is the positive integer threshold.
	Target int `yaml:"target"`
}

// Duration wraps time.Duration for YAML unmarshalling.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler for Duration.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}

	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler for Duration, emitting the
// standard duration string form.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Duration returns the underlying time.Duration value.
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

// envVarPattern matches ${VAR} and ${VAR:-default} patterns.
var envVarPattern = regexp.MustCompile(`\$\{([^}:]+)(:-([^}]*))?\}`)

// expandEnvVars replaces ${VAR} and ${VAR:-default} patterns with
// environment values. A reference to an unset variable without a default
// is an error.
func expandEnvVars(s string) (string, error) {
	var firstErr error

	result := envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		if firstErr != nil {
			return match
		}

		submatches := envVarPattern.FindStringSubmatch(match)
		if len(submatches) < 2 {
			return match
		}

		varName := submatches[1]
		hasDefault := len(submatches) > 2 && submatches[2] != ""
		defaultVal := ""
		if hasDefault && len(submatches) > 3 {
			defaultVal = submatches[3]
		}

		value, exists := os.LookupEnv(varName)
		if !exists {
			if hasDefault {
				return defaultVal
			}
			firstErr = fmt.Errorf("environment variable %q is not set", varName)
			return match
		}
		return value
	})

	if firstErr != nil {
		return "", firstErr
	}
	return result, nil
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse parses YAML configuration data.
//
// Environment variables are expanded in the source base URL and API key,
// defaults are applied (60s interval, mock mode), and the whole structure
// is validated.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if cfg.PollInterval == 0 {
		cfg.PollInterval = defaultPollInterval
	}
	if cfg.Source.Mode == "" {
		cfg.Source.Mode = ModeMock
	}

	if err := cfg.expandAndValidate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// expandAndValidate expands environment variables and validates the config.
func (c *Config) expandAndValidate() error {
	if c.PollInterval.Duration() < minPollInterval {
		return fmt.Errorf("poll_interval must be at least %s, got %s", minPollInterval, c.PollInterval.Duration())
	}

	switch c.Source.Mode {
	case ModeMock:
	case ModeHTTP:
		expanded, err := expandEnvVars(c.Source.BaseURL)
		if err != nil {
			return fmt.Errorf("source: base_url: %w", err)
		}
		c.Source.BaseURL = expanded
		if c.Source.BaseURL == "" {
			return errors.New("source: base_url is required for http mode")
		}

		expanded, err = expandEnvVars(c.Source.APIKey)
		if err != nil {
			return fmt.Errorf("source: api_key: %w", err)
		}
		c.Source.APIKey = expanded
	default:
		return fmt.Errorf("source: unknown mode %q (expected %q or %q)", c.Source.Mode, ModeMock, ModeHTTP)
	}

	if len(c.Watches) == 0 {
		return errors.New("at least one watch must be defined")
	}

	seen := make(map[int]bool, len(c.Watches))
	for i, w := range c.Watches {
		if w.FixtureID <= 0 {
			return fmt.Errorf("watches[%d]: fixture_id must be a positive integer", i)
		}
		if seen[w.FixtureID] {
			return fmt.Errorf("watches[%d]: duplicate fixture_id %d", i, w.FixtureID)
		}
		seen[w.FixtureID] = true

		if len(w.Conditions) == 0 {
			return fmt.Errorf("watches[%d] (fixture %d): at least one condition is required", i, w.FixtureID)
		}
		for j, cond := range w.Conditions {
			if cond.Stat == "" {
				return fmt.Errorf("watches[%d] (fixture %d): conditions[%d]: stat is required", i, w.FixtureID, j)
			}
			if cond.Team != "home" && cond.Team != "away" {
				return fmt.Errorf("watches[%d] (fixture %d): conditions[%d]: team must be 'home' or 'away', got %q",
					i, w.FixtureID, j, cond.Team)
			}
			if cond.Target <= 0 {
				return fmt.Errorf("watches[%d] (fixture %d): conditions[%d]: target must be a positive integer, got %d",
					i, w.FixtureID, j, cond.Target)
			}
		}
	}

	return nil
}
