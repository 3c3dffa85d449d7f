package config

import (
	"fmt"

	footballalert "github.com/DenizArda13/football-alert-cli"
	"github.com/DenizArda13/football-alert-cli/statsource"
)

// Build converts the parsed watches into tracker watches.
//
// Team and league labels missing from the file are filled from the mock
// fixture catalog when the fixture is known there.
func (c *Config) Build() ([]footballalert.Watch, error) {
	watches := make([]footballalert.Watch, 0, len(c.Watches))

	for _, w := range c.Watches {
		fixture := footballalert.Fixture{
			ID:       w.FixtureID,
			HomeTeam: w.HomeTeam,
			AwayTeam: w.AwayTeam,
			League:   w.League,
		}
		if catalog, err := statsource.FixtureByID(w.FixtureID); err == nil {
			if fixture.HomeTeam == "" {
				fixture.HomeTeam = catalog.HomeTeam
			}
			if fixture.AwayTeam == "" {
				fixture.AwayTeam = catalog.AwayTeam
			}
			if fixture.League == "" {
				fixture.League = catalog.League
			}
		}

		conditions := make([]footballalert.Condition, 0, len(w.Conditions))
		for _, cond := range w.Conditions {
			side, err := footballalert.ParseSide(cond.Team)
			if err != nil {
				return nil, fmt.Errorf("fixture %d: %w", w.FixtureID, err)
			}
			conditions = append(conditions, footballalert.Condition{
				Statistic: cond.Stat,
				Side:      side,
				Target:    cond.Target,
			})
		}

		set, err := footballalert.NewConditionSet(w.FixtureID, conditions...)
		if err != nil {
			return nil, fmt.Errorf("fixture %d: %w", w.FixtureID, err)
		}

		watches = append(watches, footballalert.Watch{Fixture: fixture, Set: set})
	}

	return watches, nil
}

// BuildSource constructs the statistics source the config selects: the
// in-process generator for mock mode, or the HTTP client for http mode.
func (c *Config) BuildSource() (footballalert.StatSource, error) {
	switch c.Source.Mode {
	case ModeMock:
		return statsource.NewGenerator(), nil
	case ModeHTTP:
		return statsource.NewClient(c.Source.BaseURL, c.Source.APIKey), nil
	default:
		return nil, fmt.Errorf("unknown source mode %q", c.Source.Mode)
	}
}
