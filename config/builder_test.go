package config

import (
	"testing"

	footballalert "github.com/DenizArda13/football-alert-cli"
	"github.com/DenizArda13/football-alert-cli/statsource"
)

func TestBuildWatches(t *testing.T) {
	cfg, err := Parse([]byte(validYAML))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	watches, err := cfg.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if got, want := len(watches), 1; got != want {
		t.Fatalf("len(watches) = %d, want %d", got, want)
	}

	w := watches[0]
	if got, want := w.Fixture.ID, 1001; got != want {
		t.Errorf("Fixture.ID = %d, want %d", got, want)
	}
	if got, want := w.Fixture.HomeTeam, "Manchester City"; got != want {
		t.Errorf("Fixture.HomeTeam = %q, want %q", got, want)
	}
	if got, want := w.Set.Len(), 2; got != want {
		t.Fatalf("Set.Len() = %d, want %d", got, want)
	}

	conds := w.Set.Conditions()
	if got, want := conds[0].Statistic, "Corners"; got != want {
		t.Errorf("conds[0].Statistic = %q, want %q", got, want)
	}
	if got, want := conds[0].Side, footballalert.SideHome; got != want {
		t.Errorf("conds[0].Side = %q, want %q", got, want)
	}
	if got, want := conds[1].Target, 5; got != want {
		t.Errorf("conds[1].Target = %d, want %d", got, want)
	}
}

func TestBuildFillsNamesFromCatalog(t *testing.T) {
	yaml := `
watches:
  - fixture_id: 1002
    conditions:
      - {stat: Goals, team: away, target: 1}
`
	cfg, err := Parse([]byte(yaml))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	watches, err := cfg.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	f := watches[0].Fixture
	if got, want := f.HomeTeam, "Real Madrid"; got != want {
		t.Errorf("HomeTeam = %q, want %q", got, want)
	}
	if got, want := f.AwayTeam, "Barcelona"; got != want {
		t.Errorf("AwayTeam = %q, want %q", got, want)
	}
	if got, want := f.League, "La Liga"; got != want {
		t.Errorf("League = %q, want %q", got, want)
	}
}

func TestBuildKeepsExplicitNames(t *testing.T) {
	yaml := `
watches:
  - fixture_id: 1001
    home_team: Custom Home
    conditions:
      - {stat: Corners, team: home, target: 3}
`
	cfg, err := Parse([]byte(yaml))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	watches, err := cfg.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	f := watches[0].Fixture
	if got, want := f.HomeTeam, "Custom Home"; got != want {
		t.Errorf("HomeTeam = %q, want %q", got, want)
	}
	// Away side was omitted, so the catalog name is used.
	if got, want := f.AwayTeam, "Liverpool"; got != want {
		t.Errorf("AwayTeam = %q, want %q", got, want)
	}
}

func TestBuildSourceMock(t *testing.T) {
	cfg := &Config{Source: SourceConfig{Mode: ModeMock}}

	src, err := cfg.BuildSource()
	if err != nil {
		t.Fatalf("BuildSource() error = %v", err)
	}
	if _, ok := src.(*statsource.Generator); !ok {
		t.Errorf("BuildSource() = %T, want *statsource.Generator", src)
	}
}

func TestBuildSourceHTTP(t *testing.T) {
	cfg := &Config{Source: SourceConfig{Mode: ModeHTTP, BaseURL: "http://127.0.0.1:5000"}}

	src, err := cfg.BuildSource()
	if err != nil {
		t.Fatalf("BuildSource() error = %v", err)
	}
	if _, ok := src.(*statsource.Client); !ok {
		t.Errorf("BuildSource() = %T, want *statsource.Client", src)
	}
}

func TestBuildSourceUnknownMode(t *testing.T) {
	cfg := &Config{Source: SourceConfig{Mode: "carrier-pigeon"}}

	if _, err := cfg.BuildSource(); err == nil {
		t.Fatal("BuildSource() error = nil, want error for unknown mode")
	}
}
