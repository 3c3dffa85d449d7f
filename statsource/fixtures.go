package statsource

import (
	"fmt"

	footballalert "github.com/DenizArda13/football-alert-cli"
)

// catalog is the fixed set of fixtures served by the mock source and the
// local mock API server.
var catalog = []footballalert.Fixture{
	{ID: 1001, HomeTeam: "Manchester City", AwayTeam: "Liverpool", League: "Premier League"},
	{ID: 1002, HomeTeam: "Real Madrid", AwayTeam: "Barcelona", League: "La Liga"},
	{ID: 1003, HomeTeam: "Bayern Munich", AwayTeam: "Borussia Dortmund", League: "Bundesliga"},
	{ID: 1004, HomeTeam: "Paris Saint-Germain", AwayTeam: "Marseille", League: "Ligue 1"},
	{ID: 1005, HomeTeam: "Juventus", AwayTeam: "AC Milan", League: "Serie A"},
	{ID: 1006, HomeTeam: "Arsenal", AwayTeam: "Chelsea", League: "Premier League"},
}

// availableStats are the statistic names the mock source produces.
var availableStats = []string{"Corners", "Total Shots", "Goals"}

// Fixtures returns the mock fixture catalog.
//
// The returned slice is a copy; modifying it does not affect the catalog.
func Fixtures() []footballalert.Fixture {
	cp := make([]footballalert.Fixture, len(catalog))
	copy(cp, catalog)
	return cp
}

// AvailableStats returns the statistic names known to the mock source.
func AvailableStats() []string {
	cp := make([]string, len(availableStats))
	copy(cp, availableStats)
	return cp
}

// FixtureByID looks a fixture up in the mock catalog.
func FixtureByID(id int) (footballalert.Fixture, error) {
	for _, f := range catalog {
		if f.ID == id {
			return f, nil
		}
	}
	return footballalert.Fixture{}, fmt.Errorf("unknown fixture ID %d", id)
}
