package footballalert

import (
	"fmt"
	"strings"
)

// Side identifies which team in a fixture a statistic or condition
// refers to.
//
// Side is a string type with two valid values, [SideHome] and [SideAway].
// Using a string type keeps config files and log output human-readable
// while the defined constants preserve type safety.
type Side string

const (
	// SideHome refers to the home team of a fixture.
	SideHome Side = "home"

	// SideAway refers to the away team of a fixture.
	SideAway Side = "away"
)

// String returns the string representation of the side.
func (s Side) String() string {
	return string(s)
}

// Valid reports whether the side is one of the defined constants.
func (s Side) Valid() bool {
	return s == SideHome || s == SideAway
}

// ParseSide converts a user-supplied team designation into a [Side].
//
// Accepted spellings are case-insensitive: "home", "h", "away", "a".
// Returns an error for anything else.
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "home", "h":
		return SideHome, nil
	case "away", "a":
		return SideAway, nil
	default:
		return "", fmt.Errorf("invalid team side %q (expected 'home' or 'away')", s)
	}
}

// Fixture is a tracked match: a stable identifier plus the two team
// names and a league label for display.
//
// Fixture is immutable once selected; the engine never modifies it.
type Fixture struct {
	// ID is the stable fixture identifier used to request statistics.
	ID int

	// HomeTeam is the display name of the home side.
	HomeTeam string

	// AwayTeam is the display name of the away side.
	AwayTeam string

	// League is a human-readable competition label.
	League string
}

// TeamName resolves a [Side] to the fixture's team display name.
// Falls back to "Home" / "Away" when the fixture carries no names.
func (f Fixture) TeamName(side Side) string {
	switch side {
	case SideHome:
		if f.HomeTeam != "" {
			return f.HomeTeam
		}
		return "Home"
	case SideAway:
		if f.AwayTeam != "" {
			return f.AwayTeam
		}
		return "Away"
	default:
		return string(side)
	}
}

// Label returns the "Home vs Away" display form of the fixture.
func (f Fixture) Label() string {
	return fmt.Sprintf("%s vs %s", f.TeamName(SideHome), f.TeamName(SideAway))
}
