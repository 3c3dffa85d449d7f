package footballalert

import (
	"context"
	"errors"
)

// ErrUnavailable signals that a statistic source could not produce a
// snapshot for this poll. Monitors treat an unavailable tick as skippable:
// the failure is reported, the tick is dropped, and polling continues on
// the next interval.
var ErrUnavailable = errors.New("stat source temporarily unavailable")

// StatKey identifies one cumulative statistic value within a snapshot:
// a statistic name paired with the team side it belongs to.
type StatKey struct {
	Statistic string
	Side      Side
}

// StatSnapshot is one point-in-time read of a fixture's cumulative
// statistic values.
//
// Values are non-negative integers and, for a well-behaved source,
// non-decreasing across increasing poll sequence for the same fixture.
// Minute is the elapsed match minute, 0 through 90, also non-decreasing.
type StatSnapshot struct {
	// FixtureID identifies the fixture the snapshot belongs to.
	FixtureID int

	// Minute is the elapsed match minute at the time of the snapshot,
	// capped at 90.
	Minute int

	// Values maps (statistic, side) to the current cumulative value.
	// A statistic missing from the map is treated as unobserved this
	// tick, not as zero.
	Values map[StatKey]int
}

// StatSource produces statistic snapshots for fixtures.
//
// Two interchangeable implementations live in the statsource package: an
// in-process generator used for mock runs, and an HTTP-backed client
// speaking the API-Football statistics shape. The engine depends only on
// this contract.
//
// Fetch may be invoked concurrently by different fixture monitors without
// coordination; implementations own any internal progression state. seq is
// an opaque, per-fixture poll counter starting at 1. A source that cannot
// produce a snapshot right now should return an error wrapping
// [ErrUnavailable]; the monitor skips that tick and retries next interval.
type StatSource interface {
	Fetch(ctx context.Context, fixtureID, seq int) (StatSnapshot, error)
}
