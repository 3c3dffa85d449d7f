package monitor

import "context"

// Side is the monitor-internal team side.
type Side string

const (
	// SideHome refers to the home team.
	SideHome Side = "home"

	// SideAway refers to the away team.
	SideAway Side = "away"
)

// Key identifies one statistic value within a snapshot.
type Key struct {
	Stat string
	Side Side
}

// Snapshot is the monitor-internal view of one statistics read.
//
// This mirrors the public snapshot type; keeping a local copy avoids a
// circular dependency between the root package and this one. The root
// package converts at the boundary.
type Snapshot struct {
	// FixtureID identifies the fixture.
	FixtureID int

	// Minute is the elapsed match minute, capped at 90.
	Minute int

	// Values maps (statistic, side) to the current cumulative value.
	// A missing key means the statistic was not observed this tick.
	Values map[Key]int
}

// Source produces snapshots for fixtures. seq is a per-fixture poll
// counter starting at 1.
type Source interface {
	Fetch(ctx context.Context, fixtureID, seq int) (Snapshot, error)
}

// Condition is the mutable running state of one threshold, owned
// exclusively by its fixture's monitor.
type Condition struct {
	// Stat is the watched statistic name.
	Stat string

	// Side is the team side the threshold applies to.
	Side Side

	// Target is the threshold, a positive integer fixed at construction.
	Target int

	// LastValue is the most recently observed cumulative value.
	// Meaningful only when Observed is true.
	LastValue int

	// Observed reports whether the statistic has appeared in any
	// snapshot yet.
	Observed bool

	// Satisfied latches true the first time LastValue >= Target and
	// never reverts.
	Satisfied bool

	// Minute is the elapsed minute at which the condition first crossed
	// its target. Meaningful only when Satisfied is true.
	Minute int
}

// Evaluate applies one snapshot to a condition set and reports whether
// every condition is now satisfied.
//
// Evaluate is pure: it returns an updated copy and never mutates its
// input. Per condition, the comparison is current >= target on integers;
// a condition becomes satisfied the first time it holds, recording the
// snapshot's minute, and stays satisfied on every later snapshot. Values
// for already-satisfied conditions keep refreshing so the dashboard stays
// current. A statistic absent from the snapshot leaves its condition
// untouched for this tick.
//
// The all-satisfied transition can only be observed on the snapshot where
// the last remaining condition crosses its target, so the caller reports
// that snapshot's minute as the alert minute.
func Evaluate(conditions []Condition, snap Snapshot) ([]Condition, bool) {
	updated := make([]Condition, len(conditions))
	copy(updated, conditions)

	allSatisfied := true
	for i := range updated {
		c := &updated[i]

		if value, ok := snap.Values[Key{Stat: c.Stat, Side: c.Side}]; ok {
			c.LastValue = value
			c.Observed = true

			if !c.Satisfied && value >= c.Target {
				c.Satisfied = true
				c.Minute = snap.Minute
			}
		}

		if !c.Satisfied {
			allSatisfied = false
		}
	}

	return updated, allSatisfied
}
