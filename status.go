package footballalert

import "time"

// Status is the lifecycle state of a fixture monitor.
//
// A monitor starts in [StatusPolling], moves to [StatusSatisfied] once its
// condition set has fired (it keeps polling to refresh the dashboard but
// never emits a second alert), and ends in the terminal [StatusStopped]
// when cancelled.
type Status string

const (
	// StatusPolling means the monitor is ticking and the set has not
	// yet been fully satisfied.
	StatusPolling Status = "polling"

	// StatusSatisfied means the alert has fired; polling continues for
	// dashboard freshness only.
	StatusSatisfied Status = "satisfied"

	// StatusStopped is the terminal state reached on cancellation.
	StatusStopped Status = "stopped"
)

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}

// ConditionStatus is one dashboard row: the last-seen state of a single
// condition within a fixture, as aggregated across all monitors.
//
// Rows are read-mostly: each fixture's monitor writes its own rows once
// per tick, and the render loop reads immutable snapshots.
type ConditionStatus struct {
	// Fixture is the monitored fixture the row belongs to.
	Fixture Fixture

	// Index is the condition's position within its set (insertion order).
	Index int

	// Statistic is the watched statistic name.
	Statistic string

	// Side is the team side being watched.
	Side Side

	// Team is the resolved team display name.
	Team string

	// Value is the last observed cumulative value. Only meaningful when
	// Observed is true.
	Value int

	// Observed reports whether the statistic has appeared in any
	// snapshot yet.
	Observed bool

	// Target is the condition's threshold.
	Target int

	// Satisfied reports whether the condition has crossed its target.
	// Once true it never reverts.
	Satisfied bool

	// SatisfiedMinute is the elapsed minute at which the condition first
	// crossed its target. Only meaningful when Satisfied is true.
	SatisfiedMinute int

	// ElapsedMinute is the fixture's latest elapsed match minute.
	ElapsedMinute int

	// Finished reports whether the fixture has reached the 90th minute.
	Finished bool

	// AlertFired reports whether the fixture's whole set has fired.
	AlertFired bool

	// UpdatedAt is when the row was last written.
	UpdatedAt time.Time
}
