package footballalert

import (
	"fmt"
	"strings"
	"time"
)

// AlertCondition is one satisfied condition inside an [AlertEvent],
// fixed at the moment the whole set first held.
type AlertCondition struct {
	// Team is the resolved display name of the side the condition
	// applied to.
	Team string

	// Side is the team side the condition applied to.
	Side Side

	// Statistic is the watched statistic name.
	Statistic string

	// Target is the threshold that was reached.
	Target int

	// Minute is the elapsed match minute at which this condition
	// first crossed its target.
	Minute int
}

// AlertEvent is emitted exactly once per condition set, on the poll where
// every condition in the set is first simultaneously satisfied.
//
// Conditions appear in the set's insertion order. Minute is the elapsed
// minute on the snapshot that completed satisfaction, i.e. the minute the
// last remaining condition crossed its target.
type AlertEvent struct {
	// Fixture is the monitored fixture, including team names for display.
	Fixture Fixture

	// Minute is the elapsed minute of the completing snapshot.
	Minute int

	// Conditions lists every condition in the set, in insertion order.
	Conditions []AlertCondition
}

// String renders the event as the single alert line consumed by the
// presentation layer:
//
//	ALERT [fixture 1001] Manchester City vs Liverpool: Manchester City reached 3 Corners. (25'); Liverpool reached 5 Total Shots. (40')
//
// One line per fixture, conditions semicolon-joined in insertion order.
func (e AlertEvent) String() string {
	parts := make([]string, len(e.Conditions))
	for i, c := range e.Conditions {
		parts[i] = fmt.Sprintf("%s reached %d %s. (%d')", c.Team, c.Target, c.Statistic, c.Minute)
	}
	return fmt.Sprintf("ALERT [fixture %d] %s: %s", e.Fixture.ID, e.Fixture.Label(), strings.Join(parts, "; "))
}

// PollError is the structured record of a single failed poll.
//
// A PollError never stops the fixture's monitor; the tick is skipped and
// polling resumes on the next interval. Errors from one fixture are
// isolated from every other fixture's monitor.
type PollError struct {
	// FixtureID identifies the fixture whose poll failed.
	FixtureID int

	// Seq is the poll sequence number of the failed tick.
	Seq int

	// Err is the underlying failure.
	Err error

	// At is when the failure was observed.
	At time.Time
}

// Error implements the error interface.
func (p PollError) Error() string {
	return fmt.Sprintf("fixture %d poll %d: %v", p.FixtureID, p.Seq, p.Err)
}

// Unwrap exposes the underlying error for errors.Is / errors.As.
func (p PollError) Unwrap() error {
	return p.Err
}
