package monitor

import (
	"context"
	"sync"
	"time"

	"github.com/DenizArda13/football-alert-cli/internal/board"
	"github.com/DenizArda13/football-alert-cli/internal/metrics"
)

// State is the lifecycle state of a [Monitor].
//
// This is the monitor-internal version of the public status type, avoiding
// a circular dependency on the root package.
type State string

const (
	// StatePolling means the monitor is ticking and the condition set
	// has not yet been fully satisfied.
	StatePolling State = "polling"

	// StateSatisfied means the alert has fired; polling continues to
	// keep the dashboard fresh but no further events are emitted.
	StateSatisfied State = "satisfied"

	// StateStopped is the terminal state reached on cancellation.
	StateStopped State = "stopped"
)

// AlertEvent is emitted once per monitor, on the tick where every
// condition in the set is first simultaneously satisfied.
type AlertEvent struct {
	// FixtureID identifies the fixture whose set fired.
	FixtureID int

	// Minute is the elapsed minute of the completing snapshot.
	Minute int

	// Conditions are the satisfied conditions in insertion order.
	Conditions []Condition
}

// PollError is the structured record of a single failed poll.
type PollError struct {
	FixtureID int
	Seq       int
	Err       error
	At        time.Time
}

// Monitor drives the poll-evaluate-alert cycle for exactly one fixture.
//
// A monitor owns its condition slice outright: no other goroutine reads or
// mutates it. All cross-goroutine output flows through the board, the
// events channel and the errors channel, so monitors for different
// fixtures share no state and a failure in one can never affect another.
type Monitor struct {
	fixtureID  int
	conditions []Condition
	source     Source
	interval   time.Duration
	board      *board.State
	events     chan<- AlertEvent
	errs       chan<- PollError

	mu    sync.Mutex
	state State
	seq   int
}

// New creates a [Monitor] for one fixture.
//
// The conditions slice is copied; the caller's slice is not retained.
// events and errs must be consumed for the lifetime of the run; sends are
// abandoned on cancellation so a stopped consumer cannot wedge a monitor.
func New(fixtureID int, conditions []Condition, src Source, interval time.Duration, b *board.State, events chan<- AlertEvent, errs chan<- PollError) *Monitor {
	owned := make([]Condition, len(conditions))
	copy(owned, conditions)

	return &Monitor{
		fixtureID:  fixtureID,
		conditions: owned,
		source:     src,
		interval:   interval,
		board:      b,
		events:     events,
		errs:       errs,
		state:      StatePolling,
	}
}

// State returns the monitor's current lifecycle state.
func (m *Monitor) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *Monitor) setState(s State) {
	m.mu.Lock()
	m.state = s
	m.mu.Unlock()
}

// Run executes the poll loop until ctx is cancelled.
//
// The fixture is polled immediately, then once per interval. Each tick:
// fetch a snapshot, evaluate the condition set, push the latest values to
// the board regardless of overall satisfaction, and emit exactly one
// [AlertEvent] on the tick where the whole set first holds. A failed fetch
// skips the tick and reports a [PollError]; the loop continues on the next
// interval. Cancellation is observed once per tick and moves the monitor
// to [StateStopped] without emitting a final event.
//
// Run is blocking; callers start it in its own goroutine.
func (m *Monitor) Run(ctx context.Context) {
	defer m.setState(StateStopped)

	m.tick(ctx)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.tick(ctx)
		}
	}
}

// tick performs one poll-evaluate-publish cycle.
func (m *Monitor) tick(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	m.mu.Lock()
	m.seq++
	seq := m.seq
	m.mu.Unlock()

	snap, err := m.source.Fetch(ctx, m.fixtureID, seq)
	if err != nil {
		if ctx.Err() != nil {
			// shutting down mid-poll; not a failure
			return
		}
		m.reportError(ctx, PollError{
			FixtureID: m.fixtureID,
			Seq:       seq,
			Err:       err,
			At:        time.Now(),
		})
		return
	}

	metrics.PollsTotal.WithLabelValues(metrics.FixtureLabel(m.fixtureID)).Inc()

	updated, allSatisfied := Evaluate(m.conditions, snap)
	m.conditions = updated

	m.publish(snap)

	if allSatisfied && m.State() == StatePolling {
		m.setState(StateSatisfied)
		m.board.MarkAlert(m.fixtureID, snap.Minute)
		m.emit(ctx, AlertEvent{
			FixtureID:  m.fixtureID,
			Minute:     snap.Minute,
			Conditions: copyConditions(m.conditions),
		})
	}
}

// publish pushes the latest per-condition values and the fixture's elapsed
// minute to the board. Runs on every successful tick, fired or not.
func (m *Monitor) publish(snap Snapshot) {
	now := time.Now()
	for i, c := range m.conditions {
		m.board.Upsert(board.Row{
			FixtureID:       m.fixtureID,
			Index:           i,
			Statistic:       c.Stat,
			Side:            string(c.Side),
			Value:           c.LastValue,
			Observed:        c.Observed,
			Target:          c.Target,
			Satisfied:       c.Satisfied,
			SatisfiedMinute: c.Minute,
			UpdatedAt:       now,
		})
	}
	m.board.SetElapsed(m.fixtureID, snap.Minute)
}

func (m *Monitor) emit(ctx context.Context, ev AlertEvent) {
	select {
	case m.events <- ev:
	case <-ctx.Done():
	}
}

func (m *Monitor) reportError(ctx context.Context, pe PollError) {
	select {
	case m.errs <- pe:
	case <-ctx.Done():
	}
}

func copyConditions(conds []Condition) []Condition {
	cp := make([]Condition, len(conds))
	copy(cp, conds)
	return cp
}
