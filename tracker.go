package footballalert

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/DenizArda13/football-alert-cli/internal/board"
	"github.com/DenizArda13/football-alert-cli/internal/metrics"
	"github.com/DenizArda13/football-alert-cli/internal/monitor"
)

const defaultPollInterval = 60 * time.Second

// ErrNoData is returned by [Tracker.Start] when the run ends without any
// fixture ever producing a snapshot. Total failure still terminates
// cleanly; the CLI layer decides the exit code.
var ErrNoData = errors.New("no fixture produced a snapshot")

// Tracker is the orchestrator for fixture monitoring.
//
// Tracker spawns one independent monitor goroutine per watched fixture,
// aggregates their alert events and poll errors, maintains the shared
// dashboard state, and joins every monitor on shutdown. It is created with
// [New] using functional options and driven with [Tracker.Start].
//
// The typical lifecycle is:
//
//	tracker, err := footballalert.New(
//	    footballalert.WithWatch(fixture, set),
//	    footballalert.WithSource(statsource.NewGenerator()),
//	)
//	if err != nil {
//	    slog.Error("failed to create tracker", "error", err)
//	    os.Exit(1)
//	}
//
//	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
//	defer cancel()
//
//	err = tracker.Start(ctx) // blocks until cancelled
//
// Cancel the context to trigger graceful shutdown; Start returns only
// after every monitor has reached its stopped state.
type Tracker struct {
	watches           []Watch
	fixtures          map[int]Fixture
	source            StatSource
	interval          time.Duration
	logger            *slog.Logger
	alertCallbacks    []func(AlertEvent)
	errorCallbacks    []func(PollError)
	haltWhenSatisfied bool

	board      *board.State
	alertCount atomic.Int64

	mu       sync.Mutex
	monitors map[int]*monitor.Monitor
}

// New creates a [Tracker] from the given options.
//
// At least one watch (via [WithWatch] or [WithWatches]) and a stat source
// (via [WithSource]) are required. Duplicate fixture IDs are rejected, as
// is any condition set that fails construction-time validation. A rejected
// configuration means no fixture is ever started.
func New(opts ...Option) (*Tracker, error) {
	cfg := &trackerConfig{
		interval: defaultPollInterval,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if len(cfg.watches) == 0 {
		return nil, errors.New("at least one watch is required")
	}
	if cfg.source == nil {
		return nil, errors.New("a stat source is required")
	}

	fixtures := make(map[int]Fixture, len(cfg.watches))
	for _, w := range cfg.watches {
		if _, dup := fixtures[w.Fixture.ID]; dup {
			return nil, fmt.Errorf("duplicate fixture ID: %d", w.Fixture.ID)
		}
		if w.Set.Len() == 0 {
			return nil, fmt.Errorf("fixture %d: condition set is empty", w.Fixture.ID)
		}
		fixtures[w.Fixture.ID] = w.Fixture
	}

	logger := cfg.logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Tracker{
		watches:           cfg.watches,
		fixtures:          fixtures,
		source:            cfg.source,
		interval:          cfg.interval,
		logger:            logger,
		alertCallbacks:    cfg.alertCallbacks,
		errorCallbacks:    cfg.errorCallbacks,
		haltWhenSatisfied: cfg.haltWhenSatisfied,
		board:             board.NewState(),
		monitors:          make(map[int]*monitor.Monitor),
	}, nil
}

// Start runs the monitoring engine until the context is cancelled.
//
// Start is blocking. It spawns one monitor per watch, all polling the
// configured source independently and in parallel, then consumes their
// alert events and poll errors: the alert counter and Prometheus metrics
// are updated, registered callbacks are invoked, and everything is logged
// through the configured logger. One fixture's failures never delay or
// suppress another fixture's monitor.
//
// On cancellation (or, with [WithHaltWhenSatisfied], once every set has
// fired) Start broadcasts shutdown, waits for every monitor to stop, and
// returns. It returns [ErrNoData] when no fixture produced a single
// snapshot for the whole run, and nil otherwise.
func (t *Tracker) Start(ctx context.Context) error {
	t.logger.Info("tracker starting",
		"fixtures", len(t.watches),
		"poll_interval", t.interval.String(),
	)

	if ctx.Err() != nil {
		return nil
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	metrics.FixturesMonitored.Set(float64(len(t.watches)))

	events := make(chan monitor.AlertEvent, len(t.watches))
	errs := make(chan monitor.PollError, len(t.watches)*4)
	src := sourceAdapter{src: t.source}

	var monitorWG sync.WaitGroup
	for _, w := range t.watches {
		m := monitor.New(w.Fixture.ID, toMonitorConditions(w.Set), src, t.interval, t.board, events, errs)

		t.mu.Lock()
		t.monitors[w.Fixture.ID] = m
		t.mu.Unlock()

		monitorWG.Add(1)
		go func(fixtureID int) {
			defer monitorWG.Done()
			defer t.recoverMonitorPanic(fixtureID)
			m.Run(runCtx)
		}(w.Fixture.ID)
	}

	var consumerWG sync.WaitGroup
	consumerWG.Add(1)
	go func() {
		defer consumerWG.Done()
		t.consume(cancel, events, errs)
	}()

	monitorWG.Wait()
	close(events)
	close(errs)
	consumerWG.Wait()

	t.logger.Info("tracker stopped", "alerts", t.AlertCount())

	if !t.board.HasData() {
		t.logger.Error("run produced no data", "fixtures", len(t.watches))
		return ErrNoData
	}
	return nil
}

// consume drains the alert and error channels until both are closed.
// cancel is invoked to end the run early when halt-when-satisfied applies.
func (t *Tracker) consume(cancel context.CancelFunc, events <-chan monitor.AlertEvent, errs <-chan monitor.PollError) {
	satisfied := 0

	for events != nil || errs != nil {
		select {
		case ev, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			t.handleAlert(ev)

			satisfied++
			if t.haltWhenSatisfied && satisfied == len(t.watches) {
				t.logger.Info("all condition sets satisfied, stopping run")
				cancel()
			}

		case pe, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			t.handlePollError(pe)
		}
	}
}

func (t *Tracker) handleAlert(ev monitor.AlertEvent) {
	t.alertCount.Add(1)
	metrics.AlertsTotal.Inc()

	public := t.toPublicEvent(ev)
	t.logger.Info("alert fired",
		"fixture_id", public.Fixture.ID,
		"fixture", public.Fixture.Label(),
		"minute", public.Minute,
		"conditions", len(public.Conditions),
	)

	for _, cb := range t.alertCallbacks {
		t.invokeSafe(func() { cb(public) }, "alert", public.Fixture.ID)
	}
}

func (t *Tracker) handlePollError(pe monitor.PollError) {
	metrics.PollErrorsTotal.WithLabelValues(metrics.FixtureLabel(pe.FixtureID)).Inc()

	public := PollError{
		FixtureID: pe.FixtureID,
		Seq:       pe.Seq,
		Err:       pe.Err,
		At:        pe.At,
	}
	t.logger.Warn("poll failed, tick skipped",
		"fixture_id", pe.FixtureID,
		"seq", pe.Seq,
		"error", pe.Err.Error(),
	)

	for _, cb := range t.errorCallbacks {
		t.invokeSafe(func() { cb(public) }, "error", pe.FixtureID)
	}
}

// invokeSafe calls a callback with panic recovery. Panics are logged with
// a correlation ID and do not propagate into the engine.
func (t *Tracker) invokeSafe(fn func(), kind string, fixtureID int) {
	defer func() {
		if r := recover(); r != nil {
			correlationID := uuid.NewString()
			t.logger.Error("callback panicked",
				"correlation_id", correlationID,
				"callback", kind,
				"fixture_id", fixtureID,
				"panic", fmt.Sprintf("%v", r),
			)
		}
	}()
	fn()
}

// recoverMonitorPanic isolates an unexpected internal failure of one
// fixture's monitor goroutine from its siblings and the orchestrator.
func (t *Tracker) recoverMonitorPanic(fixtureID int) {
	if r := recover(); r != nil {
		correlationID := uuid.NewString()
		t.logger.Error("fixture monitor panicked",
			"correlation_id", correlationID,
			"fixture_id", fixtureID,
			"panic", fmt.Sprintf("%v", r),
		)
	}
}

// AlertCount returns the number of alert events emitted so far this run.
func (t *Tracker) AlertCount() int64 {
	return t.alertCount.Load()
}

// Watches returns a copy of the configured watches.
func (t *Tracker) Watches() []Watch {
	cp := make([]Watch, len(t.watches))
	copy(cp, t.watches)
	return cp
}

// PollInterval returns the configured interval between polls.
func (t *Tracker) PollInterval() time.Duration {
	return t.interval
}

// States returns the current lifecycle state of every fixture monitor,
// keyed by fixture ID. Fixtures not yet started report [StatusPolling].
func (t *Tracker) States() map[int]Status {
	t.mu.Lock()
	defer t.mu.Unlock()

	states := make(map[int]Status, len(t.watches))
	for _, w := range t.watches {
		if m, ok := t.monitors[w.Fixture.ID]; ok {
			states[w.Fixture.ID] = Status(m.State())
		} else {
			states[w.Fixture.ID] = StatusPolling
		}
	}
	return states
}

// Dashboard returns an immutable snapshot of every condition's latest
// state, sorted by fixture ID then condition index. Safe to call from any
// goroutine at any time; the render loop reads it on its own cycle.
func (t *Tracker) Dashboard() []ConditionStatus {
	snap := t.board.Snapshot()

	rows := make([]ConditionStatus, 0, len(snap.Rows))
	for _, row := range snap.Rows {
		fixture := t.fixtures[row.FixtureID]
		meta := snap.Fixtures[row.FixtureID]
		side := Side(row.Side)

		rows = append(rows, ConditionStatus{
			Fixture:         fixture,
			Index:           row.Index,
			Statistic:       row.Statistic,
			Side:            side,
			Team:            fixture.TeamName(side),
			Value:           row.Value,
			Observed:        row.Observed,
			Target:          row.Target,
			Satisfied:       row.Satisfied,
			SatisfiedMinute: row.SatisfiedMinute,
			ElapsedMinute:   meta.ElapsedMinute,
			Finished:        meta.Finished,
			AlertFired:      meta.AlertFired,
			UpdatedAt:       row.UpdatedAt,
		})
	}
	return rows
}

// toPublicEvent converts a monitor event into the public [AlertEvent],
// resolving team display names from the watched fixture.
func (t *Tracker) toPublicEvent(ev monitor.AlertEvent) AlertEvent {
	fixture := t.fixtures[ev.FixtureID]

	conditions := make([]AlertCondition, len(ev.Conditions))
	for i, c := range ev.Conditions {
		side := Side(c.Side)
		conditions[i] = AlertCondition{
			Team:      fixture.TeamName(side),
			Side:      side,
			Statistic: c.Stat,
			Target:    c.Target,
			Minute:    c.Minute,
		}
	}

	return AlertEvent{
		Fixture:    fixture,
		Minute:     ev.Minute,
		Conditions: conditions,
	}
}

// toMonitorConditions converts a validated public set into the monitor's
// owned runtime conditions.
func toMonitorConditions(set ConditionSet) []monitor.Condition {
	conds := set.Conditions()
	out := make([]monitor.Condition, len(conds))
	for i, c := range conds {
		out[i] = monitor.Condition{
			Stat:   c.Statistic,
			Side:   monitor.Side(c.Side),
			Target: c.Target,
		}
	}
	return out
}

// sourceAdapter bridges the public [StatSource] contract to the monitor's
// internal source interface.
type sourceAdapter struct {
	src StatSource
}

func (a sourceAdapter) Fetch(ctx context.Context, fixtureID, seq int) (monitor.Snapshot, error) {
	snap, err := a.src.Fetch(ctx, fixtureID, seq)
	if err != nil {
		return monitor.Snapshot{}, err
	}

	values := make(map[monitor.Key]int, len(snap.Values))
	for k, v := range snap.Values {
		values[monitor.Key{Stat: k.Statistic, Side: monitor.Side(k.Side)}] = v
	}

	minute := snap.Minute
	if minute < 0 {
		minute = 0
	}
	if minute > 90 {
		minute = 90
	}

	return monitor.Snapshot{
		FixtureID: snap.FixtureID,
		Minute:    minute,
		Values:    values,
	}, nil
}
