package footballalert

import (
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// Watch pairs a [Fixture] with the [ConditionSet] to track for it.
type Watch struct {
	Fixture Fixture
	Set     ConditionSet
}

// trackerConfig holds mutable state during Tracker construction.
type trackerConfig struct {
	watches           []Watch
	source            StatSource
	interval          time.Duration
	logger            *slog.Logger
	alertCallbacks    []func(AlertEvent)
	errorCallbacks    []func(PollError)
	haltWhenSatisfied bool
}

// Option configures a [Tracker] during construction via [New].
//
// Options implement the functional options pattern and return an error
// when validation fails.
type Option func(*trackerConfig) error

// WithWatch adds one fixture and its condition set to the tracker.
//
// The set's fixture ID must match the fixture's ID. Can be called multiple
// times; at least one watch must be configured for [New] to succeed.
func WithWatch(fixture Fixture, set ConditionSet) Option {
	return func(cfg *trackerConfig) error {
		if set.FixtureID() != fixture.ID {
			return fmt.Errorf("condition set is for fixture %d, not fixture %d", set.FixtureID(), fixture.ID)
		}
		cfg.watches = append(cfg.watches, Watch{Fixture: fixture, Set: set})
		return nil
	}
}

// WithWatches adds multiple watches at once. Equivalent to calling
// [WithWatch] for each pair.
func WithWatches(watches ...Watch) Option {
	return func(cfg *trackerConfig) error {
		for _, w := range watches {
			if w.Set.FixtureID() != w.Fixture.ID {
				return fmt.Errorf("condition set is for fixture %d, not fixture %d", w.Set.FixtureID(), w.Fixture.ID)
			}
		}
		cfg.watches = append(cfg.watches, watches...)
		return nil
	}
}

// WithSource sets the statistic source all fixture monitors poll.
// Required; [New] fails without one.
func WithSource(src StatSource) Option {
	return func(cfg *trackerConfig) error {
		if src == nil {
			return errors.New("stat source cannot be nil")
		}
		cfg.source = src
		return nil
	}
}

// WithPollInterval sets the time between polls for every fixture monitor.
// Defaults to 60 seconds.
//
// Returns an error if the duration is zero or negative.
func WithPollInterval(d time.Duration) Option {
	return func(cfg *trackerConfig) error {
		if d <= 0 {
			return errors.New("poll interval must be positive")
		}
		cfg.interval = d
		return nil
	}
}

// WithLogger sets a custom [slog.Logger]. Defaults to [slog.Default].
//
// Returns an error if the logger is nil.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *trackerConfig) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		cfg.logger = logger
		return nil
	}
}

// WithAlertCallback registers a function invoked for every [AlertEvent].
//
// Callbacks run synchronously on the tracker's consumer goroutine, in
// registration order, after the dashboard has been updated. They must not
// block; panics are recovered and logged with a correlation ID and never
// reach the monitors. Nil callbacks are ignored.
func WithAlertCallback(cb func(AlertEvent)) Option {
	return func(cfg *trackerConfig) error {
		if cb == nil {
			return nil
		}
		cfg.alertCallbacks = append(cfg.alertCallbacks, cb)
		return nil
	}
}

// WithErrorCallback registers a function invoked for every [PollError].
//
// Same execution rules as [WithAlertCallback]. Nil callbacks are ignored.
func WithErrorCallback(cb func(PollError)) Option {
	return func(cfg *trackerConfig) error {
		if cb == nil {
			return nil
		}
		cfg.errorCallbacks = append(cfg.errorCallbacks, cb)
		return nil
	}
}

// WithHaltWhenSatisfied makes [Tracker.Start] return on its own once every
// watched condition set has fired, instead of polling until cancelled.
//
// Off by default: monitors then keep polling after their alert to keep the
// dashboard fresh, and only cancellation ends the run.
func WithHaltWhenSatisfied(halt bool) Option {
	return func(cfg *trackerConfig) error {
		cfg.haltWhenSatisfied = halt
		return nil
	}
}
