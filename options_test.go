package footballalert

import (
	"strings"
	"testing"
	"time"
)

func TestWithWatchRejectsMismatchedSet(t *testing.T) {
	set := mustSet(t, 1002, Condition{Statistic: "Corners", Side: SideHome, Target: 3})

	_, err := New(
		WithSource(&scriptedSource{}),
		WithWatch(testFixture(1001), set),
	)
	if err == nil {
		t.Fatal("New() error = nil, want mismatch error")
	}
	if !strings.Contains(err.Error(), "fixture 1002, not fixture 1001") {
		t.Errorf("error = %q, want it to name both fixture IDs", err)
	}
}

func TestWithPollIntervalRejectsNonPositive(t *testing.T) {
	set := mustSet(t, 1001, Condition{Statistic: "Corners", Side: SideHome, Target: 3})

	for _, d := range []time.Duration{0, -time.Second} {
		_, err := New(
			WithWatch(testFixture(1001), set),
			WithSource(&scriptedSource{}),
			WithPollInterval(d),
		)
		if err == nil {
			t.Errorf("New() with interval %v error = nil, want error", d)
		}
	}
}

func TestWithSourceRejectsNil(t *testing.T) {
	set := mustSet(t, 1001, Condition{Statistic: "Corners", Side: SideHome, Target: 3})

	_, err := New(
		WithWatch(testFixture(1001), set),
		WithSource(nil),
	)
	if err == nil {
		t.Fatal("New() with nil source error = nil, want error")
	}
}

func TestWithLoggerRejectsNil(t *testing.T) {
	set := mustSet(t, 1001, Condition{Statistic: "Corners", Side: SideHome, Target: 3})

	_, err := New(
		WithWatch(testFixture(1001), set),
		WithSource(&scriptedSource{}),
		WithLogger(nil),
	)
	if err == nil {
		t.Fatal("New() with nil logger error = nil, want error")
	}
}

func TestNilCallbacksAreIgnored(t *testing.T) {
	set := mustSet(t, 1001, Condition{Statistic: "Corners", Side: SideHome, Target: 3})

	tracker, err := New(
		WithWatch(testFixture(1001), set),
		WithSource(&scriptedSource{}),
		WithAlertCallback(nil),
		WithErrorCallback(nil),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if len(tracker.alertCallbacks) != 0 || len(tracker.errorCallbacks) != 0 {
		t.Error("nil callbacks must not be registered")
	}
}

func TestDefaultsApplied(t *testing.T) {
	set := mustSet(t, 1001, Condition{Statistic: "Corners", Side: SideHome, Target: 3})

	tracker, err := New(
		WithWatch(testFixture(1001), set),
		WithSource(&scriptedSource{}),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if got, want := tracker.PollInterval(), 60*time.Second; got != want {
		t.Errorf("PollInterval() = %v, want default %v", got, want)
	}
	if tracker.logger == nil {
		t.Error("logger not defaulted")
	}
	if got, want := len(tracker.Watches()), 1; got != want {
		t.Errorf("len(Watches()) = %d, want %d", got, want)
	}
}
