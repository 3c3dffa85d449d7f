package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	footballalert "github.com/DenizArda13/football-alert-cli"
	"github.com/DenizArda13/football-alert-cli/statsource"
)

func main() {
	// Two fixtures from the mock catalog, each with its own AND-combined
	// condition set. The generator ramps values deterministically, so both
	// alerts fire within a handful of polls.
	cityLiverpool, err := footballalert.NewConditionSet(1001,
		footballalert.Condition{Statistic: "Corners", Side: footballalert.SideHome, Target: 3},
		footballalert.Condition{Statistic: "Total Shots", Side: footballalert.SideAway, Target: 5},
	)
	if err != nil {
		slog.Error("failed to build condition set", "error", err)
		os.Exit(1)
	}

	clasico, err := footballalert.NewConditionSet(1002,
		footballalert.Condition{Statistic: "Goals", Side: footballalert.SideAway, Target: 2},
	)
	if err != nil {
		slog.Error("failed to build condition set", "error", err)
		os.Exit(1)
	}

	fixtures := map[int]footballalert.Fixture{}
	for _, f := range statsource.Fixtures() {
		fixtures[f.ID] = f
	}

	tracker, err := footballalert.New(
		footballalert.WithWatch(fixtures[1001], cityLiverpool),
		footballalert.WithWatch(fixtures[1002], clasico),
		footballalert.WithSource(statsource.NewGenerator()),
		footballalert.WithPollInterval(time.Second),
		footballalert.WithHaltWhenSatisfied(true),
		footballalert.WithAlertCallback(func(ev footballalert.AlertEvent) {
			fmt.Println(ev)
		}),
		footballalert.WithErrorCallback(func(pe footballalert.PollError) {
			slog.Warn("poll failed", "fixture_id", pe.FixtureID, "error", pe.Err)
		}),
	)
	if err != nil {
		slog.Error("failed to create tracker", "error", err)
		os.Exit(1)
	}

	fmt.Println("Watching 2 fixtures against the mock source. Press Ctrl+C to stop.")

	// set up context with signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := tracker.Start(ctx); err != nil {
		slog.Error("tracker error", "error", err)
		os.Exit(1)
	}

	fmt.Printf("Done: %d alert(s) fired.\n", tracker.AlertCount())
}
