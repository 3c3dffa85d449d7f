// Package footballalert monitors live football fixtures and fires an
// alert the moment every statistic threshold set for a fixture is reached.
//
// The engine is SDK-first: the same [Tracker] that backs the CLI can be
// embedded in any program. Each watched fixture gets its own monitor
// goroutine polling a [StatSource] on a fixed interval; conditions within
// a fixture are AND-combined, the alert is edge-triggered and fires
// exactly once, and one fixture's failures never disturb another's.
//
// # Quick Start
//
// Watch one fixture against the in-process mock source:
//
//	set, _ := footballalert.NewConditionSet(1001,
//	    footballalert.Condition{Statistic: "Corners", Side: footballalert.SideHome, Target: 3},
//	    footballalert.Condition{Statistic: "Total Shots", Side: footballalert.SideAway, Target: 5},
//	)
//
//	tracker, _ := footballalert.New(
//	    footballalert.WithWatch(footballalert.Fixture{ID: 1001, HomeTeam: "Manchester City", AwayTeam: "Liverpool"}, set),
//	    footballalert.WithSource(statsource.NewGenerator()),
//	    footballalert.WithAlertCallback(func(ev footballalert.AlertEvent) {
//	        fmt.Println(ev)
//	    }),
//	)
//
//	// Set up graceful shutdown on SIGINT/SIGTERM
//	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
//	defer stop()
//
//	tracker.Start(ctx) // blocks until context is cancelled
//
// # Configuration
//
// The tracker uses the functional options pattern for configuration:
//
//	tracker, err := footballalert.New(
//	    footballalert.WithWatches(watches...),
//	    footballalert.WithSource(statsource.NewClient(baseURL, apiKey)),
//	    footballalert.WithPollInterval(60 * time.Second),
//	    footballalert.WithHaltWhenSatisfied(true),
//	    footballalert.WithLogger(logger),
//	)
//
// # Stat Sources
//
// Anything implementing [StatSource] can feed the engine. The statsource
// package ships two interchangeable implementations:
//
//   - statsource.Generator: an in-process simulator whose values ramp up
//     deterministically, used for mock runs and tests
//   - statsource.Client: an HTTP client speaking the API-Football
//     statistics shape, with retry and backoff
//
// # Architecture
//
// The engine consists of several internal packages (under internal/):
//
//   - internal/monitor: per-fixture polling and condition evaluation
//   - internal/board: thread-safe shared dashboard state
//   - internal/render: terminal dashboard rendering
//   - internal/mockapi: local HTTP server mimicking the statistics API
//   - internal/metrics: Prometheus counters and gauges
//
// The internal packages are not part of the public API and may change
// without notice.
package footballalert
