// Package metrics exposes Prometheus collectors for the monitoring engine.
//
// Collectors are registered on the default registry via promauto and served
// by the mock API server's /metrics endpoint or the optional standalone
// metrics listener in the CLI.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PollsTotal counts successful polls per fixture.
	PollsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "footballalert_polls_total",
			Help: "Total number of successful statistic polls",
		},
		[]string{"fixture"},
	)

	// PollErrorsTotal counts skipped ticks per fixture.
	PollErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "footballalert_poll_errors_total",
			Help: "Total number of failed (skipped) statistic polls",
		},
		[]string{"fixture"},
	)

	// AlertsTotal counts alert events emitted across all fixtures.
	AlertsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "footballalert_alerts_total",
			Help: "Total number of alert events emitted",
		},
	)

	// FixturesMonitored reports the number of fixtures monitored by the
	// current run.
	FixturesMonitored = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "footballalert_fixtures_monitored",
			Help: "Number of fixtures the current run is monitoring",
		},
	)
)

// FixtureLabel formats a fixture ID as a metric label value.
func FixtureLabel(fixtureID int) string {
	return strconv.Itoa(fixtureID)
}
