package statsource

import (
	"context"
	"sync"

	footballalert "github.com/DenizArda13/football-alert-cli"
)

const (
	// maxBase is where the cumulative progression stabilizes, so typical
	// targets in the 1-10 range are always eventually reachable.
	maxBase = 15

	// minutesPerPoll is how far match time advances per poll; quick
	// enough for a demo run, capped at full time.
	minutesPerPoll = 5

	fullTime = 90
)

// Generator is the in-process mock [footballalert.StatSource].
//
// Each fixture gets its own cumulative progression, encapsulated in the
// generator rather than in any shared global state: values only increase
// or stabilize, so multi-condition AND sets are always eventually
// satisfiable, and the elapsed minute advances five minutes per poll up to
// full time. Fetch is safe for concurrent use by many fixture monitors.
type Generator struct {
	mu       sync.Mutex
	progress map[int]int
}

// NewGenerator creates a [Generator] with fresh progression state.
func NewGenerator() *Generator {
	return &Generator{
		progress: make(map[int]int),
	}
}

// Fetch returns the next snapshot in the fixture's progression.
//
// The seq argument is accepted for contract compatibility; the generator
// tracks its own per-fixture progression so that values stay non-decreasing
// regardless of how callers count polls.
func (g *Generator) Fetch(ctx context.Context, fixtureID, seq int) (footballalert.StatSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return footballalert.StatSnapshot{}, err
	}

	g.mu.Lock()
	g.progress[fixtureID]++
	progress := g.progress[fixtureID]
	g.mu.Unlock()

	base := progress
	if base > maxBase {
		base = maxBase
	}

	elapsed := progress * minutesPerPoll
	if elapsed > fullTime {
		elapsed = fullTime
	}

	awayCorners := base - 1
	if awayCorners < 0 {
		awayCorners = 0
	}

	return footballalert.StatSnapshot{
		FixtureID: fixtureID,
		Minute:    elapsed,
		Values: map[footballalert.StatKey]int{
			{Statistic: "Corners", Side: footballalert.SideHome}:     base,
			{Statistic: "Total Shots", Side: footballalert.SideHome}: base + 2,
			{Statistic: "Goals", Side: footballalert.SideHome}:       base / 3,
			{Statistic: "Corners", Side: footballalert.SideAway}:     awayCorners,
			{Statistic: "Total Shots", Side: footballalert.SideAway}: base + 1,
			{Statistic: "Goals", Side: footballalert.SideAway}:       base / 4,
		},
	}, nil
}
