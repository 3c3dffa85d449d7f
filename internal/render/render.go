// Package render draws the live terminal dashboard: a periodically
// refreshed table of every watched condition plus a run summary. It reads
// immutable tracker snapshots on its own cycle and never touches engine
// state directly.
package render

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	footballalert "github.com/DenizArda13/football-alert-cli"
)

const (
	defaultRefresh = time.Second

	// clearScreen moves the cursor home and wipes the terminal before
	// each redraw.
	clearScreen = "\033[2J\033[H"
)

// Renderer periodically redraws the dashboard table on a terminal.
//
// The renderer runs on its own, slower cycle, independent of the poll
// interval, and reads only the snapshot and counter functions it is given.
type Renderer struct {
	out     io.Writer
	rows    func() []footballalert.ConditionStatus
	alerts  func() int64
	refresh time.Duration
	started time.Time
	clear   bool
}

// NewRenderer creates a [Renderer] writing to out.
//
// rows and alerts are typically Tracker.Dashboard and Tracker.AlertCount.
// refresh <= 0 falls back to one second. When clear is true each frame is
// preceded by an ANSI clear-screen sequence; tests turn it off.
func NewRenderer(out io.Writer, rows func() []footballalert.ConditionStatus, alerts func() int64, refresh time.Duration, clear bool) *Renderer {
	if refresh <= 0 {
		refresh = defaultRefresh
	}
	return &Renderer{
		out:     out,
		rows:    rows,
		alerts:  alerts,
		refresh: refresh,
		started: time.Now(),
		clear:   clear,
	}
}

// Run redraws the dashboard until the context is cancelled, then draws one
// final frame marked as finished.
func (r *Renderer) Run(ctx context.Context) {
	ticker := time.NewTicker(r.refresh)
	defer ticker.Stop()

	r.draw(true)
	for {
		select {
		case <-ctx.Done():
			r.draw(false)
			return
		case <-ticker.C:
			r.draw(true)
		}
	}
}

func (r *Renderer) draw(active bool) {
	if r.clear {
		fmt.Fprint(r.out, clearScreen)
	}
	fmt.Fprint(r.out, r.Frame(active))
}

// Frame builds one full dashboard frame as a string.
func (r *Renderer) Frame(active bool) string {
	var b strings.Builder

	b.WriteString("Football Alert - Live Dashboard\n\n")

	rows := r.rows()
	tw := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FIXTURE\tMATCH\tSTAT\tTEAM\tCURRENT\tTARGET\tSTATUS\tMINUTE")

	if len(rows) == 0 {
		fmt.Fprintln(tw, "-\t-\t-\t-\t-\t-\tWaiting...\t-")
	}
	for _, row := range rows {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
			row.Fixture.ID,
			row.Fixture.Label(),
			row.Statistic,
			row.Team,
			currentValue(row),
			row.Target,
			rowStatus(row),
			rowMinute(row),
		)
	}
	_ = tw.Flush()

	fixtures := make(map[int]struct{})
	for _, row := range rows {
		fixtures[row.Fixture.ID] = struct{}{}
	}

	state := "monitoring"
	if !active {
		state = "finished"
	}
	fmt.Fprintf(&b, "\nAlerts: %d | Fixtures: %d | Runtime: %s | Status: %s\n",
		r.alerts(), len(fixtures), time.Since(r.started).Round(time.Second), state)
	b.WriteString("Press Ctrl+C to stop monitoring\n")

	return b.String()
}

func currentValue(row footballalert.ConditionStatus) string {
	if !row.Observed {
		return "-"
	}
	return fmt.Sprintf("%d", row.Value)
}

// rowStatus mirrors the condition lifecycle: tracking with progress toward
// the target, met while the rest of the set is pending, alerted once the
// whole set fired, or unmet when the match ends first.
func rowStatus(row footballalert.ConditionStatus) string {
	switch {
	case row.AlertFired:
		return "ALERT"
	case row.Satisfied:
		return "MET"
	case row.Finished:
		return "UNMET"
	case row.Observed && row.Target > 0:
		pct := row.Value * 100 / row.Target
		if pct > 100 {
			pct = 100
		}
		return fmt.Sprintf("TRACKING (%d%%)", pct)
	default:
		return "TRACKING"
	}
}

func rowMinute(row footballalert.ConditionStatus) string {
	switch {
	case row.Satisfied:
		return fmt.Sprintf("%d'", row.SatisfiedMinute)
	case row.Finished:
		return "90'"
	default:
		return fmt.Sprintf("%d'", row.ElapsedMinute)
	}
}
