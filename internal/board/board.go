package board

import (
	"sort"
	"sync"
	"time"
)

// fullTime is the elapsed minute at which a fixture is considered finished.
const fullTime = 90

// Row is the stored state of a single condition within a fixture.
//
// Rows are keyed by (FixtureID, Index); an upsert with the same key
// replaces the previous value atomically.
type Row struct {
	// FixtureID identifies the fixture the row belongs to.
	FixtureID int

	// Index is the condition's position within its set.
	Index int

	// Statistic is the watched statistic name.
	Statistic string

	// Side is the team side ("home" or "away").
	Side string

	// Value is the last observed cumulative value.
	Value int

	// Observed reports whether the statistic has appeared in a snapshot.
	Observed bool

	// Target is the condition's threshold.
	Target int

	// Satisfied reports whether the condition has crossed its target.
	Satisfied bool

	// SatisfiedMinute is the minute the condition first crossed its
	// target. Meaningful only when Satisfied is true.
	SatisfiedMinute int

	// UpdatedAt is when the row was last written.
	UpdatedAt time.Time
}

// FixtureMeta is the per-fixture aggregate alongside the condition rows.
type FixtureMeta struct {
	// ElapsedMinute is the latest elapsed match minute seen.
	ElapsedMinute int

	// Finished reports whether the fixture reached the 90th minute.
	Finished bool

	// AlertFired reports whether the fixture's condition set has fired.
	AlertFired bool

	// AlertMinute is the minute the alert fired. Meaningful only
	// when AlertFired is true.
	AlertMinute int

	// LastUpdate is when the fixture last produced a snapshot.
	LastUpdate time.Time
}

// Snapshot is an immutable copy of the full dashboard table.
type Snapshot struct {
	// Rows are all condition rows, sorted by fixture ID then index.
	Rows []Row

	// Fixtures maps fixture ID to its aggregate state.
	Fixtures map[int]FixtureMeta
}

type rowKey struct {
	fixtureID int
	index     int
}

// State is the concurrency-safe aggregation point for dashboard data.
//
// Many fixture monitors write concurrently (each owning a disjoint set of
// rows) while a single render loop reads. Every upsert is a single short
// critical section; [State.Snapshot] copies the table so readers never
// observe a partially written row and never block writers beyond one
// upsert's critical section.
type State struct {
	mu       sync.RWMutex
	rows     map[rowKey]Row
	fixtures map[int]FixtureMeta
}

// NewState creates an empty dashboard [State], immediately ready for use.
func NewState() *State {
	return &State{
		rows:     make(map[rowKey]Row),
		fixtures: make(map[int]FixtureMeta),
	}
}

// Upsert atomically stores a [Row], replacing any previous value for the
// same (fixture, index) key.
func (s *State) Upsert(row Row) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rows[rowKey{fixtureID: row.FixtureID, index: row.Index}] = row
}

// SetElapsed records the fixture's latest elapsed minute and marks both the
// last update time and, at 90 minutes, the finished flag.
func (s *State) SetElapsed(fixtureID, minute int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	meta := s.fixtures[fixtureID]
	if minute > meta.ElapsedMinute {
		meta.ElapsedMinute = minute
	}
	if meta.ElapsedMinute >= fullTime {
		meta.Finished = true
	}
	meta.LastUpdate = time.Now()
	s.fixtures[fixtureID] = meta
}

// MarkAlert records that the fixture's condition set fired at the given
// minute. Subsequent calls for the same fixture keep the first minute.
func (s *State) MarkAlert(fixtureID, minute int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	meta := s.fixtures[fixtureID]
	if !meta.AlertFired {
		meta.AlertFired = true
		meta.AlertMinute = minute
	}
	s.fixtures[fixtureID] = meta
}

// Snapshot returns an immutable copy of the whole table.
//
// Rows are sorted by fixture ID then condition index for deterministic
// rendering. The copy is independent of the live state; mutating it does
// not affect the board.
func (s *State) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := make([]Row, 0, len(s.rows))
	for _, row := range s.rows {
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].FixtureID != rows[j].FixtureID {
			return rows[i].FixtureID < rows[j].FixtureID
		}
		return rows[i].Index < rows[j].Index
	})

	fixtures := make(map[int]FixtureMeta, len(s.fixtures))
	for id, meta := range s.fixtures {
		fixtures[id] = meta
	}

	return Snapshot{Rows: rows, Fixtures: fixtures}
}

// HasData reports whether any fixture has produced at least one snapshot.
// Used to detect the total-failure case where every poll failed for the
// whole run.
func (s *State) HasData() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, meta := range s.fixtures {
		if !meta.LastUpdate.IsZero() {
			return true
		}
	}
	return false
}
