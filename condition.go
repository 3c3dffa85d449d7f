package footballalert

import (
	"errors"
	"fmt"
)

// Condition is a single threshold to watch within a fixture: a statistic,
// the team side it applies to, and the target value that must be reached.
//
// Condition is an immutable input to the engine. The running state of a
// condition (current value, satisfied flag, minute of satisfaction) is
// owned by the fixture's monitor and surfaced through [ConditionStatus].
type Condition struct {
	// Statistic is the statistic name as reported by the data source,
	// e.g. "Corners", "Total Shots", "Goals".
	Statistic string

	// Side selects which team's value is compared against Target.
	Side Side

	// Target is the threshold. The condition is satisfied the first
	// time current value >= Target. Must be a positive integer.
	Target int
}

func (c Condition) validate() error {
	if c.Statistic == "" {
		return errors.New("statistic name cannot be empty")
	}
	if !c.Side.Valid() {
		return fmt.Errorf("invalid team side %q (expected 'home' or 'away')", c.Side)
	}
	if c.Target <= 0 {
		return fmt.Errorf("target for %s %s must be a positive integer, got %d", c.Side, c.Statistic, c.Target)
	}
	return nil
}

// ConditionSet is the ordered collection of conditions tracked together
// for one fixture. All conditions are AND-combined: the set is satisfied
// only when every condition holds simultaneously.
//
// ConditionSet is immutable after creation via [NewConditionSet].
// Insertion order is preserved and determines the ordering of conditions
// in the resulting [AlertEvent].
type ConditionSet struct {
	fixtureID  int
	conditions []Condition
}

// NewConditionSet creates a validated [ConditionSet] for the given fixture.
//
// Validation rejects an empty set, an empty statistic name, an unknown
// team side, and any non-positive target value. A rejected set reports the
// first offending condition; the fixture is then never started.
func NewConditionSet(fixtureID int, conditions ...Condition) (ConditionSet, error) {
	if len(conditions) == 0 {
		return ConditionSet{}, fmt.Errorf("fixture %d: at least one condition is required", fixtureID)
	}

	for i, c := range conditions {
		if err := c.validate(); err != nil {
			return ConditionSet{}, fmt.Errorf("fixture %d: condition %d: %w", fixtureID, i, err)
		}
	}

	cp := make([]Condition, len(conditions))
	copy(cp, conditions)

	return ConditionSet{fixtureID: fixtureID, conditions: cp}, nil
}

// FixtureID returns the identifier of the fixture this set tracks.
func (cs ConditionSet) FixtureID() int {
	return cs.fixtureID
}

// Conditions returns a copy of the conditions in insertion order.
//
// The returned slice is a copy; modifying it does not affect the set.
func (cs ConditionSet) Conditions() []Condition {
	cp := make([]Condition, len(cs.conditions))
	copy(cp, cs.conditions)
	return cp
}

// Len returns the number of conditions in the set.
func (cs ConditionSet) Len() int {
	return len(cs.conditions)
}

// ConditionTuple is one row of raw input to [GroupConditions]: a single
// (fixture, statistic, side, target) threshold as assembled by the CLI
// flag parsing or the interactive wizard.
type ConditionTuple struct {
	FixtureID int
	Statistic string
	Side      Side
	Target    int
}

// GroupConditions groups an ordered list of tuples into one validated
// [ConditionSet] per fixture.
//
// Fixture order follows the first appearance of each fixture ID in the
// input, and conditions within a fixture keep their input order, so alert
// message ordering is deterministic. Returns an error if any tuple fails
// condition validation.
func GroupConditions(tuples []ConditionTuple) ([]ConditionSet, error) {
	if len(tuples) == 0 {
		return nil, errors.New("at least one condition is required")
	}

	order := make([]int, 0, len(tuples))
	grouped := make(map[int][]Condition, len(tuples))

	for _, tup := range tuples {
		if _, seen := grouped[tup.FixtureID]; !seen {
			order = append(order, tup.FixtureID)
		}
		grouped[tup.FixtureID] = append(grouped[tup.FixtureID], Condition{
			Statistic: tup.Statistic,
			Side:      tup.Side,
			Target:    tup.Target,
		})
	}

	sets := make([]ConditionSet, 0, len(order))
	for _, id := range order {
		set, err := NewConditionSet(id, grouped[id]...)
		if err != nil {
			return nil, err
		}
		sets = append(sets, set)
	}

	return sets, nil
}
