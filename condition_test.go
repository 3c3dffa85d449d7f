package footballalert

import (
	"strings"
	"testing"
)

func TestNewConditionSetValidation(t *testing.T) {
	tests := []struct {
		name       string
		conditions []Condition
		wantErr    string
	}{
		{
			name:    "empty set",
			wantErr: "at least one condition",
		},
		{
			name:       "empty statistic",
			conditions: []Condition{{Statistic: "", Side: SideHome, Target: 3}},
			wantErr:    "statistic name cannot be empty",
		},
		{
			name:       "invalid side",
			conditions: []Condition{{Statistic: "Corners", Side: "middle", Target: 3}},
			wantErr:    "invalid team side",
		},
		{
			name:       "zero target",
			conditions: []Condition{{Statistic: "Corners", Side: SideHome, Target: 0}},
			wantErr:    "must be a positive integer",
		},
		{
			name:       "negative target",
			conditions: []Condition{{Statistic: "Corners", Side: SideHome, Target: -2}},
			wantErr:    "must be a positive integer",
		},
		{
			name: "second condition invalid",
			conditions: []Condition{
				{Statistic: "Corners", Side: SideHome, Target: 3},
				{Statistic: "Goals", Side: SideAway, Target: 0},
			},
			wantErr: "condition 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewConditionSet(1001, tt.conditions...)
			if err == nil {
				t.Fatal("NewConditionSet() error = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("NewConditionSet() error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestConditionSetIsImmutable(t *testing.T) {
	input := []Condition{
		{Statistic: "Corners", Side: SideHome, Target: 3},
		{Statistic: "Goals", Side: SideAway, Target: 1},
	}

	set, err := NewConditionSet(1001, input...)
	if err != nil {
		t.Fatalf("NewConditionSet() error = %v", err)
	}

	// Mutating the input after construction must not leak into the set.
	input[0].Target = 99

	conds := set.Conditions()
	if got, want := conds[0].Target, 3; got != want {
		t.Errorf("conds[0].Target = %d, want %d (input mutation leaked)", got, want)
	}

	// Mutating the returned copy must not leak back either.
	conds[1].Statistic = "Fouls"
	if got, want := set.Conditions()[1].Statistic, "Goals"; got != want {
		t.Errorf("Conditions()[1].Statistic = %q, want %q (returned slice not a copy)", got, want)
	}

	if got, want := set.FixtureID(), 1001; got != want {
		t.Errorf("FixtureID() = %d, want %d", got, want)
	}
	if got, want := set.Len(), 2; got != want {
		t.Errorf("Len() = %d, want %d", got, want)
	}
}

func TestGroupConditionsOrdering(t *testing.T) {
	tuples := []ConditionTuple{
		{FixtureID: 1002, Statistic: "Corners", Side: SideHome, Target: 3},
		{FixtureID: 1001, Statistic: "Goals", Side: SideAway, Target: 1},
		{FixtureID: 1002, Statistic: "Total Shots", Side: SideAway, Target: 5},
	}

	sets, err := GroupConditions(tuples)
	if err != nil {
		t.Fatalf("GroupConditions() error = %v", err)
	}

	if len(sets) != 2 {
		t.Fatalf("len(sets) = %d, want 2", len(sets))
	}

	// Fixture order follows first appearance in the input.
	if got, want := sets[0].FixtureID(), 1002; got != want {
		t.Errorf("sets[0].FixtureID() = %d, want %d", got, want)
	}
	if got, want := sets[1].FixtureID(), 1001; got != want {
		t.Errorf("sets[1].FixtureID() = %d, want %d", got, want)
	}

	// Conditions within a fixture keep input order.
	conds := sets[0].Conditions()
	if got, want := len(conds), 2; got != want {
		t.Fatalf("sets[0].Len() = %d, want %d", got, want)
	}
	if got, want := conds[0].Statistic, "Corners"; got != want {
		t.Errorf("conds[0].Statistic = %q, want %q", got, want)
	}
	if got, want := conds[1].Statistic, "Total Shots"; got != want {
		t.Errorf("conds[1].Statistic = %q, want %q", got, want)
	}
}

func TestGroupConditionsRejectsEmptyAndInvalid(t *testing.T) {
	if _, err := GroupConditions(nil); err == nil {
		t.Error("GroupConditions(nil) error = nil, want error")
	}

	tuples := []ConditionTuple{
		{FixtureID: 1001, Statistic: "Corners", Side: SideHome, Target: 0},
	}
	if _, err := GroupConditions(tuples); err == nil {
		t.Error("GroupConditions() with zero target error = nil, want error")
	}
}
