package footballalert

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestAlertEventString(t *testing.T) {
	ev := AlertEvent{
		Fixture: Fixture{ID: 1001, HomeTeam: "Manchester City", AwayTeam: "Liverpool"},
		Minute:  40,
		Conditions: []AlertCondition{
			{Team: "Manchester City", Side: SideHome, Statistic: "Corners", Target: 3, Minute: 25},
			{Team: "Liverpool", Side: SideAway, Statistic: "Total Shots", Target: 5, Minute: 40},
		},
	}

	want := "ALERT [fixture 1001] Manchester City vs Liverpool: " +
		"Manchester City reached 3 Corners. (25'); Liverpool reached 5 Total Shots. (40')"
	if got := ev.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestAlertEventStringSingleCondition(t *testing.T) {
	ev := AlertEvent{
		Fixture: Fixture{ID: 1002, HomeTeam: "Real Madrid", AwayTeam: "Barcelona"},
		Minute:  12,
		Conditions: []AlertCondition{
			{Team: "Barcelona", Side: SideAway, Statistic: "Goals", Target: 1, Minute: 12},
		},
	}

	want := "ALERT [fixture 1002] Real Madrid vs Barcelona: Barcelona reached 1 Goals. (12')"
	if got := ev.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestPollErrorWrapping(t *testing.T) {
	underlying := errors.New("connection refused")
	pe := PollError{
		FixtureID: 1001,
		Seq:       3,
		Err:       underlying,
		At:        time.Now(),
	}

	if !errors.Is(pe, underlying) {
		t.Error("errors.Is(pe, underlying) = false, want true via Unwrap")
	}
	msg := pe.Error()
	for _, part := range []string{"1001", "3", "connection refused"} {
		if !strings.Contains(msg, part) {
			t.Errorf("Error() = %q, want it to contain %q", msg, part)
		}
	}
}
