package footballalert

import "testing"

func TestParseSide(t *testing.T) {
	tests := []struct {
		input   string
		want    Side
		wantErr bool
	}{
		{input: "home", want: SideHome},
		{input: "HOME", want: SideHome},
		{input: "h", want: SideHome},
		{input: " away ", want: SideAway},
		{input: "a", want: SideAway},
		{input: "middle", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSide(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseSide(%q) error = nil, want error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSide(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseSide(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSideValid(t *testing.T) {
	if !SideHome.Valid() || !SideAway.Valid() {
		t.Error("defined sides must be valid")
	}
	if Side("middle").Valid() {
		t.Error(`Side("middle").Valid() = true, want false`)
	}
}

func TestFixtureTeamName(t *testing.T) {
	f := Fixture{ID: 1001, HomeTeam: "Manchester City", AwayTeam: "Liverpool"}

	if got, want := f.TeamName(SideHome), "Manchester City"; got != want {
		t.Errorf("TeamName(home) = %q, want %q", got, want)
	}
	if got, want := f.TeamName(SideAway), "Liverpool"; got != want {
		t.Errorf("TeamName(away) = %q, want %q", got, want)
	}

	// Unnamed fixtures fall back to generic labels.
	bare := Fixture{ID: 2}
	if got, want := bare.TeamName(SideHome), "Home"; got != want {
		t.Errorf("bare TeamName(home) = %q, want %q", got, want)
	}
	if got, want := bare.TeamName(SideAway), "Away"; got != want {
		t.Errorf("bare TeamName(away) = %q, want %q", got, want)
	}
}

func TestFixtureLabel(t *testing.T) {
	f := Fixture{ID: 1001, HomeTeam: "Manchester City", AwayTeam: "Liverpool"}
	if got, want := f.Label(), "Manchester City vs Liverpool"; got != want {
		t.Errorf("Label() = %q, want %q", got, want)
	}

	bare := Fixture{ID: 2}
	if got, want := bare.Label(), "Home vs Away"; got != want {
		t.Errorf("bare Label() = %q, want %q", got, want)
	}
}
