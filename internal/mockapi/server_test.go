package mockapi

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DenizArda13/football-alert-cli/statsource"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestHandleFixtures(t *testing.T) {
	srv := NewServer(statsource.NewGenerator(), 0, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/fixtures", nil)
	rec := httptest.NewRecorder()
	srv.handleFixtures(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var fixtures []struct {
		FixtureID int    `json:"fixture_id"`
		HomeTeam  string `json:"home_team"`
		League    string `json:"league"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &fixtures); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if len(fixtures) != 6 {
		t.Fatalf("fixtures = %d entries, want 6", len(fixtures))
	}
	if fixtures[0].FixtureID != 1001 || fixtures[0].HomeTeam != "Manchester City" {
		t.Errorf("unexpected first fixture: %+v", fixtures[0])
	}
}

func TestHandleFixtures_MethodNotAllowed(t *testing.T) {
	srv := NewServer(statsource.NewGenerator(), 0, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/fixtures", nil)
	rec := httptest.NewRecorder()
	srv.handleFixtures(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}

func TestHandleStatistics(t *testing.T) {
	srv := NewServer(statsource.NewGenerator(), 0, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/fixtures/statistics?fixture=1001", nil)
	rec := httptest.NewRecorder()
	srv.handleStatistics(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var payload struct {
		Response []struct {
			Team struct {
				Name string `json:"name"`
			} `json:"team"`
			Statistics []struct {
				Type  string `json:"type"`
				Value int    `json:"value"`
			} `json:"statistics"`
		} `json:"response"`
		Elapsed int `json:"elapsed"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}

	if len(payload.Response) != 2 {
		t.Fatalf("response entries = %d, want 2", len(payload.Response))
	}
	if payload.Response[0].Team.Name != "Manchester City" {
		t.Errorf("home team = %q, want Manchester City", payload.Response[0].Team.Name)
	}
	if payload.Response[1].Team.Name != "Liverpool" {
		t.Errorf("away team = %q, want Liverpool", payload.Response[1].Team.Name)
	}
	if payload.Elapsed != 5 {
		t.Errorf("elapsed = %d on first poll, want 5", payload.Elapsed)
	}
	if len(payload.Response[0].Statistics) != 3 {
		t.Errorf("home statistics = %d entries, want 3", len(payload.Response[0].Statistics))
	}
}

func TestHandleStatistics_ProgressionAdvances(t *testing.T) {
	srv := NewServer(statsource.NewGenerator(), 0, testLogger())

	var elapsed []int
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/fixtures/statistics?fixture=1002", nil)
		rec := httptest.NewRecorder()
		srv.handleStatistics(rec, req)

		var payload struct {
			Elapsed int `json:"elapsed"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
			t.Fatalf("response is not valid JSON: %v", err)
		}
		elapsed = append(elapsed, payload.Elapsed)
	}

	want := []int{5, 10, 15}
	for i := range want {
		if elapsed[i] != want[i] {
			t.Errorf("poll %d elapsed = %d, want %d", i+1, elapsed[i], want[i])
		}
	}
}

func TestHandleStatistics_BadFixtureParam(t *testing.T) {
	srv := NewServer(statsource.NewGenerator(), 0, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/fixtures/statistics?fixture=abc", nil)
	rec := httptest.NewRecorder()
	srv.handleStatistics(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandleStatistics_UnknownFixtureUsesPlaceholders(t *testing.T) {
	srv := NewServer(statsource.NewGenerator(), 0, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/fixtures/statistics?fixture=4242", nil)
	rec := httptest.NewRecorder()
	srv.handleStatistics(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var payload struct {
		Response []struct {
			Team struct {
				Name string `json:"name"`
			} `json:"team"`
		} `json:"response"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if payload.Response[0].Team.Name != "Home" {
		t.Errorf("home team = %q, want placeholder Home", payload.Response[0].Team.Name)
	}
}
