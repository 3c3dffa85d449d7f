package mockapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	footballalert "github.com/DenizArda13/football-alert-cli"
	"github.com/DenizArda13/football-alert-cli/statsource"
)

const shutdownTimeout = 5 * time.Second

// Server is the local mock statistics API.
//
// It mimics the upstream API-Football surface closely enough for the HTTP
// stat client to poll it unchanged:
//
//   - GET /fixtures: the mock fixture catalog as JSON
//   - GET /fixtures/statistics?fixture=ID: simulated cumulative statistics
//   - GET /metrics: Prometheus metrics for the running process
//
// Progression state lives in the injected generator, so every fixture's
// values stay non-decreasing across requests.
type Server struct {
	generator  *statsource.Generator
	port       int
	addr       string
	httpServer *http.Server
	logger     *slog.Logger
	done       chan struct{}
}

// NewServer creates a mock API [Server] backed by the given generator.
func NewServer(gen *statsource.Generator, port int, logger *slog.Logger) *Server {
	return &Server{
		generator: gen,
		port:      port,
		logger:    logger,
		done:      make(chan struct{}),
	}
}

// Start begins serving in a background goroutine.
//
// Start is non-blocking and returns once the listener is bound, so callers
// know the port is usable before pointing a stat client at it. The server
// shuts down gracefully when the context is cancelled.
func (s *Server) Start(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/fixtures/statistics", s.handleStatistics)
	mux.HandleFunc("/fixtures", s.handleFixtures)
	mux.Handle("/metrics", promhttp.Handler())

	addr := fmt.Sprintf("127.0.0.1:%d", s.port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to bind to %s: %w", addr, err)
	}
	s.addr = ln.Addr().String()

	s.httpServer = &http.Server{
		Handler: mux,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		if err := s.httpServer.Serve(ln); err != nil && err != http.ErrServerClosed {
			s.logger.Error("mock api server error", "error", err)
		}
	}()

	go func() {
		defer close(s.done)
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("mock api server shutdown error", "error", err)
		}
	}()

	s.logger.Info("mock api server listening", "addr", "http://"+ln.Addr().String())
	return nil
}

// Wait blocks until the server has shut down after context cancellation.
// Only valid after a successful Start.
func (s *Server) Wait() {
	<-s.done
}

// URL returns the base URL of the running server. Only valid after a
// successful Start, which matters when the server was created with port 0.
func (s *Server) URL() string {
	return "http://" + s.addr
}

// handleFixtures serves the mock fixture catalog.
func (s *Server) handleFixtures(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	type fixtureJSON struct {
		FixtureID int    `json:"fixture_id"`
		HomeTeam  string `json:"home_team"`
		AwayTeam  string `json:"away_team"`
		League    string `json:"league"`
	}

	catalog := statsource.Fixtures()
	out := make([]fixtureJSON, len(catalog))
	for i, f := range catalog {
		out[i] = fixtureJSON{
			FixtureID: f.ID,
			HomeTeam:  f.HomeTeam,
			AwayTeam:  f.AwayTeam,
			League:    f.League,
		}
	}

	s.writeJSON(w, out)
}

// handleStatistics serves simulated statistics in the API-Football shape.
func (s *Server) handleStatistics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	fixtureID, err := strconv.Atoi(r.URL.Query().Get("fixture"))
	if err != nil {
		http.Error(w, "fixture query parameter must be an integer", http.StatusBadRequest)
		return
	}

	snap, err := s.generator.Fetch(r.Context(), fixtureID, 0)
	if err != nil {
		http.Error(w, "failed to generate statistics", http.StatusInternalServerError)
		return
	}

	fixture, err := statsource.FixtureByID(fixtureID)
	if err != nil {
		// unknown fixtures still progress, with placeholder team names
		fixture = footballalert.Fixture{ID: fixtureID}
	}

	s.writeJSON(w, map[string]any{
		"get":        "fixtures/statistics",
		"parameters": map[string]string{"fixture": strconv.Itoa(fixtureID)},
		"response": []any{
			teamEntry(fixture.TeamName(footballalert.SideHome), footballalert.SideHome, snap),
			teamEntry(fixture.TeamName(footballalert.SideAway), footballalert.SideAway, snap),
		},
		"elapsed": snap.Minute,
	})
}

// teamEntry builds one team's statistics block from a snapshot.
func teamEntry(teamName string, side footballalert.Side, snap footballalert.StatSnapshot) map[string]any {
	stats := make([]map[string]any, 0, len(statsource.AvailableStats()))
	for _, stat := range statsource.AvailableStats() {
		if v, ok := snap.Values[footballalert.StatKey{Statistic: stat, Side: side}]; ok {
			stats = append(stats, map[string]any{"type": stat, "value": v})
		}
	}

	return map[string]any{
		"team":       map[string]string{"name": teamName},
		"statistics": stats,
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to write response", "error", err)
	}
}
