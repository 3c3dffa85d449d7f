package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	footballalert "github.com/DenizArda13/football-alert-cli"
	"github.com/DenizArda13/football-alert-cli/config"
	"github.com/DenizArda13/football-alert-cli/internal/mockapi"
	"github.com/DenizArda13/football-alert-cli/internal/render"
	"github.com/DenizArda13/football-alert-cli/statsource"
)

const dashboardRefresh = time.Second

// newLogger creates a JSON logger for CLI use.
func newLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

// watchCmd monitors fixtures until every condition set fires or the run
// is interrupted.
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Monitor fixtures and alert when all conditions are met",
	Long: `Monitor one or more fixtures and fire an alert the moment every
condition set for that fixture is satisfied.

Conditions can come from a YAML config file or from repeated flags. The
flag form takes aligned --fixture-id, --stat, --team and --target values;
the Nth value of each flag describes the Nth condition. Conditions sharing
a fixture ID are AND-combined into one alert.

The run ends when interrupted (Ctrl+C), or, with --halt, as soon as every
watched fixture has fired.

Examples:
  football-alert watch -c config.yaml
  football-alert watch --mock \
    --fixture-id 1001 --stat Corners --team home --target 3 \
    --fixture-id 1001 --stat "Total Shots" --team away --target 5
  football-alert watch --base-url https://v3.football.api-sports.io \
    --api-key $API_KEY --fixture-id 868549 --stat Corners --team home --target 6`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringP("config", "c", "", "path to YAML config file")

	watchCmd.Flags().IntSlice("fixture-id", nil, "fixture ID for each condition (repeatable)")
	watchCmd.Flags().StringSlice("stat", nil, "statistic name for each condition (repeatable)")
	watchCmd.Flags().StringSlice("team", nil, "side for each condition: home or away (repeatable)")
	watchCmd.Flags().IntSlice("target", nil, "threshold for each condition (repeatable)")

	watchCmd.Flags().Duration("interval", 60*time.Second, "poll interval")
	watchCmd.Flags().Bool("mock", false, "use the in-process mock stat generator")
	watchCmd.Flags().Bool("mock-server", false, "run a local mock API and poll it over HTTP")
	watchCmd.Flags().String("base-url", "", "stats API base URL")
	watchCmd.Flags().String("api-key", "", "stats API key (x-rapidapi-key)")
	watchCmd.Flags().Bool("halt", false, "stop once every watched fixture has fired")
	watchCmd.Flags().Bool("dashboard", false, "render a live terminal dashboard")
	watchCmd.Flags().Int("metrics-port", 0, "serve Prometheus metrics on this port (0 disables)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	watches, source, interval, halt, err := assembleRun(ctx, cmd, logger)
	if err != nil {
		return err
	}

	dashboard, _ := cmd.Flags().GetBool("dashboard")
	metricsPort, _ := cmd.Flags().GetInt("metrics-port")

	opts := []footballalert.Option{
		footballalert.WithWatches(watches...),
		footballalert.WithSource(source),
		footballalert.WithPollInterval(interval),
		footballalert.WithLogger(logger),
		footballalert.WithHaltWhenSatisfied(halt),
	}
	if !dashboard {
		// The dashboard surfaces alerts itself; plain mode prints them.
		opts = append(opts, footballalert.WithAlertCallback(func(ev footballalert.AlertEvent) {
			fmt.Println(ev.String())
		}))
	}

	tracker, err := footballalert.New(opts...)
	if err != nil {
		return fmt.Errorf("failed to create tracker: %w", err)
	}

	logger.Info("starting watch",
		"fixtures", len(watches),
		"poll_interval", interval.String(),
		"halt_when_satisfied", halt,
	)

	if metricsPort > 0 {
		startMetricsServer(ctx, metricsPort, logger)
	}

	// The renderer runs on its own context so the final frame can be
	// drawn after the tracker has fully stopped.
	var renderDone chan struct{}
	var stopRender context.CancelFunc
	if dashboard {
		renderCtx, cancel := context.WithCancel(context.Background())
		stopRender = cancel
		renderDone = make(chan struct{})

		r := render.NewRenderer(os.Stdout, tracker.Dashboard, tracker.AlertCount, dashboardRefresh, true)
		go func() {
			defer close(renderDone)
			r.Run(renderCtx)
		}()
	}

	runErr := tracker.Start(ctx)

	if dashboard {
		stopRender()
		<-renderDone
	}

	if runErr != nil {
		if errors.Is(runErr, footballalert.ErrNoData) {
			return fmt.Errorf("no statistics could be fetched for any fixture: %w", runErr)
		}
		return runErr
	}

	if !dashboard {
		fmt.Printf("Run complete: %d alert(s) fired across %d fixture(s).\n",
			tracker.AlertCount(), len(watches))
	}
	return nil
}

// assembleRun resolves watches, stat source, interval and halt behavior
// from the config file or from flags. Flags override config values when
// both are given.
func assembleRun(ctx context.Context, cmd *cobra.Command, logger *slog.Logger) ([]footballalert.Watch, footballalert.StatSource, time.Duration, bool, error) {
	configFile, _ := cmd.Flags().GetString("config")
	interval, _ := cmd.Flags().GetDuration("interval")
	halt, _ := cmd.Flags().GetBool("halt")

	var watches []footballalert.Watch
	var source footballalert.StatSource

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return nil, nil, 0, false, fmt.Errorf("failed to load config: %w", err)
		}

		watches, err = cfg.Build()
		if err != nil {
			return nil, nil, 0, false, fmt.Errorf("invalid config: %w", err)
		}
		source, err = cfg.BuildSource()
		if err != nil {
			return nil, nil, 0, false, err
		}

		if !cmd.Flags().Changed("interval") {
			interval = cfg.PollInterval.Duration()
		}
		if !cmd.Flags().Changed("halt") {
			halt = cfg.HaltWhenSatisfied
		}
	} else {
		var err error
		watches, err = watchesFromFlags(cmd)
		if err != nil {
			return nil, nil, 0, false, err
		}
	}

	flagSource, err := sourceFromFlags(ctx, cmd, logger)
	if err != nil {
		return nil, nil, 0, false, err
	}
	if flagSource != nil {
		source = flagSource
	}
	if source == nil {
		return nil, nil, 0, false, errors.New("no stat source: pass --mock, --mock-server, --base-url or a config file")
	}

	return watches, source, interval, halt, nil
}

// watchesFromFlags assembles watches from the aligned condition flags.
func watchesFromFlags(cmd *cobra.Command) ([]footballalert.Watch, error) {
	fixtureIDs, _ := cmd.Flags().GetIntSlice("fixture-id")
	stats, _ := cmd.Flags().GetStringSlice("stat")
	teams, _ := cmd.Flags().GetStringSlice("team")
	targets, _ := cmd.Flags().GetIntSlice("target")

	if len(fixtureIDs) == 0 {
		return nil, errors.New("no conditions: pass --config or at least one --fixture-id/--stat/--team/--target group")
	}
	if len(stats) != len(fixtureIDs) || len(teams) != len(fixtureIDs) || len(targets) != len(fixtureIDs) {
		return nil, fmt.Errorf("condition flags must align: got %d --fixture-id, %d --stat, %d --team, %d --target",
			len(fixtureIDs), len(stats), len(teams), len(targets))
	}

	tuples := make([]footballalert.ConditionTuple, 0, len(fixtureIDs))
	for i := range fixtureIDs {
		side, err := footballalert.ParseSide(teams[i])
		if err != nil {
			return nil, fmt.Errorf("condition %d: %w", i+1, err)
		}
		tuples = append(tuples, footballalert.ConditionTuple{
			FixtureID: fixtureIDs[i],
			Statistic: stats[i],
			Side:      side,
			Target:    targets[i],
		})
	}

	sets, err := footballalert.GroupConditions(tuples)
	if err != nil {
		return nil, err
	}

	watches := make([]footballalert.Watch, 0, len(sets))
	for _, set := range sets {
		fixture, catErr := statsource.FixtureByID(set.FixtureID())
		if catErr != nil {
			// Unknown to the mock catalog; labels fall back to Home/Away.
			fixture = footballalert.Fixture{ID: set.FixtureID()}
		}
		watches = append(watches, footballalert.Watch{Fixture: fixture, Set: set})
	}
	return watches, nil
}

// sourceFromFlags returns the stat source the source flags select, or nil
// when no source flag was given.
func sourceFromFlags(ctx context.Context, cmd *cobra.Command, logger *slog.Logger) (footballalert.StatSource, error) {
	mock, _ := cmd.Flags().GetBool("mock")
	mockServer, _ := cmd.Flags().GetBool("mock-server")
	baseURL, _ := cmd.Flags().GetString("base-url")
	apiKey, _ := cmd.Flags().GetString("api-key")

	switch {
	case mockServer:
		srv := mockapi.NewServer(statsource.NewGenerator(), 0, logger)
		if err := srv.Start(ctx); err != nil {
			return nil, fmt.Errorf("failed to start mock server: %w", err)
		}
		return statsource.NewClient(srv.URL(), ""), nil
	case mock:
		return statsource.NewGenerator(), nil
	case baseURL != "":
		return statsource.NewClient(baseURL, apiKey), nil
	default:
		return nil, nil
	}
}

// startMetricsServer exposes the Prometheus registry over HTTP for the
// duration of the run.
func startMetricsServer(ctx context.Context, port int, logger *slog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:    fmt.Sprintf("127.0.0.1:%d", port),
		Handler: mux,
	}

	go func() {
		logger.Info("metrics server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("metrics server error", "error", err)
		}
	}()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
}
