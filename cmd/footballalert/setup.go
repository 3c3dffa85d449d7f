package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/DenizArda13/football-alert-cli/config"
	"github.com/DenizArda13/football-alert-cli/statsource"
)

// setupCmd walks the user through building a config file.
var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Interactively build a config file",
	Long: `Walk through picking fixtures and conditions and write the result as a
config file ready for 'watch -c'.

Use --output - to print the config to stdout instead of writing a file.

Example:
  football-alert setup -o my-watch.yaml
  football-alert watch -c my-watch.yaml`,
	RunE: runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)

	setupCmd.Flags().StringP("output", "o", "football-alert.yaml", "output path ('-' for stdout)")
}

// wizard reads answers line by line and accumulates the config.
type wizard struct {
	in  *bufio.Scanner
	out io.Writer
}

func runSetup(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")

	w := &wizard{
		in:  bufio.NewScanner(cmd.InOrStdin()),
		out: cmd.OutOrStdout(),
	}

	cfg, err := w.run()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if output == "-" {
		fmt.Fprintf(w.out, "\n%s", data)
		return nil
	}

	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}
	fmt.Fprintf(w.out, "\nWrote %s. Start monitoring with:\n  football-alert watch -c %s\n", output, output)
	return nil
}

func (w *wizard) run() (*config.Config, error) {
	fmt.Fprintln(w.out, "football-alert setup")
	fmt.Fprintln(w.out, "Available fixtures:")
	for _, f := range statsource.Fixtures() {
		fmt.Fprintf(w.out, "  %d  %s (%s)\n", f.ID, f.Label(), f.League)
	}
	fmt.Fprintf(w.out, "Available statistics: %s\n\n", strings.Join(statsource.AvailableStats(), ", "))

	cfg := &config.Config{
		Source: config.SourceConfig{Mode: config.ModeMock},
	}

	interval, err := w.askDuration("Poll interval", 60*time.Second)
	if err != nil {
		return nil, err
	}
	cfg.PollInterval = config.Duration(interval)

	useHTTP, err := w.askYesNo("Poll a real API over HTTP instead of the mock source?", false)
	if err != nil {
		return nil, err
	}
	if useHTTP {
		cfg.Source.Mode = config.ModeHTTP
		cfg.Source.BaseURL, err = w.ask("API base URL", "http://127.0.0.1:5000")
		if err != nil {
			return nil, err
		}
		cfg.Source.APIKey, err = w.ask("API key (blank for none)", "")
		if err != nil {
			return nil, err
		}
	}

	cfg.HaltWhenSatisfied, err = w.askYesNo("Stop once every fixture has fired?", true)
	if err != nil {
		return nil, err
	}

	for {
		watch, err := w.askWatch()
		if err != nil {
			return nil, err
		}
		cfg.Watches = append(cfg.Watches, watch)

		more, err := w.askYesNo("Add another fixture?", false)
		if err != nil {
			return nil, err
		}
		if !more {
			break
		}
	}

	return cfg, nil
}

func (w *wizard) askWatch() (config.WatchConfig, error) {
	id, err := w.askInt("Fixture ID", 0)
	if err != nil {
		return config.WatchConfig{}, err
	}

	watch := config.WatchConfig{FixtureID: id}
	if f, err := statsource.FixtureByID(id); err == nil {
		fmt.Fprintf(w.out, "  %s (%s)\n", f.Label(), f.League)
	} else {
		watch.HomeTeam, err = w.ask("Home team name", "")
		if err != nil {
			return config.WatchConfig{}, err
		}
		watch.AwayTeam, err = w.ask("Away team name", "")
		if err != nil {
			return config.WatchConfig{}, err
		}
	}

	for {
		stat, err := w.ask("Statistic", "Corners")
		if err != nil {
			return config.WatchConfig{}, err
		}
		team, err := w.ask("Team (home/away)", "home")
		if err != nil {
			return config.WatchConfig{}, err
		}
		target, err := w.askInt("Target", 0)
		if err != nil {
			return config.WatchConfig{}, err
		}
		watch.Conditions = append(watch.Conditions, config.ConditionConfig{
			Stat:   stat,
			Team:   strings.ToLower(strings.TrimSpace(team)),
			Target: target,
		})

		more, err := w.askYesNo("Add another condition for this fixture?", false)
		if err != nil {
			return config.WatchConfig{}, err
		}
		if !more {
			return watch, nil
		}
	}
}

// ask prompts and returns the entered line, or def when the answer is blank.
func (w *wizard) ask(prompt, def string) (string, error) {
	if def != "" {
		fmt.Fprintf(w.out, "%s [%s]: ", prompt, def)
	} else {
		fmt.Fprintf(w.out, "%s: ", prompt)
	}

	if !w.in.Scan() {
		if err := w.in.Err(); err != nil {
			return "", err
		}
		return "", fmt.Errorf("input ended before %q was answered", prompt)
	}

	answer := strings.TrimSpace(w.in.Text())
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

func (w *wizard) askInt(prompt string, def int) (int, error) {
	for {
		defStr := ""
		if def > 0 {
			defStr = strconv.Itoa(def)
		}
		answer, err := w.ask(prompt, defStr)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(answer)
		if err != nil || n <= 0 {
			fmt.Fprintln(w.out, "Please enter a positive integer.")
			continue
		}
		return n, nil
	}
}

func (w *wizard) askDuration(prompt string, def time.Duration) (time.Duration, error) {
	for {
		answer, err := w.ask(prompt, def.String())
		if err != nil {
			return 0, err
		}
		d, err := time.ParseDuration(answer)
		if err != nil || d <= 0 {
			fmt.Fprintln(w.out, "Please enter a duration like 30s or 1m.")
			continue
		}
		return d, nil
	}
}

func (w *wizard) askYesNo(prompt string, def bool) (bool, error) {
	defStr := "y/N"
	if def {
		defStr = "Y/n"
	}
	for {
		answer, err := w.ask(fmt.Sprintf("%s (%s)", prompt, defStr), "")
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		default:
			fmt.Fprintln(w.out, "Please answer y or n.")
		}
	}
}
