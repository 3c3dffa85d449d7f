package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/DenizArda13/football-alert-cli/statsource"
)

// fixturesCmd lists the mock fixture catalog.
var fixturesCmd = &cobra.Command{
	Use:   "fixtures",
	Short: "List the fixtures available from the mock source",
	Long: `List the fixtures the mock stat source and mock API server know about,
with the statistic names they produce. Use the IDs with 'watch --mock' or
'watch --mock-server'.`,
	Run: runFixtures,
}

func init() {
	rootCmd.AddCommand(fixturesCmd)
}

func runFixtures(cmd *cobra.Command, args []string) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tMATCH\tLEAGUE")
	for _, f := range statsource.Fixtures() {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", f.ID, f.Label(), f.League)
	}
	_ = tw.Flush()

	fmt.Printf("\nAvailable statistics: %s\n", strings.Join(statsource.AvailableStats(), ", "))
}
