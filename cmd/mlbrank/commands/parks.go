package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmoran/mlbrank/internal/report"
)

// parksCmd represents the parks command
var parksCmd = &cobra.Command{
	Use:   "parks",
	Short: "Show park factors for a season",
	Long: `Computes and prints per-venue park factors from the season's
completed games. Only schedules are fetched, so this is much faster
than a full ranking run.

A venue needs at least ten home games before its factor moves off
neutral.

Example:
  go run ./cmd/mlbrank parks
  go run ./cmd/mlbrank parks --season 2024`,
	RunE: runParks,
}

var (
	// Parks flags
	parksSeason int
)

func init() {
	rootCmd.AddCommand(parksCmd)

	// Flags
	parksCmd.Flags().IntVar(&parksSeason, "season", 0, "season year (default: SEASON env or current year)")
}

func runParks(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	season := cfg.EffectiveSeason()
	if parksSeason > 0 {
		season = parksSeason
	}

	result, err := newPipeline(cfg, log).RunParkFactors(context.Background(), season)
	if err != nil {
		return fmt.Errorf("park factor run failed: %w", err)
	}

	report.RenderParkFactors(os.Stdout, result)
	return nil
}
