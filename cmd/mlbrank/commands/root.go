package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmoran/mlbrank/internal/pipeline"
	"github.com/jmoran/mlbrank/internal/statsapi"
	"github.com/jmoran/mlbrank/pkg/config"
	"github.com/jmoran/mlbrank/pkg/httputil"
	"github.com/jmoran/mlbrank/pkg/logger"
)

var (
	// Global flags
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mlbrank",
	Short: "MLB opponent- and park-adjusted offensive rankings",
	Long: `mlbrank - MLB offensive quality rankings

Fetches a season of completed games from the MLB Stats API, adjusts each
game's offensive output for opponent pitching quality and home park, and
ranks all thirty teams overall and across four splits (vs LHP, vs RHP,
home, away).

Usage:
  go run ./cmd/mlbrank [command]

Examples:
  go run ./cmd/mlbrank rank
  go run ./cmd/mlbrank rank --season 2024 --smoothing 0.3
  go run ./cmd/mlbrank parks
  go run ./cmd/mlbrank serve
  go run ./cmd/mlbrank schedule --cron "0 6 * * *"`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadConfig loads configuration and builds the logger every command shares.
func loadConfig() (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	if verbose {
		cfg.LogLevel = "debug"
	}

	return cfg, logger.New(cfg), nil
}

// newPipeline wires the rate-limited HTTP client, the stats API client and
// the ranking pipeline.
func newPipeline(cfg *config.Config, log *logger.Logger) *pipeline.Pipeline {
	httpClient := httputil.New(log, cfg.StatsAPI.Timeout).
		WithRateLimit(cfg.StatsAPI.RequestsPerSec)
	client := statsapi.NewClient(httpClient, log, cfg.StatsAPI.BaseURL)
	return pipeline.New(client, log)
}
