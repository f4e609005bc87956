package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmoran/mlbrank/internal/pipeline"
	"github.com/jmoran/mlbrank/internal/report"
	"github.com/jmoran/mlbrank/internal/storage"
	"github.com/jmoran/mlbrank/pkg/config"
	"github.com/jmoran/mlbrank/pkg/database"
	"github.com/jmoran/mlbrank/pkg/logger"
)

// rankCmd represents the rank command
var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Compute adjusted offensive rankings for a season",
	Long: `Fetches the season's teams, schedules and boxscores from the MLB
Stats API, adjusts every game score for opponent pitching quality and
home park, and prints the five rankings (overall, vs LHP, vs RHP,
home, away).

The run takes several minutes: roughly 2,400 boxscore requests at the
configured polite rate limit.

Example:
  go run ./cmd/mlbrank rank
  go run ./cmd/mlbrank rank --season 2024 --smoothing 0.2
  go run ./cmd/mlbrank rank --quiet --out /tmp/results
  go run ./cmd/mlbrank rank --store`,
	RunE: runRank,
}

var (
	// Rank flags
	rankSeason    int
	rankSmoothing float64
	rankNoSave    bool
	rankQuiet     bool
	rankOut       string
	rankStore     bool
)

func init() {
	rootCmd.AddCommand(rankCmd)

	// Flags
	rankCmd.Flags().IntVar(&rankSeason, "season", 0, "season year (default: SEASON env or current year)")
	rankCmd.Flags().Float64Var(&rankSmoothing, "smoothing", 0.3, "opponent adjustment damping in [0,1]")
	rankCmd.Flags().BoolVar(&rankNoSave, "no-save", false, "skip writing the CSV file")
	rankCmd.Flags().BoolVar(&rankQuiet, "quiet", false, "suppress the console table")
	rankCmd.Flags().StringVar(&rankOut, "out", "", "output directory for the CSV (default: OUTPUT_DIR)")
	rankCmd.Flags().BoolVar(&rankStore, "store", false, "persist the run to PostgreSQL (requires DATABASE_URL)")
}

func runRank(cmd *cobra.Command, args []string) error {
	// 1. Load config
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	season := cfg.EffectiveSeason()
	if rankSeason > 0 {
		season = rankSeason
	}

	smoothing := cfg.SmoothingFactor
	if cmd.Flags().Changed("smoothing") {
		smoothing = rankSmoothing
	}
	if smoothing < 0 || smoothing > 1 {
		return fmt.Errorf("smoothing must be in [0,1], got %v", smoothing)
	}

	log.WithFields(map[string]interface{}{
		"season":    season,
		"smoothing": smoothing,
	}).Info("Starting ranking run")

	// 2. Run the pipeline
	result, err := newPipeline(cfg, log).Run(context.Background(), season, smoothing)
	if err != nil {
		return fmt.Errorf("ranking run failed: %w", err)
	}

	// 3. Console table
	if !rankQuiet {
		report.RenderTable(os.Stdout, result)
	}

	// 4. CSV
	if !rankNoSave {
		outDir := cfg.OutputDir
		if rankOut != "" {
			outDir = rankOut
		}
		path, err := report.WriteCSV(result, outDir)
		if err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
		fmt.Printf("\nResults saved to %s\n", path)
	}

	// 5. Optional persistence
	if rankStore {
		if err := storeRun(cfg, log, result); err != nil {
			return fmt.Errorf("store run: %w", err)
		}
		fmt.Println("Run stored to database")
	}

	return nil
}

// storeRun persists one pipeline result to PostgreSQL.
func storeRun(cfg *config.Config, log *logger.Logger, result *pipeline.Result) error {
	db, err := database.New(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewRepository(db.Pool)
	ctx := context.Background()
	if err := repo.Init(ctx); err != nil {
		return err
	}

	runID, err := repo.SaveRun(ctx, result)
	if err != nil {
		return err
	}

	log.WithFields(map[string]interface{}{
		"run_id": runID,
		"season": result.Season,
	}).Info("Ranking run persisted")

	return nil
}
