package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jmoran/mlbrank/internal/report"
	"github.com/jmoran/mlbrank/internal/scheduler"
	"github.com/jmoran/mlbrank/pkg/config"
	"github.com/jmoran/mlbrank/pkg/logger"
)

// scheduleCmd represents the schedule command
var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Run the ranking pipeline on a cron schedule",
	Long: `Starts a daemon that recomputes the rankings on a cron schedule.
Each run writes a CSV to the output directory and, when DATABASE_URL
is set, persists the run for the API server.

The cron spec uses the standard five fields (minute hour dom month dow).

Example:
  go run ./cmd/mlbrank schedule
  go run ./cmd/mlbrank schedule --cron "0 6 * * *"`,
	RunE: runSchedule,
}

var (
	// Schedule flags
	scheduleCron string
)

func init() {
	rootCmd.AddCommand(scheduleCmd)

	// Flags
	scheduleCmd.Flags().StringVar(&scheduleCron, "cron", "0 6 * * *", "cron spec for the daily ranking run")
}

// rankingJob is the scheduled unit of work: one full ranking run plus its
// outputs.
type rankingJob struct {
	cfg *config.Config
	log *logger.Logger
}

func (j *rankingJob) Name() string { return "ranking_run" }

func (j *rankingJob) Run(ctx context.Context) error {
	season := j.cfg.EffectiveSeason()

	result, err := newPipeline(j.cfg, j.log).Run(ctx, season, j.cfg.SmoothingFactor)
	if err != nil {
		return err
	}

	path, err := report.WriteCSV(result, j.cfg.OutputDir)
	if err != nil {
		return err
	}
	j.log.WithField("path", path).Info("Scheduled run CSV written")

	if j.cfg.Database.URL != "" {
		if err := storeRun(j.cfg, j.log, result); err != nil {
			return err
		}
	}

	return nil
}

// compile-time check
var _ scheduler.Job = (*rankingJob)(nil)

func runSchedule(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	sched := scheduler.New(log)
	if err := sched.AddJob(scheduleCron, &rankingJob{cfg: cfg, log: log}); err != nil {
		return err
	}

	sched.Start()
	fmt.Printf("Scheduler started (cron %q). Press Ctrl+C to stop.\n", scheduleCron)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	sched.Stop()
	return nil
}
