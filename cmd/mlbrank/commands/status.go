package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmoran/mlbrank/pkg/database"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show effective configuration and database connectivity",
	Long: `Prints the resolved configuration (season, smoothing, API base URL,
output directory) and, when DATABASE_URL is set, checks that the
database is reachable.

Example:
  go run ./cmd/mlbrank status`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	fmt.Println("=== mlbrank status ===")
	fmt.Printf("Env:          %s\n", cfg.Env)
	fmt.Printf("Season:       %d\n", cfg.EffectiveSeason())
	fmt.Printf("Smoothing:    %.2f\n", cfg.SmoothingFactor)
	fmt.Printf("API base URL: %s\n", cfg.StatsAPI.BaseURL)
	fmt.Printf("Rate limit:   %.1f req/s\n", cfg.StatsAPI.RequestsPerSec)
	fmt.Printf("Output dir:   %s\n", cfg.OutputDir)

	if cfg.Database.URL == "" {
		fmt.Println("Database:     not configured (persistence disabled)")
		return nil
	}

	db, err := database.New(cfg)
	if err != nil {
		fmt.Printf("Database:     connection failed (%v)\n", err)
		return err
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.Ping(ctx); err != nil {
		fmt.Printf("Database:     ping failed (%v)\n", err)
		return err
	}

	fmt.Println("Database:     ok")
	return nil
}
