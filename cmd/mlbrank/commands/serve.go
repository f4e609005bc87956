package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmoran/mlbrank/internal/api"
	"github.com/jmoran/mlbrank/internal/storage"
	"github.com/jmoran/mlbrank/pkg/database"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the rankings API server",
	Long: `Starts a read-only HTTP server over stored ranking runs. Requires
DATABASE_URL; runs are written by "rank --store" or the scheduler.

Endpoints:
  GET /health
  GET /api/rankings?season=2024
  GET /api/rankings/latest

Example:
  go run ./cmd/mlbrank serve
  go run ./cmd/mlbrank serve --addr :9090`,
	RunE: runServe,
}

var (
	// Serve flags
	serveAddr string
)

func init() {
	rootCmd.AddCommand(serveCmd)

	// Flags
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default: SERVER_ADDR)")
}

func runServe(cmd *cobra.Command, args []string) error {
	// 1. Load config
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	addr := cfg.ServerAddr
	if serveAddr != "" {
		addr = serveAddr
	}

	// 2. Connect to database
	db, err := database.New(cfg)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	repo := storage.NewRepository(db.Pool)
	if err := repo.Init(context.Background()); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}

	// 3. Router and server
	rankings := api.NewRankingsHandler(repo, log)
	server := &http.Server{
		Addr:         addr,
		Handler:      api.NewRouter(rankings, log),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	// 4. Start with graceful shutdown
	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", addr).Info("API server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-quit:
	}

	log.Info("Shutting down API server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	log.Info("API server stopped")
	return nil
}
