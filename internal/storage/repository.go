// Package storage persists ranking runs to PostgreSQL. Persistence is
// optional: the tool is fully usable with CSV output alone, and the API
// server is the only consumer of stored runs.
package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jmoran/mlbrank/internal/pipeline"
	"github.com/jmoran/mlbrank/internal/ranking"
)

// Repository stores and retrieves ranking runs
// SSOT: ranking persistence happens here only
type Repository struct {
	pool *pgxpool.Pool
}

// Run is one stored pipeline execution.
type Run struct {
	ID                int64     `json:"id"`
	Season            int       `json:"season"`
	Smoothing         float64   `json:"smoothing"`
	LeagueAvgRA9      float64   `json:"league_avg_ra9"`
	LeagueRunsPerGame float64   `json:"league_runs_per_game"`
	GeneratedAt       time.Time `json:"generated_at"`
}

// NewRepository creates a new ranking repository
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Init creates the schema when it does not exist yet.
func (r *Repository) Init(ctx context.Context) error {
	ddl := `
		CREATE TABLE IF NOT EXISTS ranking_runs (
			id                   BIGSERIAL PRIMARY KEY,
			season               INT NOT NULL,
			smoothing            DOUBLE PRECISION NOT NULL,
			league_avg_ra9       DOUBLE PRECISION NOT NULL,
			league_runs_per_game DOUBLE PRECISION NOT NULL,
			generated_at         TIMESTAMPTZ NOT NULL
		);
		CREATE TABLE IF NOT EXISTS ranking_rows (
			run_id             BIGINT NOT NULL REFERENCES ranking_runs(id) ON DELETE CASCADE,
			rank               INT NOT NULL,
			team_id            INT NOT NULL,
			team_name          TEXT NOT NULL,
			abbreviation       TEXT NOT NULL,
			division           TEXT NOT NULL,
			games_played       INT NOT NULL,
			avg_adjusted_score DOUBLE PRECISION NOT NULL,
			avg_game_score     DOUBLE PRECISION NOT NULL,
			rank_vs_lhp        INT NOT NULL,
			avg_adj_vs_lhp     DOUBLE PRECISION NOT NULL,
			games_vs_lhp       INT NOT NULL,
			rank_vs_rhp        INT NOT NULL,
			avg_adj_vs_rhp     DOUBLE PRECISION NOT NULL,
			games_vs_rhp       INT NOT NULL,
			rank_home          INT NOT NULL,
			avg_adj_home       DOUBLE PRECISION NOT NULL,
			games_home         INT NOT NULL,
			rank_away          INT NOT NULL,
			avg_adj_away       DOUBLE PRECISION NOT NULL,
			games_away         INT NOT NULL,
			total_runs         INT NOT NULL,
			total_hits         INT NOT NULL,
			total_walks        INT NOT NULL,
			total_strikeouts   INT NOT NULL,
			avg_runs           DOUBLE PRECISION NOT NULL,
			PRIMARY KEY (run_id, team_id)
		);
		CREATE INDEX IF NOT EXISTS idx_ranking_runs_season
			ON ranking_runs (season, generated_at DESC);
	`
	if _, err := r.pool.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// SaveRun stores a pipeline result and its ranked rows in one transaction.
func (r *Repository) SaveRun(ctx context.Context, result *pipeline.Result) (int64, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	var runID int64
	err = tx.QueryRow(ctx, `
		INSERT INTO ranking_runs (season, smoothing, league_avg_ra9, league_runs_per_game, generated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, result.Season, result.Smoothing, result.Baseline.AvgRA9, result.Baseline.AvgRunsPerGame, result.GeneratedAt).Scan(&runID)
	if err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}

	for _, t := range result.Ranked {
		_, err := tx.Exec(ctx, `
			INSERT INTO ranking_rows (
				run_id, rank, team_id, team_name, abbreviation, division,
				games_played, avg_adjusted_score, avg_game_score,
				rank_vs_lhp, avg_adj_vs_lhp, games_vs_lhp,
				rank_vs_rhp, avg_adj_vs_rhp, games_vs_rhp,
				rank_home, avg_adj_home, games_home,
				rank_away, avg_adj_away, games_away,
				total_runs, total_hits, total_walks, total_strikeouts, avg_runs
			) VALUES (
				$1, $2, $3, $4, $5, $6,
				$7, $8, $9,
				$10, $11, $12,
				$13, $14, $15,
				$16, $17, $18,
				$19, $20, $21,
				$22, $23, $24, $25, $26
			)
		`,
			runID, t.Rank, t.TeamID, t.TeamName, t.Abbreviation, t.Division,
			t.GamesPlayed, t.AvgAdjustedScore, t.AvgGameScore,
			t.RankVsLHP, t.AvgAdjVsLHP, t.GamesVsLHP,
			t.RankVsRHP, t.AvgAdjVsRHP, t.GamesVsRHP,
			t.RankHome, t.AvgAdjHome, t.GamesHome,
			t.RankAway, t.AvgAdjAway, t.GamesAway,
			t.TotalRuns, t.TotalHits, t.TotalWalks, t.TotalStrikeouts, t.AvgRuns,
		)
		if err != nil {
			return 0, fmt.Errorf("insert row for team %d: %w", t.TeamID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit tx: %w", err)
	}

	return runID, nil
}

// LatestRun returns the newest stored run, optionally filtered by season
// (0 = any season). pgx.ErrNoRows surfaces when nothing is stored.
func (r *Repository) LatestRun(ctx context.Context, season int) (*Run, error) {
	query := `
		SELECT id, season, smoothing, league_avg_ra9, league_runs_per_game, generated_at
		FROM ranking_runs
	`
	args := []interface{}{}
	if season > 0 {
		query += ` WHERE season = $1`
		args = append(args, season)
	}
	query += ` ORDER BY generated_at DESC LIMIT 1`

	var run Run
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&run.ID, &run.Season, &run.Smoothing, &run.LeagueAvgRA9, &run.LeagueRunsPerGame, &run.GeneratedAt,
	)
	if err != nil {
		return nil, err
	}
	return &run, nil
}

// RunRows returns a stored run's ranked rows ordered by overall rank.
func (r *Repository) RunRows(ctx context.Context, runID int64) ([]ranking.RankedTeam, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT rank, team_id, team_name, abbreviation, division,
		       games_played, avg_adjusted_score, avg_game_score,
		       rank_vs_lhp, avg_adj_vs_lhp, games_vs_lhp,
		       rank_vs_rhp, avg_adj_vs_rhp, games_vs_rhp,
		       rank_home, avg_adj_home, games_home,
		       rank_away, avg_adj_away, games_away,
		       total_runs, total_hits, total_walks, total_strikeouts, avg_runs
		FROM ranking_rows
		WHERE run_id = $1
		ORDER BY rank ASC
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ranked []ranking.RankedTeam
	for rows.Next() {
		var t ranking.RankedTeam
		if err := rows.Scan(
			&t.Rank, &t.TeamID, &t.TeamName, &t.Abbreviation, &t.Division,
			&t.GamesPlayed, &t.AvgAdjustedScore, &t.AvgGameScore,
			&t.RankVsLHP, &t.AvgAdjVsLHP, &t.GamesVsLHP,
			&t.RankVsRHP, &t.AvgAdjVsRHP, &t.GamesVsRHP,
			&t.RankHome, &t.AvgAdjHome, &t.GamesHome,
			&t.RankAway, &t.AvgAdjAway, &t.GamesAway,
			&t.TotalRuns, &t.TotalHits, &t.TotalWalks, &t.TotalStrikeouts, &t.AvgRuns,
		); err != nil {
			return nil, err
		}
		ranked = append(ranked, t)
	}
	return ranked, rows.Err()
}

// IsNotFound reports whether an error means no stored run matched.
func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
