// Package report renders a ranking run for people and files: the CSV export
// and the console table.
package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jmoran/mlbrank/internal/pipeline"
	"github.com/jmoran/mlbrank/internal/ranking"
)

// csvHeader is the exported column set, in display order.
var csvHeader = []string{
	"rank", "team_name", "abbreviation", "games_played",
	"avg_adjusted_score",
	"rank_vs_lhp", "avg_adj_vs_lhp", "games_vs_lhp",
	"rank_vs_rhp", "avg_adj_vs_rhp", "games_vs_rhp",
	"rank_home", "avg_adj_home", "games_home",
	"rank_away", "avg_adj_away", "games_away",
	"avg_game_score", "avg_runs",
	"total_runs", "total_hits", "total_walks", "total_strikeouts",
}

// WriteCSV writes the ranked table to
// <dir>/mlb_offensive_rankings_<season>_<timestamp>.csv and returns the
// path. The directory is created if needed.
func WriteCSV(result *pipeline.Result, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	filename := fmt.Sprintf("mlb_offensive_rankings_%d_%s.csv",
		result.Season, result.GeneratedAt.Format("20060102_150405"))
	path := filepath.Join(dir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return "", fmt.Errorf("write csv header: %w", err)
	}

	for _, team := range result.Ranked {
		if err := w.Write(csvRow(team)); err != nil {
			return "", fmt.Errorf("write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flush csv: %w", err)
	}

	return path, nil
}

func csvRow(t ranking.RankedTeam) []string {
	return []string{
		strconv.Itoa(t.Rank),
		t.TeamName,
		t.Abbreviation,
		strconv.Itoa(t.GamesPlayed),
		formatFloat(t.AvgAdjustedScore),
		strconv.Itoa(t.RankVsLHP),
		formatFloat(t.AvgAdjVsLHP),
		strconv.Itoa(t.GamesVsLHP),
		strconv.Itoa(t.RankVsRHP),
		formatFloat(t.AvgAdjVsRHP),
		strconv.Itoa(t.GamesVsRHP),
		strconv.Itoa(t.RankHome),
		formatFloat(t.AvgAdjHome),
		strconv.Itoa(t.GamesHome),
		strconv.Itoa(t.RankAway),
		formatFloat(t.AvgAdjAway),
		strconv.Itoa(t.GamesAway),
		formatFloat(t.AvgGameScore),
		formatFloat(t.AvgRuns),
		strconv.Itoa(t.TotalRuns),
		strconv.Itoa(t.TotalHits),
		strconv.Itoa(t.TotalWalks),
		strconv.Itoa(t.TotalStrikeouts),
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}
