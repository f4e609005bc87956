package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jmoran/mlbrank/internal/pipeline"
	"github.com/jmoran/mlbrank/internal/ranking"
)

func sampleResult() *pipeline.Result {
	return &pipeline.Result{
		Season:      2025,
		Smoothing:   0.3,
		GeneratedAt: time.Date(2025, 8, 31, 12, 0, 0, 0, time.UTC),
		Baseline:    ranking.LeagueBaseline{AvgRA9: 4.5, AvgRunsPerGame: 5.0},
		ParkFactors: ranking.ParkFactors{10: 1.1, 11: 0.9},
		VenueNames:  map[int]string{10: "Hitter Park", 11: "Pitcher Park"},
		VenueStats: map[int]ranking.VenueStats{
			10: {TotalRuns: 110, GameCount: 20},
			11: {TotalRuns: 90, GameCount: 20},
		},
		Ranked: []ranking.RankedTeam{
			{
				TeamSeasonSummary: ranking.TeamSeasonSummary{
					TeamID: 1, TeamName: "Alpha", Abbreviation: "ALP",
					GamesPlayed: 10, AvgAdjustedScore: 8.5, AvgGameScore: 8.0,
					GamesVsLHP: 3, AvgAdjVsLHP: 9.0,
					GamesVsRHP: 7, AvgAdjVsRHP: 8.2,
					GamesHome: 5, AvgAdjHome: 8.8, GamesAway: 5, AvgAdjAway: 8.1,
					TotalRuns: 42, TotalHits: 90, TotalWalks: 30, TotalStrikeouts: 80,
					AvgRuns: 4.2,
				},
				Rank: 1, RankVsLHP: 1, RankVsRHP: 1, RankHome: 1, RankAway: 1,
			},
			{
				TeamSeasonSummary: ranking.TeamSeasonSummary{
					TeamID: 2, TeamName: "Bravo", Abbreviation: "BRV",
					GamesPlayed: 10, AvgAdjustedScore: 6.1, AvgGameScore: 6.4,
					GamesVsRHP: 10, AvgAdjVsRHP: 6.1,
					GamesHome: 5, AvgAdjHome: 6.5, GamesAway: 5, AvgAdjAway: 5.8,
				},
				Rank: 2, RankVsLHP: 0, RankVsRHP: 2, RankHome: 2, RankAway: 2,
			},
		},
	}
}

func TestWriteCSV(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteCSV(sampleResult(), dir)
	if err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	if filepath.Base(path) != "mlb_offensive_rankings_2025_20250831_120000.csv" {
		t.Errorf("unexpected filename %s", filepath.Base(path))
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open written csv: %v", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("parse written csv: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("got %d rows, want header + 2 teams", len(rows))
	}
	if len(rows[0]) != 23 {
		t.Errorf("got %d columns, want 23", len(rows[0]))
	}
	if rows[0][0] != "rank" || rows[0][22] != "total_strikeouts" {
		t.Errorf("unexpected header: %v", rows[0])
	}

	// Rank 1 first; split sentinel renders as literal 0.
	if rows[1][0] != "1" || rows[1][1] != "Alpha" {
		t.Errorf("unexpected first row: %v", rows[1])
	}
	if rows[2][5] != "0" {
		t.Errorf("rank_vs_lhp sentinel = %s, want 0", rows[2][5])
	}
}

func TestWriteCSVCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "results")

	if _, err := WriteCSV(sampleResult(), dir); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("output dir was not created: %v", err)
	}
}

func TestRenderTable(t *testing.T) {
	var sb strings.Builder
	RenderTable(&sb, sampleResult())
	out := sb.String()

	for _, want := range []string{"Alpha", "Bravo", "FINAL RANKINGS", "METRIC EXPLANATION"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q", want)
		}
	}
	// Bravo never faced a lefty: its vLHP rank renders as "-".
	if !strings.Contains(out, "(-)") {
		t.Error("table output missing '-' sentinel for empty split")
	}
}

func TestRenderParkFactors(t *testing.T) {
	var sb strings.Builder
	RenderParkFactors(&sb, sampleResult())
	out := sb.String()

	hitter := strings.Index(out, "Hitter Park")
	pitcher := strings.Index(out, "Pitcher Park")
	if hitter < 0 || pitcher < 0 {
		t.Fatalf("park output missing venues: %s", out)
	}
	if hitter > pitcher {
		t.Error("venues not sorted most hitter-friendly first")
	}
}
