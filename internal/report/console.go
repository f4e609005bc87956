package report

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/jmoran/mlbrank/internal/pipeline"
	"github.com/jmoran/mlbrank/internal/ranking"
)

const separator = "======================================================================"

// RenderTable writes the ranked table plus the metric explanation block.
func RenderTable(w io.Writer, result *pipeline.Result) {
	fmt.Fprintln(w, separator)
	fmt.Fprintln(w, "FINAL RANKINGS - Opponent-Adjusted Offensive Quality")
	fmt.Fprintf(w, "Season: %d   Smoothing: %.2f\n", result.Season, result.Smoothing)
	fmt.Fprintln(w, separator)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tTEAM\tABBR\tGP\tADJ\tvLHP(RK)\tvRHP(RK)\tHOME(RK)\tAWAY(RK)\tRAW\tR/G")
	for _, t := range result.Ranked {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%.2f\t%.2f (%s)\t%.2f (%s)\t%.2f (%s)\t%.2f (%s)\t%.2f\t%.2f\n",
			t.Rank, t.TeamName, t.Abbreviation, t.GamesPlayed,
			t.AvgAdjustedScore,
			t.AvgAdjVsLHP, rankLabel(t.RankVsLHP),
			t.AvgAdjVsRHP, rankLabel(t.RankVsRHP),
			t.AvgAdjHome, rankLabel(t.RankHome),
			t.AvgAdjAway, rankLabel(t.RankAway),
			t.AvgGameScore, t.AvgRuns)
	}
	tw.Flush()

	fmt.Fprintln(w)
	fmt.Fprintln(w, separator)
	fmt.Fprintln(w, "METRIC EXPLANATION:")
	fmt.Fprintln(w, separator)
	fmt.Fprintln(w, "Game Score = Runs + (0.5 x Hits) + (0.7 x Walks) - (0.25 x Strikeouts)")
	fmt.Fprintln(w, "Adjusted Score = Game Score / (opponent RA9- factor x park factor)")
	fmt.Fprintf(w, "  - Smoothing factor: %.2f (compresses extreme opponent adjustments)\n", result.Smoothing)
	fmt.Fprintln(w, "  - Handedness splits include park factors; home/away splits exclude")
	fmt.Fprintln(w, "    them so the venue advantage is not adjusted away")
	fmt.Fprintln(w, "  - Split rank '-' means no qualifying games in that split")
	fmt.Fprintln(w, separator)
}

// rankLabel renders the 0 sentinel as "-" instead of a fake rank.
func rankLabel(rank int) string {
	if rank == 0 {
		return "-"
	}
	return fmt.Sprintf("%d", rank)
}

// RenderParkFactors lists every venue's factor, most hitter-friendly first.
func RenderParkFactors(w io.Writer, result *pipeline.Result) {
	type venueFactor struct {
		id     int
		factor float64
	}

	factors := make([]venueFactor, 0, len(result.ParkFactors))
	for id, f := range result.ParkFactors {
		factors = append(factors, venueFactor{id: id, factor: f})
	}
	sort.Slice(factors, func(i, j int) bool {
		if factors[i].factor != factors[j].factor {
			return factors[i].factor > factors[j].factor
		}
		return factors[i].id < factors[j].id
	})

	fmt.Fprintln(w, separator)
	fmt.Fprintf(w, "PARK FACTORS - %d (league avg %.3f runs/game, min %d games)\n",
		result.Season, result.Baseline.AvgRunsPerGame, ranking.MinParkFactorGames)
	fmt.Fprintln(w, separator)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "VENUE\tFACTOR\tGAMES\tRUNS")
	for _, vf := range factors {
		name := result.VenueNames[vf.id]
		if name == "" {
			name = fmt.Sprintf("Venue %d", vf.id)
		}
		stats := result.VenueStats[vf.id]
		fmt.Fprintf(tw, "%s\t%.3f\t%d\t%d\n", name, vf.factor, stats.GameCount, stats.TotalRuns)
	}
	tw.Flush()
}
