package ranking

import (
	"strconv"
	"strings"
)

// Linear weights for the game score. Fixed by the model, not configurable.
const (
	WeightRuns       = 1.0
	WeightHits       = 0.5
	WeightWalks      = 0.7
	WeightStrikeouts = -0.25
)

// GameScore computes the linear-weight offensive score for one game.
// It may be negative when strikeouts dominate.
func GameScore(runs, hits, walks, strikeouts int) float64 {
	return WeightRuns*float64(runs) +
		WeightHits*float64(hits) +
		WeightWalks*float64(walks) +
		WeightStrikeouts*float64(strikeouts)
}

// ParseInnings converts a boxscore innings-pitched string like "145.1" to a
// real number of innings. The fractional digit counts thirds of an inning
// (.1 = 1/3, .2 = 2/3), not decimal tenths. Any fractional digit is taken at
// face value divided by three, so "6.4" parses as 7.333 rather than being
// rejected; that matches how the metric has always been computed and is kept
// as-is. Unparseable input yields 0.
func ParseInnings(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}

	whole, frac, found := strings.Cut(raw, ".")
	if !found {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0
		}
		return v
	}

	w, err := strconv.Atoi(whole)
	if err != nil {
		return 0
	}
	f, err := strconv.Atoi(frac)
	if err != nil {
		return 0
	}

	return float64(w) + float64(f)/3.0
}
