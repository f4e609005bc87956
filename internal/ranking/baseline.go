package ranking

// Fallback when a season has no recorded innings or games at all.
// Roughly a modern league scoring environment.
const defaultLeagueAverage = 4.5

// ComputeLeagueBaseline derives the two league-wide baselines from every
// team's pitching totals and every venue's scoring totals. Teams with failed
// fetches are expected to appear as zero-value PitchingTotals; they simply
// contribute no weight.
func ComputeLeagueBaseline(pitching map[int]PitchingTotals, venues map[int]VenueStats) LeagueBaseline {
	var totalRunsAllowed int
	var totalInnings float64
	for _, pt := range pitching {
		totalRunsAllowed += pt.RunsAllowed
		totalInnings += pt.InningsPitched
	}

	avgRA9 := defaultLeagueAverage
	if totalInnings > 0 {
		avgRA9 = float64(totalRunsAllowed) / totalInnings * 9
	}

	var totalRuns, totalGames int
	for _, vs := range venues {
		totalRuns += vs.TotalRuns
		totalGames += vs.GameCount
	}

	avgRunsPerGame := defaultLeagueAverage
	if totalGames > 0 {
		avgRunsPerGame = float64(totalRuns) / float64(totalGames)
	}

	return LeagueBaseline{
		AvgRA9:         avgRA9,
		AvgRunsPerGame: avgRunsPerGame,
	}
}
