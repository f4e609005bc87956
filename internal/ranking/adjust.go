package ranking

// AdjustGames applies the opponent and park adjustments to each game record.
// Both factor tables must be fully computed before this runs; the phase
// boundary is what makes the rest of the pipeline safe to parallelize.
func AdjustGames(games []GameRecord, opponents OpponentFactors, parks ParkFactors) []AdjustedGame {
	adjusted := make([]AdjustedGame, 0, len(games))

	for _, g := range games {
		oppFactor := opponents.Get(g.OpponentID)
		parkFactor := parks.Get(g.VenueID)

		adjusted = append(adjusted, AdjustedGame{
			GameRecord:          g,
			OpponentFactor:      oppFactor,
			ParkFactor:          parkFactor,
			AdjustedScore:       g.GameScore / (oppFactor * parkFactor),
			AdjustedScoreNoPark: g.GameScore / oppFactor,
		})
	}

	return adjusted
}
