package ranking

// MinParkFactorGames is the minimum sample before a venue gets a real park
// factor; below it the venue stays neutral.
const MinParkFactorGames = 10

// ParkFactors maps venue id to a multiplicative scoring factor, 1.0 being a
// neutral park. Lookups for unknown venues must go through Get.
type ParkFactors map[int]float64

// ComputeParkFactors derives a factor for every venue with enough games:
// runs per game at the venue divided by the league average. Small-sample
// venues default to neutral. Unlike the opponent factor, park factors are
// not clamped.
func ComputeParkFactors(venues map[int]VenueStats, leagueAvgRunsPerGame float64) ParkFactors {
	factors := make(ParkFactors, len(venues))
	for venueID, vs := range venues {
		if vs.GameCount >= MinParkFactorGames && leagueAvgRunsPerGame > 0 {
			runsPerGame := float64(vs.TotalRuns) / float64(vs.GameCount)
			factors[venueID] = runsPerGame / leagueAvgRunsPerGame
		} else {
			factors[venueID] = 1.0
		}
	}
	return factors
}

// Get returns the park factor for a venue, neutral (1.0) when the venue is
// unknown.
func (f ParkFactors) Get(venueID int) float64 {
	if factor, ok := f[venueID]; ok {
		return factor
	}
	return 1.0
}
