package ranking

// DefaultSmoothingFactor is the recommended damping for the opponent
// adjustment. 0 disables smoothing entirely, 1 flattens every opponent to
// league average.
const DefaultSmoothingFactor = 0.3

// Bounds for the opponent adjustment factor. Keeps a single game against a
// historically bad (or dominant) staff from swinging a season average.
const (
	minAdjustmentFactor = 0.5
	maxAdjustmentFactor = 1.5
)

// neutralRA9Minus is the index value of an exactly league-average staff.
const neutralRA9Minus = 100.0

// RA9Minus normalizes a team's runs-allowed rate against the league average.
// 100 is average, below 100 is better-than-average pitching. A team with no
// recorded innings (including a failed stats fetch) rates as exactly
// average rather than dividing by zero. No clamping happens here; extreme
// indexes are legal and get bounded by AdjustmentFactor.
func RA9Minus(totals PitchingTotals, leagueAvgRA9 float64) float64 {
	if totals.InningsPitched == 0 {
		return neutralRA9Minus
	}
	if leagueAvgRA9 == 0 {
		return neutralRA9Minus
	}

	ra9 := float64(totals.RunsAllowed) / totals.InningsPitched * 9
	return ra9 / leagueAvgRA9 * 100
}

// AdjustmentFactor converts an RA9- index into the multiplicative divisor
// applied to raw game scores. smoothing compresses the index's deviation
// from 100 before conversion, so extreme staffs adjust scores less
// dramatically:
//
//	RA9- = 70, s=0.3:  deviation -30 -> smoothed 79 -> factor 0.79
//	RA9- = 130, s=0.3: deviation +30 -> smoothed 121 -> factor 1.21
//
// The result is clamped to [0.5, 1.5] in every case, including smoothing=0.
// The model has always clamped the unsmoothed branch too, so callers relying
// on raw factors below 0.5 or above 1.5 do not exist; keep it that way.
func AdjustmentFactor(ra9Minus, smoothing float64) float64 {
	var factor float64
	if smoothing == 0 {
		factor = ra9Minus / 100.0
	} else {
		deviation := ra9Minus - neutralRA9Minus
		smoothed := neutralRA9Minus + deviation*(1-smoothing)
		factor = smoothed / 100.0
	}

	if factor < minAdjustmentFactor {
		factor = minAdjustmentFactor
	}
	if factor > maxAdjustmentFactor {
		factor = maxAdjustmentFactor
	}

	return factor
}

// OpponentFactors precomputes the smoothed adjustment factor for every
// team's pitching staff. Looking up a team that is missing from the map
// must go through Get, which falls back to neutral.
type OpponentFactors map[int]float64

// ComputeOpponentFactors derives per-team adjustment factors from season
// pitching totals and the league baseline.
func ComputeOpponentFactors(pitching map[int]PitchingTotals, baseline LeagueBaseline, smoothing float64) OpponentFactors {
	factors := make(OpponentFactors, len(pitching))
	for teamID, totals := range pitching {
		factors[teamID] = AdjustmentFactor(RA9Minus(totals, baseline.AvgRA9), smoothing)
	}
	return factors
}

// Get returns the adjustment factor for a team, neutral (1.0) when the team
// has no computed factor.
func (f OpponentFactors) Get(teamID int) float64 {
	if factor, ok := f[teamID]; ok {
		return factor
	}
	return 1.0
}
