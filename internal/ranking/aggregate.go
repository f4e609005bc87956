package ranking

// Aggregate accumulates each team's adjusted games into a season summary.
// Teams with no completed games are omitted. Games against a starter of
// unknown hand count toward the overall average but toward neither
// handedness split; every game lands in exactly one of the home/away splits.
func Aggregate(teams []Team, gamesByTeam map[int][]AdjustedGame) []TeamSeasonSummary {
	summaries := make([]TeamSeasonSummary, 0, len(teams))

	for _, team := range teams {
		games := gamesByTeam[team.ID]
		if len(games) == 0 {
			continue
		}

		var (
			sumGameScore float64
			sumAdjusted  float64
			sumVsLHP     float64
			sumVsRHP     float64
			sumHome      float64
			sumAway      float64
		)

		s := TeamSeasonSummary{
			TeamID:       team.ID,
			TeamName:     team.Name,
			Abbreviation: team.Abbreviation,
			Division:     team.Division,
			GamesPlayed:  len(games),
		}

		for _, g := range games {
			sumGameScore += g.GameScore
			sumAdjusted += g.AdjustedScore

			switch g.OpposingHand {
			case HandLeft:
				sumVsLHP += g.AdjustedScore
				s.GamesVsLHP++
			case HandRight:
				sumVsRHP += g.AdjustedScore
				s.GamesVsRHP++
			}

			if g.IsHome {
				sumHome += g.AdjustedScoreNoPark
				s.GamesHome++
			} else {
				sumAway += g.AdjustedScoreNoPark
				s.GamesAway++
			}

			s.TotalRuns += g.Runs
			s.TotalHits += g.Hits
			s.TotalWalks += g.Walks
			s.TotalStrikeouts += g.Strikeouts
		}

		n := float64(s.GamesPlayed)
		s.AvgGameScore = sumGameScore / n
		s.AvgAdjustedScore = sumAdjusted / n
		s.AvgRuns = float64(s.TotalRuns) / n

		s.AvgAdjVsLHP = safeAverage(sumVsLHP, s.GamesVsLHP)
		s.AvgAdjVsRHP = safeAverage(sumVsRHP, s.GamesVsRHP)
		s.AvgAdjHome = safeAverage(sumHome, s.GamesHome)
		s.AvgAdjAway = safeAverage(sumAway, s.GamesAway)

		summaries = append(summaries, s)
	}

	return summaries
}

// safeAverage returns 0 for an empty split rather than NaN.
func safeAverage(sum float64, count int) float64 {
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}
