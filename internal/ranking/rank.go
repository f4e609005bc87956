package ranking

import "sort"

// splitMetric describes one independently ranked metric.
type splitMetric struct {
	value func(TeamSeasonSummary) float64
	count func(TeamSeasonSummary) int
}

// rankMetric filters to teams with at least one qualifying game, sorts them
// descending by the metric and assigns dense ranks starting at 1. Ties keep
// encounter order (stable sort, no secondary key). The result maps team id
// to rank; teams missing from the map get the 0 sentinel at merge time.
func rankMetric(summaries []TeamSeasonSummary, m splitMetric) map[int]int {
	qualified := make([]TeamSeasonSummary, 0, len(summaries))
	for _, s := range summaries {
		if m.count(s) > 0 {
			qualified = append(qualified, s)
		}
	}

	sort.SliceStable(qualified, func(i, j int) bool {
		return m.value(qualified[i]) > m.value(qualified[j])
	})

	ranks := make(map[int]int, len(qualified))
	for i, s := range qualified {
		ranks[s.TeamID] = i + 1
	}
	return ranks
}

// RankTeams ranks every summary on five independent metrics - overall
// adjusted score, the two handedness splits and the two home/away splits -
// and merges the rank columns onto each team by id. A team with zero
// qualifying games in a split carries rank 0 for that split. The returned
// slice is ordered by overall rank.
func RankTeams(summaries []TeamSeasonSummary) []RankedTeam {
	overall := rankMetric(summaries, splitMetric{
		value: func(s TeamSeasonSummary) float64 { return s.AvgAdjustedScore },
		count: func(s TeamSeasonSummary) int { return s.GamesPlayed },
	})
	vsLHP := rankMetric(summaries, splitMetric{
		value: func(s TeamSeasonSummary) float64 { return s.AvgAdjVsLHP },
		count: func(s TeamSeasonSummary) int { return s.GamesVsLHP },
	})
	vsRHP := rankMetric(summaries, splitMetric{
		value: func(s TeamSeasonSummary) float64 { return s.AvgAdjVsRHP },
		count: func(s TeamSeasonSummary) int { return s.GamesVsRHP },
	})
	home := rankMetric(summaries, splitMetric{
		value: func(s TeamSeasonSummary) float64 { return s.AvgAdjHome },
		count: func(s TeamSeasonSummary) int { return s.GamesHome },
	})
	away := rankMetric(summaries, splitMetric{
		value: func(s TeamSeasonSummary) float64 { return s.AvgAdjAway },
		count: func(s TeamSeasonSummary) int { return s.GamesAway },
	})

	ranked := make([]RankedTeam, 0, len(summaries))
	for _, s := range summaries {
		ranked = append(ranked, RankedTeam{
			TeamSeasonSummary: s,
			Rank:              overall[s.TeamID],
			RankVsLHP:         vsLHP[s.TeamID],
			RankVsRHP:         vsRHP[s.TeamID],
			RankHome:          home[s.TeamID],
			RankAway:          away[s.TeamID],
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		return ranked[i].Rank < ranked[j].Rank
	})

	return ranked
}
