package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate(t *testing.T) {
	teams := []Team{
		{ID: 1, Name: "Testville Nine", Abbreviation: "TST", Division: "East"},
		{ID: 2, Name: "No Games FC", Abbreviation: "NGF", Division: "West"},
	}

	gamesByTeam := map[int][]AdjustedGame{
		1: {
			{
				GameRecord: GameRecord{
					TeamID: 1, OpposingHand: HandLeft, IsHome: true,
					Runs: 5, Hits: 8, Walks: 3, Strikeouts: 7, GameScore: 9.35,
				},
				AdjustedScore: 10, AdjustedScoreNoPark: 12,
			},
			{
				GameRecord: GameRecord{
					TeamID: 1, OpposingHand: HandRight, IsHome: false,
					Runs: 2, Hits: 6, Walks: 1, Strikeouts: 10, GameScore: 3.2,
				},
				AdjustedScore: 4, AdjustedScoreNoPark: 5,
			},
			{
				// Unknown hand: counts overall and home/away, not in the
				// handedness splits.
				GameRecord: GameRecord{
					TeamID: 1, OpposingHand: HandUnknown, IsHome: true,
					Runs: 3, Hits: 7, Walks: 2, Strikeouts: 8, GameScore: 5.9,
				},
				AdjustedScore: 6, AdjustedScoreNoPark: 7,
			},
		},
	}

	summaries := Aggregate(teams, gamesByTeam)

	// Teams without games are omitted entirely.
	require.Len(t, summaries, 1)
	s := summaries[0]

	assert.Equal(t, 1, s.TeamID)
	assert.Equal(t, "Testville Nine", s.TeamName)
	assert.Equal(t, 3, s.GamesPlayed)

	assert.InDelta(t, (10.0+4.0+6.0)/3.0, s.AvgAdjustedScore, 1e-9)
	assert.InDelta(t, (9.35+3.2+5.9)/3.0, s.AvgGameScore, 1e-9)

	assert.Equal(t, 1, s.GamesVsLHP)
	assert.Equal(t, 1, s.GamesVsRHP)
	assert.InDelta(t, 10.0, s.AvgAdjVsLHP, 1e-9)
	assert.InDelta(t, 4.0, s.AvgAdjVsRHP, 1e-9)

	// Home/away use the no-park variant.
	assert.Equal(t, 2, s.GamesHome)
	assert.Equal(t, 1, s.GamesAway)
	assert.InDelta(t, (12.0+7.0)/2.0, s.AvgAdjHome, 1e-9)
	assert.InDelta(t, 5.0, s.AvgAdjAway, 1e-9)

	assert.Equal(t, 10, s.TotalRuns)
	assert.Equal(t, 21, s.TotalHits)
	assert.Equal(t, 6, s.TotalWalks)
	assert.Equal(t, 25, s.TotalStrikeouts)
	assert.InDelta(t, 10.0/3.0, s.AvgRuns, 1e-9)
}

func TestAggregateEmptySplits(t *testing.T) {
	teams := []Team{{ID: 1, Name: "Righty Only"}}

	gamesByTeam := map[int][]AdjustedGame{
		1: {
			{
				GameRecord:    GameRecord{TeamID: 1, OpposingHand: HandRight, IsHome: false, GameScore: 5},
				AdjustedScore: 5, AdjustedScoreNoPark: 5,
			},
		},
	}

	summaries := Aggregate(teams, gamesByTeam)
	require.Len(t, summaries, 1)
	s := summaries[0]

	// A split with zero games yields count 0 and average 0, not an error.
	assert.Equal(t, 0, s.GamesVsLHP)
	assert.Zero(t, s.AvgAdjVsLHP)
	assert.Equal(t, 0, s.GamesHome)
	assert.Zero(t, s.AvgAdjHome)
	assert.Equal(t, 1, s.GamesAway)
}
