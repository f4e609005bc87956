package ranking

import "testing"

func TestAdjustGames(t *testing.T) {
	opponents := OpponentFactors{
		2: 0.8, // weak staff boosts the score
		3: 1.25,
	}
	parks := ParkFactors{
		10: 1.25, // hitter-friendly park suppresses the score
	}

	games := []GameRecord{
		{GamePk: 1, TeamID: 1, OpponentID: 2, VenueID: 10, GameScore: 10},
		{GamePk: 2, TeamID: 1, OpponentID: 3, VenueID: 99, GameScore: 10}, // unknown venue
		{GamePk: 3, TeamID: 1, OpponentID: 7, VenueID: 10, GameScore: 10}, // unknown opponent
	}

	adjusted := AdjustGames(games, opponents, parks)

	if len(adjusted) != 3 {
		t.Fatalf("got %d adjusted games, want 3", len(adjusted))
	}

	// 10 / (0.8 * 1.25) = 10
	if !almostEqual(adjusted[0].AdjustedScore, 10.0) {
		t.Errorf("game 1 AdjustedScore = %v, want 10.0", adjusted[0].AdjustedScore)
	}
	// 10 / 0.8 = 12.5
	if !almostEqual(adjusted[0].AdjustedScoreNoPark, 12.5) {
		t.Errorf("game 1 AdjustedScoreNoPark = %v, want 12.5", adjusted[0].AdjustedScoreNoPark)
	}

	// Unknown venue: park factor neutral, only opponent applies.
	if !almostEqual(adjusted[1].AdjustedScore, 8.0) {
		t.Errorf("game 2 AdjustedScore = %v, want 8.0", adjusted[1].AdjustedScore)
	}
	if adjusted[1].ParkFactor != 1.0 {
		t.Errorf("game 2 ParkFactor = %v, want 1.0", adjusted[1].ParkFactor)
	}

	// Unknown opponent: opponent factor neutral, only park applies.
	if !almostEqual(adjusted[2].AdjustedScore, 8.0) {
		t.Errorf("game 3 AdjustedScore = %v, want 8.0", adjusted[2].AdjustedScore)
	}
	if adjusted[2].OpponentFactor != 1.0 {
		t.Errorf("game 3 OpponentFactor = %v, want 1.0", adjusted[2].OpponentFactor)
	}
}

// With an exactly average opponent and a neutral park, the adjustment
// pipeline reduces to the identity.
func TestAdjustGamesNeutralIdentity(t *testing.T) {
	opponents := OpponentFactors{2: 1.0}
	parks := ParkFactors{10: 1.0}

	games := []GameRecord{
		{GamePk: 1, TeamID: 1, OpponentID: 2, VenueID: 10, GameScore: 9.35},
	}

	adjusted := AdjustGames(games, opponents, parks)
	if !almostEqual(adjusted[0].AdjustedScore, 9.35) {
		t.Errorf("AdjustedScore = %v, want raw 9.35", adjusted[0].AdjustedScore)
	}
	if !almostEqual(adjusted[0].AdjustedScoreNoPark, 9.35) {
		t.Errorf("AdjustedScoreNoPark = %v, want raw 9.35", adjusted[0].AdjustedScoreNoPark)
	}
}
