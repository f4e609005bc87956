// Package ranking implements the opponent- and park-adjusted offensive
// quality model: game scores from linear weights, league baselines, the
// RA9- pitching quality index with its smoothing transform, park factors,
// per-game adjustment, team aggregation and multi-metric ranking.
//
// Everything in this package is pure computation. Fetching the underlying
// season data is the statsapi package's job; wiring the phases together is
// the pipeline package's job.
package ranking

// Hand is a pitcher's throwing hand as reported by the stats API.
type Hand string

const (
	HandLeft    Hand = "L"
	HandRight   Hand = "R"
	HandUnknown Hand = "Unknown"
)

// Team identifies one club for the season.
type Team struct {
	ID           int
	Name         string
	Abbreviation string
	Division     string
}

// PitchingTotals are one team's season-aggregate pitching numbers.
// A team whose stats could not be fetched carries the zero value, which
// contributes zero weight to the league baseline and maps to a neutral RA9-.
type PitchingTotals struct {
	RunsAllowed    int
	InningsPitched float64
}

// VenueStats accumulates scoring at one venue across the season. Each game
// is attributed to its venue exactly once, via the home team's schedule.
type VenueStats struct {
	TotalRuns int
	GameCount int
}

// LeagueBaseline holds the two league-wide averages every adjustment is
// normalized against. Computed once per run, read-only afterwards.
type LeagueBaseline struct {
	AvgRA9         float64 // league runs allowed per 9 innings
	AvgRunsPerGame float64 // league runs per game (both teams)
}

// GameRecord is one completed game as experienced by one team.
type GameRecord struct {
	GamePk       int
	Date         string
	TeamID       int
	OpponentID   int
	OpponentName string
	OpposingHand Hand
	IsHome       bool
	VenueID      int
	VenueName    string

	Runs       int
	Hits       int
	Walks      int
	Strikeouts int
	GameScore  float64

	// Raw context from the boxscore, not used downstream.
	OppRunsAllowed       int
	OppInningsPitchedRaw string
}

// AdjustedGame is a GameRecord with its context adjustments applied.
type AdjustedGame struct {
	GameRecord

	OpponentFactor float64
	ParkFactor     float64

	// AdjustedScore divides the game score by opponent factor and park
	// factor; AdjustedScoreNoPark by the opponent factor only. The no-park
	// variant exists for the home/away splits, where including the park
	// factor would confound the venue effect being measured.
	AdjustedScore       float64
	AdjustedScoreNoPark float64
}

// TeamSeasonSummary aggregates a team's adjusted scores across the season.
type TeamSeasonSummary struct {
	TeamID       int
	TeamName     string
	Abbreviation string
	Division     string

	GamesPlayed      int
	AvgGameScore     float64
	AvgAdjustedScore float64

	// Splits by opposing starter's hand (park factor included).
	GamesVsLHP  int
	GamesVsRHP  int
	AvgAdjVsLHP float64
	AvgAdjVsRHP float64

	// Splits by home/away (park factor excluded).
	GamesHome  int
	GamesAway  int
	AvgAdjHome float64
	AvgAdjAway float64

	TotalRuns       int
	TotalHits       int
	TotalWalks      int
	TotalStrikeouts int
	AvgRuns         float64
}

// RankedTeam is a TeamSeasonSummary with its five independent rank
// positions. A split rank of 0 means the team had no qualifying games in
// that split and was excluded from that ranking.
type RankedTeam struct {
	TeamSeasonSummary

	Rank      int
	RankVsLHP int
	RankVsRHP int
	RankHome  int
	RankAway  int
}
