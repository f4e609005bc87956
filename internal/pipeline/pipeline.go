// Package pipeline wires the season's data fetch and the ranking math into
// an explicit multi-phase run. Each phase takes the previous phase's output
// as plain values and returns new ones; there is no shared mutable state,
// so the baselines are necessarily final before any per-game adjustment.
package pipeline

import (
	"context"
	"errors"
	"time"

	"github.com/jmoran/mlbrank/internal/ranking"
	"github.com/jmoran/mlbrank/internal/statsapi"
	"github.com/jmoran/mlbrank/pkg/logger"
)

// Sentinel errors for the only fatal conditions: a season with nothing in
// it. Every per-unit fetch failure degrades to a neutral contribution
// instead.
var (
	ErrNoTeams = errors.New("no teams found for season")
	ErrNoGames = errors.New("no completed games found for season")
)

// DataSource is the slice of the stats API the pipeline consumes.
type DataSource interface {
	ListTeams(ctx context.Context, season int) ([]statsapi.Team, error)
	ListCompletedGames(ctx context.Context, teamID, season int) ([]statsapi.CompletedGame, error)
	GetBoxscore(ctx context.Context, gamePk int) (*statsapi.Boxscore, error)
	GetPitcherHand(ctx context.Context, playerID int) string
	SeasonPitchingTotals(ctx context.Context, teamID, season int) (statsapi.PitchingTotals, error)
}

// Result is one complete ranking run.
type Result struct {
	Season      int
	Smoothing   float64
	GeneratedAt time.Time

	Baseline    ranking.LeagueBaseline
	ParkFactors ranking.ParkFactors
	VenueNames  map[int]string
	VenueStats  map[int]ranking.VenueStats
	Ranked      []ranking.RankedTeam
}

// Pipeline runs the full fetch-adjust-rank sequence for one season.
type Pipeline struct {
	source DataSource
	logger *logger.Logger
}

// New creates a pipeline over a data source.
func New(source DataSource, log *logger.Logger) *Pipeline {
	return &Pipeline{source: source, logger: log}
}

// Run executes all phases for a season. Fetching is sequential, one team or
// game at a time.
func (p *Pipeline) Run(ctx context.Context, season int, smoothing float64) (*Result, error) {
	// Phase 1: teams.
	apiTeams, err := p.source.ListTeams(ctx, season)
	if err != nil {
		return nil, err
	}
	if len(apiTeams) == 0 {
		return nil, ErrNoTeams
	}

	teams := make([]ranking.Team, 0, len(apiTeams))
	for _, t := range apiTeams {
		teams = append(teams, ranking.Team{
			ID:           t.ID,
			Name:         t.Name,
			Abbreviation: t.Abbreviation,
			Division:     t.Division,
		})
	}

	// Phase 2: schedules and venue scoring totals. The schedule is fetched
	// once per team and reused for the per-game phase below.
	schedules, venueStats, venueNames := p.collectVenueStats(ctx, teams, season)

	// Phase 3: season pitching totals. A failed fetch becomes a zero-weight
	// record, which later rates as a neutral opponent.
	pitching := make(map[int]ranking.PitchingTotals, len(teams))
	for _, team := range teams {
		totals, err := p.source.SeasonPitchingTotals(ctx, team.ID, season)
		if err != nil {
			p.logger.WithFields(map[string]interface{}{
				"team_id": team.ID,
				"error":   err.Error(),
			}).Warn("Failed to fetch pitching stats, using zero totals")
			pitching[team.ID] = ranking.PitchingTotals{}
			continue
		}
		pitching[team.ID] = ranking.PitchingTotals{
			RunsAllowed:    totals.RunsAllowed,
			InningsPitched: ranking.ParseInnings(totals.InningsPitchedRaw),
		}
	}

	// Phase 4: baselines and factor tables. Nothing after this point
	// mutates them.
	baseline := ranking.ComputeLeagueBaseline(pitching, venueStats)
	parkFactors := ranking.ComputeParkFactors(venueStats, baseline.AvgRunsPerGame)
	opponentFactors := ranking.ComputeOpponentFactors(pitching, baseline, smoothing)

	p.logger.WithFields(map[string]interface{}{
		"league_avg_ra9":       baseline.AvgRA9,
		"league_runs_per_game": baseline.AvgRunsPerGame,
		"venues":               len(parkFactors),
	}).Info("League baselines computed")

	// Phase 5: per-game records from boxscores.
	gamesByTeam := make(map[int][]ranking.AdjustedGame, len(teams))
	for _, team := range teams {
		records := p.collectGameRecords(ctx, team, schedules[team.ID])
		if len(records) == 0 {
			continue
		}
		gamesByTeam[team.ID] = ranking.AdjustGames(records, opponentFactors, parkFactors)
	}

	// Phase 6: aggregate and rank.
	summaries := ranking.Aggregate(teams, gamesByTeam)
	if len(summaries) == 0 {
		return nil, ErrNoGames
	}

	ranked := ranking.RankTeams(summaries)

	p.logger.WithFields(map[string]interface{}{
		"season": season,
		"teams":  len(ranked),
	}).Info("Rankings computed")

	return &Result{
		Season:      season,
		Smoothing:   smoothing,
		GeneratedAt: time.Now(),
		Baseline:    baseline,
		ParkFactors: parkFactors,
		VenueNames:  venueNames,
		VenueStats:  venueStats,
		Ranked:      ranked,
	}, nil
}

// RunParkFactors executes only the phases needed to report park factors:
// teams, schedules, venue totals, and the league scoring baseline. No
// boxscores or pitching stats are fetched.
func (p *Pipeline) RunParkFactors(ctx context.Context, season int) (*Result, error) {
	apiTeams, err := p.source.ListTeams(ctx, season)
	if err != nil {
		return nil, err
	}
	if len(apiTeams) == 0 {
		return nil, ErrNoTeams
	}

	teams := make([]ranking.Team, 0, len(apiTeams))
	for _, t := range apiTeams {
		teams = append(teams, ranking.Team{
			ID:           t.ID,
			Name:         t.Name,
			Abbreviation: t.Abbreviation,
			Division:     t.Division,
		})
	}

	_, venueStats, venueNames := p.collectVenueStats(ctx, teams, season)
	if len(venueStats) == 0 {
		return nil, ErrNoGames
	}

	baseline := ranking.ComputeLeagueBaseline(nil, venueStats)
	parkFactors := ranking.ComputeParkFactors(venueStats, baseline.AvgRunsPerGame)

	return &Result{
		Season:      season,
		GeneratedAt: time.Now(),
		Baseline:    baseline,
		ParkFactors: parkFactors,
		VenueNames:  venueNames,
		VenueStats:  venueStats,
	}, nil
}

// collectVenueStats fetches every team's completed schedule and tallies
// scoring per venue. A game counts toward its venue only on the home team's
// schedule, so the two teams' overlapping schedules never double-count it.
// Games without a hydrated linescore are left out rather than tallied as
// 0-0. A team whose schedule cannot be fetched contributes no games.
func (p *Pipeline) collectVenueStats(ctx context.Context, teams []ranking.Team, season int) (map[int][]statsapi.CompletedGame, map[int]ranking.VenueStats, map[int]string) {
	schedules := make(map[int][]statsapi.CompletedGame, len(teams))
	venueStats := make(map[int]ranking.VenueStats)
	venueNames := make(map[int]string)

	for _, team := range teams {
		games, err := p.source.ListCompletedGames(ctx, team.ID, season)
		if err != nil {
			p.logger.WithFields(map[string]interface{}{
				"team_id": team.ID,
				"error":   err.Error(),
			}).Warn("Failed to fetch schedule, team contributes no games")
			continue
		}
		schedules[team.ID] = games

		for _, g := range games {
			if g.VenueID == 0 || g.HomeTeamID != team.ID || !g.HasLinescore {
				continue
			}
			vs := venueStats[g.VenueID]
			vs.TotalRuns += g.HomeRuns + g.AwayRuns
			vs.GameCount++
			venueStats[g.VenueID] = vs
			venueNames[g.VenueID] = g.VenueName
		}
	}

	return schedules, venueStats, venueNames
}

// collectGameRecords turns one team's schedule into game records with raw
// game scores. A game whose boxscore cannot be fetched is skipped.
func (p *Pipeline) collectGameRecords(ctx context.Context, team ranking.Team, schedule []statsapi.CompletedGame) []ranking.GameRecord {
	records := make([]ranking.GameRecord, 0, len(schedule))

	for _, g := range schedule {
		box, err := p.source.GetBoxscore(ctx, g.GamePk)
		if err != nil {
			p.logger.WithFields(map[string]interface{}{
				"game_pk": g.GamePk,
				"team_id": team.ID,
				"error":   err.Error(),
			}).Warn("Failed to fetch boxscore, skipping game")
			continue
		}

		isHome := g.HomeTeamID == team.ID
		teamSide := box.Side(isHome)
		oppSide := box.Side(!isHome)

		opponentID := g.HomeTeamID
		opponentName := g.HomeTeamName
		if isHome {
			opponentID = g.AwayTeamID
			opponentName = g.AwayTeamName
		}

		hand := ranking.HandUnknown
		if oppSide.StartingPitcherID != 0 {
			hand = ranking.Hand(p.source.GetPitcherHand(ctx, oppSide.StartingPitcherID))
		}

		records = append(records, ranking.GameRecord{
			GamePk:               g.GamePk,
			Date:                 g.Date,
			TeamID:               team.ID,
			OpponentID:           opponentID,
			OpponentName:         opponentName,
			OpposingHand:         hand,
			IsHome:               isHome,
			VenueID:              g.VenueID,
			VenueName:            g.VenueName,
			Runs:                 teamSide.Runs,
			Hits:                 teamSide.Hits,
			Walks:                teamSide.Walks,
			Strikeouts:           teamSide.Strikeouts,
			GameScore:            ranking.GameScore(teamSide.Runs, teamSide.Hits, teamSide.Walks, teamSide.Strikeouts),
			OppRunsAllowed:       oppSide.PitchingRuns,
			OppInningsPitchedRaw: oppSide.InningsPitchedRaw,
		})
	}

	return records
}
