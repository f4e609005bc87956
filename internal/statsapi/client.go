// Package statsapi is the client for the public MLB Stats API. It exposes
// exactly the lookups the ranking pipeline consumes: teams for a season,
// completed regular-season games, boxscores, season pitching totals, and a
// pitcher's throwing hand.
package statsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jmoran/mlbrank/pkg/httputil"
	"github.com/jmoran/mlbrank/pkg/logger"
)

// sportIDMLB filters the /teams endpoint to major-league clubs.
const sportIDMLB = 1

// Client handles communication with the MLB Stats API
// SSOT: Stats API calls happen in this client only
type Client struct {
	httpClient *httputil.Client
	logger     *logger.Logger
	baseURL    string
}

// Team is one club as returned by the teams endpoint.
type Team struct {
	ID           int
	Name         string
	Abbreviation string
	Division     string
}

// CompletedGame is one final regular-season game from a team's schedule,
// hydrated with venue and linescore.
type CompletedGame struct {
	GamePk       int
	Date         string
	HomeTeamID   int
	HomeTeamName string
	AwayTeamID   int
	AwayTeamName string
	VenueID      int
	VenueName    string

	// HasLinescore distinguishes a hydrated 0-0 linescore from a schedule
	// entry that came back without one; only hydrated games may count
	// toward venue scoring totals.
	HasLinescore bool
	HomeRuns     int
	AwayRuns     int
}

// BoxscoreSide is one team's half of a boxscore.
type BoxscoreSide struct {
	Runs       int
	Hits       int
	Walks      int
	Strikeouts int

	PitchingRuns      int
	InningsPitchedRaw string
	StartingPitcherID int // 0 when no pitchers listed
}

// Boxscore is the per-side stat summary for one game.
type Boxscore struct {
	Home BoxscoreSide
	Away BoxscoreSide
}

// Side returns the home or away half.
func (b *Boxscore) Side(home bool) BoxscoreSide {
	if home {
		return b.Home
	}
	return b.Away
}

// PitchingTotals are a team's raw season-aggregate pitching numbers.
type PitchingTotals struct {
	RunsAllowed       int
	InningsPitchedRaw string
}

// NewClient creates a new Stats API client
func NewClient(httpClient *httputil.Client, log *logger.Logger, baseURL string) *Client {
	return &Client{
		httpClient: httpClient,
		logger:     log,
		baseURL:    baseURL,
	}
}

// getJSON fetches a path and decodes the JSON response into out.
func (c *Client) getJSON(ctx context.Context, path string, params url.Values, out interface{}) error {
	fullURL := fmt.Sprintf("%s%s", c.baseURL, path)
	if len(params) > 0 {
		fullURL = fmt.Sprintf("%s?%s", fullURL, params.Encode())
	}

	resp, err := c.httpClient.Get(ctx, fullURL)
	if err != nil {
		return fmt.Errorf("HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

// ListTeams fetches all MLB teams for a season.
func (c *Client) ListTeams(ctx context.Context, season int) ([]Team, error) {
	params := url.Values{}
	params.Set("sportId", fmt.Sprint(sportIDMLB))
	params.Set("season", fmt.Sprint(season))

	var resp teamsResponse
	if err := c.getJSON(ctx, "/teams", params, &resp); err != nil {
		return nil, fmt.Errorf("fetch teams: %w", err)
	}

	teams := make([]Team, 0, len(resp.Teams))
	for _, t := range resp.Teams {
		// The endpoint also returns minor-league affiliates.
		if t.Sport.ID != sportIDMLB {
			continue
		}

		abbr := t.Abbreviation
		if abbr == "" {
			abbr = t.Name
			if len(abbr) > 3 {
				abbr = abbr[:3]
			}
			abbr = strings.ToUpper(abbr)
		}
		division := t.Division.Name
		if division == "" {
			division = "Unknown"
		}

		teams = append(teams, Team{
			ID:           t.ID,
			Name:         t.Name,
			Abbreviation: abbr,
			Division:     division,
		})
	}

	c.logger.WithFields(map[string]interface{}{
		"season": season,
		"teams":  len(teams),
	}).Info("Loaded MLB teams")

	return teams, nil
}

// ListCompletedGames fetches a team's finished regular-season games from
// opening day through today. Games not yet final are dropped.
func (c *Client) ListCompletedGames(ctx context.Context, teamID, season int) ([]CompletedGame, error) {
	params := url.Values{}
	params.Set("sportId", fmt.Sprint(sportIDMLB))
	params.Set("teamId", fmt.Sprint(teamID))
	params.Set("startDate", fmt.Sprintf("%d-03-01", season))
	params.Set("endDate", time.Now().Format("2006-01-02"))
	params.Set("gameType", "R")
	params.Set("hydrate", "linescore,team")

	var resp scheduleResponse
	if err := c.getJSON(ctx, "/schedule", params, &resp); err != nil {
		return nil, fmt.Errorf("fetch schedule for team %d: %w", teamID, err)
	}

	var games []CompletedGame
	for _, date := range resp.Dates {
		for _, g := range date.Games {
			if g.Status.StatusCode != "F" {
				continue
			}

			game := CompletedGame{
				GamePk:       g.GamePk,
				Date:         g.GameDate,
				HomeTeamID:   g.Teams.Home.Team.ID,
				HomeTeamName: g.Teams.Home.Team.Name,
				AwayTeamID:   g.Teams.Away.Team.ID,
				AwayTeamName: g.Teams.Away.Team.Name,
				VenueID:      g.Venue.ID,
				VenueName:    g.Venue.Name,
			}
			if g.Linescore != nil {
				game.HasLinescore = true
				game.HomeRuns = g.Linescore.Teams.Home.Runs
				game.AwayRuns = g.Linescore.Teams.Away.Runs
			}
			games = append(games, game)
		}
	}

	return games, nil
}

// GetBoxscore fetches the per-side stat summary for one game.
func (c *Client) GetBoxscore(ctx context.Context, gamePk int) (*Boxscore, error) {
	var resp boxscoreResponse
	if err := c.getJSON(ctx, fmt.Sprintf("/game/%d/boxscore", gamePk), nil, &resp); err != nil {
		return nil, fmt.Errorf("fetch boxscore for game %d: %w", gamePk, err)
	}

	return &Boxscore{
		Home: mapBoxscoreSide(resp.Teams.Home),
		Away: mapBoxscoreSide(resp.Teams.Away),
	}, nil
}

func mapBoxscoreSide(side boxscoreSide) BoxscoreSide {
	mapped := BoxscoreSide{
		Runs:              side.TeamStats.Batting.Runs,
		Hits:              side.TeamStats.Batting.Hits,
		Walks:             side.TeamStats.Batting.Walks,
		Strikeouts:        side.TeamStats.Batting.Strikeouts,
		PitchingRuns:      side.TeamStats.Pitching.Runs,
		InningsPitchedRaw: side.TeamStats.Pitching.InningsPitched,
	}
	if len(side.Pitchers) > 0 {
		mapped.StartingPitcherID = side.Pitchers[0]
	}
	return mapped
}

// GetPitcherHand fetches a pitcher's throwing hand ("L" or "R"). Any
// failure, including an empty people list, degrades to "Unknown" without an
// error; handedness is a best-effort split axis, not required data.
func (c *Client) GetPitcherHand(ctx context.Context, playerID int) string {
	var resp peopleResponse
	if err := c.getJSON(ctx, fmt.Sprintf("/people/%d", playerID), nil, &resp); err != nil {
		c.logger.WithFields(map[string]interface{}{
			"player_id": playerID,
			"error":     err.Error(),
		}).Debug("Failed to fetch pitcher hand")
		return "Unknown"
	}

	if len(resp.People) == 0 || resp.People[0].PitchHand.Code == "" {
		return "Unknown"
	}

	return resp.People[0].PitchHand.Code
}

// SeasonPitchingTotals fetches a team's season-aggregate pitching stats.
func (c *Client) SeasonPitchingTotals(ctx context.Context, teamID, season int) (PitchingTotals, error) {
	params := url.Values{}
	params.Set("stats", "season")
	params.Set("group", "pitching")
	params.Set("season", fmt.Sprint(season))

	var resp teamStatsResponse
	if err := c.getJSON(ctx, fmt.Sprintf("/teams/%d/stats", teamID), params, &resp); err != nil {
		return PitchingTotals{}, fmt.Errorf("fetch pitching stats for team %d: %w", teamID, err)
	}

	if len(resp.Stats) == 0 || len(resp.Stats[0].Splits) == 0 {
		return PitchingTotals{}, fmt.Errorf("no pitching splits for team %d", teamID)
	}

	stat := resp.Stats[0].Splits[0].Stat
	return PitchingTotals{
		RunsAllowed:       stat.Runs,
		InningsPitchedRaw: stat.InningsPitched,
	}, nil
}
