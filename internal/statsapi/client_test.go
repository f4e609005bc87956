package statsapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jmoran/mlbrank/pkg/config"
	"github.com/jmoran/mlbrank/pkg/httputil"
	"github.com/jmoran/mlbrank/pkg/logger"
)

func testClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	log := logger.New(&config.Config{Env: "development", LogLevel: "error", LogFormat: "json"})
	hc := httputil.New(log, 5*time.Second).DisableRetry()

	return NewClient(hc, log, srv.URL), srv
}

func TestListTeams(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/teams" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("sportId"); got != "1" {
			t.Errorf("sportId = %s, want 1", got)
		}
		if got := r.URL.Query().Get("season"); got != "2025" {
			t.Errorf("season = %s, want 2025", got)
		}
		w.Write([]byte(`{"teams":[
			{"id":141,"name":"Toronto Blue Jays","abbreviation":"TOR","division":{"name":"American League East"},"sport":{"id":1}},
			{"id":402,"name":"Buffalo Bisons","abbreviation":"BUF","division":{"name":"International League"},"sport":{"id":11}},
			{"id":137,"name":"San Francisco Giants","division":{},"sport":{"id":1}},
			{"id":990,"name":"AZ","division":{},"sport":{"id":1}}
		]}`))
	}))

	teams, err := client.ListTeams(context.Background(), 2025)
	if err != nil {
		t.Fatalf("ListTeams() error = %v", err)
	}

	// Minor-league affiliates are filtered out.
	if len(teams) != 3 {
		t.Fatalf("got %d teams, want 3", len(teams))
	}
	if teams[0].ID != 141 || teams[0].Abbreviation != "TOR" {
		t.Errorf("unexpected first team: %+v", teams[0])
	}
	// Missing abbreviation and division fall back.
	if teams[1].Abbreviation != "SAN" {
		t.Errorf("fallback abbreviation = %q, want %q", teams[1].Abbreviation, "SAN")
	}
	if teams[1].Division != "Unknown" {
		t.Errorf("fallback division = %q, want Unknown", teams[1].Division)
	}
	// Names shorter than the three-letter cut keep the whole name.
	if teams[2].Abbreviation != "AZ" {
		t.Errorf("short-name abbreviation = %q, want %q", teams[2].Abbreviation, "AZ")
	}
}

func TestListCompletedGames(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("gameType"); got != "R" {
			t.Errorf("gameType = %s, want R", got)
		}
		w.Write([]byte(`{"dates":[{"games":[
			{"gamePk":1001,"gameDate":"2025-04-01T23:07:00Z",
			 "status":{"statusCode":"F"},
			 "teams":{"home":{"team":{"id":141,"name":"Toronto Blue Jays"}},
			          "away":{"team":{"id":147,"name":"New York Yankees"}}},
			 "venue":{"id":14,"name":"Rogers Centre"},
			 "linescore":{"teams":{"home":{"runs":5},"away":{"runs":3}}}},
			{"gamePk":1002,"gameDate":"2025-04-02T23:07:00Z",
			 "status":{"statusCode":"S"},
			 "teams":{"home":{"team":{"id":141}},"away":{"team":{"id":147}}},
			 "venue":{"id":14,"name":"Rogers Centre"}},
			{"gamePk":1003,"gameDate":"2025-04-03T23:07:00Z",
			 "status":{"statusCode":"F"},
			 "teams":{"home":{"team":{"id":141}},"away":{"team":{"id":147}}},
			 "venue":{"id":14,"name":"Rogers Centre"}}
		]}]}`))
	}))

	games, err := client.ListCompletedGames(context.Background(), 141, 2025)
	if err != nil {
		t.Fatalf("ListCompletedGames() error = %v", err)
	}

	// Only the final games survive.
	if len(games) != 2 {
		t.Fatalf("got %d games, want 2", len(games))
	}
	g := games[0]
	if g.GamePk != 1001 || g.HomeTeamID != 141 || g.AwayTeamID != 147 {
		t.Errorf("unexpected game: %+v", g)
	}
	if g.VenueID != 14 || !g.HasLinescore || g.HomeRuns != 5 || g.AwayRuns != 3 {
		t.Errorf("unexpected venue/linescore: %+v", g)
	}
	// A final game without a hydrated linescore is kept but flagged.
	if games[1].GamePk != 1003 || games[1].HasLinescore {
		t.Errorf("unexpected bare game: %+v", games[1])
	}
}

func TestGetBoxscore(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/game/1001/boxscore" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"teams":{
			"home":{"teamStats":{"batting":{"runs":5,"hits":8,"baseOnBalls":3,"strikeOuts":7},
			                     "pitching":{"runs":3,"inningsPitched":"9.0"}},
			        "pitchers":[543243,607192]},
			"away":{"teamStats":{"batting":{"runs":3,"hits":6,"baseOnBalls":2,"strikeOuts":11},
			                     "pitching":{"runs":5,"inningsPitched":"8.0"}},
			        "pitchers":[]}
		}}`))
	}))

	box, err := client.GetBoxscore(context.Background(), 1001)
	if err != nil {
		t.Fatalf("GetBoxscore() error = %v", err)
	}

	home := box.Side(true)
	if home.Runs != 5 || home.Hits != 8 || home.Walks != 3 || home.Strikeouts != 7 {
		t.Errorf("unexpected home batting: %+v", home)
	}
	if home.StartingPitcherID != 543243 {
		t.Errorf("StartingPitcherID = %d, want 543243", home.StartingPitcherID)
	}

	away := box.Side(false)
	if away.InningsPitchedRaw != "8.0" {
		t.Errorf("InningsPitchedRaw = %q, want 8.0", away.InningsPitchedRaw)
	}
	// Empty pitchers list leaves the starter unknown.
	if away.StartingPitcherID != 0 {
		t.Errorf("StartingPitcherID = %d, want 0", away.StartingPitcherID)
	}
}

func TestGetPitcherHand(t *testing.T) {
	tests := []struct {
		name string
		body string
		code int
		want string
	}{
		{"left-hander", `{"people":[{"pitchHand":{"code":"L"}}]}`, 200, "L"},
		{"right-hander", `{"people":[{"pitchHand":{"code":"R"}}]}`, 200, "R"},
		{"empty people", `{"people":[]}`, 200, "Unknown"},
		{"missing hand", `{"people":[{}]}`, 200, "Unknown"},
		{"server error", `boom`, 500, "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.code)
				w.Write([]byte(tt.body))
			}))

			if got := client.GetPitcherHand(context.Background(), 543243); got != tt.want {
				t.Errorf("GetPitcherHand() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSeasonPitchingTotals(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/teams/141/stats" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"stats":[{"splits":[{"stat":{"runs":612,"inningsPitched":"1441.2"}}]}]}`))
	}))

	totals, err := client.SeasonPitchingTotals(context.Background(), 141, 2025)
	if err != nil {
		t.Fatalf("SeasonPitchingTotals() error = %v", err)
	}
	if totals.RunsAllowed != 612 || totals.InningsPitchedRaw != "1441.2" {
		t.Errorf("unexpected totals: %+v", totals)
	}
}

func TestSeasonPitchingTotalsNoSplits(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"stats":[]}`))
	}))

	if _, err := client.SeasonPitchingTotals(context.Background(), 141, 2025); err == nil {
		t.Error("expected error for empty stats, got nil")
	}
}
