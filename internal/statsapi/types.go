package statsapi

// Raw wire types for the MLB Stats API (statsapi.mlb.com/api/v1). Only the
// fields this system reads are declared; the API returns far more.

type teamsResponse struct {
	Teams []apiTeam `json:"teams"`
}

type apiTeam struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Abbreviation string  `json:"abbreviation"`
	Division     apiName `json:"division"`
	Sport        apiID   `json:"sport"`
}

type apiName struct {
	Name string `json:"name"`
}

type apiID struct {
	ID int `json:"id"`
}

type scheduleResponse struct {
	Dates []scheduleDate `json:"dates"`
}

type scheduleDate struct {
	Games []apiGame `json:"games"`
}

type apiGame struct {
	GamePk   int          `json:"gamePk"`
	GameDate string       `json:"gameDate"`
	Status   apiStatus    `json:"status"`
	Teams    apiGameTeams `json:"teams"`
	Venue    apiVenue     `json:"venue"`
	// Present when the schedule is hydrated with linescore.
	Linescore *apiLinescore `json:"linescore"`
}

type apiStatus struct {
	StatusCode string `json:"statusCode"`
}

type apiGameTeams struct {
	Home apiGameSide `json:"home"`
	Away apiGameSide `json:"away"`
}

type apiGameSide struct {
	Team apiTeamRef `json:"team"`
}

type apiTeamRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type apiVenue struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type apiLinescore struct {
	Teams apiLinescoreTeams `json:"teams"`
}

type apiLinescoreTeams struct {
	Home apiLinescoreSide `json:"home"`
	Away apiLinescoreSide `json:"away"`
}

type apiLinescoreSide struct {
	Runs int `json:"runs"`
}

type boxscoreResponse struct {
	Teams boxscoreTeams `json:"teams"`
}

type boxscoreTeams struct {
	Home boxscoreSide `json:"home"`
	Away boxscoreSide `json:"away"`
}

type boxscoreSide struct {
	TeamStats boxscoreTeamStats `json:"teamStats"`
	// Pitcher ids in order of appearance; the first is the starter.
	Pitchers []int `json:"pitchers"`
}

type boxscoreTeamStats struct {
	Batting  boxscoreBatting  `json:"batting"`
	Pitching boxscorePitching `json:"pitching"`
}

type boxscoreBatting struct {
	Runs       int `json:"runs"`
	Hits       int `json:"hits"`
	Walks      int `json:"baseOnBalls"`
	Strikeouts int `json:"strikeOuts"`
}

type boxscorePitching struct {
	Runs           int    `json:"runs"`
	InningsPitched string `json:"inningsPitched"`
}

type peopleResponse struct {
	People []apiPerson `json:"people"`
}

type apiPerson struct {
	PitchHand apiCode `json:"pitchHand"`
}

type apiCode struct {
	Code string `json:"code"`
}

type teamStatsResponse struct {
	Stats []teamStatsGroup `json:"stats"`
}

type teamStatsGroup struct {
	Splits []teamStatsSplit `json:"splits"`
}

type teamStatsSplit struct {
	Stat teamPitchingStat `json:"stat"`
}

type teamPitchingStat struct {
	Runs           int    `json:"runs"`
	InningsPitched string `json:"inningsPitched"`
}
