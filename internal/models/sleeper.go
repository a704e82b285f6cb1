package models

// Wire types for the Sleeper REST API. Fields the API may omit or null are
// pointers; everything else decodes to its zero value.

type NFLState struct {
	Week            int    `json:"week"`
	Season          string `json:"season"`
	SeasonType      string `json:"season_type"`
	LeagueSeason    string `json:"league_season"`
	SeasonStartDate string `json:"season_start_date"`
}

type League struct {
	LeagueID        string             `json:"league_id"`
	Name            string             `json:"name"`
	Season          string             `json:"season"`
	Status          string             `json:"status"`
	TotalRosters    int                `json:"total_rosters"`
	DraftID         string             `json:"draft_id"`
	RosterPositions []string           `json:"roster_positions"`
	ScoringSettings map[string]float64 `json:"scoring_settings"`
	Settings        map[string]float64 `json:"settings"`
}

type LeagueUser struct {
	UserID      string       `json:"user_id"`
	DisplayName string       `json:"display_name"`
	Avatar      string       `json:"avatar"`
	IsOwner     bool         `json:"is_owner"`
	Metadata    UserMetadata `json:"metadata"`
}

type UserMetadata struct {
	TeamName string `json:"team_name"`
}

// TeamName falls back to the display name when the user never set one.
func (u LeagueUser) TeamName() string {
	if u.Metadata.TeamName != "" {
		return u.Metadata.TeamName
	}
	return u.DisplayName
}

type Roster struct {
	RosterID int            `json:"roster_id"`
	OwnerID  string         `json:"owner_id"` // empty for unclaimed rosters
	LeagueID string         `json:"league_id"`
	Starters []string       `json:"starters"`
	Players  []string       `json:"players"`
	Settings RosterSettings `json:"settings"`
}

type RosterSettings struct {
	Wins           int     `json:"wins"`
	Losses         int     `json:"losses"`
	Ties           int     `json:"ties"`
	PointsFor      float64 `json:"fpts"`
	PointsAgainst  float64 `json:"fpts_against"`
	WaiverPosition int     `json:"waiver_position"`
	TotalMoves     int     `json:"total_moves"`
}

// Matchup is one roster's side of a weekly head-to-head pairing. Two records
// share a MatchupID; it is nil on bye weeks.
type Matchup struct {
	RosterID  int      `json:"roster_id"`
	MatchupID *int     `json:"matchup_id"`
	Points    float64  `json:"points"`
	Starters  []string `json:"starters"`
	Players   []string `json:"players"`
}

type TrendingEntry struct {
	PlayerID string `json:"player_id"`
	Count    int    `json:"count"`
}

type Draft struct {
	DraftID string `json:"draft_id"`
	Status  string `json:"status"`
	Type    string `json:"type"`
	Season  string `json:"season"`
}

type DraftPick struct {
	PickNo    int    `json:"pick_no"`
	Round     int    `json:"round"`
	DraftSlot int    `json:"draft_slot"`
	PlayerID  string `json:"player_id"` // empty for forfeited picks
	PickedBy  string `json:"picked_by"`
	RosterID  int    `json:"roster_id"`
}

type Player struct {
	PlayerID         string   `json:"player_id"`
	FirstName        string   `json:"first_name"`
	LastName         string   `json:"last_name"`
	FullName         string   `json:"full_name"`
	Position         string   `json:"position"`
	Team             string   `json:"team"`
	Age              int      `json:"age"`
	YearsExp         int      `json:"years_exp"`
	College          string   `json:"college"`
	InjuryStatus     string   `json:"injury_status"`
	FantasyPositions []string `json:"fantasy_positions"`
}
