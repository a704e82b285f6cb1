package models

// Normalized views produced by the resolvers. All of these are rebuilt on
// every call; nothing here is cached or mutated after construction.

type LeagueInfo struct {
	League League
	Users  []LeagueUser
}

type NamedPlayer struct {
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
}

type TeamData struct {
	User           LeagueUser    `json:"user_info"`
	RosterID       int           `json:"roster_id"`
	Wins           int           `json:"wins"`
	Losses         int           `json:"losses"`
	Ties           int           `json:"ties"`
	PointsFor      float64       `json:"points_for"`
	PointsAgainst  float64       `json:"points_against"`
	LeagueRank     int           `json:"league_rank"`
	TotalTeams     int           `json:"total_teams"`
	Starters       []NamedPlayer `json:"starters"`
	Bench          []NamedPlayer `json:"bench"`
	WaiverPosition int           `json:"waiver_position"`
	TotalMoves     int           `json:"total_moves"`
}

type TrendingPlayer struct {
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
	Count    int    `json:"count"`
}

type TrendingReport struct {
	Adds  []TrendingPlayer `json:"trending_adds"`
	Drops []TrendingPlayer `json:"trending_drops"`
}

type DraftPickView struct {
	PickNo     int    `json:"pick_no"`
	Round      int    `json:"round"`
	DraftSlot  int    `json:"draft_slot"`
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
	PickedBy   string `json:"picked_by"`
	RosterID   int    `json:"roster_id"`
}

type DraftReport struct {
	Draft Draft           `json:"draft_info"`
	Picks []DraftPickView `json:"picks"`
}

type LeagueAverages struct {
	AvgPointsFor     float64 `json:"avg_points_for"`
	AvgPointsAgainst float64 `json:"avg_points_against"`
	AvgWins          float64 `json:"avg_wins"`
	AvgMoves         float64 `json:"avg_moves"`
	TotalTeams       int     `json:"total_teams"`
}

type RosterWithUser struct {
	RosterID       int         `json:"roster_id"`
	OwnerID        string      `json:"owner_id"`
	User           *LeagueUser `json:"user_info"`
	Wins           int         `json:"wins"`
	Losses         int         `json:"losses"`
	Ties           int         `json:"ties"`
	PointsFor      float64     `json:"points_for"`
	PointsAgainst  float64     `json:"points_against"`
	Starters       []string    `json:"starters"`
	Players        []string    `json:"players"`
	WaiverPosition int         `json:"waiver_position"`
	TotalMoves     int         `json:"total_moves"`
	LeagueRank     int         `json:"league_rank"`
}

// MatchupSide is one roster's line in a resolved head-to-head pairing.
type MatchupSide struct {
	RosterID int      `json:"roster_id"`
	Points   float64  `json:"points"`
	Starters []string `json:"starters"`
}

type OpponentResult struct {
	Week         int         `json:"week"`
	MatchupID    int         `json:"matchup_id"`
	Self         MatchupSide `json:"self"`
	Opponent     MatchupSide `json:"opponent"`
	OpponentUser *LeagueUser `json:"opponent_user"` // nil when the join cannot complete
	Won          bool        `json:"won"`
}

// DraftComparison presents a team's draft picks beside its current roster as
// two parallel lists; no pick-to-slot alignment is attempted here.
type DraftComparison struct {
	Team  *TeamData       `json:"team"`
	Picks []DraftPickView `json:"picks"`
}

type SearchResult struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	URL     string `json:"url"`
	Source  string `json:"source"`
}
