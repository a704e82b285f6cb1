package sleeper

import "fmt"

func endpointNFLState() string {
	return "/state/nfl"
}

func endpointUser(identifier string) string {
	return fmt.Sprintf("/user/%s", identifier)
}

func endpointLeague(leagueID string) string {
	return fmt.Sprintf("/league/%s", leagueID)
}

func endpointLeagueUsers(leagueID string) string {
	return fmt.Sprintf("/league/%s/users", leagueID)
}

func endpointLeagueRosters(leagueID string) string {
	return fmt.Sprintf("/league/%s/rosters", leagueID)
}

func endpointLeagueMatchups(leagueID string, week int) string {
	return fmt.Sprintf("/league/%s/matchups/%d", leagueID, week)
}

func endpointPlayers() string {
	return "/players/nfl"
}

// kind is "add" or "drop".
func endpointTrending(kind string, limit int) string {
	return fmt.Sprintf("/players/nfl/trending/%s?limit=%d", kind, limit)
}

func endpointDraft(draftID string) string {
	return fmt.Sprintf("/draft/%s", draftID)
}

func endpointDraftPicks(draftID string) string {
	return fmt.Sprintf("/draft/%s/picks", draftID)
}
