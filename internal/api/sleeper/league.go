package sleeper

import (
	"context"
	"fmt"

	"github.com/armanpopli/roastbot/internal/models"
)

const (
	TrendingAdd  = "add"
	TrendingDrop = "drop"
)

// API is the typed surface over the gateway client for one league.
type API struct {
	client   *Client
	leagueID string
}

func NewAPI(client *Client, leagueID string) *API {
	return &API{client: client, leagueID: leagueID}
}

func (a *API) LeagueID() string {
	return a.leagueID
}

func (a *API) GetNFLState(ctx context.Context) (*models.NFLState, error) {
	var state models.NFLState
	if err := a.client.Get(ctx, endpointNFLState(), &state); err != nil {
		return nil, fmt.Errorf("fetching NFL state: %w", err)
	}
	return &state, nil
}

func (a *API) GetUser(ctx context.Context, identifier string) (*models.LeagueUser, error) {
	var user models.LeagueUser
	if err := a.client.Get(ctx, endpointUser(identifier), &user); err != nil {
		return nil, fmt.Errorf("fetching user %s: %w", identifier, err)
	}
	return &user, nil
}

func (a *API) GetLeague(ctx context.Context) (*models.League, error) {
	var league models.League
	if err := a.client.Get(ctx, endpointLeague(a.leagueID), &league); err != nil {
		return nil, fmt.Errorf("fetching league: %w", err)
	}
	return &league, nil
}

func (a *API) GetLeagueUsers(ctx context.Context) ([]models.LeagueUser, error) {
	var users []models.LeagueUser
	if err := a.client.Get(ctx, endpointLeagueUsers(a.leagueID), &users); err != nil {
		return nil, fmt.Errorf("fetching league users: %w", err)
	}
	return users, nil
}

func (a *API) GetRosters(ctx context.Context) ([]models.Roster, error) {
	var rosters []models.Roster
	if err := a.client.Get(ctx, endpointLeagueRosters(a.leagueID), &rosters); err != nil {
		return nil, fmt.Errorf("fetching rosters: %w", err)
	}
	return rosters, nil
}

func (a *API) GetMatchups(ctx context.Context, week int) ([]models.Matchup, error) {
	var matchups []models.Matchup
	if err := a.client.Get(ctx, endpointLeagueMatchups(a.leagueID, week), &matchups); err != nil {
		return nil, fmt.Errorf("fetching matchups for week %d: %w", week, err)
	}
	return matchups, nil
}

func (a *API) GetTrending(ctx context.Context, kind string, limit int) ([]models.TrendingEntry, error) {
	var entries []models.TrendingEntry
	if err := a.client.Get(ctx, endpointTrending(kind, limit), &entries); err != nil {
		return nil, fmt.Errorf("fetching trending %ss: %w", kind, err)
	}
	return entries, nil
}

func (a *API) GetDraft(ctx context.Context, draftID string) (*models.Draft, error) {
	var draft models.Draft
	if err := a.client.Get(ctx, endpointDraft(draftID), &draft); err != nil {
		return nil, fmt.Errorf("fetching draft %s: %w", draftID, err)
	}
	return &draft, nil
}

func (a *API) GetDraftPicks(ctx context.Context, draftID string) ([]models.DraftPick, error) {
	var picks []models.DraftPick
	if err := a.client.Get(ctx, endpointDraftPicks(draftID), &picks); err != nil {
		return nil, fmt.Errorf("fetching draft picks %s: %w", draftID, err)
	}
	return picks, nil
}
