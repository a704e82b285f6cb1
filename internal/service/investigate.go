package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/armanpopli/roastbot/internal/models"
)

// rankRosters joins rosters to their owning users and assigns league ranks
// by a stable descending sort on points-for. This is the single source of
// rank in the codebase; ties keep the rosters-endpoint order.
func rankRosters(rosters []models.Roster, users []models.LeagueUser) []models.RosterWithUser {
	byID := make(map[string]*models.LeagueUser, len(users))
	for i := range users {
		byID[users[i].UserID] = &users[i]
	}

	ranked := make([]models.RosterWithUser, 0, len(rosters))
	for _, roster := range rosters {
		ranked = append(ranked, models.RosterWithUser{
			RosterID:       roster.RosterID,
			OwnerID:        roster.OwnerID,
			User:           byID[roster.OwnerID],
			Wins:           roster.Settings.Wins,
			Losses:         roster.Settings.Losses,
			Ties:           roster.Settings.Ties,
			PointsFor:      roster.Settings.PointsFor,
			PointsAgainst:  roster.Settings.PointsAgainst,
			Starters:       roster.Starters,
			Players:        roster.Players,
			WaiverPosition: roster.Settings.WaiverPosition,
			TotalMoves:     roster.Settings.TotalMoves,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].PointsFor > ranked[j].PointsFor
	})
	for i := range ranked {
		ranked[i].LeagueRank = i + 1
	}
	return ranked
}

// RostersWithUsers materializes the league leaderboard: every roster joined
// to its owning user (nil for unclaimed rosters), ordered and ranked by
// points-for.
func (s *FantasyService) RostersWithUsers(ctx context.Context) ([]models.RosterWithUser, error) {
	info, err := s.GetLeagueInfo(ctx)
	if err != nil {
		return nil, err
	}
	rosters, err := s.api.GetRosters(ctx)
	if err != nil {
		return nil, err
	}
	return rankRosters(rosters, info.Users), nil
}

// FindOpponent resolves a team's head-to-head pairing for a week. A team
// with no matchup record (bye, off-season) fails with ErrNoMatchup; a
// matchup id shared by anything other than exactly one other record fails
// with ErrNoOpponent. The opponent's user identity is supplementary: if that
// join cannot complete the result carries a nil OpponentUser instead of an
// error.
func (s *FantasyService) FindOpponent(ctx context.Context, displayName string, week int) (*models.OpponentResult, error) {
	team, err := s.GetTeamData(ctx, displayName)
	if err != nil {
		return nil, err
	}

	matchups, err := s.GetMatchups(ctx, week)
	if err != nil {
		return nil, err
	}

	var self *models.Matchup
	for i := range matchups {
		if matchups[i].RosterID == team.RosterID {
			self = &matchups[i]
			break
		}
	}
	if self == nil || self.MatchupID == nil {
		return nil, fmt.Errorf("roster %d week %d: %w", team.RosterID, week, ErrNoMatchup)
	}

	var opponents []*models.Matchup
	for i := range matchups {
		m := &matchups[i]
		if m.RosterID == self.RosterID || m.MatchupID == nil {
			continue
		}
		if *m.MatchupID == *self.MatchupID {
			opponents = append(opponents, m)
		}
	}
	if len(opponents) != 1 {
		return nil, fmt.Errorf("matchup %d week %d has %d counterparts: %w",
			*self.MatchupID, week, len(opponents), ErrNoOpponent)
	}
	opponent := opponents[0]

	result := &models.OpponentResult{
		Week:      week,
		MatchupID: *self.MatchupID,
		Self: models.MatchupSide{
			RosterID: self.RosterID,
			Points:   self.Points,
			Starters: self.Starters,
		},
		Opponent: models.MatchupSide{
			RosterID: opponent.RosterID,
			Points:   opponent.Points,
			Starters: opponent.Starters,
		},
		Won: self.Points > opponent.Points,
	}

	result.OpponentUser = s.identifyOpponentUser(ctx, opponent.RosterID)
	return result, nil
}

// identifyOpponentUser walks roster_id -> owner_id -> user_id. Any missing
// link yields nil; opponent identity is context, not a hard requirement.
func (s *FantasyService) identifyOpponentUser(ctx context.Context, rosterID int) *models.LeagueUser {
	ranked, err := s.RostersWithUsers(ctx)
	if err != nil {
		slog.Warn("Could not identify opponent user", "roster_id", rosterID, "error", err)
		return nil
	}
	for i := range ranked {
		if ranked[i].RosterID == rosterID {
			return ranked[i].User
		}
	}
	slog.Warn("Opponent roster missing from league rosters", "roster_id", rosterID)
	return nil
}

// CompareDraftToCurrent returns a team's draft picks beside its current
// roster. The two lists are deliberately left unjoined; downstream narrative
// reasons about them together.
func (s *FantasyService) CompareDraftToCurrent(ctx context.Context, displayName string) (*models.DraftComparison, error) {
	team, err := s.GetTeamData(ctx, displayName)
	if err != nil {
		return nil, err
	}

	info, err := s.GetLeagueInfo(ctx)
	if err != nil {
		return nil, err
	}
	if info.League.DraftID == "" {
		return nil, ErrNoDraft
	}

	draft, err := s.GetDraftAnalysis(ctx, info.League.DraftID)
	if err != nil {
		return nil, err
	}

	comparison := &models.DraftComparison{Team: team}
	for _, pick := range draft.Picks {
		if pick.RosterID == team.RosterID {
			comparison.Picks = append(comparison.Picks, pick)
		}
	}
	return comparison, nil
}
