package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/armanpopli/roastbot/internal/api/sleeper"
	"github.com/armanpopli/roastbot/internal/models"
)

// FantasyService turns raw Sleeper payloads into the normalized views the
// report and the agent tools consume. Resolvers are independent: a failure
// in one never prevents another from running.
type FantasyService struct {
	api           *sleeper.API
	players       *sleeper.PlayerDirectory
	trendingLimit int
}

func NewFantasyService(api *sleeper.API, players *sleeper.PlayerDirectory, trendingLimit int) *FantasyService {
	return &FantasyService{api: api, players: players, trendingLimit: trendingLimit}
}

func (s *FantasyService) GetNFLState(ctx context.Context) (*models.NFLState, error) {
	return s.api.GetNFLState(ctx)
}

func (s *FantasyService) GetLeagueInfo(ctx context.Context) (*models.LeagueInfo, error) {
	league, err := s.api.GetLeague(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.api.GetLeagueUsers(ctx)
	if err != nil {
		return nil, err
	}
	return &models.LeagueInfo{League: *league, Users: users}, nil
}

// GetTeamData resolves a team by display name: owner match, roster by
// owner_id, starters/bench partition with resolved names, and league rank
// from the canonical points-for ordering.
func (s *FantasyService) GetTeamData(ctx context.Context, displayName string) (*models.TeamData, error) {
	info, err := s.GetLeagueInfo(ctx)
	if err != nil {
		return nil, err
	}

	user, tier := matchUser(info.Users, displayName)
	if user == nil {
		return nil, fmt.Errorf("%q: %w", displayName, ErrUserNotFound)
	}
	if tier != matchExact {
		slog.Info("Resolved display name inexactly", "query", displayName, "matched", user.DisplayName, "tier", tier)
	}

	rosters, err := s.api.GetRosters(ctx)
	if err != nil {
		return nil, err
	}
	ranked := rankRosters(rosters, info.Users)

	var entry *models.RosterWithUser
	for i := range ranked {
		if ranked[i].OwnerID == user.UserID {
			entry = &ranked[i]
			break
		}
	}
	if entry == nil {
		return nil, fmt.Errorf("%q: %w", displayName, ErrRosterNotFound)
	}

	starters := make([]models.NamedPlayer, 0, len(entry.Starters))
	for _, id := range entry.Starters {
		starters = append(starters, models.NamedPlayer{PlayerID: id, Name: s.players.ResolveName(ctx, id)})
	}

	started := make(map[string]bool, len(entry.Starters))
	for _, id := range entry.Starters {
		started[id] = true
	}
	bench := make([]models.NamedPlayer, 0, len(entry.Players))
	for _, id := range entry.Players {
		if started[id] {
			continue
		}
		bench = append(bench, models.NamedPlayer{PlayerID: id, Name: s.players.ResolveName(ctx, id)})
	}

	return &models.TeamData{
		User:           *user,
		RosterID:       entry.RosterID,
		Wins:           entry.Wins,
		Losses:         entry.Losses,
		Ties:           entry.Ties,
		PointsFor:      entry.PointsFor,
		PointsAgainst:  entry.PointsAgainst,
		LeagueRank:     entry.LeagueRank,
		TotalTeams:     len(ranked),
		Starters:       starters,
		Bench:          bench,
		WaiverPosition: entry.WaiverPosition,
		TotalMoves:     entry.TotalMoves,
	}, nil
}

// GetMatchups returns the flat per-roster matchup records for a week; two
// records sharing a matchup id form one pairing.
func (s *FantasyService) GetMatchups(ctx context.Context, week int) ([]models.Matchup, error) {
	return s.api.GetMatchups(ctx, week)
}

func (s *FantasyService) GetTrendingPlayers(ctx context.Context) (*models.TrendingReport, error) {
	adds, err := s.api.GetTrending(ctx, sleeper.TrendingAdd, s.trendingLimit)
	if err != nil {
		return nil, err
	}
	drops, err := s.api.GetTrending(ctx, sleeper.TrendingDrop, s.trendingLimit)
	if err != nil {
		return nil, err
	}

	report := &models.TrendingReport{
		Adds:  make([]models.TrendingPlayer, 0, len(adds)),
		Drops: make([]models.TrendingPlayer, 0, len(drops)),
	}
	for _, entry := range adds {
		report.Adds = append(report.Adds, models.TrendingPlayer{
			PlayerID: entry.PlayerID,
			Name:     s.players.ResolveName(ctx, entry.PlayerID),
			Count:    entry.Count,
		})
	}
	for _, entry := range drops {
		report.Drops = append(report.Drops, models.TrendingPlayer{
			PlayerID: entry.PlayerID,
			Name:     s.players.ResolveName(ctx, entry.PlayerID),
			Count:    entry.Count,
		})
	}
	return report, nil
}

// GetDraftAnalysis fetches draft metadata and the full pick list. Picks
// without a player id (forfeits) are skipped rather than emitted empty.
func (s *FantasyService) GetDraftAnalysis(ctx context.Context, draftID string) (*models.DraftReport, error) {
	if draftID == "" {
		return nil, ErrNoDraft
	}

	draft, err := s.api.GetDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}
	picks, err := s.api.GetDraftPicks(ctx, draftID)
	if err != nil {
		return nil, err
	}

	report := &models.DraftReport{Draft: *draft, Picks: make([]models.DraftPickView, 0, len(picks))}
	for _, pick := range picks {
		if pick.PlayerID == "" {
			continue
		}
		report.Picks = append(report.Picks, models.DraftPickView{
			PickNo:     pick.PickNo,
			Round:      pick.Round,
			DraftSlot:  pick.DraftSlot,
			PlayerID:   pick.PlayerID,
			PlayerName: s.players.ResolveName(ctx, pick.PlayerID),
			PickedBy:   pick.PickedBy,
			RosterID:   pick.RosterID,
		})
	}
	return report, nil
}

// GetLeagueAverages computes per-roster means across the league, rounded to
// two decimals. An empty league yields zeros, never an error.
func (s *FantasyService) GetLeagueAverages(ctx context.Context) (*models.LeagueAverages, error) {
	rosters, err := s.api.GetRosters(ctx)
	if err != nil {
		return nil, err
	}

	averages := &models.LeagueAverages{TotalTeams: len(rosters)}
	if len(rosters) == 0 {
		return averages, nil
	}

	var points, pointsAgainst, wins, moves float64
	for _, roster := range rosters {
		points += roster.Settings.PointsFor
		pointsAgainst += roster.Settings.PointsAgainst
		wins += float64(roster.Settings.Wins)
		moves += float64(roster.Settings.TotalMoves)
	}

	n := float64(len(rosters))
	averages.AvgPointsFor = round2(points / n)
	averages.AvgPointsAgainst = round2(pointsAgainst / n)
	averages.AvgWins = round2(wins / n)
	averages.AvgMoves = round2(moves / n)
	return averages, nil
}

func (s *FantasyService) GetPlayerDetails(ctx context.Context, playerID string) (models.Player, bool) {
	return s.players.ResolveDetails(ctx, playerID)
}

func (s *FantasyService) ResolvePlayerName(ctx context.Context, playerID string) string {
	return s.players.ResolveName(ctx, playerID)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

const (
	matchExact      = "exact"
	matchCaseFold   = "case-insensitive"
	matchFuzzy      = "fuzzy"
	fuzzyMatchFloor = 0.7
)

// matchUser resolves a display name to a league user: exact match first,
// then case-insensitive, then best fuzzy match above the similarity floor.
// Within a tier the first user in API order wins; Sleeper allows duplicate
// display names and gives no tie-break.
func matchUser(users []models.LeagueUser, displayName string) (*models.LeagueUser, string) {
	for i := range users {
		if users[i].DisplayName == displayName {
			return &users[i], matchExact
		}
	}

	for i := range users {
		if strings.EqualFold(users[i].DisplayName, displayName) {
			return &users[i], matchCaseFold
		}
	}

	var best *models.LeagueUser
	bestSimilarity := fuzzyMatchFloor
	for i := range users {
		candidate := strings.ToLower(users[i].DisplayName)
		query := strings.ToLower(displayName)
		distance := fuzzy.LevenshteinDistance(query, candidate)
		maxLen := len(query)
		if len(candidate) > maxLen {
			maxLen = len(candidate)
		}
		if maxLen == 0 {
			continue
		}
		similarity := 1 - float64(distance)/float64(maxLen)
		if similarity > bestSimilarity {
			bestSimilarity = similarity
			best = &users[i]
		}
	}
	if best != nil {
		return best, matchFuzzy
	}
	return nil, ""
}
