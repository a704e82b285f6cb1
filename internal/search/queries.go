package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/armanpopli/roastbot/internal/models"
)

// Query wrappers for the fantasy-football searches the report pulls in.

// PlayerNews rejects placeholder names ("Player 1234") produced when the
// player table lookup degraded; searching those is pointless.
func (c *Client) PlayerNews(ctx context.Context, playerName, season string) ([]models.SearchResult, error) {
	if playerName == "" || strings.HasPrefix(playerName, "Player ") {
		return nil, fmt.Errorf("invalid player name %q", playerName)
	}
	query := fmt.Sprintf("%s NFL fantasy football news injury status %s", playerName, season)
	return c.Search(ctx, query)
}

func (c *Client) FantasyTrends(ctx context.Context, week int, season string) ([]models.SearchResult, error) {
	query := fmt.Sprintf("fantasy football week %d waiver wire targets %s NFL trending players", week, season)
	return c.Search(ctx, query)
}

// TeamAnalysis uses a tighter cap than the default; team-specific searches
// return mostly noise past the first few hits.
func (c *Client) TeamAnalysis(ctx context.Context, teamName, season string) ([]models.SearchResult, error) {
	query := fmt.Sprintf("%s fantasy football analysis %s NFL season outlook", teamName, season)
	limit := c.maxResults
	if limit > 3 {
		limit = 3
	}
	return c.search(ctx, query, limit)
}

func (c *Client) TradeAnalysis(ctx context.Context, player1, player2, season string) ([]models.SearchResult, error) {
	query := fmt.Sprintf("%s vs %s fantasy football trade analysis value comparison %s", player1, player2, season)
	limit := c.maxResults
	if limit > 3 {
		limit = 3
	}
	return c.search(ctx, query, limit)
}

func (c *Client) InjuryReports(ctx context.Context, week int, season string) ([]models.SearchResult, error) {
	query := fmt.Sprintf("NFL injury report week %d %s fantasy football impact", week, season)
	return c.Search(ctx, query)
}
