// roastbot-mcp exposes the league resolvers and web-search tools over the
// Model Context Protocol so the narrative agent can call them directly.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/armanpopli/roastbot/internal/api/sleeper"
	"github.com/armanpopli/roastbot/internal/config"
	"github.com/armanpopli/roastbot/internal/search"
	"github.com/armanpopli/roastbot/internal/service"
)

type NoArgs struct{}

type DisplayNameArgs struct {
	DisplayName string `json:"display_name" jsonschema:"League member display name (required)"`
}

type WeekArgs struct {
	Week int `json:"week" jsonschema:"NFL week number (required)"`
}

type DisplayNameWeekArgs struct {
	DisplayName string `json:"display_name" jsonschema:"League member display name (required)"`
	Week        int    `json:"week" jsonschema:"NFL week number (required)"`
}

type DraftArgs struct {
	DraftID string `json:"draft_id" jsonschema:"Sleeper draft id (required)"`
}

type PlayerIDArgs struct {
	PlayerID string `json:"player_id" jsonschema:"Sleeper player id or team defense code (required)"`
}

type PlayerNameArgs struct {
	PlayerName string `json:"player_name" jsonschema:"Player full name (required)"`
}

type TeamNameArgs struct {
	TeamName string `json:"team_name" jsonschema:"Fantasy team name (required)"`
}

type TradeArgs struct {
	PlayerOne string `json:"player_one" jsonschema:"First player in the proposed trade (required)"`
	PlayerTwo string `json:"player_two" jsonschema:"Second player in the proposed trade (required)"`
}

type toolInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func main() {
	if err := run(); err != nil {
		slog.Error("Error running MCP server", "error", err)
		os.Exit(1)
	}
}

func run() error {
	addr := flag.String("addr", ":8080", "HTTP listen address")
	mcpPath := flag.String("path", "/mcp", "HTTP path for MCP endpoint")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file loaded", "error", err)
	}

	cfg, err := config.New()
	if err != nil {
		return err
	}

	client := sleeper.NewClient(cfg.Sleeper)
	api := sleeper.NewAPI(client, cfg.Sleeper.LeagueID)
	players := sleeper.NewPlayerDirectory(client)
	svc := service.NewFantasyService(api, players, cfg.Report.MaxWaiverTargets)
	searcher := search.NewClient(cfg.Search)
	season := cfg.Sleeper.Season

	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "roastbot-mcp",
			Version: "1.0.0",
		},
		nil,
	)

	registry := make([]toolInfo, 0, 16)

	addTool(server, &registry, &mcp.Tool{
		Name:        "nfl_state",
		Description: "Current NFL season state and week",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args NoArgs) (*mcp.CallToolResult, any, error) {
		return toolResult(svc.GetNFLState(ctx))
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "league_info",
		Description: "League settings, status, draft id, and member list",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args NoArgs) (*mcp.CallToolResult, any, error) {
		return toolResult(svc.GetLeagueInfo(ctx))
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "team_data",
		Description: "Roster, record, rank, starters and bench for a member by display name",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args DisplayNameArgs) (*mcp.CallToolResult, any, error) {
		if args.DisplayName == "" {
			return toolError(fmt.Errorf("display_name is required")), nil, nil
		}
		return toolResult(svc.GetTeamData(ctx, args.DisplayName))
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "matchup_data",
		Description: "All matchup records for a week (two records share a matchup id)",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args WeekArgs) (*mcp.CallToolResult, any, error) {
		if args.Week <= 0 {
			return toolError(fmt.Errorf("week is required")), nil, nil
		}
		return toolResult(svc.GetMatchups(ctx, args.Week))
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "trending_players",
		Description: "Most added and most dropped players league-wide",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args NoArgs) (*mcp.CallToolResult, any, error) {
		return toolResult(svc.GetTrendingPlayers(ctx))
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "draft_analysis",
		Description: "Draft metadata and full pick list with player names",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args DraftArgs) (*mcp.CallToolResult, any, error) {
		if args.DraftID == "" {
			return toolError(fmt.Errorf("draft_id is required")), nil, nil
		}
		return toolResult(svc.GetDraftAnalysis(ctx, args.DraftID))
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "league_averages",
		Description: "League-wide per-roster averages for points, wins, and moves",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args NoArgs) (*mcp.CallToolResult, any, error) {
		return toolResult(svc.GetLeagueAverages(ctx))
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "rosters_with_users",
		Description: "League leaderboard: every roster joined to its owner, ranked by points",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args NoArgs) (*mcp.CallToolResult, any, error) {
		return toolResult(svc.RostersWithUsers(ctx))
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "player_details",
		Description: "Detailed player record for a player id or team defense code",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args PlayerIDArgs) (*mcp.CallToolResult, any, error) {
		if args.PlayerID == "" {
			return toolError(fmt.Errorf("player_id is required")), nil, nil
		}
		player, ok := svc.GetPlayerDetails(ctx, args.PlayerID)
		if !ok {
			return toolError(fmt.Errorf("player not found: %s", args.PlayerID)), nil, nil
		}
		return toolResult(player, nil)
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "find_opponent",
		Description: "A team's opponent for a week, with both sides' points and the opponent's identity",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args DisplayNameWeekArgs) (*mcp.CallToolResult, any, error) {
		if args.DisplayName == "" || args.Week <= 0 {
			return toolError(fmt.Errorf("display_name and week are required")), nil, nil
		}
		return toolResult(svc.FindOpponent(ctx, args.DisplayName, args.Week))
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "draft_vs_current",
		Description: "A team's draft picks beside its current roster",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args DisplayNameArgs) (*mcp.CallToolResult, any, error) {
		if args.DisplayName == "" {
			return toolError(fmt.Errorf("display_name is required")), nil, nil
		}
		return toolResult(svc.CompareDraftToCurrent(ctx, args.DisplayName))
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "search_player_news",
		Description: "Recent web news for an NFL player",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args PlayerNameArgs) (*mcp.CallToolResult, any, error) {
		return toolResult(searcher.PlayerNews(ctx, args.PlayerName, season))
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "search_fantasy_trends",
		Description: "Web results for current waiver-wire trends",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args WeekArgs) (*mcp.CallToolResult, any, error) {
		return toolResult(searcher.FantasyTrends(ctx, args.Week, season))
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "search_team_analysis",
		Description: "Web results analyzing a fantasy team's outlook",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args TeamNameArgs) (*mcp.CallToolResult, any, error) {
		if args.TeamName == "" {
			return toolError(fmt.Errorf("team_name is required")), nil, nil
		}
		return toolResult(searcher.TeamAnalysis(ctx, args.TeamName, season))
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "search_trade_analysis",
		Description: "Web results comparing two players' trade value",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args TradeArgs) (*mcp.CallToolResult, any, error) {
		if args.PlayerOne == "" || args.PlayerTwo == "" {
			return toolError(fmt.Errorf("player_one and player_two are required")), nil, nil
		}
		return toolResult(searcher.TradeAnalysis(ctx, args.PlayerOne, args.PlayerTwo, season))
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "search_injury_reports",
		Description: "Web results for current NFL injury reports",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args WeekArgs) (*mcp.CallToolResult, any, error) {
		return toolResult(searcher.InjuryReports(ctx, args.Week, season))
	})

	handler := mcp.NewStreamableHTTPHandler(func(r *http.Request) *mcp.Server {
		return server
	}, nil)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Get("/tools", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(registry)
	})
	router.Handle(*mcpPath, handler)

	slog.Info("Starting MCP server", "addr", *addr, "path", *mcpPath, "tools", len(registry))
	return http.ListenAndServe(*addr, router)
}

func addTool[T any](server *mcp.Server, registry *[]toolInfo, tool *mcp.Tool, handler func(context.Context, *mcp.CallToolRequest, T) (*mcp.CallToolResult, any, error)) {
	*registry = append(*registry, toolInfo{Name: tool.Name, Description: tool.Description})
	mcp.AddTool(server, tool, handler)
}

// toolResult marshals a resolver result, turning resolver errors into tool
// errors rather than protocol errors.
func toolResult(v any, err error) (*mcp.CallToolResult, any, error) {
	if err != nil {
		return toolError(err), nil, nil
	}
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return toolError(err), nil, nil
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(out)},
		},
	}, nil, nil
}

func toolError(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf("error: %v", err)},
		},
	}
}
