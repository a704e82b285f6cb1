package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/armanpopli/roastbot/internal/api/sleeper"
	"github.com/armanpopli/roastbot/internal/config"
	"github.com/armanpopli/roastbot/internal/report"
	"github.com/armanpopli/roastbot/internal/search"
	"github.com/armanpopli/roastbot/internal/service"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Error running application", "error", err)
		os.Exit(1)
	}
}

func run() error {
	target := flag.String("target", "", "display name of the user to roast (overrides TARGET_DISPLAY_NAME)")
	listUsers := flag.Bool("list-users", false, "list all users in the league and exit")
	outputDir := flag.String("output-dir", "", "directory to save the report (overrides OUTPUT_DIR)")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file loaded", "error", err)
	}

	cfg, err := config.New()
	if err != nil {
		return err
	}
	if *outputDir != "" {
		cfg.Report.OutputDir = *outputDir
	}

	client := sleeper.NewClient(cfg.Sleeper)
	api := sleeper.NewAPI(client, cfg.Sleeper.LeagueID)
	players := sleeper.NewPlayerDirectory(client)
	fantasyService := service.NewFantasyService(api, players, cfg.Report.MaxWaiverTargets)
	searcher := search.NewClient(cfg.Search)

	renderer, err := report.NewRenderer(cfg.Report.OutputDir)
	if err != nil {
		return err
	}
	driver := report.NewDriver(fantasyService, searcher, renderer, nil, cfg.Sleeper.Season)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *listUsers {
		users, err := driver.ListUsers(ctx)
		if err != nil {
			return err
		}
		for i, user := range users {
			fmt.Printf("%2d. %s (Team: %s)\n", i+1, user.DisplayName, user.TeamName())
		}
		return nil
	}

	displayName := *target
	if displayName == "" {
		displayName = cfg.Report.TargetDisplayName
	}
	if displayName == "" {
		return errors.New("no target user: set TARGET_DISPLAY_NAME or pass -target (use -list-users to see league members)")
	}

	path, err := driver.GenerateReport(ctx, displayName)
	if err != nil {
		return err
	}

	slog.Info("Roast complete", "path", path)
	return nil
}
