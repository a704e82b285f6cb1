package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/armanpopli/roastbot/internal/models"
	"github.com/armanpopli/roastbot/internal/service"
)

type snapshotData struct {
	TeamName   string
	Record     string
	PointsFor  float64
	Rank       int
	LeagueAvg  float64
	Grade      string
	Commentary string
}

type draftData struct {
	DraftSlot  int
	TotalPicks int
	BestPick   string
	BestRound  int
	WorstPick  string
	WorstRound int
	Grade      string
	Commentary string
}

type recapData struct {
	Score      float64
	PointsLeft float64
	OptimalPct float64
	Commentary string
}

type previewData struct {
	Week       int
	VersusLine string
	Commentary string
	Sources    []models.SearchResult
}

type recommendationsData struct {
	Targets    []models.TrendingPlayer
	Drops      []models.NamedPlayer
	Commentary string
	Sources    []models.SearchResult
}

type prognosisData struct {
	Rank        int
	PlayoffProb float64
	Commentary  string
}

type verdictData struct {
	Grade      string
	Commentary string
}

func (d *Driver) buildSnapshot(ctx context.Context, team *models.TeamData, averages *models.LeagueAverages) (Section, error) {
	winPct := WinPercentage(team.Wins, team.Losses, team.Ties)
	teamName := team.User.TeamName()

	canned := fmt.Sprintf("%s %s %s\n\nYour team name %q is almost as disappointing as your performance this season. "+
		"You're currently sitting at #%d out of %d teams, which means you're closer to last place than you'd like to admit. "+
		"But hey, at least you showed up! That's more than we can say for some of your players' performances.",
		RecordRoast(team.Wins, team.Losses, winPct),
		PointsRoast(team.PointsFor, averages.AvgPointsFor),
		RankRoast(team.LeagueRank, team.TotalTeams),
		teamName, team.LeagueRank, team.TotalTeams)

	return d.renderer.renderSection("snapshot", snapshotData{
		TeamName:  teamName,
		Record:    fmt.Sprintf("%d-%d", team.Wins, team.Losses),
		PointsFor: team.PointsFor,
		Rank:      team.LeagueRank,
		LeagueAvg: averages.AvgPointsFor,
		Grade:     TeamGrade(team, averages),
		Commentary: d.commentary(ctx, "snapshot", canned, map[string]any{
			"team": team, "averages": averages,
		}),
	})
}

func (d *Driver) buildDraft(ctx context.Context, comparison *models.DraftComparison) (Section, error) {
	picks := comparison.Picks
	if len(picks) == 0 {
		return Section{}, errors.New("no draft picks found for team")
	}

	best, _ := BestPick(picks)
	worst, _ := WorstPick(picks)
	grade := DraftGrade(picks)

	canned := fmt.Sprintf("Your draft was about as predictable as a bad romantic comedy. You took %s in round %d, "+
		"which was actually smart, probably the only good decision you made all night.\n\n"+
		"But then you went and ruined it by selecting %s in round %d. What were you thinking? "+
		"Were you drafting for 2019? Did someone hack your account?\n\n"+
		"Overall draft grade: %s. You managed to avoid complete disaster, which in fantasy football "+
		"is basically a participation trophy.",
		best.PlayerName, best.Round, worst.PlayerName, worst.Round, grade)

	return d.renderer.renderSection("draft", draftData{
		DraftSlot:  picks[0].DraftSlot,
		TotalPicks: len(picks),
		BestPick:   best.PlayerName,
		BestRound:  best.Round,
		WorstPick:  worst.PlayerName,
		WorstRound: worst.Round,
		Grade:      grade,
		Commentary: d.commentary(ctx, "draft", canned, map[string]any{
			"picks": picks, "best": best, "worst": worst, "grade": grade,
		}),
	})
}

func (d *Driver) buildRecap(ctx context.Context, team *models.TeamData, week int) (Section, error) {
	matchups, err := d.service.GetMatchups(ctx, week)
	if err != nil {
		return Section{}, err
	}

	var score float64
	found := false
	for _, m := range matchups {
		if m.RosterID == team.RosterID {
			score = m.Points
			found = true
			break
		}
	}
	if !found {
		return Section{}, fmt.Errorf("week %d: %w", week, service.ErrNoMatchup)
	}

	optimal := OptimalScore(score)
	pointsLeft := optimal - score
	optimalPct := 0.0
	if optimal > 0 {
		optimalPct = score / optimal * 100
	}

	canned := fmt.Sprintf("Last week you scored %.2f points, which is about as impressive as a participation ribbon. "+
		"You left %.1f points on your bench, which means you basically shot yourself in the foot before the games even started.\n\n"+
		"You achieved %.0f%% of your optimal lineup, which means you're about as efficient as a screen door on a submarine. "+
		"Try checking the injury reports next time!",
		score, pointsLeft, optimalPct)

	return d.renderer.renderSection("recap", recapData{
		Score:      score,
		PointsLeft: pointsLeft,
		OptimalPct: optimalPct,
		Commentary: d.commentary(ctx, "recap", canned, map[string]any{
			"score": score, "week": week,
		}),
	})
}

func (d *Driver) buildPreview(ctx context.Context, displayName string, week int) (Section, error) {
	data := previewData{Week: week}

	opponent, err := d.service.FindOpponent(ctx, displayName, week)
	switch {
	case err == nil:
		opponentName := "an unidentified manager"
		if opponent.OpponentUser != nil {
			opponentName = opponent.OpponentUser.TeamName()
		}
		data.VersusLine = fmt.Sprintf("YOU vs %s", opponentName)
		data.Commentary = d.commentary(ctx, "preview", fmt.Sprintf(
			"This week you're up against %s. Based on your recent performance, you're going to need a miracle, "+
				"three lucky breaks, and your opponent to forget to set their lineup.\n\n"+
				"Key positional battle: your entire team vs basic competency. "+
				"Prediction: you'll probably lose, but at least you'll have fun doing it.",
			opponentName), map[string]any{"opponent": opponent})
	case errors.Is(err, service.ErrNoMatchup):
		data.VersusLine = "YOU vs NOBODY"
		data.Commentary = fmt.Sprintf("No matchup scheduled for week %d. A bye week: the only week your lineup can't lose for you.", week)
	case errors.Is(err, service.ErrNoOpponent):
		data.VersusLine = "YOU vs ???"
		data.Commentary = "The league data couldn't produce an opponent for your matchup. Even the API is avoiding you."
	default:
		return Section{}, err
	}

	if sources, err := d.search.InjuryReports(ctx, week, d.season); err != nil {
		slog.Warn("Injury report search failed", "error", err)
	} else {
		data.Sources = sourceLinks(sources, 3)
	}

	return d.renderer.renderSection("preview", data)
}

func (d *Driver) buildRecommendations(ctx context.Context, team *models.TeamData, week int) (Section, error) {
	trending, err := d.service.GetTrendingPlayers(ctx)
	if err != nil {
		return Section{}, err
	}

	targets := trending.Adds
	if len(targets) > 3 {
		targets = targets[:3]
	}
	drops := team.Bench
	if len(drops) > 2 {
		drops = drops[:2]
	}

	canned := "Your roster needs more help than a reality TV star needs therapy. " +
		"The waiver wire has better options than half your bench.\n\n" +
		"And as for trades? Good luck finding someone desperate enough to want what you're offering. " +
		"Priority #1: stop making terrible decisions. Priority #2: see priority #1."

	data := recommendationsData{
		Targets: targets,
		Drops:   drops,
		Commentary: d.commentary(ctx, "recommendations", canned, map[string]any{
			"trending": trending, "bench": team.Bench,
		}),
	}

	if sources, err := d.search.FantasyTrends(ctx, week, d.season); err != nil {
		slog.Warn("Fantasy trends search failed", "error", err)
	} else {
		data.Sources = sourceLinks(sources, 3)
	}

	return d.renderer.renderSection("recommendations", data)
}

func (d *Driver) buildPrognosis(ctx context.Context, team *models.TeamData) (Section, error) {
	prob := PlayoffProbability(team)

	canned := fmt.Sprintf("Your playoff chances are sitting at %.0f%%, which sounds optimistic until you realize "+
		"that's about the same odds as finding a unicorn in your backyard.\n\n"+
		"Currently ranked #%d out of %d teams, you're in that special zone where you're not good enough to feel "+
		"confident but not bad enough to embrace the tank. Better start practicing your "+
		"\"next year will be different\" speech.",
		prob, team.LeagueRank, team.TotalTeams)

	return d.renderer.renderSection("prognosis", prognosisData{
		Rank:        team.LeagueRank,
		PlayoffProb: prob,
		Commentary: d.commentary(ctx, "prognosis", canned, map[string]any{
			"team": team, "probability": prob,
		}),
	})
}

func (d *Driver) buildVerdict(ctx context.Context, team *models.TeamData, averages *models.LeagueAverages) (Section, error) {
	grade := TeamGrade(team, averages)

	canned := fmt.Sprintf("Final thoughts: your team is a %s, which in fantasy football terms means "+
		"\"participation trophy worthy.\" You've managed to stay relevant through a combination of luck, "+
		"questionable decision-making, and the fact that someone has to finish in the middle of the pack.\n\n"+
		"Bottom line: your team has potential, but so does a lottery ticket. "+
		"The difference is the lottery ticket admits it's a long shot.", grade)

	return d.renderer.renderSection("verdict", verdictData{
		Grade: grade,
		Commentary: d.commentary(ctx, "verdict", canned, map[string]any{
			"team": team, "grade": grade,
		}),
	})
}
