package report

import (
	"fmt"
	"math"

	"github.com/armanpopli/roastbot/internal/models"
)

// Deterministic report heuristics. None of these are modeled projections:
// the playoff probability and optimal-lineup numbers are placeholders the
// narrative leans on, not simulations.

// WinPercentage returns wins as a percentage of games played, 0 for a team
// that has not played.
func WinPercentage(wins, losses, ties int) float64 {
	total := wins + losses + ties
	if total == 0 {
		return 0
	}
	return float64(wins) / float64(total) * 100
}

// TeamGrade scores a team 40% on record, 40% on points versus the league
// average, 20% on rank, then maps the score to a letter band.
func TeamGrade(team *models.TeamData, averages *models.LeagueAverages) string {
	score := 0

	totalGames := team.Wins + team.Losses + team.Ties
	if totalGames > 0 {
		winPct := float64(team.Wins) / float64(totalGames)
		switch {
		case winPct >= 0.7:
			score += 40
		case winPct >= 0.5:
			score += 25
		default:
			score += 10
		}
	}

	switch {
	case team.PointsFor >= averages.AvgPointsFor*1.1:
		score += 40
	case team.PointsFor >= averages.AvgPointsFor*0.9:
		score += 25
	default:
		score += 10
	}

	if team.TotalTeams > 0 {
		rankPct := float64(team.LeagueRank) / float64(team.TotalTeams)
		switch {
		case rankPct <= 0.25:
			score += 20
		case rankPct <= 0.5:
			score += 15
		default:
			score += 5
		}
	}

	switch {
	case score >= 85:
		return "A-"
	case score >= 75:
		return "B"
	case score >= 65:
		return "C+"
	case score >= 55:
		return "C"
	case score >= 45:
		return "C-"
	case score >= 35:
		return "D+"
	default:
		return "F"
	}
}

// PlayoffProbability blends win percentage and rank position into a number
// clamped to [5, 95]. A heuristic, not a simulation.
func PlayoffProbability(team *models.TeamData) float64 {
	totalGames := team.Wins + team.Losses + team.Ties
	winPct := 0.0
	if totalGames > 0 {
		winPct = float64(team.Wins) / float64(totalGames)
	}
	rankFactor := 0.0
	if team.TotalTeams > 0 {
		rankFactor = float64(team.TotalTeams-team.LeagueRank) / float64(team.TotalTeams)
	}
	return math.Min(95, math.Max(5, winPct*60+rankFactor*40))
}

// OptimalScore assumes a perfectly set lineup would have scored 15% more.
func OptimalScore(score float64) float64 {
	return score * 1.15
}

func RecordRoast(wins, losses int, winPct float64) string {
	switch {
	case winPct > 70:
		return fmt.Sprintf("Your %d-%d record is actually impressive. Don't let it go to your head.", wins, losses)
	case winPct > 50:
		return fmt.Sprintf("A %d-%d record means you're mediocre, which is probably your ceiling.", wins, losses)
	default:
		return fmt.Sprintf("Your %d-%d record is more disappointing than a soggy sandwich.", wins, losses)
	}
}

func PointsRoast(points, avgPoints float64) string {
	switch {
	case points > avgPoints*1.1:
		return fmt.Sprintf("Your %.2f points is above average, which is shocking given your decision-making.", points)
	case points > avgPoints*0.9:
		return fmt.Sprintf("Your %.2f points is perfectly average, just like everything else about your team.", points)
	default:
		return fmt.Sprintf("Your %.2f points is below average, which honestly isn't surprising.", points)
	}
}

func RankRoast(rank, total int) string {
	switch {
	case rank <= total/4:
		return fmt.Sprintf("Being ranked #%d means you're temporarily fooling people into thinking you know what you're doing.", rank)
	case rank <= total/2:
		return fmt.Sprintf("Ranked #%d, you're the definition of mediocre middle management.", rank)
	default:
		return fmt.Sprintf("Ranked #%d, you're closer to last place than first, which is probably where you belong.", rank)
	}
}

// BestPick is the earliest overall selection.
func BestPick(picks []models.DraftPickView) (models.DraftPickView, bool) {
	if len(picks) == 0 {
		return models.DraftPickView{}, false
	}
	best := picks[0]
	for _, pick := range picks[1:] {
		if pick.PickNo < best.PickNo {
			best = pick
		}
	}
	return best, true
}

// WorstPick is the latest pick inside the first eight rounds; late-round
// fliers are free passes.
func WorstPick(picks []models.DraftPickView) (models.DraftPickView, bool) {
	if len(picks) == 0 {
		return models.DraftPickView{}, false
	}
	var worst models.DraftPickView
	found := false
	for _, pick := range picks {
		if pick.Round > 8 {
			continue
		}
		if !found || pick.Round > worst.Round {
			worst = pick
			found = true
		}
	}
	if !found {
		return picks[0], true
	}
	return worst, true
}

// DraftGrade maps the share of picks spent in the first three rounds to a
// mid-biased letter grade. Deterministic so the same draft always grades the
// same.
func DraftGrade(picks []models.DraftPickView) string {
	if len(picks) == 0 {
		return "F"
	}
	early := 0
	for _, pick := range picks {
		if pick.Round <= 3 {
			early++
		}
	}
	ratio := float64(early) / float64(len(picks))
	switch {
	case ratio >= 0.35:
		return "B+"
	case ratio >= 0.25:
		return "B"
	case ratio >= 0.18:
		return "B-"
	case ratio >= 0.10:
		return "C+"
	default:
		return "C"
	}
}
