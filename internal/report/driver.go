package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/armanpopli/roastbot/internal/models"
	"github.com/armanpopli/roastbot/internal/search"
	"github.com/armanpopli/roastbot/internal/service"
)

// Narrator supplies roast commentary for a report section; the production
// implementation is an external LLM agent reached over MCP. A nil Narrator,
// or one that fails, falls back to the built-in lines so report generation
// never depends on the agent being up.
type Narrator interface {
	Commentary(ctx context.Context, section string, facts map[string]any) (string, error)
}

// Driver orchestrates a full report run: resolvers feed sections, sections
// feed the renderer. A failed section is logged and omitted; the run
// proceeds with partial data.
type Driver struct {
	service  *service.FantasyService
	search   *search.Client
	renderer *Renderer
	narrator Narrator
	season   string
}

func NewDriver(svc *service.FantasyService, searcher *search.Client, renderer *Renderer, narrator Narrator, season string) *Driver {
	return &Driver{
		service:  svc,
		search:   searcher,
		renderer: renderer,
		narrator: narrator,
		season:   season,
	}
}

func (d *Driver) commentary(ctx context.Context, section, canned string, facts map[string]any) string {
	if d.narrator == nil {
		return canned
	}
	text, err := d.narrator.Commentary(ctx, section, facts)
	if err != nil || text == "" {
		slog.Warn("Narrator failed, using built-in commentary", "section", section, "error", err)
		return canned
	}
	return text
}

// GenerateReport builds and writes the roast report for a display name,
// returning the output file path. NFL state and league info are hard
// requirements; every section after that degrades independently.
func (d *Driver) GenerateReport(ctx context.Context, displayName string) (string, error) {
	log := slog.With("run_id", uuid.NewString(), "target", displayName)
	log.Info("Generating roast report")

	state, err := d.service.GetNFLState(ctx)
	if err != nil {
		return d.failRun(log, fmt.Errorf("fetching NFL state: %w", err))
	}
	info, err := d.service.GetLeagueInfo(ctx)
	if err != nil {
		return d.failRun(log, fmt.Errorf("fetching league info: %w", err))
	}

	team, err := d.service.GetTeamData(ctx, displayName)
	if err != nil {
		return d.failRun(log, fmt.Errorf("resolving team %q: %w", displayName, err))
	}
	averages, err := d.service.GetLeagueAverages(ctx)
	if err != nil {
		return d.failRun(log, fmt.Errorf("computing league averages: %w", err))
	}

	var sections []Section
	add := func(name string, section Section, err error) {
		if err != nil {
			log.Warn("Skipping report section", "section", name, "error", err)
			return
		}
		sections = append(sections, section)
	}

	snapshot, err := d.buildSnapshot(ctx, team, averages)
	add("snapshot", snapshot, err)

	if info.League.DraftID != "" {
		comparison, err := d.service.CompareDraftToCurrent(ctx, displayName)
		if err != nil {
			log.Warn("Skipping report section", "section", "draft", "error", err)
		} else {
			section, err := d.buildDraft(ctx, comparison)
			add("draft", section, err)
		}
	}

	if state.Week > 1 {
		recap, err := d.buildRecap(ctx, team, state.Week-1)
		if err != nil && errors.Is(err, service.ErrNoMatchup) {
			log.Info("No matchup last week, skipping recap", "week", state.Week-1)
		} else {
			add("recap", recap, err)
		}
	}

	preview, err := d.buildPreview(ctx, displayName, state.Week)
	add("preview", preview, err)

	recommendations, err := d.buildRecommendations(ctx, team, state.Week)
	add("recommendations", recommendations, err)

	prognosis, err := d.buildPrognosis(ctx, team)
	add("prognosis", prognosis, err)

	verdict, err := d.buildVerdict(ctx, team, averages)
	add("verdict", verdict, err)

	path, err := d.renderer.Render(PageData{
		TeamName:   team.User.TeamName(),
		LeagueName: info.League.Name,
		Season:     info.League.Season,
		Sections:   sections,
	})
	if err != nil {
		return d.failRun(log, err)
	}

	log.Info("Report saved", "path", path, "sections", len(sections))
	return path, nil
}

// failRun writes an error page so the run always leaves an artifact, then
// reports the original failure.
func (d *Driver) failRun(log *slog.Logger, cause error) (string, error) {
	log.Error("Report generation failed", "error", cause)
	path, renderErr := d.renderer.RenderError(cause.Error())
	if renderErr != nil {
		log.Error("Failed to write error report", "error", renderErr)
		return "", cause
	}
	return path, cause
}

// ListUsers is the -list-users helper: every league member with their team
// name.
func (d *Driver) ListUsers(ctx context.Context) ([]models.LeagueUser, error) {
	info, err := d.service.GetLeagueInfo(ctx)
	if err != nil {
		return nil, err
	}
	return info.Users, nil
}
