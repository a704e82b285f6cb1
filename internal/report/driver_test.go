package report

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/armanpopli/roastbot/internal/api/sleeper"
	"github.com/armanpopli/roastbot/internal/config"
	"github.com/armanpopli/roastbot/internal/models"
	"github.com/armanpopli/roastbot/internal/search"
	"github.com/armanpopli/roastbot/internal/service"
)

func intPtr(v int) *int { return &v }

// driverFixtures is a small but complete league: four teams, a finished
// draft, a played week 4 and a scheduled week 5.
func driverFixtures() map[string]any {
	return map[string]any{
		"/state/nfl": models.NFLState{Week: 5, Season: "2025"},
		"/league/L1": models.League{
			LeagueID: "L1", Name: "Test League", Season: "2025",
			Status: "in_season", TotalRosters: 4, DraftID: "D1",
		},
		"/league/L1/users": []models.LeagueUser{
			{UserID: "u1", DisplayName: "armanpopli", Metadata: models.UserMetadata{TeamName: "Arman's Army"}},
			{UserID: "u2", DisplayName: "bobsmith"},
			{UserID: "u3", DisplayName: "carol"},
			{UserID: "u4", DisplayName: "dave", Metadata: models.UserMetadata{TeamName: "Dave's Dynasty"}},
		},
		"/league/L1/rosters": []models.Roster{
			{
				RosterID: 1, OwnerID: "u1",
				Starters: []string{"4046"},
				Players:  []string{"4046", "1111", "2222"},
				Settings: models.RosterSettings{Wins: 3, Losses: 1, PointsFor: 480.2, PointsAgainst: 410.0, TotalMoves: 6},
			},
			{RosterID: 2, OwnerID: "u2", Settings: models.RosterSettings{Wins: 2, Losses: 2, PointsFor: 440.0}},
			{RosterID: 3, OwnerID: "u3", Settings: models.RosterSettings{Wins: 1, Losses: 3, PointsFor: 400.5}},
			{RosterID: 4, OwnerID: "u4", Settings: models.RosterSettings{Wins: 4, Losses: 0, PointsFor: 520.0}},
		},
		"/players/nfl": map[string]models.Player{
			"4046": {FirstName: "Patrick", LastName: "Mahomes", Position: "QB", Team: "KC"},
			"1111": {FirstName: "Justin", LastName: "Tucker", Position: "K", Team: "BAL"},
			"2222": {FirstName: "Bench", LastName: "Guy"},
		},
		"/league/L1/matchups/4": []models.Matchup{
			{RosterID: 1, MatchupID: intPtr(1), Points: 112.3},
			{RosterID: 2, MatchupID: intPtr(1), Points: 98.0},
		},
		"/league/L1/matchups/5": []models.Matchup{
			{RosterID: 1, MatchupID: intPtr(2), Points: 0},
			{RosterID: 4, MatchupID: intPtr(2), Points: 0},
		},
		"/players/nfl/trending/add": []models.TrendingEntry{
			{PlayerID: "1111", Count: 300},
		},
		"/players/nfl/trending/drop": []models.TrendingEntry{
			{PlayerID: "2222", Count: 150},
		},
		"/draft/D1": models.Draft{DraftID: "D1", Status: "complete"},
		"/draft/D1/picks": []models.DraftPick{
			{PickNo: 1, Round: 1, DraftSlot: 1, PlayerID: "4046", RosterID: 1},
			{PickNo: 8, Round: 2, DraftSlot: 1, PlayerID: "1111", RosterID: 1},
			{PickNo: 17, Round: 5, DraftSlot: 1, PlayerID: "2222", RosterID: 1},
		},
	}
}

// newTestDriver wires a Driver against fake Sleeper and search upstreams.
// Routes missing from the fixtures return 404 so individual sections can be
// made to fail.
func newTestDriver(t *testing.T, fixtures map[string]any, narrator Narrator) (*Driver, string) {
	t.Helper()

	mux := http.NewServeMux()
	for path, fixture := range fixtures {
		fixture := fixture
		mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(fixture)
		})
	}
	sleeperServer := httptest.NewServer(mux)
	t.Cleanup(sleeperServer.Close)

	searchServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"RelatedTopics": [
			{"Text": "Fantasy Week - waiver notes.", "FirstURL": "https://news.test/waivers"}
		]}`))
	}))
	t.Cleanup(searchServer.Close)

	client := sleeper.NewClient(config.SleeperAPI{
		BaseURL:        sleeperServer.URL,
		LeagueID:       "L1",
		Season:         "2025",
		RateLimitDelay: 0,
		Timeout:        time.Second,
	})
	api := sleeper.NewAPI(client, "L1")
	players := sleeper.NewPlayerDirectory(client)
	svc := service.NewFantasyService(api, players, 5)
	searcher := search.NewClient(config.Search{BaseURL: searchServer.URL, MaxResults: 5})

	outputDir := t.TempDir()
	renderer, err := NewRenderer(outputDir)
	require.NoError(t, err)

	return NewDriver(svc, searcher, renderer, narrator, "2025"), outputDir
}

func TestGenerateReport(t *testing.T) {
	driver, _ := newTestDriver(t, driverFixtures(), nil)

	path, err := driver.GenerateReport(context.Background(), "armanpopli")
	require.NoError(t, err)
	assert.Contains(t, path, "roast_Arman's_Army_")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	html := string(content)

	assert.Contains(t, html, "The Roast of Arman&#39;s Army")
	assert.Contains(t, html, "Team Snapshot")
	assert.Contains(t, html, "Draft Analysis")
	assert.Contains(t, html, "Last Week Recap")
	assert.Contains(t, html, "Next Matchup Preview")
	assert.Contains(t, html, "YOU vs Dave&#39;s Dynasty")
	assert.Contains(t, html, "Roster Move Recommendations")
	assert.Contains(t, html, "League Prognosis")
	assert.Contains(t, html, "Final Team Score")
	assert.Contains(t, html, "news.test", "search sources should surface as links")
}

func TestGenerateReportSkipsFailedSections(t *testing.T) {
	fixtures := driverFixtures()
	delete(fixtures, "/players/nfl/trending/add")
	delete(fixtures, "/players/nfl/trending/drop")
	driver, _ := newTestDriver(t, fixtures, nil)

	path, err := driver.GenerateReport(context.Background(), "armanpopli")
	require.NoError(t, err, "a failed section must not fail the run")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	html := string(content)
	assert.NotContains(t, html, "Roster Move Recommendations")
	assert.Contains(t, html, "Team Snapshot")
	assert.Contains(t, html, "Final Team Score")
}

func TestGenerateReportByeWeekPreview(t *testing.T) {
	fixtures := driverFixtures()
	fixtures["/league/L1/matchups/5"] = []models.Matchup{
		{RosterID: 1, MatchupID: nil},
		{RosterID: 2, MatchupID: intPtr(3), Points: 0},
		{RosterID: 3, MatchupID: intPtr(3), Points: 0},
	}
	driver, _ := newTestDriver(t, fixtures, nil)

	path, err := driver.GenerateReport(context.Background(), "armanpopli")
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "YOU vs NOBODY")
}

func TestGenerateReportHardFailureWritesErrorPage(t *testing.T) {
	fixtures := driverFixtures()
	delete(fixtures, "/state/nfl")
	driver, _ := newTestDriver(t, fixtures, nil)

	path, err := driver.GenerateReport(context.Background(), "armanpopli")
	require.Error(t, err)
	require.NotEmpty(t, path, "a failed run still leaves an artifact")
	assert.Contains(t, path, "error_report_")

	content, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Contains(t, string(content), "Report Generation Error")
}

func TestGenerateReportUnknownTarget(t *testing.T) {
	driver, _ := newTestDriver(t, driverFixtures(), nil)

	_, err := driver.GenerateReport(context.Background(), "nobody-by-this-name")
	assert.ErrorIs(t, err, service.ErrUserNotFound)
}

type stubNarrator struct {
	sections []string
}

func (n *stubNarrator) Commentary(ctx context.Context, section string, facts map[string]any) (string, error) {
	n.sections = append(n.sections, section)
	return "Narrated take on " + section + ".", nil
}

func TestGenerateReportUsesNarrator(t *testing.T) {
	narrator := &stubNarrator{}
	driver, _ := newTestDriver(t, driverFixtures(), narrator)

	path, err := driver.GenerateReport(context.Background(), "armanpopli")
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	html := string(content)
	assert.Contains(t, html, "Narrated take on snapshot.")
	assert.Contains(t, html, "Narrated take on verdict.")
	assert.NotContains(t, html, "almost as disappointing", "canned lines should be replaced")
	assert.Contains(t, strings.Join(narrator.sections, ","), "prognosis")
}

func TestListUsers(t *testing.T) {
	driver, _ := newTestDriver(t, driverFixtures(), nil)

	users, err := driver.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 4)
	assert.Equal(t, "Arman's Army", users[0].TeamName())
	assert.Equal(t, "bobsmith", users[1].TeamName(), "display name stands in for a missing team name")
}
