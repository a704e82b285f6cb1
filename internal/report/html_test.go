package report

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/armanpopli/roastbot/internal/models"
)

func testRenderer(t *testing.T) *Renderer {
	t.Helper()
	renderer, err := NewRenderer(t.TempDir())
	require.NoError(t, err)
	renderer.now = func() time.Time {
		return time.Date(2025, 11, 12, 8, 30, 0, 0, time.UTC)
	}
	return renderer
}

func TestRenderWritesReportFile(t *testing.T) {
	renderer := testRenderer(t)

	snapshot, err := renderer.renderSection("snapshot", snapshotData{
		TeamName:   "Bad News Bears",
		Record:     "7-5",
		PointsFor:  120.5,
		Rank:       2,
		LeagueAvg:  118.58,
		Grade:      "C",
		Commentary: "A roast goes here.",
	})
	require.NoError(t, err)

	path, err := renderer.Render(PageData{
		TeamName:   "Bad News Bears",
		LeagueName: "Test League",
		Season:     "2025",
		Sections:   []Section{snapshot},
	})
	require.NoError(t, err)

	assert.Equal(t, "roast_Bad_News_Bears_20251112_083000.html", filepath.Base(path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	html := string(content)
	assert.Contains(t, html, "The Roast of Bad News Bears")
	assert.Contains(t, html, "Test League")
	assert.Contains(t, html, "Grade: C")
	assert.Contains(t, html, "A roast goes here.")
}

func TestRenderSectionUnknownName(t *testing.T) {
	renderer := testRenderer(t)
	_, err := renderer.renderSection("nonexistent", nil)
	assert.Error(t, err)
}

func TestRenderSectionEscapesCommentary(t *testing.T) {
	renderer := testRenderer(t)

	section, err := renderer.renderSection("verdict", verdictData{
		Grade:      "B",
		Commentary: "<script>alert(1)</script>",
	})
	require.NoError(t, err)
	assert.NotContains(t, string(section.Content), "<script>")
}

func TestRenderErrorWritesArtifact(t *testing.T) {
	renderer := testRenderer(t)

	path, err := renderer.RenderError("league fetch failed")
	require.NoError(t, err)
	assert.Equal(t, "error_report_20251112_083000.html", filepath.Base(path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "league fetch failed")
	assert.Contains(t, string(content), "Report Generation Error")
}

func TestRenderCreatesOutputDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "reports")
	renderer, err := NewRenderer(dir)
	require.NoError(t, err)

	path, err := renderer.Render(PageData{TeamName: "x"})
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))
}

func TestSourceLinks(t *testing.T) {
	results := []models.SearchResult{{Title: "a"}, {Title: "b"}, {Title: "c"}, {Title: "d"}}
	assert.Len(t, sourceLinks(results, 3), 3)
	assert.Len(t, sourceLinks(results[:2], 3), 2)
	assert.Empty(t, sourceLinks(nil, 3))
}
