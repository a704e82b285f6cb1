package report

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/armanpopli/roastbot/internal/models"
)

//go:embed template.html
var reportTemplate string

type Section struct {
	Content template.HTML
}

type PageData struct {
	TeamName   string
	LeagueName string
	Season     string
	Timestamp  string
	Sections   []Section
}

// Renderer writes finished reports as standalone HTML files into the
// configured output directory.
type Renderer struct {
	tmpl      *template.Template
	outputDir string
	now       func() time.Time
}

func NewRenderer(outputDir string) (*Renderer, error) {
	tmpl, err := template.New("report").Parse(reportTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing report template: %w", err)
	}
	return &Renderer{tmpl: tmpl, outputDir: outputDir, now: time.Now}, nil
}

// renderSection executes one of the named section sub-templates.
func (r *Renderer) renderSection(name string, data any) (Section, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return Section{}, fmt.Errorf("rendering %s section: %w", name, err)
	}
	return Section{Content: template.HTML(buf.String())}, nil
}

// Render writes the report page and returns the output file path, named
// roast_{display_name}_{timestamp}.html.
func (r *Renderer) Render(page PageData) (string, error) {
	if page.Timestamp == "" {
		page.Timestamp = r.now().Format("January 2, 2006 at 3:04 PM")
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, page); err != nil {
		return "", fmt.Errorf("rendering report: %w", err)
	}
	return r.writeFile(fmt.Sprintf("roast_%s_%s.html", sanitizeName(page.TeamName), r.now().Format("20060102_150405")), buf.Bytes())
}

// RenderError writes a minimal error page so a failed run still leaves an
// artifact behind.
func (r *Renderer) RenderError(message string) (string, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "error", struct{ Message string }{Message: message}); err != nil {
		return "", fmt.Errorf("rendering error report: %w", err)
	}
	return r.writeFile(fmt.Sprintf("error_report_%s.html", r.now().Format("20060102_150405")), buf.Bytes())
}

func (r *Renderer) writeFile(name string, content []byte) (string, error) {
	if err := os.MkdirAll(r.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}
	path := filepath.Join(r.outputDir, name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}
	return path, nil
}

func sanitizeName(name string) string {
	return strings.ReplaceAll(name, " ", "_")
}

// sourceLinks trims a search result list for display.
func sourceLinks(results []models.SearchResult, limit int) []models.SearchResult {
	if len(results) > limit {
		return results[:limit]
	}
	return results
}
