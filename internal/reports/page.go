// Package reports assembles the dashboard HTML page from chart fragments
// and exports static snapshots of it to storage.
package reports

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"africlimate/internal/charts"
	"africlimate/internal/models"
	"africlimate/internal/views"
)

// DashboardTitle is the page heading, shared by the live page and
// snapshot exports.
const DashboardTitle = "Temperature and CO2 Emission Trends in Africa"

// ChartSection is one chart on the dashboard page: the rendered fragment,
// its markdown blurb converted to HTML and the comments attached to it.
type ChartSection struct {
	Tag      string
	Title    string
	Chart    template.HTML
	Blurb    template.HTML
	Comments []models.CommentRecord
	Err      string // non-empty when this one chart failed; others still render
}

// PageData feeds the dashboard page template.
type PageData struct {
	Title    string
	Regions  []string
	Sections []ChartSection
}

// PageBuilder renders the dashboard page.
type PageBuilder struct {
	markdown goldmark.Markdown
	tmpl     *template.Template
}

// NewPageBuilder creates a page builder with the GFM-flavoured markdown
// renderer the blurbs are written for.
func NewPageBuilder() *PageBuilder {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
		),
	)
	return &PageBuilder{
		markdown: md,
		tmpl:     template.Must(template.New("dashboard").Parse(dashboardTemplate)),
	}
}

// Section builds one chart section. A selection or rendering error becomes
// an inline message so one broken chart never takes down the page.
func (b *PageBuilder) Section(snippet charts.ChartSnippet, comments []models.CommentRecord) ChartSection {
	return ChartSection{
		Tag:      string(snippet.Kind),
		Title:    snippet.Title,
		Chart:    template.HTML(snippet.HTML),
		Blurb:    b.renderBlurb(snippet.Kind),
		Comments: comments,
	}
}

// ErrorSection builds a placeholder section for a chart that failed.
func (b *PageBuilder) ErrorSection(kind views.ChartKind, message string) ChartSection {
	return ChartSection{
		Tag:   string(kind),
		Title: string(kind),
		Blurb: b.renderBlurb(kind),
		Err:   message,
	}
}

// BuildPage renders the complete dashboard page.
func (b *PageBuilder) BuildPage(data PageData) (string, error) {
	var buf bytes.Buffer
	if err := b.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute dashboard template: %w", err)
	}
	return buf.String(), nil
}

func (b *PageBuilder) renderBlurb(kind views.ChartKind) template.HTML {
	source := Blurb(kind)
	if source == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := b.markdown.Convert([]byte(source), &buf); err != nil {
		// A broken blurb is cosmetic; fall back to the raw text.
		return template.HTML(template.HTMLEscapeString(source))
	}
	return template.HTML(buf.String())
}
