package charts

import (
	"bytes"
	"strings"
	"testing"

	"africlimate/internal/views"
)

func barView(kind views.ChartKind) views.View {
	return views.View{
		Kind:    kind,
		Title:   "Test Chart",
		XLabel:  "Country",
		YLabel:  "Value",
		Columns: []string{"Country", "Value"},
		Rows: [][]any{
			{"Nigeria", 27.1},
			{"Kenya", 24.8},
			{"Algeria", 23.2},
		},
	}
}

func seriesView(kind views.ChartKind) views.View {
	return views.View{
		Kind:    kind,
		Title:   "Test Series",
		XLabel:  "Year",
		YLabel:  "Mean",
		Columns: []string{"Year", "Region", "Mean"},
		Rows: [][]any{
			{1960, "Eastern Africa", 24.5},
			{1960, "Western Africa", 27.0},
			{1961, "Eastern Africa", 24.7},
			{1961, "Western Africa", 27.2},
		},
	}
}

func combinedView() views.View {
	return views.View{
		Kind:    views.KindCombinedRegional,
		Title:   "Combined",
		XLabel:  "Region",
		YLabel:  "Average Value",
		Columns: []string{"Region", "Temperature", "Emission"},
		Rows: [][]any{
			{"Eastern Africa", 24.5, 15.0},
			{"Western Africa", 27.0, 20.0},
		},
	}
}

func TestBuildSnippetAllForms(t *testing.T) {
	generator := NewChartGenerator()

	tests := []struct {
		name string
		view views.View
	}{
		{"bar", barView(views.KindHighestTemp)},
		{"pie", barView(views.KindRegionalContribution)},
		{"line", seriesView(views.KindRegionalTempSeries)},
		{"grouped bar", combinedView()},
		{"country map stand-in", barView(views.KindCountriesTempMap)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snippet, err := generator.BuildSnippet(tt.view)
			if err != nil {
				t.Fatalf("BuildSnippet failed: %v", err)
			}
			if snippet.Kind != tt.view.Kind {
				t.Errorf("Expected kind %s, got %s", tt.view.Kind, snippet.Kind)
			}
			if snippet.HTML == "" {
				t.Fatal("BuildSnippet returned empty HTML")
			}
			if !strings.Contains(snippet.HTML, tt.view.Title) {
				t.Errorf("Fragment does not contain the chart title %q", tt.view.Title)
			}
			if !strings.HasPrefix(snippet.ID, "chart-") {
				t.Errorf("Unexpected snippet ID: %s", snippet.ID)
			}
		})
	}
}

func TestBuildSnippetUnknownKind(t *testing.T) {
	generator := NewChartGenerator()

	_, err := generator.BuildSnippet(views.View{Kind: views.ChartKind("mystery")})
	if err == nil {
		t.Fatal("Expected an error for an unregistered chart kind")
	}
}

func TestBuildSnippetRejectsMalformedRows(t *testing.T) {
	generator := NewChartGenerator()

	view := barView(views.KindHighestTemp)
	view.Rows = [][]any{{"Nigeria"}} // missing value column

	_, err := generator.BuildSnippet(view)
	if err == nil {
		t.Fatal("Expected an error for a malformed row")
	}
}

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestRenderPNG(t *testing.T) {
	generator := NewChartGenerator()

	tests := []struct {
		name string
		view views.View
	}{
		{"bar", barView(views.KindHighestTemp)},
		{"line", seriesView(views.KindRegionalTempSeries)},
		{"combined", combinedView()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			png, err := generator.RenderPNG(tt.view)
			if err != nil {
				t.Fatalf("RenderPNG failed: %v", err)
			}
			if !bytes.HasPrefix(png, pngMagic) {
				t.Error("Output does not start with the PNG signature")
			}
		})
	}
}
