// Package charts turns selected view rows into embeddable chart fragments.
// HTML fragments come from go-echarts; PNG renditions for static snapshots
// come from go-chart.
package charts

import (
	"fmt"

	"africlimate/internal/views"
)

// ChartSnippet is an embeddable chart fragment for the dashboard page.
// HTML holds a self-contained fragment (container div plus the rendered
// echarts markup) ready for template substitution.
type ChartSnippet struct {
	ID    string
	Kind  views.ChartKind
	Title string
	HTML  string
}

// ChartGenerator renders views into chart fragments and PNG files.
type ChartGenerator struct {
	width  string
	height string
}

// NewChartGenerator creates a generator with the default chart dimensions.
func NewChartGenerator() *ChartGenerator {
	return &ChartGenerator{width: "100%", height: "420px"}
}

// BuildSnippet renders one view as an embeddable HTML chart fragment.
// The chart form follows the original dashboard: pie for the regional
// contribution, lines for the time series, grouped bars for the combined
// view, plain bars for the rankings and the per-country map stand-ins.
func (cg *ChartGenerator) BuildSnippet(view views.View) (ChartSnippet, error) {
	var (
		html string
		err  error
	)

	switch view.Kind {
	case views.KindRegionalContribution:
		html, err = cg.renderPie(view)
	case views.KindRegionalTempSeries, views.KindRegionalCO2Series:
		html, err = cg.renderLine(view)
	case views.KindCombinedRegional:
		html, err = cg.renderGroupedBar(view)
	case views.KindHighestTemp, views.KindHighestCO2,
		views.KindAvgRegionalTemp, views.KindCountriesTempMap, views.KindCountriesEmissionMap:
		html, err = cg.renderBar(view)
	default:
		return ChartSnippet{}, fmt.Errorf("no chart renderer for view %q", view.Kind)
	}
	if err != nil {
		return ChartSnippet{}, fmt.Errorf("render %s: %w", view.Kind, err)
	}

	return ChartSnippet{
		ID:    "chart-" + string(view.Kind),
		Kind:  view.Kind,
		Title: view.Title,
		HTML:  html,
	}, nil
}

// labelValueRows extracts (label, value) pairs from two-column view rows.
func labelValueRows(view views.View) ([]string, []float64, error) {
	labels := make([]string, 0, len(view.Rows))
	values := make([]float64, 0, len(view.Rows))
	for _, row := range view.Rows {
		if len(row) < 2 {
			return nil, nil, fmt.Errorf("view %s: row has %d columns, need 2", view.Kind, len(row))
		}
		label, ok := row[0].(string)
		if !ok {
			return nil, nil, fmt.Errorf("view %s: first column is not a string", view.Kind)
		}
		value, ok := row[1].(float64)
		if !ok {
			return nil, nil, fmt.Errorf("view %s: second column is not a float", view.Kind)
		}
		labels = append(labels, label)
		values = append(values, value)
	}
	return labels, values, nil
}
