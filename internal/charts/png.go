package charts

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"africlimate/internal/views"
)

// RenderPNG renders a view as a static PNG for dashboard snapshots.
// Two-column views become bar charts, the combined regional view becomes an
// interleaved bar chart, and the time series become one line per region.
func (cg *ChartGenerator) RenderPNG(view views.View) ([]byte, error) {
	switch view.Kind {
	case views.KindRegionalTempSeries, views.KindRegionalCO2Series:
		return cg.renderLinePNG(view)
	case views.KindCombinedRegional:
		return cg.renderCombinedPNG(view)
	default:
		return cg.renderBarPNG(view)
	}
}

func (cg *ChartGenerator) renderBarPNG(view views.View) ([]byte, error) {
	labels, values, err := labelValueRows(view)
	if err != nil {
		return nil, err
	}

	bars := make([]chart.Value, 0, len(values))
	for i, v := range values {
		bars = append(bars, chart.Value{
			Value: v,
			Label: labels[i],
			Style: chart.Style{
				FillColor:   drawing.Color{R: 222, G: 96, B: 70, A: 255},
				StrokeColor: drawing.Color{R: 52, G: 58, B: 64, A: 255},
				StrokeWidth: 1,
			},
		})
	}

	graph := chart.BarChart{
		Title: view.Title,
		TitleStyle: chart.Style{
			FontSize:  14,
			FontColor: drawing.ColorBlack,
		},
		Background: chart.Style{
			Padding:   chart.Box{Top: 50, Left: 60, Right: 40, Bottom: 60},
			FillColor: drawing.Color{R: 248, G: 249, B: 250, A: 255},
		},
		Width:    900,
		Height:   420,
		BarWidth: 40,
		YAxis: chart.YAxis{
			Name: view.YLabel,
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render bar png: %w", err)
	}
	return buf.Bytes(), nil
}

func (cg *ChartGenerator) renderCombinedPNG(view views.View) ([]byte, error) {
	bars := make([]chart.Value, 0, len(view.Rows)*2)
	for _, row := range view.Rows {
		if len(row) < 3 {
			return nil, fmt.Errorf("view %s: row has %d columns, need 3", view.Kind, len(row))
		}
		region, _ := row[0].(string)
		temp, _ := row[1].(float64)
		emission, _ := row[2].(float64)
		bars = append(bars,
			chart.Value{
				Value: temp,
				Label: region + " °C",
				Style: chart.Style{FillColor: drawing.Color{R: 222, G: 96, B: 70, A: 255}},
			},
			chart.Value{
				Value: emission,
				Label: region + " CO2",
				Style: chart.Style{FillColor: drawing.Color{R: 52, G: 58, B: 64, A: 255}},
			},
		)
	}

	graph := chart.BarChart{
		Title:  view.Title,
		Width:  1000,
		Height: 420,
		Background: chart.Style{
			Padding: chart.Box{Top: 50, Left: 60, Right: 40, Bottom: 60},
		},
		BarWidth: 30,
		YAxis:    chart.YAxis{Name: view.YLabel},
		Bars:     bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render combined png: %w", err)
	}
	return buf.Bytes(), nil
}

func (cg *ChartGenerator) renderLinePNG(view views.View) ([]byte, error) {
	type seriesAcc struct {
		x []float64
		y []float64
	}
	byRegion := make(map[string]*seriesAcc)
	var regions []string
	for _, row := range view.Rows {
		if len(row) < 3 {
			return nil, fmt.Errorf("view %s: row has %d columns, need 3", view.Kind, len(row))
		}
		year, _ := row[0].(int)
		region, _ := row[1].(string)
		mean, _ := row[2].(float64)
		acc, ok := byRegion[region]
		if !ok {
			acc = &seriesAcc{}
			byRegion[region] = acc
			regions = append(regions, region)
		}
		acc.x = append(acc.x, float64(year))
		acc.y = append(acc.y, mean)
	}

	series := make([]chart.Series, 0, len(regions))
	for _, region := range regions {
		acc := byRegion[region]
		series = append(series, chart.ContinuousSeries{
			Name:    region,
			XValues: acc.x,
			YValues: acc.y,
		})
	}

	graph := chart.Chart{
		Title:  view.Title,
		Width:  1000,
		Height: 420,
		XAxis:  chart.XAxis{Name: view.XLabel},
		YAxis:  chart.YAxis{Name: view.YLabel},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.LegendThin(&graph)}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render line png: %w", err)
	}
	return buf.Bytes(), nil
}
