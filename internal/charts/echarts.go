package charts

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"africlimate/internal/views"
)

// chartRenderer is the piece of the go-echarts API every chart type shares.
type chartRenderer interface {
	Render(w io.Writer) error
}

// renderFragment renders a go-echarts chart into an HTML string.
func renderFragment(c chartRenderer) (string, error) {
	var buf bytes.Buffer
	if err := c.Render(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (cg *ChartGenerator) initOpts() opts.Initialization {
	return opts.Initialization{
		Theme:  types.ThemeWesteros,
		Width:  cg.width,
		Height: cg.height,
	}
}

// renderBar renders (label, value) rows as a vertical bar chart.
func (cg *ChartGenerator) renderBar(view views.View) (string, error) {
	labels, values, err := labelValueRows(view)
	if err != nil {
		return "", err
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(cg.initOpts()),
		charts.WithTitleOpts(opts.Title{Title: view.Title}),
		charts.WithXAxisOpts(opts.XAxis{Name: view.XLabel, AxisLabel: &opts.AxisLabel{Show: true, Rotate: 45}}),
		charts.WithYAxisOpts(opts.YAxis{Name: view.YLabel}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true, Trigger: "axis"}),
	)

	data := make([]opts.BarData, 0, len(values))
	for _, v := range values {
		data = append(data, opts.BarData{Value: v})
	}
	bar.SetXAxis(labels).AddSeries(view.YLabel, data)

	return renderFragment(bar)
}

// renderGroupedBar renders (region, temperature, scaledEmission) rows as a
// two-series grouped bar chart, matching the original's side-by-side view.
func (cg *ChartGenerator) renderGroupedBar(view views.View) (string, error) {
	labels := make([]string, 0, len(view.Rows))
	tempData := make([]opts.BarData, 0, len(view.Rows))
	emissionData := make([]opts.BarData, 0, len(view.Rows))
	for _, row := range view.Rows {
		if len(row) < 3 {
			return "", fmt.Errorf("view %s: row has %d columns, need 3", view.Kind, len(row))
		}
		region, ok := row[0].(string)
		if !ok {
			return "", fmt.Errorf("view %s: first column is not a string", view.Kind)
		}
		temp, okT := row[1].(float64)
		emission, okE := row[2].(float64)
		if !okT || !okE {
			return "", fmt.Errorf("view %s: value columns are not floats", view.Kind)
		}
		labels = append(labels, region)
		tempData = append(tempData, opts.BarData{Value: temp})
		emissionData = append(emissionData, opts.BarData{Value: emission})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(cg.initOpts()),
		charts.WithTitleOpts(opts.Title{Title: view.Title}),
		charts.WithXAxisOpts(opts.XAxis{Name: view.XLabel}),
		charts.WithYAxisOpts(opts.YAxis{Name: view.YLabel}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true, Trigger: "axis"}),
	)
	bar.SetXAxis(labels).
		AddSeries("Temperature", tempData).
		AddSeries("Emission (x10)", emissionData)

	return renderFragment(bar)
}

// renderLine renders (year, region, mean) rows as one line per region.
func (cg *ChartGenerator) renderLine(view views.View) (string, error) {
	type point struct {
		year int
		mean float64
	}
	byRegion := make(map[string][]point)
	yearSet := make(map[int]bool)
	for _, row := range view.Rows {
		if len(row) < 3 {
			return "", fmt.Errorf("view %s: row has %d columns, need 3", view.Kind, len(row))
		}
		year, okY := row[0].(int)
		region, okR := row[1].(string)
		mean, okM := row[2].(float64)
		if !okY || !okR || !okM {
			return "", fmt.Errorf("view %s: unexpected row types", view.Kind)
		}
		byRegion[region] = append(byRegion[region], point{year: year, mean: mean})
		yearSet[year] = true
	}

	years := make([]int, 0, len(yearSet))
	for y := range yearSet {
		years = append(years, y)
	}
	sort.Ints(years)

	xAxis := make([]string, len(years))
	yearIndex := make(map[int]int, len(years))
	for i, y := range years {
		xAxis[i] = fmt.Sprintf("%d", y)
		yearIndex[y] = i
	}

	regions := make([]string, 0, len(byRegion))
	for region := range byRegion {
		regions = append(regions, region)
	}
	sort.Strings(regions)

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(cg.initOpts()),
		charts.WithTitleOpts(opts.Title{Title: view.Title}),
		charts.WithXAxisOpts(opts.XAxis{Name: view.XLabel}),
		charts.WithYAxisOpts(opts.YAxis{Name: view.YLabel}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true, Trigger: "axis"}),
	)
	line.SetXAxis(xAxis)

	for _, region := range regions {
		// Years without a mean for this region stay nil so the line breaks
		// instead of dropping to zero.
		data := make([]opts.LineData, len(years))
		for i := range data {
			data[i] = opts.LineData{Value: nil}
		}
		for _, p := range byRegion[region] {
			data[yearIndex[p.year]] = opts.LineData{Value: p.mean}
		}
		line.AddSeries(region, data)
	}
	line.SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: true}))

	return renderFragment(line)
}

// renderPie renders (label, value) rows as a donut chart, like the
// original's regional contribution view.
func (cg *ChartGenerator) renderPie(view views.View) (string, error) {
	labels, values, err := labelValueRows(view)
	if err != nil {
		return "", err
	}

	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithInitializationOpts(cg.initOpts()),
		charts.WithTitleOpts(opts.Title{Title: view.Title}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
	)

	data := make([]opts.PieData, 0, len(values))
	for i, v := range values {
		data = append(data, opts.PieData{Name: labels[i], Value: v})
	}
	pie.AddSeries(view.Title, data).
		SetSeriesOptions(charts.WithPieChartOpts(opts.PieChart{
			Radius: []string{"40%", "70%"},
		}))

	return renderFragment(pie)
}
