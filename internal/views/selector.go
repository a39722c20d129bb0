// Package views maps named chart requests onto the aggregation layer and
// slices the result down to exactly the rows a chart should render.
package views

import (
	"errors"
	"fmt"

	"africlimate/internal/analytics"
	"africlimate/internal/dataset"
	"africlimate/internal/models"
)

// ChartKind names one of the dashboard's charts. The values double as the
// chart tags that scope comments, so they must stay stable.
type ChartKind string

const (
	KindHighestTemp          ChartKind = "filterable_highest_temp"
	KindHighestCO2           ChartKind = "filterable_highest_co2"
	KindRegionalContribution ChartKind = "regional_temp_contribution"
	KindAvgRegionalTemp      ChartKind = "avg_regional_temp"
	KindRegionalTempSeries   ChartKind = "regional_temp_time_series"
	KindRegionalCO2Series    ChartKind = "regional_co2_emission_time_series"
	KindCombinedRegional     ChartKind = "avg_regional_temp_co2"
	KindCountriesTempMap     ChartKind = "countries_temp_map"
	KindCountriesEmissionMap ChartKind = "emission_map"
)

// AllKinds lists every chart on the dashboard in page order.
var AllKinds = []ChartKind{
	KindRegionalContribution,
	KindCombinedRegional,
	KindCountriesTempMap,
	KindCountriesEmissionMap,
	KindHighestTemp,
	KindHighestCO2,
	KindRegionalCO2Series,
	KindRegionalTempSeries,
	KindAvgRegionalTemp,
}

var (
	// ErrUnknownChartKind indicates a chart name no view is registered for.
	// This is a programmer error, not a user-recoverable state.
	ErrUnknownChartKind = errors.New("unknown chart kind")

	// ErrEmptyResult indicates the filter matched zero rows. Recoverable:
	// the caller renders an empty-state message for that one chart.
	ErrEmptyResult = errors.New("no rows match the requested filter")
)

// Filter narrows a view to one region and/or one year. Zero values mean
// "no filter". Filters are threaded explicitly per request; they are never
// shared between chart renders.
type Filter struct {
	Region string
	Year   int
}

// View is the exact row set handed to the rendering sink for one chart.
type View struct {
	Kind    ChartKind `json:"kind"`
	Title   string    `json:"title"`
	XLabel  string    `json:"x_label"`
	YLabel  string    `json:"y_label"`
	Columns []string  `json:"columns"`
	Rows    [][]any   `json:"rows"`
}

// topN mirrors the original dashboard's ten-country ranking charts.
const topN = 10

// Select resolves a chart kind against the data context and filter and
// returns the rows to render. It fails with ErrUnknownChartKind for an
// unregistered kind and ErrEmptyResult when the filter matches nothing.
func Select(dc *dataset.DataContext, kind ChartKind, filter Filter) (View, error) {
	switch kind {
	case KindHighestTemp:
		return topCountriesView(dc.TempObs, dc.Temperature, kind, filter,
			"Countries with High Temperature", "Average Temperature (°C)")
	case KindHighestCO2:
		return topCountriesView(dc.EmissionObs, dc.Emission, kind, filter,
			"Countries with High CO2 Emission", "CO2 Emission (Mt CO2)")
	case KindRegionalContribution:
		return regionalMeanView(dc.TempObs, kind, filter,
			"Region Wise Temperature (°C)", "Average Temperature (°C)")
	case KindAvgRegionalTemp:
		return regionalMeanView(dc.TempObs, kind, filter,
			"Average Regional Temperature (1960-2013)", "Average Temperature (°C)")
	case KindRegionalTempSeries:
		return regionalSeriesView(dc.TempObs, kind, filter,
			"Time Series - Average Regional Temperature (1960-2013)", "Average Temperature (°C)")
	case KindRegionalCO2Series:
		return regionalSeriesView(dc.EmissionObs, kind, filter,
			"Time Series - Average Regional CO2 Emission (1960-2018)", "Average CO2 Emission (Mt CO2)")
	case KindCombinedRegional:
		return combinedRegionalView(dc, filter)
	case KindCountriesTempMap:
		return countryYearView(dc.TempObs, dc.Temperature, kind, filter,
			"Average Temperature of Each Country", "Average Temperature (°C)")
	case KindCountriesEmissionMap:
		return countryYearView(dc.EmissionObs, dc.Emission, kind, filter,
			"Average CO2 Emission of Each Country", "Average Emission (Mt CO2)")
	default:
		return View{}, fmt.Errorf("%w: %q", ErrUnknownChartKind, kind)
	}
}

// filterObs applies the region filter; year filtering happens inside the
// per-kind builders because some kinds treat the year as a selector rather
// than a slice.
func filterObs(obs []models.Observation, region string) []models.Observation {
	if region == "" {
		return obs
	}
	out := make([]models.Observation, 0, len(obs))
	for _, o := range obs {
		if o.Region == region {
			out = append(out, o)
		}
	}
	return out
}

func topCountriesView(obs []models.Observation, table models.SeriesTable, kind ChartKind, filter Filter, title, yLabel string) (View, error) {
	year := filter.Year
	if year == 0 && len(table.Years) > 0 {
		year = table.Years[0] // the original charts rank by the first year column
	}

	ranked := analytics.TopCountriesByYear(filterObs(obs, filter.Region), year, topN)
	if len(ranked) == 0 {
		return View{}, fmt.Errorf("%s in %d: %w", kind, year, ErrEmptyResult)
	}

	rows := make([][]any, 0, len(ranked))
	for _, r := range ranked {
		rows = append(rows, []any{r.Country, r.Mean})
	}
	return View{
		Kind:    kind,
		Title:   fmt.Sprintf("%s (%d)", title, year),
		XLabel:  "Country",
		YLabel:  yLabel,
		Columns: []string{"Country", table.Metric},
		Rows:    rows,
	}, nil
}

func regionalMeanView(obs []models.Observation, kind ChartKind, filter Filter, title, yLabel string) (View, error) {
	scoped := filterObs(obs, filter.Region)
	if filter.Year != 0 {
		scoped = filterToYear(scoped, filter.Year)
	}

	means := analytics.MeanByRegion(scoped)
	if len(means) == 0 {
		return View{}, fmt.Errorf("%s: %w", kind, ErrEmptyResult)
	}

	rows := make([][]any, 0, len(means))
	for _, m := range means {
		rows = append(rows, []any{m.Region, m.Mean})
	}
	return View{
		Kind:    kind,
		Title:   title,
		XLabel:  "Region",
		YLabel:  yLabel,
		Columns: []string{"Region", "Mean"},
		Rows:    rows,
	}, nil
}

func regionalSeriesView(obs []models.Observation, kind ChartKind, filter Filter, title, yLabel string) (View, error) {
	scoped := filterObs(obs, filter.Region)
	if filter.Year != 0 {
		scoped = filterToYear(scoped, filter.Year)
	}

	series := analytics.MeanByRegionYear(scoped)
	if len(series) == 0 {
		return View{}, fmt.Errorf("%s: %w", kind, ErrEmptyResult)
	}

	rows := make([][]any, 0, len(series))
	for _, s := range series {
		rows = append(rows, []any{s.Year, s.Region, s.Mean})
	}
	return View{
		Kind:    kind,
		Title:   title,
		XLabel:  "Year",
		YLabel:  yLabel,
		Columns: []string{"Year", "Region", "Mean"},
		Rows:    rows,
	}, nil
}

func combinedRegionalView(dc *dataset.DataContext, filter Filter) (View, error) {
	tempObs := filterObs(dc.TempObs, filter.Region)
	emissionObs := filterObs(dc.EmissionObs, filter.Region)

	combined := analytics.CombinedRegionView(tempObs, emissionObs, analytics.DefaultEmissionScale)
	if len(combined) == 0 {
		return View{}, fmt.Errorf("%s: %w", KindCombinedRegional, ErrEmptyResult)
	}

	rows := make([][]any, 0, len(combined))
	for _, c := range combined {
		rows = append(rows, []any{c.Region, c.Temperature, c.ScaledEmission})
	}
	return View{
		Kind:    KindCombinedRegional,
		Title:   "Average Regional Temperature (°C) and CO2 Emission (Mt CO2 x10)",
		XLabel:  "Region",
		YLabel:  "Average Value",
		Columns: []string{"Region", "Temperature", "Emission"},
		Rows:    rows,
	}, nil
}

func countryYearView(obs []models.Observation, table models.SeriesTable, kind ChartKind, filter Filter, title, yLabel string) (View, error) {
	year := filter.Year
	if year == 0 && len(table.Years) > 0 {
		year = table.Years[0]
	}

	means := analytics.MeanByCountryYear(filterObs(obs, filter.Region), year)
	if len(means) == 0 {
		return View{}, fmt.Errorf("%s for year %d: %w", kind, year, ErrEmptyResult)
	}

	rows := make([][]any, 0, len(means))
	for _, m := range means {
		rows = append(rows, []any{m.Country, m.Mean})
	}
	return View{
		Kind:    kind,
		Title:   fmt.Sprintf("%s (%d)", title, year),
		XLabel:  "Country",
		YLabel:  yLabel,
		Columns: []string{"Country", "Mean"},
		Rows:    rows,
	}, nil
}

func filterToYear(obs []models.Observation, year int) []models.Observation {
	out := make([]models.Observation, 0, len(obs))
	for _, o := range obs {
		if o.Year == year {
			out = append(out, o)
		}
	}
	return out
}
