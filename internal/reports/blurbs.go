package reports

import "africlimate/internal/views"

// chartBlurbs holds the markdown note shown under each chart, in the voice
// of the dashboard itself.
var chartBlurbs = map[views.ChartKind]string{
	views.KindHighestTemp: "Filterable by region, this chart shows the countries " +
		"with the highest average temperature in Africa from 1960 to 2013.",
	views.KindHighestCO2: "Filterable by region, this chart shows the countries " +
		"with the highest CO2 emissions in Africa from 1960 to 2018.",
	views.KindRegionalContribution: "**Western Africa** has the highest temperature " +
		"contribution in Africa, followed by Eastern Africa and Central Africa.",
	views.KindAvgRegionalTemp: "This chart shows the average temperature of each " +
		"region in Africa from 1960 to 2013.",
	views.KindRegionalTempSeries: "This chart shows the time series of the average " +
		"temperature of each region in Africa from 1960 to 2013.",
	views.KindRegionalCO2Series: "This chart shows the time series of the average " +
		"CO2 emission of each region in Africa from 1960 to 2018. Southern Africa " +
		"showed a sharp increase in CO2 in 1961 which was followed by a sharp " +
		"decrease in 1963.",
	views.KindCombinedRegional: "This chart shows the average regional temperature " +
		"and CO2 emission. The CO2 emission value is multiplied by **10** for better " +
		"visualization; the scaling is presentational only.",
	views.KindCountriesTempMap: "This view shows the average temperature of " +
		"countries in Africa for the selected year.",
	views.KindCountriesEmissionMap: "This view shows the average CO2 emission of " +
		"countries in Africa for the selected year.",
}

// Blurb returns the markdown note for a chart kind, empty when none exists.
func Blurb(kind views.ChartKind) string {
	return chartBlurbs[kind]
}
