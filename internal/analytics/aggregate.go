// Package analytics computes grouped statistics over tidy climate
// observations. All functions are pure reductions: they ignore absent
// values, never mutate their inputs, and return deterministically ordered
// results regardless of input order.
package analytics

import (
	"sort"

	"africlimate/internal/models"
)

// DefaultEmissionScale is the display factor applied to emission means when
// co-plotting them against temperature on a single axis.
const DefaultEmissionScale = 10.0

type meanAccumulator struct {
	sum   float64
	count int
}

func (a meanAccumulator) mean() float64 {
	return a.sum / float64(a.count)
}

// MeanByRegion computes the mean of a metric per region. Regions whose
// observations are all absent produce no aggregate at all; an undefined
// mean is reported by omission, never as zero. Results are sorted by region.
func MeanByRegion(obs []models.Observation) []models.RegionAggregate {
	acc := make(map[string]meanAccumulator)
	for _, o := range obs {
		if !o.Present {
			continue
		}
		a := acc[o.Region]
		a.sum += o.Value
		a.count++
		acc[o.Region] = a
	}

	out := make([]models.RegionAggregate, 0, len(acc))
	for region, a := range acc {
		out = append(out, models.RegionAggregate{Region: region, Mean: a.mean()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Region < out[j].Region })
	return out
}

// MeanByRegionYear computes the mean of a metric per (region, year) group.
// Results are sorted by year, then region, which is the order the time
// series charts consume.
func MeanByRegionYear(obs []models.Observation) []models.RegionYearAggregate {
	type key struct {
		region string
		year   int
	}
	acc := make(map[key]meanAccumulator)
	for _, o := range obs {
		if !o.Present {
			continue
		}
		k := key{region: o.Region, year: o.Year}
		a := acc[k]
		a.sum += o.Value
		a.count++
		acc[k] = a
	}

	out := make([]models.RegionYearAggregate, 0, len(acc))
	for k, a := range acc {
		out = append(out, models.RegionYearAggregate{Region: k.region, Year: k.year, Mean: a.mean()})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Region < out[j].Region
	})
	return out
}

// MeanByCountryYear filters observations to a single year and computes the
// mean per country. With one observation per (country, year) the mean equals
// the value itself, but the reduction also covers datasets carrying multiple
// measurements per cell. Results are sorted by country.
func MeanByCountryYear(obs []models.Observation, year int) []models.CountryYearAggregate {
	acc := make(map[string]meanAccumulator)
	for _, o := range obs {
		if o.Year != year || !o.Present {
			continue
		}
		a := acc[o.Country]
		a.sum += o.Value
		a.count++
		acc[o.Country] = a
	}

	out := make([]models.CountryYearAggregate, 0, len(acc))
	for country, a := range acc {
		out = append(out, models.CountryYearAggregate{Country: country, Year: year, Mean: a.mean()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Country < out[j].Country })
	return out
}

// TopCountriesByYear returns the n countries with the highest metric value
// in the given year, in descending value order. Countries without a present
// value for that year are skipped.
func TopCountriesByYear(obs []models.Observation, year, n int) []models.CountryYearAggregate {
	ranked := MeanByCountryYear(obs, year)
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Mean != ranked[j].Mean {
			return ranked[i].Mean > ranked[j].Mean
		}
		return ranked[i].Country < ranked[j].Country
	})
	if n > 0 && n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

// CombinedRegionView joins the regional temperature and emission means on
// region and scales the emission side for co-plotting. The join is inner:
// a region present in only one dataset is dropped, by policy rather than
// accident, so the grouped bar chart never shows half-empty pairs.
func CombinedRegionView(tempObs, emissionObs []models.Observation, scale float64) []models.CombinedRegionRow {
	tempMeans := MeanByRegion(tempObs)
	emissionMeans := MeanByRegion(emissionObs)

	emissionByRegion := make(map[string]float64, len(emissionMeans))
	for _, e := range emissionMeans {
		emissionByRegion[e.Region] = e.Mean
	}

	out := make([]models.CombinedRegionRow, 0, len(tempMeans))
	for _, t := range tempMeans {
		e, ok := emissionByRegion[t.Region]
		if !ok {
			continue
		}
		out = append(out, models.CombinedRegionRow{
			Region:         t.Region,
			Temperature:    t.Mean,
			ScaledEmission: e * scale,
		})
	}
	return out
}
