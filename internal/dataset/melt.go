package dataset

import "africlimate/internal/models"

// Melt converts a wide-format SeriesTable into tidy observations: one
// Observation per (country, year) pair, including pairs whose value is absent.
// The output therefore always has len(table.Rows) * len(table.Years) entries.
// Melt is pure and callers must not rely on output order.
func Melt(table models.SeriesTable) []models.Observation {
	obs := make([]models.Observation, 0, len(table.Rows)*len(table.Years))
	for _, row := range table.Rows {
		for _, year := range table.Years {
			v, present := row.Value(year)
			obs = append(obs, models.Observation{
				Country: row.Country,
				Region:  row.Region,
				Year:    year,
				Value:   v,
				Present: present,
			})
		}
	}
	return obs
}
