package dataset

import (
	"fmt"

	"africlimate/internal/models"
)

// DataContext holds both climate datasets in wide and tidy form. It is built
// once at startup and passed read-only to the analytics, view and chart
// layers; nothing mutates it after construction, so it is safe to share
// across requests without locking.
type DataContext struct {
	Temperature models.SeriesTable
	Emission    models.SeriesTable

	TempObs     []models.Observation
	EmissionObs []models.Observation
}

// Load reads both datasets from disk and builds the immutable DataContext.
// Any failure here is fatal to the dashboard as a whole.
func Load(tempPath, emissionPath string) (*DataContext, error) {
	tempTable, err := LoadSeriesTable(tempPath, models.MetricTemperature)
	if err != nil {
		return nil, fmt.Errorf("load temperature dataset: %w", err)
	}

	emissionTable, err := LoadSeriesTable(emissionPath, models.MetricEmission)
	if err != nil {
		return nil, fmt.Errorf("load emission dataset: %w", err)
	}

	return NewDataContext(tempTable, emissionTable), nil
}

// NewDataContext melts both tables and assembles the context.
func NewDataContext(temperature, emission models.SeriesTable) *DataContext {
	return &DataContext{
		Temperature: temperature,
		Emission:    emission,
		TempObs:     Melt(temperature),
		EmissionObs: Melt(emission),
	}
}

// Regions returns the distinct regions present in the temperature dataset,
// in first-seen row order. Used to populate chart filter widgets.
func (dc *DataContext) Regions() []string {
	seen := make(map[string]bool)
	var regions []string
	for _, row := range dc.Temperature.Rows {
		if !seen[row.Region] {
			seen[row.Region] = true
			regions = append(regions, row.Region)
		}
	}
	return regions
}
