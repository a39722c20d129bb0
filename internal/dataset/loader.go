package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"africlimate/internal/models"
)

// ParseSeriesTable parses a wide-format climate CSV into a SeriesTable.
// The expected header is "Country,Region,<year>,<year>,..." with integer year
// columns. Empty cells become absent values; they are never coerced to zero.
func ParseSeriesTable(r io.Reader, metric string) (models.SeriesTable, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return models.SeriesTable{}, fmt.Errorf("%w: read header: %v", ErrDataUnavailable, err)
	}
	if len(header) < 3 {
		return models.SeriesTable{}, fmt.Errorf("%w: header has %d columns, need Country, Region and at least one year", ErrDataUnavailable, len(header))
	}
	if !strings.EqualFold(strings.TrimSpace(header[0]), "Country") || !strings.EqualFold(strings.TrimSpace(header[1]), "Region") {
		return models.SeriesTable{}, fmt.Errorf("%w: first two columns must be Country and Region, got %q and %q", ErrDataUnavailable, header[0], header[1])
	}

	years := make([]int, 0, len(header)-2)
	for _, label := range header[2:] {
		year, err := strconv.Atoi(strings.TrimSpace(label))
		if err != nil {
			return models.SeriesTable{}, fmt.Errorf("%w: column header %q", ErrMalformedYear, label)
		}
		years = append(years, year)
	}

	table := models.SeriesTable{Metric: metric, Years: years}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return models.SeriesTable{}, fmt.Errorf("%w: read row: %v", ErrDataUnavailable, err)
		}
		if len(record) != len(header) {
			return models.SeriesTable{}, fmt.Errorf("%w: row for %q has %d columns, expected %d", ErrDataUnavailable, record[0], len(record), len(header))
		}

		row := models.SeriesRow{
			Country: strings.TrimSpace(record[0]),
			Region:  strings.TrimSpace(record[1]),
			Values:  make(map[int]float64, len(years)),
		}
		for i, year := range years {
			cell := strings.TrimSpace(record[i+2])
			if cell == "" {
				continue // missing measurement stays missing
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return models.SeriesTable{}, fmt.Errorf("%w: non-numeric value %q for %s in %d", ErrDataUnavailable, cell, row.Country, year)
			}
			row.Values[year] = v
		}
		table.Rows = append(table.Rows, row)
	}

	if len(table.Rows) == 0 {
		return models.SeriesTable{}, fmt.Errorf("%w: %s dataset has no rows", ErrDataUnavailable, metric)
	}
	return table, nil
}

// LoadSeriesTable reads and parses a wide-format climate CSV from disk.
func LoadSeriesTable(path, metric string) (models.SeriesTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return models.SeriesTable{}, fmt.Errorf("%w: open %s: %v", ErrDataUnavailable, path, err)
	}
	defer f.Close()

	table, err := ParseSeriesTable(f, metric)
	if err != nil {
		return models.SeriesTable{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return table, nil
}
