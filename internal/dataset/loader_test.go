package dataset

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"africlimate/internal/models"
)

const sampleCSV = `Country,Region,1960,1961,1962
Algeria,Northern Africa,23.1,23.3,
Nigeria,Western Africa,26.8,,27.0
Kenya,Eastern Africa,24.5,24.6,24.7
`

func TestParseSeriesTable(t *testing.T) {
	table, err := ParseSeriesTable(strings.NewReader(sampleCSV), models.MetricTemperature)
	if err != nil {
		t.Fatalf("ParseSeriesTable failed: %v", err)
	}

	if table.Metric != models.MetricTemperature {
		t.Errorf("Expected metric %q, got %q", models.MetricTemperature, table.Metric)
	}
	if len(table.Years) != 3 || table.Years[0] != 1960 || table.Years[2] != 1962 {
		t.Errorf("Unexpected years: %v", table.Years)
	}
	if len(table.Rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(table.Rows))
	}

	algeria := table.Rows[0]
	if algeria.Country != "Algeria" || algeria.Region != "Northern Africa" {
		t.Errorf("Unexpected first row: %+v", algeria)
	}
	if v, ok := algeria.Value(1960); !ok || v != 23.1 {
		t.Errorf("Expected Algeria 1960 = 23.1, got %v (present=%v)", v, ok)
	}
	if _, ok := algeria.Value(1962); ok {
		t.Error("Empty cell must stay absent, not become a value")
	}
	if _, ok := table.Rows[1].Value(1961); ok {
		t.Error("Nigeria 1961 is empty and must be absent")
	}
}

func TestParseSeriesTableErrors(t *testing.T) {
	tests := []struct {
		name    string
		csv     string
		wantErr error
	}{
		{
			name:    "missing region column",
			csv:     "Country,1960\nAlgeria,23.1\n",
			wantErr: ErrDataUnavailable,
		},
		{
			name:    "wrong header names",
			csv:     "Nation,Area,1960\nAlgeria,North,23.1\n",
			wantErr: ErrDataUnavailable,
		},
		{
			name:    "non-integer year header",
			csv:     "Country,Region,nineteen-sixty\nAlgeria,Northern Africa,23.1\n",
			wantErr: ErrMalformedYear,
		},
		{
			name:    "non-numeric cell",
			csv:     "Country,Region,1960\nAlgeria,Northern Africa,warm\n",
			wantErr: ErrDataUnavailable,
		},
		{
			name:    "no data rows",
			csv:     "Country,Region,1960\n",
			wantErr: ErrDataUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSeriesTable(strings.NewReader(tt.csv), models.MetricTemperature)
			if err == nil {
				t.Fatal("Expected an error, got nil")
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestMelt(t *testing.T) {
	table, err := ParseSeriesTable(strings.NewReader(sampleCSV), models.MetricTemperature)
	if err != nil {
		t.Fatalf("ParseSeriesTable failed: %v", err)
	}

	obs := Melt(table)
	if want := len(table.Rows) * len(table.Years); len(obs) != want {
		t.Fatalf("Expected %d observations, got %d", want, len(obs))
	}

	// Every (country, year) pair must appear exactly once, absent or not.
	seen := make(map[string]bool)
	for _, o := range obs {
		key := fmt.Sprintf("%s|%d", o.Country, o.Year)
		if seen[key] {
			t.Errorf("Duplicate observation for %s %d", o.Country, o.Year)
		}
		seen[key] = true
	}

	for _, o := range obs {
		if o.Country == "Algeria" && o.Year == 1962 {
			if o.Present {
				t.Error("Algeria 1962 must be absent after melt")
			}
			if o.Value != 0 {
				t.Errorf("Absent observation must carry the zero value, got %v", o.Value)
			}
		}
	}
}

func TestDataContextRegions(t *testing.T) {
	table, err := ParseSeriesTable(strings.NewReader(sampleCSV), models.MetricTemperature)
	if err != nil {
		t.Fatalf("ParseSeriesTable failed: %v", err)
	}

	dc := NewDataContext(table, table)
	regions := dc.Regions()
	want := []string{"Northern Africa", "Western Africa", "Eastern Africa"}
	if len(regions) != len(want) {
		t.Fatalf("Expected %d regions, got %v", len(want), regions)
	}
	for i := range want {
		if regions[i] != want[i] {
			t.Errorf("Region %d: expected %q, got %q (first-seen order)", i, want[i], regions[i])
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := LoadSeriesTable("testdata/does_not_exist.csv", models.MetricTemperature)
	if !errors.Is(err, ErrDataUnavailable) {
		t.Errorf("Expected ErrDataUnavailable for missing file, got %v", err)
	}
}
