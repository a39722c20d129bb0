package models

import "time"

// Metric names used across the dataset, analytics and chart layers.
const (
	MetricTemperature = "Temperature"
	MetricEmission    = "Emission"
)

// Regions is the fixed set of African sub-regions present in both datasets.
var Regions = []string{
	"Central Africa",
	"Eastern Africa",
	"Northern Africa",
	"Southern Africa",
	"Western Africa",
}

// SeriesRow is one country's series in a wide-format dataset.
// Values holds one entry per year that actually carries a measurement;
// missing cells are simply absent from the map, never coerced to zero.
type SeriesRow struct {
	Country string
	Region  string
	Values  map[int]float64
}

// Value returns the measurement for a year and whether it is present.
func (r SeriesRow) Value(year int) (float64, bool) {
	v, ok := r.Values[year]
	return v, ok
}

// SeriesTable is a wide-format dataset: one row per country, one column per year.
type SeriesTable struct {
	Metric string // Temperature or Emission
	Years  []int  // ordered year columns as parsed from the header
	Rows   []SeriesRow
}

// Observation is a single tidy-format data point produced by melting a SeriesTable.
// Present is false when the source cell was empty.
type Observation struct {
	Country string
	Region  string
	Year    int
	Value   float64
	Present bool
}

// RegionAggregate is the mean of a metric over all observations in a region.
type RegionAggregate struct {
	Region string  `json:"region"`
	Mean   float64 `json:"mean"`
}

// RegionYearAggregate is the mean of a metric over a (region, year) group.
type RegionYearAggregate struct {
	Region string  `json:"region"`
	Year   int     `json:"year"`
	Mean   float64 `json:"mean"`
}

// CountryYearAggregate is the mean of a metric for one country in one year.
type CountryYearAggregate struct {
	Country string  `json:"country"`
	Year    int     `json:"year"`
	Mean    float64 `json:"mean"`
}

// CombinedRegionRow joins regional temperature and emission means for co-plotting.
// ScaledEmission is the emission mean multiplied by a display scale factor; it is
// a presentation transform only and is never written back to any store.
type CombinedRegionRow struct {
	Region         string  `json:"region"`
	Temperature    float64 `json:"temperature"`
	ScaledEmission float64 `json:"scaled_emission"`
}

// UserRecord is a registered dashboard user. The password is stored as a
// bcrypt hash; the plain-text storage of the original system is deliberately
// not preserved.
type UserRecord struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	Email        string    `bson:"email" json:"email"`
	Username     string    `bson:"username" json:"username"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}

// CommentRecord is a free-text comment attached to one chart.
// Retrieval order for a chart tag is insertion order.
type CommentRecord struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	ChartTag  string    `bson:"chart_tag" json:"chart_tag"`
	Username  string    `bson:"username" json:"username"`
	Comment   string    `bson:"comment" json:"comment"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// Session is an authenticated login session.
type Session struct {
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
}
