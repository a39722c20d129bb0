package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for the dashboard.
type Metrics struct {
	ViewsRendered *prometheus.CounterVec // labels: kind, outcome={success,empty,error}
	Registrations *prometheus.CounterVec // labels: outcome={success,rejected,error}
	Logins        *prometheus.CounterVec // labels: outcome={success,rejected,error}
	CommentsAdded prometheus.Counter
	Snapshots     prometheus.Counter

	ViewSelectionDuration prometheus.Histogram
}

// NewMetrics creates and registers all dashboard metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.ViewsRendered,
		m.Registrations,
		m.Logins,
		m.CommentsAdded,
		m.Snapshots,
		m.ViewSelectionDuration,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		ViewsRendered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "africlimate",
			Name:      "views_rendered_total",
			Help:      "Chart views rendered by kind and outcome.",
		}, []string{"kind", "outcome"}),
		Registrations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "africlimate",
			Name:      "registrations_total",
			Help:      "Registration attempts by outcome.",
		}, []string{"outcome"}),
		Logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "africlimate",
			Name:      "logins_total",
			Help:      "Login attempts by outcome.",
		}, []string{"outcome"}),
		CommentsAdded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "africlimate",
			Name:      "comments_added_total",
			Help:      "Comments successfully stored.",
		}),
		Snapshots: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "africlimate",
			Name:      "snapshots_total",
			Help:      "Dashboard snapshots exported to storage.",
		}),
		ViewSelectionDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "africlimate",
			Name:      "view_selection_duration_seconds",
			Help:      "Duration of view selection and aggregation per chart.",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		}),
	}
}
