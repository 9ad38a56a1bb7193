package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for file reads,
// summaries and map rendering.
type Metrics struct {
	FilesRead    *prometheus.CounterVec // labels: outcome={success,not_found,malformed,error}
	RowsLoaded   prometheus.Counter
	ReadDuration prometheus.Histogram

	SummariesBuilt prometheus.Counter
	PlotsRendered  *prometheus.CounterVec // labels: outcome={rendered,empty,invalid_state,error}
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.FilesRead,
		m.RowsLoaded,
		m.ReadDuration,
		m.SummariesBuilt,
		m.PlotsRendered,
	)
	return m
}

// NewMetricsForTesting creates unregistered Metrics to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		FilesRead: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fars",
			Name:      "files_read_total",
			Help:      "Accident file reads by outcome.",
		}, []string{"outcome"}),
		RowsLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fars",
			Name:      "rows_loaded_total",
			Help:      "Total accident rows parsed.",
		}),
		ReadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "fars",
			Name:      "file_read_duration_seconds",
			Help:      "Time to open, decompress and parse one accident file.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
		SummariesBuilt: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fars",
			Name:      "summaries_built_total",
			Help:      "Month by year summary tables computed.",
		}),
		PlotsRendered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fars",
			Name:      "state_maps_total",
			Help:      "State map requests by outcome.",
		}, []string{"outcome"}),
	}
}
