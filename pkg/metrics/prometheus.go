// Package metrics provides Prometheus metrics for the medal summary pipeline.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Skip reasons recorded under records_skipped_total.
const (
	SkipNoMedal           = "no_medal"
	SkipUnknownTier       = "unknown_tier"
	SkipUnsupportedSeason = "unsupported_season"
)

// Pipeline stage labels.
const (
	StageIngest = "ingest"
	StageReport = "report"
	StageWrite  = "write"
)

// Manager owns all Prometheus collectors for one registry.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	recordsRead      prometheus.Counter
	recordsSkipped   *prometheus.CounterVec
	recordsDuplicate prometheus.Counter
	medalsCredited   *prometheus.CounterVec
	countries        prometheus.Gauge
	stageDuration    *prometheus.HistogramVec
	errorsByComp     *prometheus.CounterVec
}

var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // keeps default Go collectors out

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "podium",
		subsystem:        "pipeline",
		histogramBuckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.recordsRead = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "records_read_total",
		Help:      "Total number of input rows read from the source",
	})

	m.recordsSkipped = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "records_skipped_total",
			Help:      "Rows ignored before tallying, by reason",
		},
		[]string{"reason"},
	)

	m.recordsDuplicate = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "records_duplicate_total",
		Help:      "Rows collapsed by team-event deduplication",
	})

	m.medalsCredited = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "medals_credited_total",
			Help:      "Medals credited to the tally by season and tier",
		},
		[]string{"season", "tier"},
	)

	m.countries = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "countries_reported",
		Help:      "Number of countries in the last written summary",
	})

	m.stageDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "stage_duration_milliseconds",
			Help:      "Wall time spent per pipeline stage",
			Buckets:   m.histogramBuckets,
		},
		[]string{"stage"},
	)

	m.errorsByComp = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "errors_by_component_total",
			Help:      "Fatal errors by component and type",
		},
		[]string{"component", "error_type"},
	)
}

// RecordRead increments the rows read counter.
func (m *Manager) RecordRead() { m.recordsRead.Inc() }

// RecordSkipped increments the skipped rows counter for reason.
func (m *Manager) RecordSkipped(reason string) { m.recordsSkipped.WithLabelValues(reason).Inc() }

// RecordDuplicate increments the duplicate rows counter.
func (m *Manager) RecordDuplicate() { m.recordsDuplicate.Inc() }

// RecordMedal increments the credited medals counter.
func (m *Manager) RecordMedal(season, tier string) {
	m.medalsCredited.WithLabelValues(season, tier).Inc()
}

// UpdateCountries sets the number of reported countries.
func (m *Manager) UpdateCountries(n int) { m.countries.Set(float64(n)) }

// RecordStageDuration observes the duration of a stage in milliseconds.
func (m *Manager) RecordStageDuration(stage string, ms float64) {
	m.stageDuration.WithLabelValues(stage).Observe(ms)
}

// RecordError increments the error counter for component.
func (m *Manager) RecordError(component, errorType string) {
	m.errorsByComp.WithLabelValues(component, errorType).Inc()
}

// RecordRead increments the global rows read counter.
func RecordRead() { globalManager.RecordRead() }

// RecordSkipped increments the global skipped rows counter.
func RecordSkipped(reason string) { globalManager.RecordSkipped(reason) }

// RecordDuplicate increments the global duplicate rows counter.
func RecordDuplicate() { globalManager.RecordDuplicate() }

// RecordMedal increments the global credited medals counter.
func RecordMedal(season, tier string) { globalManager.RecordMedal(season, tier) }

// UpdateCountries sets the global reported countries gauge.
func UpdateCountries(n int) { globalManager.UpdateCountries(n) }

// RecordStageDuration observes a stage duration on the global manager.
func RecordStageDuration(stage string, ms float64) { globalManager.RecordStageDuration(stage, ms) }

// RecordError increments the global error counter.
func RecordError(component, errorType string) { globalManager.RecordError(component, errorType) }

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// WriteTextfile dumps the global registry in the node-exporter textfile format.
func WriteTextfile(path string) error {
	return WriteGathererTextfile(path, customRegistry)
}

// WriteGathererTextfile dumps g to path in the node-exporter textfile format.
func WriteGathererTextfile(path string, g prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteTextfile, err)
	}
	return nil
}

// Default returns the manager backing the package-level functions.
func Default() *Manager {
	return globalManager
}
