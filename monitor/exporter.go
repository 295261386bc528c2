package monitor

import (
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ExporterType defines the type of metrics exporter
type ExporterType string

const (
	// StandardExporterType uses the default in-process implementation
	StandardExporterType ExporterType = "standard"
	// PrometheusExporterType uses Prometheus metrics
	PrometheusExporterType ExporterType = "prometheus"
)

// Exporter receives cache and timing events for observability
type Exporter interface {
	// RecordHit records a cache hit
	RecordHit()
	// RecordMiss records a cache miss
	RecordMiss()
	// RecordEviction records a capacity eviction
	RecordEviction()
	// RecordExpiration records a TTL expiration
	RecordExpiration()
	// UpdateSize updates the current cache size
	UpdateSize(size int64)
	// ObserveDuration records the wall-clock duration of a named operation
	ObserveDuration(name string, d time.Duration)
	// Snapshot returns a copy of the current counters
	Snapshot() Snapshot
	// Reset resets all counters to zero
	Reset()
}

// Snapshot is a point-in-time copy of exporter counters
type Snapshot struct {
	Hits         int64
	Misses       int64
	Evictions    int64
	Expirations  int64
	Size         int64
	Observations int64
}

// StandardExporter is an atomics-backed Exporter with no external dependencies
type StandardExporter struct {
	hits         atomic.Int64
	misses       atomic.Int64
	evictions    atomic.Int64
	expirations  atomic.Int64
	size         atomic.Int64
	observations atomic.Int64
}

// NewStandardExporter creates a new standard exporter
func NewStandardExporter() *StandardExporter {
	return &StandardExporter{}
}

// RecordHit implements Exporter
func (e *StandardExporter) RecordHit() { e.hits.Add(1) }

// RecordMiss implements Exporter
func (e *StandardExporter) RecordMiss() { e.misses.Add(1) }

// RecordEviction implements Exporter
func (e *StandardExporter) RecordEviction() { e.evictions.Add(1) }

// RecordExpiration implements Exporter
func (e *StandardExporter) RecordExpiration() { e.expirations.Add(1) }

// UpdateSize implements Exporter
func (e *StandardExporter) UpdateSize(size int64) { e.size.Store(size) }

// ObserveDuration implements Exporter
func (e *StandardExporter) ObserveDuration(string, time.Duration) { e.observations.Add(1) }

// Snapshot implements Exporter
func (e *StandardExporter) Snapshot() Snapshot {
	return Snapshot{
		Hits:         e.hits.Load(),
		Misses:       e.misses.Load(),
		Evictions:    e.evictions.Load(),
		Expirations:  e.expirations.Load(),
		Size:         e.size.Load(),
		Observations: e.observations.Load(),
	}
}

// Reset implements Exporter
func (e *StandardExporter) Reset() {
	e.hits.Store(0)
	e.misses.Store(0)
	e.evictions.Store(0)
	e.expirations.Store(0)
	e.size.Store(0)
	e.observations.Store(0)
}

// PrometheusExporter implements Exporter using Prometheus metrics
type PrometheusExporter struct {
	hits        *prometheus.CounterVec
	misses      *prometheus.CounterVec
	evictions   *prometheus.CounterVec
	expirations *prometheus.CounterVec
	size        *prometheus.GaugeVec
	durations   *prometheus.HistogramVec

	// Internal counters for snapshot
	internal StandardExporter

	labels prometheus.Labels
}

// NewPrometheusExporter creates a new Prometheus exporter. Metrics are
// registered on reg; a nil reg falls back to the default registerer.
func NewPrometheusExporter(component string, reg prometheus.Registerer) *PrometheusExporter {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	labelNames := []string{"service", "component"}
	labels := prometheus.Labels{"service": "renderkit", "component": component}

	e := &PrometheusExporter{labels: labels}

	e.hits = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "renderkit_cache_hits_total",
			Help: "Total number of cache hits",
		},
		labelNames,
	)

	e.misses = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "renderkit_cache_misses_total",
			Help: "Total number of cache misses",
		},
		labelNames,
	)

	e.evictions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "renderkit_cache_evictions_total",
			Help: "Total number of capacity evictions",
		},
		labelNames,
	)

	e.expirations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "renderkit_cache_expirations_total",
			Help: "Total number of TTL expirations",
		},
		labelNames,
	)

	e.size = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "renderkit_cache_size",
			Help: "Current number of entries in the cache",
		},
		labelNames,
	)

	e.durations = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "renderkit_operation_duration_seconds",
			Help:    "Wall-clock duration of tracked operations",
			Buckets: []float64{.001, .004, .008, .016, .033, .066, .1, .25, .5, 1},
		},
		append(labelNames, "operation"),
	)

	reg.MustRegister(e.hits, e.misses, e.evictions, e.expirations, e.size, e.durations)

	return e
}

// RecordHit implements Exporter
func (e *PrometheusExporter) RecordHit() {
	e.hits.With(e.labels).Inc()
	e.internal.RecordHit()
}

// RecordMiss implements Exporter
func (e *PrometheusExporter) RecordMiss() {
	e.misses.With(e.labels).Inc()
	e.internal.RecordMiss()
}

// RecordEviction implements Exporter
func (e *PrometheusExporter) RecordEviction() {
	e.evictions.With(e.labels).Inc()
	e.internal.RecordEviction()
}

// RecordExpiration implements Exporter
func (e *PrometheusExporter) RecordExpiration() {
	e.expirations.With(e.labels).Inc()
	e.internal.RecordExpiration()
}

// UpdateSize implements Exporter
func (e *PrometheusExporter) UpdateSize(size int64) {
	e.size.With(e.labels).Set(float64(size))
	e.internal.UpdateSize(size)
}

// ObserveDuration implements Exporter
func (e *PrometheusExporter) ObserveDuration(name string, d time.Duration) {
	labels := prometheus.Labels{
		"service":   e.labels["service"],
		"component": e.labels["component"],
		"operation": name,
	}
	e.durations.With(labels).Observe(d.Seconds())
	e.internal.ObserveDuration(name, d)
}

// Snapshot implements Exporter
func (e *PrometheusExporter) Snapshot() Snapshot {
	return e.internal.Snapshot()
}

// Reset implements Exporter
func (e *PrometheusExporter) Reset() {
	// Prometheus counters are cumulative; only the internal counters reset
	e.internal.Reset()
}

// NewExporter creates an exporter of the given type
func NewExporter(exporterType ExporterType, component string, reg prometheus.Registerer) Exporter {
	switch exporterType {
	case PrometheusExporterType:
		return NewPrometheusExporter(component, reg)
	default:
		return NewStandardExporter()
	}
}
