package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for the application
type Registry struct {
	// Build Metrics
	BuildsTotal   *prometheus.CounterVec
	BuildDuration *prometheus.HistogramVec
	VisibleNodes  prometheus.Gauge
	VisibleEdges  prometheus.Gauge

	// Layout quality Metrics
	CollisionIterations      prometheus.Histogram
	CollisionUnresolvedTotal prometheus.Counter
	PlacementFallbacksTotal  prometheus.Counter
	PlacementRetriesTotal    prometheus.Counter

	// Interaction Metrics
	DragEventsTotal       prometheus.Counter
	ExpansionTogglesTotal *prometheus.CounterVec

	registry *prometheus.Registry
}

var (
	// Global registry instance
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the global metrics registry
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		registry: reg,
	}

	// Initialize all metrics
	r.initBuildMetrics()
	r.initLayoutMetrics()
	r.initInteractionMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}
