package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initLayoutMetrics() {
	r.CollisionIterations = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "mindmap_collision_iterations",
			Help:    "Passes the collision resolver needed per run",
			Buckets: []float64{1, 2, 5, 10, 25, 50, 100},
		},
	)

	r.CollisionUnresolvedTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "mindmap_collision_unresolved_total",
			Help: "Overlapping pairs left when the resolver hit its iteration cap",
		},
	)

	r.PlacementFallbacksTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "mindmap_placement_fallbacks_total",
			Help: "Nodes left at their preferred point after the angular search failed",
		},
	)

	r.PlacementRetriesTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "mindmap_placement_retries_total",
			Help: "Angular searches repeated at the increased radius",
		},
	)
}
