package metrics

import (
	"time"
)

// RecordBuild records a finished build and the size of the resulting view
func (r *Registry) RecordBuild(strategy, status string, duration time.Duration, visibleNodes, visibleEdges int) {
	r.BuildsTotal.WithLabelValues(strategy, status).Inc()
	r.BuildDuration.WithLabelValues(strategy).Observe(duration.Seconds())
	if status == "success" {
		r.VisibleNodes.Set(float64(visibleNodes))
		r.VisibleEdges.Set(float64(visibleEdges))
	}
}

// RecordCollision records one resolver run
func (r *Registry) RecordCollision(iterations, remaining int) {
	r.CollisionIterations.Observe(float64(iterations))
	if remaining > 0 {
		r.CollisionUnresolvedTotal.Add(float64(remaining))
	}
}

// RecordPlacement records how many placements needed a wider radius or fell back
func (r *Registry) RecordPlacement(retries, fallbacks int) {
	if retries > 0 {
		r.PlacementRetriesTotal.Add(float64(retries))
	}
	if fallbacks > 0 {
		r.PlacementFallbacksTotal.Add(float64(fallbacks))
	}
}

// RecordDrag records a completed drag
func (r *Registry) RecordDrag() {
	r.DragEventsTotal.Inc()
}

// RecordExpansion records an expand or collapse action
func (r *Registry) RecordExpansion(action string) {
	r.ExpansionTogglesTotal.WithLabelValues(action).Inc()
}
