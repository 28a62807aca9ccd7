package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initInteractionMetrics() {
	r.DragEventsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "mindmap_drag_events_total",
			Help: "Total number of completed node drags",
		},
	)

	r.ExpansionTogglesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "mindmap_expansion_toggles_total",
			Help: "Total number of expand and collapse actions",
		},
		[]string{"action"},
	)
}
