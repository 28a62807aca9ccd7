package collision

import (
	"github.com/dd0wney/cluso-mindmap/pkg/graph"
	"github.com/dd0wney/cluso-mindmap/pkg/logging"
)

// Options configures a resolver run
type Options struct {
	MaxIterations    int     `yaml:"max_iterations"`    // hard cap on full passes over all pairs
	OverlapThreshold float64 `yaml:"overlap_threshold"` // overlap tolerated on each axis
	Margin           float64 `yaml:"margin"`            // padding added around every node box

	// FixedIDs are never moved. Pairs where both nodes are fixed are ignored.
	FixedIDs map[string]bool `yaml:"-"`

	// SizeOf returns the footprint of a node; defaults to its kind's size.
	SizeOf func(graph.Node) graph.Size `yaml:"-"`

	Logger logging.Logger `yaml:"-"`
}

// DefaultOptions returns the tuning used by the mindmap canvas.
func DefaultOptions() Options {
	return Options{
		MaxIterations:    100,
		OverlapThreshold: 0,
		Margin:           12,
	}
}

// Fixed builds a FixedIDs set.
func Fixed(ids ...string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

func (o Options) withDefaults() Options {
	if o.MaxIterations <= 0 {
		o.MaxIterations = DefaultOptions().MaxIterations
	}
	if o.OverlapThreshold < 0 {
		o.OverlapThreshold = 0
	}
	if o.SizeOf == nil {
		o.SizeOf = graph.Node.Size
	}
	o.Logger = logging.OrNop(o.Logger)
	return o
}
