package visualization

import (
	"github.com/dd0wney/cluso-mindmap/pkg/graph"
	"github.com/dd0wney/cluso-mindmap/pkg/logging"
)

// Strategy names accepted by New.
const (
	StrategyHierarchical = "hierarchical"
	StrategyRadial       = "radial"
	StrategyForce        = "force"
)

// Hierarchical layout directions.
const (
	DirectionTB = "TB" // ranks flow top to bottom
	DirectionLR = "LR" // ranks flow left to right
)

// Config configures layout parameters
type Config struct {
	// Hierarchical
	Direction string  `yaml:"direction"`
	NodeSep   float64 `yaml:"node_sep"` // centre distance between neighbours in a rank
	RankSep   float64 `yaml:"rank_sep"` // centre distance between ranks

	// Radial
	InnerRadius    float64        `yaml:"inner_radius"`
	OuterRadius    float64        `yaml:"outer_radius"`
	FallbackOffset graph.Position `yaml:"fallback_offset"` // first slot for nodes outside both rings
	FallbackStep   float64        `yaml:"fallback_step"`   // Y spacing between fallback slots

	// Force
	Width      float64 `yaml:"width"`      // Canvas width
	Height     float64 `yaml:"height"`     // Canvas height
	Padding    float64 `yaml:"padding"`    // Padding from edges
	Iterations int     `yaml:"iterations"` // Number of iterations
	Seed       int64   `yaml:"seed"`

	Logger logging.Logger `yaml:"-"`
}

// DefaultConfig returns the layout tuning used by the dashboard canvas.
func DefaultConfig() Config {
	return Config{
		Direction:      DirectionTB,
		NodeSep:        200,
		RankSep:        150,
		InnerRadius:    300,
		OuterRadius:    550,
		FallbackOffset: graph.Position{X: 800, Y: -300},
		FallbackStep:   70,
		Width:          1600,
		Height:         1200,
		Padding:        50,
		Iterations:     50,
		Seed:           1,
	}
}

// Layout positions a node set. Implementations return a copy of nodes with
// every position assigned and never modify edges.
type Layout interface {
	Apply(nodes []graph.Node, edges []graph.Edge) ([]graph.Node, error)
}
