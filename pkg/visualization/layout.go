package visualization

import (
	"errors"
	"fmt"

	"github.com/dd0wney/cluso-mindmap/pkg/graph"
	"github.com/dd0wney/cluso-mindmap/pkg/logging"
	"github.com/dd0wney/cluso-mindmap/pkg/validation"
)

var (
	ErrUnknownStrategy  = errors.New("unknown layout strategy")
	ErrInvalidDirection = errors.New("invalid layout direction")
)

// Strategies lists the names New accepts.
func Strategies() []string {
	return []string{StrategyHierarchical, StrategyRadial, StrategyForce}
}

// New returns the layout registered under name. Zero-valued tuning fields
// fall back to DefaultConfig.
func New(name string, cfg Config) (Layout, error) {
	cfg = cfg.withDefaults()

	switch name {
	case StrategyHierarchical:
		if cfg.Direction != DirectionTB && cfg.Direction != DirectionLR {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDirection, cfg.Direction)
		}
		return NewHierarchicalLayout(cfg), nil
	case StrategyRadial:
		return NewRadialLayout(cfg), nil
	case StrategyForce:
		return NewForceDirectedLayout(cfg), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	c.Direction = validation.DefaultOr(c.Direction, d.Direction)
	c.NodeSep = validation.DefaultOr(c.NodeSep, d.NodeSep)
	c.RankSep = validation.DefaultOr(c.RankSep, d.RankSep)
	c.InnerRadius = validation.DefaultOr(c.InnerRadius, d.InnerRadius)
	c.OuterRadius = validation.DefaultOr(c.OuterRadius, d.OuterRadius)
	c.FallbackOffset = validation.DefaultOr(c.FallbackOffset, d.FallbackOffset)
	c.FallbackStep = validation.DefaultOr(c.FallbackStep, d.FallbackStep)
	c.Width = validation.DefaultOr(c.Width, d.Width)
	c.Height = validation.DefaultOr(c.Height, d.Height)
	c.Padding = validation.DefaultOr(c.Padding, d.Padding)
	c.Iterations = validation.DefaultOr(c.Iterations, d.Iterations)
	c.Logger = logging.OrNop(c.Logger)
	return c
}

func cloneNodes(nodes []graph.Node) []graph.Node {
	out := make([]graph.Node, len(nodes))
	copy(out, nodes)
	return out
}
