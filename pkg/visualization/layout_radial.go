package visualization

import (
	"math"

	"github.com/dd0wney/cluso-mindmap/pkg/algorithms"
	"github.com/dd0wney/cluso-mindmap/pkg/graph"
	"github.com/dd0wney/cluso-mindmap/pkg/logging"
)

// RadialLayout places a centre node at the origin with its direct
// neighbours on an inner ring and their neighbours on an outer ring.
type RadialLayout struct {
	config Config
}

// NewRadialLayout creates a new radial layout
func NewRadialLayout(config Config) *RadialLayout {
	return &RadialLayout{config: config.withDefaults()}
}

// Apply computes the two rings. Nodes more than two undirected hops from the
// centre, or unreachable, are stacked at the fallback offset.
func (rl *RadialLayout) Apply(nodes []graph.Node, edges []graph.Edge) ([]graph.Node, error) {
	out := cloneNodes(nodes)
	if len(out) == 0 {
		return out, nil
	}

	centre := centreID(out)
	g := algorithms.NewDigraph(nodes, edges)
	tiers, err := algorithms.KHopNeighbours(g, centre, algorithms.DefaultKHopOptions())
	if err != nil {
		return nil, err
	}

	slot := map[string]graph.Position{centre: {}}
	ring(slot, tiers.ByHop[1], rl.config.InnerRadius)
	ring(slot, tiers.ByHop[2], rl.config.OuterRadius)

	fallback := 0
	for i := range out {
		pos, ok := slot[out[i].ID]
		if !ok {
			pos = graph.Position{
				X: rl.config.FallbackOffset.X,
				Y: rl.config.FallbackOffset.Y + float64(fallback)*rl.config.FallbackStep,
			}
			fallback++
		}
		out[i].Position = pos
	}

	rl.config.Logger.Debug("radial layout applied",
		logging.NodeID(centre),
		logging.Int("inner", len(tiers.ByHop[1])),
		logging.Int("outer", len(tiers.ByHop[2])),
		logging.Int("fallback", fallback))
	return out, nil
}

// centreID returns the node flagged as centre, or the first node.
func centreID(nodes []graph.Node) string {
	for _, n := range nodes {
		if n.Data.Center {
			return n.ID
		}
	}
	return nodes[0].ID
}

func ring(slot map[string]graph.Position, ids []string, radius float64) {
	if len(ids) == 0 {
		return
	}
	step := 2 * math.Pi / float64(len(ids))
	for i, id := range ids {
		angle := float64(i) * step
		slot[id] = graph.Position{
			X: radius * math.Cos(angle),
			Y: radius * math.Sin(angle),
		}
	}
}
