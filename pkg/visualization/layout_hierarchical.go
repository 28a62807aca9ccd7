package visualization

import (
	"math"
	"sort"

	"github.com/dd0wney/cluso-mindmap/pkg/algorithms"
	"github.com/dd0wney/cluso-mindmap/pkg/graph"
	"github.com/dd0wney/cluso-mindmap/pkg/logging"
)

// HierarchicalLayout arranges nodes in ranks by longest path from the sources
type HierarchicalLayout struct {
	config Config
}

// NewHierarchicalLayout creates a new hierarchical layout
func NewHierarchicalLayout(config Config) *HierarchicalLayout {
	return &HierarchicalLayout{config: config.withDefaults()}
}

// Apply ranks the nodes and spreads each rank evenly around the origin.
func (hl *HierarchicalLayout) Apply(nodes []graph.Node, edges []graph.Edge) ([]graph.Node, error) {
	out := cloneNodes(nodes)
	if len(out) == 0 {
		return out, nil
	}

	g := algorithms.NewDigraph(nodes, edges)
	dag := algorithms.Acyclic(g)
	ranks := algorithms.LongestPathRanks(dag)

	layers := hl.orderLayers(dag, ranks)

	slot := make(map[string]graph.Position, len(out))
	for r, layer := range layers {
		mid := float64(len(layer)-1) / 2
		for i, id := range layer {
			along := (float64(i) - mid) * hl.config.NodeSep
			across := float64(r) * hl.config.RankSep
			if hl.config.Direction == DirectionLR {
				slot[id] = graph.Position{X: across, Y: along}
			} else {
				slot[id] = graph.Position{X: along, Y: across}
			}
		}
	}

	target, source := graph.HandleTop, graph.HandleBottom
	if hl.config.Direction == DirectionLR {
		target, source = graph.HandleLeft, graph.HandleRight
	}
	for i := range out {
		out[i].Position = slot[out[i].ID]
		out[i].Data.TargetHandle = target
		out[i].Data.SourceHandle = source
	}

	hl.config.Logger.Debug("hierarchical layout applied",
		logging.Count(len(out)),
		logging.Int("ranks", len(layers)),
		logging.String("direction", hl.config.Direction))
	return out, nil
}

// orderLayers groups nodes by rank. Rank 0 keeps input order; every later
// rank is sorted by the mean slot of each node's predecessors in the rank
// above, ties and predecessor-less nodes falling back to input order.
func (hl *HierarchicalLayout) orderLayers(dag *algorithms.Digraph, ranks map[string]int) [][]string {
	depth := 0
	for _, r := range ranks {
		if r > depth {
			depth = r
		}
	}

	layers := make([][]string, depth+1)
	for _, id := range dag.Nodes() {
		layers[ranks[id]] = append(layers[ranks[id]], id)
	}

	slotOf := make(map[string]int)
	for r, layer := range layers {
		if r > 0 {
			key := make(map[string]float64, len(layer))
			for _, id := range layer {
				key[id] = barycenter(dag.Neighbors(id, algorithms.DirectionIn), slotOf)
			}
			sort.SliceStable(layer, func(i, j int) bool {
				return key[layer[i]] < key[layer[j]]
			})
		}
		for i, id := range layer {
			slotOf[id] = i
		}
	}
	return layers
}

func barycenter(preds []string, slotOf map[string]int) float64 {
	sum, n := 0.0, 0
	for _, p := range preds {
		if s, ok := slotOf[p]; ok {
			sum += float64(s)
			n++
		}
	}
	if n == 0 {
		return math.Inf(1)
	}
	return sum / float64(n)
}
