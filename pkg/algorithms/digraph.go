package algorithms

import "github.com/dd0wney/cluso-mindmap/pkg/graph"

// NeighborDirection selects which edges a traversal follows.
type NeighborDirection int

const (
	DirectionOut NeighborDirection = iota
	DirectionIn
	DirectionBoth
)

// Arc is a directed edge between two node ids.
type Arc struct {
	From, To string
}

// Digraph is an adjacency view over a node/edge snapshot. Iteration order
// always follows the input order so every algorithm here is deterministic.
type Digraph struct {
	order []string
	index map[string]int
	out   map[string][]string
	in    map[string][]string
	arcs  []Arc
}

// NewDigraph builds the adjacency for nodes and edges. Edges whose endpoints
// are not among nodes are skipped, as are repeated arcs.
func NewDigraph(nodes []graph.Node, edges []graph.Edge) *Digraph {
	ids := make([]string, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID
	}
	arcs := make([]Arc, len(edges))
	for i, e := range edges {
		arcs[i] = Arc{From: e.Source, To: e.Target}
	}
	return newDigraph(ids, arcs)
}

func newDigraph(ids []string, arcs []Arc) *Digraph {
	g := &Digraph{
		order: make([]string, 0, len(ids)),
		index: make(map[string]int, len(ids)),
		out:   make(map[string][]string),
		in:    make(map[string][]string),
	}
	for _, id := range ids {
		if _, dup := g.index[id]; dup {
			continue
		}
		g.index[id] = len(g.order)
		g.order = append(g.order, id)
	}

	seen := make(map[Arc]bool, len(arcs))
	for _, a := range arcs {
		if !g.Has(a.From) || !g.Has(a.To) || seen[a] {
			continue
		}
		seen[a] = true
		g.arcs = append(g.arcs, a)
		g.out[a.From] = append(g.out[a.From], a.To)
		g.in[a.To] = append(g.in[a.To], a.From)
	}
	return g
}

// Nodes returns the node ids in input order.
func (g *Digraph) Nodes() []string { return g.order }

// Arcs returns the arcs in input order.
func (g *Digraph) Arcs() []Arc { return g.arcs }

// Has reports whether id is a node of g.
func (g *Digraph) Has(id string) bool {
	_, ok := g.index[id]
	return ok
}

// Index returns the input position of id, or -1.
func (g *Digraph) Index(id string) int {
	if i, ok := g.index[id]; ok {
		return i
	}
	return -1
}

// Neighbors returns the ids adjacent to id in the given direction.
func (g *Digraph) Neighbors(id string, dir NeighborDirection) []string {
	switch dir {
	case DirectionOut:
		return g.out[id]
	case DirectionIn:
		return g.in[id]
	default:
		both := make([]string, 0, len(g.out[id])+len(g.in[id]))
		both = append(both, g.out[id]...)
		return append(both, g.in[id]...)
	}
}

// Without returns a copy of g minus the given arcs.
func (g *Digraph) Without(drop []Arc) *Digraph {
	skip := make(map[Arc]bool, len(drop))
	for _, a := range drop {
		skip[a] = true
	}
	kept := make([]Arc, 0, len(g.arcs))
	for _, a := range g.arcs {
		if !skip[a] {
			kept = append(kept, a)
		}
	}
	return newDigraph(g.order, kept)
}
