package algorithms

const (
	white = 0 // unvisited
	gray  = 1 // on the DFS stack
	black = 2 // finished
)

// BackEdges returns the arcs that close a cycle during a depth-first search
// rooted at each unvisited node in input order. Removing them leaves a DAG.
//
// Three-colour marking: reaching a GRAY node means the arc points back into
// the current recursion stack. Self-loops are always back edges.
func BackEdges(g *Digraph) []Arc {
	color := make(map[string]int, len(g.order))
	back := make([]Arc, 0)

	for _, id := range g.order {
		if color[id] == white {
			dfsBackEdges(g, id, color, &back)
		}
	}

	return back
}

func dfsBackEdges(g *Digraph, id string, color map[string]int, back *[]Arc) {
	color[id] = gray

	for _, next := range g.out[id] {
		switch color[next] {
		case white:
			dfsBackEdges(g, next, color, back)
		case gray:
			*back = append(*back, Arc{From: id, To: next})
		}
	}

	color[id] = black
}

// HasCycle reports whether g contains a directed cycle.
func HasCycle(g *Digraph) bool {
	return len(BackEdges(g)) > 0
}

// Acyclic returns g with its back edges removed.
func Acyclic(g *Digraph) *Digraph {
	back := BackEdges(g)
	if len(back) == 0 {
		return g
	}
	return g.Without(back)
}
