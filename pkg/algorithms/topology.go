package algorithms

import "errors"

// ErrCyclic is returned when an ordering requires a DAG.
var ErrCyclic = errors.New("graph contains cycles, cannot perform topological sort")

// IsDAG checks if the graph is a Directed Acyclic Graph
func IsDAG(g *Digraph) bool {
	return !HasCycle(g)
}

// TopologicalSort returns nodes in topological order using Kahn's algorithm.
// Among nodes that become ready together, input order wins.
func TopologicalSort(g *Digraph) ([]string, error) {
	inDegree := make(map[string]int, len(g.order))
	for _, a := range g.arcs {
		inDegree[a.To]++
	}

	// Queue of nodes with in-degree 0
	queue := make([]string, 0)
	for _, id := range g.order {
		if inDegree[id] == 0 {
			queue = append(queue, id)
		}
	}

	sorted := make([]string, 0, len(g.order))
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		sorted = append(sorted, current)

		for _, next := range g.out[current] {
			inDegree[next]--
			if inDegree[next] == 0 {
				queue = append(queue, next)
			}
		}
	}

	if len(sorted) != len(g.order) {
		return nil, ErrCyclic
	}
	return sorted, nil
}

// LongestPathRanks assigns every node the length of the longest path reaching
// it from a source (in-degree 0). Cycles are broken first by dropping DFS
// back edges, so any graph can be ranked.
func LongestPathRanks(g *Digraph) map[string]int {
	dag := Acyclic(g)
	order, err := TopologicalSort(dag)
	if err != nil {
		// Acyclic guarantees a DAG; keep every node on rank 0 regardless.
		order = dag.order
	}

	rank := make(map[string]int, len(order))
	for _, id := range order {
		for _, next := range dag.out[id] {
			if rank[id]+1 > rank[next] {
				rank[next] = rank[id] + 1
			}
		}
	}
	for _, id := range order {
		if _, ok := rank[id]; !ok {
			rank[id] = 0
		}
	}
	return rank
}
