package algorithms

import "fmt"

// KHopOptions configures the k-hop neighbourhood traversal.
type KHopOptions struct {
	MaxHops   int // must be >= 1
	Direction NeighborDirection
}

// KHopResult holds the BFS neighbourhood of a source node.
type KHopResult struct {
	Source    string
	ByHop     map[int][]string // hop distance → node IDs at that distance, in discovery order
	Distances map[string]int   // node ID → shortest hop count
}

// DefaultKHopOptions returns two undirected hops.
func DefaultKHopOptions() KHopOptions {
	return KHopOptions{
		MaxHops:   2,
		Direction: DirectionBoth,
	}
}

type bfsEntry struct {
	id  string
	hop int
}

// KHopNeighbours performs a BFS from source up to MaxHops levels, returning
// all discovered nodes grouped by distance. The source is never included.
func KHopNeighbours(g *Digraph, source string, opts KHopOptions) (*KHopResult, error) {
	if opts.MaxHops < 1 {
		return nil, fmt.Errorf("MaxHops must be >= 1, got %d", opts.MaxHops)
	}
	if !g.Has(source) {
		return nil, fmt.Errorf("source %q not in graph", source)
	}

	visited := map[string]bool{source: true}
	result := &KHopResult{
		Source:    source,
		ByHop:     make(map[int][]string),
		Distances: make(map[string]int),
	}

	queue := []bfsEntry{{id: source, hop: 0}}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current.hop >= opts.MaxHops {
			continue
		}
		nextHop := current.hop + 1

		for _, next := range g.Neighbors(current.id, opts.Direction) {
			if visited[next] {
				continue
			}
			visited[next] = true
			result.Distances[next] = nextHop
			result.ByHop[nextHop] = append(result.ByHop[nextHop], next)
			queue = append(queue, bfsEntry{id: next, hop: nextHop})
		}
	}

	return result, nil
}

// TotalReachable returns how many nodes the traversal found.
func (r *KHopResult) TotalReachable() int {
	return len(r.Distances)
}
