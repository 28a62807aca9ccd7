// Package visibility derives the visible subgraph of a build from the
// current expansion state.
package visibility

import "github.com/dd0wney/cluso-mindmap/pkg/graph"

// Result is the visible part of a snapshot.
type Result struct {
	Nodes []graph.Node
	Edges []graph.Edge
}

// Expansion reports which nodes have their children disclosed.
type Expansion interface {
	IsExpanded(id string) bool
}

// visible reports whether n is shown: level-0 nodes always are, any other
// node only while its parent is expanded.
func visible(n graph.Node, expansion Expansion) bool {
	if n.Data.Level == 0 {
		return true
	}
	return expansion != nil && expansion.IsExpanded(n.Data.ParentID)
}

// Filter drops hidden nodes and any edge touching one. Inputs are not
// modified; relative order is preserved.
func Filter(nodes []graph.Node, edges []graph.Edge, expansion Expansion) Result {
	shown := make(map[string]bool, len(nodes))
	out := Result{
		Nodes: make([]graph.Node, 0, len(nodes)),
		Edges: make([]graph.Edge, 0, len(edges)),
	}

	for _, n := range nodes {
		if visible(n, expansion) {
			shown[n.ID] = true
			out.Nodes = append(out.Nodes, n)
		}
	}
	for _, e := range edges {
		if shown[e.Source] && shown[e.Target] {
			out.Edges = append(out.Edges, e)
		}
	}
	return out
}

// Mark returns copies of every node and edge with Hidden set instead of
// removing them.
func Mark(nodes []graph.Node, edges []graph.Edge, expansion Expansion) Result {
	out := Result{
		Nodes: make([]graph.Node, len(nodes)),
		Edges: make([]graph.Edge, len(edges)),
	}
	shown := make(map[string]bool, len(nodes))

	for i, n := range nodes {
		n.Hidden = !visible(n, expansion)
		shown[n.ID] = !n.Hidden
		out.Nodes[i] = n
	}
	for i, e := range edges {
		e.Hidden = !(shown[e.Source] && shown[e.Target])
		out.Edges[i] = e
	}
	return out
}
