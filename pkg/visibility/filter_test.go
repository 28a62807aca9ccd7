package visibility

import (
	"testing"

	"github.com/dd0wney/cluso-mindmap/pkg/graph"
)

// fixture is root -> {cat, dom}, cat -> s1, dom -> e1 -> d1
func fixture() ([]graph.Node, []graph.Edge) {
	node := func(id, parent string, level int) graph.Node {
		return graph.Node{ID: id, Data: graph.NodeData{ParentID: parent, Level: level}}
	}
	nodes := []graph.Node{
		node("root", "", 0),
		node("cat", "root", 1),
		node("dom", "root", 1),
		node("s1", "cat", 2),
		node("e1", "dom", 2),
		node("d1", "e1", 3),
	}
	edges := make([]graph.Edge, 0, len(nodes)-1)
	for _, n := range nodes[1:] {
		edges = append(edges, graph.Edge{ID: graph.EdgeID(n.Data.ParentID, n.ID), Source: n.Data.ParentID, Target: n.ID})
	}
	return nodes, edges
}

func ids(nodes []graph.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.ID
	}
	return out
}

func TestFilter(t *testing.T) {
	nodes, edges := fixture()

	tests := []struct {
		name      string
		open      []string
		wantNodes int
		wantEdges int
	}{
		{"root only", nil, 3, 2},
		{"category open", []string{"cat"}, 4, 3},
		{"domain open", []string{"dom"}, 4, 3},
		{"all open", []string{"cat", "dom", "e1"}, 6, 5},
		{"child open under closed parent", []string{"e1"}, 4, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Filter(nodes, edges, graph.NewExpansionState("root", tt.open...))
			if len(res.Nodes) != tt.wantNodes || len(res.Edges) != tt.wantEdges {
				t.Errorf("Got %d nodes %v and %d edges, want %d and %d",
					len(res.Nodes), ids(res.Nodes), len(res.Edges), tt.wantNodes, tt.wantEdges)
			}
		})
	}
}

func TestFilter_IndependentOfNodeOrder(t *testing.T) {
	nodes, edges := fixture()
	reversed := make([]graph.Node, len(nodes))
	for i, n := range nodes {
		reversed[len(nodes)-1-i] = n
	}

	for _, open := range [][]string{nil, {"cat"}, {"dom", "e1"}, {"cat", "dom", "e1"}, {"e1"}} {
		exp := graph.NewExpansionState("root", open...)
		inOrder := Filter(nodes, edges, exp)
		backwards := Filter(reversed, edges, exp)

		if len(inOrder.Nodes) != len(backwards.Nodes) || len(inOrder.Edges) != len(backwards.Edges) {
			t.Errorf("Open %v: build order gives %v, reversed gives %v",
				open, ids(inOrder.Nodes), ids(backwards.Nodes))
		}
	}
}

func TestFilter_EdgesNeedBothEndpoints(t *testing.T) {
	nodes, edges := fixture()
	res := Filter(nodes, edges, graph.NewExpansionState("root", "dom", "e1"))

	shown := make(map[string]bool)
	for _, n := range res.Nodes {
		shown[n.ID] = true
	}
	for _, e := range res.Edges {
		if !shown[e.Source] || !shown[e.Target] {
			t.Errorf("Edge %s has a hidden endpoint", e.ID)
		}
	}
}

func TestFilter_NilExpansion(t *testing.T) {
	nodes, edges := fixture()
	res := Filter(nodes, edges, nil)
	if len(res.Nodes) != 1 || res.Nodes[0].ID != "root" || len(res.Edges) != 0 {
		t.Errorf("Nil expansion should show only the root, got %v", ids(res.Nodes))
	}
}

func TestMark(t *testing.T) {
	nodes, edges := fixture()
	res := Mark(nodes, edges, graph.NewExpansionState("root", "cat"))

	if len(res.Nodes) != len(nodes) || len(res.Edges) != len(edges) {
		t.Fatal("Mark must keep every element")
	}

	hidden := 0
	for _, n := range res.Nodes {
		if n.Hidden {
			hidden++
		}
	}
	if hidden != 2 {
		t.Errorf("Expected e1 and d1 hidden, got %d hidden", hidden)
	}
	for _, n := range nodes {
		if n.Hidden {
			t.Error("Mark must not modify its input")
		}
	}
}
