package visualization

import (
	"encoding/json"
	"math"

	"github.com/dd0wney/cluso-mindmap/pkg/graph"
)

// normalizePositions scales positions to fit within bounds
func normalizePositions(positions []graph.Position, width, height, padding float64) []graph.Position {
	if len(positions) == 0 {
		return positions
	}

	// Find bounds
	minX, maxX := math.MaxFloat64, -math.MaxFloat64
	minY, maxY := math.MaxFloat64, -math.MaxFloat64

	for _, pos := range positions {
		minX = math.Min(minX, pos.X)
		maxX = math.Max(maxX, pos.X)
		minY = math.Min(minY, pos.Y)
		maxY = math.Max(maxY, pos.Y)
	}

	rangeX := maxX - minX
	rangeY := maxY - minY

	if rangeX < 0.01 {
		rangeX = 1
	}
	if rangeY < 0.01 {
		rangeY = 1
	}

	// Scale to fit bounds with padding
	targetWidth := width - 2*padding
	targetHeight := height - 2*padding

	normalized := make([]graph.Position, len(positions))
	for i, pos := range positions {
		normalized[i] = graph.Position{
			X: padding + ((pos.X-minX)/rangeX)*targetWidth,
			Y: padding + ((pos.Y-minY)/rangeY)*targetHeight,
		}
	}

	return normalized
}

// Document is the render contract handed to the drawing surface.
type Document struct {
	Nodes []graph.Node `json:"nodes"`
	Edges []graph.Edge `json:"edges"`
}

// Export encodes nodes and edges in the render contract.
func Export(nodes []graph.Node, edges []graph.Edge) ([]byte, error) {
	return json.Marshal(document(nodes, edges))
}

// ExportIndent is Export with indented output.
func ExportIndent(nodes []graph.Node, edges []graph.Edge) ([]byte, error) {
	return json.MarshalIndent(document(nodes, edges), "", "  ")
}

func document(nodes []graph.Node, edges []graph.Edge) Document {
	doc := Document{Nodes: nodes, Edges: edges}
	if doc.Nodes == nil {
		doc.Nodes = []graph.Node{}
	}
	if doc.Edges == nil {
		doc.Edges = []graph.Edge{}
	}
	return doc
}
