package graph

// Hierarchy maps a node id to its direct children in creation order.
type Hierarchy map[string][]string

// Add appends child under parent.
func (h Hierarchy) Add(parent, child string) {
	h[parent] = append(h[parent], child)
}

// Children returns the direct children of id.
func (h Hierarchy) Children(id string) []string {
	return h[id]
}

// Parent returns the parent of id, if any.
func (h Hierarchy) Parent(id string) (string, bool) {
	for parent, children := range h {
		for _, c := range children {
			if c == id {
				return parent, true
			}
		}
	}
	return "", false
}

// Descendants returns every id reachable from id, breadth first.
// id itself is not included.
func (h Hierarchy) Descendants(id string) []string {
	visited := map[string]bool{id: true}
	result := make([]string, 0)
	queue := []string{id}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, child := range h[current] {
			if visited[child] {
				continue
			}
			visited[child] = true
			result = append(result, child)
			queue = append(queue, child)
		}
	}

	return result
}

// Clone returns a deep copy.
func (h Hierarchy) Clone() Hierarchy {
	out := make(Hierarchy, len(h))
	for parent, children := range h {
		out[parent] = append([]string(nil), children...)
	}
	return out
}
