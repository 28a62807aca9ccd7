package graph

// NewNode creates a node with the given id, kind and label.
func NewNode(id string, kind NodeKind, label string) (Node, error) {
	if id == "" {
		return Node{}, NewError("NewNode").Node(id).Context("label %q", label).Cause(ErrMissingID).Err()
	}
	return Node{
		ID:   id,
		Type: kind,
		Data: NodeData{Label: label},
	}, nil
}

// NewEdge creates the edge source -> target with a derived id.
func NewEdge(source, target string, data EdgeData) (Edge, error) {
	if source == "" || target == "" {
		return Edge{}, NewError("NewEdge").Edge("").Context("%q -> %q", source, target).Cause(ErrMissingID).Err()
	}
	return Edge{
		ID:     EdgeID(source, target),
		Source: source,
		Target: target,
		Data:   data,
	}, nil
}

// EdgeID returns the canonical id of the edge source -> target.
func EdgeID(source, target string) string {
	return "edge:" + source + "->" + target
}

// Snapshot accumulates the nodes, edges and hierarchy of one build pass.
// Every insertion checks identity invariants so downstream stages can
// rely on unique ids and resolvable references.
type Snapshot struct {
	Nodes     []Node
	Edges     []Edge
	Hierarchy Hierarchy

	index     map[string]int
	edgeIndex map[string]bool
}

// NewSnapshot creates an empty snapshot.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Nodes:     make([]Node, 0),
		Edges:     make([]Edge, 0),
		Hierarchy: make(Hierarchy),
		index:     make(map[string]int),
		edgeIndex: make(map[string]bool),
	}
}

// AddNode appends n. A non-empty ParentID must name a node already in the
// snapshot; the child is then recorded in the hierarchy.
func (s *Snapshot) AddNode(n Node) error {
	if n.ID == "" {
		return NewError("AddNode").Node(n.ID).Context("label %q", n.Data.Label).Cause(ErrMissingID).Err()
	}
	if _, exists := s.index[n.ID]; exists {
		return NewError("AddNode").Node(n.ID).Cause(ErrDuplicateID).Err()
	}
	if n.Data.ParentID != "" {
		if _, ok := s.index[n.Data.ParentID]; !ok {
			return NewError("AddNode").Node(n.ID).Context("parent %q", n.Data.ParentID).Cause(ErrDanglingParent).Err()
		}
	}

	s.index[n.ID] = len(s.Nodes)
	s.Nodes = append(s.Nodes, n)
	if n.Data.ParentID != "" {
		s.Hierarchy.Add(n.Data.ParentID, n.ID)
	}
	return nil
}

// AddEdge appends e after checking both endpoints exist.
func (s *Snapshot) AddEdge(e Edge) error {
	if e.ID == "" {
		return NewError("AddEdge").Edge(e.ID).Cause(ErrMissingID).Err()
	}
	if s.edgeIndex[e.ID] {
		return NewError("AddEdge").Edge(e.ID).Cause(ErrDuplicateID).Err()
	}
	if _, ok := s.index[e.Source]; !ok {
		return NewError("AddEdge").Edge(e.ID).Context("source %q", e.Source).Cause(ErrDanglingEndpoint).Err()
	}
	if _, ok := s.index[e.Target]; !ok {
		return NewError("AddEdge").Edge(e.ID).Context("target %q", e.Target).Cause(ErrDanglingEndpoint).Err()
	}

	s.edgeIndex[e.ID] = true
	s.Edges = append(s.Edges, e)
	return nil
}

// Node returns the node with the given id.
func (s *Snapshot) Node(id string) (Node, bool) {
	i, ok := s.index[id]
	if !ok {
		return Node{}, false
	}
	return s.Nodes[i], true
}

// Has reports whether id is in the snapshot.
func (s *Snapshot) Has(id string) bool {
	_, ok := s.index[id]
	return ok
}

// Update replaces the node stored under n.ID.
func (s *Snapshot) Update(n Node) error {
	i, ok := s.index[n.ID]
	if !ok {
		return NewError("Update").Node(n.ID).Cause(ErrUnknownNode).Err()
	}
	s.Nodes[i] = n
	return nil
}

// SetNodes replaces every node position and flag from nodes, matched by id.
// Ids not in the snapshot are ignored.
func (s *Snapshot) SetNodes(nodes []Node) {
	for _, n := range nodes {
		if i, ok := s.index[n.ID]; ok {
			s.Nodes[i] = n
		}
	}
}

// Validate re-checks every identity invariant of the snapshot.
func Validate(nodes []Node, edges []Edge) error {
	s := NewSnapshot()
	for _, n := range nodes {
		parent := n.Data.ParentID
		n.Data.ParentID = ""
		if err := s.AddNode(n); err != nil {
			return err
		}
		s.Nodes[len(s.Nodes)-1].Data.ParentID = parent
	}
	for _, n := range s.Nodes {
		if n.Data.ParentID != "" && !s.Has(n.Data.ParentID) {
			return NewError("Validate").Node(n.ID).Context("parent %q", n.Data.ParentID).Cause(ErrDanglingParent).Err()
		}
	}
	for _, e := range edges {
		if err := s.AddEdge(e); err != nil {
			return err
		}
	}
	return nil
}
