package graph

import "sort"

// ExpansionState is the set of node ids whose children are disclosed.
// The root it is bound to always reports as expanded.
type ExpansionState struct {
	root string
	open map[string]bool
}

// NewExpansionState creates an expansion state for the given root with the
// optional ids already open.
func NewExpansionState(root string, open ...string) *ExpansionState {
	s := &ExpansionState{root: root, open: make(map[string]bool, len(open))}
	for _, id := range open {
		s.Expand(id)
	}
	return s
}

// Root returns the id the state is bound to.
func (s *ExpansionState) Root() string {
	return s.root
}

// IsExpanded reports whether id is open. A nil state has nothing open.
func (s *ExpansionState) IsExpanded(id string) bool {
	if s == nil {
		return false
	}
	if id == s.root {
		return true
	}
	return s.open[id]
}

// Expand opens id.
func (s *ExpansionState) Expand(id string) {
	if id == "" || id == s.root {
		return
	}
	s.open[id] = true
}

// Collapse closes id and every descendant of id in h. Collapsing the root
// only closes its descendants.
func (s *ExpansionState) Collapse(id string, h Hierarchy) {
	if id != s.root {
		delete(s.open, id)
	}
	for _, d := range h.Descendants(id) {
		delete(s.open, d)
	}
}

// Toggle flips id and reports whether it is now expanded.
func (s *ExpansionState) Toggle(id string, h Hierarchy) bool {
	if s.IsExpanded(id) {
		s.Collapse(id, h)
		return id == s.root
	}
	s.Expand(id)
	return true
}

// Len returns the number of explicitly open ids (the root is not counted).
func (s *ExpansionState) Len() int {
	return len(s.open)
}

// IDs returns the explicitly open ids, sorted.
func (s *ExpansionState) IDs() []string {
	ids := make([]string, 0, len(s.open))
	for id := range s.open {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Clone returns an independent copy.
func (s *ExpansionState) Clone() *ExpansionState {
	return NewExpansionState(s.root, s.IDs()...)
}
