// Package positions remembers where the user dropped nodes so rebuilds can
// put them back.
package positions

import (
	"sync"

	"github.com/dd0wney/cluso-mindmap/pkg/graph"
)

// Lookup is the read side of the store handed to layout builders.
type Lookup interface {
	Lookup(id string) (graph.Position, bool)
}

// Store maps node ids to user-chosen positions. It only ever holds
// positions from completed drags and is safe for concurrent use.
type Store struct {
	mu   sync.RWMutex
	root string
	byID map[string]graph.Position
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{byID: make(map[string]graph.Position)}
}

// Record stores pos for id, replacing any earlier value.
func (s *Store) Record(id string, pos graph.Position) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID[id] = pos
}

// Lookup returns the stored position of id.
func (s *Store) Lookup(id string) (graph.Position, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	pos, ok := s.byID[id]
	return pos, ok
}

// Forget drops id.
func (s *Store) Forget(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byID, id)
}

// Len returns the number of remembered positions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}

// IDs returns the remembered ids in no particular order.
func (s *Store) IDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.byID))
	for id := range s.byID {
		ids = append(ids, id)
	}
	return ids
}

// Snapshot returns a copy of every remembered position.
func (s *Store) Snapshot() map[string]graph.Position {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]graph.Position, len(s.byID))
	for id, pos := range s.byID {
		out[id] = pos
	}
	return out
}

// BindRoot associates the store with the entity rooted at rootID. Switching
// to a different root clears every remembered position; rebinding the same
// root keeps them. It reports whether the store was cleared.
func (s *Store) BindRoot(rootID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.root == rootID {
		return false
	}
	s.root = rootID
	cleared := len(s.byID) > 0
	s.byID = make(map[string]graph.Position)
	return cleared
}

// Root returns the currently bound root id.
func (s *Store) Root() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.root
}

// Restore rebinds the store to rootID with exactly the given positions.
func (s *Store) Restore(rootID string, byID map[string]graph.Position) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.root = rootID
	s.byID = make(map[string]graph.Position, len(byID))
	for id, pos := range byID {
		s.byID[id] = pos
	}
}
