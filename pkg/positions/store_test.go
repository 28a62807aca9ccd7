package positions

import (
	"sync"
	"testing"

	"github.com/dd0wney/cluso-mindmap/pkg/graph"
)

func TestStore_RecordLookupForget(t *testing.T) {
	s := NewStore()

	if _, ok := s.Lookup("n1"); ok {
		t.Fatal("Empty store should not have n1")
	}

	s.Record("n1", graph.Position{X: 500, Y: 500})
	s.Record("n1", graph.Position{X: 510, Y: 490})

	pos, ok := s.Lookup("n1")
	if !ok || pos != (graph.Position{X: 510, Y: 490}) {
		t.Errorf("Lookup(n1) = %+v, %v", pos, ok)
	}
	if s.Len() != 1 {
		t.Errorf("Len = %d, want 1", s.Len())
	}

	s.Forget("n1")
	if s.Len() != 0 {
		t.Errorf("Forget should remove n1, Len = %d", s.Len())
	}
}

func TestStore_BindRoot(t *testing.T) {
	s := NewStore()
	s.BindRoot("condition-1")
	s.Record("a", graph.Position{X: 1, Y: 2})

	if s.BindRoot("condition-1") {
		t.Error("Rebinding the same root should keep positions")
	}
	if s.Len() != 1 {
		t.Errorf("Positions lost on same-root rebind: %d", s.Len())
	}

	if !s.BindRoot("condition-2") {
		t.Error("Switching root should report clearing")
	}
	if s.Len() != 0 || s.Root() != "condition-2" {
		t.Errorf("Switching root should clear: len=%d root=%q", s.Len(), s.Root())
	}
}

func TestStore_RestoreUndoesBindRoot(t *testing.T) {
	s := NewStore()
	s.BindRoot("condition-1")
	s.Record("n1", graph.Position{X: 500, Y: 500})

	root, saved := s.Root(), s.Snapshot()
	s.BindRoot("condition-2")
	s.Restore(root, saved)

	if s.Root() != "condition-1" {
		t.Errorf("Root = %q, want condition-1", s.Root())
	}
	if pos, ok := s.Lookup("n1"); !ok || pos != (graph.Position{X: 500, Y: 500}) {
		t.Errorf("Lookup(n1) = %+v, %v after restore", pos, ok)
	}

	saved["n2"] = graph.Position{}
	if s.Len() != 1 {
		t.Error("Restore must copy the given positions")
	}
}

func TestStore_SnapshotIsCopy(t *testing.T) {
	s := NewStore()
	s.Record("a", graph.Position{X: 1})

	snap := s.Snapshot()
	snap["a"] = graph.Position{X: 99}
	snap["b"] = graph.Position{}

	if pos, _ := s.Lookup("a"); pos.X != 1 {
		t.Error("Snapshot mutation leaked into store")
	}
	if len(s.IDs()) != 1 {
		t.Errorf("IDs = %v", s.IDs())
	}
}

func TestStore_ConcurrentAccess(t *testing.T) {
	s := NewStore()
	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s.Record("n", graph.Position{X: float64(i), Y: float64(j)})
				s.Lookup("n")
				s.Snapshot()
			}
		}(i)
	}
	wg.Wait()

	if s.Len() != 1 {
		t.Errorf("Len = %d, want 1", s.Len())
	}
}
