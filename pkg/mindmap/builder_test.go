package mindmap

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/dd0wney/cluso-mindmap/pkg/graph"
)

type mapLookup map[string]graph.Position

func (m mapLookup) Lookup(id string) (graph.Position, bool) {
	p, ok := m[id]
	return p, ok
}

// scenarioEntity has two categories (3 items, 1 item) and one domain with
// two sub-entities, the first carrying two related records.
func scenarioEntity() EntityData {
	return EntityData{
		ID:   "condition-1",
		Name: "Type 2 Diabetes",
		Kind: "condition",
		Categories: []Group{
			{Key: "symptoms", Label: "Symptoms", Items: []Record{
				{ID: "s1", Title: "Thirst"}, {ID: "s2", Title: "Fatigue"}, {ID: "s3", Title: "Blurred vision"},
			}},
			{Key: "causes", Items: []Record{{ID: "c1", Title: "Insulin resistance"}}},
		},
		Domains: []DomainGroup{
			{Key: "interventions", Label: "Interventions", Entities: []SubEntity{
				{ID: "i1", Title: "Plant-based diet", Related: []Record{{ID: "r1", Title: "Study A"}, {ID: "r2", Title: "Study B"}}},
				{ID: "i2", Title: "Walking"},
			}},
		},
	}
}

func nodeByID(t *testing.T, s *graph.Snapshot, id string) graph.Node {
	t.Helper()
	n, ok := s.Node(id)
	if !ok {
		t.Fatalf("Node %q not built", id)
	}
	return n
}

func TestBuild_RootOnly(t *testing.T) {
	b := NewBuilder(DefaultConfig())
	snap, stats, err := b.Build(scenarioEntity(), nil, nil)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if len(snap.Nodes) != 4 || len(snap.Edges) != 3 {
		t.Fatalf("Expected 4 nodes and 3 edges, got %d and %d", len(snap.Nodes), len(snap.Edges))
	}
	if stats.Nodes != 4 || stats.Edges != 3 {
		t.Errorf("Stats = %+v", stats)
	}

	root := nodeByID(t, snap, "condition-1")
	if root.Position != (graph.Position{}) || root.Data.Level != 0 || !root.Data.Center {
		t.Errorf("Unexpected root %+v", root)
	}
	if root.Data.ChildCount != 3 || !root.Data.Expandable || !root.Data.Expanded {
		t.Errorf("Root data = %+v", root.Data)
	}

	want := []string{"category:symptoms", "category:causes", "domain:interventions"}
	if got := snap.Hierarchy.Children("condition-1"); !reflect.DeepEqual(got, want) {
		t.Errorf("Root children = %v, want %v", got, want)
	}
}

func TestBuild_ExpandAddsChildren(t *testing.T) {
	b := NewBuilder(DefaultConfig())
	entity := scenarioEntity()

	snap, _, err := b.Build(entity, graph.NewExpansionState(entity.ID, "category:symptoms"), nil)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if len(snap.Nodes) != 7 || len(snap.Edges) != 6 {
		t.Fatalf("Expected 7 nodes and 6 edges, got %d and %d", len(snap.Nodes), len(snap.Edges))
	}

	branch := nodeByID(t, snap, "category:symptoms")
	if !branch.Data.Expanded || branch.Data.ChildCount != 3 {
		t.Errorf("Branch data = %+v", branch.Data)
	}

	item := nodeByID(t, snap, "category:symptoms:item:s2")
	if item.Data.Level != 2 || item.Data.ParentID != "category:symptoms" || item.Type != graph.KindSection {
		t.Errorf("Unexpected item %+v", item)
	}

	for _, e := range snap.Edges {
		if e.Target != item.ID {
			continue
		}
		if !e.Data.Dashed || e.Data.Color != branch.Data.Color || e.Data.RelationshipType != graph.RelationCategory {
			t.Errorf("Item edge data = %+v", e.Data)
		}
		if e.ID != "edge:category:symptoms->category:symptoms:item:s2" {
			t.Errorf("Edge id = %q", e.ID)
		}
	}
}

func TestBuild_ThirdLevel(t *testing.T) {
	b := NewBuilder(DefaultConfig())
	entity := scenarioEntity()

	snap, _, err := b.BuildAll(entity, nil)
	if err != nil {
		t.Fatalf("BuildAll failed: %v", err)
	}
	// root + 3 branches + 4 category items + 2 sub-entities + 2 related
	if len(snap.Nodes) != 12 || len(snap.Edges) != 11 {
		t.Fatalf("Expected 12 nodes and 11 edges, got %d and %d", len(snap.Nodes), len(snap.Edges))
	}

	detail := nodeByID(t, snap, "domain:interventions:entity:i1:related:r1")
	if detail.Data.Level != 3 || detail.Type != graph.KindDetail {
		t.Errorf("Unexpected detail %+v", detail)
	}

	sub := nodeByID(t, snap, "domain:interventions:entity:i2")
	if sub.Data.Expandable || sub.Data.ChildCount != 0 {
		t.Errorf("Sub-entity without related records should not be expandable: %+v", sub.Data)
	}
}

func TestBuild_LevelRadius(t *testing.T) {
	entity := EntityData{ID: "e", Name: "E", Categories: []Group{{Key: "overview", Items: []Record{{ID: "a"}}}}}

	snap, _, err := NewBuilder(DefaultConfig()).BuildAll(entity, nil)
	if err != nil {
		t.Fatalf("BuildAll failed: %v", err)
	}

	// A single category sits at the midpoint of 100°-260°, i.e. straight left.
	branch := nodeByID(t, snap, "category:overview")
	if math.Abs(branch.Position.X+380) > 1e-6 || math.Abs(branch.Position.Y) > 1e-6 {
		t.Errorf("Branch at %+v, want (-380, 0)", branch.Position)
	}
	item := nodeByID(t, snap, "category:overview:item:a")
	if math.Abs(item.Position.X+620) > 1e-6 || math.Abs(item.Position.Y) > 1e-6 {
		t.Errorf("Item at %+v, want (-620, 0)", item.Position)
	}
}

func TestBuild_ZeroBranches(t *testing.T) {
	snap, _, err := NewBuilder(DefaultConfig()).Build(EntityData{ID: "lonely", Name: "Lonely"}, nil, nil)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if len(snap.Nodes) != 1 || len(snap.Edges) != 0 {
		t.Fatalf("Expected a single node, got %d nodes %d edges", len(snap.Nodes), len(snap.Edges))
	}
	if snap.Nodes[0].Data.Expandable {
		t.Error("Root without branches should not be expandable")
	}
}

func TestBuild_EmptyGroupAndUnknownKind(t *testing.T) {
	entity := EntityData{ID: "e", Name: "E", Categories: []Group{{Key: "astrology"}}}

	snap, _, err := NewBuilder(DefaultConfig()).Build(entity, nil, nil)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	n := nodeByID(t, snap, "category:astrology")
	if n.Data.Expandable || n.Data.ChildCount != 0 {
		t.Errorf("Empty group should not be expandable: %+v", n.Data)
	}
	if n.Data.Color != DefaultPalette().Default.Color || n.Data.Label != "astrology" {
		t.Errorf("Unknown kind should use the default style and key label: %+v", n.Data)
	}
	if n.Position.X >= 0 {
		t.Errorf("Category branches belong on the left, got %+v", n.Position)
	}
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name    string
		entity  EntityData
		wantErr error
		wantMsg string
	}{
		{
			name:    "missing root id",
			entity:  EntityData{Name: "No id"},
			wantMsg: "ID: field is required",
		},
		{
			name: "missing record id",
			entity: EntityData{ID: "e", Name: "E", Categories: []Group{
				{Key: "symptoms", Items: []Record{{Title: "no id"}}},
			}},
			wantMsg: "Categories[0].Items[0].ID: field is required",
		},
		{
			name: "duplicate branch key",
			entity: EntityData{ID: "e", Name: "E", Categories: []Group{
				{Key: "symptoms"}, {Key: "symptoms"},
			}},
			wantErr: graph.ErrDuplicateID,
		},
		{
			name: "duplicate item id",
			entity: EntityData{ID: "e", Name: "E", Categories: []Group{
				{Key: "symptoms", Items: []Record{{ID: "x"}, {ID: "x"}}},
			}},
			wantErr: graph.ErrDuplicateID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := NewBuilder(DefaultConfig()).BuildAll(tt.entity, nil)
			if err == nil {
				t.Fatal("Expected an error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
			if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Error %q should contain %q", err, tt.wantMsg)
			}
		})
	}
}

func TestBuild_Deterministic(t *testing.T) {
	b := NewBuilder(DefaultConfig())
	entity := scenarioEntity()
	expansion := graph.NewExpansionState(entity.ID, ExpandableIDs(entity)...)

	first, _, err := b.Build(entity, expansion, mapLookup{})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	second, _, _ := b.Build(entity, expansion, mapLookup{})

	if !reflect.DeepEqual(first.Nodes, second.Nodes) || !reflect.DeepEqual(first.Edges, second.Edges) {
		t.Error("Identical inputs produced different snapshots")
	}
}

func TestBuild_SeedsRememberedPositions(t *testing.T) {
	entity := scenarioEntity()
	lookup := mapLookup{"category:causes": {X: 500, Y: 500}}

	snap, stats, err := NewBuilder(DefaultConfig()).Build(entity, graph.NewExpansionState(entity.ID, "category:causes"), lookup)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if got := nodeByID(t, snap, "category:causes").Position; got != (graph.Position{X: 500, Y: 500}) {
		t.Errorf("Seeded branch at %+v, want (500, 500)", got)
	}
	if stats.Seeded != 1 {
		t.Errorf("Seeded = %d, want 1", stats.Seeded)
	}

	// The lone child fans out along the seeded branch's direction (45°).
	child := nodeByID(t, snap, "category:causes:item:c1")
	if child.Position.X <= 500 || child.Position.Y <= 500 {
		t.Errorf("Child of seeded branch at %+v, expected beyond (500, 500)", child.Position)
	}
}

func TestBuild_FallbackPlacement(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxSearchArc = 0
	cfg.RadiusIncrement = 0
	cfg.ChildFan = Fan{PerItem: 0.001, Max: 0.001}

	entity := EntityData{ID: "e", Name: "E", Categories: []Group{
		{Key: "symptoms", Items: []Record{{ID: "a"}, {ID: "b"}, {ID: "c"}}},
	}}

	snap, stats, err := NewBuilder(cfg).BuildAll(entity, nil)
	if err != nil {
		t.Fatalf("BuildAll should absorb placement failures: %v", err)
	}
	if len(snap.Nodes) != 5 {
		t.Errorf("Expected 5 nodes, got %d", len(snap.Nodes))
	}
	if stats.Fallbacks != 2 || stats.RadiusRetries != 2 {
		t.Errorf("Stats = %+v, want 2 fallbacks and 2 retries", stats)
	}
}

func TestExpandableIDs(t *testing.T) {
	got := ExpandableIDs(scenarioEntity())
	want := []string{"category:symptoms", "category:causes", "domain:interventions", "domain:interventions:entity:i1"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExpandableIDs = %v, want %v", got, want)
	}
}
