package session

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/dd0wney/cluso-mindmap/pkg/collision"
	"github.com/dd0wney/cluso-mindmap/pkg/config"
	"github.com/dd0wney/cluso-mindmap/pkg/graph"
	"github.com/dd0wney/cluso-mindmap/pkg/logging"
	"github.com/dd0wney/cluso-mindmap/pkg/mindmap"
	"github.com/dd0wney/cluso-mindmap/pkg/visibility"
	"github.com/dd0wney/cluso-mindmap/pkg/visualization"
)

// rebuild recomputes the snapshot and view from the current entity,
// expansion and strategy. Callers hold s.mu.
func (s *Session) rebuild() error {
	id := uuid.NewString()
	log := s.logger.With(logging.BuildID(id), logging.Strategy(s.strategy), logging.RootID(s.entity.ID))
	timer := logging.StartTimer(log, "build")

	snap, stats, err := s.layout()
	if err != nil {
		elapsed := timer.EndError(err)
		s.metrics.RecordBuild(s.strategy, "error", elapsed, 0, 0)
		return fmt.Errorf("build %s: %w", id, err)
	}

	res := s.resolve(snap.Nodes)
	snap.SetNodes(res.Nodes)
	s.snap = snap
	s.refreshView()

	elapsed := timer.End(
		logging.Int("nodes", len(s.view.Nodes)),
		logging.Int("edges", len(s.view.Edges)),
		logging.Int("iterations", res.Iterations))

	s.last = BuildInfo{
		ID:         id,
		Strategy:   s.strategy,
		Duration:   elapsed,
		Placement:  stats,
		Iterations: res.Iterations,
		Converged:  res.Converged,
		Remaining:  res.Remaining,
	}
	s.metrics.RecordPlacement(stats.RadiusRetries, stats.Fallbacks)
	s.metrics.RecordBuild(s.strategy, "success", elapsed, len(s.view.Nodes), len(s.view.Edges))
	return nil
}

// layout produces the unresolved snapshot for the active strategy.
func (s *Session) layout() (*graph.Snapshot, mindmap.Stats, error) {
	if s.strategy == config.StrategyMindmap {
		return s.builder.Build(*s.entity, s.expansion, s.store)
	}

	snap, stats, err := s.builder.BuildAll(*s.entity, nil)
	if err != nil {
		return nil, stats, err
	}
	layout, err := visualization.New(s.strategy, s.cfg.Static)
	if err != nil {
		return nil, stats, err
	}
	nodes, err := layout.Apply(snap.Nodes, snap.Edges)
	if err != nil {
		return nil, stats, err
	}

	for i := range nodes {
		if pos, ok := s.store.Lookup(nodes[i].ID); ok {
			nodes[i].Position = pos
		}
	}
	snap.SetNodes(nodes)
	return snap, stats, nil
}

// resolve runs the collision resolver with the root and every remembered
// node pinned.
func (s *Session) resolve(nodes []graph.Node) collision.Result {
	opts := s.cfg.Collision
	opts.FixedIDs = collision.Fixed(append(s.store.IDs(), s.entity.ID)...)

	res := collision.Resolve(nodes, opts)
	s.metrics.RecordCollision(res.Iterations, res.Remaining)
	return res
}

// refreshView derives the visible subgraph of the current snapshot. Static
// strategies show everything.
func (s *Session) refreshView() {
	if s.strategy == config.StrategyMindmap {
		s.view = visibility.Filter(s.snap.Nodes, s.snap.Edges, s.expansion)
		return
	}
	s.view = visibility.Result{
		Nodes: append([]graph.Node(nil), s.snap.Nodes...),
		Edges: append([]graph.Edge(nil), s.snap.Edges...),
	}
}
