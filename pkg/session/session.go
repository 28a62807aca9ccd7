// Package session owns one interactive canvas: the rooted entity, its
// expansion state, remembered drag positions and the current view.
package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dd0wney/cluso-mindmap/pkg/config"
	"github.com/dd0wney/cluso-mindmap/pkg/graph"
	"github.com/dd0wney/cluso-mindmap/pkg/logging"
	"github.com/dd0wney/cluso-mindmap/pkg/metrics"
	"github.com/dd0wney/cluso-mindmap/pkg/mindmap"
	"github.com/dd0wney/cluso-mindmap/pkg/positions"
	"github.com/dd0wney/cluso-mindmap/pkg/validation"
	"github.com/dd0wney/cluso-mindmap/pkg/visibility"
	"github.com/dd0wney/cluso-mindmap/pkg/visualization"
)

var (
	ErrNotLoaded       = errors.New("no entity loaded")
	ErrUnknownStrategy = visualization.ErrUnknownStrategy
)

// Options configures a session. Zero values use the defaults; a nil Config
// means config.Default().
type Options struct {
	Config  *config.Config
	Logger  logging.Logger
	Metrics *metrics.Registry
	Store   *positions.Store
}

// BuildInfo describes the most recent rebuild.
type BuildInfo struct {
	ID         string
	Strategy   string
	Duration   time.Duration
	Placement  mindmap.Stats
	Iterations int
	Converged  bool
	Remaining  int
}

// View is the subgraph currently shown.
type View struct {
	Nodes []graph.Node
	Edges []graph.Edge
}

// Session is safe for concurrent use; every operation runs synchronously
// under one lock.
type Session struct {
	mu sync.Mutex

	cfg     config.Config
	builder *mindmap.Builder
	logger  logging.Logger
	metrics *metrics.Registry
	store   *positions.Store

	entity    *mindmap.EntityData
	expansion *graph.ExpansionState
	strategy  string

	snap *graph.Snapshot // every built node, positions resolved
	view visibility.Result
	last BuildInfo
}

// New creates an empty session.
func New(opts Options) (*Session, error) {
	cfg := config.Default()
	if opts.Config != nil {
		cfg = *opts.Config
		cfg.Strategy = validation.DefaultOr(cfg.Strategy, config.StrategyMindmap)
		cfg.LogLevel = validation.DefaultOr(cfg.LogLevel, config.Default().LogLevel)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := logging.OrNop(opts.Logger).Named("session")
	cfg.Mindmap.Logger = logger.Named("mindmap")
	cfg.Static.Logger = logger.Named("layout")
	cfg.Collision.Logger = logger.Named("collision")

	s := &Session{
		cfg:      cfg,
		builder:  mindmap.NewBuilder(cfg.Mindmap),
		logger:   logger,
		metrics:  opts.Metrics,
		store:    opts.Store,
		strategy: cfg.Strategy,
	}
	if s.metrics == nil {
		s.metrics = metrics.DefaultRegistry()
	}
	if s.store == nil {
		s.store = positions.NewStore()
	}
	return s, nil
}

// Load makes entity the rooted entity and rebuilds. Loading a different
// root resets expansion and forgets remembered positions; reloading the
// same root keeps both.
func (s *Session) Load(entity mindmap.EntityData) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prevEntity, prevExpansion := s.entity, s.expansion
	prevRoot, prevPositions := s.store.Root(), s.store.Snapshot()

	if s.entity == nil || s.entity.ID != entity.ID {
		s.expansion = graph.NewExpansionState(entity.ID)
	}
	cleared := s.store.BindRoot(entity.ID)
	s.entity = &entity

	if err := s.rebuild(); err != nil {
		s.entity, s.expansion = prevEntity, prevExpansion
		s.store.Restore(prevRoot, prevPositions)
		return err
	}
	if cleared {
		s.logger.Info("root changed, position memory cleared", logging.RootID(entity.ID))
	}
	return nil
}

// SetStrategy switches the layout strategy and rebuilds. Remembered
// positions are kept.
func (s *Session) SetStrategy(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !knownStrategy(name) {
		return fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
	prev := s.strategy
	s.strategy = name
	if s.entity == nil {
		return nil
	}
	if err := s.rebuild(); err != nil {
		s.strategy = prev
		return err
	}
	return nil
}

// Strategy returns the active strategy name.
func (s *Session) Strategy() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.strategy
}

// Toggle flips the expansion of id and reports whether it is now expanded.
// Nodes without children are left alone.
func (s *Session) Toggle(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, err := s.node("Toggle", id)
	if err != nil {
		return false, err
	}
	if !n.Data.Expandable {
		return s.expansion.IsExpanded(id), nil
	}

	prev := s.expansion.Clone()
	expanded := s.expansion.Toggle(id, s.snap.Hierarchy)
	if err := s.rebuild(); err != nil {
		s.expansion = prev
		return prev.IsExpanded(id), err
	}
	s.metrics.RecordExpansion(action(expanded))
	return expanded, nil
}

// Expand opens id. Nodes without children are ignored.
func (s *Session) Expand(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, err := s.node("Expand", id)
	if err != nil {
		return err
	}
	if !n.Data.Expandable || s.expansion.IsExpanded(id) {
		return nil
	}

	prev := s.expansion.Clone()
	s.expansion.Expand(id)
	if err := s.rebuild(); err != nil {
		s.expansion = prev
		return err
	}
	s.metrics.RecordExpansion(action(true))
	return nil
}

// Collapse closes id and every descendant of it.
func (s *Session) Collapse(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.node("Collapse", id); err != nil {
		return err
	}
	if !s.expansion.IsExpanded(id) {
		return nil
	}

	prev := s.expansion.Clone()
	s.expansion.Collapse(id, s.snap.Hierarchy)
	if err := s.rebuild(); err != nil {
		s.expansion = prev
		return err
	}
	s.metrics.RecordExpansion(action(false))
	return nil
}

// DragStop remembers pos as the user's position for id and nudges the other
// nodes out of its way. The dragged node, the root and every other
// remembered node stay where they are.
func (s *Session) DragStop(id string, pos graph.Position) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, err := s.node("DragStop", id)
	if err != nil {
		return err
	}

	s.store.Record(id, pos)
	n.Position = pos
	if err := s.snap.Update(n); err != nil {
		return err
	}

	res := s.resolve(s.snap.Nodes)
	s.snap.SetNodes(res.Nodes)
	s.refreshView()

	s.metrics.RecordDrag()
	s.logger.Debug("drag committed",
		logging.NodeID(id),
		logging.Point(pos.X, pos.Y),
		logging.Int("iterations", res.Iterations))
	return nil
}

// View returns a copy of the visible nodes and edges.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return View{
		Nodes: append([]graph.Node(nil), s.view.Nodes...),
		Edges: append([]graph.Edge(nil), s.view.Edges...),
	}
}

// Hierarchy returns a copy of the parent to children map of the last build.
func (s *Session) Hierarchy() graph.Hierarchy {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snap == nil {
		return graph.Hierarchy{}
	}
	return s.snap.Hierarchy.Clone()
}

// Expanded returns the explicitly expanded ids, sorted.
func (s *Session) Expanded() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.expansion == nil {
		return []string{}
	}
	return s.expansion.IDs()
}

// LastBuild describes the most recent rebuild.
func (s *Session) LastBuild() BuildInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// Positions returns the position memory of the session.
func (s *Session) Positions() *positions.Store {
	return s.store
}

// node returns the built node id. Callers hold s.mu.
func (s *Session) node(op, id string) (graph.Node, error) {
	if s.entity == nil {
		return graph.Node{}, ErrNotLoaded
	}
	n, ok := s.snap.Node(id)
	if !ok {
		return graph.Node{}, graph.NewError(op).Node(id).Cause(graph.ErrUnknownNode).Err()
	}
	return n, nil
}

func knownStrategy(name string) bool {
	for _, known := range config.Strategies() {
		if name == known {
			return true
		}
	}
	return false
}

func action(expanded bool) string {
	if expanded {
		return "expand"
	}
	return "collapse"
}
