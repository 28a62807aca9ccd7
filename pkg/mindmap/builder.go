// Package mindmap turns a rooted knowledge-base entity into an expandable
// radial node graph.
package mindmap

import (
	"fmt"

	"github.com/dd0wney/cluso-mindmap/pkg/graph"
	"github.com/dd0wney/cluso-mindmap/pkg/logging"
	"github.com/dd0wney/cluso-mindmap/pkg/positions"
	"github.com/dd0wney/cluso-mindmap/pkg/validation"
)

// Stats describes how the initial placement went.
type Stats struct {
	Nodes         int
	Edges         int
	Seeded        int // nodes placed at a remembered user position
	RadiusRetries int // searches repeated at the increased radius
	Fallbacks     int // nodes left at their preferred point despite a collision
}

// Builder builds mindmap snapshots. It holds no per-build state and may be
// shared.
type Builder struct {
	cfg Config
}

// NewBuilder creates a builder. Zero-valued tuning fields fall back to
// DefaultConfig.
func NewBuilder(cfg Config) *Builder {
	return &Builder{cfg: cfg.withDefaults()}
}

// Config returns the effective configuration.
func (b *Builder) Config() Config {
	return b.cfg
}

// pending is a placed node whose children may still need placing.
type pending struct {
	id    string
	pos   graph.Position
	angle float64
	style Style
}

// build is the state of one Build call.
type build struct {
	cfg       Config
	snap      *graph.Snapshot
	expansion *graph.ExpansionState
	placer    *placer
	lookup    func(string) (graph.Position, bool)
	stats     Stats
}

// Build lays out entity with the children of every expanded node
// materialised. Positions remembered in lookup take precedence over
// computed ones. Malformed input aborts the build.
func (b *Builder) Build(entity EntityData, expansion *graph.ExpansionState, lookup positions.Lookup) (*graph.Snapshot, Stats, error) {
	if err := validation.ValidateStruct(&entity); err != nil {
		return nil, Stats{}, fmt.Errorf("invalid entity %q: %w", entity.ID, err)
	}
	if expansion == nil {
		expansion = graph.NewExpansionState(entity.ID)
	}

	bd := &build{
		cfg:       b.cfg,
		snap:      graph.NewSnapshot(),
		expansion: expansion,
	}
	if lookup != nil {
		bd.lookup = lookup.Lookup
	}
	bd.placer = newPlacer(b.cfg, &bd.stats)

	if err := bd.run(entity); err != nil {
		return nil, Stats{}, err
	}

	bd.stats.Nodes = len(bd.snap.Nodes)
	bd.stats.Edges = len(bd.snap.Edges)
	b.cfg.Logger.Debug("mindmap built",
		logging.RootID(entity.ID),
		logging.Int("nodes", bd.stats.Nodes),
		logging.Int("edges", bd.stats.Edges),
		logging.Int("fallbacks", bd.stats.Fallbacks))
	return bd.snap, bd.stats, nil
}

// BuildAll builds entity with every expandable node expanded.
func (b *Builder) BuildAll(entity EntityData, lookup positions.Lookup) (*graph.Snapshot, Stats, error) {
	return b.Build(entity, graph.NewExpansionState(entity.ID, ExpandableIDs(entity)...), lookup)
}

func (bd *build) run(entity EntityData) error {
	root, err := bd.addRoot(entity)
	if err != nil {
		return err
	}

	// Level 1: every branch is placed before any child so the branch ring
	// claims its slots first.
	cats := DistributeAngles(len(entity.Categories), bd.cfg.CategoryArc.Start, bd.cfg.CategoryArc.End)
	catNodes := make([]pending, len(entity.Categories))
	for i, g := range entity.Categories {
		style := bd.cfg.Palette.CategoryStyle(g.Key)
		n := bd.node(categoryID(g.Key), graph.KindCategory, labelOr(g.Label, g.Key), root, 1, len(g.Items), style)
		n.Data.NodeCategory = g.Key
		if catNodes[i], err = bd.add(n, root, cats[i], style, graph.RelationCategory); err != nil {
			return err
		}
	}

	doms := DistributeAngles(len(entity.Domains), bd.cfg.DomainArc.Start, bd.cfg.DomainArc.End)
	domNodes := make([]pending, len(entity.Domains))
	for i, d := range entity.Domains {
		style := bd.cfg.Palette.DomainStyle(d.Key)
		n := bd.node(domainID(d.Key), graph.KindDomain, labelOr(d.Label, d.Key), root, 1, len(d.Entities), style)
		n.Data.NodeCategory = d.Key
		if domNodes[i], err = bd.add(n, root, doms[i], style, graph.RelationDomain); err != nil {
			return err
		}
	}

	// Level 2
	for i, g := range entity.Categories {
		parent := catNodes[i]
		if !bd.expansion.IsExpanded(parent.id) {
			continue
		}
		angles := bd.fan(parent.angle, len(g.Items), bd.cfg.ChildFan)
		for j, item := range g.Items {
			n := bd.node(itemID(g.Key, item.ID), graph.KindSection, labelOr(item.Title, item.ID), parent, 2, 0, parent.style)
			n.Data.NodeCategory = g.Key
			n.Data.Fields = item.Fields
			if _, err := bd.add(n, parent, angles[j], parent.style, graph.RelationCategory); err != nil {
				return err
			}
		}
	}

	subs := make([]pending, 0)
	subData := make([]SubEntity, 0)
	for i, d := range entity.Domains {
		parent := domNodes[i]
		if !bd.expansion.IsExpanded(parent.id) {
			continue
		}
		angles := bd.fan(parent.angle, len(d.Entities), bd.cfg.ChildFan)
		for j, s := range d.Entities {
			n := bd.node(subEntityID(d.Key, s.ID), graph.KindSubEntity, labelOr(s.Title, s.ID), parent, 2, len(s.Related), parent.style)
			n.Data.NodeCategory = labelOr(s.Kind, d.Key)
			n.Data.Fields = s.Fields
			placed, err := bd.add(n, parent, angles[j], parent.style, graph.RelationDomain)
			if err != nil {
				return err
			}
			subs = append(subs, placed)
			subData = append(subData, s)
		}
	}

	// Level 3
	for i, parent := range subs {
		if !bd.expansion.IsExpanded(parent.id) {
			continue
		}
		related := subData[i].Related
		angles := bd.fan(parent.angle, len(related), bd.cfg.DetailFan)
		for j, r := range related {
			n := bd.node(relatedID(parent.id, r.ID), graph.KindDetail, labelOr(r.Title, r.ID), parent, 3, 0, parent.style)
			n.Data.NodeCategory = r.Kind
			n.Data.Fields = r.Fields
			if _, err := bd.add(n, parent, angles[j], parent.style, graph.RelationRelated); err != nil {
				return err
			}
		}
	}

	return nil
}

func (bd *build) addRoot(entity EntityData) (pending, error) {
	n, err := graph.NewNode(entity.ID, graph.KindEntity, entity.Name)
	if err != nil {
		return pending{}, err
	}
	style := bd.cfg.Palette.EntityStyle(entity.Kind)
	branches := len(entity.Categories) + len(entity.Domains)

	n.Data.Color = style.Color
	n.Data.Icon = style.Icon
	n.Data.Center = true
	n.Data.NodeCategory = entity.Kind
	n.Data.ChildCount = branches
	n.Data.Expandable = branches > 0
	n.Data.Expanded = true

	if pos, _, ok := bd.placer.seed(n.ID, graph.Position{}, bd.lookup); ok {
		n.Position = pos
	} else {
		bd.placer.occupy(n.Position)
	}
	if err := bd.snap.AddNode(n); err != nil {
		return pending{}, err
	}
	return pending{id: n.ID, pos: n.Position, style: style}, nil
}

// node creates the unplaced node for a child of parent.
func (bd *build) node(id string, kind graph.NodeKind, label string, parent pending, level, children int, style Style) graph.Node {
	expandable := children > 0
	return graph.Node{
		ID:   id,
		Type: kind,
		Data: graph.NodeData{
			Label:      label,
			Color:      style.Color,
			Icon:       style.Icon,
			Level:      level,
			ParentID:   parent.id,
			Expandable: expandable,
			Expanded:   expandable && bd.expansion.IsExpanded(id),
			ChildCount: children,
		},
	}
}

// add places n around parent, then records it and its parent edge.
func (bd *build) add(n graph.Node, parent pending, angle float64, style Style, rel graph.RelationshipType) (pending, error) {
	pos, used, ok := bd.placer.seed(n.ID, parent.pos, bd.lookup)
	if !ok {
		pos, used = bd.placer.place(n.ID, parent.pos, angle, bd.cfg.radius(n.Data.Level))
	}
	n.Position = pos

	if err := bd.snap.AddNode(n); err != nil {
		return pending{}, err
	}
	e, err := graph.NewEdge(parent.id, n.ID, graph.EdgeData{
		Color:            style.Color,
		Dashed:           n.Data.Level > 1,
		RelationshipType: rel,
	})
	if err != nil {
		return pending{}, err
	}
	if err := bd.snap.AddEdge(e); err != nil {
		return pending{}, err
	}
	return pending{id: n.ID, pos: pos, angle: used, style: style}, nil
}

// fan spreads count child angles over an arc centred on the parent's angle.
func (bd *build) fan(center float64, count int, f Fan) []float64 {
	width := f.Width(count)
	return DistributeAngles(count, center-width/2, center+width/2)
}

func labelOr(label, fallback string) string {
	if label != "" {
		return label
	}
	return fallback
}
