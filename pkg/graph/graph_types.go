package graph

// Position is the centre of a node on the canvas.
type Position struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Size is the rendered footprint of a node.
type Size struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// NodeKind identifies what a node represents on the canvas
type NodeKind string

const (
	KindEntity    NodeKind = "entity"    // rooted entity (level 0)
	KindCategory  NodeKind = "category"  // grouped text sections branch
	KindDomain    NodeKind = "domain"    // grouped sub-entities branch
	KindSection   NodeKind = "section"   // one text section under a category
	KindSubEntity NodeKind = "subentity" // one structured record under a domain
	KindDetail    NodeKind = "detail"    // record attached to a sub-entity
	KindGeneric   NodeKind = "generic"
)

// DefaultSize returns the footprint the rendering surface draws for this kind.
func (k NodeKind) DefaultSize() Size {
	switch k {
	case KindEntity:
		return Size{Width: 220, Height: 80}
	case KindCategory, KindDomain:
		return Size{Width: 180, Height: 60}
	case KindSection, KindSubEntity:
		return Size{Width: 160, Height: 50}
	case KindDetail:
		return Size{Width: 140, Height: 40}
	default:
		return Size{Width: 150, Height: 50}
	}
}

// Handle names the side of a node an edge attaches to.
type Handle string

const (
	HandleTop    Handle = "top"
	HandleBottom Handle = "bottom"
	HandleLeft   Handle = "left"
	HandleRight  Handle = "right"
)

// RelationshipType classifies an edge
type RelationshipType string

const (
	RelationCategory RelationshipType = "category"
	RelationDomain   RelationshipType = "domain"
	RelationRelated  RelationshipType = "related"
	RelationLink     RelationshipType = "link"
)

// NodeData carries the display and hierarchy attributes of a node.
type NodeData struct {
	Label        string            `json:"label"`
	Color        string            `json:"color,omitempty"`
	Icon         string            `json:"icon,omitempty"`
	Level        int               `json:"level"`
	ParentID     string            `json:"parentId,omitempty"`
	Expandable   bool              `json:"expandable"`
	Expanded     bool              `json:"expanded"`
	ChildCount   int               `json:"childCount"`
	NodeCategory string            `json:"nodeCategory,omitempty"`
	Center       bool              `json:"center,omitempty"`
	SourceHandle Handle            `json:"sourcePosition,omitempty"`
	TargetHandle Handle            `json:"targetPosition,omitempty"`
	Fields       map[string]string `json:"fields,omitempty"`
}

// Node is a value object regenerated on every build pass.
type Node struct {
	ID       string   `json:"id"`
	Type     NodeKind `json:"type"`
	Position Position `json:"position"`
	Data     NodeData `json:"data"`
	Hidden   bool     `json:"hidden"`
}

// EdgeData carries the display attributes of an edge.
type EdgeData struct {
	Color            string           `json:"color,omitempty"`
	Dashed           bool             `json:"dashed"`
	RelationshipType RelationshipType `json:"relationshipType,omitempty"`
}

// Edge connects two nodes of the same snapshot by id.
type Edge struct {
	ID     string   `json:"id"`
	Source string   `json:"source"`
	Target string   `json:"target"`
	Data   EdgeData `json:"data"`
	Hidden bool     `json:"hidden"`
}

// Size returns the node's footprint.
func (n Node) Size() Size {
	return n.Type.DefaultSize()
}
