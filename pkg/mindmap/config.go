package mindmap

import (
	"github.com/dd0wney/cluso-mindmap/pkg/graph"
	"github.com/dd0wney/cluso-mindmap/pkg/logging"
	"github.com/dd0wney/cluso-mindmap/pkg/validation"
)

// Arc is an angular interval in degrees. 0° points right, angles grow
// clockwise on screen.
type Arc struct {
	Start float64 `yaml:"start"`
	End   float64 `yaml:"end"`
}

// Fan sizes the arc children are spread over around their parent's angle.
type Fan struct {
	PerItem float64 `yaml:"per_item"` // degrees per child
	Max     float64 `yaml:"max"`      // upper bound on the whole arc
}

// Width returns the arc covered by count children.
func (f Fan) Width(count int) float64 {
	return validation.Clamp(float64(count)*f.PerItem, 0, f.Max)
}

// Config tunes the mindmap builder.
type Config struct {
	// LevelRadii holds the distance from parent centre for levels 1 to 3.
	LevelRadii      []float64 `yaml:"level_radii"`
	RadiusIncrement float64   `yaml:"radius_increment"`
	AngleStep       float64   `yaml:"angle_step"`
	MaxSearchArc    float64   `yaml:"max_search_arc"`

	CategoryArc Arc `yaml:"category_arc"`
	DomainArc   Arc `yaml:"domain_arc"`
	ChildFan    Fan `yaml:"child_fan"`  // level 2
	DetailFan   Fan `yaml:"detail_fan"` // level 3

	// PlacementBox is the footprint used by the placement collision test.
	PlacementBox graph.Size `yaml:"placement_box"`

	Palette Palette        `yaml:"palette"`
	Logger  logging.Logger `yaml:"-"`
}

// DefaultConfig returns the builder tuning used by the dashboard canvas.
func DefaultConfig() Config {
	return Config{
		LevelRadii:      []float64{380, 240, 160},
		RadiusIncrement: 80,
		AngleStep:       8,
		MaxSearchArc:    90,
		CategoryArc:     Arc{Start: 100, End: 260},
		DomainArc:       Arc{Start: -80, End: 80},
		ChildFan:        Fan{PerItem: 25, Max: 150},
		DetailFan:       Fan{PerItem: 18, Max: 100},
		PlacementBox:    graph.Size{Width: 180, Height: 64},
		Palette:         DefaultPalette(),
	}
}

// radius returns the ring radius of level (1-based), reusing the innermost
// configured radius below the deepest level.
func (c Config) radius(level int) float64 {
	i := validation.Clamp(level-1, 0, len(c.LevelRadii)-1)
	return c.LevelRadii[i]
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if len(c.LevelRadii) == 0 {
		c.LevelRadii = d.LevelRadii
	}
	if c.AngleStep <= 0 {
		c.AngleStep = d.AngleStep
	}
	if c.MaxSearchArc < 0 {
		c.MaxSearchArc = 0
	}
	c.CategoryArc = validation.DefaultOr(c.CategoryArc, d.CategoryArc)
	c.DomainArc = validation.DefaultOr(c.DomainArc, d.DomainArc)
	c.ChildFan = validation.DefaultOr(c.ChildFan, d.ChildFan)
	c.DetailFan = validation.DefaultOr(c.DetailFan, d.DetailFan)
	c.PlacementBox = validation.DefaultOr(c.PlacementBox, d.PlacementBox)
	if c.Palette.Entity == nil && c.Palette.Categories == nil && c.Palette.Domains == nil {
		c.Palette = d.Palette
	}
	if c.Palette.Default == (Style{}) {
		c.Palette.Default = d.Palette.Default
	}
	c.Logger = logging.OrNop(c.Logger)
	return c
}
