// Package config loads the layout tuning shared by the CLI, the explorer and
// tests.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dd0wney/cluso-mindmap/pkg/collision"
	"github.com/dd0wney/cluso-mindmap/pkg/mindmap"
	"github.com/dd0wney/cluso-mindmap/pkg/validation"
	"github.com/dd0wney/cluso-mindmap/pkg/visualization"
)

// StrategyMindmap is the expandable radial strategy. The static strategies
// are named by the visualization package.
const StrategyMindmap = "mindmap"

// Strategies lists every strategy a canvas can use.
func Strategies() []string {
	return append([]string{StrategyMindmap}, visualization.Strategies()...)
}

// Config is the complete layout configuration of a canvas.
type Config struct {
	Strategy  string               `yaml:"strategy"`
	LogLevel  string               `yaml:"log_level"`
	Mindmap   mindmap.Config       `yaml:"mindmap"`
	Collision collision.Options    `yaml:"collision"`
	Static    visualization.Config `yaml:"static"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Strategy:  StrategyMindmap,
		LogLevel:  "info",
		Mindmap:   mindmap.DefaultConfig(),
		Collision: collision.DefaultOptions(),
		Static:    visualization.DefaultConfig(),
	}
}

// Load reads a YAML file over the defaults and validates the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults; keys missing from data keep their
// default values.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every section and reports all problems at once.
func (c Config) Validate() error {
	cv := validation.NewConfigValidator("Config")

	cv.OneOf("Strategy", c.Strategy, Strategies()).
		OneOf("LogLevel", c.LogLevel, []string{"debug", "info", "warn", "error"})

	m := c.Mindmap
	cv.RangeInt("Mindmap.LevelRadii", len(m.LevelRadii), 3, 3).
		Decreasing("Mindmap.LevelRadii", m.LevelRadii).
		NonNegativeFloat("Mindmap.RadiusIncrement", m.RadiusIncrement).
		PositiveFloat("Mindmap.AngleStep", m.AngleStep).
		RangeFloat("Mindmap.MaxSearchArc", m.MaxSearchArc, 0, 180).
		Less("Mindmap.CategoryArc", m.CategoryArc.Start, m.CategoryArc.End).
		Less("Mindmap.DomainArc", m.DomainArc.Start, m.DomainArc.End).
		NonNegativeFloat("Mindmap.ChildFan.PerItem", m.ChildFan.PerItem).
		PositiveFloat("Mindmap.ChildFan.Max", m.ChildFan.Max).
		NonNegativeFloat("Mindmap.DetailFan.PerItem", m.DetailFan.PerItem).
		PositiveFloat("Mindmap.DetailFan.Max", m.DetailFan.Max).
		PositiveFloat("Mindmap.PlacementBox.Width", m.PlacementBox.Width).
		PositiveFloat("Mindmap.PlacementBox.Height", m.PlacementBox.Height)
	for i, r := range m.LevelRadii {
		cv.PositiveFloat(fmt.Sprintf("Mindmap.LevelRadii[%d]", i), r)
	}

	cv.MinInt("Collision.MaxIterations", c.Collision.MaxIterations, 1).
		NonNegativeFloat("Collision.Margin", c.Collision.Margin).
		NonNegativeFloat("Collision.OverlapThreshold", c.Collision.OverlapThreshold)

	s := c.Static
	cv.OneOf("Static.Direction", s.Direction, []string{visualization.DirectionTB, visualization.DirectionLR}).
		PositiveFloat("Static.NodeSep", s.NodeSep).
		PositiveFloat("Static.RankSep", s.RankSep).
		PositiveFloat("Static.InnerRadius", s.InnerRadius).
		Less("Static.Radii", s.InnerRadius, s.OuterRadius).
		NonNegativeFloat("Static.FallbackStep", s.FallbackStep).
		PositiveFloat("Static.Width", s.Width).
		PositiveFloat("Static.Height", s.Height).
		NonNegativeFloat("Static.Padding", s.Padding).
		MinInt("Static.Iterations", s.Iterations, 1)

	return cv.Validate()
}
