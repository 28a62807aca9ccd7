package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default config should validate: %v", err)
	}
}

func TestParse_OverridesKeepDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
strategy: hierarchical
mindmap:
  angle_step: 5
  category_arc:
    start: 120
    end: 240
static:
  direction: LR
collision:
  max_iterations: 20
`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.Strategy != "hierarchical" || cfg.Static.Direction != "LR" {
		t.Errorf("Top-level overrides lost: %+v", cfg)
	}
	if cfg.Mindmap.AngleStep != 5 || cfg.Mindmap.CategoryArc.Start != 120 {
		t.Errorf("Mindmap overrides lost: %+v", cfg.Mindmap)
	}
	if cfg.Collision.MaxIterations != 20 || cfg.Collision.Margin != Default().Collision.Margin {
		t.Errorf("Collision = %+v", cfg.Collision)
	}
	if len(cfg.Mindmap.LevelRadii) != 3 || cfg.Mindmap.LevelRadii[0] != 380 {
		t.Errorf("Unset level radii should keep defaults: %v", cfg.Mindmap.LevelRadii)
	}
	if cfg.Static.RankSep != Default().Static.RankSep {
		t.Errorf("Unset RankSep should keep default, got %g", cfg.Static.RankSep)
	}
}

func TestValidate_Failures(t *testing.T) {
	tests := []struct {
		name  string
		yaml  string
		field string
	}{
		{"unknown strategy", "strategy: spiral", "Config.Strategy"},
		{"radii not decreasing", "mindmap:\n  level_radii: [200, 240, 160]", "Config.Mindmap.LevelRadii"},
		{"too few radii", "mindmap:\n  level_radii: [300, 200]", "Config.Mindmap.LevelRadii"},
		{"zero angle step", "mindmap:\n  angle_step: 0", "Config.Mindmap.AngleStep"},
		{"empty arc", "mindmap:\n  domain_arc: {start: 80, end: -80}", "Config.Mindmap.DomainArc"},
		{"no iterations", "collision:\n  max_iterations: 0", "Config.Collision.MaxIterations"},
		{"bad direction", "static:\n  direction: BT", "Config.Static.Direction"},
		{"rings inverted", "static:\n  inner_radius: 600", "Config.Static.Radii"},
		{"bad log level", "log_level: verbose", "Config.LogLevel"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if err == nil {
				t.Fatal("Expected a validation error")
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("Error should name %s: %v", tt.field, err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.yaml")
	if err := os.WriteFile(path, []byte("strategy: radial\n"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Strategy != "radial" {
		t.Errorf("Strategy = %q, want radial", cfg.Strategy)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}
	if _, err := Parse([]byte("strategy: [")); err == nil {
		t.Error("Expected error for malformed YAML")
	}
}
