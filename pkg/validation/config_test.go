package validation

import (
	"errors"
	"strings"
	"testing"
)

func TestConfigValidator_Rules(t *testing.T) {
	tests := []struct {
		name    string
		apply   func(*ConfigValidator)
		wantErr bool
	}{
		{"required ok", func(cv *ConfigValidator) { cv.Required("Direction", "TB") }, false},
		{"required empty", func(cv *ConfigValidator) { cv.Required("Direction", "") }, true},
		{"min int", func(cv *ConfigValidator) { cv.MinInt("MaxIterations", 0, 1) }, true},
		{"range int ok", func(cv *ConfigValidator) { cv.RangeInt("Level", 2, 1, 3) }, false},
		{"range int out", func(cv *ConfigValidator) { cv.RangeInt("Level", 4, 1, 3) }, true},
		{"positive float", func(cv *ConfigValidator) { cv.PositiveFloat("AngleStep", 0) }, true},
		{"non-negative float", func(cv *ConfigValidator) { cv.NonNegativeFloat("Margin", 0) }, false},
		{"range float", func(cv *ConfigValidator) { cv.RangeFloat("Arc", 400, 0, 360) }, true},
		{"less ok", func(cv *ConfigValidator) { cv.Less("CategoryArc", 100, 260) }, false},
		{"less equal", func(cv *ConfigValidator) { cv.Less("CategoryArc", 100, 100) }, true},
		{"decreasing ok", func(cv *ConfigValidator) { cv.Decreasing("LevelRadii", []float64{380, 240, 160}) }, false},
		{"decreasing not", func(cv *ConfigValidator) { cv.Decreasing("LevelRadii", []float64{380, 400, 160}) }, true},
		{"one of", func(cv *ConfigValidator) { cv.OneOf("Direction", "RL", []string{"TB", "LR"}) }, true},
		{"custom", func(cv *ConfigValidator) { cv.Custom("Sizes", func() error { return errors.New("bad") }) }, true},
		{"when false", func(cv *ConfigValidator) {
			cv.When(false, func(cv *ConfigValidator) { cv.Required("X", "") })
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cv := NewConfigValidator("LayoutConfig")
			tt.apply(cv)
			if cv.HasErrors() != tt.wantErr {
				t.Errorf("HasErrors() = %v, want %v (errors: %v)", cv.HasErrors(), tt.wantErr, cv.Errors())
			}
		})
	}
}

func TestConfigValidator_ValidateCombines(t *testing.T) {
	cv := NewConfigValidator("LayoutConfig")
	if err := cv.Validate(); err != nil {
		t.Errorf("Empty validator should pass: %v", err)
	}

	cv.Required("A", "").MinInt("B", 0, 1)
	err := cv.Validate()
	if err == nil {
		t.Fatal("Expected error")
	}
	if !strings.Contains(err.Error(), "2 errors") || !strings.Contains(err.Error(), "LayoutConfig.B") {
		t.Errorf("Combined error should mention both failures: %v", err)
	}

	sentinel := errors.New("sentinel")
	cv2 := NewConfigValidator("C")
	cv2.Custom("X", func() error { return sentinel })
	if !errors.Is(cv2.Validate(), sentinel) {
		t.Error("Custom errors should stay in the chain")
	}
}

func TestDefaultOrAndClamp(t *testing.T) {
	if DefaultOr(0.0, 12.0) != 12.0 || DefaultOr(3, 9) != 3 {
		t.Error("DefaultOr returned the wrong value")
	}
	if Clamp(200.0, 0, 150) != 150 || Clamp(-1, 0, 10) != 0 || Clamp("m", "a", "z") != "m" {
		t.Error("Clamp returned the wrong value")
	}
}
