package mindmap

import (
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestDistributeAngles(t *testing.T) {
	tests := []struct {
		count      int
		start, end float64
		want       []float64
	}{
		{0, 100, 260, []float64{}},
		{1, 100, 260, []float64{180}},
		{3, 0, 100, []float64{25, 50, 75}},
		{2, -80, 80, []float64{-80 + 160.0/3, -80 + 320.0/3}},
	}

	for _, tt := range tests {
		if got := DistributeAngles(tt.count, tt.start, tt.end); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("DistributeAngles(%d, %g, %g) = %v, want %v", tt.count, tt.start, tt.end, got, tt.want)
		}
	}
}

func TestDistributeAnglesProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("n > 1 angles are strictly increasing inside the arc", prop.ForAll(
		func(n int, start, span float64) bool {
			end := start + span
			angles := DistributeAngles(n, start, end)
			if len(angles) != n {
				return false
			}
			for i, a := range angles {
				if a <= start || a >= end {
					return false
				}
				if i > 0 && a <= angles[i-1] {
					return false
				}
			}
			return true
		},
		gen.IntRange(2, 40), gen.Float64Range(-360, 360), gen.Float64Range(1, 360),
	))

	properties.TestingRun(t)
}

func TestFanWidth(t *testing.T) {
	f := Fan{PerItem: 25, Max: 150}
	if f.Width(2) != 50 || f.Width(10) != 150 || f.Width(0) != 0 {
		t.Errorf("Unexpected widths: %g %g %g", f.Width(2), f.Width(10), f.Width(0))
	}
}
