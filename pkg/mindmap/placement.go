package mindmap

import (
	"math"

	"github.com/dd0wney/cluso-mindmap/pkg/graph"
	"github.com/dd0wney/cluso-mindmap/pkg/logging"
)

// DistributeAngles spreads count angles evenly strictly inside (start, end).
// A single angle sits on the midpoint.
func DistributeAngles(count int, start, end float64) []float64 {
	if count <= 0 {
		return []float64{}
	}
	if count == 1 {
		return []float64{(start + end) / 2}
	}

	step := (end - start) / float64(count+1)
	angles := make([]float64, count)
	for i := range angles {
		angles[i] = start + step*float64(i+1)
	}
	return angles
}

// polar returns the point at angle degrees and distance radius from origin.
func polar(origin graph.Position, angle, radius float64) graph.Position {
	rad := angle * math.Pi / 180
	return graph.Position{
		X: origin.X + radius*math.Cos(rad),
		Y: origin.Y + radius*math.Sin(rad),
	}
}

// angleOf returns the direction of p seen from origin, in degrees.
func angleOf(origin, p graph.Position) float64 {
	return math.Atan2(p.Y-origin.Y, p.X-origin.X) * 180 / math.Pi
}

// placer assigns initial positions during one build. Every placed point is
// remembered so later placements can steer around it.
type placer struct {
	cfg      Config
	occupied []graph.Position
	stats    *Stats
	logger   logging.Logger
}

func newPlacer(cfg Config, stats *Stats) *placer {
	return &placer{cfg: cfg, stats: stats, logger: cfg.Logger}
}

func (p *placer) occupy(pos graph.Position) {
	p.occupied = append(p.occupied, pos)
}

// collides reports whether a box centred on pos overlaps any placed box.
func (p *placer) collides(pos graph.Position) bool {
	w, h := p.cfg.PlacementBox.Width, p.cfg.PlacementBox.Height
	for _, o := range p.occupied {
		if math.Abs(pos.X-o.X) < w && math.Abs(pos.Y-o.Y) < h {
			return true
		}
	}
	return false
}

// search tries angle, then alternately right and left of it in AngleStep
// increments up to MaxSearchArc.
func (p *placer) search(origin graph.Position, angle, radius float64) (graph.Position, float64, bool) {
	if pos := polar(origin, angle, radius); !p.collides(pos) {
		return pos, angle, true
	}
	for offset := p.cfg.AngleStep; offset <= p.cfg.MaxSearchArc; offset += p.cfg.AngleStep {
		for _, a := range []float64{angle + offset, angle - offset} {
			if pos := polar(origin, a, radius); !p.collides(pos) {
				return pos, a, true
			}
		}
	}
	return graph.Position{}, 0, false
}

// place finds a free slot for id near the preferred angle and occupies it.
// It returns the position and the angle finally used.
func (p *placer) place(id string, origin graph.Position, angle, radius float64) (graph.Position, float64) {
	pos, used, ok := p.search(origin, angle, radius)
	if !ok {
		p.stats.RadiusRetries++
		pos, used, ok = p.search(origin, angle, radius+p.cfg.RadiusIncrement)
	}
	if !ok {
		p.stats.Fallbacks++
		pos, used = polar(origin, angle, radius), angle
		p.logger.Debug("placement search exhausted, using preferred point",
			logging.NodeID(id),
			logging.Float64("angle", angle),
			logging.Point(pos.X, pos.Y))
	}
	p.occupy(pos)
	return pos, used
}

// seed places id at a remembered position when there is one.
func (p *placer) seed(id string, origin graph.Position, lookup func(string) (graph.Position, bool)) (graph.Position, float64, bool) {
	if lookup == nil {
		return graph.Position{}, 0, false
	}
	pos, ok := lookup(id)
	if !ok {
		return graph.Position{}, 0, false
	}
	p.stats.Seeded++
	p.occupy(pos)
	return pos, angleOf(origin, pos), true
}
