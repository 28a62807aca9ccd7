package visualization

import (
	"math"
	"math/rand"

	"github.com/dd0wney/cluso-mindmap/pkg/algorithms"
	"github.com/dd0wney/cluso-mindmap/pkg/graph"
	"github.com/dd0wney/cluso-mindmap/pkg/logging"
)

// ForceDirectedLayout implements Fruchterman-Reingold graph layout
type ForceDirectedLayout struct {
	config Config
}

// NewForceDirectedLayout creates a new force-directed layout. The PRNG is
// seeded from config.Seed so equal inputs give equal positions.
func NewForceDirectedLayout(config Config) *ForceDirectedLayout {
	return &ForceDirectedLayout{config: config.withDefaults()}
}

// Apply computes positions using the force-directed algorithm
func (fdl *ForceDirectedLayout) Apply(nodes []graph.Node, edges []graph.Edge) ([]graph.Node, error) {
	out := cloneNodes(nodes)
	cfg := fdl.config

	switch len(out) {
	case 0:
		return out, nil
	case 1:
		out[0].Position = graph.Position{X: cfg.Width / 2, Y: cfg.Height / 2}
		return out, nil
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	positions := make([]graph.Position, len(out))
	for i := range positions {
		positions[i] = graph.Position{
			X: rng.Float64()*(cfg.Width-2*cfg.Padding) + cfg.Padding,
			Y: rng.Float64()*(cfg.Height-2*cfg.Padding) + cfg.Padding,
		}
	}

	g := algorithms.NewDigraph(nodes, edges)
	neighbours := make([][]int, len(out))
	for i, n := range out {
		for _, id := range g.Neighbors(n.ID, algorithms.DirectionBoth) {
			neighbours[i] = append(neighbours[i], g.Index(id))
		}
	}

	k := math.Sqrt((cfg.Width * cfg.Height) / float64(len(out))) // Optimal distance
	temperature := cfg.Width / 10.0
	forces := make([]graph.Position, len(out))

	for iter := 0; iter < cfg.Iterations; iter++ {
		for i := range forces {
			forces[i] = graph.Position{}
		}

		// Repulsion between all nodes
		for i := range positions {
			for j := i + 1; j < len(positions); j++ {
				dx := positions[i].X - positions[j].X
				dy := positions[i].Y - positions[j].Y
				dist := math.Max(math.Sqrt(dx*dx+dy*dy), 0.01)

				force := (k * k) / dist
				fx, fy := (dx/dist)*force, (dy/dist)*force
				forces[i].X += fx
				forces[i].Y += fy
				forces[j].X -= fx
				forces[j].Y -= fy
			}
		}

		// Attraction between connected nodes
		for i, adj := range neighbours {
			for _, j := range adj {
				dx := positions[i].X - positions[j].X
				dy := positions[i].Y - positions[j].Y
				dist := math.Sqrt(dx*dx + dy*dy)
				if dist < 0.01 {
					continue
				}

				force := (dist * dist) / k
				forces[i].X -= (dx / dist) * force
				forces[i].Y -= (dy / dist) * force
			}
		}

		// Apply forces with cooling
		cool := 1.0 - float64(iter)/float64(cfg.Iterations)
		for i, f := range forces {
			force := math.Sqrt(f.X*f.X + f.Y*f.Y)
			if force > 0 {
				step := math.Min(force, temperature) * cool
				positions[i].X += (f.X / force) * step
				positions[i].Y += (f.Y / force) * step
			}
		}

		temperature *= 0.95
	}

	positions = normalizePositions(positions, cfg.Width, cfg.Height, cfg.Padding)
	for i := range out {
		out[i].Position = positions[i]
	}

	cfg.Logger.Debug("force layout applied", logging.Count(len(out)), logging.Int("iterations", cfg.Iterations))
	return out, nil
}
