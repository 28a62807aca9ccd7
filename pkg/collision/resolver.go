package collision

import (
	"math"

	"github.com/dd0wney/cluso-mindmap/pkg/graph"
	"github.com/dd0wney/cluso-mindmap/pkg/logging"
)

// Result is the outcome of a resolver run.
type Result struct {
	Nodes      []graph.Node
	Iterations int  // passes performed
	Converged  bool // a pass found no collision
	Remaining  int  // overlapping pairs left after the cap
}

// Pair is an overlapping pair of nodes with the overlap on each axis.
type Pair struct {
	A, B     string
	OverlapX float64
	OverlapY float64
}

type box struct {
	halfW, halfH float64
	fixed        bool
}

// Resolve separates overlapping node boxes. Each pass examines every
// unordered pair and pushes an overlapping pair apart along the axis with
// the smaller overlap. Free pairs split the correction; a free node next to
// a fixed one takes all of it. The run stops after a clean pass or after
// MaxIterations passes, whichever comes first, and never fails: whatever
// overlap survives the cap is reported in Result.Remaining.
//
// The input slice is not modified.
func Resolve(nodes []graph.Node, opts Options) Result {
	opts = opts.withDefaults()

	out := make([]graph.Node, len(nodes))
	copy(out, nodes)
	boxes := buildBoxes(out, opts)

	res := Result{Nodes: out}
	for iter := 0; iter < opts.MaxIterations; iter++ {
		collisions := 0
		for i := 0; i < len(out); i++ {
			for j := i + 1; j < len(out); j++ {
				if boxes[i].fixed && boxes[j].fixed {
					continue
				}
				ox, oy, hit := overlap(out[i].Position, out[j].Position, boxes[i], boxes[j], opts.OverlapThreshold)
				if !hit {
					continue
				}
				collisions++
				separate(&out[i], &out[j], boxes[i], boxes[j], ox, oy)
			}
		}
		res.Iterations = iter + 1
		if collisions == 0 {
			res.Converged = true
			break
		}
	}

	if !res.Converged {
		res.Remaining = len(overlapping(out, boxes, opts.OverlapThreshold))
		res.Converged = res.Remaining == 0
	}

	if res.Remaining > 0 {
		opts.Logger.Warn("collision resolution hit iteration cap",
			logging.Count(res.Remaining),
			logging.Int("iterations", res.Iterations),
			logging.Int("nodes", len(out)),
		)
	} else {
		opts.Logger.Debug("collision resolution converged",
			logging.Int("iterations", res.Iterations),
			logging.Int("nodes", len(out)),
		)
	}

	return res
}

// Overlaps lists the pairs (not both fixed) that still overlap beyond the
// threshold under opts.
func Overlaps(nodes []graph.Node, opts Options) []Pair {
	opts = opts.withDefaults()
	return overlapping(nodes, buildBoxes(nodes, opts), opts.OverlapThreshold)
}

func buildBoxes(nodes []graph.Node, opts Options) []box {
	boxes := make([]box, len(nodes))
	for i, n := range nodes {
		size := opts.SizeOf(n)
		boxes[i] = box{
			halfW: size.Width/2 + opts.Margin,
			halfH: size.Height/2 + opts.Margin,
			fixed: opts.FixedIDs[n.ID],
		}
	}
	return boxes
}

func overlapping(nodes []graph.Node, boxes []box, threshold float64) []Pair {
	pairs := make([]Pair, 0)
	for i := 0; i < len(nodes); i++ {
		for j := i + 1; j < len(nodes); j++ {
			if boxes[i].fixed && boxes[j].fixed {
				continue
			}
			ox, oy, hit := overlap(nodes[i].Position, nodes[j].Position, boxes[i], boxes[j], threshold)
			if hit {
				pairs = append(pairs, Pair{A: nodes[i].ID, B: nodes[j].ID, OverlapX: ox, OverlapY: oy})
			}
		}
	}
	return pairs
}

// overlap returns the penetration depth on each axis and whether both
// exceed the threshold.
func overlap(a, b graph.Position, ba, bb box, threshold float64) (float64, float64, bool) {
	ox := ba.halfW + bb.halfW - math.Abs(b.X-a.X)
	oy := ba.halfH + bb.halfH - math.Abs(b.Y-a.Y)
	return ox, oy, ox > threshold && oy > threshold
}

func separate(a, b *graph.Node, ba, bb box, ox, oy float64) {
	if ox < oy {
		dir := direction(b.Position.X - a.Position.X)
		da, db := shares(ba.fixed, bb.fixed, ox)
		a.Position.X -= da * dir
		b.Position.X += db * dir
		return
	}
	dir := direction(b.Position.Y - a.Position.Y)
	da, db := shares(ba.fixed, bb.fixed, oy)
	a.Position.Y -= da * dir
	b.Position.Y += db * dir
}

// direction is the sign of d; coincident centres push the later node in
// the positive direction.
func direction(d float64) float64 {
	if d < 0 {
		return -1
	}
	return 1
}

func shares(aFixed, bFixed bool, depth float64) (float64, float64) {
	switch {
	case aFixed:
		return 0, depth + 1
	case bFixed:
		return depth + 1, 0
	default:
		half := depth/2 + 1
		return half, half
	}
}
