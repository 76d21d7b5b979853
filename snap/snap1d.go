package snap

import (
	"fmt"
	"math"
	"slices"

	"github.com/samber/lo"

	"github.com/gogpu/cmath"
)

// Result1D is the outcome of Snap1D.
type Result1D struct {
	// Distance is the signed delta (anchor - agent) to add to every agent,
	// or +Inf when no anchor was within threshold.
	Distance float64
	// AgentIndices and AnchorIndices list, in ascending order, every pair
	// consistent with Distance within the tolerance.
	AgentIndices  []int
	AnchorIndices []int
}

// OK reports whether the agents snapped.
func (r Result1D) OK() bool { return !math.IsInf(r.Distance, 1) }

// Delta returns Distance, or 0 when nothing snapped.
func (r Result1D) Delta() float64 {
	if !r.OK() {
		return 0
	}
	return r.Distance
}

func noSnap1D() Result1D {
	return Result1D{Distance: math.Inf(1)}
}

// Snap1D finds the smallest-magnitude signed delta that, applied to every
// agent, puts at least one agent within threshold of an anchor. Every
// agent/anchor pair whose own delta is within tolerance of the winner is
// reported, so several agents can snap at once.
//
// When a positive and a negative delta tie in magnitude, the first pair in
// agent-major order wins.
func Snap1D(agents, anchors []float64, threshold, tolerance float64) (Result1D, error) {
	if err := checkThreshold(threshold); err != nil {
		return Result1D{}, err
	}
	if !(tolerance >= 0) {
		return Result1D{}, fmt.Errorf("%w: tolerance must be non-negative, got %v", cmath.ErrInvalidArgument, tolerance)
	}
	if len(anchors) == 0 || len(agents) == 0 {
		return noSnap1D(), nil
	}

	best := math.Inf(1)
	for _, agent := range agents {
		for _, anchor := range anchors {
			delta := anchor - agent
			if d := math.Abs(delta); d <= threshold && d < math.Abs(best) {
				best = delta
			}
		}
	}
	if math.IsInf(best, 1) {
		return noSnap1D(), nil
	}

	var agentHits, anchorHits []int
	for i, agent := range agents {
		for j, anchor := range anchors {
			if math.Abs((anchor-agent)-best) <= tolerance {
				agentHits = append(agentHits, i)
				anchorHits = append(anchorHits, j)
			}
		}
	}
	agentHits = lo.Uniq(agentHits)
	anchorHits = lo.Uniq(anchorHits)
	slices.Sort(anchorHits)

	return Result1D{Distance: best, AgentIndices: agentHits, AnchorIndices: anchorHits}, nil
}
