package snap

import (
	"math"

	"github.com/gogpu/cmath"
)

// Side tells which edge of the agent a spacing projection applies to.
type Side int

const (
	// SideA projections position the agent's start.
	SideA Side = iota
	// SideB projections position the agent's end.
	SideB
)

// SpacingHit is one projection the agent snapped to.
type SpacingHit struct {
	Loop       int
	Side       Side
	Projection Projection
}

// SpacingResult is the outcome of SnapSpacing.
type SpacingResult struct {
	// Distance is the delta to add to the agent, or +Inf.
	Distance float64
	Hits     []SpacingHit
}

// OK reports whether the agent snapped to an evenly spaced position.
func (r SpacingResult) OK() bool { return !math.IsInf(r.Distance, 1) }

// Delta returns Distance, or 0 when nothing snapped.
func (r SpacingResult) Delta() float64 {
	if !r.OK() {
		return 0
	}
	return r.Distance
}

type projectionRef struct {
	loop int
	side Side
	p    Projection
}

func flatten(sets [][]Projection, side Side) ([]float64, []projectionRef) {
	var values []float64
	var refs []projectionRef
	for loop, set := range sets {
		for _, p := range set {
			values = append(values, p.Value)
			refs = append(refs, projectionRef{loop: loop, side: side, p: p})
		}
	}
	return values, refs
}

// SnapSpacing snaps the agent's start to the A projections and its end to
// the B projections of g, keeping the smaller delta. When both sides agree
// within tolerance the hits of both are reported.
func SnapSpacing(agent cmath.Range, g DistributionGeometry1D, threshold, tolerance float64) (SpacingResult, error) {
	aValues, aRefs := flatten(g.A, SideA)
	bValues, bRefs := flatten(g.B, SideB)

	ra, err := Snap1D([]float64{agent.Start}, aValues, threshold, tolerance)
	if err != nil {
		return SpacingResult{}, err
	}
	rb, err := Snap1D([]float64{agent.End}, bValues, threshold, tolerance)
	if err != nil {
		return SpacingResult{}, err
	}

	res := SpacingResult{Distance: math.Inf(1)}
	useA, useB := ra.OK(), rb.OK()
	if useA && useB && math.Abs(ra.Distance-rb.Distance) > tolerance {
		if math.Abs(rb.Distance) < math.Abs(ra.Distance) {
			useA = false
		} else {
			useB = false
		}
	}

	if useA {
		res.Distance = ra.Distance
		for _, idx := range ra.AnchorIndices {
			ref := aRefs[idx]
			res.Hits = append(res.Hits, SpacingHit{Loop: ref.loop, Side: ref.side, Projection: ref.p})
		}
	}
	if useB {
		if !useA || math.Abs(rb.Distance) < math.Abs(res.Distance) {
			res.Distance = rb.Distance
		}
		for _, idx := range rb.AnchorIndices {
			ref := bRefs[idx]
			res.Hits = append(res.Hits, SpacingHit{Loop: ref.loop, Side: ref.side, Projection: ref.p})
		}
	}
	return res, nil
}
