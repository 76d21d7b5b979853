package snap

import (
	"math"
	"sort"

	"github.com/gogpu/cmath"
)

// ProjectionKind records why a projection was emitted.
type ProjectionKind int

const (
	// ProjectionOuter extends a loop outward by its own gap.
	ProjectionOuter ProjectionKind = iota
	// ProjectionCenter centers the agent inside a loop's gap.
	ProjectionCenter
	// ProjectionForwarded extends a loop outward by another loop's gap.
	ProjectionForwarded
)

func (k ProjectionKind) String() string {
	switch k {
	case ProjectionCenter:
		return "center"
	case ProjectionForwarded:
		return "forwarded"
	}
	return "outer"
}

// Projection is a candidate snap position with its provenance.
type Projection struct {
	// Value is the position the agent edge should snap to.
	Value float64
	// Origin is the edge of the loop the projection was measured from.
	Origin float64
	// Forwarded is the index of the loop whose gap was borrowed, or -1.
	Forwarded int
	Kind      ProjectionKind
}

// DistributionGeometry1D describes the uniform-gap structure of a set of
// ranges on one axis.
//
// Loops[i] holds the indices of two ranges (first precedes second) and
// Gaps[i] their edge-to-edge gap. A[i] lists projections for the agent's
// start past the loop's far end; B[i] lists projections for the agent's end
// before the loop's near start.
type DistributionGeometry1D struct {
	Ranges []cmath.Range
	Loops  [][2]int
	Gaps   []float64
	A, B   [][]Projection
}

// RangeGroup is a set of ranges separated by one uniform gap.
type RangeGroup struct {
	Indices [2]int
	Gap     float64
}

// GroupRangesByUniformGap returns every pair of ranges that do not overlap,
// ordered so the first range precedes the second, together with their gap.
//
// Groups are limited to pairs. A pair is always uniformly spaced, and
// enumerating larger subsets grows with the power set of the input, which
// is far too slow for per-pointer-move use.
func GroupRangesByUniformGap(ranges []cmath.Range) []RangeGroup {
	order := make([]int, len(ranges))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return ranges[order[i]].Start < ranges[order[j]].Start
	})

	var groups []RangeGroup
	for p := 0; p < len(order); p++ {
		for q := p + 1; q < len(order); q++ {
			first, second := ranges[order[p]], ranges[order[q]]
			gap := second.Start - first.End
			if gap < 0 {
				continue
			}
			groups = append(groups, RangeGroup{Indices: [2]int{order[p], order[q]}, Gap: gap})
		}
	}
	return groups
}

// Distribution computes the loops, gaps and projected snap candidates for
// ranges.
//
// For each loop the outer projections are max end + gap (A) and
// min start - gap (B). With WithAgentLength shorter than the gap, the
// agent centered inside the gap is projected too. Every other loop's gap is
// forwarded onto this loop's extremes, since an existing rhythm elsewhere
// in the layout is still a useful target.
func Distribution(ranges []cmath.Range, opts ...DistributionOption) DistributionGeometry1D {
	var o distributionOptions
	for _, opt := range opts {
		opt(&o)
	}

	groups := GroupRangesByUniformGap(ranges)
	g := DistributionGeometry1D{
		Ranges: ranges,
		Loops:  make([][2]int, len(groups)),
		Gaps:   make([]float64, len(groups)),
		A:      make([][]Projection, len(groups)),
		B:      make([][]Projection, len(groups)),
	}
	for i, grp := range groups {
		g.Loops[i] = grp.Indices
		g.Gaps[i] = grp.Gap
	}

	for i, loop := range g.Loops {
		first, second := ranges[loop[0]], ranges[loop[1]]
		gap := g.Gaps[i]
		start := math.Min(first.Start, second.Start)
		end := math.Max(first.End, second.End)

		a := []Projection{{Value: end + gap, Origin: end, Forwarded: -1, Kind: ProjectionOuter}}
		b := []Projection{{Value: start - gap, Origin: start, Forwarded: -1, Kind: ProjectionOuter}}

		if o.hasAgent && o.agentLength < gap {
			inner := (gap - o.agentLength) / 2
			a = append(a, Projection{Value: first.End + inner, Origin: first.End, Forwarded: -1, Kind: ProjectionCenter})
			b = append(b, Projection{Value: second.Start - inner, Origin: second.Start, Forwarded: -1, Kind: ProjectionCenter})
		}

		seen := []float64{gap}
	forward:
		for j, other := range g.Gaps {
			if j == i {
				continue
			}
			for _, s := range seen {
				if math.Abs(other-s) <= o.tolerance {
					continue forward
				}
			}
			seen = append(seen, other)
			a = append(a, Projection{Value: end + other, Origin: end, Forwarded: j, Kind: ProjectionForwarded})
			b = append(b, Projection{Value: start - other, Origin: start, Forwarded: j, Kind: ProjectionForwarded})
		}

		g.A[i] = a
		g.B[i] = b
	}

	if len(ranges) > 1 && len(g.Loops) == 0 {
		cmath.Logger().Debug("snap: no non-overlapping range pairs", "ranges", len(ranges))
	}
	return g
}
