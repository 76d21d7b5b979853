package snap

import (
	"math"
	"slices"

	"github.com/samber/lo"

	"github.com/gogpu/cmath"
)

// TranslateResult is the outcome of a snapped drag.
type TranslateResult struct {
	// Delta is the movement to apply after snapping.
	Delta cmath.Vector2
	// Points is the reference-point snap of the moved selection bounds.
	Points Result2D
	// AnchorsX and AnchorsY list the anchor rectangles hit by point snapping
	// on each axis, in ascending order.
	AnchorsX, AnchorsY []int
	// SpacingX and SpacingY are the evenly-spaced snaps on each axis.
	SpacingX, SpacingY SpacingResult
}

// Translate snaps the selection formed by agents, moved by movement,
// against anchors. Reference points of the selection bounds snap to those
// of every anchor, and on each axis the result competes with the
// evenly-spaced positions derived from the anchors; the smaller delta wins.
func Translate(agents, anchors []cmath.Rectangle, movement cmath.Vector2, threshold float64, opts ...Option) (TranslateResult, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := checkThreshold(threshold); err != nil {
		return TranslateResult{}, err
	}

	bounds, err := cmath.Union(agents...)
	if err != nil {
		return TranslateResult{}, err
	}
	bounds = bounds.Translate(movement)

	perRect := 9
	if !o.centers {
		perRect = 4
	}
	agentPoints := referencePoints(bounds, o.centers)
	anchorPoints := make([]cmath.AxisAlignedPoint, 0, len(anchors)*perRect)
	for _, a := range anchors {
		for _, p := range referencePoints(a, o.centers) {
			anchorPoints = append(anchorPoints, cmath.AxisPoint(p.X, p.Y))
		}
	}

	points, err := Snap2DAxisAligned(agentPoints, anchorPoints, cmath.AxisPoint(threshold, threshold), o.tolerance)
	if err != nil {
		return TranslateResult{}, err
	}
	res := TranslateResult{
		Points:   points,
		AnchorsX: rectIndices(points.X.AnchorIndices, perRect),
		AnchorsY: rectIndices(points.Y.AnchorIndices, perRect),
		SpacingX: SpacingResult{Distance: math.Inf(1)},
		SpacingY: SpacingResult{Distance: math.Inf(1)},
	}

	if o.spacing && len(anchors) > 1 {
		for _, axis := range []cmath.Axis{cmath.AxisX, cmath.AxisY} {
			ranges := lo.Map(anchors, func(r cmath.Rectangle, _ int) cmath.Range { return r.Range(axis) })
			agent := bounds.Range(axis)
			g := Distribution(ranges, WithAgentLength(agent.Length()), WithGapTolerance(o.gapTolerance))
			s, err := SnapSpacing(agent, g, threshold, o.tolerance)
			if err != nil {
				return TranslateResult{}, err
			}
			if axis == cmath.AxisX {
				res.SpacingX = s
			} else {
				res.SpacingY = s
			}
		}
	}

	res.Delta = cmath.Vector2{
		X: movement.X + pick(points.X, res.SpacingX),
		Y: movement.Y + pick(points.Y, res.SpacingY),
	}
	return res, nil
}

func referencePoints(r cmath.Rectangle, centers bool) []cmath.Vector2 {
	if centers {
		pts := r.NinePoints()
		return pts[:]
	}
	pts := r.Points()
	return pts[:]
}

func rectIndices(pointIndices []int, perRect int) []int {
	out := lo.Uniq(lo.Map(pointIndices, func(i int, _ int) int { return i / perRect }))
	slices.Sort(out)
	return out
}

// pick returns the smaller of the two snapping deltas, 0 if neither snapped.
func pick(points Result1D, spacing SpacingResult) float64 {
	switch {
	case points.OK() && spacing.OK():
		if math.Abs(spacing.Distance) < math.Abs(points.Distance) {
			return spacing.Distance
		}
		return points.Distance
	case points.OK():
		return points.Distance
	case spacing.OK():
		return spacing.Distance
	}
	return 0
}
