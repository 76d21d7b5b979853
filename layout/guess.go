// Package layout infers a flex-like layout from absolutely positioned
// rectangles, so a loose selection can be wrapped into an auto-layout
// container that reproduces it.
package layout

import (
	"fmt"
	"math"
	"sort"

	"github.com/montanaflynn/stats"
	"github.com/samber/lo"

	"github.com/gogpu/cmath"
)

// Direction is the main axis of a flex container.
type Direction int

const (
	Horizontal Direction = iota
	Vertical
)

func (d Direction) String() string {
	if d == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Axis returns the main axis of d.
func (d Direction) Axis() cmath.Axis {
	if d == Vertical {
		return cmath.AxisY
	}
	return cmath.AxisX
}

// CrossAlignment is the alignment of children on the cross axis.
type CrossAlignment int

const (
	AlignStart CrossAlignment = iota
	AlignCenter
	AlignEnd
)

func (a CrossAlignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignEnd:
		return "end"
	}
	return "start"
}

// nearTie is the gap-sum difference below which the bounding box shape
// decides the direction.
const nearTie = 1.0

// Result is an inferred layout.
type Result struct {
	Direction Direction
	// Spacing is the mean gap along the main axis, never negative.
	Spacing float64
	// Order lists input indices in main-axis order. Equal positions keep
	// their input order.
	Order     []int
	Alignment CrossAlignment
	// Bounds is the union of the input rectangles.
	Bounds cmath.Rectangle
}

// Guess infers direction, spacing, order and cross-axis alignment.
//
// The axis with the larger sum of gaps between neighbours becomes the main
// axis. When the sums are within 1 of each other, a bounding box at least
// as wide as it is tall means horizontal. The cross-axis alignment is the
// one (start, center or end) whose coordinates vary least.
func Guess(rects []cmath.Rectangle) (Result, error) {
	if len(rects) == 0 {
		return Result{}, fmt.Errorf("%w: layout guess requires at least one rectangle", cmath.ErrInvalidArgument)
	}
	bounds, _ := cmath.Union(rects...)

	gapsX := cmath.Gaps(rects, cmath.AxisX)
	gapsY := cmath.Gaps(rects, cmath.AxisY)
	sumX, sumY := lo.Sum(gapsX), lo.Sum(gapsY)

	dir := Horizontal
	switch {
	case math.Abs(sumX-sumY) <= nearTie:
		if bounds.Width < bounds.Height {
			dir = Vertical
		}
	case sumY > sumX:
		dir = Vertical
	}

	gaps := gapsX
	if dir == Vertical {
		gaps = gapsY
	}
	spacing := 0.0
	if mean, err := stats.Mean(gaps); err == nil {
		spacing = math.Max(0, mean)
	}

	return Result{
		Direction: dir,
		Spacing:   spacing,
		Order:     order(rects, dir.Axis()),
		Alignment: crossAlignment(rects, dir.Axis().Cross()),
		Bounds:    bounds,
	}, nil
}

func order(rects []cmath.Rectangle, axis cmath.Axis) []int {
	idx := make([]int, len(rects))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		return rects[idx[i]].Range(axis).Start < rects[idx[j]].Range(axis).Start
	})
	return idx
}

func crossAlignment(rects []cmath.Rectangle, cross cmath.Axis) CrossAlignment {
	candidates := []struct {
		align CrossAlignment
		coord func(cmath.Range) float64
	}{
		{AlignStart, func(r cmath.Range) float64 { return r.Start }},
		{AlignCenter, func(r cmath.Range) float64 { return r.Center() }},
		{AlignEnd, func(r cmath.Range) float64 { return r.End }},
	}

	best, bestSpread := AlignStart, math.Inf(1)
	for _, c := range candidates {
		values := lo.Map(rects, func(r cmath.Rectangle, _ int) float64 { return c.coord(r.Range(cross)) })
		spread, err := stats.StandardDeviationPopulation(values)
		if err != nil {
			continue
		}
		if spread < bestSpread {
			best, bestSpread = c.align, spread
		}
	}
	return best
}

// Arrange positions rects as a flex container described by r would: in
// r.Order along the main axis starting at the bounds origin, separated by
// r.Spacing and aligned on the cross axis within the bounds. The output
// keeps the input index order.
func Arrange(rects []cmath.Rectangle, r Result) []cmath.Rectangle {
	out := make([]cmath.Rectangle, len(rects))
	copy(out, rects)

	axis := r.Direction.Axis()
	cross := axis.Cross()
	cursor := r.Bounds.Range(axis).Start
	crossRange := r.Bounds.Range(cross)

	for _, i := range r.Order {
		if i < 0 || i >= len(out) {
			continue
		}
		size := out[i].Range(axis).Length()
		crossSize := out[i].Range(cross).Length()

		crossStart := crossRange.Start
		switch r.Alignment {
		case AlignCenter:
			crossStart = crossRange.Start + (crossRange.Length()-crossSize)/2
		case AlignEnd:
			crossStart = crossRange.End - crossSize
		}

		if axis == cmath.AxisX {
			out[i].X, out[i].Y = cursor, crossStart
		} else {
			out[i].Y, out[i].X = cursor, crossStart
		}
		cursor += size + r.Spacing
	}
	return out
}
