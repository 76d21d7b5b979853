package cmath

import (
	"math"
	"sort"

	"github.com/montanaflynn/stats"
)

// AlignKind selects which edge of the selection bounds a rectangle aligns to.
type AlignKind int

const (
	AlignNone AlignKind = iota
	AlignMin
	AlignCenter
	AlignMax
)

// Alignment configures AlignRects per axis.
type Alignment struct {
	Horizontal AlignKind
	Vertical   AlignKind
}

// AlignRects aligns every rectangle to the union of all of them.
// The output has the same length and index order as the input.
func AlignRects(rects []Rectangle, a Alignment) []Rectangle {
	out := make([]Rectangle, len(rects))
	copy(out, rects)
	bounds, err := Union(rects...)
	if err != nil {
		return out
	}
	for i := range out {
		out[i].X = alignStart(out[i].X, out[i].Width, bounds.X, bounds.Width, a.Horizontal)
		out[i].Y = alignStart(out[i].Y, out[i].Height, bounds.Y, bounds.Height, a.Vertical)
	}
	return out
}

func alignStart(start, size, boundsStart, boundsSize float64, kind AlignKind) float64 {
	switch kind {
	case AlignMin:
		return boundsStart
	case AlignCenter:
		return boundsStart + (boundsSize-size)/2
	case AlignMax:
		return boundsStart + boundsSize - size
	}
	return start
}

// sortedByAxis returns the indices of rects ordered by their start on axis.
// Ties keep input order.
func sortedByAxis(rects []Rectangle, axis Axis) []int {
	order := make([]int, len(rects))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return rects[order[i]].Range(axis).Start < rects[order[j]].Range(axis).Start
	})
	return order
}

// DistributeEvenly spaces rectangles along axis so that every gap between
// neighbours is equal, keeping the first and last rectangle in place.
// The output has the same length and index order as the input.
func DistributeEvenly(rects []Rectangle, axis Axis) []Rectangle {
	out := make([]Rectangle, len(rects))
	copy(out, rects)
	if len(rects) < 2 {
		return out
	}

	order := sortedByAxis(rects, axis)
	start := rects[order[0]].Range(axis).Start
	end := math.Inf(-1)
	total := 0.0
	for _, r := range rects {
		rg := r.Range(axis)
		end = math.Max(end, rg.End)
		total += rg.Length()
	}
	gap := (end - start - total) / float64(len(rects)-1)

	cursor := start
	for _, idx := range order {
		if axis == AxisX {
			out[idx].X = cursor
			cursor += out[idx].Width + gap
		} else {
			out[idx].Y = cursor
			cursor += out[idx].Height + gap
		}
	}
	return out
}

// Gaps returns the edge-to-edge distances between successive rectangles
// ordered along axis. Overlapping neighbours produce negative gaps.
func Gaps(rects []Rectangle, axis Axis) []float64 {
	if len(rects) < 2 {
		return nil
	}
	order := sortedByAxis(rects, axis)
	gaps := make([]float64, len(order)-1)
	for i := range gaps {
		cur := rects[order[i]].Range(axis)
		next := rects[order[i+1]].Range(axis)
		gaps[i] = next.Start - cur.End
	}
	return gaps
}

// UniformGap reports whether the rectangles are evenly spaced along axis,
// every gap being within tolerance of the first. The returned gap is the
// most frequent gap value, or the largest gap when no value repeats.
// The raw gaps are returned in either case.
func UniformGap(rects []Rectangle, axis Axis, tolerance float64) (gap float64, gaps []float64, ok bool) {
	gaps = Gaps(rects, axis)
	if len(gaps) == 0 {
		return 0, gaps, false
	}
	for _, g := range gaps {
		if math.Abs(g-gaps[0]) > tolerance {
			return 0, gaps, false
		}
	}
	if modes, err := stats.Mode(gaps); err == nil && len(modes) > 0 {
		return modes[0], gaps, true
	}
	gap, _ = stats.Max(gaps)
	return gap, gaps, true
}
