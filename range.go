package cmath

import "math"

// Axis selects the horizontal or vertical component of 2D geometry.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// Cross returns the perpendicular axis.
func (a Axis) Cross() Axis {
	if a == AxisX {
		return AxisY
	}
	return AxisX
}

func (a Axis) String() string {
	if a == AxisY {
		return "y"
	}
	return "x"
}

// Range is a closed 1D interval. Start <= End by convention.
type Range struct {
	Start, End float64
}

// Length returns End - Start.
func (r Range) Length() float64 {
	return r.End - r.Start
}

// Center returns the midpoint of the range.
func (r Range) Center() float64 {
	return (r.Start + r.End) / 2
}

// Contains reports whether v lies inside the closed range.
func (r Range) Contains(v float64) bool {
	return v >= r.Start && v <= r.End
}

// Intersect returns the overlap of two ranges. Ranges that only touch
// intersect in a zero-length range. It reports false for disjoint ranges.
func (r Range) Intersect(o Range) (Range, bool) {
	start := math.Max(r.Start, o.Start)
	end := math.Min(r.End, o.End)
	if start > end {
		return Range{}, false
	}
	return Range{Start: start, End: end}, true
}

// Union returns the smallest range covering both ranges.
func (r Range) Union(o Range) Range {
	return Range{Start: math.Min(r.Start, o.Start), End: math.Max(r.End, o.End)}
}

// RectangleRange projects a rectangle onto axis.
func RectangleRange(r Rectangle, axis Axis) Range {
	if axis == AxisY {
		return Range{Start: r.Y, End: r.Y + r.Height}
	}
	return Range{Start: r.X, End: r.X + r.Width}
}
