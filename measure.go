package cmath

import (
	"math"

	"github.com/samber/lo"
)

// Measurement describes the spacing between two rectangles.
//
// For disjoint rectangles Box is A and Distance holds the gap from A to B on
// each side ([top, right, bottom, left]), zero on sides where B is not beyond
// A. For overlapping rectangles Box is the intersection and Distance holds
// the offset between the matching edges of A and B.
type Measurement struct {
	A, B     Rectangle
	Box      Rectangle
	Distance [4]float64
}

// Measure returns the spacing between a and b. It reports false for
// identical rectangles, where there is nothing to measure.
func Measure(a, b Rectangle) (Measurement, bool) {
	if a.Identical(b) {
		return Measurement{}, false
	}
	m := Measurement{A: a, B: b}
	if box, ok := a.Intersection(b); ok {
		m.Box = box
		m.Distance = [4]float64{
			math.Abs(a.Y - b.Y),
			math.Abs((a.X + a.Width) - (b.X + b.Width)),
			math.Abs((a.Y + a.Height) - (b.Y + b.Height)),
			math.Abs(a.X - b.X),
		}
		return m, true
	}
	m.Box = a
	m.Distance = [4]float64{
		math.Max(0, a.Y-(b.Y+b.Height)),
		math.Max(0, b.X-(a.X+a.Width)),
		math.Max(0, b.Y-(a.Y+a.Height)),
		math.Max(0, a.X-(b.X+b.Width)),
	}
	return m, true
}

// NearestPoint returns the index of the point closest to target and its
// distance. The earliest index wins ties. It reports false for no points.
func NearestPoint(target Vector2, points []Vector2) (int, float64, bool) {
	if len(points) == 0 {
		return -1, math.Inf(1), false
	}
	best, bestDist := 0, target.Distance(points[0])
	for i := 1; i < len(points); i++ {
		if d := target.Distance(points[i]); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best, bestDist, true
}

// NearestRectangle compares centers and returns the index of the rectangle
// closest to target and the center-to-center distance.
func NearestRectangle(target Rectangle, rects []Rectangle) (int, float64, bool) {
	centers := lo.Map(rects, func(r Rectangle, _ int) Vector2 { return r.Center() })
	return NearestPoint(target.Center(), centers)
}
