package raster

import (
	"image"
	"math"

	"github.com/gogpu/cmath"
)

// Circle returns the grid points inside or on the circle, row by row from
// top to bottom and left to right within a row.
func Circle(center cmath.Vector2, radius float64, opts ...Option) []image.Point {
	return Ellipse(center, radius, radius, opts...)
}

// Ellipse returns the grid points inside or on the axis-aligned ellipse
// with radii rx and ry. Each row is solved from the implicit equation
// (x/rx)^2 + (y/ry)^2 <= 1. A zero ry flattens the ellipse to the row
// span [cx-rx, cx+rx]. Negative radii yield no points.
func Ellipse(center cmath.Vector2, rx, ry float64, opts ...Option) []image.Point {
	if rx < 0 || ry < 0 || math.IsNaN(rx) || math.IsNaN(ry) {
		return nil
	}
	o := buildOptions(opts)

	y0 := int(math.Ceil(center.Y - ry))
	y1 := int(math.Floor(center.Y + ry))
	if o.hasClip {
		y0 = max(y0, o.clip.Min.Y)
		y1 = min(y1, o.clip.Max.Y-1)
	}

	var pts []image.Point
	for y := y0; y <= y1; y++ {
		half := rx
		if ry > 0 {
			dy := (float64(y) - center.Y) / ry
			half = rx * math.Sqrt(math.Max(0, 1-dy*dy))
		}
		x0 := int(math.Ceil(center.X - half))
		x1 := int(math.Floor(center.X + half))
		if o.hasClip {
			x0 = max(x0, o.clip.Min.X)
			x1 = min(x1, o.clip.Max.X-1)
		}
		for x := x0; x <= x1; x++ {
			pts = append(pts, image.Point{X: x, Y: y})
		}
	}
	return pts
}
