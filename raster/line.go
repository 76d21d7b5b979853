package raster

import (
	"image"
	"math"

	"golang.org/x/image/math/fixed"

	"github.com/gogpu/cmath"
)

// Line returns the pixels of the Bresenham line from a to b, including
// both endpoints.
func Line(a, b image.Point) []image.Point {
	dx := abs(b.X - a.X)
	dy := -abs(b.Y - a.Y)
	sx, sy := sign(b.X-a.X), sign(b.Y-a.Y)
	err := dx + dy

	pts := make([]image.Point, 0, max(dx, -dy)+1)
	x, y := a.X, a.Y
	for {
		pts = append(pts, image.Point{X: x, Y: y})
		if x == b.X && y == b.Y {
			return pts
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

// LineBetween rasterizes the segment between two sub-pixel positions, as
// produced by successive pointer samples.
func LineBetween(a, b cmath.Vector2) []image.Point {
	return Line(PointFromVector(a), PointFromVector(b))
}

// PointFromVector snaps a sub-pixel position to the nearest grid point.
// The position is first quantized to 26.6 fixed point, the precision the
// x/image rasterizers work in, so that halves round consistently.
func PointFromVector(v cmath.Vector2) image.Point {
	p := fixed.Point26_6{
		X: fixed.Int26_6(math.Round(v.X * 64)),
		Y: fixed.Int26_6(math.Round(v.Y * 64)),
	}
	return image.Point{X: p.X.Round(), Y: p.Y.Round()}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
