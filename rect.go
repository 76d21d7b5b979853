package cmath

import (
	"fmt"
	"math"
)

// Rectangle is an axis-aligned rectangle anchored at its top-left corner.
// Width and Height are non-negative; Positive restores that after a signed
// scale.
type Rectangle struct {
	X, Y          float64
	Width, Height float64
}

// Rect is a convenience function to create a Rectangle.
func Rect(x, y, width, height float64) Rectangle {
	return Rectangle{X: x, Y: y, Width: width, Height: height}
}

// RectFromPoints returns the bounding box of the given points.
func RectFromPoints(points ...Vector2) (Rectangle, error) {
	if len(points) == 0 {
		return Rectangle{}, fmt.Errorf("%w: at least one point is required", ErrInvalidArgument)
	}
	lo, hi := points[0], points[0]
	for _, p := range points[1:] {
		lo = lo.Min(p)
		hi = hi.Max(p)
	}
	return span(lo, hi), nil
}

// span returns the rectangle from lo to hi. The size is rounded up so that
// lo + size never falls short of hi in floating point.
func span(lo, hi Vector2) Rectangle {
	return Rectangle{X: lo.X, Y: lo.Y, Width: extent(lo.X, hi.X), Height: extent(lo.Y, hi.Y)}
}

func extent(lo, hi float64) float64 {
	w := hi - lo
	for lo+w < hi {
		w = math.Nextafter(w, math.Inf(1))
	}
	return w
}

// Min returns the top-left corner.
func (r Rectangle) Min() Vector2 { return Vector2{X: r.X, Y: r.Y} }

// Max returns the bottom-right corner.
func (r Rectangle) Max() Vector2 { return Vector2{X: r.X + r.Width, Y: r.Y + r.Height} }

// Size returns the width and height as a vector.
func (r Rectangle) Size() Vector2 { return Vector2{X: r.Width, Y: r.Height} }

// Center returns the center point.
func (r Rectangle) Center() Vector2 {
	return Vector2{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Area returns Width * Height.
func (r Rectangle) Area() float64 { return r.Width * r.Height }

// IsEmpty reports whether the rectangle has no area.
func (r Rectangle) IsEmpty() bool { return r.Width <= 0 || r.Height <= 0 }

// Range projects the rectangle onto axis.
func (r Rectangle) Range(axis Axis) Range { return RectangleRange(r, axis) }

// Points returns the corners in clockwise order starting at the top-left.
func (r Rectangle) Points() [4]Vector2 {
	return [4]Vector2{
		{X: r.X, Y: r.Y},
		{X: r.X + r.Width, Y: r.Y},
		{X: r.X + r.Width, Y: r.Y + r.Height},
		{X: r.X, Y: r.Y + r.Height},
	}
}

// Contains reports whether o lies entirely inside r. Shared edges count.
func (r Rectangle) Contains(o Rectangle) bool {
	return o.X >= r.X && o.Y >= r.Y &&
		o.X+o.Width <= r.X+r.Width && o.Y+o.Height <= r.Y+r.Height
}

// ContainsPoint reports whether p lies inside r or on its boundary.
func (r Rectangle) ContainsPoint(p Vector2) bool {
	return p.X >= r.X && p.X <= r.X+r.Width && p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Intersects reports whether r and o overlap or touch.
// Use Intersection to test for a shared area.
func (r Rectangle) Intersects(o Rectangle) bool {
	return r.X <= o.X+o.Width && o.X <= r.X+r.Width &&
		r.Y <= o.Y+o.Height && o.Y <= r.Y+r.Height
}

// Intersection returns the overlapping area of r and o.
// It reports false when the rectangles share no area (x2 <= x1 or y2 <= y1).
func (r Rectangle) Intersection(o Rectangle) (Rectangle, bool) {
	x1 := math.Max(r.X, o.X)
	y1 := math.Max(r.Y, o.Y)
	x2 := math.Min(r.X+r.Width, o.X+o.Width)
	y2 := math.Min(r.Y+r.Height, o.Y+o.Height)
	if x2 <= x1 || y2 <= y1 {
		return Rectangle{}, false
	}
	return Rectangle{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}, true
}

// Union returns the smallest rectangle containing every rectangle.
func Union(rects ...Rectangle) (Rectangle, error) {
	if len(rects) == 0 {
		return Rectangle{}, fmt.Errorf("%w: union requires at least one rectangle", ErrInvalidArgument)
	}
	lo, hi := rects[0].Min(), rects[0].Max()
	for _, r := range rects[1:] {
		lo = lo.Min(r.Min())
		hi = hi.Max(r.Max())
	}
	return span(lo, hi), nil
}

// Translate moves the rectangle by delta.
func (r Rectangle) Translate(delta Vector2) Rectangle {
	r.X += delta.X
	r.Y += delta.Y
	return r
}

// Scale scales the rectangle by factor about origin. A negative factor
// produces a negative size; call Positive to normalize it.
func (r Rectangle) Scale(origin, factor Vector2) Rectangle {
	return Rectangle{
		X:      origin.X + (r.X-origin.X)*factor.X,
		Y:      origin.Y + (r.Y-origin.Y)*factor.Y,
		Width:  r.Width * factor.X,
		Height: r.Height * factor.Y,
	}
}

// Rotate returns the axis-aligned bounding box of r rotated by angle
// radians about its center.
func (r Rectangle) Rotate(angle float64) Rectangle {
	c := r.Center()
	pts := r.Points()
	for i := range pts {
		pts[i] = pts[i].RotateAround(c, angle)
	}
	box, _ := RectFromPoints(pts[:]...)
	return box
}

// TransformBy returns the axis-aligned bounding box of r mapped through t.
func (r Rectangle) TransformBy(t Transform) Rectangle {
	pts := r.Points()
	for i := range pts {
		pts[i] = t.Apply(pts[i])
	}
	box, _ := RectFromPoints(pts[:]...)
	return box
}

// Positive normalizes a negative width or height while keeping the same
// covered area.
func (r Rectangle) Positive() Rectangle {
	if r.Width < 0 {
		r.X += r.Width
		r.Width = -r.Width
	}
	if r.Height < 0 {
		r.Y += r.Height
		r.Height = -r.Height
	}
	return r
}

// Padding holds per-side distances, used both as padding and as margin.
type Padding struct {
	Top, Right, Bottom, Left float64
}

// UniformPadding returns a padding with the same value on every side.
func UniformPadding(v float64) Padding {
	return Padding{Top: v, Right: v, Bottom: v, Left: v}
}

func (p Padding) validate() error {
	if p.Top < 0 || p.Right < 0 || p.Bottom < 0 || p.Left < 0 {
		return fmt.Errorf("%w: padding must be non-negative, got %+v", ErrInvalidArgument, p)
	}
	return nil
}

// Pad expands the rectangle outward by p.
func (r Rectangle) Pad(p Padding) (Rectangle, error) {
	if err := p.validate(); err != nil {
		return r, err
	}
	return Rectangle{
		X:      r.X - p.Left,
		Y:      r.Y - p.Top,
		Width:  r.Width + p.Left + p.Right,
		Height: r.Height + p.Top + p.Bottom,
	}, nil
}

// Quantize snaps position and size to multiples of step.
func (r Rectangle) Quantize(step float64) (Rectangle, error) {
	x, err := Quantize(r.X, step)
	if err != nil {
		return r, err
	}
	y, _ := Quantize(r.Y, step)
	w, _ := Quantize(r.Width, step)
	h, _ := Quantize(r.Height, step)
	return Rectangle{X: x, Y: y, Width: w, Height: h}, nil
}

// Identical reports whether both rectangles have exactly the same geometry.
func (r Rectangle) Identical(o Rectangle) bool {
	return r == o
}
