package cmath

import "math"

// Vector2 is a 2D point or displacement.
type Vector2 struct {
	X, Y float64
}

// V2 is a convenience function to create a Vector2.
func V2(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vector2) Add(w Vector2) Vector2 {
	return Vector2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Vector2) Sub(w Vector2) Vector2 {
	return Vector2{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vector2) Mul(s float64) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

// Scale multiplies the vector component-wise.
func (v Vector2) Scale(f Vector2) Vector2 {
	return Vector2{X: v.X * f.X, Y: v.Y * f.Y}
}

// Div returns the vector divided by a scalar.
func (v Vector2) Div(s float64) Vector2 {
	return Vector2{X: v.X / s, Y: v.Y / s}
}

// Neg returns the negation of the vector.
func (v Vector2) Neg() Vector2 {
	return Vector2{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product of two vectors.
func (v Vector2) Dot(w Vector2) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the z-component of the 3D cross product with z=0.
func (v Vector2) Cross(w Vector2) float64 {
	return v.X*w.Y - v.Y*w.X
}

// Length returns the magnitude of the vector.
func (v Vector2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// LengthSq returns the squared magnitude of the vector.
func (v Vector2) LengthSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Distance returns the Euclidean distance between two points.
func (v Vector2) Distance(w Vector2) float64 {
	return v.Sub(w).Length()
}

// Normalize returns a unit vector in the same direction.
// Returns the zero vector if v has zero length.
func (v Vector2) Normalize() Vector2 {
	length := v.Length()
	if length == 0 {
		return Vector2{}
	}
	return Vector2{X: v.X / length, Y: v.Y / length}
}

// Rotate returns the vector rotated by angle radians around the origin.
func (v Vector2) Rotate(angle float64) Vector2 {
	sin, cos := math.Sincos(angle)
	return Vector2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// RotateAround rotates v by angle radians around pivot.
func (v Vector2) RotateAround(pivot Vector2, angle float64) Vector2 {
	return v.Sub(pivot).Rotate(angle).Add(pivot)
}

// Angle returns the direction of the vector in radians.
func (v Vector2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Lerp performs linear interpolation between two vectors.
func (v Vector2) Lerp(w Vector2, t float64) Vector2 {
	return Vector2{
		X: v.X + (w.X-v.X)*t,
		Y: v.Y + (w.Y-v.Y)*t,
	}
}

// Min returns the component-wise minimum.
func (v Vector2) Min(w Vector2) Vector2 {
	return Vector2{X: math.Min(v.X, w.X), Y: math.Min(v.Y, w.Y)}
}

// Max returns the component-wise maximum.
func (v Vector2) Max(w Vector2) Vector2 {
	return Vector2{X: math.Max(v.X, w.X), Y: math.Max(v.Y, w.Y)}
}

// Quantize snaps both components to multiples of step.
func (v Vector2) Quantize(step float64) (Vector2, error) {
	x, err := Quantize(v.X, step)
	if err != nil {
		return v, err
	}
	y, _ := Quantize(v.Y, step)
	return Vector2{X: x, Y: y}, nil
}

// Component returns the X or Y component.
func (v Vector2) Component(axis Axis) float64 {
	if axis == AxisY {
		return v.Y
	}
	return v.X
}

// IsZero returns true if the vector is the zero vector.
func (v Vector2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Approx returns true if two vectors are equal within epsilon per component.
func (v Vector2) Approx(w Vector2, epsilon float64) bool {
	return math.Abs(v.X-w.X) <= epsilon && math.Abs(v.Y-w.Y) <= epsilon
}

// AxisAlignedPoint is a point whose components may each be ignored.
// An ignored axis means "no constraint", which is different from 0.
type AxisAlignedPoint struct {
	X, Y       float64
	HasX, HasY bool
}

// AxisPoint returns a point constrained on both axes.
func AxisPoint(x, y float64) AxisAlignedPoint {
	return AxisAlignedPoint{X: x, Y: y, HasX: true, HasY: true}
}

// XOnly returns a point constrained on the x axis only.
func XOnly(x float64) AxisAlignedPoint {
	return AxisAlignedPoint{X: x, HasX: true}
}

// YOnly returns a point constrained on the y axis only.
func YOnly(y float64) AxisAlignedPoint {
	return AxisAlignedPoint{Y: y, HasY: true}
}

// Component returns the value on axis and whether that axis is set.
func (p AxisAlignedPoint) Component(axis Axis) (float64, bool) {
	if axis == AxisY {
		return p.Y, p.HasY
	}
	return p.X, p.HasX
}
