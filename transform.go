package cmath

import (
	"fmt"
	"math"

	"golang.org/x/image/math/f64"
)

// Transform is a 2D affine transformation in row-major 2x3 form:
//
//	| A  B  TX |
//	| C  D  TY |
//
// which maps a point as
//
//	x' = A*x + B*y + TX
//	y' = C*x + D*y + TY
type Transform struct {
	A, B, TX float64
	C, D, TY float64
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{
		A: 1, B: 0, TX: 0,
		C: 0, D: 1, TY: 0,
	}
}

// TranslateTransform creates a translation transform.
func TranslateTransform(x, y float64) Transform {
	return Transform{
		A: 1, B: 0, TX: x,
		C: 0, D: 1, TY: y,
	}
}

// ScaleTransform creates a scaling transform about the origin.
func ScaleTransform(x, y float64) Transform {
	return Transform{
		A: x, B: 0, TX: 0,
		C: 0, D: y, TY: 0,
	}
}

// RotateTransform creates a rotation transform (angle in radians).
func RotateTransform(angle float64) Transform {
	sin, cos := math.Sincos(angle)
	return Transform{
		A: cos, B: -sin, TX: 0,
		C: sin, D: cos, TY: 0,
	}
}

// Multiply composes two transforms (t * o): o is applied first.
func (t Transform) Multiply(o Transform) Transform {
	return Transform{
		A:  t.A*o.A + t.B*o.C,
		B:  t.A*o.B + t.B*o.D,
		TX: t.A*o.TX + t.B*o.TY + t.TX,
		C:  t.C*o.A + t.D*o.C,
		D:  t.C*o.B + t.D*o.D,
		TY: t.C*o.TX + t.D*o.TY + t.TY,
	}
}

// ScaleAt scales t by factor about origin, given in absolute coordinates.
// The scale is translate(origin) * scale(factor) * translate(-origin),
// pre-multiplied onto t.
func (t Transform) ScaleAt(factor, origin Vector2) Transform {
	s := TranslateTransform(origin.X, origin.Y).
		Multiply(ScaleTransform(factor.X, factor.Y)).
		Multiply(TranslateTransform(-origin.X, -origin.Y))
	return s.Multiply(t)
}

// Translate adds delta to the translation column only.
func (t Transform) Translate(delta Vector2) Transform {
	t.TX += delta.X
	t.TY += delta.Y
	return t
}

// Scale returns the magnitude of each row vector.
// The result is only meaningful for transforms without skew.
func (t Transform) Scale() Vector2 {
	return Vector2{X: math.Hypot(t.A, t.B), Y: math.Hypot(t.C, t.D)}
}

// Translation returns the translation column.
func (t Transform) Translation() Vector2 {
	return Vector2{X: t.TX, Y: t.TY}
}

// Angle returns the rotation of t in radians, atan2(C, A).
// Assumes t has no skew component.
func (t Transform) Angle() float64 {
	return math.Atan2(t.C, t.A)
}

// Determinant returns A*D - B*C.
func (t Transform) Determinant() float64 {
	return t.A*t.D - t.B*t.C
}

// Invert returns the inverse transform, or ErrNonInvertibleTransform when
// the determinant is exactly zero.
func (t Transform) Invert() (Transform, error) {
	det := t.Determinant()
	if det == 0 || !isFinite(det) {
		return Transform{}, fmt.Errorf("%w: determinant %v", ErrNonInvertibleTransform, det)
	}
	inv := 1 / det
	return Transform{
		A:  t.D * inv,
		B:  -t.B * inv,
		TX: (t.B*t.TY - t.TX*t.D) * inv,
		C:  -t.C * inv,
		D:  t.A * inv,
		TY: (t.TX*t.C - t.A*t.TY) * inv,
	}, nil
}

// Apply maps a point through the transform.
func (t Transform) Apply(p Vector2) Vector2 {
	return Vector2{
		X: t.A*p.X + t.B*p.Y + t.TX,
		Y: t.C*p.X + t.D*p.Y + t.TY,
	}
}

// ApplyVector maps a displacement through the transform, ignoring translation.
func (t Transform) ApplyVector(v Vector2) Vector2 {
	return Vector2{
		X: t.A*v.X + t.B*v.Y,
		Y: t.C*v.X + t.D*v.Y,
	}
}

// IsIdentity returns true if t is exactly the identity.
func (t Transform) IsIdentity() bool {
	return t == Identity()
}

// IsTranslationOnly returns true if t has no scale, rotation or skew.
func (t Transform) IsTranslationOnly() bool {
	return t.A == 1 && t.B == 0 && t.C == 0 && t.D == 1
}

// Aff3 converts t to the x/image affine representation.
func (t Transform) Aff3() f64.Aff3 {
	return f64.Aff3{t.A, t.B, t.TX, t.C, t.D, t.TY}
}

// TransformFromAff3 converts an x/image affine matrix to a Transform.
func TransformFromAff3(m f64.Aff3) Transform {
	return Transform{
		A: m[0], B: m[1], TX: m[2],
		C: m[3], D: m[4], TY: m[5],
	}
}

// ToSurfaceSpace maps a canvas-space point to surface (screen) space.
func ToSurfaceSpace(p Vector2, t Transform) Vector2 {
	return t.Apply(p)
}

// ToCanvasSpace maps a surface-space point back to canvas space using the
// inverse of t.
func ToCanvasSpace(p Vector2, t Transform) (Vector2, error) {
	inv, err := t.Invert()
	if err != nil {
		Logger().Debug("cmath: cannot map point to canvas space", "transform", t, "err", err)
		return p, err
	}
	return inv.Apply(p), nil
}
