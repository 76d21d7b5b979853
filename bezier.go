package cmath

import "math"

// CubicBezier is a cubic Bézier segment with absolute control points.
type CubicBezier struct {
	P0, P1, P2, P3 Vector2
}

// CubicBezierWithTangents is a cubic segment stored the way a vector
// network stores it: two vertices and the tangent handle of each, relative
// to its own vertex.
type CubicBezierWithTangents struct {
	A, B   Vector2
	TA, TB Vector2
}

// Cubic returns the absolute control point form: A, A+TA, B+TB, B.
func (s CubicBezierWithTangents) Cubic() CubicBezier {
	return CubicBezier{P0: s.A, P1: s.A.Add(s.TA), P2: s.B.Add(s.TB), P3: s.B}
}

// BoundingBox returns the exact axis-aligned bounding box of the segment.
// Zero tangents describe a straight line and short-circuit to the box of
// the two vertices.
func (s CubicBezierWithTangents) BoundingBox() Rectangle {
	if s.TA.IsZero() && s.TB.IsZero() {
		box, _ := RectFromPoints(s.A, s.B)
		return box
	}
	return s.Cubic().BoundingBox()
}

// Tangents returns the relative tangent form of c.
func (c CubicBezier) Tangents() CubicBezierWithTangents {
	return CubicBezierWithTangents{A: c.P0, B: c.P3, TA: c.P1.Sub(c.P0), TB: c.P2.Sub(c.P3)}
}

// Eval evaluates the curve at parameter t in [0, 1].
func (c CubicBezier) Eval(t float64) Vector2 {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	d := 3 * mt * t * t
	e := t * t * t
	return Vector2{
		X: a*c.P0.X + b*c.P1.X + d*c.P2.X + e*c.P3.X,
		Y: a*c.P0.Y + b*c.P1.Y + d*c.P2.Y + e*c.P3.Y,
	}
}

// Extrema returns the parameters in [0, 1] where either coordinate of the
// curve has a zero derivative.
func (c CubicBezier) Extrema() []float64 {
	out := make([]float64, 0, 4)
	out = append(out, axisExtrema(c.P0.X, c.P1.X, c.P2.X, c.P3.X)...)
	out = append(out, axisExtrema(c.P0.Y, c.P1.Y, c.P2.Y, c.P3.Y)...)
	return out
}

// axisExtrema solves B'(t) = 0 for one coordinate. The derivative of the
// cubic Bernstein form is the quadratic
//
//	3(-p0 + 3p1 - 3p2 + p3) t^2 + 6(p0 - 2p1 + p2) t + 3(p1 - p0)
func axisExtrema(p0, p1, p2, p3 float64) []float64 {
	a := 3 * (-p0 + 3*p1 - 3*p2 + p3)
	b := 6 * (p0 - 2*p1 + p2)
	c := 3 * (p1 - p0)
	if a == 0 && b == 0 {
		// Linear or constant coordinate: no interior extremum.
		return nil
	}
	return SolveQuadraticInUnitInterval(a, b, c)
}

// BoundingBox returns the tight axis-aligned bounding box of the curve.
func (c CubicBezier) BoundingBox() Rectangle {
	lo, hi := c.P0.Min(c.P3), c.P0.Max(c.P3)
	for _, t := range c.Extrema() {
		p := c.Eval(t)
		lo = lo.Min(p)
		hi = hi.Max(p)
	}
	return span(lo, hi)
}

// Line returns a straight cubic from p to q with handles at the thirds.
func Line(p, q Vector2) CubicBezier {
	return CubicBezier{P0: p, P1: p.Lerp(q, 1.0/3), P2: p.Lerp(q, 2.0/3), P3: q}
}

// maxArcSegment is the largest sweep approximated by a single cubic.
const maxArcSegment = 2 * math.Pi / 3

// ArcToCubics converts an SVG elliptical arc from `from` to `to` into cubic
// segments of at most 120 degrees each. rotation is the x-axis rotation in
// degrees. Zero radii produce a single straight segment and out-of-range
// radii are scaled up as SVG requires.
func ArcToCubics(from Vector2, rx, ry, rotation float64, largeArc, sweep bool, to Vector2) []CubicBezier {
	if from == to {
		return nil
	}
	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx == 0 || ry == 0 {
		return []CubicBezier{Line(from, to)}
	}

	phi := ToRadians(rotation)
	sinPhi, cosPhi := math.Sincos(phi)

	// Endpoint to center parameterization.
	dx, dy := (from.X-to.X)/2, (from.Y-to.Y)/2
	x1 := cosPhi*dx + sinPhi*dy
	y1 := -sinPhi*dx + cosPhi*dy

	if lambda := (x1*x1)/(rx*rx) + (y1*y1)/(ry*ry); lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	num := rx*rx*ry*ry - rx*rx*y1*y1 - ry*ry*x1*x1
	den := rx*rx*y1*y1 + ry*ry*x1*x1
	coef := 0.0
	if den != 0 {
		coef = math.Sqrt(math.Max(0, num/den))
	}
	if largeArc == sweep {
		coef = -coef
	}
	cx1 := coef * rx * y1 / ry
	cy1 := -coef * ry * x1 / rx
	cx := cosPhi*cx1 - sinPhi*cy1 + (from.X+to.X)/2
	cy := sinPhi*cx1 + cosPhi*cy1 + (from.Y+to.Y)/2

	theta := vectorAngle(1, 0, (x1-cx1)/rx, (y1-cy1)/ry)
	delta := vectorAngle((x1-cx1)/rx, (y1-cy1)/ry, (-x1-cx1)/rx, (-y1-cy1)/ry)
	if !sweep && delta > 0 {
		delta -= 2 * math.Pi
	} else if sweep && delta < 0 {
		delta += 2 * math.Pi
	}

	n := int(math.Ceil(math.Abs(delta) / maxArcSegment))
	if n < 1 {
		n = 1
	}
	step := delta / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4)

	point := func(angle float64) (Vector2, Vector2) {
		sin, cos := math.Sincos(angle)
		p := Vector2{
			X: cx + rx*cos*cosPhi - ry*sin*sinPhi,
			Y: cy + rx*cos*sinPhi + ry*sin*cosPhi,
		}
		d := Vector2{
			X: -rx*sin*cosPhi - ry*cos*sinPhi,
			Y: -rx*sin*sinPhi + ry*cos*cosPhi,
		}
		return p, d
	}

	out := make([]CubicBezier, 0, n)
	start := from
	_, startD := point(theta)
	for i := 0; i < n; i++ {
		a1 := theta + step*float64(i+1)
		end, endD := point(a1)
		if i == n-1 {
			end = to
		}
		out = append(out, CubicBezier{
			P0: start,
			P1: start.Add(startD.Mul(k)),
			P2: end.Sub(endD.Mul(k)),
			P3: end,
		})
		start, startD = end, endD
	}
	return out
}

// vectorAngle returns the signed angle from (ux, uy) to (vx, vy).
func vectorAngle(ux, uy, vx, vy float64) float64 {
	return math.Atan2(ux*vy-uy*vx, ux*vx+uy*vy)
}
