package cmath

import (
	"math"
	"sort"
)

// SolveQuadratic returns the real roots of a*t^2 + b*t + c = 0 in ascending
// order.
//
// When a is zero (or so small that the scaled coefficients overflow) the
// equation is solved as linear. All-zero coefficients yield the single root
// 0 so callers still get a candidate parameter.
func SolveQuadratic(a, b, c float64) []float64 {
	p := b / a
	q := c / a
	if !isFinite(p) || !isFinite(q) {
		return solveLinear(b, c)
	}

	disc := p*p - 4*q
	switch {
	case !isFinite(disc):
		// p*p overflowed: one root is ~ -p, the other follows from Vieta.
		return orderedRoots(-p, q/-p)
	case disc < 0:
		return nil
	case disc == 0:
		return []float64{-p / 2}
	}

	// Pick the sign that avoids cancellation, then use r1*r2 = q.
	r1 := -0.5 * (p + math.Copysign(math.Sqrt(disc), p))
	return orderedRoots(r1, q/r1)
}

func solveLinear(b, c float64) []float64 {
	if r := -c / b; isFinite(r) {
		return []float64{r}
	}
	if b == 0 && c == 0 {
		return []float64{0}
	}
	return nil
}

func orderedRoots(r1, r2 float64) []float64 {
	if !isFinite(r2) {
		return []float64{r1}
	}
	if r1 > r2 {
		r1, r2 = r2, r1
	}
	return []float64{r1, r2}
}

// SolveQuadraticInUnitInterval returns the roots of a*t^2 + b*t + c = 0 that
// lie in [0, 1]. Roots within 1e-12 of either end are clamped onto it.
func SolveQuadraticInUnitInterval(a, b, c float64) []float64 {
	const eps = 1e-12
	var out []float64
	for _, r := range SolveQuadratic(a, b, c) {
		if r < -eps || r > 1+eps {
			continue
		}
		out = append(out, Clamp(r, 0, 1))
	}
	sort.Float64s(out)
	return out
}
