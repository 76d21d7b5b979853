package cmath

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Epsilon is the tolerance used by approximate comparisons in this package.
const Epsilon = 1e-9

// Quantize rounds value to the nearest multiple of step.
//
// Halves round up (towards +Inf), and the result is trimmed to the number of
// decimals in step, so Quantize(0.1123, 0.1) is exactly 0.1 rather than
// 0.10000000000000002.
func Quantize(value, step float64) (float64, error) {
	if !(step > 0) || math.IsInf(step, 0) {
		return 0, fmt.Errorf("%w: quantize step must be positive, got %v", ErrInvalidArgument, step)
	}
	q := math.Floor(value/step+0.5) * step
	return roundDecimals(q, decimals(step)), nil
}

// decimals returns the number of fractional digits in the shortest
// decimal representation of v.
func decimals(v float64) int {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return len(s) - i - 1
	}
	return 0
}

func roundDecimals(v float64, n int) float64 {
	if n == 0 {
		return math.Round(v)
	}
	p := math.Pow(10, float64(n))
	return math.Round(v*p) / p
}

// Clamp limits value to the closed interval [lo, hi].
func Clamp(value, lo, hi float64) float64 {
	return math.Min(math.Max(value, lo), hi)
}

// Lerp linearly interpolates between a and b. t=0 returns a, t=1 returns b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// ApproxEqual reports whether a and b differ by at most eps.
func ApproxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

// Nearest returns the point closest to value. On ties the earliest point
// wins. It reports false when points is empty.
func Nearest(value float64, points ...float64) (float64, bool) {
	if len(points) == 0 {
		return value, false
	}
	best := points[0]
	bestDist := math.Abs(best - value)
	for _, p := range points[1:] {
		if d := math.Abs(p - value); d < bestDist {
			best, bestDist = p, d
		}
	}
	return best, true
}

// PrincipalAngle normalizes an angle in degrees to (-180, 180].
func PrincipalAngle(deg float64) float64 {
	a := math.Mod(deg, 360)
	if a <= -180 {
		a += 360
	} else if a > 180 {
		a -= 360
	}
	return a
}

// ToRadians converts degrees to radians.
func ToRadians(deg float64) float64 { return deg * math.Pi / 180 }

// ToDegrees converts radians to degrees.
func ToDegrees(rad float64) float64 { return rad * 180 / math.Pi }

// isFinite returns true if x is neither infinite nor NaN.
func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}
