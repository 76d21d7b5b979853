package raster

import (
	"math"

	"github.com/gogpu/cmath"
)

// Falloff maps a normalized distance from a brush center (0 at the center,
// 1 at the radius) to an opacity in [0, 1]. hardness in [0, 1] selects
// between a soft and a hard edge.
type Falloff func(x, hardness float64) float64

// Decay constants interpolated by hardness.
const (
	gaussianSteep  = 6.0 // soft brush: opacity fades quickly from the center
	gaussianGentle = 1.0 // hard brush: opacity holds until the radius

	smoothstepGentleOrder = 1 // soft brush: classic 3x^2 - 2x^3 shoulder
	smoothstepSteepOrder  = 6 // hard brush: plateau with a sharp edge
)

// Gaussian returns exp(-k*x^2), with k interpolated from a steep decay at
// hardness 0 to a gentle one at hardness 1. It is 0 beyond the radius.
func Gaussian(x, hardness float64) float64 {
	x = math.Abs(x)
	if x >= 1 {
		return 0
	}
	k := cmath.Lerp(gaussianSteep, gaussianGentle, cmath.Clamp(hardness, 0, 1))
	return math.Exp(-k * x * x)
}

// Smoothstep returns 1 - S_n(x), where S_n is the generalized smoothstep
// whose order n grows with hardness. It is exactly 1 at the center and 0
// at and beyond the radius.
func Smoothstep(x, hardness float64) float64 {
	order := int(math.Round(cmath.Lerp(smoothstepGentleOrder, smoothstepSteepOrder, cmath.Clamp(hardness, 0, 1))))
	return 1 - GeneralizedSmoothstep(order, math.Abs(x))
}

// GeneralizedSmoothstep evaluates the order-n smoothstep polynomial
//
//	S_n(x) = x^(n+1) * sum_{k=0..n} C(n+k, k) * C(2n+1, n-k) * (-x)^k
//
// clamped to [0, 1] outside the unit interval. S_1 is 3x^2 - 2x^3.
func GeneralizedSmoothstep(n int, x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}
	n = max(n, 0)
	sum := 0.0
	for k := 0; k <= n; k++ {
		sum += binomial(n+k, k) * binomial(2*n+1, n-k) * math.Pow(-x, float64(k))
	}
	return math.Pow(x, float64(n+1)) * sum
}

// HermiteSmoothstep is the classic 3t^2 - 2t^3 interpolation of x between
// edge0 and edge1.
func HermiteSmoothstep(edge0, edge1, x float64) float64 {
	if edge0 == edge1 {
		if x < edge0 {
			return 0
		}
		return 1
	}
	t := cmath.Clamp((x-edge0)/(edge1-edge0), 0, 1)
	return t * t * (3 - 2*t)
}

func binomial(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	r := 1.0
	for i := 1; i <= k; i++ {
		r = r * float64(n-k+i) / float64(i)
	}
	return r
}
