package cmath

import (
	"math"
	"testing"
)

func almostEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) < epsilon
}

func verifyRoots(t *testing.T, name string, roots, expected []float64, epsilon float64) {
	t.Helper()

	if len(roots) != len(expected) {
		t.Errorf("%s: got %d roots, want %d. roots=%v, expected=%v",
			name, len(roots), len(expected), roots, expected)
		return
	}
	for i := range roots {
		if !almostEqual(roots[i], expected[i], epsilon) {
			t.Errorf("%s: root[%d] = %v, want %v", name, i, roots[i], expected[i])
		}
	}
}

func TestSolveQuadratic(t *testing.T) {
	tests := []struct {
		name     string
		a, b, c  float64
		expected []float64
	}{
		{"two roots", 1, 0, -5, []float64{-math.Sqrt(5), math.Sqrt(5)}},
		{"no real roots", 1, 0, 5, nil},
		{"factored", 1, -3, 2, []float64{1, 2}},
		{"double root", 1, -2, 1, []float64{1}},
		{"negative leading", -2, 0, 8, []float64{-2, 2}},
		{"linear", 0, 2, -4, []float64{2}},
		{"constant", 0, 0, 1, nil},
		{"all zero", 0, 0, 0, []float64{0}},
		{"zero root", 1, 4, 0, []float64{-4, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verifyRoots(t, tt.name, SolveQuadratic(tt.a, tt.b, tt.c), tt.expected, 1e-9)
		})
	}
}

func TestSolveQuadraticInUnitInterval(t *testing.T) {
	tests := []struct {
		name     string
		a, b, c  float64
		expected []float64
	}{
		{"one inside", 1, -3, 2, []float64{1}},
		{"both inside", 1, -1, 0.21, []float64{0.3, 0.7}},
		{"none inside", 1, 0, -5, nil},
		{"linear inside", 0, 2, -1, []float64{0.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verifyRoots(t, tt.name, SolveQuadraticInUnitInterval(tt.a, tt.b, tt.c), tt.expected, 1e-9)
		})
	}
}
