package snap

import (
	"errors"
	"slices"
	"testing"

	"github.com/gogpu/cmath"
)

func TestScalar(t *testing.T) {
	tests := []struct {
		name        string
		point       float64
		targets     []float64
		threshold   float64
		wantOK      bool
		wantValue   float64
		wantDist    float64
		wantIndices []int
	}{
		{"tie reports every index", 22, []float64{10, 20, 20, 40}, 5, true, 20, 2, []int{1, 2}},
		{"below", 18, []float64{10, 20}, 5, true, 20, -2, []int{1}},
		{"threshold is inclusive", 25, []float64{20}, 5, true, 20, 5, []int{0}},
		{"just outside", 25.001, []float64{20}, 5, false, 25.001, 0, nil},
		{"no targets", 3, nil, 5, false, 3, 0, nil},
		{"zero threshold exact", 7, []float64{7}, 0, true, 7, 0, []int{0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Scalar(tt.point, tt.targets, tt.threshold)
			if err != nil {
				t.Fatal(err)
			}
			if got.OK() != tt.wantOK {
				t.Fatalf("OK() = %v, want %v (result %+v)", got.OK(), tt.wantOK, got)
			}
			if got.Value != tt.wantValue {
				t.Errorf("Value = %v, want %v", got.Value, tt.wantValue)
			}
			if !tt.wantOK {
				return
			}
			if got.Distance != tt.wantDist {
				t.Errorf("Distance = %v, want %v", got.Distance, tt.wantDist)
			}
			if !slices.Equal(got.Indices, tt.wantIndices) {
				t.Errorf("Indices = %v, want %v", got.Indices, tt.wantIndices)
			}
		})
	}
}

func TestScalarNegativeThreshold(t *testing.T) {
	if _, err := Scalar(1, []float64{1}, -1); !errors.Is(err, cmath.ErrInvalidArgument) {
		t.Errorf("error = %v, want ErrInvalidArgument", err)
	}
}

func TestVector(t *testing.T) {
	targets := []cmath.Vector2{cmath.V2(3, 4), cmath.V2(10, 0), cmath.V2(-3, -4)}
	got, err := Vector(cmath.V2(0, 0), targets, 5)
	if err != nil {
		t.Fatal(err)
	}
	if !got.OK() || got.Distance != 5 || got.Value != cmath.V2(3, 4) {
		t.Errorf("Vector = %+v", got)
	}
	if !slices.Equal(got.Indices, []int{0, 2}) {
		t.Errorf("Indices = %v, want [0 2]", got.Indices)
	}

	got, _ = Vector(cmath.V2(0, 0), targets, 4.9)
	if got.OK() {
		t.Errorf("Vector below threshold = %+v, want no snap", got)
	}
}

func TestDragThreshold(t *testing.T) {
	tests := []struct{ zoom, want float64 }{
		{1, 5},
		{2, 3},
		{0.5, 10},
		{0, 5},
		{-1, 5},
	}
	for _, tt := range tests {
		if got := DragThreshold(tt.zoom); got != tt.want {
			t.Errorf("DragThreshold(%v) = %v, want %v", tt.zoom, got, tt.want)
		}
	}
}
