package cmath

import (
	"math"
	"testing"
)

func TestMeasure(t *testing.T) {
	tests := []struct {
		name    string
		a, b    Rectangle
		wantBox Rectangle
		want    [4]float64
	}{
		{"right of", Rect(0, 0, 10, 10), Rect(20, 0, 10, 10), Rect(0, 0, 10, 10), [4]float64{0, 10, 0, 0}},
		{"below left", Rect(50, 0, 10, 10), Rect(0, 30, 10, 10), Rect(50, 0, 10, 10), [4]float64{0, 0, 20, 40}},
		{"above", Rect(0, 50, 10, 10), Rect(0, 0, 10, 10), Rect(0, 50, 10, 10), [4]float64{40, 0, 0, 0}},
		{"overlap", Rect(0, 0, 10, 10), Rect(5, 5, 10, 10), Rect(5, 5, 5, 5), [4]float64{5, 5, 5, 5}},
		{"inside", Rect(0, 0, 100, 100), Rect(10, 20, 30, 40), Rect(10, 20, 30, 40), [4]float64{20, 60, 40, 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := Measure(tt.a, tt.b)
			if !ok {
				t.Fatal("Measure reported nothing to measure")
			}
			if m.Box != tt.wantBox {
				t.Errorf("Box = %v, want %v", m.Box, tt.wantBox)
			}
			if m.Distance != tt.want {
				t.Errorf("Distance = %v, want %v", m.Distance, tt.want)
			}
		})
	}
}

func TestMeasureIdentical(t *testing.T) {
	r := Rect(1, 2, 3, 4)
	if _, ok := Measure(r, r); ok {
		t.Error("Measure of identical rectangles reported ok")
	}
}

func TestNearestRectangle(t *testing.T) {
	rects := []Rectangle{Rect(0, 0, 10, 10), Rect(10, 0, 10, 10), Rect(20, 0, 10, 10)}
	target := Rect(5, 5, 10, 10)

	i, d, ok := NearestRectangle(target, rects)
	if !ok || i != 0 {
		t.Fatalf("NearestRectangle = %d, %v, want 0, true", i, ok)
	}
	if want := V2(10, 10).Distance(V2(5, 5)); math.Abs(d-want) > 1e-12 {
		t.Errorf("distance = %v, want %v", d, want)
	}

	if _, _, ok := NearestRectangle(target, nil); ok {
		t.Error("NearestRectangle(nil) reported ok")
	}
}

func TestNearestPoint(t *testing.T) {
	i, d, ok := NearestPoint(V2(0, 0), []Vector2{V2(5, 5), V2(-1, 0), V2(0, 1)})
	if !ok || i != 1 || d != 1 {
		t.Errorf("NearestPoint = %d, %v, %v, want 1, 1, true", i, d, ok)
	}
}
