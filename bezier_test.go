package cmath

import (
	"math"
	"math/rand/v2"
	"testing"
)

// Every sampled point of a segment lies inside its bounding box.
func TestBoundingBoxContainsSamples(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 8))
	coord := func() float64 { return rng.Float64()*400 - 200 }

	for i := 0; i < 500; i++ {
		seg := CubicBezierWithTangents{
			A:  V2(coord(), coord()),
			B:  V2(coord(), coord()),
			TA: V2(coord(), coord()),
			TB: V2(coord(), coord()),
		}
		box, _ := seg.BoundingBox().Pad(UniformPadding(1e-6))
		c := seg.Cubic()
		for s := 0; s < 100; s++ {
			p := c.Eval(float64(s) / 99)
			if !box.ContainsPoint(p) {
				t.Fatalf("segment %+v: sample %v at t=%v outside %v", seg, p, float64(s)/99, box)
			}
		}
	}
}

func TestBoundingBoxTight(t *testing.T) {
	// A symmetric arch peaks at t=0.5: y = 0.75 * 100.
	c := CubicBezier{P0: V2(0, 0), P1: V2(0, 100), P2: V2(100, 100), P3: V2(100, 0)}
	box := c.BoundingBox()
	want := Rect(0, 0, 100, 75)
	if !box.Min().Approx(want.Min(), 1e-9) || !box.Size().Approx(want.Size(), 1e-9) {
		t.Errorf("BoundingBox = %v, want %v", box, want)
	}
}

func TestBoundingBoxStraight(t *testing.T) {
	seg := CubicBezierWithTangents{A: V2(10, 40), B: V2(-5, 20)}
	if got := seg.BoundingBox(); got != Rect(-5, 20, 15, 20) {
		t.Errorf("BoundingBox = %v, want {-5 20 15 20}", got)
	}

	// Collinear handles reduce the derivative to a constant on one axis.
	flat := CubicBezier{P0: V2(0, 5), P1: V2(1, 5), P2: V2(2, 5), P3: V2(3, 5)}
	if got := flat.BoundingBox(); got != Rect(0, 5, 3, 0) {
		t.Errorf("flat BoundingBox = %v, want {0 5 3 0}", got)
	}
}

func TestTangentsRoundTrip(t *testing.T) {
	c := CubicBezier{P0: V2(1, 2), P1: V2(3, 5), P2: V2(7, 1), P3: V2(9, 9)}
	if got := c.Tangents().Cubic(); got != c {
		t.Errorf("Tangents().Cubic() = %+v, want %+v", got, c)
	}
}

func TestArcToCubics(t *testing.T) {
	// Half circle of radius 10 around (10, 0).
	segs := ArcToCubics(V2(0, 0), 10, 10, 0, false, true, V2(20, 0))
	if len(segs) != 2 {
		t.Fatalf("got %d segments, want 2", len(segs))
	}
	if segs[0].P0 != V2(0, 0) || segs[1].P3 != V2(20, 0) {
		t.Errorf("endpoints = %v, %v", segs[0].P0, segs[1].P3)
	}
	if segs[0].P3 != segs[1].P0 {
		t.Errorf("segments are not continuous: %v != %v", segs[0].P3, segs[1].P0)
	}
	for i, s := range segs {
		for k := 0; k <= 10; k++ {
			p := s.Eval(float64(k) / 10)
			if d := p.Distance(V2(10, 0)); math.Abs(d-10) > 0.01 {
				t.Errorf("segment %d sample %v is %v from center, want 10", i, p, d)
			}
		}
	}
}

func TestArcToCubicsSegmentCount(t *testing.T) {
	// A large arc sweeping 270 degrees needs three segments.
	segs := ArcToCubics(V2(10, 0), 10, 10, 0, true, true, V2(0, -10))
	if len(segs) != 3 {
		t.Fatalf("got %d segments, want 3", len(segs))
	}
	if segs[2].P3 != V2(0, -10) {
		t.Errorf("end = %v, want (0, -10)", segs[2].P3)
	}
}

func TestArcToCubicsDegenerate(t *testing.T) {
	if got := ArcToCubics(V2(1, 1), 5, 5, 0, false, true, V2(1, 1)); got != nil {
		t.Errorf("zero-length arc = %v, want nil", got)
	}
	got := ArcToCubics(V2(0, 0), 0, 5, 0, false, true, V2(6, 0))
	if len(got) != 1 || got[0] != Line(V2(0, 0), V2(6, 0)) {
		t.Errorf("zero-radius arc = %v, want a single line", got)
	}

	// Radii too small to span the endpoints are scaled up to a half circle.
	segs := ArcToCubics(V2(0, 0), 1, 1, 0, false, true, V2(20, 0))
	for _, s := range segs {
		if d := s.Eval(0.5).Distance(V2(10, 0)); math.Abs(d-10) > 0.01 {
			t.Errorf("midpoint is %v from center, want 10", d)
		}
	}
}
