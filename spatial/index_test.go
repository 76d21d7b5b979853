package spatial

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/gogpu/cmath"
)

func fixture() *Index {
	return New(
		cmath.Rect(0, 0, 10, 10),  // 0
		cmath.Rect(10, 0, 10, 10), // 1, touches 0
		cmath.Rect(50, 50, 5, 5),  // 2
		cmath.Rect(20, 20, 0, 0),  // 3, a point
		cmath.Rect(5, 5, 10, 10),  // 4, overlaps 0 and 1
	)
}

func TestIndexQueries(t *testing.T) {
	x := fixture()
	tests := []struct {
		name string
		got  []int
		want []int
	}{
		{"intersecting includes touching", x.Intersecting(cmath.Rect(0, 0, 10, 10)), []int{0, 1, 4}},
		{"intersecting far away", x.Intersecting(cmath.Rect(100, 100, 1, 1)), nil},
		{"overlapping excludes touching", x.Overlapping(cmath.Rect(0, 0, 10, 10)), []int{0, 4}},
		{"at shared edge", x.At(cmath.V2(10, 2)), []int{0, 1}},
		{"at stacked", x.At(cmath.V2(7, 7)), []int{0, 4}},
		{"at point rectangle", x.At(cmath.V2(20, 20)), []int{3}},
		{"at nothing", x.At(cmath.V2(-1, -1)), nil},
		{"near reaches point", x.Near(cmath.Rect(25, 25, 1, 1), 5), []int{3}},
		{"near too far", x.Near(cmath.Rect(25, 25, 1, 1), 4), nil},
		{"near negative margin", x.Near(cmath.Rect(50, 50, 1, 1), -3), []int{2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !slices.Equal(tt.got, tt.want) {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestIndexInsert(t *testing.T) {
	x := New()
	if x.Len() != 0 {
		t.Fatalf("Len = %d, want 0", x.Len())
	}
	for i := range 3 {
		r := cmath.Rect(float64(i)*10, 0, 5, 5)
		if id := x.Insert(r); id != i {
			t.Fatalf("Insert id = %d, want %d", id, i)
		}
		if got := x.Rect(i); got != r {
			t.Errorf("Rect(%d) = %v, want %v", i, got, r)
		}
	}
	if x.Len() != 3 {
		t.Errorf("Len = %d, want 3", x.Len())
	}
	if got := x.Intersecting(cmath.Rect(12, 1, 1, 1)); !slices.Equal(got, []int{1}) {
		t.Errorf("Intersecting = %v, want [1]", got)
	}
}

func TestIndexNegativeSize(t *testing.T) {
	x := New(cmath.Rect(10, 10, -10, -10))
	if got := x.At(cmath.V2(5, 5)); !slices.Equal(got, []int{0}) {
		t.Errorf("At = %v, want [0]", got)
	}
}

func TestIndexMatchesLinearScan(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	var rects []cmath.Rectangle
	for range 300 {
		rects = append(rects, cmath.Rect(
			float64(rng.IntN(200)), float64(rng.IntN(200)),
			float64(rng.IntN(20)), float64(rng.IntN(20)),
		))
	}
	x := New(rects...)

	for range 200 {
		q := cmath.Rect(
			float64(rng.IntN(200)), float64(rng.IntN(200)),
			float64(rng.IntN(30)), float64(rng.IntN(30)),
		)
		var want []int
		for i, r := range rects {
			if r.Intersects(q) {
				want = append(want, i)
			}
		}
		if got := x.Intersecting(q); !slices.Equal(got, want) {
			t.Fatalf("Intersecting(%v) = %v, want %v", q, got, want)
		}

		p := q.Min()
		want = want[:0]
		for i, r := range rects {
			if r.ContainsPoint(p) {
				want = append(want, i)
			}
		}
		if got := x.At(p); !slices.Equal(got, want) {
			t.Fatalf("At(%v) = %v, want %v", p, got, want)
		}
	}
}

func BenchmarkIntersecting(b *testing.B) {
	rng := rand.New(rand.NewPCG(1, 2))
	x := New()
	for range 10000 {
		x.Insert(cmath.Rect(rng.Float64()*1000, rng.Float64()*1000, 1+rng.Float64()*20, 1+rng.Float64()*20))
	}
	q := cmath.Rect(500, 500, 30, 30)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = x.Intersecting(q)
	}
}
