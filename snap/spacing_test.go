package snap

import (
	"slices"
	"testing"

	"github.com/gogpu/cmath"
)

func TestSnapSpacing(t *testing.T) {
	g := Distribution([]cmath.Range{{Start: 0, End: 10}, {Start: 20, End: 30}})
	tests := []struct {
		name     string
		agent    cmath.Range
		wantOK   bool
		wantDist float64
		wantSide Side
	}{
		{"after", cmath.Range{Start: 38, End: 48}, true, 2, SideA},
		{"before", cmath.Range{Start: -25, End: -12}, true, 2, SideB},
		{"too far", cmath.Range{Start: 60, End: 70}, false, 0, SideA},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SnapSpacing(tt.agent, g, 5, 0)
			if err != nil {
				t.Fatal(err)
			}
			if got.OK() != tt.wantOK {
				t.Fatalf("OK() = %v, want %v", got.OK(), tt.wantOK)
			}
			if !tt.wantOK {
				if got.Delta() != 0 || len(got.Hits) != 0 {
					t.Errorf("no-snap result %+v", got)
				}
				return
			}
			if got.Distance != tt.wantDist {
				t.Errorf("Distance = %v, want %v", got.Distance, tt.wantDist)
			}
			if len(got.Hits) != 1 || got.Hits[0].Side != tt.wantSide || got.Hits[0].Loop != 0 {
				t.Errorf("Hits = %+v", got.Hits)
			}
		})
	}
}

func TestSnapSpacingBothSides(t *testing.T) {
	// A 4-wide agent centered in the gap hits both center projections.
	g := Distribution([]cmath.Range{{Start: 0, End: 10}, {Start: 20, End: 30}}, WithAgentLength(4))
	got, err := SnapSpacing(cmath.Range{Start: 12, End: 16}, g, 5, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got.Distance != 1 {
		t.Fatalf("Distance = %v, want 1", got.Distance)
	}
	sides := make([]Side, len(got.Hits))
	for i, h := range got.Hits {
		sides[i] = h.Side
		if h.Projection.Kind != ProjectionCenter {
			t.Errorf("hit %d kind = %v, want center", i, h.Projection.Kind)
		}
	}
	if !slices.Equal(sides, []Side{SideA, SideB}) {
		t.Errorf("sides = %v, want [A B]", sides)
	}
}
