package layout

import (
	"errors"
	"slices"
	"testing"

	"github.com/gogpu/cmath"
)

func TestGuess(t *testing.T) {
	tests := []struct {
		name      string
		rects     []cmath.Rectangle
		direction Direction
		spacing   float64
		order     []int
		alignment CrossAlignment
	}{
		{
			name: "row",
			rects: []cmath.Rectangle{
				cmath.Rect(0, 0, 50, 50), cmath.Rect(60, 0, 50, 50), cmath.Rect(120, 0, 50, 50),
			},
			direction: Horizontal,
			spacing:   10,
			order:     []int{0, 1, 2},
			alignment: AlignStart,
		},
		{
			name: "centered column out of order",
			rects: []cmath.Rectangle{
				cmath.Rect(40, 30, 20, 20), cmath.Rect(30, 0, 40, 20), cmath.Rect(20, 60, 60, 20),
			},
			direction: Vertical,
			spacing:   10,
			order:     []int{1, 0, 2},
			alignment: AlignCenter,
		},
		{
			name: "bottom aligned row",
			rects: []cmath.Rectangle{
				cmath.Rect(0, 10, 20, 30), cmath.Rect(30, 20, 20, 20), cmath.Rect(60, 0, 20, 40),
			},
			direction: Horizontal,
			spacing:   10,
			order:     []int{0, 1, 2},
			alignment: AlignEnd,
		},
		{
			name:      "overlap clamps spacing",
			rects:     []cmath.Rectangle{cmath.Rect(0, 0, 100, 10), cmath.Rect(50, 0, 100, 10)},
			direction: Vertical,
			spacing:   0,
			order:     []int{0, 1},
			alignment: AlignStart,
		},
		{
			name:      "single tall rectangle",
			rects:     []cmath.Rectangle{cmath.Rect(0, 0, 10, 30)},
			direction: Vertical,
			spacing:   0,
			order:     []int{0},
			alignment: AlignStart,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Guess(tt.rects)
			if err != nil {
				t.Fatal(err)
			}
			if got.Direction != tt.direction {
				t.Errorf("Direction = %v, want %v", got.Direction, tt.direction)
			}
			if got.Spacing != tt.spacing {
				t.Errorf("Spacing = %v, want %v", got.Spacing, tt.spacing)
			}
			if !slices.Equal(got.Order, tt.order) {
				t.Errorf("Order = %v, want %v", got.Order, tt.order)
			}
			if got.Alignment != tt.alignment {
				t.Errorf("Alignment = %v, want %v", got.Alignment, tt.alignment)
			}
		})
	}
}

func TestGuessEmpty(t *testing.T) {
	if _, err := Guess(nil); !errors.Is(err, cmath.ErrInvalidArgument) {
		t.Errorf("Guess(nil) error = %v, want ErrInvalidArgument", err)
	}
}

// Arranging rectangles with their own guessed layout reproduces them.
func TestArrangeReproduces(t *testing.T) {
	for _, rects := range [][]cmath.Rectangle{
		{cmath.Rect(0, 0, 50, 50), cmath.Rect(60, 0, 50, 50), cmath.Rect(120, 0, 50, 50)},
		{cmath.Rect(40, 30, 20, 20), cmath.Rect(30, 0, 40, 20), cmath.Rect(20, 60, 60, 20)},
		{cmath.Rect(0, 10, 20, 30), cmath.Rect(30, 20, 20, 20), cmath.Rect(60, 0, 20, 40)},
	} {
		res, err := Guess(rects)
		if err != nil {
			t.Fatal(err)
		}
		if got := Arrange(rects, res); !slices.Equal(got, rects) {
			t.Errorf("Arrange = %v, want %v", got, rects)
		}
	}
}

func TestArrangeSpacing(t *testing.T) {
	rects := []cmath.Rectangle{cmath.Rect(0, 0, 10, 10), cmath.Rect(13, 0, 10, 10), cmath.Rect(40, 5, 10, 10)}
	res := Result{Direction: Horizontal, Spacing: 5, Order: []int{0, 1, 2}, Alignment: AlignStart, Bounds: cmath.Rect(0, 0, 50, 15)}
	want := []cmath.Rectangle{cmath.Rect(0, 0, 10, 10), cmath.Rect(15, 0, 10, 10), cmath.Rect(30, 0, 10, 10)}
	if got := Arrange(rects, res); !slices.Equal(got, want) {
		t.Errorf("Arrange = %v, want %v", got, want)
	}
}
