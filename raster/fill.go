package raster

import (
	"image"
	"image/color"
)

// FloodFill recolors the 4-connected region of pixels that exactly match
// the color at seed, in place, and returns how many pixels changed.
//
// The fill uses an explicit stack, so region size is bounded only by
// memory. Nothing is changed when seed is out of bounds or fill already
// equals the seed color.
func FloodFill(b *Bitmap, seed image.Point, fill color.NRGBA) int {
	if !b.InBounds(seed.X, seed.Y) {
		return 0
	}
	target := b.At(seed.X, seed.Y)
	if target == fill {
		return 0
	}

	filled := 0
	stack := []image.Point{seed}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !b.InBounds(p.X, p.Y) || b.At(p.X, p.Y) != target {
			continue
		}
		b.Set(p.X, p.Y, fill)
		filled++
		stack = append(stack,
			image.Point{X: p.X + 1, Y: p.Y},
			image.Point{X: p.X - 1, Y: p.Y},
			image.Point{X: p.X, Y: p.Y + 1},
			image.Point{X: p.X, Y: p.Y - 1},
		)
	}
	return filled
}
