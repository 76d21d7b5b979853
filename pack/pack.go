// Package pack places rectangles into the free space of a viewport.
//
// Free space is tracked as a list of rectangles. Every occupied region is
// subtracted from every free region with cmath.Subtract, and a new
// rectangle goes into the topmost, then leftmost, free region large enough
// to hold it. Subtract yields slabs with disjoint interiors inside the
// region they were cut from, so free regions never overlap each other.
package pack

import (
	"sort"

	"github.com/gogpu/cmath"
)

// Packer tracks the free space left in a viewport.
// A Packer is not safe for concurrent use.
type Packer struct {
	viewport cmath.Rectangle
	free     []cmath.Rectangle
}

// New returns a Packer whose free space is the whole viewport.
func New(viewport cmath.Rectangle) *Packer {
	return &Packer{
		viewport: viewport,
		free:     []cmath.Rectangle{viewport},
	}
}

// Viewport returns the rectangle the packer was created with.
func (p *Packer) Viewport() cmath.Rectangle {
	return p.viewport
}

// FreeRegions returns a copy of the current free regions.
func (p *Packer) FreeRegions() []cmath.Rectangle {
	out := make([]cmath.Rectangle, len(p.free))
	copy(out, p.free)
	return out
}

// Occupy removes the given regions from the free space.
func (p *Packer) Occupy(anchors ...cmath.Rectangle) {
	for _, anchor := range anchors {
		next := make([]cmath.Rectangle, 0, len(p.free)+3)
		for _, f := range p.free {
			next = append(next, cmath.Subtract(f, anchor)...)
		}
		p.free = next
	}
}

// Fit returns the topmost, then leftmost, position where a rectangle of
// the given size fits. It reports false when no free region is large
// enough or the size is negative.
func (p *Packer) Fit(size cmath.Vector2) (cmath.Rectangle, bool) {
	if size.X < 0 || size.Y < 0 {
		return cmath.Rectangle{}, false
	}
	var candidates []cmath.Rectangle
	for _, f := range p.free {
		if f.Width >= size.X && f.Height >= size.Y {
			candidates = append(candidates, f)
		}
	}
	if len(candidates) == 0 {
		cmath.Logger().Debug("pack: no free region fits",
			"size", size, "free", len(p.free), "viewport", p.viewport)
		return cmath.Rectangle{}, false
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Y != candidates[j].Y {
			return candidates[i].Y < candidates[j].Y
		}
		return candidates[i].X < candidates[j].X
	})
	best := candidates[0]
	return cmath.Rect(best.X, best.Y, size.X, size.Y), true
}

// Place finds a position like Fit and marks it as occupied.
func (p *Packer) Place(size cmath.Vector2) (cmath.Rectangle, bool) {
	r, ok := p.Fit(size)
	if ok {
		p.Occupy(r)
	}
	return r, ok
}

// Fit places a rectangle of the given size into viewport avoiding every
// anchor. It is the one-shot form of New, Occupy and Packer.Fit.
func Fit(viewport cmath.Rectangle, size cmath.Vector2, anchors []cmath.Rectangle) (cmath.Rectangle, bool) {
	p := New(viewport)
	p.Occupy(anchors...)
	return p.Fit(size)
}
