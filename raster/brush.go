package raster

import (
	"image/color"
	"math"

	"github.com/gogpu/cmath"
)

// Stamp paints one soft brush dab of color c centered at center, in place.
// Each covered pixel receives c with its alpha scaled by
// falloff(distance/radius, hardness), composited source-over. A nil falloff
// paints a hard disc. It returns the number of pixels touched.
func Stamp(b *Bitmap, center cmath.Vector2, radius float64, c color.NRGBA, hardness float64, falloff Falloff) int {
	if !(radius > 0) {
		return 0
	}
	touched := 0
	for _, p := range Circle(center, radius, WithClip(b.Bounds())) {
		x := math.Hypot(float64(p.X)-center.X, float64(p.Y)-center.Y) / radius
		opacity := 1.0
		if falloff != nil {
			opacity = falloff(x, hardness)
		}
		alpha := float64(c.A) / 255 * opacity
		if alpha <= 0 {
			continue
		}
		b.Set(p.X, p.Y, over(b.At(p.X, p.Y), c, alpha))
		touched++
	}
	return touched
}

// over composites src with opacity sa onto dst, both non-premultiplied.
func over(dst, src color.NRGBA, sa float64) color.NRGBA {
	da := float64(dst.A) / 255
	oa := sa + da*(1-sa)
	if oa <= 0 {
		return color.NRGBA{}
	}
	ch := func(s, d uint8) uint8 {
		v := (float64(s)*sa + float64(d)*da*(1-sa)) / oa
		return uint8(math.Round(cmath.Clamp(v, 0, 255)))
	}
	return color.NRGBA{
		R: ch(src.R, dst.R),
		G: ch(src.G, dst.G),
		B: ch(src.B, dst.B),
		A: uint8(math.Round(oa * 255)),
	}
}
