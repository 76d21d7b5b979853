package cmath

// Subtract removes b from a and returns the remaining area as up to four
// non-overlapping rectangles: the slabs above, below, left and right of
// the intersection. Slabs with zero extent are omitted. When b does not
// overlap a the result is [a].
func Subtract(a, b Rectangle) []Rectangle {
	in, ok := a.Intersection(b)
	if !ok {
		return []Rectangle{a}
	}

	out := make([]Rectangle, 0, 4)
	aRight, aBottom := a.X+a.Width, a.Y+a.Height
	inRight, inBottom := in.X+in.Width, in.Y+in.Height

	if top := in.Y - a.Y; top > 0 {
		out = append(out, Rectangle{X: a.X, Y: a.Y, Width: a.Width, Height: top})
	}
	if bottom := aBottom - inBottom; bottom > 0 {
		out = append(out, Rectangle{X: a.X, Y: inBottom, Width: a.Width, Height: bottom})
	}
	if left := in.X - a.X; left > 0 {
		out = append(out, Rectangle{X: a.X, Y: in.Y, Width: left, Height: in.Height})
	}
	if right := aRight - inRight; right > 0 {
		out = append(out, Rectangle{X: inRight, Y: in.Y, Width: right, Height: in.Height})
	}
	return out
}
