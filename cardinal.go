package cmath

// CardinalDirection names one of the eight compass handles of a rectangle.
type CardinalDirection string

const (
	North     CardinalDirection = "n"
	East      CardinalDirection = "e"
	South     CardinalDirection = "s"
	West      CardinalDirection = "w"
	NorthEast CardinalDirection = "ne"
	SouthEast CardinalDirection = "se"
	SouthWest CardinalDirection = "sw"
	NorthWest CardinalDirection = "nw"
)

// CardinalDirections lists every direction clockwise from north.
var CardinalDirections = [8]CardinalDirection{
	North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest,
}

// Opposite returns the direction on the other side of the rectangle,
// which is the fixed anchor when resizing from d.
func (d CardinalDirection) Opposite() CardinalDirection {
	switch d {
	case North:
		return South
	case East:
		return West
	case South:
		return North
	case West:
		return East
	case NorthEast:
		return SouthWest
	case SouthEast:
		return NorthWest
	case SouthWest:
		return NorthEast
	case NorthWest:
		return SouthEast
	}
	return d
}

// unit returns the direction as fractions of the width and height,
// measured from the top-left corner.
func (d CardinalDirection) unit() (fx, fy float64) {
	switch d {
	case North:
		return 0.5, 0
	case East:
		return 1, 0.5
	case South:
		return 0.5, 1
	case West:
		return 0, 0.5
	case NorthEast:
		return 1, 0
	case SouthEast:
		return 1, 1
	case SouthWest:
		return 0, 1
	case NorthWest:
		return 0, 0
	}
	return 0.5, 0.5
}

// CardinalPoint returns the handle position of r in direction d.
// An unknown direction yields the center.
func (r Rectangle) CardinalPoint(d CardinalDirection) Vector2 {
	fx, fy := d.unit()
	return Vector2{X: r.X + r.Width*fx, Y: r.Y + r.Height*fy}
}

// NinePoints returns the 3x3 grid of reference points in row-major order:
// top-left, top-center, top-right, middle-left, center, middle-right,
// bottom-left, bottom-center, bottom-right.
func (r Rectangle) NinePoints() [9]Vector2 {
	var pts [9]Vector2
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			pts[row*3+col] = Vector2{
				X: r.X + r.Width*float64(col)/2,
				Y: r.Y + r.Height*float64(row)/2,
			}
		}
	}
	return pts
}
