package tetris

// Rotation is one of the four discrete orientations of a piece.
type Rotation int

const (
	R0 Rotation = iota
	R90
	R180
	R270
)

const rotationCount = 4

// Clockwise returns the next rotation in clockwise order.
func (r Rotation) Clockwise() Rotation {
	return (r + 1) % rotationCount
}

// CounterClockwise returns the next rotation in counter-clockwise order.
func (r Rotation) CounterClockwise() Rotation {
	return (r + rotationCount - 1) % rotationCount
}

func (r Rotation) String() string {
	switch r {
	case R0:
		return "R0"
	case R90:
		return "R90"
	case R180:
		return "R180"
	case R270:
		return "R270"
	default:
		return "unknown"
	}
}
