// Package tetris implements the falling-block puzzle engine.
// The engine is pure: every operation maps (state, input) to (state, output)
// with no I/O, no timers, and no randomness beyond the seeded piece queue.
package tetris

// Shape identifies one of the seven tetrominoes.
type Shape int

const (
	ShapeI Shape = iota
	ShapeO
	ShapeT
	ShapeS
	ShapeZ
	ShapeJ
	ShapeL
)

// ShapeCount is the number of distinct tetromino shapes.
const ShapeCount = 7

// Position is a cell coordinate. X grows rightward, Y grows downward.
type Position struct {
	X, Y int
}

// baseBlocks holds each shape's four cells at rotation R0, expressed inside
// the shape's bounding box (I uses a 4x4 box, O a 2x2, the rest 3x3).
var baseBlocks = [ShapeCount][4]Position{
	ShapeI: {{0, 1}, {1, 1}, {2, 1}, {3, 1}},
	ShapeO: {{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	ShapeT: {{1, 0}, {0, 1}, {1, 1}, {2, 1}},
	ShapeS: {{1, 0}, {2, 0}, {0, 1}, {1, 1}},
	ShapeZ: {{0, 0}, {1, 0}, {1, 1}, {2, 1}},
	ShapeJ: {{0, 0}, {0, 1}, {1, 1}, {2, 1}},
	ShapeL: {{2, 0}, {0, 1}, {1, 1}, {2, 1}},
}

// blockTable caches the footprint of every shape at every rotation.
var blockTable [ShapeCount][rotationCount][4]Position

func init() {
	for s := range ShapeCount {
		shape := Shape(s)
		blocks := baseBlocks[s]
		for r := range rotationCount {
			blockTable[s][r] = blocks
			blocks = rotateBlocksCW(blocks, shape.BoxSize())
		}
	}
}

// rotateBlocksCW rotates a footprint a quarter turn clockwise inside its
// n x n bounding box: (x, y) -> (n-1-y, x).
func rotateBlocksCW(blocks [4]Position, n int) [4]Position {
	var out [4]Position
	for i, b := range blocks {
		out[i] = Position{X: n - 1 - b.Y, Y: b.X}
	}
	return out
}

// BoxSize returns the side of the shape's square bounding box.
func (s Shape) BoxSize() int {
	switch s {
	case ShapeI:
		return 4
	case ShapeO:
		return 2
	default:
		return 3
	}
}

// Blocks returns the shape's four cells for the given rotation, relative to
// the bounding box origin.
func (s Shape) Blocks(r Rotation) [4]Position {
	return blockTable[s][r]
}

// Valid reports whether s is one of the seven shapes.
func (s Shape) Valid() bool {
	return s >= ShapeI && s <= ShapeL
}

func (s Shape) String() string {
	switch s {
	case ShapeI:
		return "I"
	case ShapeO:
		return "O"
	case ShapeT:
		return "T"
	case ShapeS:
		return "S"
	case ShapeZ:
		return "Z"
	case ShapeJ:
		return "J"
	case ShapeL:
		return "L"
	default:
		return "?"
	}
}
