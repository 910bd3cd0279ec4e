package tetris

// ActivePiece is the falling tetromino: a shape at a position in a rotation.
// It is a value; movement and rotation return replacement pieces.
type ActivePiece struct {
	Shape Shape
	Pos   Position
	Rot   Rotation
}

// kick offsets tried in order when a plain rotation collides. The I piece
// gets wider kicks because its pivot sits off-center in a 4-wide box.
var (
	commonKicks = []Position{{0, 0}, {-1, 0}, {1, 0}, {0, -1}}
	iKicks      = []Position{{0, 0}, {-1, 0}, {1, 0}, {-2, 0}, {2, 0}, {0, -1}}
)

// Spawn creates a piece at its starting position: rotation R0, bounding box
// centered horizontally, top row at y=0.
func Spawn(shape Shape, boardWidth int) ActivePiece {
	return ActivePiece{
		Shape: shape,
		Pos:   Position{X: (boardWidth - shape.BoxSize()) / 2, Y: 0},
		Rot:   R0,
	}
}

// Blocks returns the four cells the piece occupies on the board.
func (p ActivePiece) Blocks() []Position {
	rel := p.Shape.Blocks(p.Rot)
	blocks := make([]Position, 4)
	for i, b := range rel {
		blocks[i] = Position{X: p.Pos.X + b.X, Y: p.Pos.Y + b.Y}
	}
	return blocks
}

// shifted returns the piece moved by (dx, dy).
func (p ActivePiece) shifted(dx, dy int) ActivePiece {
	p.Pos.X += dx
	p.Pos.Y += dy
	return p
}

// tryShift moves the piece if the destination is legal on the board.
func (p ActivePiece) tryShift(board Board, dx, dy int) (ActivePiece, bool) {
	moved := p.shifted(dx, dy)
	if !board.CanPlace(moved.Blocks()) {
		return p, false
	}
	return moved, true
}

// TryMoveLeft attempts a one-cell shift left.
func (p ActivePiece) TryMoveLeft(board Board) (ActivePiece, bool) {
	return p.tryShift(board, -1, 0)
}

// TryMoveRight attempts a one-cell shift right.
func (p ActivePiece) TryMoveRight(board Board) (ActivePiece, bool) {
	return p.tryShift(board, 1, 0)
}

// TryMoveDown attempts a one-cell descent. False means the piece has landed.
func (p ActivePiece) TryMoveDown(board Board) (ActivePiece, bool) {
	return p.tryShift(board, 0, 1)
}

// HardDropOn returns the piece shifted to its resting position and the
// number of rows dropped. Always succeeds; distance is 0 when resting.
func (p ActivePiece) HardDropOn(board Board) (ActivePiece, int) {
	distance := board.DropDistance(p.Blocks())
	return p.shifted(0, distance), distance
}

// RotateOn attempts a quarter turn, trying wall-kick offsets in order until
// the rotated footprint fits. The O piece has a single visual orientation;
// its rotation state still advances so the operation stays cyclic.
func (p ActivePiece) RotateOn(board Board, clockwise bool) (ActivePiece, bool) {
	rotated := p
	if clockwise {
		rotated.Rot = p.Rot.Clockwise()
	} else {
		rotated.Rot = p.Rot.CounterClockwise()
	}

	kicks := commonKicks
	switch p.Shape {
	case ShapeI:
		kicks = iKicks
	case ShapeO:
		// Footprint is rotation-invariant, no kicks needed.
		kicks = []Position{{0, 0}}
	}

	for _, k := range kicks {
		candidate := rotated.shifted(k.X, k.Y)
		if board.CanPlace(candidate.Blocks()) {
			return candidate, true
		}
	}
	return p, false
}
