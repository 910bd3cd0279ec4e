package tetris

// Cell is a single board cell: empty, or filled by a locked piece.
// The shape is kept only so the renderer can color locked cells.
type Cell struct {
	Filled bool
	Shape  Shape
}

// Board is an immutable grid of width x height cells. Every operation
// returns a new Board; the receiver is never mutated. Grids are small
// (10x20 typically) so copy-on-write is a full copy.
type Board struct {
	width  int
	height int
	cells  []Cell // row-major: cells[y*width+x]
}

// NewBoard creates an empty board with the given dimensions.
func NewBoard(width, height int) Board {
	return Board{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
}

// Width returns the board width in cells.
func (b Board) Width() int {
	return b.width
}

// Height returns the board height in cells.
func (b Board) Height() int {
	return b.height
}

// inBounds reports whether the position lies inside the grid.
func (b Board) inBounds(p Position) bool {
	return p.X >= 0 && p.X < b.width && p.Y >= 0 && p.Y < b.height
}

// Get returns the cell at p. The second result is false if p is out of bounds.
func (b Board) Get(p Position) (Cell, bool) {
	if !b.inBounds(p) {
		return Cell{}, false
	}
	return b.cells[p.Y*b.width+p.X], true
}

// CanPlace reports whether every block is in bounds and currently empty.
func (b Board) CanPlace(blocks []Position) bool {
	for _, p := range blocks {
		if !b.inBounds(p) {
			return false
		}
		if b.cells[p.Y*b.width+p.X].Filled {
			return false
		}
	}
	return true
}

// IsBlocked reports whether the blocks cannot be placed. Used for the
// spawn-blocked game over check.
func (b Board) IsBlocked(blocks []Position) bool {
	return !b.CanPlace(blocks)
}

// PlaceCell returns a board with the cell at p replaced. Out-of-bounds
// positions leave the board unchanged.
func (b Board) PlaceCell(p Position, c Cell) Board {
	if !b.inBounds(p) {
		return b
	}
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	cells[p.Y*b.width+p.X] = c
	return Board{width: b.width, height: b.height, cells: cells}
}

// Place returns a board with every block stamped as filled by shape.
// Called once per piece, at lock time.
func (b Board) Place(blocks []Position, shape Shape) Board {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	for _, p := range blocks {
		if !b.inBounds(p) {
			continue
		}
		cells[p.Y*b.width+p.X] = Cell{Filled: true, Shape: shape}
	}
	return Board{width: b.width, height: b.height, cells: cells}
}

// DropDistance returns how many rows the blocks can shift straight down
// while still placeable. Counted by probing one row at a time, since cell
// occupancy under the piece can be irregular.
func (b Board) DropDistance(blocks []Position) int {
	distance := 0
	shifted := make([]Position, len(blocks))
	copy(shifted, blocks)
	for {
		for i := range shifted {
			shifted[i].Y++
		}
		if !b.CanPlace(shifted) {
			return distance
		}
		distance++
	}
}

// CompletedRows returns the indices of rows where every cell is filled.
func (b Board) CompletedRows() []int {
	var rows []int
	for y := range b.height {
		full := true
		for x := range b.width {
			if !b.cells[y*b.width+x].Filled {
				full = false
				break
			}
		}
		if full {
			rows = append(rows, y)
		}
	}
	return rows
}

// ClearCompletedRows removes all completed rows, inserts that many empty
// rows at the top, and returns the new board plus the cleared count.
// With nothing to clear the receiver is returned unchanged.
func (b Board) ClearCompletedRows() (Board, int) {
	completed := b.CompletedRows()
	if len(completed) == 0 {
		return b, 0
	}

	isCompleted := make(map[int]bool, len(completed))
	for _, y := range completed {
		isCompleted[y] = true
	}

	cells := make([]Cell, len(b.cells))
	// Copy surviving rows bottom-up, then the top rows stay empty.
	dst := b.height - 1
	for y := b.height - 1; y >= 0; y-- {
		if isCompleted[y] {
			continue
		}
		copy(cells[dst*b.width:(dst+1)*b.width], b.cells[y*b.width:(y+1)*b.width])
		dst--
	}

	return Board{width: b.width, height: b.height, cells: cells}, len(completed)
}
