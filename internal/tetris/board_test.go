package tetris

import "testing"

// boardFromRows builds a board from a layout where '.' is empty and any
// other rune is a filled cell.
func boardFromRows(rows []string) Board {
	b := NewBoard(len(rows[0]), len(rows))
	for y, row := range rows {
		for x, ch := range row {
			if ch != '.' {
				b = b.PlaceCell(Position{X: x, Y: y}, Cell{Filled: true, Shape: ShapeI})
			}
		}
	}
	return b
}

func TestBoardGet(t *testing.T) {
	b := NewBoard(10, 20)

	tests := []struct {
		name   string
		pos    Position
		inside bool
	}{
		{"origin", Position{0, 0}, true},
		{"bottom right", Position{9, 19}, true},
		{"left of grid", Position{-1, 0}, false},
		{"right of grid", Position{10, 0}, false},
		{"above grid", Position{0, -1}, false},
		{"below grid", Position{0, 20}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cell, ok := b.Get(tc.pos)
			if ok != tc.inside {
				t.Errorf("Get(%v) ok = %v, want %v", tc.pos, ok, tc.inside)
			}
			if ok && cell.Filled {
				t.Errorf("fresh board cell at %v should be empty", tc.pos)
			}
		})
	}
}

func TestBoardCanPlace(t *testing.T) {
	b := boardFromRows([]string{
		"....",
		"..X.",
		"....",
	})

	tests := []struct {
		name   string
		blocks []Position
		want   bool
	}{
		{"empty cells", []Position{{0, 0}, {1, 0}, {0, 1}}, true},
		{"occupied cell", []Position{{1, 1}, {2, 1}}, false},
		{"out of bounds x", []Position{{3, 0}, {4, 0}}, false},
		{"out of bounds y", []Position{{0, 2}, {0, 3}}, false},
		{"negative y", []Position{{0, -1}}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.CanPlace(tc.blocks); got != tc.want {
				t.Errorf("CanPlace(%v) = %v, want %v", tc.blocks, got, tc.want)
			}
			if got := b.IsBlocked(tc.blocks); got == tc.want {
				t.Errorf("IsBlocked(%v) should be the negation of CanPlace", tc.blocks)
			}
		})
	}
}

func TestBoardPlaceIsImmutable(t *testing.T) {
	before := NewBoard(4, 4)
	after := before.Place([]Position{{0, 0}, {1, 0}}, ShapeT)

	if cell, _ := before.Get(Position{0, 0}); cell.Filled {
		t.Error("Place must not mutate the receiver")
	}
	cell, _ := after.Get(Position{0, 0})
	if !cell.Filled || cell.Shape != ShapeT {
		t.Errorf("placed cell = %+v, want filled T", cell)
	}
}

func TestBoardPlaceCellOutOfBounds(t *testing.T) {
	b := NewBoard(4, 4)
	same := b.PlaceCell(Position{X: -1, Y: 0}, Cell{Filled: true, Shape: ShapeI})

	for y := range 4 {
		for x := range 4 {
			if cell, _ := same.Get(Position{X: x, Y: y}); cell.Filled {
				t.Fatalf("out-of-bounds PlaceCell changed cell (%d,%d)", x, y)
			}
		}
	}
}

func TestBoardDropDistance(t *testing.T) {
	tests := []struct {
		name   string
		rows   []string
		blocks []Position
		want   int
	}{
		{
			name:   "empty column",
			rows:   []string{"....", "....", "....", "...."},
			blocks: []Position{{0, 0}},
			want:   3,
		},
		{
			name:   "obstacle below",
			rows:   []string{"....", "....", "X...", "...."},
			blocks: []Position{{0, 0}},
			want:   1,
		},
		{
			name:   "already resting",
			rows:   []string{"....", "X...", "....", "...."},
			blocks: []Position{{0, 0}},
			want:   0,
		},
		{
			name: "irregular floor under wide piece",
			rows: []string{
				"....",
				"....",
				"..X.",
				"....",
			},
			blocks: []Position{{1, 0}, {2, 0}},
			want:   1,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := boardFromRows(tc.rows)
			if got := b.DropDistance(tc.blocks); got != tc.want {
				t.Errorf("DropDistance(%v) = %d, want %d", tc.blocks, got, tc.want)
			}
		})
	}
}

func TestBoardCompletedRows(t *testing.T) {
	b := boardFromRows([]string{
		"....",
		"XXXX",
		"XX.X",
		"XXXX",
	})

	rows := b.CompletedRows()
	if len(rows) != 2 || rows[0] != 1 || rows[1] != 3 {
		t.Errorf("CompletedRows() = %v, want [1 3]", rows)
	}
}

func TestBoardClearCompletedRows(t *testing.T) {
	b := boardFromRows([]string{
		".X..",
		"XXXX",
		"X..X",
		"XXXX",
	})

	cleared, count := b.ClearCompletedRows()
	if count != 2 {
		t.Fatalf("cleared count = %d, want 2", count)
	}

	// Survivors shift to the bottom, empties appear on top.
	want := []string{
		"....",
		"....",
		".X..",
		"X..X",
	}
	for y, row := range want {
		for x, ch := range row {
			cell, _ := cleared.Get(Position{X: x, Y: y})
			if cell.Filled != (ch != '.') {
				t.Errorf("cell (%d,%d) filled = %v, want %v", x, y, cell.Filled, ch != '.')
			}
		}
	}

	// Original board is untouched.
	if got := b.CompletedRows(); len(got) != 2 {
		t.Error("ClearCompletedRows must not mutate the receiver")
	}
}

func TestBoardClearNothing(t *testing.T) {
	b := boardFromRows([]string{
		"X...",
		".X..",
	})

	same, count := b.ClearCompletedRows()
	if count != 0 {
		t.Errorf("cleared count = %d, want 0", count)
	}
	for y := range 2 {
		for x := range 4 {
			p := Position{X: x, Y: y}
			a, _ := b.Get(p)
			c, _ := same.Get(p)
			if a != c {
				t.Errorf("cell %v changed with nothing to clear", p)
			}
		}
	}
}
