package tetris

import "strings"

// Snapshot captures the complete game state in primitive, comparable form.
// Two games are bit-for-bit identical iff their snapshots are equal; replay
// verification and determinism tests rely on this.
type Snapshot struct {
	Board      string // rows joined by '\n', '.' empty, shape letter filled
	PieceShape string
	PieceX     int
	PieceY     int
	PieceRot   string
	NextShape  string
	QueueBag   string // remaining bag contents from the current index
	QueueState uint64
	Score      int
	Level      int
	Lines      int
	Phase      string
}

// Snapshot returns the current state as a Snapshot.
func (g Game) Snapshot() Snapshot {
	var board strings.Builder
	for y := range g.board.height {
		if y > 0 {
			board.WriteByte('\n')
		}
		for x := range g.board.width {
			cell := g.board.cells[y*g.board.width+x]
			if cell.Filled {
				board.WriteString(cell.Shape.String())
			} else {
				board.WriteByte('.')
			}
		}
	}

	var bag strings.Builder
	for i := g.queue.idx; i < ShapeCount; i++ {
		bag.WriteString(g.queue.bag[i].String())
	}

	return Snapshot{
		Board:      board.String(),
		PieceShape: g.piece.Shape.String(),
		PieceX:     g.piece.Pos.X,
		PieceY:     g.piece.Pos.Y,
		PieceRot:   g.piece.Rot.String(),
		NextShape:  g.queue.Peek().String(),
		QueueBag:   bag.String(),
		QueueState: g.queue.state,
		Score:      g.score.Score,
		Level:      g.score.Level,
		Lines:      g.score.LinesCleared,
		Phase:      g.phase.String(),
	}
}

// Hash folds the snapshot into a single value for cheap determinism checks.
func (s Snapshot) Hash() uint64 {
	h := uint64(1469598103934665603)
	mix := func(str string) {
		for i := 0; i < len(str); i++ {
			h = (h ^ uint64(str[i])) * 1099511628211
		}
	}
	mix(s.Board)
	mix(s.PieceShape)
	mix(s.PieceRot)
	mix(s.NextShape)
	mix(s.QueueBag)
	mix(s.Phase)
	for _, v := range []int{s.PieceX, s.PieceY, s.Score, s.Level, s.Lines} {
		h = (h ^ uint64(uint32(v))) * 1099511628211
	}
	h = (h ^ s.QueueState) * 1099511628211
	return h
}
