package tetris

// Event describes one observable change produced by a Handle call.
// Events are pure output; the engine keeps no history. Callers wanting a
// replay log accumulate them (see internal/replay).
type Event interface {
	isEvent()
}

// PieceMoved reports a successful shift (left, right, down, or hard drop).
type PieceMoved struct {
	Piece ActivePiece
}

// PieceRotated reports a successful rotation, wall kicks included.
type PieceRotated struct {
	Piece ActivePiece
}

// PieceLocked reports the active piece being stamped onto the board.
type PieceLocked struct {
	Piece ActivePiece
}

// LinesCleared reports completed rows removed after a lock.
type LinesCleared struct {
	Count       int
	ScoreGained int
}

// LevelUp reports the level increasing as a result of a clear.
type LevelUp struct {
	NewLevel int
}

// PieceSpawned reports a new active piece entering the board, with the
// queue's upcoming shape for preview rendering.
type PieceSpawned struct {
	Piece ActivePiece
	Next  Shape
}

// GamePaused reports the transition from Playing to Paused.
type GamePaused struct{}

// GameResumed reports the transition from Paused back to Playing.
type GameResumed struct{}

// GameOver reports the terminal spawn-blocked condition.
type GameOver struct {
	FinalScore int
}

func (PieceMoved) isEvent()   {}
func (PieceRotated) isEvent() {}
func (PieceLocked) isEvent()  {}
func (LinesCleared) isEvent() {}
func (LevelUp) isEvent()      {}
func (PieceSpawned) isEvent() {}
func (GamePaused) isEvent()   {}
func (GameResumed) isEvent()  {}
func (GameOver) isEvent()     {}
