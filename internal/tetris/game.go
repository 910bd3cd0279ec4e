package tetris

import "time"

// Phase is the game's lifecycle state. PhaseOver is terminal.
type Phase int

const (
	PhasePlaying Phase = iota
	PhasePaused
	PhaseOver
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// Config holds everything supplied at construction. It is immutable for the
// life of the game; the engine does not validate it (degenerate values give
// degenerate but non-crashing games).
type Config struct {
	Width    int
	Height   int
	Scoring  ScoringConfig
	Leveling LevelConfig
	Speed    SpeedConfig
}

// Game is the aggregate root. It is a value: Handle consumes the receiver
// conceptually and returns the successor state plus the events describing
// what changed. Callers must serialize Handle calls themselves.
type Game struct {
	board Board
	piece ActivePiece
	queue PieceQueue
	score ScoreState
	phase Phase
	cfg   Config
}

// New builds a game from a seed and configuration: empty board, first piece
// spawned from a freshly seeded queue, the following shape left as preview,
// phase Playing.
func New(seed int64, cfg Config) Game {
	queue := NewPieceQueue(seed)
	shape, queue := queue.Next()
	return Game{
		board: NewBoard(cfg.Width, cfg.Height),
		piece: Spawn(shape, cfg.Width),
		queue: queue,
		score: NewScoreState(),
		phase: PhasePlaying,
		cfg:   cfg,
	}
}

// Board returns the locked-cell grid (without the active piece).
func (g Game) Board() Board { return g.board }

// ActivePiece returns the falling piece.
func (g Game) ActivePiece() ActivePiece { return g.piece }

// Score returns the current score state.
func (g Game) Score() ScoreState { return g.score }

// Phase returns the current phase.
func (g Game) Phase() Phase { return g.phase }

// NextShape returns the shape that will spawn after the current piece locks.
func (g Game) NextShape() Shape { return g.queue.Peek() }

// Config returns the construction-time configuration.
func (g Game) Config() Config { return g.cfg }

// DropInterval returns the advisory tick interval for the current level.
func (g Game) DropInterval() time.Duration {
	return DropInterval(g.score.Level, g.cfg.Speed)
}

// Handle applies one command and returns the next state with the events it
// produced. Illegal moves are silent no-ops, never errors.
func (g Game) Handle(cmd Command) (Game, []Event) {
	switch g.phase {
	case PhaseOver:
		return g, nil
	case PhasePaused:
		if cmd == CmdTogglePause {
			g.phase = PhasePlaying
			return g, []Event{GameResumed{}}
		}
		return g, nil
	}

	switch cmd {
	case CmdTogglePause:
		g.phase = PhasePaused
		return g, []Event{GamePaused{}}

	case CmdMoveLeft:
		if moved, ok := g.piece.TryMoveLeft(g.board); ok {
			g.piece = moved
			return g, []Event{PieceMoved{Piece: moved}}
		}
		return g, nil

	case CmdMoveRight:
		if moved, ok := g.piece.TryMoveRight(g.board); ok {
			g.piece = moved
			return g, []Event{PieceMoved{Piece: moved}}
		}
		return g, nil

	case CmdRotateCW, CmdRotateCCW:
		if rotated, ok := g.piece.RotateOn(g.board, cmd == CmdRotateCW); ok {
			g.piece = rotated
			return g, []Event{PieceRotated{Piece: rotated}}
		}
		return g, nil

	case CmdSoftDrop, CmdTick:
		if moved, ok := g.piece.TryMoveDown(g.board); ok {
			g.piece = moved
			return g, []Event{PieceMoved{Piece: moved}}
		}
		// Landed: lock in place.
		return g.lock(nil)

	case CmdHardDrop:
		dropped, distance := g.piece.HardDropOn(g.board)
		g.piece = dropped
		g.score = g.score.AddHardDropBonus(distance)
		return g.lock([]Event{PieceMoved{Piece: dropped}})
	}

	return g, nil
}

// lock runs the shared lock procedure: stamp the piece, clear rows, score,
// then spawn the next piece or end the game if the spawn is blocked.
// Event order: lock, clear, level-up, then game-over or spawn.
func (g Game) lock(events []Event) (Game, []Event) {
	g.board = g.board.Place(g.piece.Blocks(), g.piece.Shape)
	events = append(events, PieceLocked{Piece: g.piece})

	board, count := g.board.ClearCompletedRows()
	if count > 0 {
		g.board = board
		prevLevel := g.score.Level
		var gained int
		g.score, gained = g.score.AddLines(count, g.cfg.Scoring, g.cfg.Leveling)
		events = append(events, LinesCleared{Count: count, ScoreGained: gained})
		if g.score.Level > prevLevel {
			events = append(events, LevelUp{NewLevel: g.score.Level})
		}
	}

	next := Spawn(g.queue.Peek(), g.board.Width())
	if g.board.IsBlocked(next.Blocks()) {
		g.phase = PhaseOver
		events = append(events, GameOver{FinalScore: g.score.Score})
		return g, events
	}

	g.piece = next
	_, g.queue = g.queue.Next()
	events = append(events, PieceSpawned{Piece: next, Next: g.queue.Peek()})
	return g, events
}
