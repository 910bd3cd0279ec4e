package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/replay"
	"github.com/vovakirdan/tui-tetris/internal/storage"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// Model is the Bubble Tea model for a single game session.
// The engine state is a value; every input produces a replacement Game.
type Model struct {
	game      tetris.Game
	cfg       tetris.Config
	seed      int64
	store     *storage.Store
	recorder  *replay.Recorder
	keyMapper *KeyMapper
	highScore int
	width     int
	height    int
	quitting  bool
	saved     bool // Whether score and replay were saved for current game over
}

// NewModel creates a model for a fresh game.
// A zero seed is replaced with a time-based one.
func NewModel(cfg tetris.Config, seed int64, store *storage.Store) Model {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	m := Model{
		game:      tetris.New(seed, cfg),
		cfg:       cfg,
		seed:      seed,
		store:     store,
		recorder:  replay.NewRecorder(seed, cfg),
		keyMapper: NewKeyMapper(),
	}

	if store != nil {
		if high, err := store.HighScore(); err == nil {
			m.highScore = high
		}
	}

	return m
}

// Init starts the gravity loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.game.DropInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cmd, ok, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if m.keyMapper.IsRestart(msg) && m.game.Phase() == tetris.PhaseOver {
		return m.restart()
	}

	if !ok {
		return m, nil
	}

	m = m.apply(cmd)
	return m, nil
}

// handleTick applies one gravity step and re-arms the timer at the interval
// for the (possibly new) level.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.game.Phase() == tetris.PhaseOver {
		// Stop ticking; restart re-arms the loop.
		return m, nil
	}

	m = m.apply(tetris.CmdTick)
	return m, tickCmd(m.game.DropInterval())
}

// apply feeds one command to the engine, records it, and persists the result
// when the game ends.
func (m Model) apply(cmd tetris.Command) Model {
	game, _ := m.game.Handle(cmd)
	m.game = game
	m.recorder.Record(cmd, game.Score())

	if game.Phase() == tetris.PhaseOver && !m.saved {
		m.saveResult()
		m.saved = true
	}

	return m
}

// saveResult persists the final score and the replay. Best-effort: a failed
// save never interrupts the session.
func (m *Model) saveResult() {
	if m.store == nil {
		return
	}

	final := m.game.Score()
	//nolint:errcheck // Best-effort save, session continues regardless
	m.store.SaveScore(final.Score, final.Level, final.LinesCleared)
	//nolint:errcheck // Best-effort save
	m.store.SaveReplay(m.recorder.Finish())

	if final.Score > m.highScore {
		m.highScore = final.Score
	}
}

// restart begins a new game with a fresh time-based seed.
func (m Model) restart() (tea.Model, tea.Cmd) {
	m.seed = time.Now().UnixNano()
	m.game = tetris.New(m.seed, m.cfg)
	m.recorder = replay.NewRecorder(m.seed, m.cfg)
	m.saved = false
	return m, tickCmd(m.game.DropInterval())
}

// View renders the current state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return renderGame(m.game, m.highScore, m.width, m.height)
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(cfg tetris.Config, seed int64, store *storage.Store) error {
	p := tea.NewProgram(
		NewModel(cfg, seed, store),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
