// Package replay records command streams and reconstructs games from them.
// Because the engine is deterministic, a seed plus the commands in order is
// a complete, compact recording of a session.
package replay

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// Log is a complete recording: everything needed to re-run a game from
// scratch and land on the exact same final state.
type Log struct {
	Seed       int64            `json:"seed"`
	Config     tetris.Config    `json:"config"`
	Commands   []tetris.Command `json:"commands"`
	FinalScore int              `json:"final_score"`
	FinalLines int              `json:"final_lines"`
	RecordedAt time.Time        `json:"recorded_at"`
}

// Recorder accumulates the command stream of a live session.
// The shell feeds it every command it hands to the engine.
type Recorder struct {
	log Log
}

// NewRecorder starts a recording for a game built from seed and cfg.
func NewRecorder(seed int64, cfg tetris.Config) *Recorder {
	return &Recorder{
		log: Log{
			Seed:   seed,
			Config: cfg,
		},
	}
}

// Record appends one command and the score state it produced.
func (r *Recorder) Record(cmd tetris.Command, after tetris.ScoreState) {
	r.log.Commands = append(r.log.Commands, cmd)
	r.log.FinalScore = after.Score
	r.log.FinalLines = after.LinesCleared
}

// Len returns the number of recorded commands.
func (r *Recorder) Len() int {
	return len(r.log.Commands)
}

// Finish stamps the recording time and returns the completed log.
func (r *Recorder) Finish() Log {
	log := r.log
	log.RecordedAt = time.Now().UTC()
	return log
}

// Run replays the log against a fresh engine and returns the final state.
// The result is bit-for-bit the state the recorded session ended in.
func (l Log) Run() tetris.Game {
	game := tetris.New(l.Seed, l.Config)
	for _, cmd := range l.Commands {
		game, _ = game.Handle(cmd)
	}
	return game
}

// Verify re-runs the log and checks the final score and line count against
// the recorded ones.
func (l Log) Verify() error {
	final := l.Run().Score()
	if final.Score != l.FinalScore {
		return fmt.Errorf("replay: score mismatch: replayed %d, recorded %d", final.Score, l.FinalScore)
	}
	if final.LinesCleared != l.FinalLines {
		return fmt.Errorf("replay: line count mismatch: replayed %d, recorded %d", final.LinesCleared, l.FinalLines)
	}
	return nil
}

// Marshal encodes the log as JSON for storage.
func (l Log) Marshal() ([]byte, error) {
	data, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("replay: cannot encode log: %w", err)
	}
	return data, nil
}

// Unmarshal decodes a stored log.
func Unmarshal(data []byte) (Log, error) {
	var l Log
	if err := json.Unmarshal(data, &l); err != nil {
		return Log{}, fmt.Errorf("replay: cannot decode log: %w", err)
	}
	return l, nil
}
