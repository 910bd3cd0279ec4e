package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default configuration: a 10x20 board,
// guideline-style scoring, a level every 10 lines, and a descent curve
// starting at 800ms that loses 60ms per level down to a 100ms floor.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: BoardConfig{
			Width:  10,
			Height: 20,
		},
		Scoring: ScoringConfig{
			Single: 100,
			Double: 300,
			Triple: 500,
			Tetris: 800,
		},
		Leveling: LevelingConfig{
			LinesPerLevel: 10,
		},
		Speed: SpeedConfig{
			BaseIntervalMs:     800,
			MinIntervalMs:      100,
			DecreasePerLevelMs: 60,
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultTetrisYAML
}
