// Package config provides YAML-based configuration loading for the
// tetris engine and its shell.
package config

import "github.com/vovakirdan/tui-tetris/internal/tetris"

// TetrisConfig contains all tunable game parameters.
type TetrisConfig struct {
	Board    BoardConfig    `yaml:"board"`
	Scoring  ScoringConfig  `yaml:"scoring"`
	Leveling LevelingConfig `yaml:"leveling"`
	Speed    SpeedConfig    `yaml:"speed"`
}

// BoardConfig defines the playfield dimensions.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ScoringConfig defines base values for simultaneous line clears.
// The engine multiplies these by the current level.
type ScoringConfig struct {
	Single int `yaml:"single"`
	Double int `yaml:"double"`
	Triple int `yaml:"triple"`
	Tetris int `yaml:"tetris"`
}

// LevelingConfig defines level progression.
type LevelingConfig struct {
	LinesPerLevel int `yaml:"lines_per_level"`
}

// SpeedConfig defines the automatic descent curve.
type SpeedConfig struct {
	BaseIntervalMs     int `yaml:"base_interval_ms"`
	MinIntervalMs      int `yaml:"min_interval_ms"`
	DecreasePerLevelMs int `yaml:"decrease_per_level_ms"`
}

// ToEngine converts the loaded configuration into the engine's Config.
func (c TetrisConfig) ToEngine() tetris.Config {
	return tetris.Config{
		Width:  c.Board.Width,
		Height: c.Board.Height,
		Scoring: tetris.ScoringConfig{
			Single: c.Scoring.Single,
			Double: c.Scoring.Double,
			Triple: c.Scoring.Triple,
			Tetris: c.Scoring.Tetris,
		},
		Leveling: tetris.LevelConfig{LinesPerLevel: c.Leveling.LinesPerLevel},
		Speed: tetris.SpeedConfig{
			BaseIntervalMs:     c.Speed.BaseIntervalMs,
			MinIntervalMs:      c.Speed.MinIntervalMs,
			DecreasePerLevelMs: c.Speed.DecreasePerLevelMs,
		},
	}
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ApplyPreset adjusts the speed curve and level pacing for a preset.
// Unknown presets leave the config unchanged.
func ApplyPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Speed.BaseIntervalMs = 1000
		cfg.Leveling.LinesPerLevel = 15
	case DifficultyNormal:
		// Defaults are the normal curve.
	case DifficultyHard:
		cfg.Speed.BaseIntervalMs = 600
		cfg.Speed.DecreasePerLevelMs = 80
		cfg.Leveling.LinesPerLevel = 8
	}
}
