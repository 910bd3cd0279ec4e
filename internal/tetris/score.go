package tetris

import "time"

// ScoringConfig holds the base value awarded for clearing 1-4 rows at once.
// The base is multiplied by the level in effect when the clear happens.
type ScoringConfig struct {
	Single int
	Double int
	Triple int
	Tetris int
}

// LevelConfig controls level progression.
type LevelConfig struct {
	LinesPerLevel int
}

// SpeedConfig describes the advisory descent speed curve. The engine never
// consults a clock; DropInterval is output for the caller's own timer.
type SpeedConfig struct {
	BaseIntervalMs     int
	MinIntervalMs      int
	DecreasePerLevelMs int
}

// ScoreState tracks score, level and cumulative cleared lines.
// Score and level never decrease within a game.
type ScoreState struct {
	Score        int
	Level        int
	LinesCleared int
}

// NewScoreState returns the starting score state: zero score, level 1.
func NewScoreState() ScoreState {
	return ScoreState{Level: 1}
}

// lineValue returns the base score for clearing count rows at once.
// Counts outside 1-4 are worth nothing.
func lineValue(count int, sc ScoringConfig) int {
	switch count {
	case 1:
		return sc.Single
	case 2:
		return sc.Double
	case 3:
		return sc.Triple
	case 4:
		return sc.Tetris
	default:
		return 0
	}
}

// AddLines applies a clear of count rows and returns the new state plus the
// score gained. The multiplier is the level before the update; the level is
// then recomputed from the new line total, so a level-up caused by this very
// clear does not retroactively change the award.
func (s ScoreState) AddLines(count int, sc ScoringConfig, lc LevelConfig) (ScoreState, int) {
	if count <= 0 {
		return s, 0
	}
	gained := lineValue(count, sc) * s.Level
	s.Score += gained
	s.LinesCleared += count
	if lc.LinesPerLevel > 0 {
		level := 1 + s.LinesCleared/lc.LinesPerLevel
		if level > s.Level {
			s.Level = level
		}
	}
	return s, gained
}

// AddHardDropBonus awards two points per row dropped, independent of level.
func (s ScoreState) AddHardDropBonus(distance int) ScoreState {
	if distance > 0 {
		s.Score += 2 * distance
	}
	return s
}

// DropInterval returns the advisory time between automatic descents for the
// given level. Non-increasing in level, floored at the configured minimum.
func DropInterval(level int, sp SpeedConfig) time.Duration {
	if level < 1 {
		level = 1
	}
	ms := sp.BaseIntervalMs - (level-1)*sp.DecreasePerLevelMs
	if ms < sp.MinIntervalMs {
		ms = sp.MinIntervalMs
	}
	return time.Duration(ms) * time.Millisecond
}
