package tetris

import (
	"testing"
	"time"
)

func testScoring() ScoringConfig {
	return ScoringConfig{Single: 100, Double: 300, Triple: 500, Tetris: 800}
}

func TestAddLines(t *testing.T) {
	leveling := LevelConfig{LinesPerLevel: 10}

	tests := []struct {
		name       string
		start      ScoreState
		count      int
		wantGained int
		wantScore  int
		wantLevel  int
		wantLines  int
	}{
		{
			name:       "zero lines is a no-op",
			start:      ScoreState{Score: 50, Level: 1, LinesCleared: 3},
			count:      0,
			wantGained: 0,
			wantScore:  50,
			wantLevel:  1,
			wantLines:  3,
		},
		{
			name:       "single at level 1",
			start:      NewScoreState(),
			count:      1,
			wantGained: 100,
			wantScore:  100,
			wantLevel:  1,
			wantLines:  1,
		},
		{
			name:       "double at level 3",
			start:      ScoreState{Score: 1000, Level: 3, LinesCleared: 20},
			count:      2,
			wantGained: 900,
			wantScore:  1900,
			wantLevel:  3,
			wantLines:  22,
		},
		{
			name:       "tetris at level 2",
			start:      ScoreState{Score: 0, Level: 2, LinesCleared: 10},
			count:      4,
			wantGained: 1600,
			wantScore:  1600,
			wantLevel:  2,
			wantLines:  14,
		},
		{
			name: "level-up clear scores at the incoming level",
			// 9 lines at level 1; the single that crosses the boundary is
			// still worth 100 x 1, the level only changes afterwards.
			start:      ScoreState{Score: 0, Level: 1, LinesCleared: 9},
			count:      1,
			wantGained: 100,
			wantScore:  100,
			wantLevel:  2,
			wantLines:  10,
		},
		{
			name:       "unknown count is worth nothing",
			start:      NewScoreState(),
			count:      5,
			wantGained: 0,
			wantScore:  0,
			wantLevel:  1,
			wantLines:  5,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, gained := tc.start.AddLines(tc.count, testScoring(), leveling)
			if gained != tc.wantGained {
				t.Errorf("gained = %d, want %d", gained, tc.wantGained)
			}
			if got.Score != tc.wantScore {
				t.Errorf("score = %d, want %d", got.Score, tc.wantScore)
			}
			if got.Level != tc.wantLevel {
				t.Errorf("level = %d, want %d", got.Level, tc.wantLevel)
			}
			if got.LinesCleared != tc.wantLines {
				t.Errorf("lines = %d, want %d", got.LinesCleared, tc.wantLines)
			}
		})
	}
}

func TestAddHardDropBonus(t *testing.T) {
	s := NewScoreState()

	s = s.AddHardDropBonus(10)
	if s.Score != 20 {
		t.Errorf("score after 10-row drop = %d, want 20", s.Score)
	}

	s = s.AddHardDropBonus(0)
	if s.Score != 20 {
		t.Errorf("zero-distance drop changed score to %d", s.Score)
	}
}

func TestDropInterval(t *testing.T) {
	speed := SpeedConfig{BaseIntervalMs: 800, MinIntervalMs: 100, DecreasePerLevelMs: 60}

	if got := DropInterval(1, speed); got != 800*time.Millisecond {
		t.Errorf("level 1 interval = %v, want 800ms", got)
	}
	if got := DropInterval(5, speed); got != 560*time.Millisecond {
		t.Errorf("level 5 interval = %v, want 560ms", got)
	}

	// Floors at the minimum and never increases with level.
	prev := DropInterval(1, speed)
	for level := 2; level <= 40; level++ {
		cur := DropInterval(level, speed)
		if cur > prev {
			t.Fatalf("interval increased from %v to %v at level %d", prev, cur, level)
		}
		if cur < 100*time.Millisecond {
			t.Fatalf("interval %v below the floor at level %d", cur, level)
		}
		prev = cur
	}
}
