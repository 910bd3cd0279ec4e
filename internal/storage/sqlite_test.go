package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/replay"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, e := range []struct{ score, level, lines int }{
		{100, 1, 1}, {50, 1, 0}, {200, 2, 12},
	} {
		if _, err := store.SaveScore(e.score, e.level, e.lines); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Sorted descending
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
	if scores[0].Level != 2 || scores[0].Lines != 12 {
		t.Errorf("Level/lines not persisted: %+v", scores[0])
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore((i+1)*100, 1, 0)
	}

	scores, err := store.TopScores(3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty table, got %d", high)
	}

	store.SaveScore(100, 1, 0)
	store.SaveScore(300, 2, 14)
	store.SaveScore(200, 1, 8)

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore(100, 1, 0)
	store.SaveScore(200, 1, 4)

	if err := store.ClearScores(); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores(10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore(100, 1, 2)
	store.SaveScore(300, 2, 10)

	stats, err := store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}

	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, want 2", stats.GamesCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("HighScore = %d, want 300", stats.HighScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %f, want 200", stats.AvgScore)
	}
	if stats.TotalLines != 12 {
		t.Errorf("TotalLines = %d, want 12", stats.TotalLines)
	}
}

func testLog(seed int64) replay.Log {
	cfg := tetris.Config{
		Width:  10,
		Height: 20,
		Scoring: tetris.ScoringConfig{
			Single: 100, Double: 300, Triple: 500, Tetris: 800,
		},
		Leveling: tetris.LevelConfig{LinesPerLevel: 10},
		Speed: tetris.SpeedConfig{
			BaseIntervalMs: 800, MinIntervalMs: 100, DecreasePerLevelMs: 60,
		},
	}

	game := tetris.New(seed, cfg)
	rec := replay.NewRecorder(seed, cfg)
	for _, cmd := range []tetris.Command{
		tetris.CmdMoveLeft, tetris.CmdRotateCW, tetris.CmdHardDrop,
		tetris.CmdMoveRight, tetris.CmdHardDrop,
	} {
		game, _ = game.Handle(cmd)
		rec.Record(cmd, game.Score())
	}
	return rec.Finish()
}

func TestStoreSaveAndLoadReplay(t *testing.T) {
	store := openTestStore(t)

	log := testLog(42)
	id, err := store.SaveReplay(log)
	if err != nil {
		t.Fatalf("SaveReplay() failed: %v", err)
	}

	entry, loaded, err := store.ReplayByID(id)
	if err != nil {
		t.Fatalf("ReplayByID() failed: %v", err)
	}
	if entry == nil || loaded == nil {
		t.Fatal("ReplayByID() returned nil for existing replay")
	}

	if entry.Seed != 42 {
		t.Errorf("Seed = %d, want 42", entry.Seed)
	}
	if entry.Score != log.FinalScore {
		t.Errorf("Score = %d, want %d", entry.Score, log.FinalScore)
	}
	if loaded.Run().Snapshot() != log.Run().Snapshot() {
		t.Error("Loaded replay replays to a different final state")
	}
	if err := loaded.Verify(); err != nil {
		t.Errorf("Loaded replay failed verification: %v", err)
	}
}

func TestStoreReplayByIDMissing(t *testing.T) {
	store := openTestStore(t)

	entry, log, err := store.ReplayByID(999)
	if err != nil {
		t.Fatalf("ReplayByID() failed: %v", err)
	}
	if entry != nil || log != nil {
		t.Error("Expected nil for missing replay")
	}
}

func TestStoreRecentReplays(t *testing.T) {
	store := openTestStore(t)

	for _, seed := range []int64{1, 2, 3} {
		if _, err := store.SaveReplay(testLog(seed)); err != nil {
			t.Fatalf("SaveReplay() failed: %v", err)
		}
	}

	entries, err := store.RecentReplays(2)
	if err != nil {
		t.Fatalf("RecentReplays() failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 replays with limit, got %d", len(entries))
	}

	// Newest first
	if entries[0].Seed != 3 || entries[1].Seed != 2 {
		t.Errorf("Replays not in recency order: %+v", entries)
	}
}
