package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save some scores
	if _, err := store.SaveScore("sumgrid", 100); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if _, err := store.SaveScore("sumgrid", 50); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if _, err := store.SaveScore("sumgrid", 200); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Different mode
	if _, err := store.SaveScore("sumgrid_time", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Retrieve top scores for classic
	scores, err := store.TopScores("sumgrid", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	// Retrieve top scores for time attack
	timeScores, err := store.TopScores("sumgrid_time", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(timeScores) != 1 {
		t.Errorf("Expected 1 time attack score, got %d", len(timeScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save 5 scores
	for i := 0; i < 5; i++ {
		store.SaveScore("sumgrid", (i+1)*100)
	}

	// Request only top 3
	scores, err := store.TopScores("sumgrid", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScoreMonotonic(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No high score yet reads as zero
	high, err := store.HighScore("sumgrid")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for fresh game, got %d", high)
	}

	// First write sets the value
	if err := store.UpdateHighScore("sumgrid", 100); err != nil {
		t.Fatalf("UpdateHighScore() failed: %v", err)
	}
	high, _ = store.HighScore("sumgrid")
	if high != 100 {
		t.Errorf("Expected high score 100, got %d", high)
	}

	// Lower score must not overwrite
	if err := store.UpdateHighScore("sumgrid", 40); err != nil {
		t.Fatalf("UpdateHighScore() failed: %v", err)
	}
	high, _ = store.HighScore("sumgrid")
	if high != 100 {
		t.Errorf("High score decreased: got %d, expected 100", high)
	}

	// Higher score replaces it
	if err := store.UpdateHighScore("sumgrid", 300); err != nil {
		t.Fatalf("UpdateHighScore() failed: %v", err)
	}
	high, _ = store.HighScore("sumgrid")
	if high != 300 {
		t.Errorf("Expected high score 300, got %d", high)
	}

	// Modes are independent
	high, _ = store.HighScore("sumgrid_time")
	if high != 0 {
		t.Errorf("Time attack high score should be 0, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveScore("sumgrid", 100)
	store.SaveScore("sumgrid", 200)
	store.UpdateHighScore("sumgrid", 200)
	store.SaveScore("sumgrid_time", 300)

	// Clear only classic scores
	if err := store.ClearScores("sumgrid"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	// Classic should be empty, including the high score
	classicScores, _ := store.TopScores("sumgrid", 10)
	if len(classicScores) != 0 {
		t.Errorf("Expected 0 classic scores after clear, got %d", len(classicScores))
	}
	high, _ := store.HighScore("sumgrid")
	if high != 0 {
		t.Errorf("Expected high score 0 after clear, got %d", high)
	}

	// Time attack should still have scores
	timeScores, _ := store.TopScores("sumgrid_time", 10)
	if len(timeScores) != 1 {
		t.Error("Time attack scores should not be affected by clearing classic")
	}
}

func TestStoreAllScores(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for i := 0; i < 20; i++ {
		store.SaveScore("sumgrid", i*10)
	}

	scores, err := store.AllScores("sumgrid")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}

	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreGameStats(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveScore("sumgrid", 100)
	store.SaveScore("sumgrid", 300)

	stats, err := store.GetGameStats("sumgrid")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}

	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, expected 2", stats.GamesCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("HighScore = %d, expected 300", stats.HighScore)
	}
	if stats.TotalScore != 400 {
		t.Errorf("TotalScore = %d, expected 400", stats.TotalScore)
	}
}

func TestStoreExpandNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
