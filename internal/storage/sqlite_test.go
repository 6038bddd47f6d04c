package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesFile(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

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

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("snake", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("snake_wrap", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("snake", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Sorted descending
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in descending order: %v", scores)
	}

	wrapScores, err := store.TopScores("snake_wrap", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(wrapScores) != 1 {
		t.Errorf("Expected 1 snake_wrap score, got %d", len(wrapScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("snake", (i+1)*100)
	}

	scores, err := store.TopScores("snake", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("snake")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("snake", 100)
	store.SaveScore("snake", 300)
	store.SaveScore("snake", 200)

	high, err = store.HighScore("snake")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("snake", 100)
	store.SaveScore("snake", 200)
	store.SaveScore("snake_wrap", 300)

	if err := store.ClearScores("snake"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	walledScores, _ := store.TopScores("snake", 10)
	if len(walledScores) != 0 {
		t.Errorf("Expected 0 snake scores after clear, got %d", len(walledScores))
	}

	wrapScores, _ := store.TopScores("snake_wrap", 10)
	if len(wrapScores) != 1 {
		t.Error("snake_wrap scores should not be affected by clearing snake")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveScore("snake", i*10)
	}

	scores, err := store.AllScores("snake")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("snake", 100)
	store.SaveScore("snake", 300)

	stats, err := store.GetGameStats("snake")
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

	empty, err := store.GetGameStats("snake_wrap")
	if err != nil {
		t.Fatalf("GetGameStats() on empty game failed: %v", err)
	}
	if empty.GamesCount != 0 || empty.HighScore != 0 {
		t.Errorf("Empty game stats = %+v, expected zeros", empty)
	}
}

func TestStoreAllGamesStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("snake", 100)
	store.SaveScore("snake_wrap", 250)

	stats, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("Expected stats for 2 games, got %d", len(stats))
	}
	if stats["snake_wrap"].HighScore != 250 {
		t.Errorf("snake_wrap HighScore = %d, expected 250", stats["snake_wrap"].HighScore)
	}
}
