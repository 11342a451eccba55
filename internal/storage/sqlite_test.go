package storage

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/lab-arcade/internal/session"
)

func openTemp(t *testing.T) *Store {
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
	_, err = store.SaveScore("runner", 100)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	_, err = store.SaveScore("runner", 50)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	_, err = store.SaveScore("runner", 200)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Different game
	_, err = store.SaveScore("rnase", 500)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Retrieve top scores for runner
	scores, err := store.TopScores("runner", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 {
		t.Errorf("Expected highest score to be 200, got %d", scores[0].Score)
	}
	if scores[1].Score != 100 {
		t.Errorf("Expected second score to be 100, got %d", scores[1].Score)
	}
	if scores[2].Score != 50 {
		t.Errorf("Expected third score to be 50, got %d", scores[2].Score)
	}

	// Retrieve top scores for rnase
	rnaseScores, err := store.TopScores("rnase", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(rnaseScores) != 1 {
		t.Errorf("Expected 1 rnase score, got %d", len(rnaseScores))
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
		store.SaveScore("test", (i+1)*100)
	}

	// Request only top 3
	scores, err := store.TopScores("test", 3)
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

func TestStoreHighScore(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No scores yet
	high, err := store.HighScore("runner")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	// Add scores
	store.SaveScore("runner", 100)
	store.SaveScore("runner", 300)
	store.SaveScore("runner", 200)

	high, err = store.HighScore("runner")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
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

	store.SaveScore("runner", 100)
	store.SaveScore("runner", 200)
	store.SaveScore("rnase", 300)

	// Clear only runner scores
	err = store.ClearScores("runner")
	if err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	// Runner should be empty
	runnerScores, _ := store.TopScores("runner", 10)
	if len(runnerScores) != 0 {
		t.Errorf("Expected 0 runner scores after clear, got %d", len(runnerScores))
	}

	// Rnase should still have scores
	rnaseScores, _ := store.TopScores("rnase", 10)
	if len(rnaseScores) != 1 {
		t.Errorf("Rnase scores should not be affected by clearing runner")
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

	// Add many scores
	for i := 0; i < 20; i++ {
		store.SaveScore("test", i*10)
	}

	scores, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}

	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	// Test that ~ expansion works (we won't actually write to home)
	// Just verify the function doesn't crash
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

func TestStoreBestScore(t *testing.T) {
	store := openTemp(t)

	best, err := store.BestScore("fitness_highscore")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 for a missing key, got %d", best)
	}

	steps := []struct {
		score   int
		written bool
		best    int
	}{
		{0, false, 0},
		{12, true, 12},
		{8, false, 12},
		{12, false, 12},
		{13, true, 13},
	}
	for _, st := range steps {
		written, err := store.SaveBestScore("fitness_highscore", st.score)
		if err != nil {
			t.Fatalf("SaveBestScore(%d) failed: %v", st.score, err)
		}
		if written != st.written {
			t.Errorf("SaveBestScore(%d) = %v, expected %v", st.score, written, st.written)
		}
		best, _ := store.BestScore("fitness_highscore")
		if best != st.best {
			t.Errorf("after saving %d, best = %d, expected %d", st.score, best, st.best)
		}
	}

	// Keys are independent.
	if best, _ := store.BestScore("rnase_highscore"); best != 0 {
		t.Errorf("Expected untouched key to read 0, got %d", best)
	}
}

func TestStoreClearKeepsBest(t *testing.T) {
	store := openTemp(t)

	store.SaveBestScore("rnase_highscore", 900)
	store.SaveScore("rnase", 900)
	if err := store.ClearScores("rnase"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if best, _ := store.BestScore("rnase_highscore"); best != 900 {
		t.Errorf("Expected best score to survive ClearScores, got %d", best)
	}
}

func TestStoreSaveResult(t *testing.T) {
	store := openTemp(t)

	results := []session.Result{
		{SessionID: "a", GameID: "peaks", Score: 300, Duration: 90 * time.Second, StageLabel: "Generation", Stage: 6},
		{SessionID: "b", GameID: "peaks", Score: 500, Duration: 30 * time.Second, StageLabel: "Generation", Stage: 4},
	}
	for _, r := range results {
		if err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	scores, err := store.TopScores("peaks", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("Expected 2 scores, got %d", len(scores))
	}
	if scores[0].SessionID != "b" || scores[0].Duration != 30*time.Second {
		t.Errorf("Unexpected top entry: %+v", scores[0])
	}
	if scores[0].StageLabel != "Generation" || scores[0].Stage != 4 {
		t.Errorf("Unexpected stage: %q %d", scores[0].StageLabel, scores[0].Stage)
	}

	stats, err := store.GetGameStats("peaks")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 500 || stats.AvgScore != 400 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.PlayTime != 2*time.Minute {
		t.Errorf("Expected 2m play time, got %v", stats.PlayTime)
	}
	if stats.MaxStage != 6 {
		t.Errorf("Expected max stage 6, got %d", stats.MaxStage)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreAllGamesStats(t *testing.T) {
	store := openTemp(t)

	store.SaveScore("runner", 10)
	store.SaveScore("runner", 30)
	store.SaveScore("rnase", 2000)

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected stats for 2 games, got %d", len(all))
	}
	if all["runner"].GamesCount != 2 || all["runner"].HighScore != 30 {
		t.Errorf("Unexpected runner stats: %+v", all["runner"])
	}
	if all["rnase"].TotalScore != 2000 {
		t.Errorf("Unexpected rnase stats: %+v", all["rnase"])
	}

	empty, err := store.GetGameStats("peaks")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", empty)
	}
}

func TestOpenMigratesOldScoresTable(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "old.db")

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("sql.Open() failed: %v", err)
	}
	_, err = db.Exec(`CREATE TABLE scores (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		game_id TEXT NOT NULL,
		session_id TEXT NOT NULL DEFAULT '',
		score INTEGER NOT NULL,
		duration_ms INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	INSERT INTO scores (game_id, score) VALUES ('rnase', 70);`)
	if err != nil {
		t.Fatalf("creating old schema failed: %v", err)
	}
	db.Close()

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if err := store.SaveResult(session.Result{GameID: "rnase", Score: 90, StageLabel: "Level", Stage: 2}); err != nil {
		t.Fatalf("SaveResult() after migration failed: %v", err)
	}
	scores, err := store.TopScores("rnase", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 2 || scores[0].Stage != 2 || scores[1].Stage != 0 || scores[1].StageLabel != "" {
		t.Errorf("Unexpected scores after migration: %+v", scores)
	}

	// A second open must not try to add the columns again.
	again, err := Open(dbPath)
	if err != nil {
		t.Fatalf("reopening migrated database failed: %v", err)
	}
	again.Close()
}
