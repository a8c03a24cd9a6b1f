package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store, dbPath
}

func TestStoreOpenCreatesNestedPath(t *testing.T) {
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

func TestStoreReopenRunsMigrationsOnce(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	for i := 0; i < 3; i++ {
		store, err := Open(dbPath)
		if err != nil {
			t.Fatalf("Open() #%d failed: %v", i+1, err)
		}
		if _, err := store.SaveScore("snake", "p", i+1); err != nil {
			t.Fatalf("SaveScore after reopen #%d: %v", i+1, err)
		}
		store.Close()
	}

	store, err := Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	all, _ := store.AllScores("snake")
	if len(all) != 3 {
		t.Errorf("expected 3 runs across reopens, got %d", len(all))
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store, _ := openTestStore(t)

	for _, s := range []int{100, 50, 200} {
		if _, err := store.SaveScore("flappy", "ana", s); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("sprint", "ben", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("flappy", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not sorted descending: %+v", scores)
	}
	if scores[0].Player != "ana" || scores[0].RunID == "" {
		t.Errorf("player and run id should round-trip: %+v", scores[0])
	}
	if scores[0].RunID == scores[1].RunID {
		t.Error("every run gets its own ID")
	}

	other, _ := store.TopScores("sprint", 10)
	if len(other) != 1 {
		t.Errorf("Expected 1 sprint score, got %d", len(other))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store, _ := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("test", "", (i+1)*100)
	}

	scores, err := store.TopScores("test", 3)
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

func TestStoreClearScores(t *testing.T) {
	store, _ := openTestStore(t)

	store.SaveScore("flappy", "", 100)
	store.SaveScore("flappy", "", 200)
	store.SaveScore("sprint", "", 300)

	if err := store.ClearScores("flappy"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	flappyScores, _ := store.TopScores("flappy", 10)
	if len(flappyScores) != 0 {
		t.Errorf("Expected 0 flappy scores after clear, got %d", len(flappyScores))
	}
	sprintScores, _ := store.TopScores("sprint", 10)
	if len(sprintScores) != 1 {
		t.Errorf("Sprint scores should not be affected by clearing flappy")
	}
}

func TestStoreGameStats(t *testing.T) {
	store, _ := openTestStore(t)

	empty, err := store.GameStats("maze")
	if err != nil {
		t.Fatalf("GameStats() on empty game: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	for _, s := range []int{10, 20, 30} {
		store.SaveScore("maze", "", s)
	}
	store.SaveScore("life", "", 5)

	stats, err := store.GameStats("maze")
	if err != nil {
		t.Fatalf("GameStats() failed: %v", err)
	}
	if stats.GamesCount != 3 || stats.HighScore != 30 || stats.AvgScore != 20 || stats.TotalScore != 60 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be parsed")
	}

	all, err := store.AllGamesStats()
	if err != nil {
		t.Fatalf("AllGamesStats() failed: %v", err)
	}
	if len(all) != 2 || all["life"].GamesCount != 1 {
		t.Errorf("AllGamesStats = %+v", all)
	}
}

func TestStoreScoreByRun(t *testing.T) {
	store, _ := openTestStore(t)

	saved, err := store.SaveScore("snake", "ada", 40)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	got, err := store.ScoreByRun(saved.RunID)
	if err != nil {
		t.Fatalf("ScoreByRun() failed: %v", err)
	}
	if got.ID != saved.ID || got.Player != "ada" || got.Score != 40 {
		t.Errorf("ScoreByRun() = %+v, expected run %+v", got, saved)
	}

	if _, err := store.ScoreByRun("missing"); !errors.Is(err, ErrNoScore) {
		t.Errorf("ScoreByRun(missing) error = %v, expected ErrNoScore", err)
	}
}
