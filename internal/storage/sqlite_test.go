package storage

import (
	"os"
	"path/filepath"
	"testing"
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

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("2048", score, 64, 30); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("2048_endless", 500, 128, 80); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("2048", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
	if scores[0].MaxTile != 64 || scores[0].Moves != 30 {
		t.Errorf("Expected max tile 64 and 30 moves, got %d/%d", scores[0].MaxTile, scores[0].Moves)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be populated")
	}

	endless, err := store.TopScores("2048_endless", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(endless) != 1 {
		t.Errorf("Expected 1 endless score, got %d", len(endless))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("2048", (i+1)*100, 0, 0)
	}

	scores, err := store.TopScores("2048", 3)
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

	high, err := store.HighScore("2048")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("2048", 100, 0, 0)
	store.SaveScore("2048", 300, 0, 0)
	store.SaveScore("2048", 200, 0, 0)

	high, err = store.HighScore("2048")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("2048", 100, 0, 0)
	store.SaveScore("2048", 200, 0, 0)
	store.SaveScore("2048_endless", 300, 0, 0)

	if err := store.ClearScores("2048"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	classic, _ := store.TopScores("2048", 10)
	if len(classic) != 0 {
		t.Errorf("Expected 0 classic scores after clear, got %d", len(classic))
	}

	endless, _ := store.TopScores("2048_endless", 10)
	if len(endless) != 1 {
		t.Errorf("Endless scores should not be affected by clearing classic")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("2048")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	store.SaveScore("2048", 100, 64, 10)
	store.SaveScore("2048", 300, 256, 40)

	stats, err := store.GetGameStats("2048")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.BestTile != 256 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.AvgScore != 200 || stats.TotalScore != 400 {
		t.Errorf("Expected avg 200 and total 400, got %v/%d", stats.AvgScore, stats.TotalScore)
	}
}

func TestStoreSavedGameRoundTrip(t *testing.T) {
	store := openTestStore(t)

	missing, err := store.LoadGame("2048")
	if err != nil {
		t.Fatalf("LoadGame() failed: %v", err)
	}
	if missing != nil {
		t.Fatalf("Expected no saved game, got %+v", missing)
	}

	saved := SavedGame{
		GameID: "2048",
		Cells:  [16]int{2, 0, 4, 0, 0, 8, 0, 0, 16, 0, 0, 32, 0, 0, 0, 2048},
		Score:  4242,
		Moves:  311,
	}
	if err := store.SaveGame(saved); err != nil {
		t.Fatalf("SaveGame() failed: %v", err)
	}

	// A second save replaces the first
	saved.Score = 5000
	if err := store.SaveGame(saved); err != nil {
		t.Fatalf("SaveGame() failed: %v", err)
	}

	got, err := store.LoadGame("2048")
	if err != nil {
		t.Fatalf("LoadGame() failed: %v", err)
	}
	if got == nil {
		t.Fatal("Expected a saved game")
	}
	if got.Cells != saved.Cells || got.Score != 5000 || got.Moves != 311 {
		t.Errorf("LoadGame() = %+v, want %+v", got, saved)
	}

	if err := store.ClearGame("2048"); err != nil {
		t.Fatalf("ClearGame() failed: %v", err)
	}
	if got, _ := store.LoadGame("2048"); got != nil {
		t.Error("Saved game should be gone after ClearGame")
	}
}

func TestStoreSettings(t *testing.T) {
	store := openTestStore(t)

	if _, ok, err := store.Setting(SettingTheme); err != nil || ok {
		t.Fatalf("Setting() on empty store = ok %v, err %v", ok, err)
	}

	store.SetSetting(SettingTheme, "light")
	if err := store.SetSetting(SettingTheme, "dark"); err != nil {
		t.Fatalf("SetSetting() failed: %v", err)
	}

	value, ok, err := store.Setting(SettingTheme)
	if err != nil || !ok || value != "dark" {
		t.Errorf("Setting() = %q, %v, %v; want dark", value, ok, err)
	}
}

func TestStoreResetAll(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("2048", 100, 0, 0)
	store.SaveGame(SavedGame{GameID: "2048", Score: 10})
	store.SetSetting(SettingTheme, "dark")

	if err := store.ResetAll(); err != nil {
		t.Fatalf("ResetAll() failed: %v", err)
	}

	if high, _ := store.HighScore("2048"); high != 0 {
		t.Errorf("Expected no scores after reset, got high %d", high)
	}
	if g, _ := store.LoadGame("2048"); g != nil {
		t.Error("Expected no saved game after reset")
	}
	if _, ok, _ := store.Setting(SettingTheme); ok {
		t.Error("Expected no settings after reset")
	}
}
