package storage

import (
	"os"
	"path/filepath"
	"testing"
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

func mustSave(t *testing.T, store *Store, runs ...RunResult) {
	t.Helper()
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun(%+v) failed: %v", r, err)
		}
	}
}

func TestStoreOpenCreatesFile(t *testing.T) {
	for _, name := range []string{"test.db", filepath.Join("subdir", "deep", "test.db")} {
		dbPath := filepath.Join(t.TempDir(), name)

		store, err := Open(dbPath)
		if err != nil {
			t.Fatalf("Open(%q) failed: %v", name, err)
		}
		store.Close()

		if _, err := os.Stat(dbPath); err != nil {
			t.Errorf("Database file %q was not created: %v", name, err)
		}
	}
}

func TestStoreExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.blocks/scores.db")
	if err != nil {
		t.Fatalf("Open() with ~ path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".blocks", "scores.db")); err != nil {
		t.Errorf("Database not created under home: %v", err)
	}
}

func TestStoreReopenKeepsRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	mustSave(t, store, RunResult{GameID: "blocks", Score: 70})
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	if high, _ := store.HighScore("blocks"); high != 70 {
		t.Errorf("HighScore after reopen = %d, want 70", high)
	}
}

func TestStoreSaveRun(t *testing.T) {
	store := openTemp(t)

	id, err := store.SaveRun(RunResult{GameID: "blocks", Score: 450, Lines: 9, Level: 1, Ticks: 3600})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if len(id) != 36 {
		t.Errorf("Expected generated UUID, got %q", id)
	}

	runs, err := store.TopRuns("blocks", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("Expected 1 run, got %d", len(runs))
	}
	r := runs[0]
	if r.RunID != id || r.Score != 450 || r.Lines != 9 || r.Level != 1 || r.Ticks != 3600 {
		t.Errorf("Unexpected run %+v", r)
	}
	if r.CreatedAt.IsZero() {
		t.Error("Expected created_at to be filled in")
	}
}

func TestStoreSaveRunKeepsGivenID(t *testing.T) {
	store := openTemp(t)

	id, err := store.SaveRun(RunResult{RunID: "fixed-id", GameID: "blocks", Score: 1})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if id != "fixed-id" {
		t.Errorf("Expected given run ID, got %q", id)
	}

	if _, err := store.SaveRun(RunResult{RunID: "fixed-id", GameID: "blocks", Score: 999}); err == nil {
		t.Fatal("Expected duplicate run ID to fail")
	}
	if high, _ := store.HighScore("blocks"); high != 1 {
		t.Errorf("Duplicate run leaked a score: high = %d", high)
	}
}

func TestStoreSaveRunRequiresGame(t *testing.T) {
	store := openTemp(t)
	if _, err := store.SaveRun(RunResult{Score: 10}); err == nil {
		t.Error("Expected error for run without game ID")
	}
}

func TestStoreTopRuns(t *testing.T) {
	store := openTemp(t)
	mustSave(t, store,
		RunResult{GameID: "blocks", Score: 100, Lines: 2},
		RunResult{GameID: "blocks", Score: 300, Lines: 6},
		RunResult{GameID: "blocks", Score: 100, Lines: 4},
		RunResult{GameID: "blocks", Score: 100, Lines: 4, Level: 9},
		RunResult{GameID: "blocks_classic", Score: 900, Lines: 18},
	)

	top, err := store.TopRuns("blocks", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 4 {
		t.Fatalf("Expected 4 runs, got %d", len(top))
	}
	if top[0].Score != 300 || top[1].Lines != 4 || top[3].Lines != 2 {
		t.Errorf("Runs not ordered by score then lines: %+v", top)
	}
	if top[1].Level != 0 || top[2].Level != 9 {
		t.Errorf("Equal runs should keep insertion order: %+v", top)
	}

	top, _ = store.TopRuns("blocks", 1)
	if len(top) != 1 {
		t.Errorf("Expected limit 1, got %d", len(top))
	}

	top, _ = store.TopRuns("unknown", 10)
	if len(top) != 0 {
		t.Errorf("Expected no runs for unknown mode, got %d", len(top))
	}
}

func TestStoreTopRunsDefaultLimit(t *testing.T) {
	store := openTemp(t)
	for i := 0; i < 15; i++ {
		mustSave(t, store, RunResult{GameID: "blocks", Score: i * 50})
	}

	top, err := store.TopRuns("blocks", 0)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 10 {
		t.Errorf("Expected default limit 10, got %d", len(top))
	}
	if top[0].Score != 700 {
		t.Errorf("Expected best score 700, got %d", top[0].Score)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTemp(t)

	high, err := store.HighScore("blocks")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for unplayed mode, got %d", high)
	}

	mustSave(t, store,
		RunResult{GameID: "blocks", Score: 150},
		RunResult{GameID: "blocks", Score: 400},
		RunResult{GameID: "blocks_classic", Score: 999},
	)
	if high, _ = store.HighScore("blocks"); high != 400 {
		t.Errorf("Expected high score 400, got %d", high)
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTemp(t)

	stats, err := store.GetGameStats("blocks")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GameID != "blocks" || stats.GamesCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", *stats)
	}

	mustSave(t, store,
		RunResult{GameID: "blocks", Score: 200, Lines: 4, Level: 1},
		RunResult{GameID: "blocks", Score: 600, Lines: 12, Level: 2},
		RunResult{GameID: "blocks_classic", Score: 50, Lines: 1, Level: 1},
	)

	stats, err = store.GetGameStats("blocks")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 600 || stats.AvgScore != 400 || stats.TotalScore != 800 {
		t.Errorf("Unexpected score stats %+v", *stats)
	}
	if stats.TotalLines != 16 || stats.BestLevel != 2 {
		t.Errorf("Unexpected line stats %+v", *stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("Expected last played to be set")
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("Expected stats for 2 modes, got %d", len(all))
	}
	if all["blocks"] == nil || all["blocks"].GamesCount != 2 {
		t.Errorf("Unexpected blocks stats %+v", all["blocks"])
	}
	if all["blocks_classic"] == nil || all["blocks_classic"].TotalLines != 1 {
		t.Errorf("Unexpected classic stats %+v", all["blocks_classic"])
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTemp(t)
	mustSave(t, store,
		RunResult{GameID: "blocks", Score: 10},
		RunResult{GameID: "blocks_classic", Score: 20},
	)

	if err := store.ClearRuns("blocks"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}
	if runs, _ := store.TopRuns("blocks", 10); len(runs) != 0 {
		t.Errorf("Expected runs cleared, got %d", len(runs))
	}
	if runs, _ := store.TopRuns("blocks_classic", 10); len(runs) != 1 {
		t.Error("Clearing one mode must not touch another")
	}
}
