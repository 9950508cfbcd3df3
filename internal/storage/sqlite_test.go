package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ferretworks/stash-dash/internal/game"
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

func TestStoreCreatesDataDir(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with missing parent dirs failed: %v", err)
	}
	store.Close()
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []game.RunRecord{
		{Stash: 100, Distance: 900, Yarn: 60, Duration: 95},
		{Stash: 50, Distance: 1400, Yarn: 30, Duration: 120},
		{Stash: 200, Distance: 700, Yarn: 110, Duration: 80},
	}
	for _, r := range runs {
		if err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(top))
	}

	// Sorted by stash descending
	if top[0].Stash != 200 || top[1].Stash != 100 || top[2].Stash != 50 {
		t.Errorf("Wrong order: %d, %d, %d", top[0].Stash, top[1].Stash, top[2].Stash)
	}
	if top[0].Distance != 700 || top[0].Yarn != 110 {
		t.Errorf("Run fields not round-tripped: %+v", top[0])
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		if err := store.SaveRun(game.RunRecord{Stash: i}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Errorf("Expected 3 runs with limit, got %d", len(top))
	}
}

func TestStoreRecords(t *testing.T) {
	store := openTestStore(t)

	// Empty store reports zero records
	hs, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if hs != 0 {
		t.Errorf("Empty high score = %d, want 0", hs)
	}

	bd, err := store.BestDistance()
	if err != nil {
		t.Fatalf("BestDistance() failed: %v", err)
	}
	if bd != 0 {
		t.Errorf("Empty best distance = %d, want 0", bd)
	}

	// Records come from different runs independently
	store.SaveRun(game.RunRecord{Stash: 80, Distance: 400})  //nolint:errcheck
	store.SaveRun(game.RunRecord{Stash: 30, Distance: 1600}) //nolint:errcheck

	if hs, _ = store.HighScore(); hs != 80 {
		t.Errorf("HighScore = %d, want 80", hs)
	}
	if bd, _ = store.BestDistance(); bd != 1600 {
		t.Errorf("BestDistance = %d, want 1600", bd)
	}
}

func TestStoreLifetime(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(game.RunRecord{Stash: 10, Distance: 300, Yarn: 12, Duration: 45}) //nolint:errcheck
	store.SaveRun(game.RunRecord{Stash: 20, Distance: 500, Yarn: 18, Duration: 65}) //nolint:errcheck

	ls, err := store.Lifetime()
	if err != nil {
		t.Fatalf("Lifetime() failed: %v", err)
	}
	if ls.Runs != 2 {
		t.Errorf("Runs = %d, want 2", ls.Runs)
	}
	if ls.TotalYarn != 30 {
		t.Errorf("TotalYarn = %d, want 30", ls.TotalYarn)
	}
	if ls.TotalDistance != 800 {
		t.Errorf("TotalDistance = %d, want 800", ls.TotalDistance)
	}
	if ls.TotalSeconds != 110 {
		t.Errorf("TotalSeconds = %f, want 110", ls.TotalSeconds)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(game.RunRecord{Stash: 10}) //nolint:errcheck
	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	top, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 0 {
		t.Errorf("Expected no runs after clear, got %d", len(top))
	}
}

// Store must satisfy the game's persistence interface.
var _ game.RecordStore = (*Store)(nil)
