package storage

import (
	"errors"
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

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{GameID: "skyhop", Player: "ann", Score: 100, Ticks: 900, PowerUps: 1},
		{GameID: "skyhop", Player: "bob", Score: 50, Ticks: 400},
		{GameID: "skyhop", Player: "ann", Score: 200, Ticks: 1500, PowerUps: 3},
		{GameID: "skyhop_endless", Player: "cid", Score: 500, Ticks: 4000},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns("skyhop", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(top))
	}

	wantScores := []int{200, 100, 50}
	for i, want := range wantScores {
		if top[i].Score != want {
			t.Errorf("run %d: score = %d, want %d", i, top[i].Score, want)
		}
	}

	best := top[0]
	if best.Player != "ann" || best.Ticks != 1500 || best.PowerUps != 3 {
		t.Errorf("best run = %+v, fields not round-tripped", best)
	}
	if best.CreatedAt.IsZero() {
		t.Error("CreatedAt was not populated")
	}

	endless, err := store.TopRuns("skyhop_endless", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(endless) != 1 || endless[0].Score != 500 {
		t.Errorf("endless runs = %+v, want one run with score 500", endless)
	}
}

func TestStoreSaveRunRequiresGameID(t *testing.T) {
	store := openTestStore(t)

	_, err := store.SaveRun(Run{Score: 10})
	if !errors.Is(err, ErrEmptyGameID) {
		t.Errorf("SaveRun() error = %v, want ErrEmptyGameID", err)
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		if _, err := store.SaveRun(Run{GameID: "skyhop", Score: i * 10}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	tests := []struct {
		limit int
		want  int
	}{
		{5, 5},
		{0, 10}, // Default limit
		{50, 20},
	}
	for _, tt := range tests {
		runs, err := store.TopRuns("skyhop", tt.limit)
		if err != nil {
			t.Fatalf("TopRuns(%d) failed: %v", tt.limit, err)
		}
		if len(runs) != tt.want {
			t.Errorf("TopRuns(%d) returned %d runs, want %d", tt.limit, len(runs), tt.want)
		}
	}
}

func TestStoreTiesKeepEarlierRunFirst(t *testing.T) {
	store := openTestStore(t)

	for _, player := range []string{"first", "second"} {
		if _, err := store.SaveRun(Run{GameID: "skyhop", Player: player, Score: 70}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.TopRuns("skyhop", 2)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if runs[0].Player != "first" {
		t.Errorf("first ranked player = %q, want %q", runs[0].Player, "first")
	}
}

func TestStoreHighScoreAndCount(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("skyhop")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for empty game, got %d", high)
	}

	for _, score := range []int{100, 500, 200} {
		if _, err := store.SaveRun(Run{GameID: "skyhop", Score: score}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	high, err = store.HighScore("skyhop")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 500 {
		t.Errorf("Expected high score 500, got %d", high)
	}

	n, err := store.RunCount("skyhop")
	if err != nil {
		t.Fatalf("RunCount() failed: %v", err)
	}
	if n != 3 {
		t.Errorf("Expected 3 runs, got %d", n)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{GameID: "skyhop", Score: 100})
	store.SaveRun(Run{GameID: "skyhop_endless", Score: 200})

	if err := store.ClearRuns("skyhop"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	if n, _ := store.RunCount("skyhop"); n != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", n)
	}
	if n, _ := store.RunCount("skyhop_endless"); n != 1 {
		t.Errorf("Other game should keep its runs, got %d", n)
	}
}

func TestStoreAllGamesStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{GameID: "skyhop", Score: 100, Ticks: 600})
	store.SaveRun(Run{GameID: "skyhop", Score: 300, Ticks: 1800})
	store.SaveRun(Run{GameID: "skyhop_endless", Score: 50, Ticks: 300})

	stats, err := store.AllGamesStats()
	if err != nil {
		t.Fatalf("AllGamesStats() failed: %v", err)
	}

	st, ok := stats["skyhop"]
	if !ok {
		t.Fatal("missing stats for skyhop")
	}
	if st.RunsCount != 2 || st.HighScore != 300 || st.TotalTicks != 2400 {
		t.Errorf("skyhop stats = %+v", st)
	}
	if st.AvgScore != 200 {
		t.Errorf("AvgScore = %v, want 200", st.AvgScore)
	}
	if len(stats) != 2 {
		t.Errorf("Expected stats for 2 games, got %d", len(stats))
	}
}

func TestStoreNestedPath(t *testing.T) {
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
