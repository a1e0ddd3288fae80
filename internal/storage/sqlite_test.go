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

func TestOpenCreatesNestedDirectories(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestOpenExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.match3/scores.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".match3", "scores.db")); err != nil {
		t.Errorf("database not created under HOME: %v", err)
	}
}

func TestSaveResultAndTopScores(t *testing.T) {
	store := openTemp(t)

	results := []Result{
		{GameID: "match3", SessionID: "s1", Score: 120, Moves: 14},
		{GameID: "match3", SessionID: "s1", Score: 45, Moves: 6},
		{GameID: "match3", SessionID: "s2", Score: 300, Moves: 31},
		{GameID: "match3_campaign", SessionID: "s2", Score: 500, Moves: 20, Level: 3},
	}
	for _, r := range results {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult(%+v) failed: %v", r, err)
		}
	}

	scores, err := store.TopScores("match3", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 300 || scores[1].Score != 120 || scores[2].Score != 45 {
		t.Errorf("scores not in descending order: %+v", scores)
	}
	if scores[0].SessionID != "s2" || scores[0].Moves != 31 {
		t.Errorf("columns not round-tripped: %+v", scores[0])
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("created_at was not parsed")
	}

	campaign, err := store.TopScores("match3_campaign", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(campaign) != 1 || campaign[0].Level != 3 {
		t.Errorf("unexpected campaign scores: %+v", campaign)
	}
}

func TestSaveResultRequiresGameID(t *testing.T) {
	store := openTemp(t)
	if _, err := store.SaveResult(Result{Score: 10}); err == nil {
		t.Error("expected error for empty game id")
	}
}

func TestTopScoresLimitAndTies(t *testing.T) {
	store := openTemp(t)

	for i := range 5 {
		if _, err := store.SaveScore("match3", (i+1)*100); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	tie, _ := store.SaveScore("match3", 500)

	scores, err := store.TopScores("match3", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 500 || scores[2].Score != 400 {
		t.Errorf("scores not in expected order: %+v", scores)
	}
	if scores[1].ID != tie {
		t.Errorf("later tie should rank second, got id %d want %d", scores[1].ID, tie)
	}

	// Non-positive limits fall back to ten.
	all, _ := store.TopScores("match3", 0)
	if len(all) != 6 {
		t.Errorf("expected 6 scores with default limit, got %d", len(all))
	}
}

func TestHighScoreAndBestLevel(t *testing.T) {
	store := openTemp(t)

	high, err := store.HighScore("match3")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("expected 0 for empty game, got %d", high)
	}

	store.SaveResult(Result{GameID: "match3_campaign", Score: 100, Level: 2})
	store.SaveResult(Result{GameID: "match3_campaign", Score: 300, Level: 1})
	store.SaveResult(Result{GameID: "match3_campaign", Score: 200, Level: 4})

	if high, _ = store.HighScore("match3_campaign"); high != 300 {
		t.Errorf("expected high score 300, got %d", high)
	}
	level, err := store.BestLevel("match3_campaign")
	if err != nil {
		t.Fatalf("BestLevel() failed: %v", err)
	}
	if level != 4 {
		t.Errorf("expected best level 4, got %d", level)
	}
}

func TestSessionResults(t *testing.T) {
	store := openTemp(t)

	store.SaveResult(Result{GameID: "match3", SessionID: "a", Score: 30})
	store.SaveResult(Result{GameID: "match3", SessionID: "b", Score: 90})
	store.SaveResult(Result{GameID: "match3_campaign", SessionID: "a", Score: 60})

	got, err := store.SessionResults("a")
	if err != nil {
		t.Fatalf("SessionResults() failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 results, got %d", len(got))
	}
	if got[0].Score != 30 || got[1].Score != 60 {
		t.Errorf("session results not in save order: %+v", got)
	}
}

func TestClearScores(t *testing.T) {
	store := openTemp(t)

	store.SaveScore("match3", 100)
	store.SaveScore("match3", 200)
	store.SaveScore("match3_campaign", 300)

	if err := store.ClearScores("match3"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.AllScores("match3"); len(scores) != 0 {
		t.Errorf("expected 0 scores after clear, got %d", len(scores))
	}
	if scores, _ := store.AllScores("match3_campaign"); len(scores) != 1 {
		t.Error("other games should not be affected by clearing")
	}
}

func TestAllScores(t *testing.T) {
	store := openTemp(t)

	for i := range 20 {
		store.SaveScore("match3", i*10)
	}

	scores, err := store.AllScores("match3")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 20 {
		t.Errorf("expected 20 scores, got %d", len(scores))
	}
	if scores[0].Score != 190 {
		t.Errorf("expected highest first, got %d", scores[0].Score)
	}
}
