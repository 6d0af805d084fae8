package store

import (
	"context"
	"testing"

	"github.com/learncheck/learncheck/internal/quiz"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleSession() *quiz.Session {
	id := quiz.Identity{UserID: "u1", TutorialID: "t1"}
	s := quiz.NewSession(id, "att-1", []quiz.Question{
		{ID: "q1", Question: "2+2?", Options: []quiz.Option{
			{ID: "a", Text: "4", IsCorrect: true},
			{ID: "b", Text: "5"},
		}},
	}, "Arithmetic", "ctx", quiz.Preferences{Theme: "dark"})
	s.Answers["q1"] = []string{"a"}
	s.CheckedStatus["q1"] = quiz.CheckedStatus{Submitted: true, IsCorrect: true, AttemptCount: 1}
	s.AIHints["q1"] = "think in fours"
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestMigrateCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"sessions", "hint_events", "llm_request_events", "attempt_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s missing: %v", table, err)
		}
	}
}

func TestSessionRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.Sessions()
	ctx := context.Background()
	id := quiz.Identity{UserID: "u1", TutorialID: "t1"}

	// Absent before any write.
	got, err := repo.Get(ctx, id)
	if err != nil {
		t.Fatalf("get (empty): %v", err)
	}
	if got != nil {
		t.Fatal("expected nil session before write")
	}

	want := sampleSession()
	if err := repo.Put(ctx, want); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err = repo.Get(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected stored session")
	}
	if got.AttemptID != "att-1" || got.ModuleTitle != "Arithmetic" {
		t.Errorf("metadata mismatch: %+v", got)
	}
	if len(got.Selected("q1")) != 1 || !got.Submitted("q1") {
		t.Error("bookkeeping maps not round-tripped")
	}
	if got.Preferences.Theme != "dark" {
		t.Errorf("theme = %q, want dark", got.Preferences.Theme)
	}
}

func TestSessionPutOverwritesWhole(t *testing.T) {
	s := openTestStore(t)
	repo := s.Sessions()
	ctx := context.Background()
	id := quiz.Identity{UserID: "u1", TutorialID: "t1"}

	if err := repo.Put(ctx, sampleSession()); err != nil {
		t.Fatalf("put: %v", err)
	}

	// Replace with a fresh session: old bookkeeping must not survive.
	fresh := quiz.NewSession(id, "att-2", []quiz.Question{{ID: "q9"}}, "Arithmetic", "", quiz.Preferences{})
	if err := repo.Put(ctx, fresh); err != nil {
		t.Fatalf("put fresh: %v", err)
	}

	got, err := repo.Get(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.AttemptID != "att-2" || len(got.Answers) != 0 || len(got.CheckedStatus) != 0 {
		t.Errorf("overwrite was a merge, not a replace: %+v", got)
	}
}

func TestSessionVersionMismatchReadsAbsent(t *testing.T) {
	s := openTestStore(t)
	repo := s.Sessions()
	ctx := context.Background()
	id := quiz.Identity{UserID: "u1", TutorialID: "t1"}

	stale := sampleSession()
	stale.SchemaVersion = quiz.SchemaVersion + 1
	if err := repo.Put(ctx, stale); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := repo.Get(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != nil {
		t.Error("version-mismatched blob should read as absent")
	}
}

func TestSessionClear(t *testing.T) {
	s := openTestStore(t)
	repo := s.Sessions()
	ctx := context.Background()
	id := quiz.Identity{UserID: "u1", TutorialID: "t1"}

	if err := repo.Put(ctx, sampleSession()); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := repo.Clear(ctx, id); err != nil {
		t.Fatalf("clear: %v", err)
	}

	got, err := repo.Get(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != nil {
		t.Error("expected nil session after clear")
	}

	// Clearing a missing session is not an error.
	if err := repo.Clear(ctx, id); err != nil {
		t.Errorf("clear (absent): %v", err)
	}
}

func TestSessionKeyIsComposite(t *testing.T) {
	s := openTestStore(t)
	repo := s.Sessions()
	ctx := context.Background()

	a := sampleSession()
	b := sampleSession()
	// Same concatenation, different identities: "u1"+"1t1" vs "u11"+"t1".
	b.UserID, b.TutorialID = "u11", "t1"
	a.UserID, a.TutorialID = "u1", "1t1"
	b.ModuleTitle = "Other"

	if err := repo.Put(ctx, a); err != nil {
		t.Fatalf("put a: %v", err)
	}
	if err := repo.Put(ctx, b); err != nil {
		t.Fatalf("put b: %v", err)
	}

	got, err := repo.Get(ctx, quiz.Identity{UserID: "u1", TutorialID: "1t1"})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.ModuleTitle != "Arithmetic" {
		t.Error("composite key collided across identities")
	}
}

func TestEventsAppendAndListAttempts(t *testing.T) {
	s := openTestStore(t)
	events := s.Events()
	ctx := context.Background()
	id := quiz.Identity{UserID: "u1", TutorialID: "t1"}

	if err := events.AppendHintEvent(ctx, HintEventData{
		UserID: "u1", TutorialID: "t1", AttemptID: "att-1",
		QuestionID: "q1", Source: HintSourceAI, Success: true, HintText: "hint",
	}); err != nil {
		t.Fatalf("append hint: %v", err)
	}
	if err := events.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "mock", Model: "mock", Purpose: "hint", Success: false, ErrorMessage: "boom",
	}); err != nil {
		t.Fatalf("append llm request: %v", err)
	}

	for i, score := range []int{40, 70, 100} {
		if err := events.AppendAttemptEvent(ctx, AttemptEventData{
			UserID: "u1", TutorialID: "t1", AttemptID: "att",
			Score: score, CorrectCount: i + 1, TotalQuestions: 3,
		}); err != nil {
			t.Fatalf("append attempt %d: %v", i, err)
		}
	}

	attempts, err := events.ListAttempts(ctx, id, 2)
	if err != nil {
		t.Fatalf("list attempts: %v", err)
	}
	if len(attempts) != 2 {
		t.Fatalf("attempts = %d, want 2", len(attempts))
	}
	// Newest first.
	if attempts[0].Score != 100 || attempts[1].Score != 70 {
		t.Errorf("ordering wrong: %d, %d", attempts[0].Score, attempts[1].Score)
	}
	if attempts[0].CompletedAt.IsZero() {
		t.Error("expected a completion timestamp")
	}

	// Other identities see nothing.
	other, err := events.ListAttempts(ctx, quiz.Identity{UserID: "x", TutorialID: "y"}, 0)
	if err != nil {
		t.Fatalf("list other: %v", err)
	}
	if len(other) != 0 {
		t.Errorf("expected no attempts for other identity, got %d", len(other))
	}
}
