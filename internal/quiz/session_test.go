package quiz

import "testing"

func testSession() *Session {
	return NewSession(Identity{UserID: "u1", TutorialID: "t1"}, "att-1", []Question{
		{ID: "q1", Options: []Option{{ID: "a", IsCorrect: true}, {ID: "b"}}},
		{ID: "q2", Options: []Option{{ID: "c", IsCorrect: true}}},
	}, "Fractions", "ctx", Preferences{Theme: "dark"})
}

func TestToggleAnswer_RoundTrip(t *testing.T) {
	s := testSession()

	s.ToggleAnswer("q1", "a")
	if got := s.Selected("q1"); len(got) != 1 || got[0] != "a" {
		t.Fatalf("Selected = %v, want [a]", got)
	}

	// Toggling the same option again returns to the original value.
	s.ToggleAnswer("q1", "a")
	if got := s.Selected("q1"); len(got) != 0 {
		t.Fatalf("Selected = %v, want empty after double toggle", got)
	}
}

func TestToggleAnswer_NoDuplicates(t *testing.T) {
	s := testSession()

	s.ToggleAnswer("q1", "a")
	s.ToggleAnswer("q1", "b")
	s.ToggleAnswer("q1", "a") // removes a
	s.ToggleAnswer("q1", "a") // re-adds a

	got := s.Selected("q1")
	if len(got) != 2 {
		t.Fatalf("Selected = %v, want 2 distinct IDs", got)
	}
	seen := map[string]bool{}
	for _, id := range got {
		if seen[id] {
			t.Fatalf("duplicate ID %q in selection %v", id, got)
		}
		seen[id] = true
	}
}

func TestResetQuestion_DeletesBothEntries(t *testing.T) {
	s := testSession()
	s.ToggleAnswer("q1", "a")
	s.CheckedStatus["q1"] = CheckedStatus{Submitted: true, IsCorrect: true, AttemptCount: 1}

	s.ResetQuestion("q1")

	if _, ok := s.Answers["q1"]; ok {
		t.Error("answers entry should be deleted")
	}
	if _, ok := s.CheckedStatus["q1"]; ok {
		t.Error("checked status entry should be deleted")
	}
}

func TestReplaceQuestion(t *testing.T) {
	s := testSession()
	s.ToggleAnswer("q1", "a")
	s.CheckedStatus["q1"] = CheckedStatus{Submitted: true}
	s.AIHints["q1"] = "old hint"

	s.ReplaceQuestion(0, Question{ID: "q1b", Options: []Option{{ID: "x", IsCorrect: true}}})

	if s.Questions[0].ID != "q1b" {
		t.Fatalf("question not replaced: %q", s.Questions[0].ID)
	}
	if len(s.Answers) != 0 || len(s.CheckedStatus) != 0 || len(s.AIHints) != 0 {
		t.Error("replacement must clear old bookkeeping")
	}
	if s.Total() != 2 {
		t.Errorf("Total = %d, want 2", s.Total())
	}
}

func TestAllChecked(t *testing.T) {
	s := testSession()
	if s.AllChecked() {
		t.Error("fresh session should not be all-checked")
	}
	s.CheckedStatus["q1"] = CheckedStatus{Submitted: true}
	s.CheckedStatus["q2"] = CheckedStatus{Submitted: true}
	if !s.AllChecked() {
		t.Error("session with every verdict stored should be all-checked")
	}
}

func TestValid(t *testing.T) {
	s := testSession()
	if !s.Valid() {
		t.Fatal("fresh session should be valid")
	}

	stale := testSession()
	stale.SchemaVersion = SchemaVersion + 1
	if stale.Valid() {
		t.Error("version mismatch should be invalid")
	}

	orphan := testSession()
	orphan.Answers["ghost"] = []string{"a"}
	if orphan.Valid() {
		t.Error("answers keyed by unknown question should be invalid")
	}

	var nilSession *Session
	if nilSession.Valid() {
		t.Error("nil session should be invalid")
	}
}

func TestClone_IsDeep(t *testing.T) {
	s := testSession()
	s.ToggleAnswer("q1", "a")
	s.CheckedStatus["q1"] = CheckedStatus{Submitted: true, IsCorrect: true}
	s.AIHints["q1"] = "hint"

	c := s.Clone()
	c.ToggleAnswer("q1", "b")
	c.Questions[0].Options[0].Text = "mutated"
	c.AIHints["q1"] = "changed"
	c.CheckedStatus["q2"] = CheckedStatus{Submitted: true}

	if len(s.Selected("q1")) != 1 {
		t.Error("clone mutation leaked into original answers")
	}
	if s.Questions[0].Options[0].Text == "mutated" {
		t.Error("clone mutation leaked into original options")
	}
	if s.AIHints["q1"] != "hint" {
		t.Error("clone mutation leaked into original hints")
	}
	if _, ok := s.CheckedStatus["q2"]; ok {
		t.Error("clone mutation leaked into original verdicts")
	}
}
