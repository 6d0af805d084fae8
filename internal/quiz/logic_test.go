package quiz

import "testing"

func multiCorrectQuestion() Question {
	return Question{
		ID: "q1",
		Options: []Option{
			{ID: "a", IsCorrect: true},
			{ID: "b", IsCorrect: false},
			{ID: "c", IsCorrect: true},
			{ID: "d", IsCorrect: false},
		},
	}
}

func TestIsQuestionCorrect_ExactSetMatch(t *testing.T) {
	q := multiCorrectQuestion()

	if !IsQuestionCorrect(q, []string{"a", "c"}) {
		t.Error("exact correct set should pass")
	}
	if !IsQuestionCorrect(q, []string{"c", "a"}) {
		t.Error("order must not matter")
	}
}

func TestIsQuestionCorrect_ExtraFlips(t *testing.T) {
	q := multiCorrectQuestion()

	if IsQuestionCorrect(q, []string{"a", "c", "b"}) {
		t.Error("extra incorrect option should fail")
	}
}

func TestIsQuestionCorrect_MissingFlips(t *testing.T) {
	q := multiCorrectQuestion()

	if IsQuestionCorrect(q, []string{"a"}) {
		t.Error("missing correct option should fail")
	}
	if IsQuestionCorrect(q, nil) {
		t.Error("empty selection should fail when correct options exist")
	}
}

func TestIsQuestionCorrect_DuplicateSelectionsAreOneVote(t *testing.T) {
	q := multiCorrectQuestion()

	// Selections are sets; a duplicated ID must not change the verdict.
	if !IsQuestionCorrect(q, []string{"a", "a", "c"}) {
		t.Error("duplicated correct ID should still pass")
	}
}

func TestIsQuestionCorrect_ZeroCorrectOptions(t *testing.T) {
	q := Question{
		ID: "q0",
		Options: []Option{
			{ID: "a"},
			{ID: "b"},
		},
	}

	// Policy: a question with no correct options is correct only with an
	// empty selection.
	if !IsQuestionCorrect(q, nil) {
		t.Error("empty selection should pass with zero correct options")
	}
	if IsQuestionCorrect(q, []string{"a"}) {
		t.Error("any selection should fail with zero correct options")
	}
}

func TestComputeScore(t *testing.T) {
	s := NewSession(Identity{UserID: "u", TutorialID: "t"}, "att", []Question{
		{ID: "q1"}, {ID: "q2"}, {ID: "q3"},
	}, "Module", "", Preferences{})
	s.CheckedStatus["q1"] = CheckedStatus{Submitted: true, IsCorrect: true, AttemptCount: 1}
	s.CheckedStatus["q2"] = CheckedStatus{Submitted: true, IsCorrect: false, AttemptCount: 2}
	s.CheckedStatus["q3"] = CheckedStatus{Submitted: true, IsCorrect: true, AttemptCount: 1}

	got := ComputeScore(s)
	if got.CorrectCount != 2 {
		t.Errorf("CorrectCount = %d, want 2", got.CorrectCount)
	}
	if got.Score != 67 {
		t.Errorf("Score = %d, want 67", got.Score)
	}
	if got.CorrectCount > s.Total() {
		t.Error("correct count must never exceed total questions")
	}
}

func TestComputeScore_Idempotent(t *testing.T) {
	s := NewSession(Identity{UserID: "u", TutorialID: "t"}, "att", []Question{
		{ID: "q1"}, {ID: "q2"},
	}, "Module", "", Preferences{})
	s.CheckedStatus["q1"] = CheckedStatus{Submitted: true, IsCorrect: true, AttemptCount: 1}

	first := ComputeScore(s)
	second := ComputeScore(s)
	if first != second {
		t.Errorf("ComputeScore not idempotent: %+v vs %+v", first, second)
	}
}

func TestComputeScore_TrustsStoredVerdict(t *testing.T) {
	q := multiCorrectQuestion()
	s := NewSession(Identity{UserID: "u", TutorialID: "t"}, "att", []Question{q}, "Module", "", Preferences{})

	// Verdict says correct even though the current answer set is not.
	s.Answers[q.ID] = []string{"b"}
	s.CheckedStatus[q.ID] = CheckedStatus{Submitted: true, IsCorrect: true, AttemptCount: 1}

	got := ComputeScore(s)
	if got.CorrectCount != 1 || got.Score != 100 {
		t.Errorf("score must come from stored verdicts, got %+v", got)
	}
}

func TestComputeScore_EmptySession(t *testing.T) {
	s := NewSession(Identity{UserID: "u", TutorialID: "t"}, "att", nil, "Module", "", Preferences{})
	if got := ComputeScore(s); got != (ScoreResult{}) {
		t.Errorf("empty session should score zero, got %+v", got)
	}
}
