package quiz

// Session is the persisted unit of truth for one (user, tutorial) pair.
// The controller is its sole writer; everyone else sees deep copies.
type Session struct {
	SchemaVersion int    `json:"schema_version"`
	AttemptID     string `json:"attempt_id"`
	UserID        string `json:"user_id"`
	TutorialID    string `json:"tutorial_id"`

	ModuleTitle string `json:"module_title"`
	ContextText string `json:"context_text"`

	Questions []Question `json:"questions"`

	// Answers maps question ID to the set of selected option IDs.
	// An absent entry is an empty selection.
	Answers map[string][]string `json:"answers"`

	// CheckedStatus maps question ID to its stored verdict.
	CheckedStatus map[string]CheckedStatus `json:"checked_status"`

	// AIHints maps question ID to hint text. An entry exists only after
	// the question was checked and a hint (static or generated) is known.
	AIHints map[string]string `json:"ai_hints"`

	IsCompleted  bool `json:"is_completed"`
	Score        int  `json:"score"`
	CorrectCount int  `json:"correct_count"`

	Preferences Preferences `json:"user_preferences"`
}

// NewSession builds a fresh session with empty bookkeeping maps.
func NewSession(id Identity, attemptID string, questions []Question, moduleTitle, contextText string, prefs Preferences) *Session {
	return &Session{
		SchemaVersion: SchemaVersion,
		AttemptID:     attemptID,
		UserID:        id.UserID,
		TutorialID:    id.TutorialID,
		ModuleTitle:   moduleTitle,
		ContextText:   contextText,
		Questions:     questions,
		Preferences:   prefs,
		Answers:       map[string][]string{},
		CheckedStatus: map[string]CheckedStatus{},
		AIHints:       map[string]string{},
	}
}

// Total returns the number of questions in the session.
func (s *Session) Total() int {
	return len(s.Questions)
}

// QuestionAt returns the question at index, or nil if out of range.
func (s *Session) QuestionAt(index int) *Question {
	if index < 0 || index >= len(s.Questions) {
		return nil
	}
	return &s.Questions[index]
}

// Selected returns the selected option IDs for a question.
func (s *Session) Selected(questionID string) []string {
	return s.Answers[questionID]
}

// Submitted reports whether a question has been checked and is locked.
func (s *Session) Submitted(questionID string) bool {
	return s.CheckedStatus[questionID].Submitted
}

// ToggleAnswer flips membership of optionID in the question's selection:
// removed if present, appended if absent. Selections are sets; an ID
// never appears twice.
func (s *Session) ToggleAnswer(questionID, optionID string) {
	current := s.Answers[questionID]
	for i, id := range current {
		if id == optionID {
			s.Answers[questionID] = append(current[:i:i], current[i+1:]...)
			if len(s.Answers[questionID]) == 0 {
				delete(s.Answers, questionID)
			}
			return
		}
	}
	s.Answers[questionID] = append(current, optionID)
}

// ResetQuestion deletes the answer and verdict entries for a question.
// Both are removed together, never one without the other.
func (s *Session) ResetQuestion(questionID string) {
	delete(s.Answers, questionID)
	delete(s.CheckedStatus, questionID)
}

// ReplaceQuestion swaps in a regenerated question at index and clears the
// bookkeeping of the question it replaces.
func (s *Session) ReplaceQuestion(index int, q Question) {
	old := s.QuestionAt(index)
	if old == nil {
		return
	}
	s.ResetQuestion(old.ID)
	delete(s.AIHints, old.ID)
	s.Questions[index] = q
}

// AllChecked reports whether every question has a stored verdict.
func (s *Session) AllChecked() bool {
	return len(s.Questions) > 0 && len(s.CheckedStatus) == len(s.Questions)
}

// Valid reports whether a stored session is usable: matching schema
// version, at least one question, and bookkeeping keyed only by known
// question IDs.
func (s *Session) Valid() bool {
	if s == nil || s.SchemaVersion != SchemaVersion || len(s.Questions) == 0 {
		return false
	}
	known := make(map[string]bool, len(s.Questions))
	for _, q := range s.Questions {
		known[q.ID] = true
	}
	for id := range s.Answers {
		if !known[id] {
			return false
		}
	}
	for id := range s.CheckedStatus {
		if !known[id] {
			return false
		}
	}
	return true
}

// Clone returns a deep copy. Snapshots handed to the presentation layer
// are clones so readers can never mutate controller-owned state.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	out := *s
	out.Questions = make([]Question, len(s.Questions))
	for i, q := range s.Questions {
		out.Questions[i] = q
		out.Questions[i].Options = append([]Option(nil), q.Options...)
	}
	out.Answers = make(map[string][]string, len(s.Answers))
	for k, v := range s.Answers {
		out.Answers[k] = append([]string(nil), v...)
	}
	out.CheckedStatus = make(map[string]CheckedStatus, len(s.CheckedStatus))
	for k, v := range s.CheckedStatus {
		out.CheckedStatus[k] = v
	}
	out.AIHints = make(map[string]string, len(s.AIHints))
	for k, v := range s.AIHints {
		out.AIHints[k] = v
	}
	return &out
}
