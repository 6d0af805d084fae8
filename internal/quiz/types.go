package quiz

// SchemaVersion is the persisted session blob version. A stored session
// with a different version is treated as absent and reloaded fresh.
const SchemaVersion = 1

// Option is one selectable answer of a question. Zero, one, or several
// options of a question may be marked correct (multi-select semantics).
type Option struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct"`
}

// Question is a single quiz item. Immutable once fetched, except wholesale
// replacement when the question is regenerated.
type Question struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Options  []Option `json:"options"`
	Feedback string   `json:"feedback,omitempty"`
	Hint     string   `json:"hint,omitempty"`
	PreHint  string   `json:"pre_hint,omitempty"`
}

// CorrectOptionIDs returns the IDs of all options marked correct.
func (q Question) CorrectOptionIDs() []string {
	var ids []string
	for _, o := range q.Options {
		if o.IsCorrect {
			ids = append(ids, o.ID)
		}
	}
	return ids
}

// CheckedStatus is the stored verdict for a submitted question. Once
// Submitted is true the question is locked: its answers cannot change
// until an explicit reset deletes the entry.
type CheckedStatus struct {
	Submitted    bool `json:"submitted"`
	IsCorrect    bool `json:"is_correct"`
	AttemptCount int  `json:"attempt_count"`
}

// Preferences is the per-user preference blob delivered with the quiz data.
type Preferences struct {
	Theme string `json:"theme,omitempty"`
}

// Identity keys one session: one (user, tutorial) pair.
type Identity struct {
	UserID     string
	TutorialID string
}

// Valid reports whether both identity components are present.
func (id Identity) Valid() bool {
	return id.UserID != "" && id.TutorialID != ""
}
