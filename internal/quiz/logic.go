package quiz

import "math"

// IsQuestionCorrect reports whether the selected option IDs are exactly
// the set of options marked correct: order-independent, no extras, no
// missing. A question with zero correct options is correct only with an
// empty selection.
func IsQuestionCorrect(q Question, selected []string) bool {
	want := make(map[string]bool)
	for _, o := range q.Options {
		if o.IsCorrect {
			want[o.ID] = true
		}
	}

	seen := make(map[string]bool, len(selected))
	for _, id := range selected {
		if seen[id] {
			continue
		}
		seen[id] = true
		if !want[id] {
			return false
		}
	}
	return len(seen) == len(want)
}

// ScoreResult is the finalized quiz outcome.
type ScoreResult struct {
	Score        int
	CorrectCount int
}

// ComputeScore aggregates the stored verdicts into a 0-100 score. It
// counts CheckedStatus entries with IsCorrect set (the verdict recorded
// at check time) rather than re-evaluating current answers, so the
// result is stable for an unchanged session.
func ComputeScore(s *Session) ScoreResult {
	total := s.Total()
	if total == 0 {
		return ScoreResult{}
	}

	correct := 0
	for _, q := range s.Questions {
		if s.CheckedStatus[q.ID].IsCorrect {
			correct++
		}
	}

	return ScoreResult{
		Score:        int(math.Round(float64(correct) / float64(total) * 100)),
		CorrectCount: correct,
	}
}
