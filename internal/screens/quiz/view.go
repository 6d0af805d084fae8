package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/learncheck/learncheck/internal/controller"
	quizdata "github.com/learncheck/learncheck/internal/quiz"
	"github.com/learncheck/learncheck/internal/ui/components"
	"github.com/learncheck/learncheck/internal/ui/theme"
)

func renderProgressCount(index, total int) string {
	return fmt.Sprintf("%d / %d", index+1, total)
}

func (s *QuizScreen) View(width, height int) string {
	p := s.palette()

	if s.snap.Session == nil {
		if s.snap.Busy {
			return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
				s.spin.View()+" "+p.Dim().Render("Loading your quiz..."))
		}
		msg := "No quiz loaded."
		if s.snap.Notice != "" {
			msg = s.snap.Notice
		}
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			p.Notice().Render(msg))
	}

	var content string
	switch s.snap.View.Phase {
	case controller.PhaseWelcome:
		content = s.renderWelcome(p, width)
	case controller.PhaseQuestion:
		content = s.renderQuestion(p, width)
	case controller.PhaseResults:
		content = s.renderResults(p, width)
	}

	var extras []string
	if s.snap.Notice != "" {
		extras = append(extras, p.Notice().Render(s.snap.Notice))
	}
	if s.snap.Busy {
		extras = append(extras, s.spin.View()+" "+p.Dim().Render("Working..."))
	}
	if len(extras) > 0 {
		content += "\n\n" + strings.Join(extras, "\n")
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *QuizScreen) renderWelcome(p theme.Palette, width int) string {
	sess := s.snap.Session

	var b strings.Builder
	b.WriteString(p.Title().Render(sess.ModuleTitle))
	b.WriteString("\n\n")
	b.WriteString(p.Subtitle().Render(fmt.Sprintf("%d questions to check what you learned", sess.Total())))

	if sess.ContextText != "" {
		b.WriteString("\n\n")
		b.WriteString(p.Dim().Width(min(width-10, 70)).Render(sess.ContextText))
	}

	if sess.IsCompleted {
		b.WriteString("\n\n")
		b.WriteString(p.Correct().Render(fmt.Sprintf(
			"Last score: %d%% (%d/%d)", sess.Score, sess.CorrectCount, sess.Total())))
	}

	b.WriteString("\n\n")
	b.WriteString(p.HintText().Render("press Enter to start"))

	return b.String()
}

func (s *QuizScreen) renderQuestion(p theme.Palette, width int) string {
	sess := s.snap.Session
	q := sess.QuestionAt(s.snap.View.Index)
	if q == nil {
		return p.Dim().Render("No question here.")
	}

	selected := make(map[string]bool)
	for _, id := range sess.Selected(q.ID) {
		selected[id] = true
	}

	status, checked := sess.CheckedStatus[q.ID]

	list := components.OptionList{
		Cursor:    s.cursor,
		Submitted: status.Submitted,
	}
	for _, opt := range q.Options {
		list.Items = append(list.Items, components.OptionItem{
			Text:     opt.Text,
			Selected: selected[opt.ID],
			Correct:  opt.IsCorrect,
		})
	}

	bar := components.ProgressBar{
		Percent: float64(len(sess.CheckedStatus)) / float64(sess.Total()),
		Width:   min(width-10, 50),
	}

	var b strings.Builder
	b.WriteString(bar.View(p))
	b.WriteString("\n\n")
	b.WriteString(p.Body().Bold(true).Width(min(width-10, 70)).Render(q.Question))
	b.WriteString("\n\n")
	b.WriteString(list.View(p))

	if checked && status.Submitted {
		b.WriteString("\n")
		if status.IsCorrect {
			b.WriteString(p.Correct().Render("Correct!"))
		} else {
			b.WriteString(p.Incorrect().Render(fmt.Sprintf("Not quite. (attempt %d)", status.AttemptCount)))
		}
		if q.Feedback != "" {
			b.WriteString("\n")
			b.WriteString(p.Dim().Width(min(width-10, 70)).Render(q.Feedback))
		}
	}

	if s.snap.View.HintVisible {
		if hint := s.currentHint(q.ID); hint != "" {
			b.WriteString("\n\n")
			b.WriteString(p.Card().Width(min(width-12, 68)).
				Render(p.HintText().Render("Hint: " + hint)))
		} else {
			b.WriteString("\n\n")
			b.WriteString(p.HintText().Render("No hint available for this question."))
		}
	}

	return b.String()
}

// currentHint picks the hint to show: before submission the question's
// pre-hint, afterwards whatever aiHints holds (static seed or generated).
func (s *QuizScreen) currentHint(questionID string) string {
	sess := s.snap.Session
	if !sess.Submitted(questionID) {
		if q := s.questionByID(questionID); q != nil {
			return q.PreHint
		}
		return ""
	}
	return sess.AIHints[questionID]
}

func (s *QuizScreen) questionByID(id string) *quizdata.Question {
	for i := range s.snap.Session.Questions {
		if s.snap.Session.Questions[i].ID == id {
			return &s.snap.Session.Questions[i]
		}
	}
	return nil
}

func (s *QuizScreen) renderResults(p theme.Palette, width int) string {
	sess := s.snap.Session

	var b strings.Builder
	b.WriteString(p.Title().Render("Results"))
	b.WriteString("\n\n")

	scoreStyle := p.Correct()
	if sess.Score < 50 {
		scoreStyle = p.Incorrect()
	}
	b.WriteString(scoreStyle.Render(fmt.Sprintf("%d%%", sess.Score)))
	b.WriteString(p.Body().Render(fmt.Sprintf("  %d of %d correct", sess.CorrectCount, sess.Total())))
	b.WriteString("\n\n")

	for i, q := range sess.Questions {
		mark := p.Incorrect().Render("✗")
		if sess.CheckedStatus[q.ID].IsCorrect {
			mark = p.Correct().Render("✓")
		}
		line := fmt.Sprintf("%s  %d. %s", mark, i+1, truncateLine(q.Question, min(width-16, 60)))
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(p.HintText().Render("Enter to review your answers, R to start over"))

	return b.String()
}

func truncateLine(s string, max int) string {
	if max <= 3 || len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
