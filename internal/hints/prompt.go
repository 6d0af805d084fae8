package hints

import (
	"fmt"
	"strings"

	"github.com/learncheck/learncheck/internal/quiz"
)

const systemPrompt = `You are a patient tutor helping a learner who just answered a self-check question incorrectly.

Rules:
- Write one or two short sentences that point the learner toward the right line of reasoning.
- Never state or quote the correct answer, and never name which options are correct or incorrect.
- Do not tell the learner how many options to select.
- Ground the hint in the lesson material when it is provided.
- Use plain text. No markdown, no lists, no emoji.`

// buildUserMessage constructs the user message for a hint request.
func buildUserMessage(in GenerateInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Question: %s\n", in.Question.Question)

	b.WriteString("\nOptions:\n")
	for i, opt := range in.Question.Options {
		fmt.Fprintf(&b, "%d. %s\n", i+1, opt.Text)
	}

	b.WriteString("\nThe learner selected:\n")
	b.WriteString(formatSelection(in.Question, in.Selected))

	if in.ContextText != "" {
		b.WriteString("\nLesson material:\n")
		b.WriteString(truncate(in.ContextText, maxContextChars))
		b.WriteString("\n")
	}

	b.WriteString("\nWrite a hint for this learner.")
	return b.String()
}

// formatSelection lists the selected option texts, or "nothing" for an
// empty selection.
func formatSelection(q quiz.Question, selected []string) string {
	byID := make(map[string]string, len(q.Options))
	for _, opt := range q.Options {
		byID[opt.ID] = opt.Text
	}

	var b strings.Builder
	for _, id := range selected {
		if text, ok := byID[id]; ok {
			fmt.Fprintf(&b, "- %s\n", text)
		}
	}
	if b.Len() == 0 {
		return "- nothing (no options selected)\n"
	}
	return b.String()
}

const maxContextChars = 4000

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
