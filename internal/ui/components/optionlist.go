package components

import (
	"fmt"
	"strings"

	"github.com/learncheck/learncheck/internal/ui/theme"
)

// OptionItem is one row of a multi-select option list.
type OptionItem struct {
	Text     string
	Selected bool
	Correct  bool
}

// OptionList renders a multi-select question: checkboxes before
// submission, verdict colors after.
type OptionList struct {
	Items     []OptionItem
	Cursor    int
	Submitted bool
}

// View renders the list with the given palette.
func (l OptionList) View(p theme.Palette) string {
	var b strings.Builder

	for i, item := range l.Items {
		prefix := "  "
		if i == l.Cursor && !l.Submitted {
			prefix = "> "
		}

		box := "[ ]"
		if item.Selected {
			box = "[x]"
		}

		line := fmt.Sprintf("%s%s %s", prefix, box, item.Text)

		switch {
		case l.Submitted && item.Correct:
			b.WriteString(p.Correct().Render(line))
		case l.Submitted && item.Selected && !item.Correct:
			b.WriteString(p.Incorrect().Render(line))
		case l.Submitted:
			b.WriteString(p.Dim().Render(line))
		case i == l.Cursor:
			b.WriteString(p.Highlight().Render(line))
		default:
			b.WriteString(p.Body().Render(line))
		}
		b.WriteString("\n")
	}

	return b.String()
}
