package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/learncheck/learncheck/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar.
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int
}

// View renders the progress bar with the given palette.
func (b ProgressBar) View(p theme.Palette) string {
	var result string

	if b.Label != "" {
		result += p.Body().Render(b.Label) + "  "
	}

	labelWidth := lipgloss.Width(result)
	percentWidth := 0
	if b.ShowPercent {
		percentWidth = 6
	}

	barWidth := b.Width - labelWidth - percentWidth
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * b.Percent)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	empty := barWidth - filled

	result += lipgloss.NewStyle().
		Background(p.Secondary).
		Render(strings.Repeat(" ", filled))
	result += lipgloss.NewStyle().
		Background(p.Border).
		Render(strings.Repeat(" ", empty))

	if b.ShowPercent {
		result += p.Dim().Render(fmt.Sprintf("  %d%%", int(b.Percent*100)))
	}

	return result
}
