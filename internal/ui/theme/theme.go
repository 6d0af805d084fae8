package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Palette is a named color set. The active palette follows the user's
// theme preference delivered with the quiz data.
type Palette struct {
	Name string

	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Success   color.Color
	Error     color.Color
	Text      color.Color
	TextDim   color.Color
	BgCard    color.Color
	Border    color.Color
}

// Dark is the default palette.
func Dark() Palette {
	return Palette{
		Name:      "dark",
		Primary:   lipgloss.Color("#818CF8"), // Indigo
		Secondary: lipgloss.Color("#2DD4BF"), // Teal
		Accent:    lipgloss.Color("#FBBF24"), // Amber
		Success:   lipgloss.Color("#34D399"), // Emerald
		Error:     lipgloss.Color("#FB7185"), // Rose
		Text:      lipgloss.Color("#F8FAFC"), // White
		TextDim:   lipgloss.Color("#94A3B8"), // Slate
		BgCard:    lipgloss.Color("#1E293B"), // Dark Slate
		Border:    lipgloss.Color("#334155"), // Slate
	}
}

// Light is the palette for terminals with light backgrounds.
func Light() Palette {
	return Palette{
		Name:      "light",
		Primary:   lipgloss.Color("#4F46E5"), // Indigo
		Secondary: lipgloss.Color("#0D9488"), // Teal
		Accent:    lipgloss.Color("#B45309"), // Amber
		Success:   lipgloss.Color("#047857"), // Emerald
		Error:     lipgloss.Color("#BE123C"), // Rose
		Text:      lipgloss.Color("#0F172A"), // Near Black
		TextDim:   lipgloss.Color("#64748B"), // Slate
		BgCard:    lipgloss.Color("#E2E8F0"), // Light Slate
		Border:    lipgloss.Color("#CBD5E1"), // Slate
	}
}

// ForName maps a theme preference to its palette. Unknown names and the
// empty string fall back to dark.
func ForName(name string) Palette {
	if name == "light" {
		return Light()
	}
	return Dark()
}

// Title is the style for screen titles.
func (p Palette) Title() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(p.Primary).Align(lipgloss.Center)
}

// Subtitle is the style for secondary headings.
func (p Palette) Subtitle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(p.TextDim).Align(lipgloss.Center)
}

// Body is the style for regular text.
func (p Palette) Body() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(p.Text)
}

// Dim is the style for de-emphasized text.
func (p Palette) Dim() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(p.TextDim)
}

// HintText is the style for hint panels.
func (p Palette) HintText() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(p.TextDim).Italic(true)
}

// Highlight is the style for the focused element.
func (p Palette) Highlight() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(p.Primary).Bold(true)
}

// Correct is the style for correct answers.
func (p Palette) Correct() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(p.Success).Bold(true)
}

// Incorrect is the style for wrong answers.
func (p Palette) Incorrect() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(p.Error).Bold(true)
}

// Notice is the style for transient warning banners.
func (p Palette) Notice() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(p.Accent).Bold(true)
}

// Card is the bordered panel style.
func (p Palette) Card() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(1, 2)
}
