package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/learncheck/learncheck/internal/quiz"
	"github.com/learncheck/learncheck/internal/router"
	"github.com/learncheck/learncheck/internal/screen"
	"github.com/learncheck/learncheck/internal/store"
	"github.com/learncheck/learncheck/internal/ui/layout"
	"github.com/learncheck/learncheck/internal/ui/theme"
)

const attemptLimit = 50

type attemptsLoadedMsg struct {
	Attempts []store.Attempt
	Err      error
}

// HistoryScreen lists past completed attempts for the active learner.
type HistoryScreen struct {
	events   store.EventRepo
	identity quiz.Identity
	palette  theme.Palette

	attempts []store.Attempt
	selected int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(events store.EventRepo, identity quiz.Identity, palette theme.Palette) *HistoryScreen {
	return &HistoryScreen{
		events:   events,
		identity: identity,
		palette:  palette,
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		attempts, err := s.events.ListAttempts(context.Background(), s.identity, attemptLimit)
		return attemptsLoadedMsg{Attempts: attempts, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case attemptsLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.attempts = msg.Attempts
		}
		s.loaded = true
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.attempts)-1 {
				s.selected++
			}
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	p := s.palette

	if s.errMsg != "" {
		return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).
			Render("\n\n" + p.Incorrect().Render("Error: "+s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).
			Render("\n\n" + p.Dim().Render("Loading history..."))
	}
	if len(s.attempts) == 0 {
		return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).
			Render("\n\n" + p.Dim().Italic(true).Render("No completed attempts yet."))
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, a := range s.attempts {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %3d%%  %d/%d correct",
			prefix, a.CompletedAt.Local().Format("Jan 02, 2006 15:04"),
			a.Score, a.CorrectCount, a.TotalQuestions)

		style := p.Body()
		if i == s.selected {
			style = p.Highlight()
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}
