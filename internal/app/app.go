package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/learncheck/learncheck/internal/controller"
	"github.com/learncheck/learncheck/internal/quiz"
	"github.com/learncheck/learncheck/internal/router"
	"github.com/learncheck/learncheck/internal/screen"
	"github.com/learncheck/learncheck/internal/screens/history"
	quizscreen "github.com/learncheck/learncheck/internal/screens/quiz"
	"github.com/learncheck/learncheck/internal/store"
	"github.com/learncheck/learncheck/internal/ui/layout"
	"github.com/learncheck/learncheck/internal/ui/theme"
)

// Options carries the wired dependencies for the TUI.
type Options struct {
	Controller *controller.Controller
	Events     store.EventRepo
	Identity   quiz.Identity
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	opts   Options
	router *router.Router
	width  int
	height int
}

func newAppModel(opts Options) AppModel {
	return AppModel{
		opts:   opts,
		router: router.New(quizscreen.New(opts.Controller)),
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		case "H":
			if m.router.Depth() == 1 && m.opts.Events != nil {
				h := history.New(m.opts.Events, m.opts.Identity, m.palette())
				return m, m.router.Push(h)
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) palette() theme.Palette {
	if snap := m.opts.Controller.Snapshot(); snap.Session != nil {
		return theme.ForName(snap.Session.Preferences.Theme)
	}
	return theme.Dark()
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	p := m.palette()

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(p, m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	progress := ""
	if active != nil {
		title = active.Title()
		if pr, ok := active.(interface{ Progress() string }); ok {
			progress = pr.Progress()
		}
	}

	header := layout.RenderHeader(p, title, progress, m.width)

	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = append(hp.KeyHints(), footerHints...)
	}
	if m.router.Depth() == 1 && m.opts.Events != nil {
		footerHints = append([]layout.KeyHint{{Key: "H", Description: "History"}}, footerHints...)
	}

	footer := layout.RenderFooter(p, footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
