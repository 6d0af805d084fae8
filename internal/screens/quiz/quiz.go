package quiz

import (
	"context"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	"github.com/learncheck/learncheck/internal/controller"
	"github.com/learncheck/learncheck/internal/screen"
	"github.com/learncheck/learncheck/internal/ui/layout"
	"github.com/learncheck/learncheck/internal/ui/theme"
)

// QuizScreen drives one quiz run: welcome, questions, results. All
// state transitions go through the controller; the screen only reads
// snapshots and issues actions.
type QuizScreen struct {
	ctrl *controller.Controller
	snap controller.Snapshot

	spin      spinner.Model
	cursor    int
	lastIndex int
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a QuizScreen bound to the controller.
func New(ctrl *controller.Controller) *QuizScreen {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return &QuizScreen{
		ctrl: ctrl,
		snap: ctrl.Snapshot(),
		spin: sp,
	}
}

func (s *QuizScreen) Title() string {
	if s.snap.Session != nil && s.snap.Session.ModuleTitle != "" {
		return s.snap.Session.ModuleTitle
	}
	return "Self Check"
}

// Progress returns the header progress fragment, e.g. "2 / 4".
func (s *QuizScreen) Progress() string {
	if s.snap.Session == nil || s.snap.View.Phase != controller.PhaseQuestion {
		return ""
	}
	return renderProgressCount(s.snap.View.Index, s.snap.Session.Total())
}

func (s *QuizScreen) Init() tea.Cmd {
	return tea.Batch(
		s.dispatch(s.ctrl.Load),
		s.spin.Tick,
		refreshTick(),
	)
}

// dispatch runs a blocking controller action off the UI loop.
func (s *QuizScreen) dispatch(action func(context.Context) error) tea.Cmd {
	s.ctrl.ClearNotice()
	return func() tea.Msg {
		return actionDoneMsg{err: action(context.Background())}
	}
}

func (s *QuizScreen) refresh() {
	s.snap = s.ctrl.Snapshot()
	if s.snap.View.Index != s.lastIndex {
		s.lastIndex = s.snap.View.Index
		s.cursor = 0
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case actionDoneMsg:
		s.refresh()
		return s, nil

	case refreshMsg:
		s.refresh()
		return s, refreshTick()

	case spinner.TickMsg:
		var cmd tea.Cmd
		s.spin, cmd = s.spin.Update(msg)
		return s, cmd

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch s.snap.View.Phase {
	case controller.PhaseWelcome:
		return s.handleWelcomeKey(msg)
	case controller.PhaseQuestion:
		return s.handleQuestionKey(msg)
	case controller.PhaseResults:
		return s.handleResultsKey(msg)
	}
	return s, nil
}

func (s *QuizScreen) handleWelcomeKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return s, s.dispatch(s.ctrl.StartQuiz)
	case "R":
		return s, s.dispatch(s.ctrl.ResetAll)
	}
	return s, nil
}

func (s *QuizScreen) handleQuestionKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	q := s.snap.Session.QuestionAt(s.snap.View.Index)
	if q == nil {
		return s, nil
	}
	submitted := s.snap.Session.Submitted(q.ID)

	switch msg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
		return s, nil

	case "down", "j":
		if s.cursor < len(q.Options)-1 {
			s.cursor++
		}
		return s, nil

	case "space":
		optionID := q.Options[s.cursor].ID
		questionID := q.ID
		return s, s.dispatch(func(ctx context.Context) error {
			return s.ctrl.SelectAnswer(ctx, questionID, optionID)
		})

	case "enter":
		if !submitted {
			return s, s.dispatch(s.ctrl.CheckAnswer)
		}
		if s.snap.Session.AllChecked() && s.snap.View.Index == s.snap.Session.Total()-1 {
			return s, s.dispatch(s.ctrl.ViewScore)
		}
		return s, s.dispatch(s.ctrl.Next)

	case "right", "l":
		return s, s.dispatch(s.ctrl.Next)

	case "left":
		return s, s.dispatch(s.ctrl.Prev)

	case "h":
		s.ctrl.ToggleHint()
		s.refresh()
		return s, nil

	case "r":
		return s, s.dispatch(s.ctrl.ResetCurrentQuestion)

	case "R":
		return s, s.dispatch(s.ctrl.ResetAll)

	case "s":
		return s, s.dispatch(s.ctrl.ViewScore)
	}

	return s, nil
}

func (s *QuizScreen) handleResultsKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "enter", "b":
		s.ctrl.ExitToFirstQuestion()
		s.refresh()
		return s, nil
	case "R":
		return s, s.dispatch(s.ctrl.ResetAll)
	}
	return s, nil
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch s.snap.View.Phase {
	case controller.PhaseWelcome:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Start"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	case controller.PhaseQuestion:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Move"},
			{Key: "Space", Description: "Select"},
			{Key: "Enter", Description: "Check / Next"},
			{Key: "h", Description: "Hint"},
			{Key: "r", Description: "New question"},
			{Key: "R", Description: "Restart quiz"},
		}
	case controller.PhaseResults:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Review answers"},
			{Key: "R", Description: "Restart quiz"},
		}
	}
	return nil
}

func (s *QuizScreen) palette() theme.Palette {
	if s.snap.Session != nil {
		return theme.ForName(s.snap.Session.Preferences.Theme)
	}
	return theme.Dark()
}
