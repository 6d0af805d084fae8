package quiz

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

// actionDoneMsg is sent when a controller action has settled, success
// or not. Precondition failures (busy, locked) are ordinary no-ops.
type actionDoneMsg struct {
	err error
}

// refreshMsg drives the periodic snapshot refresh that picks up
// background hint enrichment.
type refreshMsg time.Time

const refreshInterval = 400 * time.Millisecond

func refreshTick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return refreshMsg(t)
	})
}
