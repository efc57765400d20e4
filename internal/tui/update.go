package tui

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/saas786/component-countdown-timer/internal/render"
)

// channelClosedMsg signals that the plan channel was closed.
type channelClosedMsg struct{}

// waitForPlan creates a command that waits for the next plan from the
// session. Returns channelClosedMsg if the channel is closed.
func waitForPlan(ch <-chan render.Plan) tea.Cmd {
	return func() tea.Msg {
		plan, ok := <-ch
		if !ok {
			return channelClosedMsg{}
		}
		return planMsg(plan)
	}
}

// Init implements tea.Model. It starts waiting for the first plan.
func (m model) Init() tea.Cmd {
	return waitForPlan(m.planChan)
}

// Update implements tea.Model. It handles all message types and updates the model.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = progressWidth(msg.Width)
		return m, nil

	case planMsg:
		m.plan = render.Plan(msg)
		m.havePlan = true
		if m.plan.Terminal {
			m.status = statusTerminated
		}
		return m, waitForPlan(m.planChan)

	case channelClosedMsg:
		// Session terminated and the channel drained - clean exit
		slog.Info("plan channel closed, exiting TUI")
		return m, tea.Quit
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		if m.onQuit != nil {
			m.onQuit()
		}
		return m, tea.Quit

	case "p":
		if m.status == statusRunning && m.onPause != nil {
			m.onPause()
			m.status = statusPaused
		}
		return m, nil

	case "r":
		if m.status == statusPaused && m.onResume != nil {
			m.onResume()
			m.status = statusRunning
		}
		return m, nil
	}

	return m, nil
}

// progressWidth sizes the progress bar to the terminal, within bounds.
func progressWidth(termWidth int) int {
	w := termWidth - 6
	if w < 10 {
		return 10
	}
	if w > 60 {
		return 60
	}
	return w
}
