package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/progress"

	"github.com/saas786/component-countdown-timer/internal/render"
)

// sessionStatus is the display status shown in the header.
type sessionStatus string

const (
	statusRunning    sessionStatus = "running"
	statusPaused     sessionStatus = "paused"
	statusTerminated sessionStatus = "done"
)

// model is the bubbletea model for the countdown display.
type model struct {
	// Plan source
	planChan <-chan render.Plan

	// Countdown identity
	target    time.Time
	started   time.Time
	separator string

	// State
	plan    render.Plan
	havePlan bool
	status  sessionStatus

	// UI state
	width    int
	height   int
	progress progress.Model

	// Callbacks
	onPause  func()
	onResume func()
	onQuit   func()
}

// planMsg wraps a resolved plan for the bubbletea message system.
type planMsg render.Plan

// newModel creates a new model for the given target.
func newModel(
	planChan <-chan render.Plan,
	target time.Time,
	separator string,
	onPause, onResume, onQuit func(),
) model {
	return model{
		planChan:  planChan,
		target:    target,
		started:   time.Now(),
		separator: separator,
		status:    statusRunning,
		progress:  progress.New(progress.WithDefaultGradient()),
		onPause:   onPause,
		onResume:  onResume,
		onQuit:    onQuit,
	}
}

// elapsedFraction returns how much of the countdown window has passed,
// clamped to [0,1]. The window runs from when the display started to the
// target; a target in the past is fully elapsed.
func (m model) elapsedFraction(now time.Time) float64 {
	total := m.target.Sub(m.started)
	if total <= 0 {
		return 1
	}
	f := float64(now.Sub(m.started)) / float64(total)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
