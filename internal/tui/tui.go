// Package tui provides the terminal display surface for a countdown using
// bubbletea. It consumes resolved plans from the session over a channel and
// renders them; it owns no countdown logic of its own.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/saas786/component-countdown-timer/internal/render"
	"github.com/saas786/component-countdown-timer/internal/session"
)

// TUI is the terminal display for a countdown session.
type TUI struct {
	planChan  <-chan render.Plan
	target    time.Time
	separator string
	onPause   func()
	onResume  func()
	onQuit    func()
	plain     bool
}

// Option configures the TUI.
type Option func(*TUI)

// New creates a TUI reading plans from planChan for the given target.
func New(planChan <-chan render.Plan, target time.Time, opts ...Option) *TUI {
	t := &TUI{
		planChan:  planChan,
		target:    target,
		separator: ", ",
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// WithSeparator sets the separator placed between rendered units.
func WithSeparator(sep string) Option {
	return func(t *TUI) {
		t.separator = sep
	}
}

// WithOnPause sets the callback invoked when the user presses 'p'.
func WithOnPause(fn func()) Option {
	return func(t *TUI) {
		t.onPause = fn
	}
}

// WithOnResume sets the callback invoked when the user presses 'r'.
func WithOnResume(fn func()) Option {
	return func(t *TUI) {
		t.onResume = fn
	}
}

// WithOnQuit sets the callback invoked when the user quits.
func WithOnQuit(fn func()) Option {
	return func(t *TUI) {
		t.onQuit = fn
	}
}

// WithPlain forces line-by-line output even on a TTY.
func WithPlain(plain bool) Option {
	return func(t *TUI) {
		t.plain = plain
	}
}

// Run starts the TUI and blocks until it exits. Non-interactive
// environments fall back to line-by-line output.
func (t *TUI) Run() error {
	if t.plain || !isTerminal() {
		return t.runSimple()
	}

	m := newModel(t.planChan, t.target, t.separator, t.onPause, t.onResume, t.onQuit)

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Surface returns a session surface that forwards each plan to ch without
// blocking. If the display is behind, the plan is dropped; the next tick
// recomputes from the wall clock, so nothing is lost.
func Surface(ch chan<- render.Plan) session.Surface {
	return session.SurfaceFunc(func(plan render.Plan) {
		select {
		case ch <- plan:
		default:
		}
	})
}
