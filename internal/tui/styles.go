package tui

import "github.com/charmbracelet/lipgloss"

// styles contains all lipgloss styles used by the countdown display.
var styles = struct {
	// Layout styles
	Container lipgloss.Style
	Target    lipgloss.Style

	// Countdown styles
	Unit       lipgloss.Style
	HiddenUnit lipgloss.Style
	Separator  lipgloss.Style

	// Status styles
	StatusRunning lipgloss.Style
	StatusPaused  lipgloss.Style
	StatusDone    lipgloss.Style

	// Announcement (live region) style
	Announce lipgloss.Style

	// Footer style
	Footer lipgloss.Style
}{
	Container: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(1, 2),

	Target: lipgloss.NewStyle().
		Foreground(lipgloss.Color("39")),

	Unit: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("212")),

	HiddenUnit: lipgloss.NewStyle().
		Faint(true).
		Foreground(lipgloss.Color("245")),

	Separator: lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")),

	StatusRunning: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("82")),

	StatusPaused: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("220")),

	StatusDone: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("203")),

	Announce: lipgloss.NewStyle().
		Italic(true).
		Foreground(lipgloss.Color("250")),

	Footer: lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")),
}
