package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/saas786/component-countdown-timer/internal/render"
)

const (
	minWidth  = 40
	minHeight = 8
)

// View implements tea.Model. This renders the full countdown display.
func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	if m.width < minWidth || m.height < minHeight {
		return fmt.Sprintf("Terminal too small (%dx%d, need %dx%d)",
			m.width, m.height, minWidth, minHeight)
	}

	var sections []string
	sections = append(sections, m.renderHeader())
	sections = append(sections, m.renderCountdown())
	sections = append(sections, m.progress.ViewAs(m.elapsedFraction(time.Now())))
	if line := m.renderAnnouncement(); line != "" {
		sections = append(sections, line)
	}
	sections = append(sections, m.renderFooter())

	content := strings.Join(sections, "\n\n")

	rendered := styles.Container.Render(content)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, rendered)
}

// renderHeader shows the target timestamp and session status.
func (m model) renderHeader() string {
	var status string
	switch m.status {
	case statusPaused:
		status = styles.StatusPaused.Render("paused")
	case statusTerminated:
		status = styles.StatusDone.Render("done")
	default:
		status = styles.StatusRunning.Render("running")
	}

	target := styles.Target.Render(m.target.Format("Mon, 02 Jan 2006 15:04:05"))
	return fmt.Sprintf("%s  %s", target, status)
}

// renderCountdown builds the unit line from the current plan. Units hidden
// from assistive technology stay visible but render dimmed.
func (m model) renderCountdown() string {
	if !m.havePlan {
		return "..."
	}

	parts := make([]string, 0, len(m.plan.Slots))
	for _, slot := range m.plan.Slots {
		if slot.Hidden {
			parts = append(parts, styles.HiddenUnit.Render(slot.Text))
			continue
		}
		parts = append(parts, styles.Unit.Render(slot.Text))
	}
	return strings.Join(parts, styles.Separator.Render(m.separator))
}

// renderAnnouncement mirrors the live-region policy: only polite ticks get
// a spoken-style line, so the announcement does not churn every second.
func (m model) renderAnnouncement() string {
	if !m.havePlan || m.plan.LiveRegion != render.LivePolite {
		return ""
	}
	if m.plan.Terminal {
		return styles.Announce.Render("Countdown complete")
	}

	var texts []string
	for _, slot := range m.plan.Slots {
		if slot.Hidden {
			continue
		}
		texts = append(texts, slot.Text)
	}
	return styles.Announce.Render(strings.Join(texts, m.separator) + " remaining")
}

// renderFooter shows the keybindings.
func (m model) renderFooter() string {
	return styles.Footer.Render("p pause · r resume · q quit")
}
