package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/saas786/component-countdown-timer/internal/breakdown"
	"github.com/saas786/component-countdown-timer/internal/render"
)

func testModel(t *testing.T, plan render.Plan) model {
	t.Helper()
	m := newModel(nil, time.Now().Add(time.Hour), ", ", nil, nil, nil)
	m.width = 80
	m.height = 24
	m.plan = plan
	m.havePlan = true
	return m
}

func TestRenderCountdown(t *testing.T) {
	b := breakdown.Breakdown{Minutes: 1, Seconds: 30}
	plan := render.Resolve(b, render.DefaultUnits(), render.DefaultOptions())
	m := testModel(t, plan)

	out := m.renderCountdown()

	if !strings.Contains(out, "1 minute") {
		t.Errorf("countdown line missing minutes: %q", out)
	}
	if !strings.Contains(out, "30 seconds") {
		t.Errorf("countdown line missing seconds: %q", out)
	}
}

func TestRenderCountdown_NoPlanYet(t *testing.T) {
	m := newModel(nil, time.Now().Add(time.Hour), ", ", nil, nil, nil)

	if out := m.renderCountdown(); out != "..." {
		t.Errorf("renderCountdown before first plan = %q, want placeholder", out)
	}
}

func TestRenderAnnouncement(t *testing.T) {
	t.Run("quiet tick renders nothing", func(t *testing.T) {
		b := breakdown.Breakdown{Minutes: 3, Seconds: 10}
		plan := render.Resolve(b, render.DefaultUnits(), render.DefaultOptions())
		m := testModel(t, plan)

		if out := m.renderAnnouncement(); out != "" {
			t.Errorf("announcement on quiet tick = %q, want empty", out)
		}
	})

	t.Run("minute boundary announces", func(t *testing.T) {
		b := breakdown.Breakdown{Minutes: 3}
		plan := render.Resolve(b, render.DefaultUnits(), render.DefaultOptions())
		m := testModel(t, plan)

		out := m.renderAnnouncement()
		if !strings.Contains(out, "remaining") {
			t.Errorf("announcement = %q, want remaining line", out)
		}
	})

	t.Run("terminal announces completion", func(t *testing.T) {
		plan := render.Resolve(breakdown.Breakdown{}, render.DefaultUnits(), render.DefaultOptions())
		m := testModel(t, plan)
		m.status = statusTerminated

		out := m.renderAnnouncement()
		if !strings.Contains(out, "complete") {
			t.Errorf("announcement = %q, want completion line", out)
		}
	})
}

func TestView_TooSmall(t *testing.T) {
	m := newModel(nil, time.Now().Add(time.Hour), ", ", nil, nil, nil)
	m.width = 20
	m.height = 5

	out := m.View()
	if !strings.Contains(out, "too small") {
		t.Errorf("View = %q, want too-small notice", out)
	}
}

func TestElapsedFraction(t *testing.T) {
	m := newModel(nil, time.Time{}, ", ", nil, nil, nil)
	m.started = time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	m.target = m.started.Add(100 * time.Second)

	tests := []struct {
		name string
		at   time.Time
		want float64
	}{
		{"start", m.started, 0},
		{"midway", m.started.Add(50 * time.Second), 0.5},
		{"past target clamps", m.started.Add(200 * time.Second), 1},
		{"before start clamps", m.started.Add(-10 * time.Second), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.elapsedFraction(tt.at); got != tt.want {
				t.Errorf("elapsedFraction = %v, want %v", got, tt.want)
			}
		})
	}
}
