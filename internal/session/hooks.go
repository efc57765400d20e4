package session

import (
	"time"

	"github.com/saas786/component-countdown-timer/internal/breakdown"
)

// TickContext is the payload delivered to the OnTick hook: parsed integers,
// never padded display strings.
type TickContext struct {
	Target   time.Time
	DeltaMs  int64
	Negative bool
	Years    int
	Weeks    int
	Days     int
	Hours    int
	Minutes  int
	Seconds  int
}

// Hooks are the optional lifecycle callbacks. A nil field is a no-op, not an
// error. They fire in order: OnCreate once, OnTick once per period, OnEnd at
// most once when the session terminates on completion.
type Hooks struct {
	OnCreate func(target time.Time, initial breakdown.Breakdown)
	OnTick   func(ctx TickContext)
	OnEnd    func(target time.Time)
}

// HookPolicy decides what happens when a caller-supplied hook panics.
type HookPolicy int

const (
	// HookRecover catches hook panics and logs them; the session keeps
	// ticking. This is the default.
	HookRecover HookPolicy = iota
	// HookPropagate lets hook panics unwind through the tick goroutine,
	// crashing the session.
	HookPropagate
)

// String returns a human-readable policy name.
func (p HookPolicy) String() string {
	switch p {
	case HookRecover:
		return "recover"
	case HookPropagate:
		return "propagate"
	default:
		return "unknown"
	}
}

// ParseHookPolicy maps a config string to a policy, defaulting to recover.
func ParseHookPolicy(s string) HookPolicy {
	if s == "propagate" {
		return HookPropagate
	}
	return HookRecover
}

// invoke runs a hook under the session's panic policy.
func (s *Session) invoke(name string, fn func()) {
	if s.hookPolicy == HookPropagate {
		fn()
		return
	}
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("hook panicked", "hook", name, "panic", r)
		}
	}()
	fn()
}
