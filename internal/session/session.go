// Package session owns the countdown lifecycle: a per-session tick scheduler
// that recomputes the breakdown every period, resolves the display plan,
// applies it to a surface, and fires lifecycle hooks until the target is
// reached or the owner cancels.
package session

import (
	"log/slog"
	"sync"
	"time"

	"github.com/saas786/component-countdown-timer/internal/breakdown"
	"github.com/saas786/component-countdown-timer/internal/render"
)

// State is the scheduler state. Transitions are one-way:
// Created -> Running -> Terminated.
type State int

const (
	// Created means Start has not been called yet.
	Created State = iota
	// Running means the session is ticking.
	Running
	// Terminated means ticking stopped permanently, either because the
	// target was reached or the owner canceled.
	Terminated
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case Created:
		return "created"
	case Running:
		return "running"
	case Terminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// DefaultPeriod is the wall-clock interval between recomputations.
const DefaultPeriod = time.Second

// Session is one countdown instance. It owns its target, unit
// configuration, display options, and ticker handle exclusively; nothing is
// shared between sessions, so independent sessions need no coordination.
type Session struct {
	target     time.Time
	units      []render.UnitSpec
	opts       render.Options
	hooks      Hooks
	hookPolicy HookPolicy
	clock      Clock
	surface    Surface
	period     time.Duration
	logger     *slog.Logger

	mu    sync.Mutex
	state State
	last  breakdown.Breakdown

	stop chan struct{}
	done chan struct{}
	// stopOnce makes cancellation idempotent.
	stopOnce sync.Once
}

// Option configures a Session.
type Option func(*Session)

// WithUnits sets the ordered unit configuration.
func WithUnits(units []render.UnitSpec) Option {
	return func(s *Session) {
		s.units = units
	}
}

// WithOptions sets the display options.
func WithOptions(opts render.Options) Option {
	return func(s *Session) {
		s.opts = opts
	}
}

// WithHooks sets the lifecycle hooks.
func WithHooks(h Hooks) Option {
	return func(s *Session) {
		s.hooks = h
	}
}

// WithHookPolicy sets the hook panic policy.
func WithHookPolicy(p HookPolicy) Option {
	return func(s *Session) {
		s.hookPolicy = p
	}
}

// WithClock sets the time source. Used by tests.
func WithClock(c Clock) Option {
	return func(s *Session) {
		s.clock = c
	}
}

// WithSurface sets the display surface receiving each tick's plan.
func WithSurface(surface Surface) Option {
	return func(s *Session) {
		s.surface = surface
	}
}

// WithPeriod sets the tick period.
func WithPeriod(d time.Duration) Option {
	return func(s *Session) {
		s.period = d
	}
}

// WithLogger sets the session logger. If unset, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// New creates a session for the given target time.
func New(target time.Time, opts ...Option) *Session {
	s := &Session{
		target:  target,
		units:   render.DefaultUnits(),
		opts:    render.DefaultOptions(),
		clock:   SystemClock{},
		surface: NopSurface{},
		period:  DefaultPeriod,
		logger:  slog.Default(),
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Target returns the session's target time.
func (s *Session) Target() time.Time {
	return s.target
}

// State returns the current scheduler state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Last returns the most recent breakdown.
func (s *Session) Last() breakdown.Breakdown {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// Done is closed once the session terminates, whether by reaching the
// target or by cancellation.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Start transitions Created -> Running. The first recomputation happens
// immediately, not after the first period, so the display never shows a
// stale or empty state. OnCreate fires exactly once before it.
//
// Calling Start on a session that is not in Created state is a no-op.
func (s *Session) Start() {
	s.mu.Lock()
	if s.state != Created {
		s.mu.Unlock()
		return
	}
	s.state = Running
	s.mu.Unlock()

	if s.hooks.OnCreate != nil {
		initial := s.compute()
		s.invoke("onCreate", func() { s.hooks.OnCreate(s.target, initial) })
	}

	if s.tick() {
		return
	}

	go s.run()
}

// run drives the periodic recomputation. The ticker is owned by this
// session alone and is released when the loop exits.
func (s *Session) run() {
	ticker := time.NewTicker(s.period)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			if s.tick() {
				return
			}
		}
	}
}

// tick runs one synchronous recomputation cycle and reports whether the
// session terminated. Each tick recomputes from the wall clock rather than
// accumulating drift, so every tick is independent and self-correcting.
func (s *Session) tick() (terminal bool) {
	b := s.compute()
	plan := render.Resolve(b, s.units, s.opts)

	s.mu.Lock()
	s.last = b
	s.mu.Unlock()

	s.surface.Apply(plan)

	if s.hooks.OnTick != nil {
		ctx := TickContext{
			Target:   s.target,
			DeltaMs:  s.target.UnixMilli() - s.clock.Now().UnixMilli(),
			Negative: b.Negative,
			Years:    b.Years,
			Weeks:    b.Weeks,
			Days:     b.Days,
			Hours:    b.Hours,
			Minutes:  b.Minutes,
			Seconds:  b.Seconds,
		}
		s.invoke("onTick", func() { s.hooks.OnTick(ctx) })
	}

	if !plan.Terminal {
		return false
	}

	s.terminate()
	if s.hooks.OnEnd != nil {
		s.invoke("onEnd", func() { s.hooks.OnEnd(s.target) })
	}
	return true
}

// compute recomputes the breakdown from the current clock reading.
func (s *Session) compute() breakdown.Breakdown {
	nowMs := s.clock.Now().UnixMilli()
	targetMs := s.target.UnixMilli()
	return breakdown.Compute(targetMs-nowMs, targetMs, nowMs)
}

// Stop cancels the session. It is idempotent: stopping an already-terminated
// session is a no-op. Stop does not fire OnEnd; that hook is reserved for
// reaching the target.
func (s *Session) Stop() {
	s.terminate()
}

// terminate moves to Terminated and releases the tick loop. Safe to call
// from any state and any number of times.
func (s *Session) terminate() {
	s.stopOnce.Do(func() {
		s.mu.Lock()
		s.state = Terminated
		s.mu.Unlock()
		close(s.stop)
		close(s.done)
	})
}
