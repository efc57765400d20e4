package session

import (
	"time"

	"github.com/saas786/component-countdown-timer/internal/render"
)

// Clock abstracts wall-clock time so ticks can be tested deterministically.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real wall clock.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Surface receives the resolved plan each tick and applies it to whatever
// is displaying the countdown. Apply must not block: ticks are synchronous
// and run to completion before the next can fire.
type Surface interface {
	Apply(plan render.Plan)
}

// SurfaceFunc adapts a plain function to the Surface interface.
type SurfaceFunc func(plan render.Plan)

// Apply calls the wrapped function.
func (f SurfaceFunc) Apply(plan render.Plan) {
	f(plan)
}

// NopSurface discards every plan. Used when a caller only wants hooks.
type NopSurface struct{}

// Apply discards the plan.
func (NopSurface) Apply(render.Plan) {}
