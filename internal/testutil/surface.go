package testutil

import (
	"sync"

	"github.com/saas786/component-countdown-timer/internal/render"
)

// RecordingSurface captures every plan applied to it, in order.
type RecordingSurface struct {
	mu    sync.Mutex
	plans []render.Plan
}

// NewRecordingSurface creates an empty recording surface.
func NewRecordingSurface() *RecordingSurface {
	return &RecordingSurface{}
}

// Apply records the plan.
func (s *RecordingSurface) Apply(plan render.Plan) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.plans = append(s.plans, plan)
}

// Plans returns a copy of the recorded plans.
func (s *RecordingSurface) Plans() []render.Plan {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]render.Plan, len(s.plans))
	copy(out, s.plans)
	return out
}

// Last returns the most recent plan and whether any plan was recorded.
func (s *RecordingSurface) Last() (render.Plan, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.plans) == 0 {
		return render.Plan{}, false
	}
	return s.plans[len(s.plans)-1], true
}
