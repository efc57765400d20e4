package render

import (
	"strings"

	"github.com/saas786/component-countdown-timer/internal/breakdown"
)

// Options controls how a breakdown renders. Immutable after session creation.
type Options struct {
	Compact       bool
	AllowNegative bool
	PadValues     bool
	ShowZeroes    bool
	Separator     string
}

// DefaultOptions returns the standard display options.
func DefaultOptions() Options {
	return Options{Separator: ", "}
}

// LiveRegion is the assistive-technology announcement policy for one tick.
type LiveRegion string

const (
	// LivePolite asks assistive technology to announce the display at the
	// next graceful opportunity.
	LivePolite LiveRegion = "polite"
	// LiveOff suppresses announcements for this tick.
	LiveOff LiveRegion = "off"
)

// Slot is one rendered unit. Hidden slots stay visible on screen but are
// excluded from assistive-technology output.
type Slot struct {
	Key    UnitKey
	Value  int
	Text   string
	Hidden bool
}

// Plan is the resolved, ready-to-display output for one tick.
type Plan struct {
	Slots      []Slot
	LiveRegion LiveRegion
	Terminal   bool
}

// Line joins the slot texts with the separator for single-line display.
func (p Plan) Line(sep string) string {
	texts := make([]string, 0, len(p.Slots))
	for _, s := range p.Slots {
		texts = append(texts, s.Text)
	}
	return strings.Join(texts, sep)
}

// Resolve decides which units render for the given breakdown and how the
// live region behaves. It is a pure function: identical inputs always yield
// an identical Plan.
//
// Zero-valued units above the highest nonzero unit are hidden from
// assistive technology, and dropped from the sequence entirely unless
// ShowZeroes is set. The seconds unit is never suppressed this way: it is
// the finest-grained unit and always relevant when shown.
func Resolve(b breakdown.Breakdown, units []UnitSpec, opts Options) Plan {
	allowed := make([]UnitSpec, 0, len(units))
	for _, u := range units {
		if u.Config.Allowed {
			allowed = append(allowed, u)
		}
	}

	// Target already reached and counting past it is disallowed: force
	// every value to zero and tell the scheduler to stop.
	if !opts.AllowNegative && (b.Negative || b.IsZero()) {
		plan := Plan{LiveRegion: LivePolite, Terminal: true}
		for _, u := range allowed {
			plan.Slots = append(plan.Slots, Slot{
				Key:  u.Key,
				Text: Format(0, u.Config, opts.PadValues),
			})
		}
		return plan
	}

	highest := -1
	for i, u := range allowed {
		if u.Key.Value(b) > 0 {
			highest = i
			break
		}
	}

	plan := Plan{LiveRegion: liveRegion(b, allowed, highest)}

	speaking := highest
	if speaking == -1 {
		speaking = len(allowed) - 1
	}

	if opts.Compact {
		// Only the most significant populated unit renders, no separators.
		if len(allowed) > 0 {
			u := allowed[speaking]
			v := u.Key.Value(b)
			plan.Slots = []Slot{{Key: u.Key, Value: v, Text: Format(v, u.Config, opts.PadValues)}}
		}
		return plan
	}

	for i, u := range allowed {
		v := u.Key.Value(b)
		leadingZero := v == 0 && (highest == -1 || i < highest) && u.Key != UnitSeconds
		if leadingZero && !opts.ShowZeroes {
			continue
		}
		plan.Slots = append(plan.Slots, Slot{
			Key:    u.Key,
			Value:  v,
			Text:   Format(v, u.Config, opts.PadValues),
			Hidden: leadingZero,
		})
	}
	return plan
}

// liveRegion picks the announcement policy. When the speaking target is the
// final allowed unit the display changes every tick and stays polite;
// otherwise announcements fire only at minute boundaries so assistive
// technology is not forced to speak every second.
func liveRegion(b breakdown.Breakdown, allowed []UnitSpec, highest int) LiveRegion {
	if highest == -1 || highest == len(allowed)-1 {
		return LivePolite
	}
	if b.Seconds == 0 {
		return LivePolite
	}
	return LiveOff
}
