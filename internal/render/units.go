// Package render resolves a time breakdown into a display plan: which units
// are shown, how they are labeled, and how the assistive-technology live
// region behaves for the current tick.
package render

import "github.com/saas786/component-countdown-timer/internal/breakdown"

// UnitKey identifies one of the six display units.
type UnitKey string

// Unit keys in descending significance.
const (
	UnitYears   UnitKey = "years"
	UnitWeeks   UnitKey = "weeks"
	UnitDays    UnitKey = "days"
	UnitHours   UnitKey = "hours"
	UnitMinutes UnitKey = "minutes"
	UnitSeconds UnitKey = "seconds"
)

// UnitConfig controls whether a unit renders and how it is labeled.
// Immutable after session creation.
type UnitConfig struct {
	Allowed  bool
	Singular string
	Plural   string
}

// UnitSpec tags a UnitConfig with its unit key. Iteration order over a
// []UnitSpec is the display order; DefaultUnits fixes it years through
// seconds, and resolvers rely on that ordering rather than positions.
type UnitSpec struct {
	Key    UnitKey
	Config UnitConfig
}

// DefaultUnits returns the full unit list in fixed descending order with
// English labels, all allowed.
func DefaultUnits() []UnitSpec {
	return []UnitSpec{
		{Key: UnitYears, Config: UnitConfig{Allowed: true, Singular: "year", Plural: "years"}},
		{Key: UnitWeeks, Config: UnitConfig{Allowed: true, Singular: "week", Plural: "weeks"}},
		{Key: UnitDays, Config: UnitConfig{Allowed: true, Singular: "day", Plural: "days"}},
		{Key: UnitHours, Config: UnitConfig{Allowed: true, Singular: "hour", Plural: "hours"}},
		{Key: UnitMinutes, Config: UnitConfig{Allowed: true, Singular: "minute", Plural: "minutes"}},
		{Key: UnitSeconds, Config: UnitConfig{Allowed: true, Singular: "second", Plural: "seconds"}},
	}
}

// Value extracts the unit's value from a breakdown.
func (k UnitKey) Value(b breakdown.Breakdown) int {
	switch k {
	case UnitYears:
		return b.Years
	case UnitWeeks:
		return b.Weeks
	case UnitDays:
		return b.Days
	case UnitHours:
		return b.Hours
	case UnitMinutes:
		return b.Minutes
	case UnitSeconds:
		return b.Seconds
	default:
		return 0
	}
}
