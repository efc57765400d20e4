// Package breakdown decomposes a millisecond time delta into calendar units.
//
// Hours, minutes, and seconds are pure modular arithmetic. Years are peeled
// off calendar-aware (leap years matter), and the remaining days collapse
// into weeks with a documented 52-weeks-per-year approximation.
package breakdown

import "time"

// Millisecond conversion factors.
const (
	msPerSecond int64 = 1000
	msPerMinute       = 60 * msPerSecond
	msPerHour         = 60 * msPerMinute
	msPerDay          = 24 * msPerHour
)

// Breakdown is the six-unit decomposition of a time delta. All values are
// non-negative; Negative carries the sign of the original delta.
//
// Invariants: Weeks in [0,52), Days in [0,7), Hours in [0,24),
// Minutes and Seconds in [0,60), Years >= 0.
type Breakdown struct {
	Years   int
	Weeks   int
	Days    int
	Hours   int
	Minutes int
	Seconds int

	Negative bool
}

// IsZero reports whether every unit is zero.
func (b Breakdown) IsZero() bool {
	return b.Years == 0 && b.Weeks == 0 && b.Days == 0 &&
		b.Hours == 0 && b.Minutes == 0 && b.Seconds == 0
}

// Compute decomposes deltaMs into calendar units. The target and reference
// timestamps (epoch milliseconds) anchor the year extraction: a year only
// counts once the calendar year of the cursor actually differs from the
// target's, so leap days are charged to the year they fall in.
//
// Compute is total over its inputs: any finite delta yields a valid
// Breakdown, a zero delta yields all zeros with Negative false.
func Compute(deltaMs, targetMs, nowMs int64) Breakdown {
	b := Breakdown{Negative: deltaMs < 0}

	absMs := deltaMs
	if b.Negative {
		absMs = -absMs
	}

	b.Hours = int(absMs % msPerDay / msPerHour)
	b.Minutes = int(absMs % msPerHour / msPerMinute)
	b.Seconds = int(absMs % msPerMinute / msPerSecond)

	days := int(absMs / msPerDay)

	// Peel off whole calendar years, walking the cursor year toward the
	// target year. The guard subtracts a leap year's 366 days only when
	// that many days actually remain, so days never goes negative.
	finalYear := time.UnixMilli(targetMs).UTC().Year()
	cursorYear := time.UnixMilli(nowMs).UTC().Year()
	for cursorYear != finalYear {
		span := 365
		if IsLeapYear(cursorYear) {
			span = 366
		}
		if days < span {
			break
		}
		days -= span
		b.Years++
		if b.Negative {
			cursorYear--
		} else {
			cursorYear++
		}
	}

	// Collapse remaining days into weeks, treating a year as exactly
	// 52 weeks now that full calendar years are already peeled off.
	for days >= 7 {
		days -= 7
		b.Weeks++
		if b.Weeks == 52 {
			b.Weeks = 0
			b.Years++
		}
	}
	b.Days = days

	return b
}

// IsLeapYear reports whether the given calendar year is a leap year:
// divisible by 400, or divisible by 4 but not by 100.
func IsLeapYear(year int) bool {
	if year%400 == 0 {
		return true
	}
	return year%4 == 0 && year%100 != 0
}
