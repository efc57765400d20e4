package breakdown

import (
	"testing"
	"time"
)

// epochMs converts a UTC calendar date to epoch milliseconds.
func epochMs(year int, month time.Month, day, hour, min, sec int) int64 {
	return time.Date(year, month, day, hour, min, sec, 0, time.UTC).UnixMilli()
}

func TestIsLeapYear(t *testing.T) {
	tests := []struct {
		year int
		want bool
	}{
		{2000, true},  // divisible by 400
		{1900, false}, // divisible by 100 but not 400
		{2024, true},  // divisible by 4
		{2023, false},
		{2400, true},
		{2100, false},
	}

	for _, tt := range tests {
		if got := IsLeapYear(tt.year); got != tt.want {
			t.Errorf("IsLeapYear(%d) = %v, want %v", tt.year, got, tt.want)
		}
	}
}

func TestCompute_ZeroDelta(t *testing.T) {
	now := epochMs(2025, time.June, 1, 12, 0, 0)

	b := Compute(0, now, now)

	if !b.IsZero() {
		t.Errorf("Compute(0) = %+v, want all zeros", b)
	}
	if b.Negative {
		t.Error("Compute(0).Negative = true, want false")
	}
}

func TestCompute_SubDayUnits(t *testing.T) {
	now := epochMs(2025, time.June, 1, 0, 0, 0)

	tests := []struct {
		name    string
		delta   time.Duration
		hours   int
		minutes int
		seconds int
	}{
		{"ninety seconds", 90 * time.Second, 0, 1, 30},
		{"one hour", time.Hour, 1, 0, 0},
		{"almost a day", 23*time.Hour + 59*time.Minute + 59*time.Second, 23, 59, 59},
		{"sub-second truncates", 999 * time.Millisecond, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deltaMs := tt.delta.Milliseconds()
			b := Compute(deltaMs, now+deltaMs, now)

			if b.Hours != tt.hours || b.Minutes != tt.minutes || b.Seconds != tt.seconds {
				t.Errorf("got h=%d m=%d s=%d, want h=%d m=%d s=%d",
					b.Hours, b.Minutes, b.Seconds, tt.hours, tt.minutes, tt.seconds)
			}
			if b.Years != 0 || b.Weeks != 0 || b.Days != 0 {
				t.Errorf("got y=%d w=%d d=%d, want all zero", b.Years, b.Weeks, b.Days)
			}
		})
	}
}

func TestCompute_NinetyDays(t *testing.T) {
	// 90 days = 12 full weeks plus 6 days, no full year elapsed.
	now := epochMs(2025, time.March, 1, 0, 0, 0)
	target := epochMs(2025, time.May, 30, 0, 0, 0)

	b := Compute(target-now, target, now)

	if b.Years != 0 {
		t.Errorf("Years = %d, want 0", b.Years)
	}
	if b.Weeks != 12 {
		t.Errorf("Weeks = %d, want 12", b.Weeks)
	}
	if b.Days != 6 {
		t.Errorf("Days = %d, want 6", b.Days)
	}
	if b.Negative {
		t.Error("Negative = true, want false")
	}
}

func TestCompute_YearExtraction(t *testing.T) {
	tests := []struct {
		name   string
		now    int64
		target int64
		years  int
		weeks  int
		days   int
	}{
		{
			// 2024 is a leap year: 366 + 365 days peel into exactly 2 years.
			name:   "two years across a leap year",
			now:    epochMs(2024, time.January, 1, 0, 0, 0),
			target: epochMs(2026, time.January, 1, 0, 0, 0),
			years:  2,
		},
		{
			name:   "one common year",
			now:    epochMs(2023, time.January, 1, 0, 0, 0),
			target: epochMs(2024, time.January, 1, 0, 0, 0),
			years:  1,
		},
		{
			name:   "one year and a week",
			now:    epochMs(2023, time.January, 1, 0, 0, 0),
			target: epochMs(2024, time.January, 8, 0, 0, 0),
			years:  1,
			weeks:  1,
		},
		{
			// Mid-leap-year to mid-next-year spans 365 days. The cursor year
			// is a leap year so no calendar year is peeled; the week loop
			// rolls 52 weeks into a year instead.
			name:   "leap cursor without a full leap span",
			now:    epochMs(2024, time.March, 1, 0, 0, 0),
			target: epochMs(2025, time.March, 1, 0, 0, 0),
			years:  1,
			weeks:  0,
			days:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Compute(tt.target-tt.now, tt.target, tt.now)

			if b.Years != tt.years {
				t.Errorf("Years = %d, want %d", b.Years, tt.years)
			}
			if b.Weeks != tt.weeks {
				t.Errorf("Weeks = %d, want %d", b.Weeks, tt.weeks)
			}
			if b.Days != tt.days {
				t.Errorf("Days = %d, want %d", b.Days, tt.days)
			}
		})
	}
}

func TestCompute_NegativeDelta(t *testing.T) {
	target := epochMs(2025, time.June, 1, 0, 0, 0)
	now := target + (90*time.Second).Milliseconds()

	b := Compute(target-now, target, now)

	if !b.Negative {
		t.Error("Negative = false, want true")
	}
	if b.Minutes != 1 || b.Seconds != 30 {
		t.Errorf("got m=%d s=%d, want m=1 s=30", b.Minutes, b.Seconds)
	}
}

func TestCompute_UnitRanges(t *testing.T) {
	// Range invariants must hold for any delta, including awkward ones.
	now := epochMs(2020, time.February, 29, 23, 59, 59)

	deltas := []time.Duration{
		0,
		time.Second,
		59 * time.Second,
		time.Minute,
		24*time.Hour - time.Second,
		24 * time.Hour,
		7 * 24 * time.Hour,
		51 * 7 * 24 * time.Hour,
		365 * 24 * time.Hour,
		366 * 24 * time.Hour,
		10 * 365 * 24 * time.Hour,
		200 * 365 * 24 * time.Hour, // multi-century
	}

	for _, delta := range deltas {
		deltaMs := delta.Milliseconds()
		for _, sign := range []int64{1, -1} {
			b := Compute(sign*deltaMs, now+sign*deltaMs, now)

			if b.Years < 0 {
				t.Errorf("delta %v: Years = %d, want >= 0", delta, b.Years)
			}
			if b.Weeks < 0 || b.Weeks >= 52 {
				t.Errorf("delta %v: Weeks = %d, want in [0,52)", delta, b.Weeks)
			}
			if b.Days < 0 || b.Days >= 7 {
				t.Errorf("delta %v: Days = %d, want in [0,7)", delta, b.Days)
			}
			if b.Hours < 0 || b.Hours >= 24 {
				t.Errorf("delta %v: Hours = %d, want in [0,24)", delta, b.Hours)
			}
			if b.Minutes < 0 || b.Minutes >= 60 {
				t.Errorf("delta %v: Minutes = %d, want in [0,60)", delta, b.Minutes)
			}
			if b.Seconds < 0 || b.Seconds >= 60 {
				t.Errorf("delta %v: Seconds = %d, want in [0,60)", delta, b.Seconds)
			}
		}
	}
}

func TestCompute_Reconstruction(t *testing.T) {
	// Re-summing the units must come back to the original delta within one
	// second, under the documented 52-weeks-per-year approximation for any
	// delta shorter than a year.
	now := epochMs(2025, time.January, 1, 0, 0, 0)

	deltas := []time.Duration{
		90 * time.Second,
		36 * time.Hour,
		10*24*time.Hour + 3*time.Hour + 25*time.Minute + 7*time.Second,
		100 * 24 * time.Hour,
		300 * 24 * time.Hour,
	}

	for _, delta := range deltas {
		deltaMs := delta.Milliseconds()
		b := Compute(deltaMs, now+deltaMs, now)

		totalDays := b.Weeks*7 + b.Days
		rebuilt := time.Duration(totalDays)*24*time.Hour +
			time.Duration(b.Hours)*time.Hour +
			time.Duration(b.Minutes)*time.Minute +
			time.Duration(b.Seconds)*time.Second

		diff := delta - rebuilt
		if diff < 0 {
			diff = -diff
		}
		if diff >= time.Second {
			t.Errorf("delta %v rebuilt as %v (diff %v)", delta, rebuilt, diff)
		}
	}
}
