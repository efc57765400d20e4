package render

import "fmt"

// Format renders a unit value with its label. The plural label applies
// whenever the value is not exactly 1 (so zero is plural). When pad is set,
// single-digit values are zero-padded to two digits.
func Format(value int, cfg UnitConfig, pad bool) string {
	label := cfg.Plural
	if value == 1 {
		label = cfg.Singular
	}
	if pad && value >= 0 && value < 10 {
		return fmt.Sprintf("0%d %s", value, label)
	}
	return fmt.Sprintf("%d %s", value, label)
}
