package render

import "testing"

func TestFormat(t *testing.T) {
	cfg := UnitConfig{Allowed: true, Singular: "day", Plural: "days"}

	tests := []struct {
		name  string
		value int
		pad   bool
		want  string
	}{
		{"zero is plural", 0, false, "0 days"},
		{"one is singular", 1, false, "1 day"},
		{"two is plural", 2, false, "2 days"},
		{"padded single digit", 3, true, "03 days"},
		{"padded zero", 0, true, "00 days"},
		{"padded one keeps singular", 1, true, "01 day"},
		{"two digits never padded", 10, true, "10 days"},
		{"large value", 245, false, "245 days"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.value, cfg, tt.pad); got != tt.want {
				t.Errorf("Format(%d, pad=%v) = %q, want %q", tt.value, tt.pad, got, tt.want)
			}
		})
	}
}
