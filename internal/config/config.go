// Package config provides configuration types and defaults for countdown.
package config

import (
	"time"

	"github.com/saas786/component-countdown-timer/internal/render"
)

// Config holds all configuration for countdown.
type Config struct {
	Timer       TimerConfig       `yaml:"timer" mapstructure:"timer"`
	Display     DisplayConfig     `yaml:"display" mapstructure:"display"`
	Units       UnitsConfig       `yaml:"units" mapstructure:"units"`
	Paths       PathsConfig       `yaml:"paths" mapstructure:"paths"`
	LogRotation LogRotationConfig `yaml:"log_rotation" mapstructure:"log_rotation"`
}

// TimerConfig holds the countdown target and scheduling settings.
type TimerConfig struct {
	Target     string        `yaml:"target" mapstructure:"target"`           // Target timestamp (RFC3339 or date); empty substitutes now
	Period     time.Duration `yaml:"period" mapstructure:"period"`           // Recomputation interval
	HookPolicy string        `yaml:"hook_policy" mapstructure:"hook_policy"` // "recover" or "propagate" for panicking hooks
}

// DisplayConfig holds display options applied every tick.
type DisplayConfig struct {
	Compact       bool   `yaml:"compact" mapstructure:"compact"`               // Show only the most significant populated unit
	AllowNegative bool   `yaml:"allow_negative" mapstructure:"allow_negative"` // Keep counting up past the target
	PadValues     bool   `yaml:"pad_values" mapstructure:"pad_values"`         // Zero-pad single-digit values
	ShowZeroes    bool   `yaml:"show_zeroes" mapstructure:"show_zeroes"`       // Keep leading zero units in the sequence
	Separator     string `yaml:"separator" mapstructure:"separator"`
}

// UnitLabels configures one display unit.
type UnitLabels struct {
	Allowed  bool   `yaml:"allowed" mapstructure:"allowed"`
	Singular string `yaml:"singular" mapstructure:"singular"`
	Plural   string `yaml:"plural" mapstructure:"plural"`
}

// UnitsConfig holds the per-unit configuration, years through seconds.
type UnitsConfig struct {
	Years   UnitLabels `yaml:"years" mapstructure:"years"`
	Weeks   UnitLabels `yaml:"weeks" mapstructure:"weeks"`
	Days    UnitLabels `yaml:"days" mapstructure:"days"`
	Hours   UnitLabels `yaml:"hours" mapstructure:"hours"`
	Minutes UnitLabels `yaml:"minutes" mapstructure:"minutes"`
	Seconds UnitLabels `yaml:"seconds" mapstructure:"seconds"`
}

// PathsConfig holds file paths for logs.
type PathsConfig struct {
	LogDir string `yaml:"log_dir" mapstructure:"log_dir"`
}

// LogRotationConfig holds settings for log file rotation.
// Used for the TUI debug log (lumberjack-based automatic rotation).
type LogRotationConfig struct {
	MaxSizeMB  int  `yaml:"max_size_mb" mapstructure:"max_size_mb"`
	MaxBackups int  `yaml:"max_backups" mapstructure:"max_backups"`
	MaxAgeDays int  `yaml:"max_age_days" mapstructure:"max_age_days"`
	Compress   bool `yaml:"compress" mapstructure:"compress"`
}

// Default returns a Config with the documented defaults: every unit allowed
// with English labels, one-second period, plain display options.
func Default() *Config {
	return &Config{
		Timer: TimerConfig{
			Period:     time.Second,
			HookPolicy: "recover",
		},
		Display: DisplayConfig{
			Separator: ", ",
		},
		Units: UnitsConfig{
			Years:   UnitLabels{Allowed: true, Singular: "year", Plural: "years"},
			Weeks:   UnitLabels{Allowed: true, Singular: "week", Plural: "weeks"},
			Days:    UnitLabels{Allowed: true, Singular: "day", Plural: "days"},
			Hours:   UnitLabels{Allowed: true, Singular: "hour", Plural: "hours"},
			Minutes: UnitLabels{Allowed: true, Singular: "minute", Plural: "minutes"},
			Seconds: UnitLabels{Allowed: true, Singular: "second", Plural: "seconds"},
		},
		Paths: PathsConfig{
			LogDir: ".countdown",
		},
		LogRotation: LogRotationConfig{
			MaxSizeMB:  100,
			MaxBackups: 3,
			MaxAgeDays: 7,
			Compress:   true,
		},
	}
}

// UnitSpecs converts the per-unit configuration into the ordered unit list
// consumed by the resolver, preserving the fixed years-to-seconds order.
func (c *Config) UnitSpecs() []render.UnitSpec {
	pairs := []struct {
		key    render.UnitKey
		labels UnitLabels
	}{
		{render.UnitYears, c.Units.Years},
		{render.UnitWeeks, c.Units.Weeks},
		{render.UnitDays, c.Units.Days},
		{render.UnitHours, c.Units.Hours},
		{render.UnitMinutes, c.Units.Minutes},
		{render.UnitSeconds, c.Units.Seconds},
	}

	specs := make([]render.UnitSpec, 0, len(pairs))
	for _, p := range pairs {
		specs = append(specs, render.UnitSpec{
			Key: p.key,
			Config: render.UnitConfig{
				Allowed:  p.labels.Allowed,
				Singular: p.labels.Singular,
				Plural:   p.labels.Plural,
			},
		})
	}
	return specs
}

// RenderOptions converts the display configuration into resolver options.
func (c *Config) RenderOptions() render.Options {
	return render.Options{
		Compact:       c.Display.Compact,
		AllowNegative: c.Display.AllowNegative,
		PadValues:     c.Display.PadValues,
		ShowZeroes:    c.Display.ShowZeroes,
		Separator:     c.Display.Separator,
	}
}
