package session

import (
	"log/slog"
	"time"
)

// targetLayouts are the accepted target timestamp formats, tried in order.
var targetLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTarget parses a target timestamp string. A missing or unparsable
// target is a configuration warning, not a failure: the current time is
// substituted so the session still runs (and terminates immediately when
// negative display is disallowed), and the problem is logged for the
// operator.
func ParseTarget(raw string, clock Clock, logger *slog.Logger) time.Time {
	if logger == nil {
		logger = slog.Default()
	}
	if clock == nil {
		clock = SystemClock{}
	}

	if raw == "" {
		logger.Warn("no target timestamp configured, substituting current time")
		return clock.Now()
	}

	for _, layout := range targetLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return t
		}
	}

	logger.Warn("unparsable target timestamp, substituting current time", "target", raw)
	return clock.Now()
}
