package utils

import (
	"fmt"
	"time"
)

// timeFormats are tried in order when parsing timestamps coming from CSV
// exports or API callers; the synthetic data mixes RFC3339 and bare dates.
var timeFormats = []string{
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseFlexibleTime parses a timestamp string trying multiple formats.
func ParseFlexibleTime(value string) (time.Time, error) {
	var lastErr error
	for _, format := range timeFormats {
		if t, err := time.Parse(format, value); err == nil {
			return t, nil
		} else {
			lastErr = err
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q: %w", value, lastErr)
}
