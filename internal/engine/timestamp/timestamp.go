package timestamp

import (
	"strconv"
	"strings"
	"time"
)

// The upstream record mixes ISO strings, offset-qualified strings, and raw
// millisecond epochs across sub-documents with no declared schema, so parsing
// is a layered fallback. The attempt order is load-bearing: an all-digit
// string is always epoch milliseconds, never a date component.

// isoLayouts cover the ISO-8601 shapes the source emits once any Z suffix has
// been rewritten to an explicit offset. Fractional seconds are optional.
var isoLayouts = []string{
	"2006-01-02T15:04:05.999999999-07:00",
	"2006-01-02T15:04-07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// Parse converts one timestamp encoding from the patient record into an
// instant. The second return is false when every attempt fails; callers skip
// the record rather than propagate a placeholder time.
func Parse(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	candidate := s
	if strings.Contains(s, "Z") {
		// UTC ISO-8601: rewrite the suffix to an explicit offset.
		candidate = strings.Replace(s, "Z", "+00:00", 1)
	}
	if t, ok := parseISO(candidate); ok {
		return t, true
	}

	if isDigits(s) {
		ms, err := strconv.ParseInt(s, 10, 64)
		if err == nil {
			return time.UnixMilli(ms).UTC(), true
		}
	}
	return time.Time{}, false
}

func parseISO(s string) (time.Time, bool) {
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
