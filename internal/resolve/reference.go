package resolve

import (
	"strings"
	"time"
)

// Layouts accepted for reference instants that carry no offset of their own.
// These are interpreted as wall-clock time in the target zone.
var offsetlessLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseReference parses the caller-supplied "now" and re-expresses it in loc.
//
// An instant with its own offset ("Z" or ±HH:MM) is parsed with that offset
// honored and then converted into loc. This is a zone conversion of an
// absolute instant, never a reinterpretation of naive wall-clock fields:
// "2024-01-15T10:00:00Z" in America/Chicago is 04:00 local, not 10:00.
func ParseReference(s string, loc *time.Location) (time.Time, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return time.Time{}, newError(KindBadReference, "reference time is required")
	}

	if t, err := time.Parse(time.RFC3339, trimmed); err == nil {
		return t.In(loc), nil
	}

	for _, layout := range offsetlessLayouts {
		if t, err := time.ParseInLocation(layout, trimmed, loc); err == nil {
			return t, nil
		}
	}

	return time.Time{}, newError(KindBadReference, "invalid reference time %q", s)
}
