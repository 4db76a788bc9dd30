package resolve

import (
	"regexp"
	"strconv"
	"strings"
)

// TimeOfDay is an explicit wall-clock time. Once parsed it is fully trusted:
// it overrides whatever clock time a date phrase may have implied.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

var (
	// "2pm", "2:30 PM", "12am".
	twelveHourPattern = regexp.MustCompile(`(?i)^(\d{1,2})(?::(\d{2}))? ?(am|pm)$`)
	// "14", "14:30", "9:05".
	clockPattern = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?$`)
)

// ParseTimeOfDay parses a freestanding time phrase, 12-hour form first, bare
// 24-hour form second. Minutes default to 0; there is no seconds syntax.
//
// Descriptive words ("morning", "around noon") are not understood here. The
// upstream caller is expected to have normalized such phrases to numeric or
// am/pm form before calling.
//
// Hour/minute digits are taken as-is; out-of-range values are caught later,
// when the full instant is constructed.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	trimmed := strings.TrimSpace(s)

	if m := twelveHourPattern.FindStringSubmatch(trimmed); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute := 0
		if m[2] != "" {
			minute, _ = strconv.Atoi(m[2])
		}
		switch strings.ToLower(m[3]) {
		case "pm":
			if hour != 12 {
				hour += 12
			}
		case "am":
			if hour == 12 {
				hour = 0
			}
		}
		return TimeOfDay{Hour: hour, Minute: minute}, nil
	}

	if m := clockPattern.FindStringSubmatch(trimmed); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute := 0
		if m[2] != "" {
			minute, _ = strconv.Atoi(m[2])
		}
		return TimeOfDay{Hour: hour, Minute: minute}, nil
	}

	return TimeOfDay{}, newError(KindBadTimePhrase, "could not parse time %q", s)
}
