package resolve

import "time"

// instantLayout renders an explicit numeric UTC offset ("+00:00" for UTC,
// never a bare "Z") with seconds precision and no sub-second fraction.
const instantLayout = "2006-01-02T15:04:05-07:00"

// FormatInstant renders a resolved instant as an offset-qualified ISO-8601
// string. Formatting then re-parsing with ParseReference yields the same
// absolute instant.
func FormatInstant(t time.Time) string {
	return t.Format(instantLayout)
}
