// Package phrase defines the contract with the natural-language date parser
// and provides the production backends.
//
// The parser is a black box with known failure modes the caller must work
// around rather than rely on us to repair:
//
//   - a relative month combined with a specific day ("next month the 3rd")
//     frequently resolves to the wrong day;
//   - "first/last day of the month" business phrases resolve incorrectly;
//   - purely cultural or seasonal references ("christmas eve", "end of
//     summer") are not recognized at all.
//
// Normalizing phrases to avoid these classes is the upstream caller's
// responsibility.
package phrase

import "time"

// Field identifies one calendar component of a candidate.
type Field int

const (
	Year Field = iota
	Month
	Day
	Hour
	Minute
	Second
)

// Candidate is one interpretation of a date phrase: a full set of calendar
// fields, each flagged as certain (explicitly present in the phrase) or
// implied from the reference instant.
type Candidate struct {
	// Time carries the candidate's merged calendar fields, in the
	// reference instant's location.
	Time time.Time
	// Known flags the fields the phrase named explicitly. Absent entries
	// mean implied.
	Known map[Field]bool
}

// Year returns the candidate year and whether the phrase named it.
func (c Candidate) Year() (int, bool) { return c.Time.Year(), c.Known[Year] }

// Month returns the candidate month (1-12) and whether the phrase named it.
func (c Candidate) Month() (int, bool) { return int(c.Time.Month()), c.Known[Month] }

// Day returns the candidate day of month and whether the phrase named it.
func (c Candidate) Day() (int, bool) { return c.Time.Day(), c.Known[Day] }

// Hour returns the candidate hour and whether the phrase named it.
func (c Candidate) Hour() (int, bool) { return c.Time.Hour(), c.Known[Hour] }

// Minute returns the candidate minute and whether the phrase named it.
func (c Candidate) Minute() (int, bool) { return c.Time.Minute(), c.Known[Minute] }

// Second returns the candidate second and whether the phrase named it.
func (c Candidate) Second() (int, bool) { return c.Time.Second(), c.Known[Second] }

// Parser maps a natural-language date phrase and a reference instant to
// candidate interpretations, best first. An empty slice means no match.
//
// Implementations must be pure: same phrase and reference, same candidates.
type Parser interface {
	Parse(text string, ref time.Time) []Candidate
}

// Chain tries each backend in order and returns the first non-empty
// candidate list.
type Chain []Parser

func (ch Chain) Parse(text string, ref time.Time) []Candidate {
	for _, p := range ch {
		if candidates := p.Parse(text, ref); len(candidates) > 0 {
			return candidates
		}
	}
	return nil
}

// Default returns the production parser: the when backend with the
// naturaldate backend as fallback.
func Default() Parser {
	return Chain{NewWhen(), Naturaldate{}}
}

// certaintyFromRef builds a candidate from a parsed time, flagging a field as
// certain when its value differs from the reference. Both backends merge
// unmatched components from the reference instant, so an unchanged field is
// one the phrase never mentioned.
//
// This is a proxy, not a direct signal: "today at noon" keeps the reference
// date and reads as date-uncertain. That is the tolerated behavior — the
// resolution policy treats date-uncertain results as time-only and may roll
// them forward a day.
func certaintyFromRef(t, ref time.Time) Candidate {
	return Candidate{
		Time: t,
		Known: map[Field]bool{
			Year:   t.Year() != ref.Year(),
			Month:  t.Month() != ref.Month(),
			Day:    t.Day() != ref.Day(),
			Hour:   t.Hour() != ref.Hour(),
			Minute: t.Minute() != ref.Minute(),
			Second: t.Second() != ref.Second(),
		},
	}
}
