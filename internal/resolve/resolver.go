// Package resolve turns natural-language date and time phrases into one
// absolute, offset-qualified instant.
//
// Resolution is a pure function of the request's declared inputs: the
// reference "now" is supplied by the caller, so the outcome never depends on
// the server's wall clock or host zone. The one permitted wall-clock access
// (the best-effort path with no reference supplied) goes through the
// injected clock.
package resolve

import (
	"fmt"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/timeanchor/timeanchor/internal/phrase"
)

// DefaultZone is used by the best-effort path when the caller supplies no
// usable zone.
const DefaultZone = "America/Chicago"

// Request is a strict resolution request. Every field is required.
type Request struct {
	DatePhrase string // natural-language date phrase ("next week monday")
	TimePhrase string // time phrase ("2pm", "14:30")
	TimeZone   string // IANA zone identifier
	Now        string // ISO-8601 reference instant
}

// Result is a resolved instant plus the context it was resolved in.
type Result struct {
	Instant   time.Time
	Converted string // Instant formatted with explicit offset
	TimeZone  string // zone actually used
	Note      string // best-effort explanation, set only when degraded
}

// Resolver resolves requests. The zero value is not usable; construct with
// New and override fields in tests as needed.
type Resolver struct {
	Phrases phrase.Parser
	Clock   clockwork.Clock
	// Zone used by Interpret when the request names none (or an
	// unrecognized one).
	FallbackZone string
}

// New returns a Resolver with the production phrase parser and a real clock.
func New() *Resolver {
	return &Resolver{
		Phrases:      phrase.Default(),
		Clock:        clockwork.NewRealClock(),
		FallbackZone: DefaultZone,
	}
}

// Resolve is the strict path: all four inputs are mandatory and every
// failure is a classified error. There is no wall-clock fallback here; a
// bad reference instant fails the request.
func (r *Resolver) Resolve(req Request) (Result, error) {
	loc, err := LoadZone(req.TimeZone)
	if err != nil {
		return Result{}, err
	}

	ref, err := ParseReference(req.Now, loc)
	if err != nil {
		return Result{}, err
	}

	tod, err := ParseTimeOfDay(req.TimePhrase)
	if err != nil {
		return Result{}, err
	}

	if strings.TrimSpace(req.DatePhrase) == "" {
		return Result{}, newError(KindBadDatePhrase, "date phrase is required")
	}
	candidates := r.Phrases.Parse(req.DatePhrase, ref)
	if len(candidates) == 0 {
		return Result{}, newError(KindBadDatePhrase, "could not parse the date %q", req.DatePhrase)
	}
	c := candidates[0]

	// Calendar date from the phrase (certainty is irrelevant here), clock
	// time from the explicit time phrase, which always wins.
	year, _ := c.Year()
	month, _ := c.Month()
	day, _ := c.Day()

	instant, err := buildInstant(year, month, day, tod.Hour, tod.Minute, tod.Second, loc)
	if err != nil {
		return Result{}, err
	}

	if timeOnly(c) && instant.Before(ref) {
		instant = rollForward(instant, loc)
	}

	return Result{
		Instant:   instant,
		Converted: FormatInstant(instant),
		TimeZone:  req.TimeZone,
	}, nil
}

// Interpret is the best-effort path for a single combined phrase. The zone
// and reference are optional: an unusable zone falls back to FallbackZone,
// an unusable reference falls back to the injected clock, and an unresolved
// phrase degrades to the reference instant itself with an explanatory note.
// Those three soft fallbacks are the only places an error is ever swallowed.
func (r *Resolver) Interpret(text, zone, now string) (Result, error) {
	if strings.TrimSpace(text) == "" {
		return Result{}, newError(KindBadInput, "text is required")
	}

	zoneName := strings.TrimSpace(zone)
	if !ValidZone(zoneName) {
		zoneName = r.FallbackZone
	}
	loc, err := LoadZone(zoneName)
	if err != nil {
		return Result{}, newError(KindInternal, "fallback zone %q did not load: %s", zoneName, err)
	}

	ref, refErr := ParseReference(now, loc)
	if refErr != nil {
		ref = r.Clock.Now().In(loc)
	}

	candidates := r.Phrases.Parse(text, ref)
	if len(candidates) == 0 {
		return Result{
			Instant:   ref,
			Converted: FormatInstant(ref),
			TimeZone:  zoneName,
			Note:      fmt.Sprintf("could not interpret %q; returning the reference time instead", text),
		}, nil
	}
	c := candidates[0]

	year, _ := c.Year()
	month, _ := c.Month()
	day, _ := c.Day()

	// No separate time phrase exists on this path: clock fields come from
	// the candidate itself when certain, otherwise midnight.
	hour, minute, second := 0, 0, 0
	if v, ok := c.Hour(); ok {
		hour = v
	}
	if v, ok := c.Minute(); ok {
		minute = v
	}
	if v, ok := c.Second(); ok {
		second = v
	}

	instant, err := buildInstant(year, month, day, hour, minute, second, loc)
	if err != nil {
		return Result{}, err
	}

	if timeOnly(c) && instant.Before(ref) {
		instant = rollForward(instant, loc)
	}

	return Result{
		Instant:   instant,
		Converted: FormatInstant(instant),
		TimeZone:  zoneName,
	}, nil
}

// timeOnly reports whether the candidate carries no explicit date content:
// day, month and year are all implied. It deliberately ignores whether hour
// or minute were explicit — "2pm" alone must read as time-only.
func timeOnly(c phrase.Candidate) bool {
	_, yearKnown := c.Year()
	_, monthKnown := c.Month()
	_, dayKnown := c.Day()
	return !yearKnown && !monthKnown && !dayKnown
}

// rollForward advances a time-only result to the same wall-clock time on the
// next calendar day. time.Date normalizes Day()+1 past month ends and keeps
// the wall-clock time across DST transitions. Applied at most once, and only
// to time-only candidates: an explicit date that has already passed is
// returned as-is.
func rollForward(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day()+1, t.Hour(), t.Minute(), t.Second(), 0, loc)
}

// buildInstant constructs a civil instant in loc, rejecting field sets that
// do not name a real calendar time. time.Date silently normalizes
// out-of-range components (Feb 30 becomes Mar 1, hour 25 spills into the
// next day), so the round-trip comparison is the validity check.
func buildInstant(year, month, day, hour, minute, second int, loc *time.Location) (time.Time, error) {
	t := time.Date(year, time.Month(month), day, hour, minute, second, 0, loc)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day ||
		t.Hour() != hour || t.Minute() != minute || t.Second() != second {
		return time.Time{}, newError(KindBadResult,
			"invalid date generated: %04d-%02d-%02d %02d:%02d:%02d is not a real calendar time",
			year, month, day, hour, minute, second)
	}
	return t, nil
}
