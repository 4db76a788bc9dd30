package resolve

import (
	"errors"
	"fmt"
)

// Error kinds. These double as machine-readable codes in CLI and HTTP
// responses.
const (
	KindBadInput      = "bad_input"
	KindBadTimezone   = "bad_timezone"
	KindBadReference  = "bad_reference"
	KindBadDatePhrase = "bad_date_phrase"
	KindBadTimePhrase = "bad_time_phrase"
	KindBadResult     = "bad_result"
	KindInternal      = "internal"
)

// Error is a classified resolution failure. Every failure is classified at
// the point it occurs and surfaced in the same request; nothing is retried.
type Error struct {
	Kind    string
	Message string
}

func (e *Error) Error() string { return e.Message }

func newError(kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of a resolution error, or KindInternal for
// anything unclassified (a defect in a collaborator, say).
func KindOf(err error) string {
	var rerr *Error
	if errors.As(err, &rerr) {
		return rerr.Kind
	}
	return KindInternal
}
