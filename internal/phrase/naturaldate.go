package phrase

import (
	"strings"
	"time"

	naturaldate "github.com/tj/go-naturaldate"
)

// Naturaldate is a fallback backend built on tj/go-naturaldate, biased to
// the future ("friday" means the coming Friday).
type Naturaldate struct{}

func (Naturaldate) Parse(text string, ref time.Time) []Candidate {
	t, err := naturaldate.Parse(text, ref, naturaldate.WithDirection(naturaldate.Future))
	if err != nil {
		return nil
	}
	// The library is lenient and parses unrecognized text as the reference
	// itself. Treat such a result as no match unless the text plainly
	// refers to the present.
	if t.Equal(ref) && !refersToNow(text) {
		return nil
	}
	return []Candidate{certaintyFromRef(t, ref)}
}

func refersToNow(text string) bool {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "now", "right now", "today":
		return true
	}
	return false
}
