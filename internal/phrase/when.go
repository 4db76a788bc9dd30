package phrase

import (
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// When is the primary backend, built on olebedev/when with the English and
// common rule sets. It yields at most one candidate.
type When struct {
	parser *when.Parser
}

// NewWhen builds a When backend. The parser is safe for concurrent use once
// the rules are added.
func NewWhen() *When {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return &When{parser: w}
}

func (p *When) Parse(text string, ref time.Time) []Candidate {
	result, err := p.parser.Parse(text, ref)
	if err != nil || result == nil {
		return nil
	}
	return []Candidate{certaintyFromRef(result.Time, ref)}
}
