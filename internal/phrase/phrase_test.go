package phrase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stub struct {
	candidates []Candidate
	calls      int
}

func (s *stub) Parse(string, time.Time) []Candidate {
	s.calls++
	return s.candidates
}

func TestCandidate_Getters(t *testing.T) {
	at := time.Date(2024, 9, 15, 14, 30, 5, 0, time.UTC)
	c := Candidate{Time: at, Known: map[Field]bool{Month: true, Day: true}}

	year, known := c.Year()
	assert.Equal(t, 2024, year)
	assert.False(t, known)

	month, known := c.Month()
	assert.Equal(t, 9, month)
	assert.True(t, known)

	day, known := c.Day()
	assert.Equal(t, 15, day)
	assert.True(t, known)

	hour, known := c.Hour()
	assert.Equal(t, 14, hour)
	assert.False(t, known)

	minute, known := c.Minute()
	assert.Equal(t, 30, minute)
	assert.False(t, known)

	second, known := c.Second()
	assert.Equal(t, 5, second)
	assert.False(t, known)
}

func TestCandidate_NilKnownMap(t *testing.T) {
	c := Candidate{Time: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)}
	_, known := c.Day()
	assert.False(t, known)
}

func TestChain_FirstNonEmptyWins(t *testing.T) {
	ref := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	winner := Candidate{Time: ref.AddDate(0, 0, 1)}

	empty := &stub{}
	primary := &stub{candidates: []Candidate{winner}}
	fallback := &stub{candidates: []Candidate{{Time: ref.AddDate(0, 0, 2)}}}

	got := Chain{empty, primary, fallback}.Parse("whatever", ref)
	require.Len(t, got, 1)
	assert.Equal(t, winner.Time, got[0].Time)
	assert.Equal(t, 1, empty.calls)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 0, fallback.calls, "later backends must not run once one matched")
}

func TestChain_AllEmpty(t *testing.T) {
	ref := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	got := Chain{&stub{}, &stub{}}.Parse("whatever", ref)
	assert.Nil(t, got)
}

func TestCertaintyFromRef(t *testing.T) {
	ref := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name   string
		parsed time.Time
		known  map[Field]bool
	}{
		{
			name:   "identical to reference means nothing explicit",
			parsed: ref,
			known:  map[Field]bool{},
		},
		{
			name:   "changed day",
			parsed: time.Date(2024, 1, 16, 10, 30, 0, 0, time.UTC),
			known:  map[Field]bool{Day: true},
		},
		{
			name:   "changed clock only",
			parsed: time.Date(2024, 1, 15, 14, 0, 0, 0, time.UTC),
			known:  map[Field]bool{Hour: true, Minute: true},
		},
		{
			name:   "changed month and day",
			parsed: time.Date(2024, 9, 15, 10, 30, 0, 0, time.UTC),
			known:  map[Field]bool{Month: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := certaintyFromRef(tt.parsed, ref)
			for _, f := range []Field{Year, Month, Day, Hour, Minute, Second} {
				assert.Equal(t, tt.known[f], c.Known[f], "field %d", f)
			}
		})
	}
}
