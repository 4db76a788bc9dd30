package phrase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWhen_Tomorrow(t *testing.T) {
	ref := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

	got := NewWhen().Parse("tomorrow", ref)
	require.Len(t, got, 1)

	day, known := got[0].Day()
	assert.Equal(t, 16, day)
	assert.True(t, known)

	_, known = got[0].Year()
	assert.False(t, known)
}

func TestWhen_PureTimePhraseLeavesDateImplied(t *testing.T) {
	ref := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

	got := NewWhen().Parse("2pm", ref)
	require.Len(t, got, 1)

	hour, known := got[0].Hour()
	assert.Equal(t, 14, hour)
	assert.True(t, known)

	for name, field := range map[string]Field{"year": Year, "month": Month, "day": Day} {
		_, known := fieldValue(got[0], field)
		assert.False(t, known, "%s should be implied for a pure time phrase", name)
	}
}

func fieldValue(c Candidate, f Field) (int, bool) {
	switch f {
	case Year:
		return c.Year()
	case Month:
		return c.Month()
	case Day:
		return c.Day()
	case Hour:
		return c.Hour()
	case Minute:
		return c.Minute()
	default:
		return c.Second()
	}
}

func TestWhen_NoMatch(t *testing.T) {
	ref := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	parser := NewWhen()

	for _, text := range []string{"qwertyuiop", ""} {
		assert.Nil(t, parser.Parse(text, ref), "input %q", text)
	}
}
