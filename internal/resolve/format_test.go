package resolve

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatInstant_NumericOffset(t *testing.T) {
	chicago := mustZone(t, "America/Chicago")

	// Winter: CST, -06:00.
	winter := time.Date(2024, 1, 15, 14, 0, 0, 0, chicago)
	assert.Equal(t, "2024-01-15T14:00:00-06:00", FormatInstant(winter))

	// Summer: CDT, -05:00.
	summer := time.Date(2024, 7, 15, 14, 0, 0, 0, chicago)
	assert.Equal(t, "2024-07-15T14:00:00-05:00", FormatInstant(summer))
}

func TestFormatInstant_UTCIsNeverBareZ(t *testing.T) {
	utc := time.Date(2024, 1, 15, 14, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-01-15T14:00:00+00:00", FormatInstant(utc))
}

func TestFormatInstant_DropsSubsecond(t *testing.T) {
	chicago := mustZone(t, "America/Chicago")
	instant := time.Date(2024, 1, 15, 14, 0, 0, 123456789, chicago)
	assert.Equal(t, "2024-01-15T14:00:00-06:00", FormatInstant(instant))
}

// Formatting a resolved instant and feeding it back as a reference yields the
// same absolute instant.
func TestFormatInstant_RoundTrip(t *testing.T) {
	athens := mustZone(t, "Europe/Athens")
	original := time.Date(2024, 3, 31, 4, 30, 0, 0, athens) // just past a DST jump

	reparsed, err := ParseReference(FormatInstant(original), athens)
	require.NoError(t, err)
	assert.True(t, reparsed.Equal(original))
	assert.Equal(t, FormatInstant(original), FormatInstant(reparsed))
}
