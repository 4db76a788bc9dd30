package resolve

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay_TwelveHour(t *testing.T) {
	tests := []struct {
		input string
		want  TimeOfDay
	}{
		{"2pm", TimeOfDay{Hour: 14}},
		{"2:30pm", TimeOfDay{Hour: 14, Minute: 30}},
		{"2:30 pm", TimeOfDay{Hour: 14, Minute: 30}},
		{"11AM", TimeOfDay{Hour: 11}},
		{"9 PM", TimeOfDay{Hour: 21}},
		// Boundary cases: 12am is midnight, 12pm is noon.
		{"12am", TimeOfDay{Hour: 0}},
		{"12pm", TimeOfDay{Hour: 12}},
		{"12:30am", TimeOfDay{Minute: 30}},
		{"12:30pm", TimeOfDay{Hour: 12, Minute: 30}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTimeOfDay_TwentyFourHour(t *testing.T) {
	tests := []struct {
		input string
		want  TimeOfDay
	}{
		{"14:30", TimeOfDay{Hour: 14, Minute: 30}},
		{"9:05", TimeOfDay{Hour: 9, Minute: 5}},
		{"0:00", TimeOfDay{}},
		{"7", TimeOfDay{Hour: 7}},
		{" 23:59 ", TimeOfDay{Hour: 23, Minute: 59}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Digits are accepted as-is; range checking belongs to instant construction.
func TestParseTimeOfDay_NoRangeValidation(t *testing.T) {
	got, err := ParseTimeOfDay("25:99")
	require.NoError(t, err)
	assert.Equal(t, TimeOfDay{Hour: 25, Minute: 99}, got)
}

func TestParseTimeOfDay_Unparseable(t *testing.T) {
	tests := []string{"morning", "around noon", "", "2pmish", "14:30:15", "half past two"}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			_, err := ParseTimeOfDay(input)
			require.Error(t, err)

			var rerr *Error
			require.True(t, errors.As(err, &rerr))
			assert.Equal(t, KindBadTimePhrase, rerr.Kind)
		})
	}
}

func TestParseTimeOfDay_ErrorNamesPhrase(t *testing.T) {
	_, err := ParseTimeOfDay("afternoon")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "afternoon")
}
