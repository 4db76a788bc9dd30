package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidZone(t *testing.T) {
	tests := []struct {
		name  string
		valid bool
	}{
		{"America/Chicago", true},
		{"Europe/Athens", true},
		{"UTC", true},
		{"Nowhere/Fake", false},
		{"", false},
		{"   ", false},
		{"central time", false},
		// "Local" loads in Go but depends on the host; rejected.
		{"Local", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidZone(tt.name))
		})
	}
}

func TestLoadZone_ErrorKind(t *testing.T) {
	_, err := LoadZone("Nowhere/Fake")
	assert.Equal(t, KindBadTimezone, KindOf(err))
	assert.Contains(t, err.Error(), "Nowhere/Fake")
}

func TestLoadZone_TrimsWhitespace(t *testing.T) {
	loc, err := LoadZone("  America/Chicago ")
	assert.NoError(t, err)
	assert.Equal(t, "America/Chicago", loc.String())
}
