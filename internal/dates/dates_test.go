package dates

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Already canonical", "2020-03", "2020-03"},
		{"Full month name", "January 2020", "2020-01"},
		{"Three letter abbreviation", "Mar 2019", "2019-03"},
		{"Lowercase month", "september 2021", "2021-09"},
		{"Uppercase month", "JUL 2018", "2018-07"},
		{"Bare year defaults to January", "2015", "2015-01"},
		{"Leading and trailing spaces", "  Feb 2022  ", "2022-02"},
		{"Unknown month word", "Febtober 2020", ""},
		{"Day-level date unrecognized", "2020-03-15", ""},
		{"Slash format unrecognized", "03/2020", ""},
		{"Free text unrecognized", "Present", ""},
		{"Empty input", "", ""},
		{"Whitespace only", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

// Normalizing an already-canonical value must return it unchanged no matter
// how many times it passes through.
func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"May 2020", "2020", "2020-05", "Dec 1999"}
	for _, in := range inputs {
		once := Normalize(in)
		if once == "" {
			continue
		}
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}
