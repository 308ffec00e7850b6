package contract

import (
	"bytes"
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/huangsam/gitroast/schema"
	"github.com/stretchr/testify/assert"
)

func TestGetRatingColor(t *testing.T) {
	tests := []struct {
		name     string
		rating   int
		expected *color.Color
	}{
		{"lowest rating", 1, DullColor},
		{"top of dull", 3, DullColor},
		{"bottom of meh", 4, MehColor},
		{"top of meh", 6, MehColor},
		{"bottom of chaotic", 7, ChaoticColor},
		{"top of chaotic", 8, ChaoticColor},
		{"bottom of madness", 9, MadnessColor},
		{"highest rating", 10, MadnessColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Same(t, tt.expected, GetRatingColor(tt.rating))
		})
	}
}

func TestGetColorVerdict(t *testing.T) {
	saved := color.NoColor
	defer func() { color.NoColor = saved }()

	color.NoColor = true
	assert.Equal(t, "plain text", GetColorVerdict(10, "plain text"))
	assert.Equal(t, "madness", GetColorBand(10, schema.MadnessBand))

	color.NoColor = false
	colored := GetColorVerdict(10, "loud text")
	assert.Contains(t, colored, "loud text")
	assert.NotEqual(t, "loud text", colored)
}

func TestWriteError(t *testing.T) {
	saved := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = saved }()

	var buf bytes.Buffer
	writeError(&buf, errors.New("could not retrieve commit message for HEAD"))
	assert.Equal(t, "Error: could not retrieve commit message for HEAD\n", buf.String())
	assert.True(t, ErrorColor.Equals(color.New(color.FgRed)))
}

func TestSubjectLine(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		expected string
	}{
		{"single line", "fix bug", "fix bug"},
		{"subject and body", "fix bug\n\nlonger explanation", "fix bug"},
		{"wrapped subject", "fix a bug\nthat spans lines\n\nbody", "fix a bug that spans lines"},
		{"leading newlines", "\n\nfix bug\n", "fix bug"},
		{"crlf", "fix bug\r\n\r\nbody", "fix bug"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SubjectLine(tt.message))
		})
	}
}

func TestTruncateText(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		maxWidth int
		expected string
	}{
		{"fits", "short", 10, "short"},
		{"exact", "exactly10!", 10, "exactly10!"},
		{"truncated", "this is a long subject", 10, "this is..."},
		{"multibyte", "héllo wörld", 8, "héllo..."},
		{"width too small", "abcdef", 3, "abcdef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TruncateText(tt.text, tt.maxWidth))
		})
	}
}

func TestParseBoolString(t *testing.T) {
	tests := []struct {
		input       string
		expected    bool
		expectError bool
	}{
		{"yes", true, false},
		{"YES", true, false},
		{"true", true, false},
		{"1", true, false},
		{"no", false, false},
		{"False", false, false},
		{"0", false, false},
		{"maybe", false, true},
		{"", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseBoolString(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
