package contract

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/huangsam/gitroast/schema"
)

// Color variables for console output.
var (
	MadnessColor  = color.New(color.FgRed, color.Bold)     // MadnessColor marks the wildest ratings (9-10).
	ChaoticColor  = color.New(color.FgMagenta, color.Bold) // ChaoticColor marks lively ratings (7-8).
	MehColor      = color.New(color.FgYellow)              // MehColor marks middling ratings (4-6).
	DullColor     = color.New(color.FgGreen)               // DullColor marks sleepy ratings (1-3).
	FrameColor    = color.New(color.FgBlue)                // FrameColor draws the box around a message.
	HighlightText = color.New(color.Bold)                  // HighlightText emphasizes headings and ratings.
	ErrorColor    = color.New(color.FgRed)                 // ErrorColor prints failures on stderr.
)

// GetRatingColor returns the console color for a rating.
func GetRatingColor(rating int) *color.Color {
	switch {
	case rating >= 9:
		return MadnessColor
	case rating >= 7:
		return ChaoticColor
	case rating >= 4:
		return MehColor
	default:
		return DullColor
	}
}

// GetColorVerdict colors a verdict text according to the rating it describes.
func GetColorVerdict(rating int, text string) string {
	return GetRatingColor(rating).Sprint(text)
}

// GetColorBand returns the band name of a verdict colored for console tables.
func GetColorBand(rating int, band schema.Band) string {
	return GetRatingColor(rating).Sprint(string(band))
}

// SetColorEnabled turns console colors on or off for the whole process.
// fatih/color already disables itself when stdout is not a terminal; this only
// ever narrows that decision.
func SetColorEnabled(enabled bool) {
	if !enabled {
		color.NoColor = true
	}
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// LogError prints an error to stderr in red without exiting.
func LogError(err error) {
	writeError(os.Stderr, err)
}

func writeError(w io.Writer, err error) {
	_, _ = ErrorColor.Fprintf(w, "Error: %v\n", err)
}

// SubjectLine returns the subject of a raw commit message the way git's %s
// placeholder does: the first paragraph with its lines joined by spaces.
func SubjectLine(message string) string {
	message = strings.TrimLeft(strings.ReplaceAll(message, "\r\n", "\n"), "\n")
	paragraph, _, _ := strings.Cut(message, "\n\n")
	lines := strings.Split(paragraph, "\n")
	parts := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			parts = append(parts, line)
		}
	}
	return strings.Join(parts, " ")
}

// TruncateText shortens text to maxWidth runes with an ellipsis suffix.
// Requires maxWidth > 3 so there is room for "..." and at least one character.
func TruncateText(text string, maxWidth int) string {
	runes := []rune(text)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return text
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
