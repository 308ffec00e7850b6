package outwriter

import (
	"os"

	"github.com/huangsam/gitroast/internal/contract"
	"golang.org/x/term"
)

// GetMaxSubjectWidth calculates the maximum width for commit subjects in table output
// based on terminal width and table configuration.
func GetMaxSubjectWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 {
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Rank + Rating + Commit + Verdict with borders/padding
	baseWidth := 45

	available := termWidth - baseWidth
	if available < 15 {
		return 15
	}
	if available > 72 {
		return 72
	}
	return available
}
