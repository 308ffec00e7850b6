package algo

import (
	"testing"

	"github.com/huangsam/gitroast/schema"
)

// FuzzRate fuzzes Rate with arbitrary messages and checks totality and bounds.
func FuzzRate(f *testing.F) {
	seeds := []string{
		"",
		"fix bug!!!",
		"WIP",
		"Merge branch 'main' into feature",
		"🔥🔥🔥 hotfix 🔥🔥🔥",
		"--\nSigned-off-by: someone <x@y.z>",
		"aaaaaaaaaaaaaaaaaaaaaaaaa",
		"\xff\xfe\xfd",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, message string) {
		b := RateWithBreakdown(message)
		if b.Rating < schema.MinRating || b.Rating > schema.MaxRating {
			t.Errorf("rating %d out of bounds for %q", b.Rating, message)
		}
		if again := Rate(message); again != b.Rating {
			t.Errorf("non-deterministic rating for %q: %d vs %d", message, b.Rating, again)
		}
	})
}
