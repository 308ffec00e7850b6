package algo

import (
	"regexp"
	"strings"
)

var (
	sentimentPunctRegex = regexp.MustCompile("[.,/#!$%^&*;:{}=_`\"~()]")
	sentimentSpaceRegex = regexp.MustCompile(jsSpaceClass + jsSpaceClass + "+")
)

// negators flip the weight of the token that follows them.
var negators = map[string]struct{}{
	"cant":    {},
	"can't":   {},
	"dont":    {},
	"don't":   {},
	"doesnt":  {},
	"doesn't": {},
	"not":     {},
	"non":     {},
	"wont":    {},
	"won't":   {},
	"isnt":    {},
	"isn't":   {},
}

// Analyzer scores text against a word lexicon. It holds no mutable state
// and is safe to share.
type Analyzer struct {
	lexicon  map[string]int
	negators map[string]struct{}
}

// NewAnalyzer returns an Analyzer over the AFINN-165 word list and the emoji table.
func NewAnalyzer() *Analyzer {
	return &Analyzer{lexicon: loadLexicon(), negators: negators}
}

// Score sums the lexicon weights of all tokens in text.
// A token preceded by a negator counts with the opposite sign.
func (a *Analyzer) Score(text string) int {
	tokens := tokenize(text)
	score := 0
	for i, tok := range tokens {
		weight, ok := a.lexicon[tok]
		if !ok {
			continue
		}
		if i > 0 {
			if _, negated := a.negators[tokens[i-1]]; negated {
				weight = -weight
			}
		}
		score += weight
	}
	return score
}

// tokenize lower-cases text, blanks out common punctuation and splits on single spaces.
// Characters outside the punctuation set, such as '?' and apostrophes, stay attached to words.
func tokenize(text string) []string {
	t := strings.ToLower(text)
	t = strings.ReplaceAll(t, "\n", " ")
	t = sentimentPunctRegex.ReplaceAllString(t, " ")
	t = sentimentSpaceRegex.ReplaceAllString(t, " ")
	t = strings.TrimFunc(t, isJSSpace)
	if t == "" {
		return nil
	}
	return strings.Split(t, " ")
}
