// Package algo holds the pure rating, description and ranking logic.
package algo

import (
	"math"
	"regexp"
	"strings"

	"github.com/huangsam/gitroast/schema"
)

var (
	keywordRegex  = regexp.MustCompile(`(?i)\b(fix(es|ed)?|bug(s)?|refactor(ed)?|feature|hotfix|improve(d)?)\b`)
	trailerRegex  = regexp.MustCompile(`^--` + jsSpaceClass + `*\n`)
	signOffRegex  = regexp.MustCompile(`\nSigned-off-by:` + jsSpaceClass + `+`)
	shoutingRegex = regexp.MustCompile(`^[A-Z]{2,}$`)
)

// Tunable signal weights.
const (
	lengthDivisor    = 40.0
	maxLengthScore   = 4.0
	shortMessageLen  = 20
	longMessageLen   = 300
	exclaimWeight    = 1.5
	questionWeight   = 1.2
	negativeWeight   = 0.5
	positiveWeight   = 0.3
	emojiWeight      = 0.7
	keywordBonus     = 1.5
	shoutingRatio    = 0.3
	minRepeatedRun   = 4
	manyCommas       = 3
	minPunctuation   = 2
	punctuationDelta = 0.5
)

// Scorer rates commit messages. Use NewScorer to build one.
type Scorer struct {
	sentiment *Analyzer
}

// NewScorer returns a Scorer backed by the built-in sentiment lexicon.
func NewScorer() *Scorer {
	return &Scorer{sentiment: NewAnalyzer()}
}

// defaultScorer is read-only after init.
var defaultScorer = NewScorer()

// Rate returns the entertainment rating of a message in [1,10].
func Rate(message string) int {
	return defaultScorer.Rate(message)
}

// RateWithBreakdown rates a message and reports each signal's contribution.
func RateWithBreakdown(message string) schema.RatingBreakdown {
	return defaultScorer.RateWithBreakdown(message)
}

// Rate returns the entertainment rating of a message in [1,10].
func (s *Scorer) Rate(message string) int {
	return s.RateWithBreakdown(message).Rating
}

// RateWithBreakdown computes the additive score of a message and normalizes it.
// Signals are summed in a fixed order so the float result is reproducible.
func (s *Scorer) RateWithBreakdown(message string) schema.RatingBreakdown {
	signals := make(map[schema.SignalKey]float64, len(schema.AllSignalKeys))
	score := 0.0
	add := func(key schema.SignalKey, v float64) {
		signals[key] = v
		score += v
	}

	add(schema.SignalLength, lengthSignal(message))
	add(schema.SignalExclaim, float64(strings.Count(message, "!"))*exclaimWeight)
	add(schema.SignalQuestion, float64(strings.Count(message, "?"))*questionWeight)
	add(schema.SignalComma, commaSignal(message))
	add(schema.SignalSentiment, sentimentSignal(s.sentiment.Score(message)))
	add(schema.SignalEmoji, float64(CountEmoji(message))*emojiWeight)
	add(schema.SignalRepetition, -float64(countRepeatedRuns(message)))
	add(schema.SignalShouting, shoutingSignal(message))
	add(schema.SignalKeyword, keywordSignal(message))
	add(schema.SignalBoilerplate, boilerplateSignal(message))
	add(schema.SignalPunctuation, punctuationSignal(message))

	return schema.RatingBreakdown{
		Raw:     score,
		Rating:  normalize(score),
		Signals: signals,
	}
}

// normalize maps the raw score onto the rating scale.
// The divide and multiply by ten are kept as-is; they only matter for rounding.
func normalize(score float64) int {
	normalized := roundHalfUp((score / 10) * 10)
	return schema.ClampRating(int(normalized))
}

// roundHalfUp rounds to the nearest integer with ties going toward +Inf.
func roundHalfUp(x float64) float64 {
	r := math.Floor(x)
	if x-r >= 0.5 {
		r++
	}
	return r
}

// lengthSignal rewards longer messages up to a cap and penalizes very short or very long ones.
func lengthSignal(message string) float64 {
	length := utf16Len(message)
	v := math.Min(float64(length)/lengthDivisor, maxLengthScore)
	if length < shortMessageLen {
		v--
	} else if length > longMessageLen {
		v -= 0.5
	}
	return v
}

func commaSignal(message string) float64 {
	if strings.Count(message, ",") > manyCommas {
		return punctuationDelta
	}
	return -punctuationDelta
}

func sentimentSignal(sentiment int) float64 {
	if sentiment < 0 {
		return -(float64(-sentiment) * negativeWeight)
	}
	return float64(sentiment) * positiveWeight
}

// shoutingSignal penalizes messages where too many words are all caps.
func shoutingSignal(message string) float64 {
	words := strings.FieldsFunc(message, isJSSpace)
	if len(words) == 0 {
		return 0
	}
	shouting := 0
	for _, w := range words {
		if shoutingRegex.MatchString(w) {
			shouting++
		}
	}
	if float64(shouting)/float64(len(words)) > shoutingRatio {
		return -1
	}
	return 0
}

func keywordSignal(message string) float64 {
	if keywordRegex.MatchString(message) {
		return keywordBonus
	}
	return 0
}

// boilerplateSignal penalizes a leading trailer separator or a sign-off trailer.
func boilerplateSignal(message string) float64 {
	if trailerRegex.MatchString(message) || signOffRegex.MatchString(message) {
		return -0.5
	}
	return 0
}

func punctuationSignal(message string) float64 {
	count := 0
	for _, p := range []string{".", ",", ";", ":"} {
		count += strings.Count(message, p)
	}
	if count < minPunctuation {
		return -punctuationDelta
	}
	return punctuationDelta
}

// countRepeatedRuns counts maximal runs of one ASCII letter repeated at least
// minRepeatedRun times. Case matters: "aaAA" is not a run.
func countRepeatedRuns(message string) int {
	count := 0
	for i := 0; i < len(message); {
		c := message[i]
		if !isASCIILetter(c) {
			i++
			continue
		}
		j := i
		for j < len(message) && message[j] == c {
			j++
		}
		if j-i >= minRepeatedRun {
			count++
		}
		i = j
	}
	return count
}

func isASCIILetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// utf16Len returns the length of s in UTF-16 code units.
// Characters outside the BMP count twice, so emoji make a message longer.
func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		if r >= 0x10000 {
			n += 2
		} else {
			n++
		}
	}
	return n
}
