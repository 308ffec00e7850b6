// Package schema has models and constants shared by all parts of gitroast.
package schema

// CommitRecord is a single commit as read from the repository.
type CommitRecord struct {
	Hash    string // Full object name or the reference used for the lookup
	Message string // Full message, trimmed
	Subject string // First line of the message
}

// RatedCommit is a commit paired with its rating, used when ranking history.
type RatedCommit struct {
	Hash    string `json:"hash" yaml:"hash"`
	Subject string `json:"subject" yaml:"subject"`
	Rating  int    `json:"rating" yaml:"rating"`
}

// RatingBreakdown holds the contribution of every signal to a single rating.
type RatingBreakdown struct {
	Raw     float64               `json:"raw" yaml:"raw"`         // Sum of all signals before rounding
	Rating  int                   `json:"rating" yaml:"rating"`   // Final clamped rating
	Signals map[SignalKey]float64 `json:"signals" yaml:"signals"` // Contribution of each signal
}

// Verdict is the description attached to a rating.
type Verdict struct {
	Band Band
	Text string
}

// RoastResult is the outcome of rating a single commit.
type RoastResult struct {
	Ref       string           `json:"ref" yaml:"ref"`
	Message   string           `json:"message" yaml:"message"`
	Rating    int              `json:"rating" yaml:"rating"`
	Band      Band             `json:"band" yaml:"band"`
	Verdict   string           `json:"verdict" yaml:"verdict"`
	Breakdown *RatingBreakdown `json:"breakdown,omitempty" yaml:"breakdown,omitempty"`
}

// RankedCommit is one line of the top commits listing.
type RankedCommit struct {
	Rank    int    `json:"rank" yaml:"rank"`
	Hash    string `json:"hash" yaml:"hash"`
	Subject string `json:"subject" yaml:"subject"`
	Rating  int    `json:"rating" yaml:"rating"`
	Band    Band   `json:"band" yaml:"band"`
}
