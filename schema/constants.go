package schema

// Custom string types for type safety.
type (
	// SignalKey represents keys used in rating breakdowns.
	SignalKey string

	// OutputMode represents the format of the output.
	OutputMode string

	// GitBackend represents the implementation used to read commits.
	GitBackend string

	// Band represents one of the description bands a rating falls into.
	Band string
)

// Signal keys used in the rating logic, in the order they are applied.
const (
	SignalLength      SignalKey = "length"
	SignalExclaim     SignalKey = "exclaim"
	SignalQuestion    SignalKey = "question"
	SignalComma       SignalKey = "comma"
	SignalSentiment   SignalKey = "sentiment"
	SignalEmoji       SignalKey = "emoji"
	SignalRepetition  SignalKey = "repetition"
	SignalShouting    SignalKey = "shouting"
	SignalKeyword     SignalKey = "keyword"
	SignalBoilerplate SignalKey = "boilerplate"
	SignalPunctuation SignalKey = "punctuation"
)

// All output modes supported.
const (
	TextOut OutputMode = "text" // default
	JSONOut OutputMode = "json"
	CSVOut  OutputMode = "csv"
	YAMLOut OutputMode = "yaml"
)

// All git backends supported.
const (
	ExecBackend  GitBackend = "exec" // default
	GoGitBackend GitBackend = "gogit"
)

// All description bands.
const (
	SlothBand         Band = "sloth"
	LukewarmBand      Band = "lukewarm"
	MehBand           Band = "meh"
	NapBand           Band = "nap"
	ChaoticBand       Band = "chaotic"
	RollercoasterBand Band = "rollercoaster"
	MadnessBand       Band = "madness"
)

// Rating bounds.
const (
	MinRating = 1
	MaxRating = 10
)

// AllSignalKeys lists every signal key in application order.
var AllSignalKeys = []SignalKey{
	SignalLength,
	SignalExclaim,
	SignalQuestion,
	SignalComma,
	SignalSentiment,
	SignalEmoji,
	SignalRepetition,
	SignalShouting,
	SignalKeyword,
	SignalBoilerplate,
	SignalPunctuation,
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut: {},
	JSONOut: {},
	CSVOut:  {},
	YAMLOut: {},
}

// ValidGitBackends lists all valid git backends.
var ValidGitBackends = map[GitBackend]struct{}{
	ExecBackend:  {},
	GoGitBackend: {},
}
