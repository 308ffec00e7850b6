package algo

import "github.com/huangsam/gitroast/schema"

// Verdict texts for each band.
const (
	slothText         = "Wow, this commit is so dull it could put a sloth to sleep. Did you even try?"
	lukewarmText      = "Barely awake! This commit is as uninspired as a cup of lukewarm water."
	mehText           = "Meh... There's a spark, but it's more of a flicker. Your commit is adequate, but yawn-worthy."
	napText           = "Not bad, but not great either. This commit screams 'I put in some effort, but then took a nap'."
	chaoticText       = "Now we're talking! There’s creativity here, although it borders on chaotic over-enthusiasm."
	rollercoasterText = "Holy smokes! This commit is wild and unfocused – like a rollercoaster of ideas with no seatbelt."
	madnessText       = "Extreme madness detected! This commit is a delirious masterpiece of chaos. Did you even sleep last night?"
)

// Describe maps a rating onto one of seven fixed verdicts.
// Ratings outside [1,10] fall into the nearest band.
func Describe(rating int) schema.Verdict {
	switch {
	case rating <= 2:
		return schema.Verdict{Band: schema.SlothBand, Text: slothText}
	case rating == 3:
		return schema.Verdict{Band: schema.LukewarmBand, Text: lukewarmText}
	case rating <= 6:
		return schema.Verdict{Band: schema.MehBand, Text: mehText}
	case rating == 7:
		return schema.Verdict{Band: schema.NapBand, Text: napText}
	case rating == 8:
		return schema.Verdict{Band: schema.ChaoticBand, Text: chaoticText}
	case rating == 9:
		return schema.Verdict{Band: schema.RollercoasterBand, Text: rollercoasterText}
	default:
		return schema.Verdict{Band: schema.MadnessBand, Text: madnessText}
	}
}
