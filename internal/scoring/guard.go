package scoring

import (
	"strings"
	"unicode/utf8"
)

const (
	// MinAnswerLength is the shortest trimmed answer, in characters, AnchorScorer will score.
	MinAnswerLength = 5

	FeedbackTooShort = "Answer is too short or empty."
	FeedbackNoAnswer = "No answer provided."
)

// tooShort reports answers AnchorScorer short-circuits: empty, or fewer than
// MinAnswerLength characters once surrounding whitespace is trimmed.
func tooShort(answer string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(answer)) < MinAnswerLength
}

// blank reports answers CoverageScorer short-circuits.
func blank(answer string) bool {
	return strings.TrimSpace(answer) == ""
}
