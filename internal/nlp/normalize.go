package nlp

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Normalize applies NFKC, drops control characters and collapses whitespace.
func Normalize(text string) string {
	normed := norm.NFKC.String(text)
	normed = strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return ' '
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, normed)
	return strings.Join(strings.Fields(normed), " ")
}

// Fold normalizes the text and folds its case for caseless comparison.
// A cases.Caser keeps state, so every call builds its own.
func Fold(text string) string {
	return cases.Fold().String(Normalize(text))
}

// Tokenize splits text into words. Letters, digits and the joiners '+', '#' (C++, C#) are kept;
// everything else separates tokens.
func Tokenize(text string) []string {
	return strings.FieldsFunc(Normalize(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '+' && r != '#'
	})
}
