package lemma

import (
	"context"
	"fmt"
	"unicode"

	"github.com/kljensen/snowball"

	"github.com/spigell/answer-scorer/internal/nlp"
)

const language = "english"

// Lemmatizer normalizes words to their Snowball (Porter2) stem. Stems stand in for
// dictionary lemmas: "running", "runs" and "run" all collapse to "run".
// It holds no mutable state and is safe for concurrent use.
type Lemmatizer struct {
	stopWords map[string]struct{}
}

var _ nlp.Lemmatizer = (*Lemmatizer)(nil)

// New builds a lemmatizer and checks that the stemmer for the language is available.
func New() (*Lemmatizer, error) {
	if _, err := snowball.Stem("running", language, true); err != nil {
		return nil, nlp.Unavailable(nlp.CapabilityLemmatization, fmt.Errorf("load %s stemmer: %w", language, err))
	}
	return &Lemmatizer{stopWords: englishStopWords}, nil
}

// Lemmatize returns the lemmas of the content words of text, lower-cased, with stop words
// and punctuation removed. Each lemma keeps the folded word it first appeared as.
func (l *Lemmatizer) Lemmatize(ctx context.Context, text string) (nlp.LemmaSet, error) {
	set := nlp.NewLemmaSet()
	if err := ctx.Err(); err != nil {
		return set, err
	}

	for _, token := range nlp.Tokenize(text) {
		word := nlp.Fold(token)
		if l.IsStopWord(word) {
			continue
		}

		stem := word
		if isAlpha(word) {
			var err error
			stem, err = snowball.Stem(word, language, true)
			if err != nil {
				return nlp.NewLemmaSet(), fmt.Errorf("stem %q: %w", word, err)
			}
		}
		set.Add(stem, word)
	}

	return set, nil
}

// IsStopWord reports whether the folded word carries no topical meaning.
func (l *Lemmatizer) IsStopWord(word string) bool {
	_, ok := l.stopWords[word]
	return ok
}

func isAlpha(word string) bool {
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return word != ""
}
