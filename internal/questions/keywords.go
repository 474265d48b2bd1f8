package questions

import (
	"sort"
	"unicode"

	"github.com/spigell/answer-scorer/internal/nlp"
	"github.com/spigell/answer-scorer/internal/nlp/lemma"
)

// fillerWords show up in most job descriptions without naming a topic worth asking about.
var fillerWords = map[string]struct{}{
	"ability": {}, "candidate": {}, "company": {}, "environment": {}, "excellent": {},
	"experience": {}, "experienced": {}, "good": {}, "great": {}, "job": {}, "knowledge": {},
	"looking": {}, "need": {}, "plus": {}, "position": {}, "preferred": {}, "proficient": {},
	"proficiency": {}, "required": {}, "requirements": {}, "responsibilities": {}, "role": {},
	"skills": {}, "strong": {}, "team": {}, "understanding": {}, "work": {}, "working": {},
	"year": {}, "years": {},
}

type candidate struct {
	word      string
	count     int
	first     int
	proper    bool
	technical bool
}

// ExtractKeywords returns topic candidates from free text, most relevant first.
// Proper-noun-looking and technical tokens (capitalized, or containing digits, '+' or '#')
// rank first, then frequency, then position of first appearance.
func ExtractKeywords(text string) []string {
	tokens := nlp.Tokenize(text)
	byKey := make(map[string]*candidate)
	order := make([]*candidate, 0)

	for i, token := range tokens {
		if !hasLetter(token) || len([]rune(token)) < 2 {
			continue
		}
		key := nlp.Fold(token)
		if lemma.IsStopWord(key) {
			continue
		}
		if _, ok := fillerWords[key]; ok {
			continue
		}

		c, ok := byKey[key]
		if !ok {
			c = &candidate{word: token, first: i}
			byKey[key] = c
			order = append(order, c)
		}
		c.count++
		if isProper(token) {
			c.proper = true
		}
		if isTechnical(token) {
			c.technical = true
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		a, b := order[i], order[j]
		if a.rank() != b.rank() {
			return a.rank() > b.rank()
		}
		if a.count != b.count {
			return a.count > b.count
		}
		return a.first < b.first
	})

	out := make([]string, 0, len(order))
	for _, c := range order {
		out = append(out, c.word)
	}
	return out
}

func (c *candidate) rank() int {
	r := 0
	if c.proper {
		r++
	}
	if c.technical {
		r++
	}
	return r
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

func isProper(s string) bool {
	for _, r := range s {
		return unicode.IsUpper(r)
	}
	return false
}

func isTechnical(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) || r == '+' || r == '#' {
			return true
		}
	}
	return false
}
