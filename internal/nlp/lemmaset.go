package nlp

import "sort"

// LemmaSet is a set of lemmas. Each lemma remembers the first surface word it was derived
// from so that callers can report readable words instead of bare stems.
type LemmaSet struct {
	items map[string]string
}

// NewLemmaSet returns an empty set.
func NewLemmaSet() LemmaSet {
	return LemmaSet{items: make(map[string]string)}
}

// Add inserts the lemma. The surface form is kept only on first insertion.
func (s *LemmaSet) Add(lemma, surface string) {
	if lemma == "" {
		return
	}
	if s.items == nil {
		s.items = make(map[string]string)
	}
	if _, ok := s.items[lemma]; ok {
		return
	}
	if surface == "" {
		surface = lemma
	}
	s.items[lemma] = surface
}

func (s LemmaSet) Len() int { return len(s.items) }

func (s LemmaSet) Has(lemma string) bool {
	_, ok := s.items[lemma]
	return ok
}

// Surface returns the word the lemma was first seen as.
func (s LemmaSet) Surface(lemma string) string {
	return s.items[lemma]
}

// Union returns a new set holding the lemmas of both sets. Surfaces from s win.
func (s LemmaSet) Union(other LemmaSet) LemmaSet {
	out := NewLemmaSet()
	for lemma, surface := range s.items {
		out.items[lemma] = surface
	}
	for lemma, surface := range other.items {
		out.Add(lemma, surface)
	}
	return out
}

// Intersect returns the lemmas of s that are also in other, keeping surfaces from s.
func (s LemmaSet) Intersect(other LemmaSet) LemmaSet {
	out := NewLemmaSet()
	for lemma, surface := range s.items {
		if other.Has(lemma) {
			out.items[lemma] = surface
		}
	}
	return out
}

// Difference returns the lemmas of s that are not in other.
func (s LemmaSet) Difference(other LemmaSet) LemmaSet {
	out := NewLemmaSet()
	for lemma, surface := range s.items {
		if !other.Has(lemma) {
			out.items[lemma] = surface
		}
	}
	return out
}

// Sorted returns the lemmas in lexical order.
func (s LemmaSet) Sorted() []string {
	out := make([]string, 0, len(s.items))
	for lemma := range s.items {
		out = append(out, lemma)
	}
	sort.Strings(out)
	return out
}

// Surfaces returns the surface words ordered by their lemma.
func (s LemmaSet) Surfaces() []string {
	lemmas := s.Sorted()
	out := make([]string, 0, len(lemmas))
	for _, lemma := range lemmas {
		out = append(out, s.items[lemma])
	}
	return out
}
