// Package wordset provides a case-insensitive set of words.
package wordset

import (
	"sort"
	"strings"
)

// Set stores words case-insensitively. The zero value is not usable; use New.
type Set struct {
	words map[string]struct{}
}

// New returns a Set containing the given words.
func New(words ...string) *Set {
	s := &Set{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		s.Add(w)
	}
	return s
}

// Add inserts a word. Duplicate inserts are no-ops.
func (s *Set) Add(word string) {
	s.words[strings.ToLower(word)] = struct{}{}
}

// Contains reports whether word is in the set.
func (s *Set) Contains(word string) bool {
	_, ok := s.words[strings.ToLower(word)]
	return ok
}

// Len returns the number of distinct words.
func (s *Set) Len() int {
	return len(s.words)
}

// Words returns the stored words in sorted order.
func (s *Set) Words() []string {
	out := make([]string, 0, len(s.words))
	for w := range s.words {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}
