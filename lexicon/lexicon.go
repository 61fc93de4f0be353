// Package lexicon stores the word table: every reading of every known word,
// keyed case-insensitively. The table is purely static — nothing is ever
// inferred from morphology, and lookups never synthesize entries.
package lexicon

import (
	"sort"
	"strings"

	"github.com/ConAcademy/BuffaloBuffalo/syntax"
)

// Entry is one reading of a word: its part-of-speech tag, the canonical
// (dictionary) form, and optional grammatical features such as number or
// tense.
type Entry struct {
	Word      string
	POS       syntax.Symbol
	Canonical string
	Features  map[string]string
}

// Lexicon maps lowercased word forms to their readings. A populated lexicon
// is immutable during parsing and safe for concurrent read-only use.
type Lexicon struct {
	entries map[string][]*Entry
}

// New returns an empty lexicon.
func New() *Lexicon {
	return &Lexicon{entries: make(map[string][]*Entry)}
}

// Add appends a reading. Existing readings of the same word are kept: a
// word may simultaneously be a noun, a verb, and anything else its entries
// say. An empty canonical form defaults to the lowercased word.
func (l *Lexicon) Add(e Entry) {
	if e.Canonical == "" {
		e.Canonical = strings.ToLower(e.Word)
	}
	key := strings.ToLower(e.Word)
	l.entries[key] = append(l.entries[key], &e)
}

// AddWord appends a bare (word, tag) reading.
func (l *Lexicon) AddWord(word string, pos syntax.Symbol) {
	l.Add(Entry{Word: word, POS: pos})
}

// Lookup returns every reading of word, matched case-insensitively, in the
// order the readings were added. Unknown words get an empty slice, not an
// error. The slice is shared with the lexicon; callers must not modify it.
func (l *Lexicon) Lookup(word string) []*Entry {
	return l.entries[strings.ToLower(word)]
}

// Has reports whether the lexicon records any reading of word.
func (l *Lexicon) Has(word string) bool {
	return len(l.Lookup(word)) > 0
}

// Words returns every known word form, sorted.
func (l *Lexicon) Words() []string {
	words := make([]string, 0, len(l.entries))
	for w := range l.entries {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// Len returns the number of distinct word forms.
func (l *Lexicon) Len() int {
	return len(l.entries)
}
