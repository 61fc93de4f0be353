// Package syntax defines the shared vocabulary of the parser: grammatical
// symbols, parse nodes and trees, and the canonical serialization used to
// detect duplicate derivations.
package syntax

import "sync"

// Symbol is a grammatical symbol: either a terminal (a part-of-speech tag
// assigned directly to words) or a non-terminal (a syntactic category
// expanded by grammar rules). The two sets are disjoint; membership in the
// category registry decides, not the shape of the symbol.
type Symbol string

// Start is the parse goal. A complete parse derives Start over the whole
// token sequence.
const Start Symbol = "S"

var (
	categoryMu sync.RWMutex

	// The standard English categories. Grammar files may declare more via
	// the %categories directive.
	categories = map[Symbol]bool{
		"S":   true,
		"NP":  true,
		"VP":  true,
		"PP":  true,
		"RRC": true,
	}
)

// RegisterCategories adds syntactic categories to the non-terminal set.
// Loaders call this while constructing a grammar; the set must not change
// once parsing has started.
func RegisterCategories(syms ...Symbol) {
	categoryMu.Lock()
	defer categoryMu.Unlock()
	for _, s := range syms {
		categories[s] = true
	}
}

// IsNonTerminal reports whether s is a registered syntactic category.
func (s Symbol) IsNonTerminal() bool {
	categoryMu.RLock()
	defer categoryMu.RUnlock()
	return categories[s]
}

// IsTerminal reports whether s is a part-of-speech tag. Any symbol outside
// the category registry is a terminal.
func (s Symbol) IsTerminal() bool {
	return !s.IsNonTerminal()
}
