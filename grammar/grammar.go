// Package grammar holds context-free production rules indexed by their
// left-hand side.
package grammar

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/ConAcademy/BuffaloBuffalo/syntax"
)

// DefaultWeight is assigned to rules added without an explicit weight.
const DefaultWeight = 1.0

// Rule is a single production: LHS expands to the RHS symbol sequence.
// Weight is carried as metadata on the rules and the trees derived from
// them; it never changes result order. Rules are immutable once added.
type Rule struct {
	LHS    syntax.Symbol
	RHS    []syntax.Symbol
	Weight float64
}

// String renders the rule in the grammar file format.
func (r *Rule) String() string {
	parts := make([]string, len(r.RHS))
	for i, s := range r.RHS {
		parts[i] = string(s)
	}
	return fmt.Sprintf("%s ::= %s ; %g", r.LHS, strings.Join(parts, " "), r.Weight)
}

// Grammar is an append-only multiset of rules grouped by left-hand side.
// Rules keep their insertion order; downstream code relies on that for
// reproducible result ordering. A populated grammar is immutable during
// parsing and safe for concurrent read-only use.
type Grammar struct {
	rules []*Rule
	byLHS map[syntax.Symbol][]*Rule
}

// New returns an empty grammar.
func New() *Grammar {
	return &Grammar{byLHS: make(map[syntax.Symbol][]*Rule)}
}

// Start returns the parse goal.
func (g *Grammar) Start() syntax.Symbol {
	return syntax.Start
}

// AddRule appends a production. The left-hand side must be a registered
// syntactic category and the right-hand side must be non-empty: epsilon
// rules are not supported, which guarantees every completed derivation
// covers at least one token.
func (g *Grammar) AddRule(lhs syntax.Symbol, rhs []syntax.Symbol, weight float64) error {
	if !lhs.IsNonTerminal() {
		return errors.Errorf("grammar: left-hand side %q is not a syntactic category", lhs)
	}
	if len(rhs) == 0 {
		return errors.Errorf("grammar: empty right-hand side for %q", lhs)
	}
	rule := &Rule{
		LHS:    lhs,
		RHS:    append([]syntax.Symbol(nil), rhs...),
		Weight: weight,
	}
	g.rules = append(g.rules, rule)
	g.byLHS[lhs] = append(g.byLHS[lhs], rule)
	return nil
}

// MustAdd appends a production with the default weight and panics on a
// malformed rule. Malformed rules are a programmer error, so construction
// code for fixed grammars uses this form.
func (g *Grammar) MustAdd(lhs syntax.Symbol, rhs ...syntax.Symbol) {
	if err := g.AddRule(lhs, rhs, DefaultWeight); err != nil {
		panic(err)
	}
}

// RulesFor returns every rule with the given left-hand side, in insertion
// order. The returned slice is shared with the grammar; callers must not
// modify it.
func (g *Grammar) RulesFor(lhs syntax.Symbol) []*Rule {
	return g.byLHS[lhs]
}

// Rules returns all rules in insertion order. The slice is shared.
func (g *Grammar) Rules() []*Rule {
	return g.rules
}

// Has reports whether at least one rule expands lhs.
func (g *Grammar) Has(lhs syntax.Symbol) bool {
	return len(g.byLHS[lhs]) > 0
}

// Len returns the number of rules.
func (g *Grammar) Len() int {
	return len(g.rules)
}
