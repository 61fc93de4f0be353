// Package parse implements the chart parser at the heart of the system.
// Given a grammar, a lexicon, and a token sequence, it computes every
// syntactically valid parse tree using the Earley predict/scan/complete
// procedure, deduplicates structurally identical derivations, and caps the
// result set against combinatorial explosion.
package parse

import (
	"errors"

	"github.com/ConAcademy/BuffaloBuffalo/grammar"
	"github.com/ConAcademy/BuffaloBuffalo/lexicon"
	"github.com/ConAcademy/BuffaloBuffalo/syntax"
)

// MaxTrees is the default bound on how many distinct trees one parse may
// return. Ambiguity grows combinatorially with sentence length on
// pathological inputs (a sentence made of one repeated word is the worst
// case); everything past the cap is silently dropped.
const MaxTrees = 100

var (
	// ErrEmptyInput is returned for a zero-length token sequence.
	ErrEmptyInput = errors.New("Empty input")

	// ErrNoParse is returned when the grammar and lexicon admit no
	// derivation spanning the whole input. It is an expected outcome of
	// well-formed input, not a fault.
	ErrNoParse = errors.New("No valid parse found")
)

// Parser runs parses against one grammar/lexicon pair. All per-call state
// lives in the run type, so a Parser is safe for concurrent use as long as
// the grammar and lexicon are no longer being mutated.
type Parser struct {
	grammar  *grammar.Grammar
	lexicon  *lexicon.Lexicon
	maxTrees int
}

// New returns a parser over the given tables.
func New(g *grammar.Grammar, l *lexicon.Lexicon) *Parser {
	return &Parser{grammar: g, lexicon: l, maxTrees: MaxTrees}
}

// SetMaxTrees overrides the result cap. n must be positive.
func (p *Parser) SetMaxTrees(n int) {
	p.maxTrees = n
}

// Parse computes every distinct parse tree of tokens. The result always
// carries the original tokens; when no tree exists, Result.Err and the
// returned error are ErrEmptyInput or ErrNoParse.
func (p *Parser) Parse(tokens []string) (*syntax.Result, error) {
	res := &syntax.Result{Tokens: tokens}
	if len(tokens) == 0 {
		res.Err = ErrEmptyInput
		return res, ErrEmptyInput
	}

	r := &run{parser: p, tokens: tokens}
	roots := r.fill()
	res.Trees = r.extract(roots, p.maxTrees)
	if len(res.Trees) == 0 {
		res.Err = ErrNoParse
		return res, ErrNoParse
	}
	return res, nil
}

// run is the state of a single parse call: the chart, the item arena the
// provenance edges index into, and the tokens being parsed. Nothing in it
// survives the call.
type run struct {
	parser *Parser
	tokens []string
	chart  []*column
	arena  []*item
}

// fill builds the chart and returns the completed start items spanning the
// whole input, in discovery order.
func (r *run) fill() []*item {
	n := len(r.tokens)
	r.chart = make([]*column, n+1)
	for i := range r.chart {
		r.chart[i] = newColumn()
	}

	start := r.parser.grammar.Start()
	for _, rule := range r.parser.grammar.RulesFor(start) {
		r.chart[0].add(&r.arena, rule, 0, 0, 0)
	}

	for i := 0; i <= n; i++ {
		col := r.chart[i]
		// The column grows while it is being walked; iterate by index.
		for j := 0; j < len(col.items); j++ {
			it := col.items[j]
			switch {
			case it.isComplete():
				r.complete(i, it)
			case it.next().IsNonTerminal():
				r.predict(i, it)
			case i < n:
				r.scan(i, it)
			}
		}
	}

	var roots []*item
	for _, it := range r.chart[n].items {
		if it.rule.LHS == start && it.origin == 0 && it.isComplete() {
			roots = append(roots, it)
		}
	}
	return roots
}

// predict seeds the current column with a fresh hypothesis for every
// expansion of the expected category. Hypotheses carry no provenance.
func (r *run) predict(pos int, it *item) {
	for _, rule := range r.parser.grammar.RulesFor(it.next()) {
		r.chart[pos].add(&r.arena, rule, 0, pos, pos)
	}
}

// scan consumes the token at pos: for every lexicon reading whose tag
// matches the expected terminal, the item advances into the next column
// with a leaf edge recording the consumed word. A token with no matching
// reading simply fails to scan; the gap surfaces later as ErrNoParse.
func (r *run) scan(pos int, it *item) {
	want := it.next()
	for _, entry := range r.parser.lexicon.Lookup(r.tokens[pos]) {
		if entry.POS != want {
			continue
		}
		adv, _ := r.chart[pos+1].add(&r.arena, it.rule, it.dot+1, it.origin, pos+1)
		adv.edges = append(adv.edges, edge{prev: it.id, completed: -1, word: r.tokens[pos]})
	}
}

// complete advances every item waiting at the completed item's origin for
// its category, recording a branch edge back to both contributors. Because
// epsilon rules are rejected at construction, done always has positive
// width, so done.origin < pos and the column being read is final.
func (r *run) complete(pos int, done *item) {
	lhs := done.rule.LHS
	for _, waiting := range r.chart[done.origin].items {
		if waiting.isComplete() || waiting.next() != lhs {
			continue
		}
		adv, _ := r.chart[pos].add(&r.arena, waiting.rule, waiting.dot+1, waiting.origin, pos)
		adv.edges = append(adv.edges, edge{prev: waiting.id, completed: done.id})
	}
}
