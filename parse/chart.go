package parse

import (
	"fmt"

	"github.com/ConAcademy/BuffaloBuffalo/grammar"
	"github.com/ConAcademy/BuffaloBuffalo/syntax"
)

// item is an Earley item: rule is being matched starting at origin, and the
// symbols before dot are already matched up to end (the column the item
// lives in). id indexes the run's arena so provenance edges can reference
// items cheaply.
type item struct {
	rule   *grammar.Rule
	dot    int
	origin int
	end    int
	id     int

	// edges records every way this item was derived. Items with the dot
	// at zero are hypotheses and have none; all other items have at least
	// one. Multiple edges are the source of ambiguity and are preserved
	// until tree extraction.
	edges []edge
}

// edge is one derivation step into an item. A leaf edge (completed < 0)
// advanced prev over a terminal by consuming word; a branch edge advanced
// prev over the non-terminal derived by the completed item.
type edge struct {
	prev      int
	completed int
	word      string
}

// isComplete reports whether the dot has reached the end of the rule.
func (it *item) isComplete() bool {
	return it.dot >= len(it.rule.RHS)
}

// next returns the symbol after the dot. Only valid on incomplete items.
func (it *item) next() syntax.Symbol {
	return it.rule.RHS[it.dot]
}

func (it *item) String() string {
	return fmt.Sprintf("[%s • %d, %d-%d]", it.rule, it.dot, it.origin, it.end)
}

// itemKey identifies an item within one column. Identical keys are never
// inserted twice; the first insertion's item is the canonical one.
type itemKey struct {
	rule   *grammar.Rule
	dot    int
	origin int
}

// column holds the items whose progress sits at one input position. It is a
// worklist: processing an item may append further items to the same column,
// so traversal must be by growing index, never a snapshot.
type column struct {
	items []*item
	index map[itemKey]*item
}

func newColumn() *column {
	return &column{index: make(map[itemKey]*item)}
}

// add returns the canonical item for (rule, dot, origin), inserting a fresh
// one into the column and the arena if the key is new. The boolean reports
// whether an insertion happened; duplicate derivations of a known key only
// contribute provenance edges on the canonical item.
func (c *column) add(arena *[]*item, rule *grammar.Rule, dot, origin, end int) (*item, bool) {
	key := itemKey{rule: rule, dot: dot, origin: origin}
	if it, ok := c.index[key]; ok {
		return it, false
	}
	it := &item{rule: rule, dot: dot, origin: origin, end: end, id: len(*arena)}
	*arena = append(*arena, it)
	c.index[key] = it
	c.items = append(c.items, it)
	return it, true
}
