package syntax

import (
	"fmt"
	"strings"
)

// Span is a half-open [Start, End) interval of token indexes.
type Span struct {
	Start int
	End   int
}

// Width returns the number of tokens the span covers.
func (s Span) Width() int {
	return s.End - s.Start
}

// Node is one node of a parse tree. A leaf carries the consumed word and
// spans exactly one token; an interior node carries children whose spans
// tile the node's span in order, with no gaps or overlaps.
//
// Trees are read-only once produced. Unambiguous sub-derivations may be
// shared between the trees of one result, so mutating a node corrupts
// every tree that contains it.
type Node struct {
	Symbol   Symbol
	Children []*Node
	Word     string
	Span     Span
}

// IsLeaf reports whether the node is a terminal holding a word.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// Canonical returns the structural form of the subtree, for example
// (S (NP (DET the) (N dog)) (VP (V ran))). Two derivations describe the
// same tree exactly when their canonical forms match.
func (n *Node) Canonical() string {
	var b strings.Builder
	n.writeCanonical(&b)
	return b.String()
}

func (n *Node) writeCanonical(b *strings.Builder) {
	b.WriteByte('(')
	b.WriteString(string(n.Symbol))
	if n.IsLeaf() {
		b.WriteByte(' ')
		b.WriteString(n.Word)
	} else {
		for _, c := range n.Children {
			b.WriteByte(' ')
			c.writeCanonical(b)
		}
	}
	b.WriteByte(')')
}

// String renders the subtree indented, one node per line.
func (n *Node) String() string {
	var b strings.Builder
	n.writeIndented(&b, 0)
	return b.String()
}

func (n *Node) writeIndented(b *strings.Builder, level int) {
	if level > 0 {
		b.WriteByte('\n')
		b.WriteString(strings.Repeat("  ", level))
	}
	if n.IsLeaf() {
		fmt.Fprintf(b, "(%s %s)", n.Symbol, n.Word)
		return
	}
	fmt.Fprintf(b, "(%s", n.Symbol)
	for _, c := range n.Children {
		c.writeIndented(b, level+1)
	}
	b.WriteByte(')')
}

// Tree is one complete parse of a token sequence. Weight is the product of
// the weights of every rule applied in the derivation; it is metadata only
// and never affects result order.
type Tree struct {
	Root   *Node    `json:"root"`
	Tokens []string `json:"tokens"`
	Weight float64  `json:"weight"`
}

// Canonical returns the canonical serialization of the tree's root.
func (t *Tree) Canonical() string {
	return t.Root.Canonical()
}

// Result is what a parse call hands back: the original tokens, every
// distinct tree (possibly none), and the reason when there are none.
type Result struct {
	Tokens []string
	Trees  []*Tree
	Err    error
}
