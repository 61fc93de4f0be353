package parse

import "github.com/ConAcademy/BuffaloBuffalo/syntax"

// deriv is one concrete realization of an item's matched prefix: the child
// nodes for every symbol before the dot, plus the product of the weights of
// the rules applied inside those children.
type deriv struct {
	children []*syntax.Node
	weight   float64
}

// extractor enumerates concrete trees from the provenance edges left in the
// chart. One extractor serves one parse call.
type extractor struct {
	run   *run
	limit int

	// seen maps canonical serializations to dedupe trees: many distinct
	// derivations collapse onto the same shape when tokens repeat.
	seen map[string]bool

	// onPath holds the item ids currently being expanded on the active
	// recursion path. Revisiting one means a self-referential derivation;
	// that path contributes nothing rather than recursing forever.
	onPath map[int]bool

	trees []*syntax.Tree
}

// extract materializes up to limit distinct trees from the completed start
// items, walking provenance edges backward. Roots arrive in discovery
// order and edges are appended in discovery order, so two runs over the
// same input produce the same trees in the same order.
func (r *run) extract(roots []*item, limit int) []*syntax.Tree {
	e := &extractor{
		run:    r,
		limit:  limit,
		seen:   make(map[string]bool),
		onPath: make(map[int]bool),
	}
	for _, root := range roots {
		if len(e.trees) >= e.limit {
			break
		}
		span := syntax.Span{Start: root.origin, End: root.end}
		for _, d := range e.expand(root) {
			node := &syntax.Node{Symbol: root.rule.LHS, Children: d.children, Span: span}
			key := node.Canonical()
			if e.seen[key] {
				continue
			}
			e.seen[key] = true
			e.trees = append(e.trees, &syntax.Tree{
				Root:   node,
				Tokens: r.tokens,
				Weight: root.rule.Weight * d.weight,
			})
			if len(e.trees) >= e.limit {
				break
			}
		}
	}
	return e.trees
}

// expand returns every realization of the item's matched prefix. The count
// is capped at the tree limit per call, which keeps the cross-product
// enumeration bounded even when ambiguity explodes below the root.
func (e *extractor) expand(it *item) []deriv {
	if it.dot == 0 {
		// A hypothesis bottoms out as the single empty prefix.
		return []deriv{{weight: 1}}
	}
	if e.onPath[it.id] {
		return nil
	}
	e.onPath[it.id] = true
	defer delete(e.onPath, it.id)

	var out []deriv
	for _, ed := range it.edges {
		prefixes := e.expand(e.run.arena[ed.prev])

		if ed.completed < 0 {
			// Leaf edge: the dot advanced over a terminal.
			leaf := &syntax.Node{
				Symbol: it.rule.RHS[it.dot-1],
				Word:   ed.word,
				Span:   syntax.Span{Start: it.end - 1, End: it.end},
			}
			for _, p := range prefixes {
				out = append(out, deriv{children: appendChild(p.children, leaf), weight: p.weight})
				if len(out) >= e.limit {
					return out
				}
			}
			continue
		}

		// Branch edge: the dot advanced over the category derived by the
		// completed item. Every realization of the completed item pairs
		// with every realization of the prefix.
		done := e.run.arena[ed.completed]
		childSpan := syntax.Span{Start: done.origin, End: done.end}
		for _, c := range e.expand(done) {
			child := &syntax.Node{Symbol: done.rule.LHS, Children: c.children, Span: childSpan}
			childWeight := done.rule.Weight * c.weight
			for _, p := range prefixes {
				out = append(out, deriv{
					children: appendChild(p.children, child),
					weight:   p.weight * childWeight,
				})
				if len(out) >= e.limit {
					return out
				}
			}
		}
	}
	return out
}

// appendChild copies the prefix before extending it; prefixes are shared
// between alternatives and must not alias each other's backing arrays.
func appendChild(prefix []*syntax.Node, child *syntax.Node) []*syntax.Node {
	out := make([]*syntax.Node, len(prefix)+1)
	copy(out, prefix)
	out[len(prefix)] = child
	return out
}
