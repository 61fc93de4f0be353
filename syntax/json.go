package syntax

import "encoding/json"

type jsonNode struct {
	Symbol   string      `json:"symbol"`
	Word     string      `json:"word,omitempty"`
	Span     [2]int      `json:"span"`
	Children []*jsonNode `json:"children,omitempty"`
}

// MarshalJSON serializes the node in the shape the tree visualizer
// consumes: {symbol, word?, span: [start, end), children?}.
func (n *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.toJSON())
}

func (n *Node) toJSON() *jsonNode {
	jn := &jsonNode{
		Symbol: string(n.Symbol),
		Word:   n.Word,
		Span:   [2]int{n.Span.Start, n.Span.End},
	}
	for _, c := range n.Children {
		jn.Children = append(jn.Children, c.toJSON())
	}
	return jn
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (n *Node) UnmarshalJSON(data []byte) error {
	var jn jsonNode
	if err := json.Unmarshal(data, &jn); err != nil {
		return err
	}
	*n = *jn.toNode()
	return nil
}

func (jn *jsonNode) toNode() *Node {
	n := &Node{
		Symbol: Symbol(jn.Symbol),
		Word:   jn.Word,
		Span:   Span{Start: jn.Span[0], End: jn.Span[1]},
	}
	for _, c := range jn.Children {
		n.Children = append(n.Children, c.toNode())
	}
	return n
}
