// Package english ships the grammar and lexicon the application uses out of
// the box: a small English fragment rich enough for determiner/noun/verb
// sentences, prepositional attachment, and the classic eight-buffalo
// sentence built on reduced relative clauses.
package english

import (
	"github.com/ConAcademy/BuffaloBuffalo/grammar"
	"github.com/ConAcademy/BuffaloBuffalo/lexicon"
)

// The weight split inside a category reflects how often each shape shows
// up in the demo corpus; weights ride along on trees as metadata and never
// reorder results.
const grammarText = `
%categories S NP VP PP RRC

S   ::= NP VP

NP  ::= DET N ; 0.3 | N ; 0.2 | ADJ N ; 0.2 | DET ADJ N ; 0.1
NP  ::= NP RRC ; 0.1 | NP PP ; 0.1

VP  ::= V NP ; 0.5 | V ; 0.3 | VP PP ; 0.2

PP  ::= P NP

# A reduced relative clause drops the relative pronoun: "buffalo (that)
# Buffalo buffalo buffalo".
RRC ::= NP V
`

// Grammar returns the built-in English grammar.
func Grammar() *grammar.Grammar {
	g, err := grammar.ParseString(grammarText)
	if err != nil {
		panic(err)
	}
	return g
}

// Lexicon returns the built-in word table. "buffalo" carries all three
// readings: the animal (N), the verb meaning to bully (V), and the city
// used attributively (ADJ).
func Lexicon() *lexicon.Lexicon {
	l := lexicon.New()

	l.AddWord("the", "DET")
	l.AddWord("a", "DET")

	for _, n := range []string{"dog", "cat", "mouse", "park", "police"} {
		l.AddWord(n, "N")
	}

	l.Add(lexicon.Entry{Word: "chased", POS: "V", Canonical: "chase", Features: map[string]string{"tense": "past"}})
	l.Add(lexicon.Entry{Word: "saw", POS: "V", Canonical: "see", Features: map[string]string{"tense": "past"}})
	l.Add(lexicon.Entry{Word: "ran", POS: "V", Canonical: "run", Features: map[string]string{"tense": "past"}})

	l.AddWord("big", "ADJ")
	l.AddWord("small", "ADJ")

	l.AddWord("in", "P")
	l.AddWord("with", "P")

	l.Add(lexicon.Entry{Word: "buffalo", POS: "N"})
	l.Add(lexicon.Entry{Word: "buffalo", POS: "V"})
	l.Add(lexicon.Entry{Word: "buffalo", POS: "ADJ", Canonical: "Buffalo",
		Features: map[string]string{"origin": "place-name"}})

	return l
}
