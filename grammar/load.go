package grammar

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/ConAcademy/BuffaloBuffalo/syntax"
)

// Parse reads a grammar from its text form:
//
//	%categories S NP VP RRC
//	S  ::= NP VP
//	NP ::= DET N ; 0.5 | N ; 0.5
//	# comment
//
// The %categories directive declares the non-terminal set; any symbol not
// declared (or registered beforehand) is a terminal. Alternatives separated
// by | become separate rules in left-to-right order, and the weight after a
// ; defaults to 1.
func Parse(r io.Reader) (*Grammar, error) {
	g := New()
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if rest, ok := strings.CutPrefix(line, "%categories"); ok {
			for _, field := range strings.Fields(rest) {
				syntax.RegisterCategories(syntax.Symbol(field))
			}
			continue
		}
		if err := parseRule(g, line); err != nil {
			return nil, errors.Wrapf(err, "grammar: line %d", lineno)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "grammar: read")
	}
	return g, nil
}

// ParseString is Parse over an in-memory grammar text.
func ParseString(text string) (*Grammar, error) {
	return Parse(strings.NewReader(text))
}

// Load reads a grammar file from disk.
func Load(filename string) (*Grammar, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "grammar: open")
	}
	defer f.Close()
	return Parse(f)
}

func parseRule(g *Grammar, line string) error {
	lhsText, rhsText, ok := strings.Cut(line, "::=")
	if !ok {
		return errors.Errorf("missing ::= in %q", line)
	}
	lhs := syntax.Symbol(strings.TrimSpace(lhsText))
	for _, alt := range strings.Split(rhsText, "|") {
		symbolsText, weightText, hasWeight := strings.Cut(alt, ";")
		weight := DefaultWeight
		if hasWeight {
			var err error
			weight, err = strconv.ParseFloat(strings.TrimSpace(weightText), 64)
			if err != nil {
				return errors.Errorf("bad weight %q in %q", strings.TrimSpace(weightText), line)
			}
		}
		var rhs []syntax.Symbol
		for _, field := range strings.Fields(symbolsText) {
			rhs = append(rhs, syntax.Symbol(field))
		}
		if err := g.AddRule(lhs, rhs, weight); err != nil {
			return err
		}
	}
	return nil
}
