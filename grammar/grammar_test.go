package grammar

import (
	"testing"

	"github.com/ConAcademy/BuffaloBuffalo/syntax"
)

func TestAddRuleKeepsInsertionOrder(t *testing.T) {
	g := New()
	g.MustAdd("NP", "DET", "N")
	g.MustAdd("NP", "N")
	g.MustAdd("NP", "ADJ", "N")

	rules := g.RulesFor("NP")
	if len(rules) != 3 {
		t.Fatalf("RulesFor(NP) = %d rules, want 3", len(rules))
	}
	wantFirst := []syntax.Symbol{"DET", "N"}
	for i, sym := range wantFirst {
		if rules[0].RHS[i] != sym {
			t.Errorf("first rule RHS[%d] = %s, want %s", i, rules[0].RHS[i], sym)
		}
	}
	if len(rules[1].RHS) != 1 || rules[1].RHS[0] != "N" {
		t.Errorf("second rule = %v, want [N]", rules[1].RHS)
	}
}

func TestAddRuleRejectsTerminalLHS(t *testing.T) {
	g := New()
	if err := g.AddRule("DET", []syntax.Symbol{"N"}, DefaultWeight); err == nil {
		t.Error("expected error for terminal left-hand side")
	}
}

func TestAddRuleRejectsEmptyRHS(t *testing.T) {
	g := New()
	if err := g.AddRule("NP", nil, DefaultWeight); err == nil {
		t.Error("expected error for empty right-hand side")
	}
}

func TestParseString(t *testing.T) {
	g, err := ParseString(`
		# determiners optional
		S  ::= NP VP
		NP ::= DET N ; 0.75 | N ; 0.25
	`)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	if g.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", g.Len())
	}

	np := g.RulesFor("NP")
	if len(np) != 2 {
		t.Fatalf("RulesFor(NP) = %d rules, want 2", len(np))
	}
	if np[0].Weight != 0.75 {
		t.Errorf("first NP weight = %g, want 0.75", np[0].Weight)
	}
	if np[1].Weight != 0.25 {
		t.Errorf("second NP weight = %g, want 0.25", np[1].Weight)
	}
	if !g.Has("S") {
		t.Error("Has(S) = false, want true")
	}
}

func TestParseStringCategoriesDirective(t *testing.T) {
	_, err := ParseString(`
		%categories XP
		XP ::= N
	`)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	if !syntax.Symbol("XP").IsNonTerminal() {
		t.Error("XP should be registered as a category")
	}
}

func TestParseStringErrors(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"missing arrow", "S NP VP"},
		{"bad weight", "S ::= NP VP ; heavy"},
		{"empty alternative", "S ::= NP | "},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseString(tc.text); err == nil {
				t.Errorf("ParseString(%q) succeeded, want error", tc.text)
			}
		})
	}
}

func TestRuleString(t *testing.T) {
	g := New()
	if err := g.AddRule("S", []syntax.Symbol{"NP", "VP"}, 0.5); err != nil {
		t.Fatalf("AddRule: %v", err)
	}
	got := g.Rules()[0].String()
	want := "S ::= NP VP ; 0.5"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
