package grammar

import "testing"

func TestNewBuildsLookupIndex(t *testing.T) {
	g := New()
	if len(g.Rules) == 0 {
		t.Fatal("expected a non-empty rule set")
	}
	if rules := g.RulesFor(Start); len(rules) == 0 {
		t.Fatalf("expected productions for start symbol %q", Start)
	}
}

func TestIsTerminalDistinguishesCategoriesFromNonterminals(t *testing.T) {
	g := New()
	if !g.IsTerminal("WORD") {
		t.Error("WORD should be recognized as a terminal")
	}
	if g.IsTerminal(Start) {
		t.Error("address (the start symbol) should not be a terminal")
	}
	if g.IsTerminal("not_a_real_symbol") {
		t.Error("an unknown symbol should not be a terminal")
	}
}

func TestNonterminalsIsDeterministicAndOrdered(t *testing.T) {
	g := New()
	first := g.Nonterminals()
	second := g.Nonterminals()
	if len(first) != len(second) {
		t.Fatalf("non-deterministic nonterminal count: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("non-deterministic order at index %d: %s vs %s", i, first[i], second[i])
		}
	}
	if first[0] != Start {
		t.Errorf("expected start symbol %q declared first, got %q", Start, first[0])
	}
}
