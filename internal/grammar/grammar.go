// Package grammar defines the fixed context-free grammar describing the
// admissible shapes of an Argentine postal address over the lexical
// categories in internal/lexicon. The grammar never refers to surface
// text, only categories, which is what lets two inputs sharing a category
// sequence share a cached parse-tree skeleton.
package grammar

import "github.com/address-parser-ar/internal/lexicon"

// Start is the grammar's start symbol.
const Start = "address"

// Rule is one production LHS -> RHS. Every symbol in RHS is either a
// nonterminal name (matched against the grammar's own rules) or a lexical
// category (matched against a single token). No rule has an empty RHS:
// the grammar has no nullable symbols, which keeps the chart parser free
// of epsilon-closure bookkeeping.
type Rule struct {
	LHS string
	RHS []string
}

// Grammar is the fixed rule set plus a lookup index built once at
// construction time, in the fixed order Rules lists them.
type Grammar struct {
	Rules   []Rule
	byLHS   map[string][]Rule
	termSet map[string]lexicon.Category
}

// New builds the grammar described in rules.go.
func New() *Grammar {
	g := &Grammar{Rules: addressRules()}
	g.byLHS = make(map[string][]Rule)
	for _, r := range g.Rules {
		g.byLHS[r.LHS] = append(g.byLHS[r.LHS], r)
	}
	g.termSet = make(map[string]lexicon.Category, len(lexicon.All))
	for _, c := range lexicon.All {
		g.termSet[string(c)] = c
	}
	return g
}

// RulesFor returns the productions for a nonterminal, in the fixed
// declaration order from rules.go.
func (g *Grammar) RulesFor(lhs string) []Rule {
	return g.byLHS[lhs]
}

// IsTerminal reports whether sym is a lexical category rather than a
// nonterminal name.
func (g *Grammar) IsTerminal(sym string) bool {
	_, ok := g.termSet[sym]
	return ok
}

// Nonterminals lists every distinct LHS, in first-declared order —
// deterministic, never derived from a map range.
func (g *Grammar) Nonterminals() []string {
	seen := make(map[string]bool, len(g.byLHS))
	var out []string
	for _, r := range g.Rules {
		if !seen[r.LHS] {
			seen[r.LHS] = true
			out = append(out, r.LHS)
		}
	}
	return out
}
