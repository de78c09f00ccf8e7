package chartparser

import (
	"strconv"
	"strings"

	"github.com/address-parser-ar/internal/grammar"
	"github.com/address-parser-ar/internal/lexicon"
)

// Parse returns every complete derivation of categories under g's start
// symbol, as parse-tree skeletons, in a fixed deterministic order (the
// order in which the chart's fixpoint iteration first discovers each
// distinct derivation — itself determined solely by grammar.Rules'
// declaration order and ascending span length, never by map iteration).
// An empty categories slice, or a sequence with no derivation, yields a
// nil slice: recognition failure is not an error, per the pipeline's
// contract.
func Parse(categories []lexicon.Category, g *grammar.Grammar) []*Node {
	n := len(categories)
	if n == 0 {
		return nil
	}
	p := newParser(categories, g)
	p.fill()
	return p.cellOrNil(0, n)[grammar.Start]
}

type parser struct {
	n     int
	g     *grammar.Grammar
	cats  []lexicon.Category
	cells [][]map[string][]*Node
	seen  [][]map[string]bool
}

func newParser(categories []lexicon.Category, g *grammar.Grammar) *parser {
	n := len(categories)
	p := &parser{n: n, g: g, cats: categories}
	p.cells = make([][]map[string][]*Node, n+1)
	p.seen = make([][]map[string]bool, n+1)
	for i := 0; i <= n; i++ {
		p.cells[i] = make([]map[string][]*Node, n+1)
		p.seen[i] = make([]map[string]bool, n+1)
	}
	return p
}

func (p *parser) cell(i, j int) map[string][]*Node {
	if p.cells[i][j] == nil {
		p.cells[i][j] = make(map[string][]*Node)
		p.seen[i][j] = make(map[string]bool)
	}
	return p.cells[i][j]
}

func (p *parser) cellOrNil(i, j int) map[string][]*Node {
	if p.cells[i][j] == nil {
		return map[string][]*Node{}
	}
	return p.cells[i][j]
}

// fill builds the chart bottom-up, inducting on span length so that every
// nonterminal reference a rule's right-hand side makes to a strictly
// shorter span is already resolved; same-length unit-production chains
// (street -> named_street -> named_street_typed, ...) are resolved by
// iterating each span to a fixpoint.
func (p *parser) fill() {
	nonterminals := p.g.Nonterminals()
	for length := 1; length <= p.n; length++ {
		for start := 0; start+length <= p.n; start++ {
			end := start + length
			for {
				changed := false
				for _, lhs := range nonterminals {
					for _, rule := range p.g.RulesFor(lhs) {
						for _, children := range p.matchRHS(rule.RHS, start, end) {
							node := &Node{Label: lhs, Children: children, Start: start, End: end}
							if p.record(start, end, lhs, node) {
								changed = true
							}
						}
					}
				}
				if !changed {
					break
				}
			}
		}
	}
}

func (p *parser) record(start, end int, lhs string, node *Node) bool {
	c := p.cell(start, end)
	key := lhs + "|" + signature(node)
	if p.seen[start][end][key] {
		return false
	}
	p.seen[start][end][key] = true
	c[lhs] = append(c[lhs], node)
	return true
}

// matchRHS returns every way to partition tokens[start:end) across rhs, in
// the order induced by trying nonterminal sub-matches and split points in
// ascending position.
func (p *parser) matchRHS(rhs []string, start, end int) [][]*Node {
	if len(rhs) == 0 {
		if start == end {
			return [][]*Node{{}}
		}
		return nil
	}
	sym, rest := rhs[0], rhs[1:]
	var out [][]*Node
	if p.g.IsTerminal(sym) {
		if start < end && string(p.cats[start]) == sym {
			leaf := &Node{Label: sym, Start: start, End: start + 1}
			for _, tail := range p.matchRHS(rest, start+1, end) {
				out = append(out, prepend(leaf, tail))
			}
		}
		return out
	}
	for q := start + 1; q <= end; q++ {
		nodes := p.cellOrNil(start, q)[sym]
		for _, sub := range nodes {
			for _, tail := range p.matchRHS(rest, q, end) {
				out = append(out, prepend(sub, tail))
			}
		}
	}
	return out
}

func prepend(head *Node, tail []*Node) []*Node {
	out := make([]*Node, 0, len(tail)+1)
	out = append(out, head)
	out = append(out, tail...)
	return out
}

func signature(n *Node) string {
	var b strings.Builder
	writeSignature(&b, n)
	return b.String()
}

func writeSignature(b *strings.Builder, n *Node) {
	b.WriteString(n.Label)
	if n.IsLeaf() {
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(n.Start))
		return
	}
	b.WriteByte('[')
	for i, c := range n.Children {
		if i > 0 {
			b.WriteByte(',')
		}
		writeSignature(b, c)
	}
	b.WriteByte(']')
}
