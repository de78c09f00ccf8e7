// Package disambiguator ranks the complete parse trees the chart parser
// enumerates for one input and selects the best, by the three-key
// lexicographic ranking: unnamed-street count, door-number presence, and a
// kind bias conditioned on that presence.
package disambiguator

import "github.com/address-parser-ar/internal/chartparser"

const (
	labelAddress       = "address"
	labelUnnamedStreet = "unnamed_street"
	labelDoorNumber    = "door_number"
)

// key is the ranking tuple, most-significant field first. Go's struct
// comparison and a simple field-by-field greater-than give exactly the
// lexicographic order the ranking needs.
type key struct {
	unnamedStreetCount int
	hasDoorNumber      bool
	kindScore          int
}

func (a key) greaterThan(b key) bool {
	if a.unnamedStreetCount != b.unnamedStreetCount {
		return a.unnamedStreetCount > b.unnamedStreetCount
	}
	if a.hasDoorNumber != b.hasDoorNumber {
		return a.hasDoorNumber
	}
	return a.kindScore > b.kindScore
}

func (a key) equal(b key) bool {
	return a == b
}

// Kind returns the top-level alternative a tree derives ("between",
// "intersection", or "simple").
func Kind(tree *chartparser.Node) string {
	if tree == nil || tree.Label != labelAddress || len(tree.Children) != 1 {
		return ""
	}
	return tree.Children[0].Label
}

func rankKey(tree *chartparser.Node) key {
	kind := Kind(tree)
	hasDoor := tree.CountAll(labelDoorNumber) > 0
	return key{
		unnamedStreetCount: tree.CountAll(labelUnnamedStreet),
		hasDoorNumber:      hasDoor,
		kindScore:          kindScore(kind, hasDoor),
	}
}

func kindScore(kind string, hasDoorNumber bool) int {
	var order []string
	if hasDoorNumber {
		order = []string{"intersection", "simple", "between"}
	} else {
		order = []string{"simple", "intersection", "between"}
	}
	for i, k := range order {
		if k == kind {
			return i
		}
	}
	return -1
}

// BestCandidates returns the subset of trees achieving the maximum ranking
// key, in the parser's original deterministic enumeration order. The
// caller (pkg/addr) decides what to do when more than one tree survives:
// per the tie-break rule, a genuine single winner after projection is
// still usable, while two trees that project to different results are a
// true ambiguity and must be reported as unknown.
func BestCandidates(trees []*chartparser.Node) []*chartparser.Node {
	if len(trees) == 0 {
		return nil
	}
	best := rankKey(trees[0])
	candidates := []*chartparser.Node{trees[0]}
	for _, t := range trees[1:] {
		k := rankKey(t)
		switch {
		case k.greaterThan(best):
			best = k
			candidates = []*chartparser.Node{t}
		case k.equal(best):
			candidates = append(candidates, t)
		}
	}
	return candidates
}
