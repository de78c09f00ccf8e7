package addrcache

import "github.com/address-parser-ar/internal/chartparser"

// nodeDoc and entryDoc are the wire/document shapes a skeleton takes when
// it leaves the process — over Redis as JSON, over MongoDB as BSON. They
// exist so internal/chartparser.Node never has to carry storage-specific
// struct tags of its own; the core pipeline stays free of any notion of
// persistence.
type nodeDoc struct {
	Label    string     `json:"label" bson:"label"`
	Start    int        `json:"start" bson:"start"`
	End      int        `json:"end" bson:"end"`
	Children []*nodeDoc `json:"children,omitempty" bson:"children,omitempty"`
}

type entryDoc struct {
	Found bool     `json:"found" bson:"found"`
	Tree  *nodeDoc `json:"tree,omitempty" bson:"tree,omitempty"`
}

func toNodeDoc(n *chartparser.Node) *nodeDoc {
	if n == nil {
		return nil
	}
	d := &nodeDoc{Label: n.Label, Start: n.Start, End: n.End}
	for _, c := range n.Children {
		d.Children = append(d.Children, toNodeDoc(c))
	}
	return d
}

func fromNodeDoc(d *nodeDoc) *chartparser.Node {
	if d == nil {
		return nil
	}
	n := &chartparser.Node{Label: d.Label, Start: d.Start, End: d.End}
	for _, c := range d.Children {
		n.Children = append(n.Children, fromNodeDoc(c))
	}
	return n
}

func toEntryDoc(e Entry) entryDoc    { return entryDoc{Found: e.Found, Tree: toNodeDoc(e.Tree)} }
func fromEntryDoc(d entryDoc) Entry { return Entry{Found: d.Found, Tree: fromNodeDoc(d.Tree)} }
