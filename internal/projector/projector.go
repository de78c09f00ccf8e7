package projector

import (
	"strings"

	"github.com/address-parser-ar/internal/chartparser"
	"github.com/address-parser-ar/internal/tokenizer"
)

const (
	labelStreet           = "street"
	labelStreetStandalone = "street_standalone"
	labelDoorNumber       = "door_number"
	labelDoorUnit         = "door_unit"
	labelDoorValue        = "door_value"
	labelFloor            = "floor"
	labelLocation         = "location"
)

// Project walks tree (the winning derivation, rooted at "address") and
// builds the AddressResult it encodes, using tokens to recover literal
// surface text for each leaf position. tree and tokens must come from the
// same call: tree's leaf positions index directly into tokens.
func Project(tree *chartparser.Node, tokens []tokenizer.Token) AddressResult {
	if tree == nil || len(tree.Children) == 0 {
		return AddressResult{}
	}
	kindNode := tree.Children[0]
	result := AddressResult{Kind: kindNode.Label}

	var walk func(n *chartparser.Node)
	walk = func(n *chartparser.Node) {
		switch n.Label {
		case labelStreet, labelStreetStandalone:
			result.StreetNames = append(result.StreetNames, surfaceOf(n, tokens))
			return
		case labelDoorNumber:
			if result.DoorNumber == nil {
				result.DoorNumber = projectDoorNumber(n, tokens)
			}
			return
		case labelFloor:
			if result.Floor == nil {
				s := surfaceOf(n, tokens)
				result.Floor = &s
			}
			return
		case labelLocation:
			// Trailing locality phrase: discarded, no exposed field.
			return
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(kindNode)

	return result
}

func projectDoorNumber(n *chartparser.Node, tokens []tokenizer.Token) *DoorNumber {
	d := &DoorNumber{}
	for _, c := range n.Children {
		switch c.Label {
		case labelDoorUnit:
			s := surfaceOf(c, tokens)
			d.Unit = &s
		case labelDoorValue:
			d.Value = surfaceOf(c, tokens)
		}
	}
	return d
}

func surfaceOf(n *chartparser.Node, tokens []tokenizer.Token) string {
	leaves := n.Leaves()
	parts := make([]string, 0, len(leaves))
	for _, leaf := range leaves {
		parts = append(parts, tokens[leaf.Start].Surface)
	}
	return strings.Join(parts, " ")
}
