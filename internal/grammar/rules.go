package grammar

import l "github.com/address-parser-ar/internal/lexicon"

// Nonterminal names, kept as constants so a typo becomes a compile error
// in exactly one place (rule construction) instead of a silent dead
// nonterminal.
const (
	nAddress            = "address"
	nBetween            = "between"
	nIntersection       = "intersection"
	nSimple             = "simple"
	nStreet             = "street"
	nStreetStandalone   = "street_standalone"
	nNamedStreet        = "named_street"
	nNamedStreetTyped   = "named_street_typed"
	nUnnamedStreet      = "unnamed_street"
	nStreetNamePart     = "street_name_part"
	nStreetNamePartMult = "street_name_part_multi"
	nStreetNameWord     = "street_name_word"
	nStreetTypeWord     = "street_type_word"
	nDoorNumberBlock    = "door_number_block"
	nDoorNumber         = "door_number"
	nDoorUnit           = "door_unit"
	nDoorValue          = "door_value"
	nFloor              = "floor"
	nFloorShort         = "floor_short"
	nFloorLong          = "floor_long"
	nFloorPart          = "floor_part"
	nFloorPartWord      = "floor_part_word"
	nIsctSep            = "isct_sep"
	nBtwnSep            = "btwn_sep"
	nAndConn            = "and_conn"
	nLocation           = "location"
	nLocationWord       = "location_word"
)

// addressRules returns the fixed CFG, grouped by nonterminal in the order
// described by SPEC_FULL.md §4.3. The grammar is deliberately permissive —
// every legitimate reading reaches the chart, and internal/disambiguator
// alone is responsible for picking among them.
func addressRules() []Rule {
	var rs []Rule
	add := func(lhs string, rhs ...string) {
		rs = append(rs, Rule{LHS: lhs, RHS: rhs})
	}

	add(nAddress, nBetween)
	add(nAddress, nIntersection)
	add(nAddress, nSimple)

	// between: street (entre) street y street, with at most one of the
	// three streets carrying a door number.
	add(nBetween, nStreet, nBtwnSep, nStreet, nAndConn, nStreet)
	add(nBetween, nStreet, nDoorNumberBlock, nBtwnSep, nStreet, nAndConn, nStreet)
	add(nBetween, nStreet, nBtwnSep, nStreet, nDoorNumberBlock, nAndConn, nStreet)
	add(nBetween, nStreet, nBtwnSep, nStreet, nAndConn, nStreet, nDoorNumberBlock)

	// intersection: street (y|esq) street, with at most one side numbered.
	add(nIntersection, nStreet, nIsctSep, nStreet)
	add(nIntersection, nStreet, nDoorNumberBlock, nIsctSep, nStreet)
	add(nIntersection, nStreet, nIsctSep, nStreet, nDoorNumberBlock)

	// simple: one street, optional door number (+floor), optional trailing
	// locality phrase. A bare street with nothing else must be
	// "non-trivial" (street_standalone) so a single generic word never
	// parses as an address on its own.
	add(nSimple, nStreet, nDoorNumberBlock, nLocation)
	add(nSimple, nStreet, nDoorNumberBlock)
	add(nSimple, nStreetStandalone, nLocation)
	add(nSimple, nStreetStandalone)

	add(nStreetStandalone, nNamedStreetTyped)
	add(nStreetStandalone, nStreetNamePartMult)
	add(nStreetStandalone, nUnnamedStreet)

	add(nStreet, nNamedStreet)
	add(nStreet, nUnnamedStreet)

	add(nNamedStreet, nNamedStreetTyped)
	add(nNamedStreet, nStreetNamePart)

	add(nNamedStreetTyped, nStreetTypeWord, nStreetNamePart)
	add(nNamedStreetTyped, nStreetNamePart, nStreetTypeWord)
	add(nNamedStreetTyped, string(l.ROUTE), nStreetNamePart)

	add(nUnnamedStreet, string(l.ROUTE), string(l.NUM))
	add(nUnnamedStreet, string(l.ROUTE), string(l.WORD), string(l.NUM))
	add(nUnnamedStreet, nStreetTypeWord, string(l.NUM))
	add(nUnnamedStreet, string(l.MISSING_NAME))
	add(nUnnamedStreet, nStreetNamePart, string(l.ROUTE), string(l.NUM))

	add(nStreetNamePart, nStreetNameWord)
	add(nStreetNamePart, nStreetNamePart, nStreetNameWord)
	// y/e inside a name ("Vicente Lopez y Planes") always sits between two
	// name words; a name never starts or ends with it.
	add(nStreetNamePart, nStreetNamePart, string(l.AND_WORD), nStreetNameWord)
	add(nStreetNamePartMult, nStreetNamePart, nStreetNameWord)

	add(nStreetNameWord, string(l.WORD))
	add(nStreetNameWord, string(l.NUM))
	add(nStreetNameWord, string(l.OF))
	add(nStreetNameWord, string(l.BETWEEN))
	add(nStreetNameWord, string(l.NUMS_LETTER))

	add(nStreetTypeWord, string(l.STREET_TYPE_S))
	add(nStreetTypeWord, string(l.STREET_TYPE_L))

	add(nDoorNumberBlock, nDoorNumber)
	add(nDoorNumberBlock, nDoorNumber, nFloor)

	add(nDoorNumber, nDoorValue)
	add(nDoorNumber, nDoorUnit, nDoorValue)

	add(nDoorUnit, string(l.N))
	add(nDoorUnit, string(l.NUM_LABEL_S))
	add(nDoorUnit, string(l.NUM_LABEL_L))
	add(nDoorUnit, string(l.KM))

	add(nDoorValue, string(l.NUM))
	add(nDoorValue, string(l.DECIMAL))
	add(nDoorValue, string(l.NUM_RANGE))
	add(nDoorValue, string(l.NUM), string(l.NUM_RANGE))
	add(nDoorValue, string(l.MISSING_NUM))
	add(nDoorValue, string(l.S_N))

	add(nFloor, nFloorLong)
	add(nFloor, nFloorShort)

	add(nFloorShort, string(l.GROUNDL))
	add(nFloorShort, string(l.NUMS_LETTER))

	add(nFloorLong, nFloorPart)
	add(nFloorPart, nFloorPartWord)
	add(nFloorPart, nFloorPart, nFloorPartWord)

	add(nFloorPartWord, string(l.FLOOR))
	add(nFloorPartWord, string(l.NUM))
	add(nFloorPartWord, string(l.ORDINAL))
	add(nFloorPartWord, string(l.GROUNDL))
	add(nFloorPartWord, string(l.DOOR_TYPE))
	add(nFloorPartWord, string(l.LETTER))

	add(nIsctSep, string(l.ISCT_SEP))
	add(nIsctSep, string(l.AND_WORD))

	add(nBtwnSep, string(l.BTWN_SEP))
	add(nBtwnSep, string(l.BETWEEN))

	add(nAndConn, string(l.AND_WORD))
	add(nAndConn, string(l.AND_NUM))

	add(nLocation, nLocationWord)
	add(nLocation, nLocation, nLocationWord)

	add(nLocationWord, string(l.WORD))
	add(nLocationWord, string(l.OF))
	add(nLocationWord, string(l.BETWEEN))

	return rs
}
