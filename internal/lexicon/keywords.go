package lexicon

// Closed-class keyword tables, one per category that is recognized by
// dictionary lookup rather than by shape. Each is folded (accent/case
// insensitive) at lookup time via keywordSet.has.

var streetTypeShort = newKeywordSet(
	"av", "av.", "avda", "avda.", "bv", "bv.", "blvd", "pje", "pje.",
	"cno", "cno.", "diag", "diag.",
)

var streetTypeLong = newKeywordSet(
	"avenida", "bulevar", "boulevard", "calle", "pasaje", "camino",
	"diagonal", "rotonda", "peatonal", "costanera",
)

var routeWords = newKeywordSet(
	"ruta", "rn", "rp", "autopista", "autovia", "autovía",
)

var groundFloorWords = newKeywordSet("pb", "p.b", "p.b.", "planta baja")

var doorTypeWords = newKeywordSet("dpto", "dpto.", "depto", "depto.", "dto", "dto.")

var floorWords = newKeywordSet("piso")

var kmWords = newKeywordSet("km", "km.")

var numLabelShort = newKeywordSet("n°", "nº", "n º", "n°.")

var numLabelLong = newKeywordSet("nro", "nro.", "numero", "número", "num", "num.")

var isctSepWords = newKeywordSet("esq", "esq.", "esquina", "/")

var btwnSepWords = newKeywordSet("e/")

var betweenWord = newKeywordSet("entre")

var andWordWords = newKeywordSet("y", "e")

var ofWord = newKeywordSet("de")

var missingNameWords = newKeywordSet("s/nombre", "s/nombre.")

var missingNumWords = newKeywordSet("s/n", "s/n.")

var missingNumLabelWords = newKeywordSet("s/nro", "s/nro.", "s/num", "s/num.", "s/número", "s/numero")

// shortPrefixWords collects every closed-class keyword short enough that a
// glued "<keyword><digits>" fragment (Av1200, N1331, Km3) is worth
// splitting on; the normalizer uses this to implement the letter-run
// glued-to-digit-run rewrite without duplicating the keyword tables.
var shortPrefixWords = newKeywordSet(
	"av", "av.", "avda", "avda.", "bv", "bv.", "blvd", "pje", "pje.",
	"cno", "cno.", "diag", "diag.", "ruta", "rn", "rp", "km", "km.",
	"n", "nro", "nro.", "dpto", "dpto.", "depto", "depto.", "dto", "dto.",
	"piso", "pb",
)

// IsKnownShortPrefix reports whether candidate (folded, trailing dot
// tolerated) is one of the closed-class tokens short enough to glue onto a
// following number in raw input (e.g. "Av1200", "N1331", "Km3").
func IsKnownShortPrefix(candidate string) bool {
	return shortPrefixWords.has(candidate)
}
