package lexicon

import (
	"strings"
	"unicode"

	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// fold strips diacritics and lower-cases a single token so closed-class
// keyword lookups are tolerant of accent and case variants ("Número" /
// "numero" / "NUMERO") without ever touching the surface text that is
// actually emitted (the normalizer keeps case and accents as they are). If
// the NFD transform chain returns an error, unidecode's ASCII
// transliteration is a coarser fallback for matching purposes only — it
// never reaches the emitted text.
func fold(s string) string {
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMark), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = unidecode.Unidecode(s)
	}
	return strings.ToLower(out)
}

func isMark(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}

// keywordSet is a closed-class keyword table keyed by folded form, built
// once at package init. Lookups fold the candidate the same way, so
// "Avda.", "AVDA.", and "ávda." all resolve to the same entry.
type keywordSet map[string]struct{}

func newKeywordSet(words ...string) keywordSet {
	ks := make(keywordSet, len(words))
	for _, w := range words {
		ks[fold(w)] = struct{}{}
	}
	return ks
}

func (ks keywordSet) has(candidate string) bool {
	_, ok := ks[fold(strings.TrimSuffix(candidate, "."))]
	if ok {
		return true
	}
	_, ok = ks[fold(candidate)]
	return ok
}
