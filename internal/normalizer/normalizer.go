// Package normalizer applies a fixed ordered sequence of regex rewrites to
// a raw Argentine address line: each step is a small, named, independently
// testable transformation, and the steps run in a fixed order because later
// steps assume the shape earlier steps produce.
//
// The normalizer never fails; at worst it returns the trimmed input. It
// never lower-cases and never strips accents — the projector downstream
// must be able to reconstruct literal surface text, so every character it
// might emit has to survive normalization untouched.
package normalizer

import (
	"regexp"
	"strings"

	"github.com/address-parser-ar/internal/lexicon"
)

var (
	reWhitespace = regexp.MustCompile(`\s+`)
	reStrayPunct = regexp.MustCompile(`[,;]+`)
	reGluedSep   = regexp.MustCompile(`(?i)\b(e/)(\S)`)

	// A known short prefix (street-type, route, number-label, km, door-type,
	// floor or ground-level keyword) glued directly to a following digit
	// run: "Av1200", "N1331", "Km3".
	reShortPrefixDigits = regexp.MustCompile(`(?i)^(\p{L}+\.?)([0-9]+.*)$`)

	// An ordinal marker glued directly to a single trailing letter:
	// "2ndoB" -> "2ndo B".
	reOrdinalGluedLetter = regexp.MustCompile(`(?i)^([0-9]{1,2}(?:ro|do|er|to|mo|ndo|ero|vo)\.?)(\p{L})$`)

	// A bare digit run glued directly to a letter run longer than one
	// character, or to a single letter after more than two digits — the
	// NUMS_LETTER exception (one or two digits + exactly one letter) is
	// deliberately excluded so "12C"/"2B" remain glued.
	reDigitsGluedLongLetters = regexp.MustCompile(`^([0-9]{3,})(\p{L}+)$|^([0-9]{1,2})(\p{L}{2,})$`)
)

// Normalize runs the fixed rewrite pipeline over raw and returns the
// cleaned string. It is total: every input, including the empty string,
// produces a (possibly empty) result without error.
func Normalize(raw string) string {
	s := raw
	s = collapseWhitespace(s)
	s = stripStrayPunctuation(s)
	s = splitGluedSeparators(s)
	s = splitGluedFragments(s)
	s = collapseWhitespace(s)
	return s
}

// step 1: collapse runs of whitespace to single spaces and trim the ends.
func collapseWhitespace(s string) string {
	return strings.TrimSpace(reWhitespace.ReplaceAllString(s, " "))
}

// step 2: drop punctuation that never appears inside a component. Trailing
// abbreviation dots ("Av.", "esq.", "N°.") are deliberately left alone; the
// lexicon's keyword lookup already tolerates an optional trailing dot, so
// guessing at abbreviation boundaries here would only risk eating a dot
// that belongs to a token the tokenizer needs verbatim.
func stripStrayPunctuation(s string) string {
	return reStrayPunct.ReplaceAllString(s, " ")
}

// step 3: separators that are themselves glued to the text they introduce
// ("e/25") get a space inserted after them, so the tokenizer sees two
// fragments instead of one unclassifiable one.
func splitGluedSeparators(s string) string {
	return reGluedSep.ReplaceAllString(s, "${1} ${2}")
}

// step 4: split a glued "<prefix><digits>" or "<digits><suffix>" run into
// two fragments, one per field, so each can be classified independently —
// except the NUMS_LETTER shape (one or two digits plus a single trailing
// letter), which must stay glued for the tokenizer to recognize it as one
// token.
func splitGluedFragments(s string) string {
	fields := strings.Fields(s)
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		out = append(out, splitGluedFragment(f)...)
	}
	return strings.Join(out, " ")
}

func splitGluedFragment(f string) []string {
	// A complete ordinal ("2ndo", "3er") is one token, not digits + letters.
	if cat, ok := lexicon.Classify(f); ok && cat == lexicon.ORDINAL {
		return []string{f}
	}
	if m := reOrdinalGluedLetter.FindStringSubmatch(f); m != nil {
		return []string{m[1], m[2]}
	}
	if m := reShortPrefixDigits.FindStringSubmatch(f); m != nil && lexicon.IsKnownShortPrefix(m[1]) {
		return []string{m[1], m[2]}
	}
	if m := reDigitsGluedLongLetters.FindStringSubmatch(f); m != nil {
		if m[1] != "" {
			return []string{m[1], m[2]}
		}
		return []string{m[3], m[4]}
	}
	return []string{f}
}
