package lexicon

import "regexp"

var (
	reNum        = regexp.MustCompile(`^[0-9]+$`)
	reDecimal    = regexp.MustCompile(`^[0-9]+[.,][0-9]+$`)
	reNumRange   = regexp.MustCompile(`^[0-9]+[/-][0-9]+$`)
	reNumsLetter = regexp.MustCompile(`^[0-9]{1,2}\p{L}$`)
	reOrdinal    = regexp.MustCompile(`(?i)^[0-9]{1,2}(ro|do|er|to|mo|ndo|ero|vo)\.?$|^[0-9]{1,2}[°º]\.?$`)
	reLetter     = regexp.MustCompile(`^\p{L}$`)
	reWord       = regexp.MustCompile(`^\p{L}[\p{L}'’.\-]*$`)
)

// Classify assigns exactly one Category to a single whitespace-separated
// fragment, trying matchers in a fixed order so the result is deterministic
// and so that more specific closed classes are never shadowed by the WORD
// catch-all. It reports false when no matcher accepts the fragment, which
// per the tokenizer's contract fails the whole input.
func Classify(fragment string) (Category, bool) {
	switch {
	case missingNameWords.has(fragment):
		return MISSING_NAME, true
	case missingNumWords.has(fragment):
		return S_N, true
	case missingNumLabelWords.has(fragment):
		return MISSING_NUM, true
	case fragment == "&":
		return AND_NUM, true
	case isctSepWords.has(fragment):
		return ISCT_SEP, true
	case btwnSepWords.has(fragment):
		return BTWN_SEP, true
	case betweenWord.has(fragment):
		return BETWEEN, true
	case andWordWords.has(fragment):
		return AND_WORD, true
	case fragment == "n" || fragment == "N":
		return N, true
	case groundFloorWords.has(fragment):
		return GROUNDL, true
	case doorTypeWords.has(fragment):
		return DOOR_TYPE, true
	case floorWords.has(fragment):
		return FLOOR, true
	case kmWords.has(fragment):
		return KM, true
	case numLabelShort.has(fragment):
		return NUM_LABEL_S, true
	case numLabelLong.has(fragment):
		return NUM_LABEL_L, true
	case streetTypeShort.has(fragment):
		return STREET_TYPE_S, true
	case streetTypeLong.has(fragment):
		return STREET_TYPE_L, true
	case routeWords.has(fragment):
		return ROUTE, true
	case reOrdinal.MatchString(fragment):
		return ORDINAL, true
	case reNumRange.MatchString(fragment):
		return NUM_RANGE, true
	case reDecimal.MatchString(fragment):
		return DECIMAL, true
	case reNumsLetter.MatchString(fragment):
		return NUMS_LETTER, true
	case reNum.MatchString(fragment):
		return NUM, true
	case reLetter.MatchString(fragment):
		return LETTER, true
	case ofWord.has(fragment):
		return OF, true
	case reWord.MatchString(fragment):
		return WORD, true
	default:
		return "", false
	}
}
