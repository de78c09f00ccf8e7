// Package tokenizer splits a normalized address line into whitespace
// fragments and assigns each one a lexical category from internal/lexicon.
package tokenizer

import (
	"strings"

	"github.com/address-parser-ar/internal/lexicon"
)

// Token is a single lexical unit: its literal surface text, the category
// the matcher assigned it, and its position in the sequence.
type Token struct {
	Surface  string
	Category lexicon.Category
	Position int
}

// Sequence is the result of tokenizing one normalized line: the ordered
// tokens, plus the parallel category tuple that feeds the grammar and the
// parse cache key.
type Sequence struct {
	Tokens     []Token
	Categories []lexicon.Category
}

// Tokenize splits normalized on whitespace and classifies every fragment.
// It reports ok=false the moment a fragment matches no lexical category,
// per the tokenizer's all-or-nothing contract: one unrecognized fragment
// fails the whole input.
func Tokenize(normalized string) (Sequence, bool) {
	fields := strings.Fields(normalized)
	if len(fields) == 0 {
		return Sequence{}, false
	}
	seq := Sequence{
		Tokens:     make([]Token, 0, len(fields)),
		Categories: make([]lexicon.Category, 0, len(fields)),
	}
	for i, fragment := range fields {
		cat, ok := lexicon.Classify(fragment)
		if !ok {
			return Sequence{}, false
		}
		seq.Tokens = append(seq.Tokens, Token{Surface: fragment, Category: cat, Position: i})
		seq.Categories = append(seq.Categories, cat)
	}
	return seq, true
}
