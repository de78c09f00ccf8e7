// Package addr is the public entry point to the address parser: the one
// package that wires internal/normalizer, internal/tokenizer,
// internal/grammar, internal/chartparser, internal/disambiguator,
// internal/projector and internal/addrcache together into a single
// Parse call.
package addr

import (
	"context"
	"reflect"

	"github.com/address-parser-ar/internal/addrcache"
	"github.com/address-parser-ar/internal/chartparser"
	"github.com/address-parser-ar/internal/disambiguator"
	"github.com/address-parser-ar/internal/grammar"
	"github.com/address-parser-ar/internal/normalizer"
	"github.com/address-parser-ar/internal/projector"
	"github.com/address-parser-ar/internal/tokenizer"
)

// AddressResult and DoorNumber are re-exported verbatim from
// internal/projector: projection is the component that builds them, and
// there is no reason for this facade to keep a second copy of the type.
type AddressResult = projector.AddressResult
type DoorNumber = projector.DoorNumber

// Parser holds the fixed grammar and a pluggable skeleton cache. A zero
// Parser is not usable; build one with New.
type Parser struct {
	grammar *grammar.Grammar
	cache   addrcache.Cache
}

// Option configures a Parser at construction time.
type Option func(*Parser)

// WithCache overrides the default no-op cache with any Cache
// implementation (internal/addrcache ships in-memory, LRU, Redis, Mongo
// and hybrid tiers).
func WithCache(c addrcache.Cache) Option {
	return func(p *Parser) { p.cache = c }
}

// New builds a Parser. Without WithCache, every Parse call skips the
// parse cache and always runs tokenization and chart parsing fresh.
func New(opts ...Option) *Parser {
	p := &Parser{grammar: grammar.New(), cache: addrcache.NoCache{}}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse runs the full pipeline over one free-form address line:
// normalize, tokenize, look up or compute the winning parse tree
// skeleton, then project it against this input's own surface tokens. A
// line the pipeline cannot resolve — unrecognized fragment, no
// derivation, or a tie between top-ranked derivations that project to
// different results — comes back as the zero AddressResult (Kind == "").
func (p *Parser) Parse(ctx context.Context, line string) AddressResult {
	normalized := normalizer.Normalize(line)
	seq, ok := tokenizer.Tokenize(normalized)
	if !ok {
		return AddressResult{}
	}

	key := addrcache.Key(seq.Categories)
	if entry, found, err := p.cache.Get(ctx, key); err == nil && found {
		if entry.Tree == nil {
			return AddressResult{}
		}
		return projector.Project(entry.Tree, seq.Tokens)
	}

	trees := chartparser.Parse(seq.Categories, p.grammar)
	if len(trees) == 0 {
		p.cache.Set(ctx, key, addrcache.Entry{Found: true, Tree: nil})
		return AddressResult{}
	}

	best := disambiguator.BestCandidates(trees)
	if len(best) == 1 {
		p.cache.Set(ctx, key, addrcache.Entry{Found: true, Tree: best[0]})
		return projector.Project(best[0], seq.Tokens)
	}

	// More than one tree survived ranking. Project every candidate and
	// compare: if they all agree on the resulting address, the tie was
	// cosmetic (different trees, same meaning) and the shared result
	// stands. If they disagree, the ambiguity is real and the line is
	// unresolved.
	results := make([]AddressResult, len(best))
	for i, t := range best {
		results[i] = projector.Project(t, seq.Tokens)
	}
	for _, r := range results[1:] {
		if !reflect.DeepEqual(r, results[0]) {
			p.cache.Set(ctx, key, addrcache.Entry{Found: true, Tree: nil})
			return AddressResult{}
		}
	}
	p.cache.Set(ctx, key, addrcache.Entry{Found: true, Tree: best[0]})
	return results[0]
}
