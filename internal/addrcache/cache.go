// Package addrcache implements the parse-tree skeleton cache described by
// SPEC_FULL.md §4.7: an associative store keyed by a token-category
// signature, holding the winning parse tree's skeleton (shape and leaf
// positions, no surface text) so identical category sequences can skip
// straight to projection. The pipeline treats a missing key the same as
// "not yet computed" and must tolerate any container the caller supplies,
// including ones with eviction. Values are bare tree skeletons, never whole
// AddressResult documents.
package addrcache

import (
	"context"
	"strings"

	"github.com/address-parser-ar/internal/chartparser"
	"github.com/address-parser-ar/internal/lexicon"
)

// Entry is one cache value. Found distinguishes "resolved to no winning
// tree" (Tree == nil, Found == true — the input is a known unknown, and
// repeated lookups of it must stay fast) from "never computed" (the
// Cache.Get call itself returns ok == false).
type Entry struct {
	Tree  *chartparser.Node
	Found bool
}

// Cache is the pluggable skeleton store. Implementations may be bounded,
// evicting, distributed, or durable; the pipeline only ever needs Get/Set.
type Cache interface {
	Get(ctx context.Context, key string) (Entry, bool, error)
	Set(ctx context.Context, key string, entry Entry) error
}

// Key builds the cache key from a token-category sequence: the tuple of
// categories, nothing else. Two inputs with identical category sequences
// — even with entirely different surface text — share a key and, by
// construction, a winning tree skeleton.
func Key(categories []lexicon.Category) string {
	parts := make([]string, len(categories))
	for i, c := range categories {
		parts[i] = string(c)
	}
	return strings.Join(parts, "\x1f")
}

// NoCache is the zero-configuration default: every lookup misses, every
// store is a no-op. It satisfies Cache so a Parser can always be
// constructed without a cache argument.
type NoCache struct{}

func (NoCache) Get(context.Context, string) (Entry, bool, error) { return Entry{}, false, nil }
func (NoCache) Set(context.Context, string, Entry) error         { return nil }
