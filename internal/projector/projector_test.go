package projector

import (
	"testing"

	"github.com/address-parser-ar/internal/chartparser"
	"github.com/address-parser-ar/internal/disambiguator"
	"github.com/address-parser-ar/internal/grammar"
	"github.com/address-parser-ar/internal/tokenizer"
)

func parseBest(t *testing.T, line string) (*chartparser.Node, []tokenizer.Token) {
	t.Helper()
	seq, ok := tokenizer.Tokenize(line)
	if !ok {
		t.Fatalf("Tokenize(%q) failed", line)
	}
	g := grammar.New()
	trees := chartparser.Parse(seq.Categories, g)
	if len(trees) == 0 {
		t.Fatalf("no derivation for %q (categories %v)", line, seq.Categories)
	}
	best := disambiguator.BestCandidates(trees)
	if len(best) != 1 {
		t.Fatalf("expected a unique winner for %q, got %d", line, len(best))
	}
	return best[0], seq.Tokens
}

func TestProjectSimpleWithDoorNumber(t *testing.T) {
	tree, tokens := parseBest(t, "Sarmiento N° 1100")
	result := Project(tree, tokens)

	if result.Kind != "simple" {
		t.Fatalf("kind = %s, want simple", result.Kind)
	}
	if got := result.StreetNames; len(got) != 1 || got[0] != "Sarmiento" {
		t.Errorf("street_names = %v, want [Sarmiento]", got)
	}
	if result.DoorNumber == nil {
		t.Fatal("expected a door number")
	}
	if result.DoorNumber.Unit == nil || *result.DoorNumber.Unit != "N°" {
		t.Errorf("door unit = %v, want N°", result.DoorNumber.Unit)
	}
	if result.DoorNumber.Value != "1100" {
		t.Errorf("door value = %q, want 1100", result.DoorNumber.Value)
	}
	if result.Floor != nil {
		t.Errorf("floor = %v, want nil", result.Floor)
	}
}

func TestProjectIntersection(t *testing.T) {
	tree, tokens := parseBest(t, "Tucumán y 9 de Julio")
	result := Project(tree, tokens)

	if result.Kind != "intersection" {
		t.Fatalf("kind = %s, want intersection", result.Kind)
	}
	want := []string{"Tucumán", "9 de Julio"}
	if len(result.StreetNames) != len(want) {
		t.Fatalf("street_names = %v, want %v", result.StreetNames, want)
	}
	for i, w := range want {
		if result.StreetNames[i] != w {
			t.Errorf("street_names[%d] = %q, want %q", i, result.StreetNames[i], w)
		}
	}
}

func TestProjectNeverInventsCharacters(t *testing.T) {
	tree, tokens := parseBest(t, "Ruta 33 s/n Villa Chacón")
	result := Project(tree, tokens)

	joined := ""
	for _, s := range result.StreetNames {
		joined += s
	}
	if result.DoorNumber != nil {
		joined += result.DoorNumber.Value
	}

	surface := ""
	for _, tok := range tokens {
		surface += tok.Surface
	}

	for _, r := range joined {
		if r == ' ' {
			continue
		}
		found := false
		for _, s := range surface {
			if s == r {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("projected rune %q not present in any surface token", r)
		}
	}
}
