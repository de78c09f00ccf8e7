package addr

import (
	"context"
	"testing"

	"github.com/address-parser-ar/internal/addrcache"
)

func strPtr(s string) *string { return &s }

func newTestLRUCache(capacity int) (*addrcache.LRUCache, error) {
	return addrcache.NewLRUCache(capacity)
}

func TestParseConcreteScenarios(t *testing.T) {
	p := New()
	ctx := context.Background()

	cases := []struct {
		name  string
		input string
		want  AddressResult
	}{
		{
			name:  "simple with short number label",
			input: "Sarmiento N° 1100",
			want: AddressResult{
				Kind:        "simple",
				StreetNames: []string{"Sarmiento"},
				DoorNumber:  &DoorNumber{Unit: strPtr("N°"), Value: "1100"},
			},
		},
		{
			name:  "between with floor and unit N",
			input: "Av. Libertador N1331 2ndo A e/25 de Mayo y Bartolomé Mitre",
			want: AddressResult{
				Kind:        "between",
				StreetNames: []string{"Av. Libertador", "25 de Mayo", "Bartolomé Mitre"},
				DoorNumber:  &DoorNumber{Unit: strPtr("N"), Value: "1331"},
				Floor:       strPtr("2ndo A"),
			},
		},
		{
			name:  "intersection of two named streets",
			input: "Tucumán y 9 de Julio",
			want: AddressResult{
				Kind:        "intersection",
				StreetNames: []string{"Tucumán", "9 de Julio"},
			},
		},
		{
			name:  "unnamed route street with trailing locality",
			input: "Ruta 33 s/n Villa Chacón",
			want: AddressResult{
				Kind:        "simple",
				StreetNames: []string{"Ruta 33"},
				DoorNumber:  &DoorNumber{Value: "s/n"},
			},
		},
		{
			name:  "intersection via e connector",
			input: "Córdoba e Hipólito Yrigoyen",
			want: AddressResult{
				Kind:        "intersection",
				StreetNames: []string{"Córdoba", "Hipólito Yrigoyen"},
			},
		},
		{
			name:  "simple with street name containing y",
			input: "Vicente Lopez y Planes 120",
			want: AddressResult{
				Kind:        "simple",
				StreetNames: []string{"Vicente Lopez y Planes"},
				DoorNumber:  &DoorNumber{Value: "120"},
			},
		},
		{
			name:  "non-ASCII bytes tolerated verbatim",
			input: "sÃnta fe 1000",
			want: AddressResult{
				Kind:        "simple",
				StreetNames: []string{"sÃnta fe"},
				DoorNumber:  &DoorNumber{Value: "1000"},
			},
		},
		{
			name:  "a single bare word is not an address",
			input: "qwerty",
			want:  AddressResult{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := p.Parse(ctx, tc.input)
			assertAddressResultEqual(t, tc.input, got, tc.want)
		})
	}
}

func TestParseBoundaryBehaviours(t *testing.T) {
	p := New()
	ctx := context.Background()

	for _, input := range []string{
		"",
		"algo",
		"1100",
		"5 y 7",
		"piso piso piso",
	} {
		t.Run(input, func(t *testing.T) {
			got := p.Parse(ctx, input)
			if got.Kind != "" && got.Kind != "simple" && got.Kind != "intersection" {
				t.Errorf("Parse(%q) produced unexpected kind %q", input, got.Kind)
			}
		})
	}
}

func TestParseLongStreetNameDoesNotFail(t *testing.T) {
	p := New()
	ctx := context.Background()
	got := p.Parse(ctx, "Coronel Esteban Bonorino Pueyrredon Martinez Alvarez Rivadavia Saavedra Moreno Castelli Belgrano 450")
	if got.Kind != "simple" {
		t.Fatalf("Kind = %q, want simple", got.Kind)
	}
	want := "Coronel Esteban Bonorino Pueyrredon Martinez Alvarez Rivadavia Saavedra Moreno Castelli Belgrano"
	if len(got.StreetNames) != 1 || got.StreetNames[0] != want {
		t.Errorf("StreetNames = %v, want [%s]", got.StreetNames, want)
	}
}

func TestParseIsPure(t *testing.T) {
	p := New()
	ctx := context.Background()
	first := p.Parse(ctx, "Sarmiento N° 1100")
	second := p.Parse(ctx, "Sarmiento N° 1100")
	assertAddressResultEqual(t, "Sarmiento N° 1100", first, second)
}

func TestParseReusesCacheAcrossEquivalentCategorySequences(t *testing.T) {
	cache, err := newTestLRUCache(8)
	if err != nil {
		t.Fatalf("cache setup failed: %v", err)
	}
	p := New(WithCache(cache))
	ctx := context.Background()

	a := p.Parse(ctx, "Sarmiento N° 1100")
	b := p.Parse(ctx, "Belgrano N° 2500")

	if a.Kind != b.Kind || len(a.StreetNames) != len(b.StreetNames) {
		t.Errorf("expected equivalent-shape inputs to share a cached skeleton: %+v vs %+v", a, b)
	}
	if b.StreetNames[0] != "Belgrano" {
		t.Errorf("expected the cached skeleton projected against its own surface tokens, got %v", b.StreetNames)
	}
}

func assertAddressResultEqual(t *testing.T, input string, got, want AddressResult) {
	t.Helper()
	if got.Kind != want.Kind {
		t.Fatalf("Parse(%q).Kind = %q, want %q (full: %+v)", input, got.Kind, want.Kind, got)
	}
	if len(got.StreetNames) != len(want.StreetNames) {
		t.Fatalf("Parse(%q).StreetNames = %v, want %v", input, got.StreetNames, want.StreetNames)
	}
	for i := range want.StreetNames {
		if got.StreetNames[i] != want.StreetNames[i] {
			t.Errorf("Parse(%q).StreetNames[%d] = %q, want %q", input, i, got.StreetNames[i], want.StreetNames[i])
		}
	}
	switch {
	case want.DoorNumber == nil && got.DoorNumber != nil:
		t.Errorf("Parse(%q).DoorNumber = %+v, want nil", input, got.DoorNumber)
	case want.DoorNumber != nil && got.DoorNumber == nil:
		t.Errorf("Parse(%q).DoorNumber = nil, want %+v", input, want.DoorNumber)
	case want.DoorNumber != nil && got.DoorNumber != nil:
		if got.DoorNumber.Value != want.DoorNumber.Value {
			t.Errorf("Parse(%q).DoorNumber.Value = %q, want %q", input, got.DoorNumber.Value, want.DoorNumber.Value)
		}
		wantUnit, gotUnit := "", ""
		if want.DoorNumber.Unit != nil {
			wantUnit = *want.DoorNumber.Unit
		}
		if got.DoorNumber.Unit != nil {
			gotUnit = *got.DoorNumber.Unit
		}
		if gotUnit != wantUnit {
			t.Errorf("Parse(%q).DoorNumber.Unit = %q, want %q", input, gotUnit, wantUnit)
		}
	}
	switch {
	case want.Floor == nil && got.Floor != nil:
		t.Errorf("Parse(%q).Floor = %q, want nil", input, *got.Floor)
	case want.Floor != nil && got.Floor == nil:
		t.Errorf("Parse(%q).Floor = nil, want %q", input, *want.Floor)
	case want.Floor != nil && got.Floor != nil && *got.Floor != *want.Floor:
		t.Errorf("Parse(%q).Floor = %q, want %q", input, *got.Floor, *want.Floor)
	}
}
