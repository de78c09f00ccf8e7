package lexicon

import "testing"

func TestClassify(t *testing.T) {
	cases := []struct {
		name     string
		fragment string
		want     Category
	}{
		{"plain word", "Sarmiento", WORD},
		{"accented word", "Bartolomé", WORD},
		{"integer", "1100", NUM},
		{"decimal", "12,5", DECIMAL},
		{"num range", "120/130", NUM_RANGE},
		{"nums letter two digit", "12C", NUMS_LETTER},
		{"nums letter one digit", "2B", NUMS_LETTER},
		{"ordinal ndo", "2ndo", ORDINAL},
		{"ordinal degree", "4°", ORDINAL},
		{"floor keyword", "piso", FLOOR},
		{"ground floor", "PB", GROUNDL},
		{"door type", "dpto", DOOR_TYPE},
		{"km unit", "Km", KM},
		{"lone n", "N", N},
		{"lone n lowercase", "n", N},
		{"num label short", "N°", NUM_LABEL_S},
		{"num label long", "nro", NUM_LABEL_L},
		{"street type short", "Av.", STREET_TYPE_S},
		{"street type long", "Avenida", STREET_TYPE_L},
		{"route", "Ruta", ROUTE},
		{"missing name", "S/Nombre", MISSING_NAME},
		{"missing num", "s/n", S_N},
		{"missing num label", "s/nro", MISSING_NUM},
		{"and word y", "y", AND_WORD},
		{"and word e", "e", AND_WORD},
		{"and num", "&", AND_NUM},
		{"isct sep esq", "esq", ISCT_SEP},
		{"isct sep slash", "/", ISCT_SEP},
		{"btwn sep", "e/", BTWN_SEP},
		{"between word", "entre", BETWEEN},
		{"of connector", "de", OF},
		{"single letter", "A", LETTER},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Classify(tc.fragment)
			if !ok {
				t.Fatalf("Classify(%q) reported no match, want %s", tc.fragment, tc.want)
			}
			if got != tc.want {
				t.Errorf("Classify(%q) = %s, want %s", tc.fragment, got, tc.want)
			}
		})
	}
}

func TestClassifyRejectsUnrecognizedShapes(t *testing.T) {
	for _, fragment := range []string{"123abc456", "#$%", "1/2/3/4"} {
		if _, ok := Classify(fragment); ok {
			t.Errorf("Classify(%q) unexpectedly matched a category", fragment)
		}
	}
}

func TestClassifyIsAccentAndCaseInsensitiveForKeywords(t *testing.T) {
	if got, ok := Classify("AVENIDA"); !ok || got != STREET_TYPE_L {
		t.Errorf("Classify(AVENIDA) = %v, %v, want STREET_TYPE_L, true", got, ok)
	}
	if got, ok := Classify("Número"); !ok || got != NUM_LABEL_L {
		t.Errorf("Classify(Número) = %v, %v, want NUM_LABEL_L, true", got, ok)
	}
}
