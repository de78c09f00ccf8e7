package normalizer

import "testing"

func TestNormalizeGluedDigitsAndLetters(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"short prefix glued to digits", "Av1200", "Av 1200"},
		{"N glued to digits", "N1331", "N 1331"},
		{"km glued to digits", "Km3", "Km 3"},
		{"ordinal glued to letter", "2ndoB", "2ndo B"},
		{"nums letter stays glued", "12C", "12C"},
		{"nums letter stays glued single digit", "2B", "2B"},
		{"long digit run glued to long letter run", "123Centro", "123 Centro"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Normalize(tc.input); got != tc.want {
				t.Errorf("Normalize(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestNormalizeCollapsesWhitespaceAndStrayPunctuation(t *testing.T) {
	got := Normalize("  Sarmiento,   N°   1100;  ")
	want := "Sarmiento N° 1100"
	if got != want {
		t.Errorf("Normalize() = %q, want %q", got, want)
	}
}

func TestNormalizeSplitsGluedBetweenSeparator(t *testing.T) {
	got := Normalize("e/25 de Mayo")
	want := "e/ 25 de Mayo"
	if got != want {
		t.Errorf("Normalize() = %q, want %q", got, want)
	}
}

func TestNormalizeNeverFails(t *testing.T) {
	for _, input := range []string{"", "   ", "\t\n"} {
		if got := Normalize(input); got != "" {
			t.Errorf("Normalize(%q) = %q, want empty", input, got)
		}
	}
}

func TestNormalizeNeverInventsCharacters(t *testing.T) {
	input := "sÃnta fe 1000"
	got := Normalize(input)
	for _, r := range got {
		if r == ' ' {
			continue
		}
		if !containsRune(input, r) {
			t.Errorf("Normalize produced rune %q not present in input %q", r, input)
		}
	}
}

func containsRune(s string, r rune) bool {
	for _, c := range s {
		if c == r {
			return true
		}
	}
	return false
}
