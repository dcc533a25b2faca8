package normalizer

import "testing"

func TestTransliterate_TurkishPairs(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "DottedCapitalI", input: "İSKENDERUN", expected: "ISKENDERUN"},
		{name: "DotlessLowerI", input: "Sarıçam", expected: "Saricam"},
		{name: "Cedilla", input: "Çukurova", expected: "Cukurova"},
		{name: "Breve", input: "Doğanşehir", expected: "Dogansehir"},
		{name: "Umlauts", input: "Gölbaşı Ömerli Ünye", expected: "Golbasi Omerli Unye"},
		{name: "MixedWord", input: "Şanlıurfa", expected: "Sanliurfa"},
		{name: "PlainAsciiUntouched", input: "Adana", expected: "Adana"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Transliterate(tc.input)
			if got != tc.expected {
				t.Errorf("Transliterate(%q) = %q, want %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestNormalizeNeighborhood_SuffixStandardization(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "LongForm", input: "BOTA MAHALLESİ", expected: "BOTA MH."},
		{name: "MidAbbreviation", input: "Bota Mah.", expected: "BOTA MH."},
		{name: "MidAbbreviationNoDot", input: "Bota Mah", expected: "BOTA MH."},
		{name: "AlreadyCanonical", input: "BOTA MH.", expected: "BOTA MH."},
		{name: "MissingDot", input: "BOTA MH", expected: "BOTA MH."},
		{name: "DiacriticsInName", input: "Türkmenler Mahallesi", expected: "TURKMENLER MH."},
		{name: "ExtraSpaces", input: "  Yeşilova   Mah. ", expected: "YESILOVA MH."},
		{name: "NoSuffix", input: "Merkez", expected: "MERKEZ"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeNeighborhood(tc.input)
			if got != tc.expected {
				t.Errorf("NormalizeNeighborhood(%q) = %q, want %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestNormalize_Idempotence(t *testing.T) {
	inputs := []string{
		"İSKENDERUN",
		"Çukurova",
		"BOTA MAHALLESİ",
		"Bota Mah.",
		"Kahramanmaraş",
		"GÖKSUN",
		"YEŞİLYURT MH.",
		"",
		"   ",
	}

	for _, in := range inputs {
		once := NormalizeName(in)
		if twice := NormalizeName(once); twice != once {
			t.Errorf("NormalizeName not idempotent for %q: %q -> %q", in, once, twice)
		}

		onceN := NormalizeNeighborhood(in)
		if twiceN := NormalizeNeighborhood(onceN); twiceN != onceN {
			t.Errorf("NormalizeNeighborhood not idempotent for %q: %q -> %q", in, onceN, twiceN)
		}
	}
}

func TestNormalizeName_PreservesCase(t *testing.T) {
	if got := NormalizeName("Çukurova"); got != "Cukurova" {
		t.Errorf("expected case-preserving transliteration, got %q", got)
	}
}
