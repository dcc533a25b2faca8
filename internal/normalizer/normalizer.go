package normalizer

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var reSpaces = regexp.MustCompile(`\s+`)

// Long and abbreviated spellings of "neighborhood" collapse onto one token.
var reMahSuffix = regexp.MustCompile(`\s+(MAHALLESI|MAHALLE|MAH\.?|MH\.?)$`)

// Transliterate maps Turkish extended Latin to plain ASCII, preserving case.
// The NFD chain strips combining marks (cedillas, breves, umlauts, the dot of
// the dotted capital I); unidecode picks up runes with no decomposition, the
// dotless i among them.
func Transliterate(s string) string {
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	out, _, _ := transform.String(t, s)
	return unidecode.Unidecode(out)
}

// isMn reports whether the rune is a combining diacritic mark.
func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}

// NormalizeName canonicalizes a province or district display name:
// transliteration plus whitespace collapse, case as produced.
func NormalizeName(s string) string {
	return collapse(Transliterate(s))
}

// NormalizeNeighborhood canonicalizes a neighborhood display name for
// case-insensitive comparison. Uppercasing happens after transliteration so
// the dotted/dotless i pair never round-trips through Unicode case folding.
func NormalizeNeighborhood(s string) string {
	u := strings.ToUpper(collapse(Transliterate(s)))
	return reMahSuffix.ReplaceAllString(u, " MH.")
}

func collapse(s string) string {
	return strings.TrimSpace(reSpaces.ReplaceAllString(s, " "))
}
