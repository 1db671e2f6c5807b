package vocabulary

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// polishStroke maps the letters that have no canonical decomposition.
var polishStroke = runes.Map(func(r rune) rune {
	switch r {
	case 'ł':
		return 'l'
	case 'Ł':
		return 'L'
	}
	return r
})

// FoldDiacritics returns the ASCII spelling of a Polish token (ą→a, ż→z, ó→o, ł→l).
func FoldDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), polishStroke, norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return folded
}
