package vocabulary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFoldDiacritics(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"beżowy", "bezowy"},
		{"brązowe", "brazowe"},
		{"różowe", "rozowe"},
		{"pomarańczowe", "pomaranczowe"},
		{"żółte", "zolte"},
		{"biały", "bialy"},
		{"Łódź", "Lodz"},
		{"czarny", "czarny"},
		{"", ""},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, FoldDiacritics(tc.input))
		})
	}
}

func TestToggleDiacritics_Domain(t *testing.T) {
	expected := map[string]string{
		"beżowy":       "bezowy",
		"beżowe":       "bezowe",
		"brązowy":      "brazowy",
		"brązowe":      "brazowe",
		"różowe":       "rozowe",
		"pomarańczowe": "pomaranczowe",
		"żółte":        "zolte",
		"biały":        "bialy",
	}

	assert.Len(t, diacriticToggle, len(expected)*2)
	for accented, ascii := range expected {
		assert.Equal(t, ascii, ToggleDiacritics(accented))
		assert.Equal(t, accented, ToggleDiacritics(ascii))
	}
}

func TestToggleNumberVariant_Domain(t *testing.T) {
	expected := map[string]string{
		"beżowy":    "beżowe",
		"bezowy":    "bezowe",
		"brązowy":   "brązowe",
		"brazowy":   "brazowe",
		"granatowy": "granatowe",
		"niebieski": "niebieskie",
		"zielony":   "zielone",
	}

	assert.Len(t, numberToggle, len(expected)*2)
	for singular, plural := range expected {
		assert.Equal(t, plural, ToggleNumberVariant(singular))
		assert.Equal(t, singular, ToggleNumberVariant(plural))
	}
}

func TestToggles_AreInvolutions(t *testing.T) {
	var tokens []string
	for k := range diacriticToggle {
		tokens = append(tokens, k)
	}
	for k := range numberToggle {
		tokens = append(tokens, k)
	}
	tokens = append(tokens, "czarny", "bordowy", "", "blue", "ŻÓŁTE", "granatowy ")

	for _, tok := range tokens {
		assert.Equal(t, tok, ToggleDiacritics(ToggleDiacritics(tok)), "diacritics %q", tok)
		assert.Equal(t, tok, ToggleNumberVariant(ToggleNumberVariant(tok)), "number %q", tok)
	}
}

func TestToggles_IdentityOutsideDomain(t *testing.T) {
	for _, tok := range []string{"czarny", "bordowy", "fioletowy", "black", "", "ŻÓŁTE", "granatowy "} {
		assert.Equal(t, tok, ToggleDiacritics(tok))
		assert.Equal(t, tok, ToggleNumberVariant(tok))
	}
	assert.Equal(t, "różowe", ToggleNumberVariant("różowe"))
}

func TestCandidateBorderSet(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"beżowy", []string{"beżowy", "bezowy", "beżowe", "bezowe"}},
		{"bezowe", []string{"bezowe", "beżowe", "bezowy", "beżowy"}},
		{"granatowy", []string{"granatowy", "granatowe"}},
		{"różowe", []string{"różowe", "rozowe"}},
		{"czarny", []string{"czarny"}},
		{"bialy", []string{"bialy", "biały"}},
		{"unknown", []string{"unknown"}},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got := CandidateBorderSet(tc.input)
			assert.Equal(t, tc.expected, got)
			assert.LessOrEqual(t, len(got), 4)
		})
	}
}

func TestCandidateBorderSet_MatchesClass(t *testing.T) {
	for _, c := range BorderClasses() {
		for _, s := range c.Spellings() {
			got := CandidateBorderSet(s)
			assert.ElementsMatch(t, c.Spellings(), got, "class %s spelling %q", c.Key, s)

			// The class equals the closure of the two toggles.
			d := ToggleDiacritics(s)
			formula := []string{s, d, ToggleNumberVariant(s), ToggleNumberVariant(d)}
			assert.ElementsMatch(t, dedupe(formula), got, "formula %q", s)
		}
	}
}

func TestCandidateMaterialSet(t *testing.T) {
	assert.Equal(t, []string{"black", "czarny"},
		CandidateMaterialSet(MatTypeWithRims, CellStructureRhombus, "black"))
	assert.Equal(t, []string{"czarny"},
		CandidateMaterialSet(MatTypeWithRims, CellStructureRhombus, "czarny"))
	assert.Equal(t, []string{"black"},
		CandidateMaterialSet(MatTypeWithRims, CellStructureHoneycomb, "black"))
	assert.Equal(t, []string{"black"},
		CandidateMaterialSet(MatTypeWithoutRims, CellStructureRhombus, "black"))
}

func TestBorderClassOf(t *testing.T) {
	c, ok := BorderClassOf("bezowe")
	require.True(t, ok)
	assert.Equal(t, "beige", c.Key)

	c, ok = BorderClassOf("bordowy")
	require.True(t, ok)
	assert.Equal(t, "maroon", c.Key)

	_, ok = BorderClassOf("bordowe")
	assert.False(t, ok)
}

func TestMaterialClassOf(t *testing.T) {
	c, ok := MaterialClassOf("czarny")
	require.True(t, ok)
	assert.Equal(t, "black", c.Key)

	c, ok = MaterialClassOf("navy")
	require.True(t, ok)
	assert.Equal(t, "granatowy", c.Polish)

	_, ok = MaterialClassOf("turquoise")
	assert.False(t, ok)
}

func TestBorderClasses_SpellingsAreUnique(t *testing.T) {
	seen := map[string]string{}
	for _, c := range BorderClasses() {
		for _, s := range c.Spellings() {
			prev, dup := seen[s]
			assert.False(t, dup, "%q in both %s and %s", s, prev, c.Key)
			seen[s] = c.Key
		}
	}
}

func dedupe(in []string) []string {
	var out []string
	for _, s := range in {
		out = appendUnique(out, s)
	}
	return out
}
