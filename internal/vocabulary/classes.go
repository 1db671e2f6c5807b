package vocabulary

// BorderClass groups every spelling that stored records use for one border color.
// Only Singular and Plural are declared; ASCII spellings are derived.
type BorderClass struct {
	// Key is the English token used in asset file names.
	Key string
	// Singular is the accented singular adjective, empty if never stored.
	Singular string
	// Plural is the accented plural adjective, empty if never stored.
	Plural string
}

// Spellings returns the accented and ASCII forms of the class, singular first.
func (c BorderClass) Spellings() []string {
	var out []string
	for _, form := range []string{c.Singular, FoldDiacritics(c.Singular), c.Plural, FoldDiacritics(c.Plural)} {
		if form != "" {
			out = appendUnique(out, form)
		}
	}
	return out
}

// MaterialClass pairs the English and Polish stored spellings of a material color.
type MaterialClass struct {
	Key    string
	Polish string
}

var (
	borderClasses   = buildBorderClasses()
	borderIndex     = indexBorderClasses(borderClasses)
	materialIndex   = indexMaterialClasses(rimmedRhombusMaterial)
	diacriticToggle = buildDiacriticToggle(borderClasses)
	numberToggle    = buildNumberToggle(borderClasses)
)

// buildBorderClasses declares every stored border color.
func buildBorderClasses() []BorderClass {
	return []BorderClass{
		{Key: "black", Singular: "czarny"},
		{Key: "grey", Singular: "szary"},
		{Key: "beige", Singular: "beżowy", Plural: "beżowe"},
		{Key: "brown", Singular: "brązowy", Plural: "brązowe"},
		{Key: "maroon", Singular: "bordowy"},
		{Key: "red", Singular: "czerwony"},
		{Key: "blue", Singular: "niebieski", Plural: "niebieskie"},
		{Key: "navy", Singular: "granatowy", Plural: "granatowe"},
		{Key: "green", Singular: "zielony", Plural: "zielone"},
		{Key: "pink", Plural: "różowe"},
		{Key: "orange", Plural: "pomarańczowe"},
		{Key: "yellow", Plural: "żółte"},
		{Key: "white", Singular: "biały"},
		{Key: "purple", Singular: "fioletowy"},
	}
}

func indexBorderClasses(classes []BorderClass) map[string]int {
	idx := make(map[string]int)
	for i, c := range classes {
		for _, s := range c.Spellings() {
			idx[s] = i
		}
	}
	return idx
}

func indexMaterialClasses(enToPl map[string]string) map[string]MaterialClass {
	idx := make(map[string]MaterialClass, len(enToPl)*2)
	for en, pl := range enToPl {
		c := MaterialClass{Key: en, Polish: pl}
		idx[en] = c
		idx[pl] = c
	}
	return idx
}

// buildDiacriticToggle pairs each accented spelling with its folded form, in
// both directions.
func buildDiacriticToggle(classes []BorderClass) map[string]string {
	pairs := make(map[string]string)
	for _, c := range classes {
		for _, form := range []string{c.Singular, c.Plural} {
			if form == "" {
				continue
			}
			if folded := FoldDiacritics(form); folded != form {
				pairs[form] = folded
				pairs[folded] = form
			}
		}
	}
	return pairs
}

// buildNumberToggle pairs singular and plural spellings that share the same
// diacritic form.
func buildNumberToggle(classes []BorderClass) map[string]string {
	pairs := make(map[string]string)
	for _, c := range classes {
		if c.Singular == "" || c.Plural == "" {
			continue
		}
		pairs[c.Singular] = c.Plural
		pairs[c.Plural] = c.Singular
		fs, fp := FoldDiacritics(c.Singular), FoldDiacritics(c.Plural)
		if fs != c.Singular || fp != c.Plural {
			pairs[fs] = fp
			pairs[fp] = fs
		}
	}
	return pairs
}

// BorderClasses returns a copy of the border class registry.
func BorderClasses() []BorderClass {
	out := make([]BorderClass, len(borderClasses))
	copy(out, borderClasses)
	return out
}

// BorderClassOf returns the class a stored border spelling belongs to.
func BorderClassOf(token string) (BorderClass, bool) {
	i, ok := borderIndex[token]
	if !ok {
		return BorderClass{}, false
	}
	return borderClasses[i], true
}

// MaterialClassOf returns the class of a stored material spelling, English or Polish.
func MaterialClassOf(token string) (MaterialClass, bool) {
	c, ok := materialIndex[token]
	return c, ok
}

func appendUnique(list []string, s string) []string {
	for _, existing := range list {
		if existing == s {
			return list
		}
	}
	return append(list, s)
}
