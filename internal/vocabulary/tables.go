package vocabulary

import "sort"

// Tables are built once at package init and never written afterwards.
var (
	matTypeTable          = buildMatTypeTable()
	cellStructureTable    = buildCellStructureTable()
	materialColorTable    = buildMaterialColorTable()
	borderColorTable      = buildBorderColorTable()
	rimmedRhombusMaterial = buildRimmedRhombusMaterialTable()
)

// buildMatTypeTable maps form mat type tokens to stored tokens.
func buildMatTypeTable() map[string]MatType {
	return map[string]MatType{
		"with-rims":    MatTypeWithRims,
		"without-rims": MatTypeWithoutRims,
	}
}

// buildCellStructureTable maps form cell structure tokens to stored tokens.
func buildCellStructureTable() map[string]CellStructure {
	return map[string]CellStructure{
		"rhombus":   CellStructureRhombus,
		"honeycomb": CellStructureHoneycomb,
	}
}

// buildMaterialColorTable maps form material tokens to the stored English token.
// Several light shades share one stored asset.
func buildMaterialColorTable() map[string]string {
	return map[string]string{
		"black":      "black",
		"grey":       "grey",
		"darkgrey":   "grey",
		"graphite":   "grey",
		"beige":      "beige",
		"cream":      "beige",
		"ivory":      "beige",
		"lightbeige": "beige",
		"brown":      "brown",
		"darkbrown":  "brown",
		"maroon":     "maroon",
		"red":        "red",
		"blue":       "blue",
		"darkblue":   "navy",
		"navy":       "navy",
		"green":      "green",
	}
}

// buildBorderColorTable maps form border tokens to stored Polish tokens.
// Values are the accented singular spelling where the color has one.
func buildBorderColorTable() map[string]string {
	return map[string]string{
		"black":    "czarny",
		"grey":     "szary",
		"beige":    "beżowy",
		"brown":    "brązowy",
		"maroon":   "bordowy",
		"red":      "czerwony",
		"blue":     "niebieski",
		"darkblue": "granatowy",
		"green":    "zielony",
		"pink":     "różowe",
		"orange":   "pomarańczowe",
		"yellow":   "żółte",
		"white":    "biały",
		"purple":   "fioletowy",
	}
}

// buildRimmedRhombusMaterialTable maps stored English material tokens to the
// Polish tokens used by the rimmed-rhombus group.
func buildRimmedRhombusMaterialTable() map[string]string {
	return map[string]string{
		"black":  "czarny",
		"grey":   "szary",
		"beige":  "beżowy",
		"brown":  "brązowy",
		"maroon": "bordowy",
		"red":    "czerwony",
		"blue":   "niebieski",
		"navy":   "granatowy",
		"green":  "zielony",
	}
}

// Options lists the tokens the configurator form offers on each axis.
type Options struct {
	MatTypes       []string `json:"mat_types"`
	CellStructures []string `json:"cell_structures"`
	MaterialColors []string `json:"material_colors"`
	BorderColors   []string `json:"border_colors"`
}

// FormOptions returns the form option lists, sorted.
func FormOptions() Options {
	return Options{
		MatTypes:       sortedKeys(matTypeTable),
		CellStructures: sortedKeys(cellStructureTable),
		MaterialColors: sortedKeys(materialColorTable),
		BorderColors:   sortedKeys(borderColorTable),
	}
}

// StoredMaterialTokens returns every stored material token for a group.
func StoredMaterialTokens(g Group) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, en := range materialColorTable {
		token := en
		if g.IsRimmedRhombus() {
			token = MapMaterialEnToPlForRimmedRhombus(en)
		}
		if _, ok := seen[token]; ok {
			continue
		}
		seen[token] = struct{}{}
		out = append(out, token)
	}
	sort.Strings(out)
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
