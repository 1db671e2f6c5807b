package assetpath

import "github.com/spherical-ai/spherical/libs/mat-configurator/internal/vocabulary"

// layout describes how one group's assets are named on disk. Directory and
// file tokens differ between groups in language, number and diacritics, so
// every segment has its own table. Keep these in step with the vocabulary
// class registry: a border key or material token missing here yields
// ErrUnmappedToken instead of a wrong path.
type layout struct {
	matTypeDir     string
	structureDir   string
	productLine    string
	structureLabel string
	ext            string
	// borderDirs is keyed by border class key.
	borderDirs map[string]string
	// borderFiles is keyed by border class key.
	borderFiles map[string]string
	// materialFiles is keyed by the stored material token.
	materialFiles map[string]string
	// materialClasses resolves a material token missing from materialFiles
	// through its vocabulary class, so legacy English records map to the
	// Polish entry.
	materialClasses bool
}

func buildLayouts() map[vocabulary.Group]layout {
	return map[vocabulary.Group]layout{
		vocabulary.GroupRimmedRhombus:   rimmedRhombusLayout(),
		vocabulary.GroupRimmedHoneycomb: rimmedHoneycombLayout(),
		vocabulary.GroupFlatRhombus:     flatRhombusLayout(),
		vocabulary.GroupFlatHoneycomb:   flatHoneycombLayout(),
	}
}

// rimmedRhombusLayout: plural ASCII folders; materials stored in Polish, with
// legacy English records still present and resolved by material class.
func rimmedRhombusLayout() layout {
	return layout{
		matTypeDir:     "3d",
		structureDir:   "romby",
		productLine:    "5os",
		structureLabel: "3d-diamonds",
		ext:            "webp",
		borderDirs: map[string]string{
			"black":  "czarne",
			"grey":   "szare",
			"beige":  "bezowe",
			"brown":  "brazowe",
			"maroon": "bordowe",
			"red":    "czerwone",
			"blue":   "niebieskie",
			"navy":   "granatowe",
			"green":  "zielone",
			"pink":   "rozowe",
			"orange": "pomaranczowe",
			"yellow": "zolte",
			"white":  "biale",
			"purple": "fioletowe",
		},
		borderFiles: map[string]string{
			"black":  "black",
			"grey":   "grey",
			"beige":  "beige",
			"brown":  "brown",
			"maroon": "maroon",
			"red":    "red",
			"blue":   "blue",
			"navy":   "navy",
			"green":  "green",
			"pink":   "pink",
			"orange": "orange",
			"yellow": "yellow",
			"white":  "white",
			"purple": "purple",
		},
		materialFiles: map[string]string{
			"czarny":    "black",
			"szary":     "grey",
			"beżowy":    "beige",
			"brązowy":   "brown",
			"bordowy":   "maroon",
			"czerwony":  "red",
			"niebieski": "blue",
			"granatowy": "navy",
			"zielony":   "green",
		},
		materialClasses: true,
	}
}

// rimmedHoneycombLayout: singular accented folders, "darkblue" file token for navy.
func rimmedHoneycombLayout() layout {
	return layout{
		matTypeDir:     "3d",
		structureDir:   "plaster-miodu",
		productLine:    "5os",
		structureLabel: "3d-honey",
		ext:            "webp",
		borderDirs: map[string]string{
			"black":  "czarny",
			"grey":   "szary",
			"beige":  "beżowy",
			"brown":  "brązowy",
			"maroon": "bordowy",
			"red":    "czerwony",
			"blue":   "niebieski",
			"navy":   "granatowy",
			"green":  "zielony",
			"pink":   "różowy",
			"orange": "pomarańczowy",
			"yellow": "żółty",
			"white":  "biały",
			"purple": "fioletowy",
		},
		borderFiles: map[string]string{
			"black":  "black",
			"grey":   "grey",
			"beige":  "beige",
			"brown":  "brown",
			"maroon": "maroon",
			"red":    "red",
			"blue":   "blue",
			"navy":   "darkblue",
			"green":  "green",
			"pink":   "pink",
			"orange": "orange",
			"yellow": "yellow",
			"white":  "white",
			"purple": "purple",
		},
		materialFiles: map[string]string{
			"black":  "black",
			"grey":   "grey",
			"beige":  "beige",
			"brown":  "brown",
			"maroon": "maroon",
			"red":    "red",
			"blue":   "blue",
			"navy":   "darkblue",
			"green":  "green",
		},
	}
}

// flatRhombusLayout: plural accented folders.
func flatRhombusLayout() layout {
	return layout{
		matTypeDir:     "klasyczne",
		structureDir:   "romby",
		productLine:    "5os",
		structureLabel: "classic-diamonds",
		ext:            "webp",
		borderDirs: map[string]string{
			"black":  "czarne",
			"grey":   "szare",
			"beige":  "beżowe",
			"brown":  "brązowe",
			"maroon": "bordowe",
			"red":    "czerwone",
			"blue":   "niebieskie",
			"navy":   "granatowe",
			"green":  "zielone",
			"pink":   "różowe",
			"orange": "pomarańczowe",
			"yellow": "żółte",
			"white":  "białe",
			"purple": "fioletowe",
		},
		borderFiles: map[string]string{
			"black":  "black",
			"grey":   "grey",
			"beige":  "beige",
			"brown":  "brown",
			"maroon": "maroon",
			"red":    "red",
			"blue":   "blue",
			"navy":   "navy",
			"green":  "green",
			"pink":   "pink",
			"orange": "orange",
			"yellow": "yellow",
			"white":  "white",
			"purple": "purple",
		},
		materialFiles: map[string]string{
			"black":  "black",
			"grey":   "grey",
			"beige":  "beige",
			"brown":  "brown",
			"maroon": "maroon",
			"red":    "red",
			"blue":   "blue",
			"navy":   "navy",
			"green":  "green",
		},
	}
}

// flatHoneycombLayout: singular ASCII folders under the short "plaster" directory,
// American "gray" and "darkblue" file tokens.
func flatHoneycombLayout() layout {
	return layout{
		matTypeDir:     "klasyczne",
		structureDir:   "plaster",
		productLine:    "5os",
		structureLabel: "classic-honey",
		ext:            "webp",
		borderDirs: map[string]string{
			"black":  "czarny",
			"grey":   "szary",
			"beige":  "bezowy",
			"brown":  "brazowy",
			"maroon": "bordowy",
			"red":    "czerwony",
			"blue":   "niebieski",
			"navy":   "granatowy",
			"green":  "zielony",
			"pink":   "rozowy",
			"orange": "pomaranczowy",
			"yellow": "zolty",
			"white":  "bialy",
			"purple": "fioletowy",
		},
		borderFiles: map[string]string{
			"black":  "black",
			"grey":   "gray",
			"beige":  "beige",
			"brown":  "brown",
			"maroon": "maroon",
			"red":    "red",
			"blue":   "blue",
			"navy":   "darkblue",
			"green":  "green",
			"pink":   "pink",
			"orange": "orange",
			"yellow": "yellow",
			"white":  "white",
			"purple": "purple",
		},
		materialFiles: map[string]string{
			"black":  "black",
			"grey":   "gray",
			"beige":  "beige",
			"brown":  "brown",
			"maroon": "maroon",
			"red":    "red",
			"blue":   "blue",
			"navy":   "darkblue",
			"green":  "green",
		},
	}
}
