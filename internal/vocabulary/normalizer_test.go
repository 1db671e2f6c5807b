package vocabulary

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapMatType(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected MatType
	}{
		{"with rims", "with-rims", MatTypeWithRims},
		{"without rims", "without-rims", MatTypeWithoutRims},
		{"case and space insensitive", "  With-Rims ", MatTypeWithRims},
		{"unknown passes through", "Deluxe", MatType("Deluxe")},
		{"empty", "", MatType("")},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, MapMatType(tc.input))
		})
	}
}

func TestMapCellStructure(t *testing.T) {
	assert.Equal(t, CellStructureRhombus, MapCellStructure("rhombus"))
	assert.Equal(t, CellStructureHoneycomb, MapCellStructure("HONEYCOMB"))
	assert.Equal(t, CellStructure("Waves"), MapCellStructure("Waves"))
	assert.Equal(t, CellStructure(""), MapCellStructure(""))
}

func TestMapMaterialColor(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"black", "black"},
		{"cream", "beige"},
		{"ivory", "beige"},
		{"lightbeige", "beige"},
		{"beige", "beige"},
		{"darkblue", "navy"},
		{"graphite", "grey"},
		{"Darkbrown", "brown"},
		{"Turquoise", "turquoise"},
		{"", ""},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, MapMaterialColor(tc.input))
		})
	}
}

func TestMapBorderColor(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"darkblue", "granatowy"},
		{"beige", "beżowy"},
		{"brown", "brązowy"},
		{"maroon", "bordowy"},
		{"pink", "różowe"},
		{"yellow", "żółte"},
		{"WHITE", "biały"},
		{"Turquoise", "turquoise"},
		{"", ""},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, MapBorderColor(tc.input))
		})
	}
}

func TestMapMaterialEnToPlForRimmedRhombus(t *testing.T) {
	assert.Equal(t, "czarny", MapMaterialEnToPlForRimmedRhombus("black"))
	assert.Equal(t, "granatowy", MapMaterialEnToPlForRimmedRhombus("navy"))
	assert.Equal(t, "beżowy", MapMaterialEnToPlForRimmedRhombus("beige"))
	assert.Equal(t, "Turquoise", MapMaterialEnToPlForRimmedRhombus("Turquoise"))
	assert.Equal(t, "", MapMaterialEnToPlForRimmedRhombus(""))
}

func TestMappingFunctions_Totality(t *testing.T) {
	inputs := []string{"", " ", "x", "ż", "black", "BLACK", "with-rims", "\x00", "a very long token with spaces"}

	for _, in := range inputs {
		assert.NotPanics(t, func() {
			_ = MapMatType(in)
			_ = MapCellStructure(in)
			_ = MapMaterialColor(in)
			_ = MapBorderColor(in)
			_ = MapMaterialEnToPlForRimmedRhombus(in)
			_ = ToggleDiacritics(in)
			_ = ToggleNumberVariant(in)
			_ = CandidateBorderSet(in)
			_ = CandidateMaterialSet(MatTypeWithRims, CellStructureRhombus, in)
		}, "input %q", in)
		assert.NotEmpty(t, CandidateBorderSet(in))
		assert.NotEmpty(t, CandidateMaterialSet(MatTypeWithRims, CellStructureRhombus, in))
	}
}

func TestNormalize(t *testing.T) {
	got := Normalize(FormConfiguration{
		MatType:       "with-rims",
		CellStructure: "rhombus",
		MaterialColor: "blue",
		BorderColor:   "darkblue",
	})

	assert.Equal(t, CanonicalConfiguration{
		MatType:       MatTypeWithRims,
		CellStructure: CellStructureRhombus,
		MaterialColor: "blue",
		BorderColor:   "granatowy",
	}, got)
	assert.Equal(t, GroupRimmedRhombus, got.Group())
	assert.Equal(t, "3d/romby/blue/granatowy", got.String())
}

func TestFormConfiguration_Validate(t *testing.T) {
	valid := FormConfiguration{MatType: "with-rims", CellStructure: "rhombus", MaterialColor: "black", BorderColor: "red"}
	require.NoError(t, valid.Validate())

	err := FormConfiguration{MatType: "with-rims", BorderColor: " "}.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfiguration))
	assert.Contains(t, err.Error(), "cell_structure")
	assert.Contains(t, err.Error(), "material_color")
	assert.Contains(t, err.Error(), "border_color")
	assert.NotContains(t, err.Error(), "mat_type")
}

func TestFormOptions(t *testing.T) {
	opts := FormOptions()

	assert.Equal(t, []string{"with-rims", "without-rims"}, opts.MatTypes)
	assert.Equal(t, []string{"honeycomb", "rhombus"}, opts.CellStructures)
	assert.Contains(t, opts.MaterialColors, "cream")
	assert.Contains(t, opts.BorderColors, "darkblue")
	assert.Len(t, opts.BorderColors, 14)
}

func TestStoredMaterialTokens(t *testing.T) {
	assert.Equal(t,
		[]string{"beige", "black", "blue", "brown", "green", "grey", "maroon", "navy", "red"},
		StoredMaterialTokens(GroupFlatHoneycomb))

	pl := StoredMaterialTokens(GroupRimmedRhombus)
	assert.Contains(t, pl, "czarny")
	assert.Contains(t, pl, "granatowy")
	assert.NotContains(t, pl, "black")
}
