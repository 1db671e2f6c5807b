package vocabulary

import "strings"

// formKey is the lookup key for a form token.
func formKey(token string) string {
	return strings.ToLower(strings.TrimSpace(token))
}

// MapMatType maps a form mat type token to the stored token.
// Unknown tokens are returned unchanged.
func MapMatType(formToken string) MatType {
	if v, ok := matTypeTable[formKey(formToken)]; ok {
		return v
	}
	return MatType(formToken)
}

// MapCellStructure maps a form cell structure token to the stored token.
// Unknown tokens are returned unchanged.
func MapCellStructure(formToken string) CellStructure {
	if v, ok := cellStructureTable[formKey(formToken)]; ok {
		return v
	}
	return CellStructure(formToken)
}

// MapMaterialColor maps a form material token to the stored English token.
// Unknown tokens are returned lower-cased.
func MapMaterialColor(formToken string) string {
	if v, ok := materialColorTable[formKey(formToken)]; ok {
		return v
	}
	return strings.ToLower(formToken)
}

// MapBorderColor maps a form border token to the stored Polish token.
// Unknown tokens are returned lower-cased.
func MapBorderColor(formToken string) string {
	if v, ok := borderColorTable[formKey(formToken)]; ok {
		return v
	}
	return strings.ToLower(formToken)
}

// MapMaterialEnToPlForRimmedRhombus translates a stored English material token
// to the Polish token the rimmed-rhombus group stores. Only meaningful for that
// group; unknown tokens are returned unchanged.
func MapMaterialEnToPlForRimmedRhombus(enToken string) string {
	if v, ok := rimmedRhombusMaterial[enToken]; ok {
		return v
	}
	return enToken
}

// Normalize converts a form configuration into stored vocabulary using the
// primary tables only. The rimmed-rhombus material override is a fallback
// concern and is not applied here.
func Normalize(form FormConfiguration) CanonicalConfiguration {
	return CanonicalConfiguration{
		MatType:       MapMatType(form.MatType),
		CellStructure: MapCellStructure(form.CellStructure),
		MaterialColor: MapMaterialColor(form.MaterialColor),
		BorderColor:   MapBorderColor(form.BorderColor),
	}
}
