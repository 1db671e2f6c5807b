package vocabulary

// ToggleDiacritics swaps a stored spelling between its accented and ASCII form.
// Tokens outside the registry are returned unchanged.
func ToggleDiacritics(token string) string {
	if v, ok := diacriticToggle[token]; ok {
		return v
	}
	return token
}

// ToggleNumberVariant swaps a stored border spelling between its singular and
// plural adjective form. Tokens outside the registry are returned unchanged.
func ToggleNumberVariant(token string) string {
	if v, ok := numberToggle[token]; ok {
		return v
	}
	return token
}

// CandidateBorderSet returns the border spellings considered equivalent to token,
// token first, then its diacritic, number and combined variants. Any remaining
// member of the token's class is appended so that a newly declared spelling is
// never missed.
func CandidateBorderSet(token string) []string {
	folded := ToggleDiacritics(token)
	out := []string{token}
	out = appendUnique(out, folded)
	out = appendUnique(out, ToggleNumberVariant(token))
	out = appendUnique(out, ToggleNumberVariant(folded))
	if c, ok := BorderClassOf(token); ok {
		for _, s := range c.Spellings() {
			out = appendUnique(out, s)
		}
	}
	return out
}

// CandidateMaterialSet returns the material spellings considered equivalent to
// token within a group. Only the rimmed-rhombus group adds its Polish spelling.
func CandidateMaterialSet(matType MatType, cellStructure CellStructure, token string) []string {
	out := []string{token}
	if (Group{MatType: matType, CellStructure: cellStructure}).IsRimmedRhombus() {
		out = appendUnique(out, MapMaterialEnToPlForRimmedRhombus(token))
	}
	return out
}
