// Package vocabulary provides the token tables that translate configurator form
// selections into the vocabulary used by stored mat configuration records.
package vocabulary

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidConfiguration indicates a form configuration with missing axes.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// MatType is the canonical (stored) mat type token.
type MatType string

const (
	MatTypeWithRims    MatType = "3d"
	MatTypeWithoutRims MatType = "klasyczne"
)

// CellStructure is the canonical (stored) cell structure token.
type CellStructure string

const (
	CellStructureRhombus   CellStructure = "romby"
	CellStructureHoneycomb CellStructure = "plaster-miodu"
)

// Group identifies a (mat type, cell structure) pair. Stored records follow
// different spelling rules per group.
type Group struct {
	MatType       MatType
	CellStructure CellStructure
}

var (
	GroupRimmedRhombus   = Group{MatTypeWithRims, CellStructureRhombus}
	GroupRimmedHoneycomb = Group{MatTypeWithRims, CellStructureHoneycomb}
	GroupFlatRhombus     = Group{MatTypeWithoutRims, CellStructureRhombus}
	GroupFlatHoneycomb   = Group{MatTypeWithoutRims, CellStructureHoneycomb}
)

// Groups returns every known group in a stable order.
func Groups() []Group {
	return []Group{GroupRimmedRhombus, GroupRimmedHoneycomb, GroupFlatRhombus, GroupFlatHoneycomb}
}

// Name returns the short group name used in logs and layout tables.
func (g Group) Name() string {
	switch g {
	case GroupRimmedRhombus:
		return "rimmed-rhombus"
	case GroupRimmedHoneycomb:
		return "rimmed-honeycomb"
	case GroupFlatRhombus:
		return "flat-rhombus"
	case GroupFlatHoneycomb:
		return "flat-honeycomb"
	}
	return string(g.MatType) + "/" + string(g.CellStructure)
}

// IsRimmedRhombus reports whether materials in this group are stored in Polish.
func (g Group) IsRimmedRhombus() bool {
	return g == GroupRimmedRhombus
}

// CanonicalConfiguration is a configuration expressed in stored-record vocabulary.
type CanonicalConfiguration struct {
	MatType       MatType       `json:"mat_type" yaml:"mat_type"`
	CellStructure CellStructure `json:"cell_structure" yaml:"cell_structure"`
	MaterialColor string        `json:"material_color" yaml:"material_color"`
	BorderColor   string        `json:"border_color" yaml:"border_color"`
}

// Group returns the (mat type, cell structure) group of the configuration.
func (c CanonicalConfiguration) Group() Group {
	return Group{MatType: c.MatType, CellStructure: c.CellStructure}
}

// String implements fmt.Stringer.
func (c CanonicalConfiguration) String() string {
	return fmt.Sprintf("%s/%s/%s/%s", c.MatType, c.CellStructure, c.MaterialColor, c.BorderColor)
}

// FormConfiguration is a configuration expressed in the configurator form's own tokens.
type FormConfiguration struct {
	MatType       string `json:"mat_type"`
	CellStructure string `json:"cell_structure"`
	MaterialColor string `json:"material_color"`
	BorderColor   string `json:"border_color"`
}

// Validate checks that every axis is present. Normalization never rejects input,
// so callers run this before resolving.
func (f FormConfiguration) Validate() error {
	var missing []string
	if strings.TrimSpace(f.MatType) == "" {
		missing = append(missing, "mat_type")
	}
	if strings.TrimSpace(f.CellStructure) == "" {
		missing = append(missing, "cell_structure")
	}
	if strings.TrimSpace(f.MaterialColor) == "" {
		missing = append(missing, "material_color")
	}
	if strings.TrimSpace(f.BorderColor) == "" {
		missing = append(missing, "border_color")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrInvalidConfiguration, strings.Join(missing, ", "))
	}
	return nil
}
