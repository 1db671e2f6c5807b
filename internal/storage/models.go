// Package storage provides the mat configuration record model and repositories.
package storage

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/spherical-ai/spherical/libs/mat-configurator/internal/vocabulary"
)

// ErrEmptyFilter is returned for a filter with no color candidates.
var ErrEmptyFilter = errors.New("filter has no color candidates")

// Record maps a canonical configuration to its preview image.
// The 4-tuple is meant to be unique but the table does not enforce it.
type Record struct {
	ID            uuid.UUID `json:"id" db:"id"`
	MatType       string    `json:"mat_type" db:"mat_type"`
	CellStructure string    `json:"cell_structure" db:"cell_structure"`
	MaterialColor string    `json:"material_color" db:"material_color"`
	BorderColor   string    `json:"border_color" db:"border_color"`
	ImagePath     string    `json:"image_path" db:"image_path"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

// Canonical returns the record's configuration tuple.
func (r Record) Canonical() vocabulary.CanonicalConfiguration {
	return vocabulary.CanonicalConfiguration{
		MatType:       vocabulary.MatType(r.MatType),
		CellStructure: vocabulary.CellStructure(r.CellStructure),
		MaterialColor: r.MaterialColor,
		BorderColor:   r.BorderColor,
	}
}

// Filter selects records of one group whose colors are in the candidate lists.
// A single-element list is an equality match.
type Filter struct {
	MatType        string   `json:"mat_type"`
	CellStructure  string   `json:"cell_structure"`
	MaterialColors []string `json:"material_colors"`
	BorderColors   []string `json:"border_colors"`
}

// ExactFilter returns the equality filter for a canonical configuration.
func ExactFilter(cfg vocabulary.CanonicalConfiguration) Filter {
	return Filter{
		MatType:        string(cfg.MatType),
		CellStructure:  string(cfg.CellStructure),
		MaterialColors: []string{cfg.MaterialColor},
		BorderColors:   []string{cfg.BorderColor},
	}
}

// Validate checks that both color lists are non-empty.
func (f Filter) Validate() error {
	if len(f.MaterialColors) == 0 || len(f.BorderColors) == 0 {
		return ErrEmptyFilter
	}
	return nil
}

// Matches reports whether a record satisfies the filter.
func (f Filter) Matches(r Record) bool {
	return r.MatType == f.MatType &&
		r.CellStructure == f.CellStructure &&
		contains(f.MaterialColors, r.MaterialColor) &&
		contains(f.BorderColors, r.BorderColor)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
