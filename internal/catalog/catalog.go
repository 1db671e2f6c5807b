// Package catalog builds configuration records for seeding the record store.
package catalog

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/spherical-ai/spherical/libs/mat-configurator/internal/assetpath"
	"github.com/spherical-ai/spherical/libs/mat-configurator/internal/storage"
	"github.com/spherical-ai/spherical/libs/mat-configurator/internal/vocabulary"
)

// Entry is one configuration in a seed file.
type Entry struct {
	MatType       string `yaml:"mat_type"`
	CellStructure string `yaml:"cell_structure"`
	MaterialColor string `yaml:"material_color"`
	BorderColor   string `yaml:"border_color"`
	// ImagePath is generated when empty.
	ImagePath string `yaml:"image_path,omitempty"`
}

// Decode reads a YAML list of entries.
func Decode(r io.Reader) ([]Entry, error) {
	var entries []Entry
	if err := yaml.NewDecoder(r).Decode(&entries); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode seed file: %w", err)
	}
	for i, e := range entries {
		if e.MatType == "" || e.CellStructure == "" || e.MaterialColor == "" || e.BorderColor == "" {
			return nil, fmt.Errorf("seed entry %d: all four configuration fields are required", i+1)
		}
	}
	return entries, nil
}

// Records converts entries to records, generating missing image paths.
func Records(gen *assetpath.Generator, entries []Entry) ([]storage.Record, error) {
	records := make([]storage.Record, 0, len(entries))
	for i, e := range entries {
		rec := storage.Record{
			MatType:       e.MatType,
			CellStructure: e.CellStructure,
			MaterialColor: e.MaterialColor,
			BorderColor:   e.BorderColor,
			ImagePath:     e.ImagePath,
		}
		if rec.ImagePath == "" {
			path, err := gen.Generate(rec.Canonical())
			if err != nil {
				return nil, fmt.Errorf("seed entry %d: %w", i+1, err)
			}
			rec.ImagePath = path
		}
		records = append(records, rec)
	}
	return records, nil
}

// Full returns one record per group, stored material token and border class,
// using each class's first spelling.
func Full(gen *assetpath.Generator) ([]storage.Record, error) {
	var records []storage.Record
	for _, grp := range gen.Groups() {
		for _, material := range vocabulary.StoredMaterialTokens(grp) {
			for _, class := range vocabulary.BorderClasses() {
				cfg := vocabulary.CanonicalConfiguration{
					MatType:       grp.MatType,
					CellStructure: grp.CellStructure,
					MaterialColor: material,
					BorderColor:   class.Spellings()[0],
				}
				path, err := gen.Generate(cfg)
				if err != nil {
					return nil, err
				}
				records = append(records, storage.Record{
					MatType:       string(cfg.MatType),
					CellStructure: string(cfg.CellStructure),
					MaterialColor: cfg.MaterialColor,
					BorderColor:   cfg.BorderColor,
					ImagePath:     path,
				})
			}
		}
	}
	return records, nil
}
