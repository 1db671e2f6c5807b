package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spherical-ai/spherical/libs/mat-configurator/internal/assetpath"
	"github.com/spherical-ai/spherical/libs/mat-configurator/internal/resolver"
	"github.com/spherical-ai/spherical/libs/mat-configurator/internal/service"
	"github.com/spherical-ai/spherical/libs/mat-configurator/internal/vocabulary"
)

func addFormFlags(cmd *cobra.Command, form *vocabulary.FormConfiguration) {
	cmd.Flags().StringVar(&form.MatType, "mat-type", "", "mat type (with-rims, without-rims)")
	cmd.Flags().StringVar(&form.CellStructure, "cell-structure", "", "cell structure (rhombus, honeycomb)")
	cmd.Flags().StringVar(&form.MaterialColor, "material", "", "material color option")
	cmd.Flags().StringVar(&form.BorderColor, "border", "", "border color option")
}

// newResolveCmd creates the resolve subcommand.
func newResolveCmd() *cobra.Command {
	var form vocabulary.FormConfiguration

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Find the stored preview for a form selection",
		Long: `Resolve normalizes a configurator form selection, looks up the exact stored
configuration and, when that misses, retries with equivalent spellings.

Exits with status 2 when no record matches.`,
		Example: `  mat-configurator-cli resolve --mat-type with-rims --cell-structure rhombus --material blue --border darkblue`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := form.Validate(); err != nil {
				return err
			}

			svc, err := service.New(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			defer svc.Close()

			result, err := svc.Resolver.Resolve(cmd.Context(), form)
			if err != nil {
				ui.Error("Record store unavailable")
				return err
			}

			if outputJSON {
				if err := ui.JSON(result); err != nil {
					return err
				}
			} else {
				printResult(result)
			}

			if !result.Found() {
				return errNotFound
			}
			return nil
		},
	}

	addFormFlags(cmd, &form)
	return cmd
}

func printResult(result *resolver.Result) {
	ui.KeyValue("Canonical", result.Canonical.String())

	switch result.Status {
	case resolver.StatusFound:
		ui.Success("Found")
	case resolver.StatusFoundFallback:
		ui.Warning("Found by equivalent spelling")
		ui.KeyValue("Material candidates", result.MaterialCandidates)
		ui.KeyValue("Border candidates", result.BorderCandidates)
	default:
		ui.Error("No preview available")
		return
	}

	rec := result.Record
	ui.KeyValue("Record", rec.ID)
	ui.KeyValue("Stored", fmt.Sprintf("%s/%s/%s/%s", rec.MatType, rec.CellStructure, rec.MaterialColor, rec.BorderColor))
	ui.KeyValue("Image", rec.ImagePath)
	if result.Ambiguous() {
		ui.Warning("%d other record(s) also match", result.Alternatives)
	}
}

// newPathCmd creates the path subcommand.
func newPathCmd() *cobra.Command {
	var (
		canonical vocabulary.CanonicalConfiguration
		form      vocabulary.FormConfiguration
		fromForm  bool
	)

	cmd := &cobra.Command{
		Use:   "path",
		Short: "Print the canonical asset path of a configuration",
		Long: `Path composes the expected image path of a configuration in stored
vocabulary. With --form the flags take form options and are normalized first.`,
		Example: `  mat-configurator-cli path --mat-type 3d --cell-structure romby --material czarny --border bordowy
  mat-configurator-cli path --form --mat-type with-rims --cell-structure rhombus --material blue --border darkblue`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if fromForm {
				canonical = vocabulary.Normalize(form)
			} else {
				canonical.MatType = vocabulary.MatType(form.MatType)
				canonical.CellStructure = vocabulary.CellStructure(form.CellStructure)
				canonical.MaterialColor = form.MaterialColor
				canonical.BorderColor = form.BorderColor
			}

			path, err := assetpath.NewGenerator(cfg.Assets.Root).Generate(canonical)
			if err != nil {
				return err
			}

			if outputJSON {
				return ui.JSON(map[string]interface{}{
					"configuration": canonical,
					"path":          path,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	addFormFlags(cmd, &form)
	cmd.Flags().BoolVar(&fromForm, "form", false, "treat flags as form options and normalize them")
	return cmd
}

// newOptionsCmd creates the options subcommand.
func newOptionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "options",
		Short: "List the form options and how they are stored",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := vocabulary.FormOptions()
			if outputJSON {
				return ui.JSON(opts)
			}

			ui.Section("Mat types")
			ui.Table([]string{"FORM", "STORED"}, mapped(opts.MatTypes, func(s string) string { return string(vocabulary.MapMatType(s)) }))
			ui.Section("Cell structures")
			ui.Table([]string{"FORM", "STORED"}, mapped(opts.CellStructures, func(s string) string { return string(vocabulary.MapCellStructure(s)) }))
			ui.Section("Material colors")
			ui.Table([]string{"FORM", "STORED", "STORED (3D ROMBY)"}, materialRows(opts.MaterialColors))
			ui.Section("Border colors")
			ui.Table([]string{"FORM", "STORED", "EQUIVALENT SPELLINGS"}, borderRows(opts.BorderColors))
			return nil
		},
	}
}

func mapped(tokens []string, fn func(string) string) [][]string {
	rows := make([][]string, len(tokens))
	for i, t := range tokens {
		rows[i] = []string{t, fn(t)}
	}
	return rows
}

func materialRows(tokens []string) [][]string {
	rows := make([][]string, len(tokens))
	for i, t := range tokens {
		stored := vocabulary.MapMaterialColor(t)
		rows[i] = []string{t, stored, vocabulary.MapMaterialEnToPlForRimmedRhombus(stored)}
	}
	return rows
}

func borderRows(tokens []string) [][]string {
	rows := make([][]string, len(tokens))
	for i, t := range tokens {
		stored := vocabulary.MapBorderColor(t)
		rows[i] = []string{t, stored, fmt.Sprint(vocabulary.CandidateBorderSet(stored))}
	}
	return rows
}
