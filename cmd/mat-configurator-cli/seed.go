package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/spherical-ai/spherical/libs/mat-configurator/internal/catalog"
	"github.com/spherical-ai/spherical/libs/mat-configurator/internal/repair"
	"github.com/spherical-ai/spherical/libs/mat-configurator/internal/service"
	"github.com/spherical-ai/spherical/libs/mat-configurator/internal/storage"
)

// newSeedCmd creates the seed subcommand.
func newSeedCmd() *cobra.Command {
	var (
		file string
		full bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert configurations from a YAML file or the full catalog",
		Long: `Seed inserts configuration records. With --file, each YAML list entry needs
mat_type, cell_structure, material_color and border_color in stored vocabulary;
a missing image_path is generated. With --full, one record per group, stored
material and border color is inserted with its canonical path.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if (file == "") == !full {
				return fmt.Errorf("exactly one of --file or --full is required")
			}
			ctx := cmd.Context()

			svc, err := service.New(ctx, cfg, logger)
			if err != nil {
				return err
			}
			defer svc.Close()

			var records []storage.Record
			if full {
				records, err = catalog.Full(svc.Generator)
			} else {
				records, err = readSeedFile(svc, file)
			}
			if err != nil {
				return err
			}

			var inv repair.Invalidator
			if svc.Cache != nil {
				inv = svc.Cache
			}
			inserted, err := seedRecords(ctx, svc.Records, inv, records)
			if err != nil {
				return fmt.Errorf("seeded %d of %d configuration(s): %w", inserted, len(records), err)
			}

			if outputJSON {
				return ui.JSON(map[string]int{"inserted": inserted})
			}
			ui.Success("Seeded %d configuration(s)", inserted)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML seed file")
	cmd.Flags().BoolVar(&full, "full", false, "seed the full catalog")
	return cmd
}

func readSeedFile(svc *service.Service, path string) ([]storage.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()

	entries, err := catalog.Decode(f)
	if err != nil {
		return nil, err
	}
	return catalog.Records(svc.Generator, entries)
}

type recordWriter interface {
	Upsert(ctx context.Context, rec *storage.Record) error
}

// seedRecords upserts records in order and stops at the first failure. The
// query cache is invalidated whenever at least one record was written.
func seedRecords(ctx context.Context, w recordWriter, inv repair.Invalidator, records []storage.Record) (int, error) {
	bar := ui.ProgressBar("Seeding", int64(len(records)))
	if bar != nil {
		defer completeBar(bar)
	}

	var (
		written int
		err     error
	)
	for i := range records {
		if err = w.Upsert(ctx, &records[i]); err != nil {
			break
		}
		written++
		if bar != nil {
			bar.Increment()
		}
	}

	if written > 0 && inv != nil {
		if invErr := inv.Invalidate(ctx); invErr != nil {
			logger.Warn().Err(invErr).Msg("Failed to invalidate query cache")
		}
	}
	return written, err
}

// newMigrateCmd creates the migrate subcommand.
func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the configuration table if missing",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			spin := ui.NewSpinner(fmt.Sprintf("Migrating %s database", cfg.Database.Driver))

			db, _, err := storage.Open(ctx, cfg.Database.Driver, cfg.DatabaseDSN())
			if err != nil {
				spin.Stop()
				return err
			}
			defer db.Close()

			err = storage.Migrate(ctx, db)
			spin.Stop()
			if err != nil {
				return err
			}

			if outputJSON {
				return ui.JSON(map[string]string{"status": "ok", "driver": cfg.Database.Driver})
			}
			ui.Success("Schema up to date (%s)", cfg.Database.Driver)
			return nil
		},
	}
}
