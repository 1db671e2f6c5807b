package main

import (
	"github.com/spf13/cobra"
	"github.com/vbauerster/mpb/v8"

	"github.com/spherical-ai/spherical/libs/mat-configurator/internal/repair"
	"github.com/spherical-ai/spherical/libs/mat-configurator/internal/service"
)

// newAuditCmd creates the audit subcommand.
func newAuditCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Report stored image paths that differ from the canonical path",
		Long: `Audit walks every stored configuration in batches and compares its image
path with the generated one. Nothing is written.

When assets.local_dir is configured, records whose generated file is missing
on disk are reported as missing_file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepair(cmd, true, limit)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 50, "maximum issues to print (0 for all)")
	return cmd
}

// newRepairCmd creates the repair subcommand.
func newRepairCmd() *cobra.Command {
	var (
		dryRun bool
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "repair",
		Short: "Rewrite stored image paths to the canonical path",
		Long: `Repair walks every stored configuration in batches of repair.batch_size,
pausing repair.batch_delay between batches, and rewrites image paths that
differ from the generated one. Records with unmapped tokens or missing files
are left unchanged and reported. The query cache is invalidated afterwards.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepair(cmd, dryRun, limit)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report changes without writing")
	cmd.Flags().IntVar(&limit, "limit", 50, "maximum issues to print (0 for all)")
	return cmd
}

func runRepair(cmd *cobra.Command, dryRun bool, limit int) error {
	ctx := cmd.Context()

	svc, err := service.New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer svc.Close()

	total, err := svc.Records.Count(ctx)
	if err != nil {
		return err
	}

	label := "Repairing"
	if dryRun {
		label = "Auditing"
	}

	runner := svc.RepairRunner(dryRun)
	if bar := ui.ProgressBar(label, int64(total)); bar != nil {
		runner.OnBatch(func(r repair.Report) {
			bar.SetCurrent(int64(r.Checked))
		})
		defer completeBar(bar)
	}

	report, err := runner.Run(ctx)
	if err != nil {
		return err
	}

	if outputJSON {
		return ui.JSON(report)
	}
	printReport(report, limit)
	return nil
}

func completeBar(bar *mpb.Bar) {
	bar.SetTotal(-1, true)
}

func printReport(report *repair.Report, limit int) {
	ui.Section("Summary")
	ui.KeyValue("Checked", report.Checked)
	ui.KeyValue("Matched", report.Matched)
	if report.DryRun {
		ui.KeyValue("Would update", report.Updated)
	} else {
		ui.KeyValue("Updated", report.Updated)
	}
	ui.KeyValue("Unmapped", report.Unmapped)
	ui.KeyValue("Missing file", report.MissingFile)
	ui.KeyValue("Failed", report.Failed)
	ui.KeyValue("Duration", FormatDuration(report.Duration))

	if len(report.Issues) == 0 {
		ui.Success("All %d image paths are canonical", report.Checked)
		return
	}

	issues := report.Issues
	if limit > 0 && len(issues) > limit {
		issues = issues[:limit]
	}

	rows := make([][]string, len(issues))
	for i, issue := range issues {
		detail := issue.Expected
		if issue.Error != "" {
			detail = issue.Error
		}
		rows[i] = []string{string(issue.Outcome), issue.Configuration, issue.Stored, detail}
	}

	ui.Section("Issues")
	ui.Table([]string{"OUTCOME", "CONFIGURATION", "STORED", "EXPECTED / ERROR"}, rows)
	if len(issues) < len(report.Issues) {
		ui.Info("%d more not shown, use --limit 0 or --json", len(report.Issues)-len(issues))
	}
	if report.Failed > 0 {
		ui.Error("%d record(s) could not be updated", report.Failed)
	}
}
