// Package main provides the mat configurator CLI entrypoint.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/spherical-ai/spherical/libs/mat-configurator/internal/config"
	"github.com/spherical-ai/spherical/libs/mat-configurator/internal/observability"
)

const version = "0.3.0"

var (
	// Global flags
	cfgFile    string
	outputJSON bool
	verbose    bool

	// Configuration, logger and output
	cfg    *config.Config
	logger *observability.Logger
	ui     *UI
)

// errNotFound makes the process exit with status 2 without printing an error.
var errNotFound = errors.New("no matching record")

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "mat-configurator-cli",
	Short: "Resolve car mat configurations to preview images and maintain image paths",
	Long: `mat-configurator-cli looks up the preview image stored for a configurator
selection and maintains the image paths of stored configurations.

Use this tool to:
- Resolve a form selection the way the shop does
- Print the canonical asset path of a configuration
- Audit and repair stored image paths in batches
- Seed and migrate the configuration store

All commands support --json for automation.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		level := "warn"
		if verbose {
			level = "debug"
		}
		format := "console"
		if outputJSON {
			format = "json"
		}

		logger = observability.NewLogger(observability.LogConfig{
			Level:       level,
			Format:      format,
			Output:      os.Stderr,
			ServiceName: "mat-configurator-cli",
		})
		ui = NewUI(cmd.OutOrStdout(), outputJSON)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path (default: env vars and defaults)")
	rootCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newResolveCmd())
	rootCmd.AddCommand(newPathCmd())
	rootCmd.AddCommand(newOptionsCmd())
	rootCmd.AddCommand(newAuditCmd())
	rootCmd.AddCommand(newRepairCmd())
	rootCmd.AddCommand(newSeedCmd())
	rootCmd.AddCommand(newMigrateCmd())
	rootCmd.AddCommand(newVersionCmd())
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if ui != nil {
		ui.Close()
	}
	if errors.Is(err, errNotFound) {
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			if outputJSON {
				return ui.JSON(map[string]string{"version": version})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "mat-configurator-cli v%s\n", version)
			return nil
		},
	}
}
