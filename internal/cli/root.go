// Package cli implements the cursorlog command tree.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/jerryzhao173985/cursorlog/internal/config"
	"github.com/jerryzhao173985/cursorlog/internal/errors"
	"github.com/jerryzhao173985/cursorlog/internal/version"
)

// Command group IDs for help output organization.
const (
	GroupTracking      = "tracking"
	GroupQuery         = "query"
	GroupConfiguration = "configuration"
)

var (
	configFlag string
	plainFlag  bool
)

var rootCmd = &cobra.Command{
	Use:   "cursorlog",
	Short: "Track the Cursor editor changelog from the command line",
	Long: `cursorlog scrapes the Cursor editor changelog page, extracts one
record per released version, and keeps a local snapshot you can list,
query, export, and watch.

Records are consolidated: consecutive patch versions sharing a
description collapse into a single range entry, and minor releases
appear as wildcard entries (for example 0.48.x).

More information: https://github.com/jerryzhao173985/cursorlog`,
	Example: `  cursorlog update                 # Scrape the changelog and refresh the snapshot
  cursorlog list                   # Show the 10 newest records
  cursorlog list --last 0          # Show every record
  cursorlog latest                 # Show the newest specific version
  cursorlog export --format csv    # Dump the snapshot as CSV
  cursorlog watch                  # Reprint records whenever the snapshot changes`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Version = version.String()
	rootCmd.AddGroup(
		&cobra.Group{ID: GroupTracking, Title: "Tracking Commands:"},
		&cobra.Group{ID: GroupQuery, Title: "Query Commands:"},
		&cobra.Group{ID: GroupConfiguration, Title: "Configuration Commands:"},
	)

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "",
		"Path to a config file (overrides the project config)")
	rootCmd.PersistentFlags().BoolVar(&plainFlag, "plain", false,
		"Plain text output (no colors/icons)")
}

// Execute runs the root command and prints structured errors to stderr.
// The returned error carries the exit code; see ExitCode.
func Execute() error {
	err := rootCmd.Execute()
	if err == nil {
		return nil
	}

	if cliErr := errors.AsCLIError(err); cliErr != nil {
		errors.PrintError(cliErr)
	} else if !isExitOnly(err) {
		errors.PrintError(errors.Wrap(err, errors.Runtime))
	}
	return err
}

// loadConfig resolves the effective configuration, honoring --config.
func loadConfig() (*config.Configuration, error) {
	cfg, err := config.LoadWithOptions(config.LoadOptions{ProjectConfigPath: configFlag})
	if err != nil {
		return nil, errors.WrapWithMessage(err, errors.Configuration, "loading configuration",
			"Run 'cursorlog config init' to create a starter config",
			"Check the file for YAML syntax errors")
	}
	return cfg, nil
}
