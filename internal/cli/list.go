package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jerryzhao173985/cursorlog/internal/changelog"
	"github.com/jerryzhao173985/cursorlog/internal/store"
)

var listLastFlag int

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show records from the local snapshot, newest first",
	Long: `Show version records from the local snapshot, newest first.

By default the 10 newest records are shown. Use --last to control the
count; --last 0 shows everything.

Examples:
  cursorlog list              # Show 10 most recent records
  cursorlog list --last 25    # Show 25 most recent records
  cursorlog list --last 0     # Show all records
  cursorlog list --plain      # Plain output (no colors)`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		records := store.New(cfg.StateDir).Load()
		return listRecords(cmd.OutOrStdout(), records, listLastFlag, plainFlag)
	},
}

func init() {
	listCmd.GroupID = GroupQuery
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().IntVar(&listLastFlag, "last", 10, "Number of records to show (0 = all)")
}

func listRecords(w io.Writer, records []changelog.VersionRecord, last int, plain bool) error {
	if len(records) == 0 {
		fmt.Fprintln(w, "No records in the snapshot. Run 'cursorlog update' first.")
		return NewExitError(ExitEmptySnapshot)
	}

	shown := records
	if last > 0 && last < len(records) {
		shown = records[:last]
	}

	opts := changelog.FormatOptions{Plain: plain}
	if err := changelog.FormatRecords(shown, w, opts); err != nil {
		return fmt.Errorf("formatting records: %w", err)
	}

	if len(shown) < len(records) {
		fmt.Fprintf(w, "\n(%d of %d records shown. Use --last 0 to see all)\n",
			len(shown), len(records))
	}
	return nil
}
