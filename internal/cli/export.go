package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jerryzhao173985/cursorlog/internal/changelog"
	"github.com/jerryzhao173985/cursorlog/internal/errors"
	"github.com/jerryzhao173985/cursorlog/internal/store"
)

var (
	exportFormatFlag string
	exportOutputFlag string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the snapshot as CSV or JSON",
	Long: `Export the snapshot's version records as CSV or JSON.

Output goes to stdout unless --output names a file. The CSV columns are
version, description, and detailLink, matching the JSON field names.

Examples:
  cursorlog export --format csv
  cursorlog export --format json --output records.json`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		records := store.New(cfg.StateDir).Load()
		if len(records) == 0 {
			fmt.Fprintln(cmd.ErrOrStderr(), "No records in the snapshot. Run 'cursorlog update' first.")
			return NewExitError(ExitEmptySnapshot)
		}

		out := cmd.OutOrStdout()
		if exportOutputFlag != "" {
			f, err := os.Create(exportOutputFlag)
			if err != nil {
				return errors.WrapWithMessage(err, errors.Persistence, "creating export file",
					"Check permissions on the target directory")
			}
			defer f.Close()
			out = f
		}

		return exportRecords(out, records, exportFormatFlag)
	},
}

func init() {
	exportCmd.GroupID = GroupQuery
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(&exportFormatFlag, "format", "csv", "Export format: csv or json")
	exportCmd.Flags().StringVar(&exportOutputFlag, "output", "", "Write to a file instead of stdout")
}

func exportRecords(w io.Writer, records []changelog.VersionRecord, format string) error {
	switch format {
	case "csv":
		return exportCSV(w, records)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(records); err != nil {
			return fmt.Errorf("encoding records: %w", err)
		}
		return nil
	default:
		return errors.NewArgumentError(
			fmt.Sprintf("unknown export format %q", format),
			"Use --format csv or --format json")
	}
}

func exportCSV(w io.Writer, records []changelog.VersionRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"version", "description", "detailLink"}); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, r := range records {
		if err := cw.Write([]string{r.Version, r.Description, r.DetailLink}); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
