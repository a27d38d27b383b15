package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jerryzhao173985/cursorlog/internal/changelog"
	"github.com/jerryzhao173985/cursorlog/internal/store"
)

var latestCmd = &cobra.Command{
	Use:   "latest",
	Short: "Show the newest version in the snapshot",
	Long: `Show the newest version record in the snapshot.

Wildcard entries like 0.48.x are skipped in favor of the newest specific
version; if the snapshot holds only wildcards, the newest wildcard is
shown.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return printLatest(cmd.OutOrStdout(), store.New(cfg.StateDir))
	},
}

func init() {
	latestCmd.GroupID = GroupQuery
	rootCmd.AddCommand(latestCmd)
}

func printLatest(w io.Writer, s *store.Store) error {
	latest, ok := s.Latest()
	if !ok {
		fmt.Fprintln(w, "No records in the snapshot. Run 'cursorlog update' first.")
		return NewExitError(ExitEmptySnapshot)
	}
	return changelog.FormatRecord(latest, w, changelog.FormatOptions{Plain: plainFlag})
}
