package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jerryzhao173985/cursorlog/internal/progress"
	"github.com/jerryzhao173985/cursorlog/internal/tracker"
)

var updateAPIKeyFlag string

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Scrape the changelog page and replace the local snapshot",
	Long: `Scrape the Cursor changelog page, extract and consolidate version
records, and replace the local snapshot wholesale.

The scrape goes through the Firecrawl API and needs an API key, set via
--api-key, the CURSORLOG_API_KEY environment variable, or the api_key
config value.

Examples:
  cursorlog update
  cursorlog update --api-key fc-...`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUpdate(cmd)
	},
}

func init() {
	updateCmd.GroupID = GroupTracking
	rootCmd.AddCommand(updateCmd)

	updateCmd.Flags().StringVar(&updateAPIKeyFlag, "api-key", "", "Firecrawl API key (overrides config)")
}

func runUpdate(cmd *cobra.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if updateAPIKeyFlag != "" {
		cfg.APIKey = updateAPIKeyFlag
	}

	tr := tracker.New(cfg)

	spin := progress.NewSpinner(cmd.OutOrStdout(), "Fetching "+cfg.ChangelogURL)
	spin.Start()

	records, err := tr.Update(cmd.Context())
	if err != nil {
		spin.Fail("Update failed")
		return err
	}
	spin.Succeed(fmt.Sprintf("Extracted %d version records", len(records)))

	if latest, ok := tr.Latest(); ok {
		fmt.Fprintf(cmd.OutOrStdout(), "Latest version: %s\n", latest.Version)
	}
	return nil
}
