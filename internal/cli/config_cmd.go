package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jerryzhao173985/cursorlog/internal/config"
	"github.com/jerryzhao173985/cursorlog/internal/errors"
	"github.com/jerryzhao173985/cursorlog/internal/output"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Show the effective configuration after merging defaults, the user
config, the project config, and CURSORLOG_* environment variables.

The API key is masked in the output.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		printConfig(cmd, cfg)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter project config file",
	Long: `Write a commented starter config to .cursorlog/config.yml in the
current directory. Fails if the file already exists.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfigInit(cmd)
	},
}

func init() {
	configCmd.GroupID = GroupConfiguration
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
}

func printConfig(cmd *cobra.Command, cfg *config.Configuration) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "changelog_url:           %s\n", cfg.ChangelogURL)
	fmt.Fprintf(out, "state_dir:               %s\n", cfg.StateDir)
	fmt.Fprintf(out, "min_description_length:  %d\n", cfg.MinDescriptionLength)
	fmt.Fprintf(out, "fragment_prefixes:       %s\n", strings.Join(cfg.FragmentPrefixes, ", "))
	fmt.Fprintf(out, "api_key:                 %s\n", maskKey(cfg.APIKey))
}

// maskKey hides all but the first four characters of an API key.
func maskKey(key string) string {
	if key == "" {
		return "(not set)"
	}
	if len(key) <= 4 {
		return "****"
	}
	return key[:4] + strings.Repeat("*", len(key)-4)
}

func runConfigInit(cmd *cobra.Command) error {
	path := config.ProjectConfigPath()
	if _, err := os.Stat(path); err == nil {
		return errors.NewArgumentError(
			fmt.Sprintf("config file already exists at %s", path),
			"Edit the existing file instead, or remove it and rerun")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.WrapWithMessage(err, errors.Persistence, "creating config directory")
	}
	if err := os.WriteFile(path, []byte(config.GetDefaultConfigTemplate()), 0o644); err != nil {
		return errors.WrapWithMessage(err, errors.Persistence, "writing config file")
	}

	output.PrintSuccess(cmd.OutOrStdout(), "Created "+path)
	return nil
}
