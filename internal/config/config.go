// Package config provides hierarchical configuration for cursorlog using
// koanf. Values load with priority: environment variables > project config
// (.cursorlog/config.yml) > user config (XDG config dir) > defaults. YAML is
// the primary format; a JSON config file is accepted at the same locations.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// envPrefix namespaces cursorlog's environment variables.
const envPrefix = "CURSORLOG_"

// Configuration holds all cursorlog settings.
type Configuration struct {
	// APIKey is the Firecrawl API key used to scrape the changelog page.
	// Can be set via CURSORLOG_API_KEY.
	APIKey string `koanf:"api_key"`

	// ChangelogURL is the page to scrape.
	ChangelogURL string `koanf:"changelog_url" validate:"required,url"`

	// StateDir holds the persisted snapshot.
	StateDir string `koanf:"state_dir" validate:"required"`

	// MinDescriptionLength is the shortest extracted description kept.
	MinDescriptionLength int `koanf:"min_description_length" validate:"min=1,max=200"`

	// FragmentPrefixes mark descriptions captured mid-sentence; matching
	// descriptions are discarded during cleaning.
	FragmentPrefixes []string `koanf:"fragment_prefixes"`
}

// LoadOptions configures how configuration is loaded.
type LoadOptions struct {
	// ProjectConfigPath overrides the project config path, mainly for tests.
	ProjectConfigPath string
}

// Load loads configuration from defaults, user config, project config, and
// environment, in ascending priority.
func Load() (*Configuration, error) {
	return LoadWithOptions(LoadOptions{})
}

// LoadWithOptions loads configuration with custom options.
func LoadWithOptions(opts LoadOptions) (*Configuration, error) {
	k := koanf.New(".")

	for key, value := range Defaults() {
		_ = k.Set(key, value)
	}

	userPath, _ := UserConfigPath()
	if err := loadFileConfig(k, userPath, "user"); err != nil {
		return nil, err
	}

	projectPath := ProjectConfigPath()
	if opts.ProjectConfigPath != "" {
		projectPath = opts.ProjectConfigPath
	}
	if err := loadFileConfig(k, projectPath, "project"); err != nil {
		return nil, err
	}

	if err := k.Load(env.Provider(envPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("loading environment config: %w", err)
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := ValidateConfigValues(&cfg, projectPath); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	cfg.StateDir = expandHomePath(cfg.StateDir)

	return &cfg, nil
}

// loadFileConfig loads a YAML config file, falling back to a JSON file with
// the same stem when the YAML one does not exist.
func loadFileConfig(k *koanf.Koanf, yamlPath, configType string) error {
	if fileExists(yamlPath) {
		if err := ValidateYAMLSyntax(yamlPath); err != nil {
			return fmt.Errorf("validating %s config: %w", configType, err)
		}
		if err := k.Load(file.Provider(yamlPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading %s config %s: %w", configType, yamlPath, err)
		}
		return nil
	}

	jsonPath := strings.TrimSuffix(yamlPath, filepath.Ext(yamlPath)) + ".json"
	if fileExists(jsonPath) {
		if err := k.Load(file.Provider(jsonPath), json.Parser()); err != nil {
			return fmt.Errorf("loading %s config %s: %w", configType, jsonPath, err)
		}
	}
	return nil
}

// fileExists returns true if the file exists and is statable.
func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// envTransform converts environment variable names to config keys.
// Example: CURSORLOG_API_KEY -> api_key.
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, envPrefix))
}

// expandHomePath expands a leading ~ to the user's home directory.
func expandHomePath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(homeDir, path[2:])
		}
	}
	return path
}
