package config

import (
	"os"
	"path/filepath"
)

// UserConfigPath returns the path to the user-level config file, following
// the XDG Base Directory Specification (~/.config/cursorlog/config.yml on
// Linux).
func UserConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "cursorlog", "config.yml"), nil
}

// ProjectConfigPath returns the project-level config path relative to the
// current directory.
func ProjectConfigPath() string {
	return filepath.Join(".cursorlog", "config.yml")
}
